package model

// Product represents a grocery product in the catalogue.
type Product struct {
	ID            string   `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" db:"original_price"`
	Category      string   `json:"category" db:"category"`
	Description   string   `json:"description" db:"description"`
	Unit          string   `json:"unit" db:"unit"`
	InStock       bool     `json:"inStock" db:"in_stock"`
	Rating        float64  `json:"rating" db:"rating"`
	ReviewCount   int      `json:"reviewCount" db:"review_count"`
	Tags          []string `json:"tags,omitempty" db:"tags"`
}

// Category represents a product category shown in navigation.
type Category struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Icon         string `json:"icon" db:"icon"`
	ProductCount int    `json:"productCount" db:"product_count"`
}
