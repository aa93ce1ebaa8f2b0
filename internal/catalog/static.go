package catalog

import (
	"context"
	"strings"

	"freshmart/internal/model"
)

// staticCatalog implements Catalog over an in-memory product list. It is the
// default source, keeping the service runnable with no database behind it.
type staticCatalog struct {
	products   []model.Product
	categories []model.Category
	byID       map[string]int
}

// NewStaticCatalog creates a catalogue over the given data. Product order is
// preserved as display order.
func NewStaticCatalog(products []model.Product, categories []model.Category) Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &staticCatalog{
		products:   products,
		categories: categories,
		byID:       byID,
	}
}

// NewSeededCatalog creates a static catalogue preloaded with the demo data.
func NewSeededCatalog() Catalog {
	return NewStaticCatalog(seedProducts, seedCategories)
}

// GetAll retrieves products in display order with pagination.
func (c *staticCatalog) GetAll(_ context.Context, limit, offset int) ([]model.Product, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.products) {
		return []model.Product{}, nil
	}
	end := len(c.products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]model.Product, end-offset)
	copy(out, c.products[offset:end])
	return out, nil
}

// GetByID retrieves a single product, or nil if it does not exist.
func (c *staticCatalog) GetByID(_ context.Context, id string) (*model.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	p := c.products[i]
	return &p, nil
}

// GetByCategory retrieves the products in one category.
func (c *staticCatalog) GetByCategory(_ context.Context, categoryID string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search retrieves products matching the query by name, description or tag,
// case-insensitively.
func (c *staticCatalog) Search(_ context.Context, query string) ([]model.Product, error) {
	q := strings.ToLower(query)

	var out []model.Product
	for _, p := range c.products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesQuery(p model.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Categories retrieves all categories in display order.
func (c *staticCatalog) Categories(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}
