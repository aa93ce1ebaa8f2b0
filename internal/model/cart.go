package model

// CartLine is one product-and-quantity pairing inside the cart.
// Quantity is always positive; a line with zero quantity never exists.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartView is a read-only snapshot of the cart handed to the rendering layer.
type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the payload for replacing a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
