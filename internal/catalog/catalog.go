package catalog

import (
	"context"

	"freshmart/internal/model"
)

// Catalog is the read-only product and category source the storefront
// renders from. Implementations must not mutate returned data based on
// anything the core does; the catalogue is reference data.
type Catalog interface {
	// GetAll retrieves products in display order with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByCategory retrieves the products in one category.
	GetByCategory(ctx context.Context, categoryID string) ([]model.Product, error)

	// Search retrieves products whose name, description or tags contain the
	// query, case-insensitively.
	Search(ctx context.Context, query string) ([]model.Product, error)

	// Categories retrieves all categories in display order.
	Categories(ctx context.Context) ([]model.Category, error)
}
