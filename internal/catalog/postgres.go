package catalog

import (
	"context"
	"fmt"

	"freshmart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, price, original_price, category, description, unit, in_stock, rating, review_count, tags`

// postgresCatalog implements Catalog backed by PostgreSQL.
type postgresCatalog struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresCatalog creates a PostgreSQL-backed catalogue.
func NewPostgresCatalog(pool *pgxpool.Pool, logger zerolog.Logger) Catalog {
	return &postgresCatalog{
		pool:   pool,
		logger: logger.With().Str("catalog", "postgres").Logger(),
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Category,
		&p.Description, &p.Unit, &p.InStock, &p.Rating, &p.ReviewCount, &p.Tags)
	return p, err
}

func (c *postgresCatalog) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		c.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetAll retrieves products in display order with pagination.
func (c *postgresCatalog) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, productColumns)

	return c.queryProducts(ctx, query, limit, offset)
}

// GetByID retrieves a single product, or nil if it does not exist.
func (c *postgresCatalog) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)

	p, err := scanProduct(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			c.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		c.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByCategory retrieves the products in one category.
func (c *postgresCatalog) GetByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category = $1
		ORDER BY name
	`, productColumns)

	return c.queryProducts(ctx, query, categoryID)
}

// Search retrieves products matching the query by name, description or tag.
func (c *postgresCatalog) Search(ctx context.Context, searchQuery string) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE name ILIKE '%%' || $1 || '%%'
		   OR description ILIKE '%%' || $1 || '%%'
		   OR EXISTS (
				SELECT 1 FROM unnest(tags) AS tag
				WHERE tag ILIKE '%%' || $1 || '%%'
		   )
		ORDER BY name
	`, productColumns)

	return c.queryProducts(ctx, query, searchQuery)
}

// Categories retrieves all categories in display order.
func (c *postgresCatalog) Categories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, icon, product_count
		FROM categories
		ORDER BY name
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.ProductCount); err != nil {
			c.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		c.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
