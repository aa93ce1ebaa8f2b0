package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the catalogue schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			original_price DECIMAL(10, 2),
			category VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit VARCHAR(50) NOT NULL DEFAULT '',
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			rating DECIMAL(3, 1) NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}'
		);

		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			icon VARCHAR(16) NOT NULL DEFAULT '',
			product_count INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts test catalogue data into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		id          string
		name        string
		price       float64
		category    string
		description string
		inStock     bool
		tags        []string
	}{
		{"1", "Organic Bananas", 2.99, "produce", "Fresh organic bananas", true, []string{"organic", "fresh"}},
		{"2", "Fresh Avocados", 1.99, "produce", "Ripe and creamy avocados", true, []string{"fresh"}},
		{"3", "Roma Tomatoes", 2.49, "produce", "Fresh Roma tomatoes", false, []string{"cooking"}},
		{"4", "Greek Yogurt", 6.49, "dairy", "Creamy Greek yogurt", true, []string{"protein"}},
		{"5", "Free-Range Eggs", 5.99, "dairy", "Farm-fresh free-range eggs", true, []string{"protein", "farm"}},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, price, category, description, in_stock, tags)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.id, p.name, p.price, p.category, p.description, p.inStock, p.tags,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}

	categories := []struct {
		id   string
		name string
		icon string
	}{
		{"produce", "Fresh Produce", "🥬"},
		{"dairy", "Dairy & Eggs", "🥛"},
	}

	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (id, name, icon, product_count) VALUES ($1, $2, $3, 0)",
			c.id, c.name, c.icon,
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"products", "categories"} {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
