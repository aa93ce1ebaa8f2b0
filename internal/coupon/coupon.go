package coupon

import (
	"context"
)

// Resolver resolves a coupon code to its discount amount.
type Resolver interface {
	// Resolve returns the discount for a coupon code.
	// A resolvable code must:
	// - Be between 8 and 10 characters in length
	// - Appear in one of the loaded coupon tables
	Resolve(ctx context.Context, code string) (float64, error)

	// Close releases resources held by the resolver.
	Close() error
}

// Table maps coupon codes to discount amounts for fast lookup.
type Table interface {
	// Discount returns the discount for a code and whether it exists.
	Discount(code string) (float64, bool)

	// Size returns the number of codes in the table.
	Size() int
}

// Loader defines the interface for loading coupon files.
type Loader interface {
	// Load reads a gzipped coupon file and returns a Table.
	Load(ctx context.Context, filePath string) (Table, error)
}
