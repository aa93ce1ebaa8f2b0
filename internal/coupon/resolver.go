package coupon

import (
	"context"
	"fmt"
	"sync"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
)

// resolver implements Resolver over a list of loaded coupon tables.
type resolver struct {
	tables []Table
	logger zerolog.Logger
	// No mutex needed - tables are read-only after initialization
}

// ResolverConfig holds configuration for the coupon resolver.
type ResolverConfig struct {
	// FilePaths is the list of coupon file paths to load.
	FilePaths []string
}

// NewResolver creates a new coupon resolver. All coupon files are loaded at
// initialization time, concurrently.
func NewResolver(ctx context.Context, cfg *ResolverConfig, loader Loader, logger zerolog.Logger) (Resolver, error) {
	if cfg == nil {
		cfg = &ResolverConfig{}
	}

	logger = logger.With().Str("component", "coupon-resolver").Logger()

	logger.Info().
		Int("file_count", len(cfg.FilePaths)).
		Msg("initialising coupon resolver")

	r := &resolver{
		tables: make([]Table, 0, len(cfg.FilePaths)),
		logger: logger,
	}

	type loadResult struct {
		index int
		table Table
		err   error
	}

	resultChan := make(chan loadResult, len(cfg.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range cfg.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			table, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				table: table,
				err:   err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(cfg.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	totalCoupons := 0
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", cfg.FilePaths[i]).
				Msg("failed to load coupon file")
			return nil, fmt.Errorf("failed to load coupon file %s: %w", cfg.FilePaths[i], result.err)
		}
		r.tables = append(r.tables, result.table)
		totalCoupons += result.table.Size()
		logger.Info().
			Str("file", cfg.FilePaths[i]).
			Int("size", result.table.Size()).
			Msg("coupon file loaded")
	}

	logger.Info().
		Int("total_coupons", totalCoupons).
		Msg("coupon resolver initialised successfully")

	return r, nil
}

// Resolve returns the discount for a coupon code. The first table containing
// the code wins, so file order is precedence order.
func (r *resolver) Resolve(ctx context.Context, code string) (float64, error) {
	// Validate length first (cheap check)
	if len(code) < 8 || len(code) > 10 {
		r.logger.Debug().
			Str("coupon_code", code).
			Int("length", len(code)).
			Msg("coupon code length invalid")
		return 0, model.ErrInvalidCouponLength
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	for _, table := range r.tables {
		if amount, ok := table.Discount(code); ok {
			r.logger.Debug().
				Str("coupon_code", code).
				Float64("discount", amount).
				Msg("coupon code resolved")
			return amount, nil
		}
	}

	r.logger.Debug().
		Str("coupon_code", code).
		Msg("coupon code not found in any table")
	return 0, model.ErrInvalidCoupon
}

// Close releases resources held by the resolver.
func (r *resolver) Close() error {
	// Clear tables to allow GC to reclaim memory
	r.tables = nil

	r.logger.Info().Msg("coupon resolver closed")

	return nil
}
