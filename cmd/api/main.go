package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshmart/internal/addressbook"
	"freshmart/internal/catalog"
	"freshmart/internal/checkout"
	"freshmart/internal/config"
	"freshmart/internal/coupon"
	"freshmart/internal/database"
	"freshmart/internal/handler"
	"freshmart/internal/kv"
	"freshmart/internal/notify"
	"freshmart/internal/router"
	"freshmart/internal/session"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting freshmart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalogue source: Postgres when configured, built-in demo data
	// otherwise
	var cat catalog.Catalog
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		cat = catalog.NewPostgresCatalog(pool, logger)
	} else {
		cat = catalog.NewSeededCatalog()
		logger.Info().Msg("using built-in catalogue (database disabled)")
	}

	// Saved-address store: Redis when configured, process memory otherwise
	var store kv.Store
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		defer client.Close()
		store = kv.NewRedisStore(client)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis address store")
	} else {
		store = kv.NewMemoryStore()
		logger.Info().Msg("using in-memory address store (redis disabled)")
	}

	// Coupon tables are optional; without files the configured default
	// discount applies to every checkout
	var resolver coupon.Resolver
	if len(cfg.Checkout.CouponFiles) > 0 {
		fileLoader := coupon.NewFileLoader(logger)
		var s3Loader coupon.Loader
		if cfg.S3.Enabled {
			s3Loader, err = coupon.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
				s3Loader = nil
			}
		}
		loader := coupon.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled && s3Loader != nil, logger)

		resolver, err = coupon.NewResolver(ctx, &coupon.ResolverConfig{FilePaths: cfg.Checkout.CouponFiles}, loader, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize coupon resolver: %w", err)
		}
		defer resolver.Close()
	} else {
		logger.Info().Msg("no coupon files configured, using default discount only")
	}

	// Assemble the storefront session
	notifier := notify.NewLogNotifier(logger)
	assembler := checkout.NewAssembler(checkout.Config{
		Shipping:       cfg.Checkout.Shipping,
		Taxes:          cfg.Checkout.Taxes,
		CouponDiscount: cfg.Checkout.DefaultDiscount,
	}, resolver, logger)
	book := addressbook.NewBook(store, logger)
	sess := session.New(cat, assembler, book, notifier, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(cat, logger),
		Cart:     handler.NewCartHandler(sess, logger),
		View:     handler.NewViewHandler(sess, logger),
		Address:  handler.NewAddressHandler(sess, logger),
		Checkout: handler.NewCheckoutHandler(sess, logger),
		Wishlist: handler.NewWishlistHandler(sess, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
