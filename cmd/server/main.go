package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/catalogo/internal/cart"
	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/JonMunkholm/catalogo/internal/store"
	"github.com/JonMunkholm/catalogo/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"catalog_source", cfg.Catalog.Source,
		"store_driver", cfg.Store.Driver,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	ctx := context.Background()

	cartStore, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		slog.Error("failed to open cart store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	placeholders := catalog.Placeholders{
		Name:     cfg.Catalog.PlaceholderName,
		Image:    cfg.Catalog.PlaceholderImage,
		Category: cfg.Catalog.PlaceholderCategory,
	}

	// The catalog loads in the background; adds stay inert until it arrives.
	products := &catalog.Holder{}
	go loadCatalog(ctx, products, cfg.Catalog.Source, catalog.LoadOptions{
		Placeholders: placeholders,
		Timeout:      cfg.Catalog.FetchTimeout,
	})

	engine := cart.NewEngine(ctx, cartStore, products, cart.Config{
		Key: cfg.Store.Key,
		Export: cart.ExportFormat{
			Title:    cfg.Export.Title,
			Marker:   cfg.Export.Marker,
			Currency: cfg.Export.Currency,
			Total:    cfg.Export.TotalFormat,
		},
	})

	server := web.NewServer(engine, products, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		return
	}
	slog.Info("server stopped")
}

// loadCatalog loads the catalog once. A failure is reported a single time
// and never retried.
func loadCatalog(ctx context.Context, products *catalog.Holder, source string, opts catalog.LoadOptions) {
	c, err := catalog.Load(ctx, source, opts)
	if err != nil {
		slog.Error("failed to load catalog", "source", source, "error", err)
		products.Fail(err)
		return
	}
	products.Set(c)
	slog.Info("catalog loaded", "source", source, "products", c.Len())
}

// openStore builds the cart snapshot backend for the configured driver.
// The returned func releases its connections.
func openStore(ctx context.Context, cfg config.StoreConfig) (cart.Store, func(), error) {
	noop := func() {}

	switch strings.ToLower(cfg.Driver) {
	case store.DriverMemory:
		return store.NewMemory(), noop, nil

	case store.DriverFile:
		f, err := store.NewFile(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil

	case store.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		slog.Info("connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return store.NewRedis(client), func() { client.Close() }, nil

	case store.DriverPostgres:
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("parse database URL: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.MaxConns)
		poolConfig.MinConns = int32(cfg.MinConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}

		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		slog.Info("connected to database", "database", poolConfig.ConnConfig.Database)
		return pg, pool.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
