// Command server runs the software catalog API.
//
// It loads configuration from the environment (and an optional .env file),
// opens the configured slot store, restores the catalog and serves the HTTP
// API until SIGINT or SIGTERM, then drains in-flight requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-soft-portal/internal/config"
	httpapi "github.com/tbourn/go-soft-portal/internal/http"
	"github.com/tbourn/go-soft-portal/internal/observability"
	"github.com/tbourn/go-soft-portal/internal/persist"
	"github.com/tbourn/go-soft-portal/internal/repo"
	"github.com/tbourn/go-soft-portal/internal/seed"
	"github.com/tbourn/go-soft-portal/internal/services"
	"github.com/tbourn/go-soft-portal/internal/sysutil"
	"github.com/tbourn/go-soft-portal/internal/view"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.ConfigureLogger(cfg.LogLevel, cfg.LogPretty, os.Stderr)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appVersion := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, appVersion,
		observability.StoreBackend(cfg.Store.Backend))
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	var src seed.Source
	if cfg.SeedFile != "" {
		src = seed.FromFile(cfg.SeedFile)
	}
	svc := services.NewCatalogService(store, src)
	svc.MaxUploadBytes = cfg.MaxUploadBytes
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, svc, view.NewRegistry(cfg.SessionTTL), cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", appVersion).
			Str("store", cfg.Store.Backend).
			Str("base_path", cfg.APIBasePath).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}

// openStore builds the slot store selected by STORE_BACKEND together with a
// function releasing its connections.
func openStore(ctx context.Context, cfg config.Config) (persist.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := persist.OpenRedis(ctx, persist.RedisOptions{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return persist.NewRedisStore(client, cfg.Store.RedisPrefix), client.Close, nil

	case config.BackendMemory:
		log.Warn().Msg("memory store: catalog changes are lost on restart")
		return persist.NewMemoryStore(), func() error { return nil }, nil

	default:
		db, err := repo.OpenSQLite(cfg.Store.DBPath, repo.Options{
			Tracing: cfg.OTEL.Enabled,
			Silent:  cfg.GinMode == gin.ReleaseMode,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.Store.DBPath, err)
		}
		if err := repo.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		store := persist.NewSQLStore(db)
		if keys, err := store.Keys(ctx); err == nil {
			log.Info().Strs("slots", keys).Str("db", cfg.Store.DBPath).Msg("sqlite store opened")
		}
		return store, sqlDB.Close, nil
	}
}
