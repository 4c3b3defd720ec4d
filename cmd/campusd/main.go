package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/campus-scheduler/internal/application"
	"github.com/example/campus-scheduler/internal/config"
	httptransport "github.com/example/campus-scheduler/internal/http"
	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/persistence/file"
	"github.com/example/campus-scheduler/internal/persistence/memory"
	"github.com/example/campus-scheduler/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	guard := application.NewDocumentGuard(store)
	universityService := application.NewUniversityService(guard, logger)
	scheduleService := application.NewScheduleService(guard, logger)
	authService, err := application.NewAuthService(cfg.SeedUsers, cfg.SessionTTL, logger)
	if err != nil {
		logger.Error("failed to seed user accounts", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:         httptransport.NewAuthHandler(authService, logger),
		Universities: httptransport.NewUniversityHandler(universityService, logger),
		Schedules:    httptransport.NewScheduleHandler(scheduleService, logger),
		Sessions:     authService,
		Logger:       logger,
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("campus scheduler API listening", "addr", server.Addr, "storage", cfg.Storage)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// openStore selects the configured storage backend. The returned cleanup
// releases backend resources and is safe to call once.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (persistence.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage {
	case config.StorageMemory:
		return memory.NewStore(), noop, nil
	case config.StorageFile:
		return file.NewStore(cfg.DataPath), noop, nil
	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.SQLiteDSN)
		if err != nil {
			return nil, noop, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close storage", "error", err)
			}
		}
		return store, cleanup, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
