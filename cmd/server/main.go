package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/config"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/logging"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/source"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/web"
	"github.com/joho/godotenv"
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
		"source", cfg.Source.URL,
		"reload_interval", cfg.Source.ReloadInterval,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	loader := source.NewLoader(cfg.Source)
	store := source.NewStore()

	// Initial load. Never fails: the loader substitutes the fallback
	// dataset on any fetch or parse error.
	ctx := context.Background()
	store.Replace(loader.Load(ctx))

	snap := store.Current()
	slog.Info("initial dataset ready",
		"load_id", snap.LoadID,
		"rows", len(snap.Dataset),
		"fallback", snap.Fallback,
	)

	server := web.NewServer(store, loader, cfg)

	// Periodic reload, if configured
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	if cfg.Source.ReloadInterval > 0 {
		go reloadLoop(jobCtx, loader, store, cfg.Source.ReloadInterval)
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// reloadLoop replaces the dataset snapshot wholesale on a fixed interval.
func reloadLoop(ctx context.Context, loader *source.Loader, store *source.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Replace(loader.Load(ctx))
			snap := store.Current()
			slog.Info("dataset reloaded",
				"load_id", snap.LoadID,
				"rows", len(snap.Dataset),
				"fallback", snap.Fallback,
			)
		}
	}
}
