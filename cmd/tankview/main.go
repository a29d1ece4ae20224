package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tankview/internal/clipboard"
	"tankview/internal/config"
	"tankview/internal/handler"
	"tankview/internal/loader"
	"tankview/internal/location"
	"tankview/internal/notify"
	"tankview/internal/prefs"
	"tankview/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	// CLI flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DataSource, "data", cfg.DataSource, "Station data file (path or URL)")
	flag.StringVar(&cfg.PrefsPath, "prefs", cfg.PrefsPath, "Preference database file")
	flag.StringVar(&cfg.Standort, "standort", cfg.Standort, "Home base address used as route origin")
	flag.Parse()

	// Context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the preference store
	pf, err := prefs.Open(cfg.PrefsPath, logger)
	if err != nil {
		logger.Error("failed to open preference store", "error", err)
		os.Exit(1)
	}
	defer pf.Close()

	// Load station data; keep reloading when a refresh interval is set
	store := loader.NewStore()
	ld := loader.New(cfg.DataSource, logger)
	go loader.Run(ctx, ld, store, time.Duration(cfg.RefreshMin)*time.Minute, logger)

	// Location service: without a configured address, route links simply
	// omit the origin.
	var provider location.Provider
	if p := location.NewNominatimProvider(cfg.Nominatim, cfg.Standort); p != nil {
		provider = p
	} else {
		logger.Info("no TANKVIEW_STANDORT set, routes open without origin")
	}
	loc := location.NewService(provider, logger)

	clip := clipboard.New(logger)
	toasts := notify.NewCenter()

	h := handler.New(store, loc, clip, toasts, pf, logger)
	srv := server.New(cfg, h, store.Ready(), logger)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
		os.Exit(0)
	}()

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
