// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command ocms-menu serves navigation menus rendered per company, language
// and access profile.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/olegiv/ocms-menu/internal/config"
	"github.com/olegiv/ocms-menu/internal/logging"
	"github.com/olegiv/ocms-menu/internal/store"
	"github.com/olegiv/ocms-menu/internal/version"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 30 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "ocms-menu - navigation menu service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SESSION_SECRET        Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_DB_DRIVER             sqlite|mysql (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_DB_PATH               SQLite database path (default: ./data/ocms-menu.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_DB_DSN                MySQL DSN\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_CACHE_TYPE            sql|memory|redis (default: sql)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_CACHE_FLUSH_SCHEDULE  Cron expression for flushing all menus\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_OBFUSCATOR            development|sqids (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_ADMIN_TOKEN           Bearer token of the admin endpoints\n")
	}
	flag.Parse()

	if *showVersion {
		v := version.Get()
		_, _ = fmt.Printf("ocms-menu %s (built: %s)\n", v, v.BuildTime)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)

	if cfg.DBDriver == store.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	logger.Info("initializing database", "driver", cfg.DBDriver)
	db, err := store.Open(cfg.DBDriver, cfg.DSN(), store.DefaultDBConfig())
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	if err := store.MigrateDriver(db, cfg.DBDriver); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// From here on WARN and ERROR records also go to the event log.
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	if cfg.DoSeed {
		if _, err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	a, err := newApp(cfg, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("error closing menu cache", "error", err)
		}
	}()

	router, err := a.routes()
	if err != nil {
		return fmt.Errorf("building routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	a.scheduler.Start()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			"addr", cfg.ServerAddr(),
			"env", cfg.Env,
			"version", version.Get().String(),
			"generators", a.registry.Names(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
