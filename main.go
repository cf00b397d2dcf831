package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CAFxX/httpcompression"
	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/config"
	"github.com/jmorel/devfolio/internal/handler"
	"github.com/jmorel/devfolio/internal/notify"
	"github.com/jmorel/devfolio/internal/repository/sqlite"
	"github.com/jmorel/devfolio/internal/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	hub := notify.NewHub()
	notifier := notify.Multi{notify.NewLogger(logger), hub}

	store := blog.New(context.Background(), db.States(), notifier)
	siteService := site.NewService(db.Contacts(), notifier)

	loginLimit := handler.NewTokenBucket(cfg.LoginRatePerSec, cfg.LoginBurst)
	contactLimit := handler.NewTokenBucket(cfg.ContactRatePerSec, cfg.ContactBurst)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, store, siteService, hub, loginLimit, contactLimit)

	var h http.Handler = handler.SecurityHeaders(handler.RequestLogger(mux))
	if cfg.Compression {
		compress, err := httpcompression.DefaultAdapter()
		if err != nil {
			slog.Error("failed to build compression adapter", "error", err)
			os.Exit(1)
		}
		h = compress(h)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
