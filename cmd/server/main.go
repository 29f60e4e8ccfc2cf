package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devforge/devforge/internal/api"
	"github.com/devforge/devforge/internal/config"
	"github.com/devforge/devforge/internal/contact"
	"github.com/devforge/devforge/internal/database"
	"github.com/devforge/devforge/internal/mailer"
	"github.com/devforge/devforge/internal/portfolio"
	"github.com/devforge/devforge/internal/storage"
	"github.com/devforge/devforge/internal/team"
	"github.com/devforge/devforge/internal/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	notifier := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Email:    cfg.SMTPEmail,
		Password: cfg.SMTPPassword,
		NotifyTo: cfg.NotificationEmail,
	})
	if !notifier.Configured() {
		slog.Warn("email not configured; contact notifications will be skipped")
	}

	router := api.NewRouter(api.Deps{
		Templates:     template.NewRepository(db.Pool()),
		Portfolio:     portfolio.NewRepository(db.Pool()),
		Team:          team.NewRepository(db.Pool()),
		Contacts:      contact.NewRepository(db.Pool()),
		Notifier:      notifier,
		Store:         storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey),
		Version:       cfg.Version,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		CORSOrigins:   cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting DevForge API server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	// In-flight notification goroutines are not tracked; shutdown may cut
	// an unfinished send.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
