package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris/coin-bank/pkg/api"
	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/handlers"
	wshandler "github.com/chris/coin-bank/pkg/handlers/websockets"
	"github.com/chris/coin-bank/pkg/middleware"
	"github.com/chris/coin-bank/pkg/models"
	"github.com/chris/coin-bank/pkg/storage/memory"
	"github.com/chris/coin-bank/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// The reserves live for the lifetime of the process.
	store := memory.New(models.SeedReserves(), logger)
	hub := websockets.NewHub(logger)
	bank := coinbank.NewService(store, hub, logger)

	handler := handlers.NewApiHandler(bank, cfg.AppName, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: router,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	})
	router.Method(http.MethodGet, "/ws", wshandler.NewHandler(hub, logger))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Addr, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	// Hijacked websocket connections are not tracked by Shutdown.
	srv.RegisterOnShutdown(hub.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("app", cfg.AppName))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server stopped")
		return nil
	}
}
