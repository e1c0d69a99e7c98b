package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type config struct {
	Addr            string
	Port            string
	AppName         string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads the server settings from the environment.
func loadConfig() (config, error) {
	cfg := config{
		Addr:    os.Getenv("HTTP_ADDR"),
		Port:    getenv("HTTP_PORT", "8080"),
		AppName: getenv("APP_NAME", "Coin Changer Server"),
	}

	switch strings.ToLower(getenv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return config{}, fmt.Errorf("unknown LOG_LEVEL %q", os.Getenv("LOG_LEVEL"))
	}

	timeout, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}
