package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("HTTP_PORT", "")
		t.Setenv("APP_NAME", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "")

		cfg, err := loadConfig()

		require.NoError(t, err)
		assert.Equal(t, "", cfg.Addr)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "Coin Changer Server", cfg.AppName)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "127.0.0.1")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("APP_NAME", "Till")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		cfg, err := loadConfig()

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", cfg.Addr)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "Till", cfg.AppName)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Bad Log Level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		_, err := loadConfig()

		assert.Error(t, err)
	})

	t.Run("Bad Shutdown Timeout", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := loadConfig()

		assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
	})
}
