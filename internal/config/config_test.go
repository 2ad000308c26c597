package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabapcia/btcwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingDotenv returns a path inside a fresh temp dir that does not exist.
func missingDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load(missingDotenv(t))
		require.NoError(t, err)

		assert.Equal(t, Config{
			LogLevel: "info",
			API: API{
				BaseURL:      "https://blockchain.info",
				Timeout:      10 * time.Second,
				RetryMax:     2,
				RetryWaitMin: time.Second,
				RetryWaitMax: 5 * time.Second,
			},
			Telemetry: Telemetry{
				ServiceName: "btcwatch",
			},
		}, cfg)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("BTCWATCH_LOG_LEVEL", "debug")
		t.Setenv("BTCWATCH_API_BASE_URL", "http://localhost:8080")
		t.Setenv("BTCWATCH_API_TIMEOUT", "3s")
		t.Setenv("BTCWATCH_API_RETRY_MAX", "0")
		t.Setenv("BTCWATCH_REDIS_ADDR", "localhost:6379")
		t.Setenv("BTCWATCH_REDIS_DB", "2")
		t.Setenv("BTCWATCH_TELEMETRY_ENABLED", "true")

		cfg, err := Load(missingDotenv(t))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.API.Timeout)
		assert.Equal(t, 0, cfg.API.RetryMax)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.True(t, cfg.Telemetry.Enabled)
	})

	t.Run("ignores unprefixed variables", func(t *testing.T) {
		t.Setenv("USERNAME", "someone")
		t.Setenv("TIMEOUT", "1m")

		cfg, err := Load(missingDotenv(t))
		require.NoError(t, err)

		assert.Empty(t, cfg.Redis.Username)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	})

	t.Run("reads the dotenv file without overriding the environment", func(t *testing.T) {
		file := missingDotenv(t)
		require.NoError(t, os.WriteFile(file, []byte("BTCWATCH_REDIS_ADDR=redis:6379\nBTCWATCH_LOG_LEVEL=warn\n"), 0o600))

		// godotenv sets variables for the whole process; register them for cleanup.
		t.Setenv("BTCWATCH_REDIS_ADDR", "")
		os.Unsetenv("BTCWATCH_REDIS_ADDR")
		t.Setenv("BTCWATCH_LOG_LEVEL", "error")

		cfg, err := Load(file)
		require.NoError(t, err)

		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("BTCWATCH_LOG_LEVEL", "verbose")

		_, err := Load(missingDotenv(t))
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("rejects a retry wait window upside down", func(t *testing.T) {
		t.Setenv("BTCWATCH_API_RETRY_WAIT_MIN", "10s")
		t.Setenv("BTCWATCH_API_RETRY_WAIT_MAX", "1s")

		_, err := Load(missingDotenv(t))
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("rejects a malformed duration", func(t *testing.T) {
		t.Setenv("BTCWATCH_API_TIMEOUT", "soon")

		_, err := Load(missingDotenv(t))
		assert.Error(t, err)
	})
}
