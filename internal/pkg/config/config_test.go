//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"appointment-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest clears keys for the duration of the test so the env file is the only source.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig(t *testing.T) {
	keys := []string{"PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "REDIS_ENABLED", "BOOKING_TIMEZONE", "SERVER_WRITE_TIMEOUT"}

	t.Run("env file fills required values and defaults apply", func(t *testing.T) {
		unsetForTest(t, keys...)
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte(
			"PORT=9000\nDB_USER=clinic\nDB_PASSWORD=secret\nDB_NAME=appointments\nJWT_SECRET=shh\nSERVER_WRITE_TIMEOUT=45s\n",
		), 0o600))
		t.Setenv("ENV_FILE", envFile)

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
		assert.Equal(t, "appointments", cfg.DB.DBName)
		assert.Equal(t, "Asia/Kolkata", cfg.Booking.TimeZone)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 2*time.Second, cfg.AMQP.DialTimeout)
		assert.Equal(t, 30*time.Second, cfg.AMQP.RetryDelay)
	})

	t.Run("process environment wins over the env file", func(t *testing.T) {
		unsetForTest(t, keys...)
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte(
			"PORT=9000\nDB_USER=clinic\nDB_PASSWORD=secret\nDB_NAME=appointments\nJWT_SECRET=shh\n",
		), 0o600))
		t.Setenv("ENV_FILE", envFile)
		t.Setenv("PORT", "7000")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "7000", cfg.Server.Port)
	})

	t.Run("missing required value fails", func(t *testing.T) {
		unsetForTest(t, keys...)
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}

func TestBookingConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Kolkata", config.BookingConfig{TimeZone: "Asia/Kolkata"}.Location().String())
	assert.Equal(t, time.UTC, config.BookingConfig{TimeZone: "Mars/Olympus"}.Location())
}
