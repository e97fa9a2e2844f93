package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memoize/pkg/config"
)

type cacheConfig struct {
	MaxEntries int           `env:"TEST_CACHE_MAX_ENTRIES" envDefault:"1000" yaml:"max_entries"`
	LogLevel   string        `env:"TEST_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	Timeout    time.Duration `env:"TEST_REQUEST_TIMEOUT" envDefault:"10s" yaml:"timeout"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg cacheConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 1000, cfg.MaxEntries)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CACHE_MAX_ENTRIES", "42")
		t.Setenv("TEST_LOG_LEVEL", "debug")

		var cfg cacheConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 42, cfg.MaxEntries)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid value errors", func(t *testing.T) {
		t.Setenv("TEST_CACHE_MAX_ENTRIES", "not-a-number")

		var cfg cacheConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingEnv)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[cacheConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_CACHE_MAX_ENTRIES", "broken")

		assert.Panics(t, func() {
			var cfg cacheConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "cache.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("file values applied", func(t *testing.T) {
		path := writeFile(t, "max_entries: 256\nlog_level: warn\n")

		var cfg cacheConfig
		require.NoError(t, config.LoadFile(path, &cfg))

		assert.Equal(t, 256, cfg.MaxEntries)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("file wins over environment", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", "debug")
		path := writeFile(t, "log_level: warn\n")

		var cfg cacheConfig
		require.NoError(t, config.LoadFile(path, &cfg))

		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("fields absent from file keep environment values", func(t *testing.T) {
		t.Setenv("TEST_CACHE_MAX_ENTRIES", "77")
		path := writeFile(t, "log_level: warn\n")

		var cfg cacheConfig
		require.NoError(t, config.LoadFile(path, &cfg))

		assert.Equal(t, 77, cfg.MaxEntries)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing file errors", func(t *testing.T) {
		var cfg cacheConfig
		err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := writeFile(t, "max_entries: [broken\n")

		var cfg cacheConfig
		err := config.LoadFile(path, &cfg)
		assert.ErrorIs(t, err, config.ErrParsingYAML)
	})
}
