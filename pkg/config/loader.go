package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Load populates cfg from environment variables based on `env` field tags.
// On first use it also loads the default .env file from the working
// directory, if one exists.
//
// Example:
//
//	type CacheConfig struct {
//	    MaxEntries int    `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`
//	    LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CacheConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](cfg *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})
	if cfg == nil {
		return ErrNilPointer
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingEnv, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for
// configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile populates cfg from the environment first and then overlays the
// YAML file, so values present in the file take precedence over environment
// variables and `envDefault` tags. Fields absent from the file keep their
// environment-derived values. Field mapping uses `env` tags for the
// environment and `yaml` tags for the file.
func LoadFile[T any](path string, cfg *T) error {
	if err := Load(cfg); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Join(ErrParsingYAML, err)
	}
	return nil
}
