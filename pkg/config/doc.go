// Package config provides type-safe loading of application configuration
// from environment variables and optional YAML files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// the default .env file is loaded once per process, then environment
// variables are parsed into any struct annotated with `env` tags. LoadFile
// additionally overlays a YAML file on top of the environment, so an
// explicit per-deployment file takes precedence over ambient variables.
//
// # Usage
//
//	type Config struct {
//	    MaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000" yaml:"max_entries"`
//	    Timeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" yaml:"timeout"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }        // env only
//	if err := config.LoadFile("cache.yaml", &cfg); err != nil { ... } // env, then file
//
// MustLoad panics on failure for configuration the process cannot run
// without.
package config
