// Command urlcache demonstrates the memoize package by caching HTTP GET
// responses. It fetches every URL given on the command line twice: the first
// round invokes the network, the second is served from the cache. Cache
// activity is logged and counted through Prometheus metrics, and the
// configuration comes from the environment (optionally a YAML file via
// -config).
//
// Usage:
//
//	CACHE_MAX_ENTRIES=16 urlcache https://example.com https://go.dev
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/memoize/pkg/async"
	"github.com/dmitrymomot/memoize/pkg/config"
	"github.com/dmitrymomot/memoize/pkg/hash"
	"github.com/dmitrymomot/memoize/pkg/logger"
	"github.com/dmitrymomot/memoize/pkg/memoize"
	"github.com/dmitrymomot/memoize/pkg/metrics"
)

type appConfig struct {
	MaxEntries     int           `env:"CACHE_MAX_ENTRIES" envDefault:"64" yaml:"max_entries"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" yaml:"request_timeout"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"debug" yaml:"log_level"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text" yaml:"log_format"`
}

func main() {
	configPath := flag.String("config", "", "optional YAML configuration file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: urlcache [-config file] URL [URL...]")
		os.Exit(2)
	}

	var cfg appConfig
	var err error
	if *configPath != "" {
		err = config.LoadFile(*configPath, &cfg)
	} else {
		err = config.Load(&cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "urlcache")),
	)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg, "urlcache")

	client := &http.Client{Timeout: cfg.RequestTimeout}

	fetch := func(ctx context.Context, url string) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("build request for %s: %w", url, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("GET %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("read body of %s: %w", url, err)
		}
		return string(body), nil
	}

	m, err := memoize.New(fetch, memoize.Config[string, string]{
		Hasher:     hash.String,
		StateOf:    func(string) memoize.State { return memoize.NoState },
		MaxEntries: cfg.MaxEntries,
		Hooks:      metrics.HooksFor[string](collector),
		Logger:     log,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "memoize:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	urls := flag.Args()

	for round := 1; round <= 2; round++ {
		start := time.Now()

		futures := make([]*async.Future[string], 0, len(urls))
		for _, url := range urls {
			future, err := m.Call(ctx, url)
			if err != nil {
				log.Error("call failed", logger.Error(err), slog.String("url", url))
				continue
			}
			futures = append(futures, future)
		}

		bodies, err := async.WaitAll(futures...)
		if err != nil {
			log.Error("fetch failed", logger.Error(err))
		}

		var total int
		for _, body := range bodies {
			total += len(body)
		}

		log.Info("round complete",
			slog.Int("round", round),
			slog.Int("urls", len(urls)),
			slog.Int("bytes", total),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	log.Info("cache summary", slog.Int("entries", m.Len()))

	families, err := reg.Gather()
	if err != nil {
		log.Error("gather metrics", logger.Error(err))
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			log.Info("metric",
				slog.String("name", family.GetName()),
				slog.Float64("value", metric.GetCounter().GetValue()),
			)
		}
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
