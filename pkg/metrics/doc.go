// Package metrics exposes memoization cache activity as Prometheus
// counters.
//
// The core memoize package reports lifecycle events through optional hooks
// and knows nothing about Prometheus; this package bridges the two for
// applications that already run a metrics endpoint.
//
// # Usage
//
//	reg := prometheus.NewRegistry()
//	collector := metrics.NewCollector(reg, "urlcache")
//
//	m, err := memoize.New(fetch, memoize.Config[string, []byte]{
//	    Hasher:     hash.String,
//	    StateOf:    func(string) memoize.State { return memoize.NoState },
//	    MaxEntries: 512,
//	    Hooks:      metrics.HooksFor[string](collector),
//	})
package metrics
