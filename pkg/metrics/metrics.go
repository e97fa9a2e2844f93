package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/memoize/pkg/memoize"
)

// Collector bundles the Prometheus counters describing one memoizer's
// lifecycle events.
type Collector struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Invalidations prometheus.Counter
	Evictions     prometheus.Counter
	Discards      prometheus.Counter
}

// NewCollector creates and registers the memoization counters against reg.
// The namespace prefixes every metric name so several memoizers can coexist
// in one registry. Registration panics on duplicate metrics, which surfaces
// wiring mistakes at startup.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memoize_hits_total",
			Help:      "Total number of calls served from an existing result handle.",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memoize_misses_total",
			Help:      "Total number of calls that created a new cache entry.",
		}),
		Invalidations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memoize_invalidations_total",
			Help:      "Total number of entries recomputed after a state change.",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memoize_evictions_total",
			Help:      "Total number of entries evicted for capacity.",
		}),
		Discards: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memoize_discards_total",
			Help:      "Total number of entries detached on settlement (failure or cache rejection).",
		}),
	}
}

// HooksFor adapts the collector into memoization lifecycle hooks for an
// argument type A. The returned hooks can be set directly on
// memoize.Config.Hooks.
func HooksFor[A any](c *Collector) *memoize.Hooks[A] {
	return &memoize.Hooks[A]{
		OnHit:        func(string, A) { c.Hits.Inc() },
		OnMiss:       func(string, A) { c.Misses.Inc() },
		OnInvalidate: func(string, A) { c.Invalidations.Inc() },
		OnEvict:      func(string) { c.Evictions.Inc() },
		OnDiscard:    func(string, error) { c.Discards.Inc() },
	}
}
