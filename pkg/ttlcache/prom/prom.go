// Package prom adapts the ttlcache Metrics interface to Prometheus
// counters, so cache behaviour can be scraped without the cache itself
// depending on a metrics backend.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/clientkit/pkg/ttlcache"
)

// Adapter implements ttlcache.Metrics on top of Prometheus counters.
// All Prometheus metric types are goroutine-safe, so the adapter is too.
type Adapter struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	evicts *prometheus.CounterVec
}

// New constructs an adapter and registers its collectors.
//   - reg: registry to register with (nil means prometheus.DefaultRegisterer)
//   - namespace, subsystem: standard Prometheus name parts
//   - constLabels: static labels applied to every metric (may be nil)
func New(reg prometheus.Registerer, namespace, subsystem string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "misses_total",
			Help:        "Cache misses, including reads of expired entries",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "evictions_total",
				Help:        "Entries removed, labelled by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter for the given reason.
func (a *Adapter) Evict(r ttlcache.EvictReason) {
	a.evicts.WithLabelValues(r.String()).Inc()
}

var _ ttlcache.Metrics = (*Adapter)(nil)
