package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verdictCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "verdict_cache",
	Name:      "lookups_total",
	Help:      "Count of verdict cache lookups by result.",
}, []string{"result"})

// VerdictCache tracks hit ratio of the api-gateway verdict cache.
type VerdictCache struct{}

// NewVerdictCache creates a VerdictCache collector.
func NewVerdictCache() *VerdictCache {
	return &VerdictCache{}
}

// ObserveLookup records a cache hit or miss.
func (VerdictCache) ObserveLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	verdictCacheLookupsTotal.WithLabelValues(result).Inc()
}
