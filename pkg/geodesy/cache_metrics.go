package geodesy

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything reporting CacheStats, such as a BoundsCache of any
// CRS.
type StatsSource interface {
	Stats() CacheStats
}

// CacheCollector exports the counters of a bounds cache to Prometheus.
// Values are read from the cache on every scrape.
type CacheCollector struct {
	source StatsSource

	entries    *prometheus.Desc
	maxEntries *prometheus.Desc
	hits       *prometheus.Desc
	misses     *prometheus.Desc
	evictions  *prometheus.Desc
}

// NewCacheCollector returns a collector for source. Metric names are
// prefixed with namespace; constLabels are attached to every series, which
// allows several caches to share a registry.
//
// Example:
//
//	reg.MustRegister(geodesy.NewCacheCollector(cache, "charts", prometheus.Labels{"crs": "4326"}))
func NewCacheCollector(source StatsSource, namespace string, constLabels prometheus.Labels) *CacheCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "bounds_cache", name),
			help, nil, constLabels,
		)
	}
	return &CacheCollector{
		source:     source,
		entries:    desc("entries", "Number of cached bounding boxes."),
		maxEntries: desc("max_entries", "Cache capacity, 0 when unbounded."),
		hits:       desc("hits_total", "Lookups served from the cache."),
		misses:     desc("misses_total", "Lookups that computed the bounding box."),
		evictions:  desc("evictions_total", "Entries evicted by the LRU policy."),
	}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.maxEntries
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries))
	ch <- prometheus.MustNewConstMetric(c.maxEntries, prometheus.GaugeValue, float64(s.MaxEntries))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
}
