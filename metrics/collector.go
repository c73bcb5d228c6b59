// Package metrics exports hash table statistics as prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/hashtable"
)

const namespace = "hashtable"

// StatsSource is anything that can report table statistics.
// A shared table must be synchronized, e.g. hashtable.SyncTable.
type StatsSource interface {
	Stats() hashtable.Stats
}

// Collector reads stats from its source on every scrape.
type Collector struct {
	source StatsSource

	entries     *prometheus.Desc
	capacity    *prometheus.Desc
	baseSize    *prometheus.Desc
	tombstones  *prometheus.Desc
	loadFactor  *prometheus.Desc
	grows       *prometheus.Desc
	shrinks     *prometheus.Desc
	compactions *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for source. The name label tells
// several tables apart in one registry.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"table": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}

	return &Collector{
		source:      source,
		entries:     desc("entries", "Number of live entries"),
		capacity:    desc("capacity_slots", "Number of slots, always prime"),
		baseSize:    desc("base_size", "Logical size driving resize targets"),
		tombstones:  desc("tombstones", "Number of slots holding a deleted entry marker"),
		loadFactor:  desc("load_factor_ratio", "Live entries over capacity, truncated to whole percents"),
		grows:       desc("grows_total", "Number of times the table grew"),
		shrinks:     desc("shrinks_total", "Number of times the table shrank"),
		compactions: desc("compactions_total", "Number of same-size rebuilds dropping tombstones"),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.baseSize
	ch <- c.tombstones
	ch <- c.loadFactor
	ch <- c.grows
	ch <- c.shrinks
	ch <- c.compactions
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.baseSize, prometheus.GaugeValue, float64(s.BaseSize))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(s.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, float64(s.LoadFactor)/100)
	ch <- prometheus.MustNewConstMetric(c.grows, prometheus.CounterValue, float64(s.Grows))
	ch <- prometheus.MustNewConstMetric(c.shrinks, prometheus.CounterValue, float64(s.Shrinks))
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(s.Compactions))
}
