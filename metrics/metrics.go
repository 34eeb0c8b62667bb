// Package metrics exports probemap occupancy to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/probemap"
)

const subsystem = "probemap"

// StatsSource is implemented by probemap.Map and probemap.Set.
type StatsSource interface {
	Stats() probemap.Stats
}

// Collector reads a table's stats on every scrape.
// It doesn't lock the table, so scraping must not race with writers.
type Collector struct {
	src StatsSource

	size       *prometheus.Desc
	capacity   *prometheus.Desc
	tombstones *prometheus.Desc
	fillRatio  *prometheus.Desc
	resizes    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for src. Metric names are prefixed with
// namespace and the probemap subsystem, labels are attached to every metric.
func NewCollector(namespace string, labels prometheus.Labels, src StatsSource) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, labels)
	}

	return &Collector{
		src:        src,
		size:       desc("size", "Number of keys stored"),
		capacity:   desc("capacity", "Number of slots in the backing array"),
		tombstones: desc("tombstones", "Number of slots holding a tombstone"),
		fillRatio:  desc("fill_ratio", "Ratio of stored keys to capacity"),
		resizes:    desc("resizes_total", "Total number of resizes"),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.tombstones
	ch <- c.fillRatio
	ch <- c.resizes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()

	var fillRatio float64
	if stats.Capacity > 0 {
		fillRatio = float64(stats.Size) / float64(stats.Capacity)
	}

	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(stats.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(stats.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.fillRatio, prometheus.GaugeValue, fillRatio)
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(stats.Resizes))
}
