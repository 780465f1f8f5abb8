package arena

import "github.com/prometheus/client_golang/prometheus"

var (
	usedDesc = prometheus.NewDesc(
		"arena_storage_used_bytes",
		"Bytes currently handed out by the storage, alignment padding included.",
		[]string{"arena"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		"arena_storage_capacity_bytes",
		"Fixed capacity of the storage buffer in bytes.",
		[]string{"arena"}, nil,
	)
	allocationsDesc = prometheus.NewDesc(
		"arena_storage_allocations_total",
		"Successful allocations served by the storage.",
		[]string{"arena"}, nil,
	)
	failuresDesc = prometheus.NewDesc(
		"arena_storage_allocation_failures_total",
		"Allocations refused because the storage had no room.",
		[]string{"arena"}, nil,
	)
	reclaimsDesc = prometheus.NewDesc(
		"arena_storage_tail_reclaims_total",
		"Deallocations that rolled the cursor back.",
		[]string{"arena"}, nil,
	)
)

var _ prometheus.Collector = (*Collector)(nil)

// Collector exposes a Storage's statistics as Prometheus metrics. Register
// one per storage; the arena label tells instances apart. The storage is
// single-threaded, so the collector must be scraped from the same goroutine
// that uses the storage (or while it is quiescent).
type Collector struct {
	name string
	s    *Storage
}

// NewCollector returns a collector reporting on s under the given arena
// label.
func NewCollector(name string, s *Storage) *Collector {
	return &Collector{name: name, s: s}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- usedDesc
	descs <- capacityDesc
	descs <- allocationsDesc
	descs <- failuresDesc
	descs <- reclaimsDesc
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	m := c.s.Metrics()
	metrics <- prometheus.MustNewConstMetric(usedDesc, prometheus.GaugeValue, float64(m.Used), c.name)
	metrics <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(m.Capacity), c.name)
	metrics <- prometheus.MustNewConstMetric(allocationsDesc, prometheus.CounterValue, float64(m.Allocations), c.name)
	metrics <- prometheus.MustNewConstMetric(failuresDesc, prometheus.CounterValue, float64(m.Failures), c.name)
	metrics <- prometheus.MustNewConstMetric(reclaimsDesc, prometheus.CounterValue, float64(m.Reclaims), c.name)
}
