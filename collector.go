package arena

import "github.com/prometheus/client_golang/prometheus"

// Collector exports the metrics of a set of named arenas to Prometheus.
// Like the arenas it reads, it is not goroutine-safe: register it only where
// scrapes cannot race with allocation.
type Collector struct {
	arenas map[string]*Arena

	inUse       *prometheus.Desc
	capacity    *prometheus.Desc
	allocations *prometheus.Desc
	failed      *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"arena"}
	return &Collector{
		arenas: make(map[string]*Arena),
		inUse: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "bytes_in_use"),
			"Bytes handed out by the arena, including alignment padding.",
			labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "capacity_bytes"),
			"Usable capacity of the arena.",
			labels, nil),
		allocations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "allocations_total"),
			"Successful allocations from the arena.",
			labels, nil),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "failed_allocations_total"),
			"Allocations refused because the arena was full.",
			labels, nil),
	}
}

// Add starts exporting a under the given name, replacing any arena already
// registered with that name.
func (c *Collector) Add(name string, a *Arena) {
	c.arenas[name] = a
}

// Remove stops exporting the arena registered under name.
func (c *Collector) Remove(name string) {
	delete(c.arenas, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.inUse
	ch <- c.capacity
	ch <- c.allocations
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, a := range c.arenas {
		m := a.Metrics()
		ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.SizeInUse), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(m.Allocations), name)
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(m.Failed), name)
	}
}
