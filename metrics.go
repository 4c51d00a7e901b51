package heap_master

import (
	"github.com/prometheus/client_golang/prometheus"

	"heap_master/internal/heap"
)

// Stats 区域使用快照。
type Stats = heap.Stats

// ReadStats 返回进程级区域的当前快照。
func ReadStats() Stats {
	ensureInit()
	return std.ReadStats()
}

var (
	regionSizeDesc = prometheus.NewDesc(
		"heap_master_region_size_bytes",
		"Total reserved region size.",
		nil,
		nil,
	)
	usedDesc = prometheus.NewDesc(
		"heap_master_used_bytes",
		"Bytes consumed by the bump cursor, including headers and padding.",
		nil,
		nil,
	)
	remainingDesc = prometheus.NewDesc(
		"heap_master_remaining_bytes",
		"Bytes left between the cursor and the region end.",
		nil,
		nil,
	)
	allocsDesc = prometheus.NewDesc(
		"heap_master_allocs_total",
		"Successful allocations.",
		nil,
		nil,
	)
	freesDesc = prometheus.NewDesc(
		"heap_master_frees_total",
		"Free calls. Freed space is never reclaimed.",
		nil,
		nil,
	)
)

// collector 把区域快照按 const metric 暴露出去，采集不加锁，
// 与分配并发使用同样受单线程契约约束。
type collector struct{}

// Collector 返回进程级区域的 prometheus 采集器。
func Collector() prometheus.Collector {
	ensureInit()
	return collector{}
}

func (collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- regionSizeDesc
	descs <- usedDesc
	descs <- remainingDesc
	descs <- allocsDesc
	descs <- freesDesc
}

func (collector) Collect(m chan<- prometheus.Metric) {
	s := std.ReadStats()
	m <- prometheus.MustNewConstMetric(regionSizeDesc, prometheus.GaugeValue, float64(s.RegionSize))
	m <- prometheus.MustNewConstMetric(usedDesc, prometheus.GaugeValue, float64(s.Used))
	m <- prometheus.MustNewConstMetric(remainingDesc, prometheus.GaugeValue, float64(s.Remaining))
	m <- prometheus.MustNewConstMetric(allocsDesc, prometheus.CounterValue, float64(s.Allocs))
	m <- prometheus.MustNewConstMetric(freesDesc, prometheus.CounterValue, float64(s.Frees))
}
