package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors mirror the recorded metrics as Prometheus series for scraping.
type Collectors struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	businessEvents *prometheus.CounterVec
	poolConns      *prometheus.GaugeVec
	goroutines     prometheus.Gauge
	heapAllocMB    prometheus.Gauge
}

func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playlisttracker",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "playlisttracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		businessEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playlisttracker",
			Name:      "business_events_total",
			Help:      "Sum of business metric values by name.",
		}, []string{"name"}),
		poolConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "playlisttracker",
			Name:      "db_pool_connections",
			Help:      "Database pool connections by state.",
		}, []string{"state"}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "playlisttracker",
			Name:      "goroutines",
			Help:      "Number of goroutines.",
		}),
		heapAllocMB: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "playlisttracker",
			Name:      "heap_alloc_megabytes",
			Help:      "Heap allocation in megabytes.",
		}),
	}
	reg.MustRegister(c.httpRequests, c.httpDuration, c.businessEvents, c.poolConns, c.goroutines, c.heapAllocMB)
	return c
}

func (c *Collectors) observeHTTP(m HTTPMetric) {
	c.httpRequests.WithLabelValues(m.Method, m.Path, strconv.Itoa(m.StatusCode)).Inc()
	c.httpDuration.WithLabelValues(m.Method, m.Path).Observe(m.DurationMs / 1000)
}

func (c *Collectors) observeBusiness(m BusinessMetric) {
	// counters cannot go down
	if m.Value < 0 {
		return
	}
	c.businessEvents.WithLabelValues(m.MetricName).Add(m.Value)
}

func (c *Collectors) observeInfra(m InfraMetric) {
	c.poolConns.WithLabelValues("acquired").Set(float64(m.PoolAcquired))
	c.poolConns.WithLabelValues("idle").Set(float64(m.PoolIdle))
	c.poolConns.WithLabelValues("total").Set(float64(m.PoolTotal))
	c.poolConns.WithLabelValues("max").Set(float64(m.PoolMax))
	c.goroutines.Set(float64(m.Goroutines))
	c.heapAllocMB.Set(m.HeapAllocMB)
}
