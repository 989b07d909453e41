package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	LockAcquireTotal *prometheus.CounterVec // result=granted|denied
	LockExpiredTotal prometheus.Counter

	PublishTotal *prometheus.CounterVec // result=edited|created|failed

	ImageCacheTotal *prometheus.CounterVec // result=hit|miss
	RenderSeconds   prometheus.Histogram
}

// NewMetrics builds the collectors on a private registry so tests can create
// as many instances as they need.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LockAcquireTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interaction_lock_acquire_total",
				Help: "Interaction lock acquisitions by result",
			},
			[]string{"result"},
		),
		LockExpiredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "interaction_lock_expired_total",
			Help: "Interaction locks that expired naturally",
		}),
		PublishTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "map_publish_total",
				Help: "Status message publishes by result",
			},
			[]string{"result"},
		),
		ImageCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "map_image_cache_total",
				Help: "Map image cache lookups by result",
			},
			[]string{"result"},
		),
		RenderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "map_image_render_seconds",
			Help:    "Latency of map image renders",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}

	m.registry.MustRegister(
		m.LockAcquireTotal,
		m.LockExpiredTotal,
		m.PublishTotal,
		m.ImageCacheTotal,
		m.RenderSeconds,
	)

	return m
}

// Handler exposes the registry for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncLockAcquire(result string) {
	if m == nil {
		return
	}
	m.LockAcquireTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncLockExpired() {
	if m == nil {
		return
	}
	m.LockExpiredTotal.Inc()
}

func (m *Metrics) IncPublish(result string) {
	if m == nil {
		return
	}
	m.PublishTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncImageCache(result string) {
	if m == nil {
		return
	}
	m.ImageCacheTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRender(seconds float64) {
	if m == nil {
		return
	}
	m.RenderSeconds.Observe(seconds)
}
