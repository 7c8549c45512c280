// Package metrics exposes engine and HTTP metrics to Prometheus.
package metrics

import (
	"context"
	"strconv"
	"time"

	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "resort"

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	reservationsCreated  *prometheus.CounterVec
	reservationsRejected *prometheus.CounterVec
	transitionsApplied   *prometheus.CounterVec
	paymentsSettled      prometheus.Counter
	paymentsAmount       prometheus.Counter
	quoteCacheLookups    *prometheus.CounterVec
}

var _ shared.Metrics = (*Metrics)(nil)

// New builds a collector set on its own registry so that several instances
// can coexist in one process.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		reservationsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservations accepted, by kind",
			},
			[]string{"kind"},
		),
		reservationsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_rejected_total",
				Help:      "Reservations refused, by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		transitionsApplied: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_transitions_total",
				Help:      "Lifecycle transitions applied, by kind and action",
			},
			[]string{"kind", "action"},
		),
		paymentsSettled: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_settled_total",
				Help:      "Invoices settled",
			},
		),
		paymentsAmount: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_amount_total",
				Help:      "Sum of settled amounts in major currency units",
			},
		),
		quoteCacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_cache_lookups_total",
				Help:      "Quote cache lookups, by result",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ReservationCreated(kind string) {
	m.reservationsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) ReservationRejected(kind, reason string) {
	m.reservationsRejected.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) TransitionApplied(kind, action string) {
	m.transitionsApplied.WithLabelValues(kind, action).Inc()
}

func (m *Metrics) PaymentsSettled(count int, total money.Money) {
	m.paymentsSettled.Add(float64(count))
	m.paymentsAmount.Add(total.Float())
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		m.httpRequestsInFlight.Inc()

		c.Next()

		m.httpRequestsInFlight.Dec()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return gin.WrapH(h)
}

// InstrumentQuoteCache counts hits and misses of the wrapped cache.
func (m *Metrics) InstrumentQuoteCache(inner shared.QuoteCache) shared.QuoteCache {
	return &instrumentedQuoteCache{inner: inner, lookups: m.quoteCacheLookups}
}

type instrumentedQuoteCache struct {
	inner   shared.QuoteCache
	lookups *prometheus.CounterVec
}

func (c *instrumentedQuoteCache) Get(ctx context.Context, key shared.QuoteKey) (money.Money, shared.QuoteToken, bool) {
	price, token, ok := c.inner.Get(ctx, key)
	if ok {
		c.lookups.WithLabelValues("hit").Inc()
	} else {
		c.lookups.WithLabelValues("miss").Inc()
	}
	return price, token, ok
}

func (c *instrumentedQuoteCache) Put(ctx context.Context, token shared.QuoteToken, price money.Money) {
	c.inner.Put(ctx, token, price)
}

func (c *instrumentedQuoteCache) Invalidate(ctx context.Context, resourceID uuid.UUID) {
	c.inner.Invalidate(ctx, resourceID)
}
