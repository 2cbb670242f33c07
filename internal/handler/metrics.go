package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the ClipStream backend.
var Metrics = struct {
	ReactionsTotal           *prometheus.CounterVec
	SubscriptionTogglesTotal prometheus.Counter
	VideoViewsTotal          prometheus.Counter
	RequestDuration          *prometheus.HistogramVec
	DBPoolActive             prometheus.GaugeFunc
	DBPoolIdle               prometheus.GaugeFunc
	RequestsInFlight         prometheus.Gauge
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.ReactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clipstream_reactions_total",
			Help: "Total like/dislike toggles submitted, by kind.",
		},
		[]string{"kind"},
	)

	Metrics.SubscriptionTogglesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clipstream_subscription_toggles_total",
			Help: "Total subscription toggle requests.",
		},
	)

	Metrics.VideoViewsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clipstream_video_views_total",
			Help: "Total video fetches counted as views.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clipstream_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clipstream_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "clipstream_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "clipstream_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.ReactionsTotal,
		Metrics.SubscriptionTogglesTotal,
		Metrics.VideoViewsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case len(path) > 12 && path[:12] == "/api/videos/":
		return "/api/videos/:videoId"
	case len(path) > 14 && path[:14] == "/api/channels/":
		return "/api/channels/:channelId"
	case len(path) > 14 && path[:14] == "/api/comments/":
		return "/api/comments/:videoId"
	case len(path) > 11 && path[:11] == "/api/users/":
		return "/api/users/:userId"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
