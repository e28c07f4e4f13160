package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	SubmissionsReceived prometheus.Counter
	LeadsCreated        *prometheus.CounterVec
	SubmissionsDeduped  prometheus.Counter
	DealsClosed         prometheus.Counter
	LoginAttempts       *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		SubmissionsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "landing_submissions_received_total",
			Help: "Total number of landing-page form submissions accepted",
		}),
		LeadsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_created_total",
				Help: "Total number of leads created",
			},
			[]string{"source"}, // landing_page, manual, referral, other
		),
		SubmissionsDeduped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "landing_submissions_deduplicated_total",
			Help: "Submissions attached to an existing lead instead of creating one",
		}),
		DealsClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deals_closed_total",
			Help: "Total number of deals moved to the closed stage",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:id)

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordSubmission increments the accepted submissions counter
func (m *Metrics) RecordSubmission() {
	m.SubmissionsReceived.Inc()
}

// RecordLeadCreated increments the leads created counter for a source
func (m *Metrics) RecordLeadCreated(source string) {
	m.LeadsCreated.WithLabelValues(source).Inc()
}

// RecordSubmissionDeduped increments the deduplicated submissions counter
func (m *Metrics) RecordSubmissionDeduped() {
	m.SubmissionsDeduped.Inc()
}

// RecordDealClosed increments the closed deals counter
func (m *Metrics) RecordDealClosed() {
	m.DealsClosed.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}
