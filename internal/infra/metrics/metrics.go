// Package metrics defines the Prometheus collectors the service exports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// Auth outcomes recorded on AuthAttempts.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups every collector. A nil *Metrics records nothing.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	AuthAttempts        *prometheus.CounterVec
	ReviewsScraped      prometheus.Counter
	RateLimitExceeded   prometheus.Counter
	ExpiredTokensPurged prometheus.Counter
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "The HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuthAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "The total number of authentication attempts by flow and outcome",
		}, []string{"flow", "outcome"}),
		ReviewsScraped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_scraped_total",
			Help:      "The total number of reviews persisted from scraping runs",
		}),
		RateLimitExceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_exceeded_total",
			Help:      "The total number of requests rejected by the rate limiter",
		}),
		ExpiredTokensPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_refresh_tokens_purged_total",
			Help:      "The total number of expired refresh tokens deleted by the purge job",
		}),
	}
}

// ObserveAuth records one authentication attempt.
func (m *Metrics) ObserveAuth(flow string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.AuthAttempts.WithLabelValues(flow, outcome).Inc()
}

// AddReviewsScraped counts persisted reviews.
func (m *Metrics) AddReviewsScraped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ReviewsScraped.Add(float64(n))
}

// AddPurged counts refresh tokens removed by the purge job.
func (m *Metrics) AddPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ExpiredTokensPurged.Add(float64(n))
}

// IncRateLimited counts one rejected request.
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.RateLimitExceeded.Inc()
}
