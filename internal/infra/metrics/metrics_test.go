package metrics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveAuth(t *testing.T) {
	m := New(NewRegistry())

	m.ObserveAuth("login", nil)
	m.ObserveAuth("login", errors.New("bad password"))
	m.ObserveAuth("login", errors.New("bad password"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", OutcomeFailure)))
}

func TestMetrics_Counters(t *testing.T) {
	m := New(NewRegistry())

	m.AddReviewsScraped(3)
	m.AddReviewsScraped(0)
	m.AddPurged(5)
	m.IncRateLimited()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.ReviewsScraped))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.ExpiredTokensPurged))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitExceeded))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAuth("login", nil)
		m.AddReviewsScraped(1)
		m.AddPurged(1)
		m.IncRateLimited()
	})
}
