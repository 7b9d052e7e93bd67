package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveVote(t *testing.T) {
	initial := testutil.ToFloat64(VotesTotal.WithLabelValues("up", "added"))

	ObserveVote("up", "added")

	assert.Equal(t, initial+1, testutil.ToFloat64(VotesTotal.WithLabelValues("up", "added")))
}

func TestObserveRatingRecompute(t *testing.T) {
	initial := testutil.ToFloat64(RatingRecomputationsTotal.WithLabelValues("vote"))

	ObserveRatingRecompute("vote", 51.5)
	ObserveRatingRecompute("vote", 50)

	assert.Equal(t, initial+2, testutil.ToFloat64(RatingRecomputationsTotal.WithLabelValues("vote")))
	assert.Equal(t, 1, testutil.CollectAndCount(RatingValue), "RatingValue is a single histogram")
}

func TestObserveRatingPersistFailure(t *testing.T) {
	initial := testutil.ToFloat64(RatingPersistFailuresTotal.WithLabelValues("stale_read"))

	ObserveRatingPersistFailure("stale_read")

	assert.Equal(t, initial+1, testutil.ToFloat64(RatingPersistFailuresTotal.WithLabelValues("stale_read")))
}

func TestObserveSubscriptionToggle(t *testing.T) {
	subscribed := testutil.ToFloat64(SubscriptionTogglesTotal.WithLabelValues("subscribed"))
	unsubscribed := testutil.ToFloat64(SubscriptionTogglesTotal.WithLabelValues("unsubscribed"))

	ObserveSubscriptionToggle(true)
	ObserveSubscriptionToggle(false)
	ObserveSubscriptionToggle(false)

	assert.Equal(t, subscribed+1, testutil.ToFloat64(SubscriptionTogglesTotal.WithLabelValues("subscribed")))
	assert.Equal(t, unsubscribed+2, testutil.ToFloat64(SubscriptionTogglesTotal.WithLabelValues("unsubscribed")))
}

func TestObserveReportSubmitted(t *testing.T) {
	initial := testutil.ToFloat64(ReportsSubmittedTotal.WithLabelValues("spam"))

	ObserveReportSubmitted("spam")

	assert.Equal(t, initial+1, testutil.ToFloat64(ReportsSubmittedTotal.WithLabelValues("spam")))
}

func TestObserveModeration(t *testing.T) {
	initial := testutil.ToFloat64(ModerationActionsTotal.WithLabelValues("bulk_soft_delete"))

	ObserveModeration("bulk_soft_delete", 3)
	// Zero-count actions are not recorded
	ObserveModeration("bulk_soft_delete", 0)

	assert.Equal(t, initial+3, testutil.ToFloat64(ModerationActionsTotal.WithLabelValues("bulk_soft_delete")))
}

func TestTimerObserveDuration(t *testing.T) {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_seconds",
		Help:    "Timer under test",
		Buckets: []float64{.001, .01, .1, 1},
	})
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)

	timer.ObserveDuration(histogram)

	reg := prometheus.NewRegistry()
	reg.MustRegister(histogram)
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	observed := families[0].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), observed.GetSampleCount())
	assert.GreaterOrEqual(t, observed.GetSampleSum(), 0.005)
}

type stubPoolStats struct{ total, idle, acquired int32 }

func (s stubPoolStats) TotalConns() int32    { return s.total }
func (s stubPoolStats) IdleConns() int32     { return s.idle }
func (s stubPoolStats) AcquiredConns() int32 { return s.acquired }

// countingProvider reports one more acquired connection on every scrape.
type countingProvider struct {
	mu    sync.Mutex
	calls int32
}

func (p *countingProvider) Stat() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return stubPoolStats{total: 10, idle: 10 - p.calls, acquired: p.calls}
}

func (p *countingProvider) Calls() int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestPoolStatsCollector(t *testing.T) {
	provider := &countingProvider{}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(5 * time.Millisecond)
	require.Eventually(t, func() bool { return provider.Calls() >= 3 }, time.Second, time.Millisecond)
	collector.Stop()

	calls := provider.Calls()
	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(calls), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
	assert.Equal(t, float64(10-calls), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, calls, provider.Calls(), "no scrapes after Stop")
	assert.NotPanics(t, collector.Stop)
}

func TestPoolStatsFunc(t *testing.T) {
	provider := PoolStatsFunc(func() PoolStats { return stubPoolStats{total: 4, idle: 1, acquired: 3} })

	stats := provider.Stat()

	assert.Equal(t, int32(4), stats.TotalConns())
	assert.Equal(t, int32(3), stats.AcquiredConns())
}

func TestHTTPRequestsInFlight(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
