// Package metrics declares the Prometheus collectors of the service and the
// helpers that feed them. Collectors register on the default registry.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "content_platform"
)

var (
	// HTTP, labelled by route template
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Voting metrics - track vote actions by direction and resulting stance change
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "votes",
			Name:      "total",
			Help:      "Total number of vote actions by direction and outcome",
		},
		[]string{"direction", "outcome"},
	)

	// Rating metrics - track recomputations of the cached article rating
	RatingRecomputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rating",
			Name:      "recomputations_total",
			Help:      "Total number of rating recomputations by trigger",
		},
		[]string{"trigger"},
	)

	RatingPersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rating",
			Name:      "persist_failures_total",
			Help:      "Total number of rating cache writes that failed and were skipped",
		},
		[]string{"trigger"},
	)

	RatingValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rating",
			Name:      "value",
			Help:      "Distribution of computed article ratings",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// Subscription metrics
	SubscriptionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscriptions",
			Name:      "toggles_total",
			Help:      "Total number of subscription toggles by resulting action",
		},
		[]string{"action"},
	)

	// Moderation metrics - track reports and admin actions
	ReportsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "reports_submitted_total",
			Help:      "Total number of reports submitted by reason",
		},
		[]string{"reason"},
	)

	ModerationActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "actions_total",
			Help:      "Total number of moderation actions applied, by action",
		},
		[]string{"action"},
	)

	// Pool gauges, one series per state, fed by PoolStatsCollector
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is the part of a pool snapshot the collector exports.
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider returns a fresh snapshot on every call.
type PoolStatsProvider interface {
	Stat() PoolStats
}

// PoolStatsFunc adapts a function to PoolStatsProvider.
type PoolStatsFunc func() PoolStats

func (f PoolStatsFunc) Stat() PoolStats { return f() }

// PoolStatsCollector copies pool snapshots into DBConnectionPoolSize on a ticker.
type PoolStatsCollector struct {
	provider PoolStatsProvider
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoolStatsCollector collects from a pgx pool.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(PoolStatsFunc(func() PoolStats { return pool.Stat() }))
}

// NewPoolStatsCollectorWithProvider creates a collector over any stats source.
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{provider: provider, done: make(chan struct{})}
}

// Start scrapes once immediately, then every interval until Stop.
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go c.run(interval)
}

func (c *PoolStatsCollector) run(interval time.Duration) {
	defer c.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		c.collect()
		select {
		case <-ticker.C:
		case <-c.done:
			return
		}
	}
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	for state, n := range map[string]int32{
		"total":  stats.TotalConns(),
		"idle":   stats.IdleConns(),
		"in_use": stats.AcquiredConns(),
	} {
		DBConnectionPoolSize.WithLabelValues(state).Set(float64(n))
	}
}

// Stop halts collection and waits for the scrape loop to exit. It is safe to
// call more than once.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
	c.wg.Wait()
}

// ObserveVote records a vote action.
func ObserveVote(direction, outcome string) {
	VotesTotal.WithLabelValues(direction, outcome).Inc()
}

// ObserveRatingRecompute records a rating recomputation and its value.
func ObserveRatingRecompute(trigger string, rating float64) {
	RatingRecomputationsTotal.WithLabelValues(trigger).Inc()
	RatingValue.Observe(rating)
}

// ObserveRatingPersistFailure records a swallowed rating cache write failure.
func ObserveRatingPersistFailure(trigger string) {
	RatingPersistFailuresTotal.WithLabelValues(trigger).Inc()
}

// ObserveSubscriptionToggle records the outcome of a subscription toggle.
func ObserveSubscriptionToggle(subscribed bool) {
	action := "unsubscribed"
	if subscribed {
		action = "subscribed"
	}
	SubscriptionTogglesTotal.WithLabelValues(action).Inc()
}

// ObserveReportSubmitted records a new report.
func ObserveReportSubmitted(reason string) {
	ReportsSubmittedTotal.WithLabelValues(reason).Inc()
}

// ObserveModeration records count moderation actions of one kind.
func ObserveModeration(action string, count int) {
	if count > 0 {
		ModerationActionsTotal.WithLabelValues(action).Add(float64(count))
	}
}

// Timer measures elapsed time from its creation.
type Timer struct {
	start time.Time
}

func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration feeds the elapsed seconds to observer.
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// LogHealthCheckMetrics logs the pool counters at debug level on readiness probes.
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	slog.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}
