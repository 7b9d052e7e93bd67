package service

import (
	"context"
	"time"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
	"content-platform/internal/metrics"
	"content-platform/internal/rating"
	"content-platform/internal/repository"
)

// Rating recomputation triggers, used as metric labels.
const (
	TriggerVote      = "vote"
	TriggerView      = "view"
	TriggerBreakdown = "breakdown"
	TriggerStaleRead = "stale_read"
)

// ratingRefresher recomputes cached article ratings and stores them on a
// best-effort basis: a failed write is logged and counted, never returned.
type ratingRefresher struct {
	articles repository.ArticleRepository
	engine   *rating.Engine
}

func (r ratingRefresher) recompute(ctx context.Context, a *domain.Article, trigger string, now time.Time) {
	value := r.engine.ComputeArticle(a)
	a.Rating = value
	a.LastRatingUpdate = &now
	metrics.ObserveRatingRecompute(trigger, value)

	if err := r.articles.UpdateRating(ctx, a.ID, value, now); err != nil {
		metrics.ObserveRatingPersistFailure(trigger)
		logger.WithArticleID(a.ID).WarnContext(ctx, "failed to persist rating",
			"trigger", trigger, "error", err)
	}
}

// refreshStale recomputes only the articles whose cached rating is missing
// or older than the staleness window.
func (r ratingRefresher) refreshStale(ctx context.Context, articles []domain.Article, now time.Time) {
	for i := range articles {
		if r.engine.IsStale(&articles[i], now) {
			r.recompute(ctx, &articles[i], TriggerStaleRead, now)
		}
	}
}
