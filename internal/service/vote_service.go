package service

import (
	"context"

	"content-platform/internal/domain"
	"content-platform/internal/metrics"
	"content-platform/internal/rating"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

var voteMessages = map[domain.VoteOutcome]string{
	domain.VoteAdded:    "vote recorded",
	domain.VoteRemoved:  "vote removed",
	domain.VoteSwitched: "vote changed",
}

// VoteService applies up- and downvotes and keeps the rating fresh.
type VoteService struct {
	articles  repository.ArticleRepository
	ratings   ratingRefresher
	validator *validator.Validator
	now       Clock
}

// NewVoteService creates a new VoteService.
func NewVoteService(articles repository.ArticleRepository, engine *rating.Engine, v *validator.Validator) *VoteService {
	return &VoteService{
		articles:  articles,
		ratings:   ratingRefresher{articles: articles, engine: engine},
		validator: v,
		now:       utcNow,
	}
}

// SetClock overrides the clock. Intended for tests.
func (s *VoteService) SetClock(now Clock) {
	s.now = now
}

// Upvote toggles voter's upvote on the article.
func (s *VoteService) Upvote(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error) {
	return s.vote(ctx, voter, articleID, domain.VoteUp)
}

// Downvote toggles voter's downvote on the article.
func (s *VoteService) Downvote(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error) {
	return s.vote(ctx, voter, articleID, domain.VoteDown)
}

func (s *VoteService) vote(ctx context.Context, voter *domain.Principal, articleID string, direction domain.VoteDirection) (*VoteResult, error) {
	if err := requirePrincipal(voter); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}

	var outcome domain.VoteOutcome
	a, err := s.articles.Update(ctx, articleID, func(a *domain.Article) error {
		if !a.VisibleTo(voter) {
			return domain.NotFoundf("article not found")
		}
		var err error
		outcome, err = a.ApplyVote(voter.Username, direction)
		return err
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFoundf("article not found")
	}
	metrics.ObserveVote(string(direction), string(outcome))

	// Counters are committed; the rating write that follows is a separate cache write.
	s.ratings.recompute(ctx, a, TriggerVote, s.now())

	result := voteResult(a, voter.Username)
	result.Message = voteMessages[outcome]
	return result, nil
}

// Status returns counts, voter's stance and the cached rating.
func (s *VoteService) Status(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error) {
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}
	a, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.VisibleTo(voter) {
		return nil, domain.NotFoundf("article not found")
	}

	var username string
	if voter != nil {
		username = voter.Username
	}
	return voteResult(a, username), nil
}

func voteResult(a *domain.Article, voter string) *VoteResult {
	stance := domain.StanceNone
	if voter != "" {
		stance = a.StanceOf(voter)
	}
	return &VoteResult{
		Upvotes:      a.Upvotes,
		Downvotes:    a.Downvotes,
		UserLiked:    stance == domain.StanceUpvoted,
		UserDisliked: stance == domain.StanceDownvoted,
		Stance:       stance,
		Rating:       a.Rating,
	}
}
