package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
	"content-platform/internal/metrics"
	"content-platform/internal/rating"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

const (
	// DefaultLatestLimit is how many articles the latest listing returns.
	DefaultLatestLimit = 10
	// DefaultPageSize and MaxPageSize bound paged listings.
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ArticleConfig holds listing limits.
type ArticleConfig struct {
	LatestLimit     int
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultArticleConfig returns the default listing limits.
func DefaultArticleConfig() ArticleConfig {
	return ArticleConfig{
		LatestLimit:     DefaultLatestLimit,
		DefaultPageSize: DefaultPageSize,
		MaxPageSize:     MaxPageSize,
	}
}

// ArticleService handles article lifecycle, listings and the rating cache.
type ArticleService struct {
	articles  repository.ArticleRepository
	comments  repository.CommentRepository
	ratings   ratingRefresher
	validator *validator.Validator
	cfg       ArticleConfig
	now       Clock
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
	engine *rating.Engine,
	v *validator.Validator,
	cfg ArticleConfig,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		comments:  comments,
		ratings:   ratingRefresher{articles: articles, engine: engine},
		validator: v,
		cfg:       cfg,
		now:       utcNow,
	}
}

// SetClock overrides the clock. Intended for tests.
func (s *ArticleService) SetClock(now Clock) {
	s.now = now
}

// Create stores a new on-going article authored by author.
func (s *ArticleService) Create(ctx context.Context, author *domain.Principal, in *domain.ArticleInput) (*domain.Article, error) {
	if err := requirePrincipal(author); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := s.validator.ValidateArticle(in); err != nil {
		return nil, err
	}

	now := s.now()
	a := &domain.Article{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Description:       strings.TrimSpace(in.Description),
		Content:           in.Content,
		Category:          in.Category,
		PublishedAt:       now,
		Author:            author.Ref(),
		AuthorUsername:    author.Username,
		AuthorDisplayName: author.Name(),
		Upvoters:          []string{},
		Downvoters:        []string{},
		Sources:           in.Sources,
		Status:            domain.StatusOngoing,
		Rating:            s.ratings.engine.Config().Baseline,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.PublishedAt != nil {
		a.PublishedAt = in.PublishedAt.UTC()
	}
	if in.Media != nil {
		a.Media = *in.Media
	}
	if a.Sources == nil {
		a.Sources = []domain.Source{}
	}

	if err := s.articles.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.WithArticleID(a.ID).InfoContext(ctx, "article created", "author", author.Username)
	return a, nil
}

// Latest returns the newest public articles.
func (s *ArticleService) Latest(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articles.List(ctx, repository.ArticleFilter{PublicOnly: true, Limit: s.cfg.LatestLimit})
	if err != nil {
		return nil, err
	}
	s.ratings.refreshStale(ctx, articles, s.now())
	return articles, nil
}

// ByCategory lists public articles of a category, case-insensitively.
func (s *ArticleService) ByCategory(ctx context.Context, category string, page domain.Page) (*ArticlePage, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.Validationf("category is required")
	}
	return s.publicPage(ctx, repository.ArticleFilter{Category: category}, page)
}

// ByUsername lists the public articles of an author, case-insensitively.
func (s *ArticleService) ByUsername(ctx context.Context, username string, page domain.Page) (*ArticlePage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.Validationf("username is required")
	}
	return s.publicPage(ctx, repository.ArticleFilter{AuthorUsername: username}, page)
}

// Search matches title, author and content of public articles. No match is an empty page.
func (s *ArticleService) Search(ctx context.Context, query string, page domain.Page) (*ArticlePage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.Validationf("search query is required")
	}
	return s.publicPage(ctx, repository.ArticleFilter{Query: query}, page)
}

// SubscribedFeed lists public articles by the authors current subscribes to.
func (s *ArticleService) SubscribedFeed(ctx context.Context, current *domain.Principal, page domain.Page) (*ArticlePage, error) {
	if err := requirePrincipal(current); err != nil {
		return nil, err
	}
	ref := current.Ref()
	return s.publicPage(ctx, repository.ArticleFilter{SubscribedBy: &ref}, page)
}

// Saved lists the public articles current has bookmarked.
func (s *ArticleService) Saved(ctx context.Context, current *domain.Principal, page domain.Page) (*ArticlePage, error) {
	if err := requirePrincipal(current); err != nil {
		return nil, err
	}
	return s.publicPage(ctx, repository.ArticleFilter{SavedBy: current.ID}, page)
}

// MyOngoing lists current's own articles awaiting moderation.
func (s *ArticleService) MyOngoing(ctx context.Context, current *domain.Principal) ([]domain.Article, error) {
	if err := requirePrincipal(current); err != nil {
		return nil, err
	}
	ref := current.Ref()
	return s.articles.List(ctx, repository.ArticleFilter{Author: &ref, Status: domain.StatusOngoing})
}

// ListForModeration lists non-deleted articles of any status for admins.
// An empty status lists all.
func (s *ArticleService) ListForModeration(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*ArticlePage, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if status != "" && !domain.IsValidStatus(status) {
		return nil, domain.Validationf("invalid article status %q", status)
	}
	return s.page(ctx, repository.ArticleFilter{Status: domain.ArticleStatus(status)}, page)
}

// View returns one article with its comments and a freshly computed rating,
// counting the read. Articles that are not approved are only shown to their
// author and admins; everyone else gets NotFound.
func (s *ArticleService) View(ctx context.Context, id string, viewer *domain.Principal) (*domain.Article, error) {
	if err := s.validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.VisibleTo(viewer) {
		return nil, domain.NotFoundf("article not found")
	}

	viewed, err := s.articles.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewed == nil {
		return nil, domain.NotFoundf("article not found")
	}
	viewed.SavedBy = a.SavedBy

	comments, err := s.comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	viewed.Comments = comments

	s.ratings.recompute(ctx, viewed, TriggerView, s.now())
	return viewed, nil
}

// RatingBreakdown recomputes an article's rating and returns it with its inputs.
func (s *ArticleService) RatingBreakdown(ctx context.Context, id string) (*RatingBreakdown, error) {
	if err := s.validator.ValidateID("id", id); err != nil {
		return nil, err
	}
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Deleted {
		return nil, domain.NotFoundf("article not found")
	}

	s.ratings.recompute(ctx, a, TriggerBreakdown, s.now())
	return &RatingBreakdown{
		Upvotes:   a.Upvotes,
		Downvotes: a.Downvotes,
		Views:     a.Views,
		Sources:   len(a.Sources),
		Rating:    a.Rating,
	}, nil
}

// SoftDelete marks an article deleted. Only its author or an admin may do so.
func (s *ArticleService) SoftDelete(ctx context.Context, actor *domain.Principal, id string) (*domain.Article, error) {
	if err := requirePrincipal(actor); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	a, err := s.articles.Update(ctx, id, func(a *domain.Article) error {
		if !actor.IsAdmin() && !a.IsOwnedBy(actor.Ref()) {
			return domain.Forbiddenf("only the author or an admin can delete this article")
		}
		return a.SoftDelete(s.now())
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFoundf("article not found")
	}

	logger.WithArticleID(id).InfoContext(ctx, "article deleted", "by", actor.Username)
	return a, nil
}

// BulkSoftDelete deletes every listed article that is not deleted yet and
// returns how many were.
func (s *ArticleService) BulkSoftDelete(ctx context.Context, admin *domain.Principal, ids []string) (int64, error) {
	if err := requireAdmin(admin); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, domain.Validationf("at least one article id is required")
	}
	for _, id := range ids {
		if err := s.validator.ValidateID("id", id); err != nil {
			return 0, err
		}
	}

	n, err := s.articles.BulkSoftDelete(ctx, ids, s.now())
	if err != nil {
		return 0, err
	}
	metrics.ObserveModeration("bulk_soft_delete", int(n))
	logger.InfoContext(ctx, "articles bulk deleted", "requested", len(ids), "deleted", n)
	return n, nil
}

// Approve publishes an article.
func (s *ArticleService) Approve(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error) {
	return s.transition(ctx, admin, id, domain.StatusApproved, "approve")
}

// Reject refuses an article.
func (s *ArticleService) Reject(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error) {
	return s.transition(ctx, admin, id, domain.StatusRejected, "reject")
}

func (s *ArticleService) transition(ctx context.Context, admin *domain.Principal, id string, status domain.ArticleStatus, action string) (*domain.Article, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	a, err := s.articles.Update(ctx, id, func(a *domain.Article) error {
		return a.Transition(status, s.now())
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFoundf("article not found")
	}

	metrics.ObserveModeration(action, 1)
	return a, nil
}

// ToggleSave bookmarks or un-bookmarks an article for current and returns
// whether it is saved afterwards.
func (s *ArticleService) ToggleSave(ctx context.Context, current *domain.Principal, id string) (bool, error) {
	if err := requirePrincipal(current); err != nil {
		return false, err
	}
	if err := s.validator.ValidateID("id", id); err != nil {
		return false, err
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if a == nil || !a.VisibleTo(current) {
		return false, domain.NotFoundf("article not found")
	}
	return s.articles.ToggleSave(ctx, id, current.ID, s.now())
}

func (s *ArticleService) publicPage(ctx context.Context, filter repository.ArticleFilter, page domain.Page) (*ArticlePage, error) {
	filter.PublicOnly = true
	result, err := s.page(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	s.ratings.refreshStale(ctx, result.Articles, s.now())
	return result, nil
}

func (s *ArticleService) page(ctx context.Context, filter repository.ArticleFilter, page domain.Page) (*ArticlePage, error) {
	page = page.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	filter.Limit = page.Size
	filter.Offset = page.Offset()

	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.articles.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ArticlePage{
		Articles:   articles,
		Page:       page.Number,
		Limit:      page.Size,
		Total:      total,
		TotalPages: page.PageCount(total),
	}, nil
}
