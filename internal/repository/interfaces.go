package repository

import (
	"context"
	"time"

	"content-platform/internal/domain"
)

// PrincipalRepository defines methods for principal data access across both kinds.
type PrincipalRepository interface {
	CreateLocal(ctx context.Context, p *domain.LocalPrincipal) error
	GetLocalByLogin(ctx context.Context, login string) (*domain.LocalPrincipal, error)
	CreateExternal(ctx context.Context, p *domain.ExternalPrincipal) error
	GetExternalByProviderID(ctx context.Context, providerID string) (*domain.ExternalPrincipal, error)
	GetExternalByEmail(ctx context.Context, email string) (*domain.ExternalPrincipal, error)
	RefreshExternal(ctx context.Context, id string, profile domain.ExternalProfile) (*domain.ExternalPrincipal, error)

	Get(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error)
	GetByUsername(ctx context.Context, kind domain.PrincipalKind, username string) (*domain.Principal, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Principal, error)
	Update(ctx context.Context, ref domain.PrincipalRef, fn func(*domain.Principal) error) (*domain.Principal, error)
	SetBadge(ctx context.Context, ref domain.PrincipalRef, badge domain.Badge) error
	DeleteLocal(ctx context.Context, id string) (bool, error)
}

// SubscriptionRepository stores subscription edges. A stored edge is visible
// from both ends: in the subscriber's subscriptions and the target's subscribers.
type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriber, target domain.PrincipalRef) (bool, error)
	Exists(ctx context.Context, subscriber, target domain.PrincipalRef) (bool, error)
	ListSubscribers(ctx context.Context, target domain.PrincipalRef) ([]domain.PrincipalRef, error)
	ListSubscriptions(ctx context.Context, subscriber domain.PrincipalRef) ([]domain.PrincipalRef, error)
}

// ArticleFilter narrows an article listing. Zero fields do not filter.
type ArticleFilter struct {
	// PublicOnly restricts to approved, non-deleted articles.
	PublicOnly bool
	// IncludeDeleted lifts the deleted=false restriction applied otherwise.
	IncludeDeleted bool
	Status         domain.ArticleStatus
	Category       string
	AuthorUsername string
	Author         *domain.PrincipalRef
	SubscribedBy   *domain.PrincipalRef
	SavedBy        string
	Query          string
	Limit          int
	Offset         int
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error)
	Count(ctx context.Context, filter ArticleFilter) (int, error)
	IncrementViews(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, id string, fn func(*domain.Article) error) (*domain.Article, error)
	UpdateRating(ctx context.Context, id string, rating float64, at time.Time) error
	BulkSoftDelete(ctx context.Context, ids []string, at time.Time) (int64, error)
	ToggleSave(ctx context.Context, articleID, principalID string, at time.Time) (bool, error)
	CountRatedAtLeast(ctx context.Context, author domain.PrincipalRef, threshold float64) (int, error)
	AuthorStats(ctx context.Context, author domain.PrincipalRef, since time.Time) (*domain.AuthorStats, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, articleID, commentID string) (*domain.Comment, error)
	UpdateText(ctx context.Context, articleID, commentID, text string, at time.Time) (*domain.Comment, error)
	Delete(ctx context.Context, articleID, commentID string) (bool, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
}

// ReportFilter narrows a report listing.
type ReportFilter struct {
	Status domain.ReportStatus
	Limit  int
	Offset int
}

// ReportRepository defines methods for report data access.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.Report, int, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Report, error)
	CountRows(ctx context.Context) ([]domain.ReportCountRow, error)
}
