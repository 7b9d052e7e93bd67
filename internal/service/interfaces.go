package service

import (
	"context"

	"content-platform/internal/domain"
)

// IdentityServiceInterface defines principal registration, lookup and profile operations.
// Used for dependency injection and mocking in tests.
type IdentityServiceInterface interface {
	RegisterLocal(ctx context.Context, in *domain.SignupInput) (*domain.Principal, error)
	VerifyCredentials(ctx context.Context, login, password string) (*domain.Principal, error)
	ProvisionExternal(ctx context.Context, profile domain.ExternalProfile) (*domain.Principal, error)
	// Resolve returns (nil, nil) when the principal does not exist.
	Resolve(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error)
	// Lookup is Resolve with absence reported as NotFound.
	Lookup(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error)
	GetProfile(ctx context.Context, username string) (*PublicProfile, error)
	SearchUsers(ctx context.Context, query string) ([]UserSearchResult, error)
	UpdateProfile(ctx context.Context, ref domain.PrincipalRef, update *domain.ProfileUpdate) (*domain.Principal, error)
	DeletePrincipal(ctx context.Context, admin *domain.Principal, id string) error
	ComputeBadge(ctx context.Context, username string) (*BadgeResult, error)
	Overview(ctx context.Context, current *domain.Principal) (*Overview, error)
}

// SubscriptionServiceInterface defines subscription graph operations.
type SubscriptionServiceInterface interface {
	Toggle(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error)
	Status(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error)
	ListSubscribers(ctx context.Context, username string) ([]domain.PrincipalSummary, error)
	ListSubscriptions(ctx context.Context, username string) ([]domain.PrincipalSummary, error)
}

// ArticleServiceInterface defines article lifecycle, listing and rating operations.
type ArticleServiceInterface interface {
	Create(ctx context.Context, author *domain.Principal, in *domain.ArticleInput) (*domain.Article, error)
	Latest(ctx context.Context) ([]domain.Article, error)
	ByCategory(ctx context.Context, category string, page domain.Page) (*ArticlePage, error)
	ByUsername(ctx context.Context, username string, page domain.Page) (*ArticlePage, error)
	Search(ctx context.Context, query string, page domain.Page) (*ArticlePage, error)
	SubscribedFeed(ctx context.Context, current *domain.Principal, page domain.Page) (*ArticlePage, error)
	Saved(ctx context.Context, current *domain.Principal, page domain.Page) (*ArticlePage, error)
	MyOngoing(ctx context.Context, current *domain.Principal) ([]domain.Article, error)
	ListForModeration(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*ArticlePage, error)
	View(ctx context.Context, id string, viewer *domain.Principal) (*domain.Article, error)
	RatingBreakdown(ctx context.Context, id string) (*RatingBreakdown, error)
	SoftDelete(ctx context.Context, actor *domain.Principal, id string) (*domain.Article, error)
	BulkSoftDelete(ctx context.Context, admin *domain.Principal, ids []string) (int64, error)
	Approve(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error)
	Reject(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error)
	ToggleSave(ctx context.Context, current *domain.Principal, id string) (bool, error)
}

// VoteServiceInterface defines voting operations.
type VoteServiceInterface interface {
	Upvote(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error)
	Downvote(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error)
	// Status reports counts and the caller's stance. A nil voter has no stance.
	Status(ctx context.Context, voter *domain.Principal, articleID string) (*VoteResult, error)
}

// CommentServiceInterface defines comment operations.
type CommentServiceInterface interface {
	Add(ctx context.Context, author *domain.Principal, articleID, text string) (*domain.Comment, error)
	Edit(ctx context.Context, author *domain.Principal, articleID, commentID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, actor *domain.Principal, articleID, commentID string) error
	List(ctx context.Context, viewer *domain.Principal, articleID string) ([]CommentView, error)
}

// ReportServiceInterface defines moderation report operations.
type ReportServiceInterface interface {
	Submit(ctx context.Context, reporter *domain.Principal, articleID string, in *domain.ReportInput) (*domain.Report, error)
	UpdateStatus(ctx context.Context, admin *domain.Principal, reportID string, in *domain.ReportReview) (*domain.Report, error)
	List(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*ReportPage, error)
	ListByArticle(ctx context.Context, admin *domain.Principal, articleID string) ([]domain.Report, error)
	Counts(ctx context.Context, admin *domain.Principal) (*domain.ReportCounts, error)
}
