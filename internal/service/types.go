package service

import (
	"time"

	"content-platform/internal/domain"
)

// PublicProfile is the profile view shown to other users. It never carries
// credentials, reset codes or the role.
type PublicProfile struct {
	ID                string               `json:"id"`
	Kind              domain.PrincipalKind `json:"kind"`
	Username          string               `json:"username"`
	DisplayName       string               `json:"displayname"`
	Badge             domain.Badge         `json:"badge"`
	Profile           domain.Profile       `json:"profile"`
	SubscriberCount   int                  `json:"subscriberCount"`
	SubscriptionCount int                  `json:"subscriptionCount"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// UserSearchResult is one search hit.
type UserSearchResult struct {
	domain.PrincipalSummary
	Email      string `json:"email"`
	IsExternal bool   `json:"isExternal"`
}

// BadgeResult is the outcome of a badge computation.
type BadgeResult struct {
	Username    string       `json:"username"`
	Badge       domain.Badge `json:"badge"`
	HighlyRated int          `json:"highlyRatedArticles"`
}

// Overview is the author dashboard of the current principal.
type Overview struct {
	Username           string                   `json:"username"`
	DisplayName        string                   `json:"displayname"`
	ProfilePicture     string                   `json:"profilePicture"`
	Badge              domain.Badge             `json:"badge"`
	TotalArticles      int                      `json:"totalArticles"`
	TotalLikes         int64                    `json:"totalLikes"`
	TotalViews         int64                    `json:"totalViews"`
	MostPopularArticle *domain.ArticleHighlight `json:"mostPopularArticle"`
	TotalComments      int                      `json:"totalComments"`
	TotalSubscribers   int                      `json:"totalSubscribers"`
	TotalSubscriptions int                      `json:"totalSubscriptions"`
	ArticlesByMonth    []domain.MonthCount      `json:"articlesByMonth"`
}

// ArticlePage is one page of an article listing.
type ArticlePage struct {
	Articles   []domain.Article `json:"articles"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// RatingBreakdown exposes the rating inputs next to the fresh rating.
type RatingBreakdown struct {
	Upvotes   int     `json:"upvote"`
	Downvotes int     `json:"downvote"`
	Views     int64   `json:"views"`
	Sources   int     `json:"sources"`
	Rating    float64 `json:"rating"`
}

// VoteResult is returned by vote actions and the vote status query.
type VoteResult struct {
	Message      string        `json:"message,omitempty"`
	Upvotes      int           `json:"upvote"`
	Downvotes    int           `json:"downvote"`
	UserLiked    bool          `json:"userLiked"`
	UserDisliked bool          `json:"userDisliked"`
	Stance       domain.Stance `json:"userStance"`
	Rating       float64       `json:"rating"`
}

// CommentView is a comment with its resolved author.
type CommentView struct {
	domain.Comment
	Author domain.PrincipalSummary `json:"author"`
}

// ReportPage is one page of a report listing.
type ReportPage struct {
	Reports    []domain.Report `json:"reports"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}
