package domain

import "time"

// SignupInput is a local sign-up request.
type SignupInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayname"`
}

// ArticleInput is an article submission by its author.
type ArticleInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	PublishedAt *time.Time `json:"publishedAt"`
	Media       *Media     `json:"media"`
	Sources     []Source   `json:"sources"`
}

// ReportInput is a reader's report submission.
type ReportInput struct {
	Reason      ReportReason `json:"reason"`
	Description string       `json:"description"`
}

// ReportReview is an admin status change on a report.
type ReportReview struct {
	Status     ReportStatus `json:"status"`
	AdminNotes string       `json:"adminNotes"`
}
