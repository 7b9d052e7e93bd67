package domain

import "time"

// Comment is owned by an article and addressed by its own id.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
