package domain

import "time"

// ArticleStatus is the moderation status of an article.
type ArticleStatus string

const (
	StatusOngoing  ArticleStatus = "on-going"
	StatusApproved ArticleStatus = "approved"
	StatusRejected ArticleStatus = "rejected"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []ArticleStatus{StatusOngoing, StatusApproved, StatusRejected}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// SourceKind classifies a cited source.
type SourceKind string

const (
	SourceURL     SourceKind = "url"
	SourceVideo   SourceKind = "video"
	SourceArticle SourceKind = "article"
	SourceBook    SourceKind = "book"
	SourceOther   SourceKind = "other"
)

// ValidSourceKinds contains all valid source kinds.
var ValidSourceKinds = []SourceKind{SourceURL, SourceVideo, SourceArticle, SourceBook, SourceOther}

// Source is a cited reference attached to an article.
type Source struct {
	Kind  SourceKind `json:"key"`
	Value string     `json:"value"`
}

// Media types an article may attach.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Media is the article's attached image or video.
type Media struct {
	Type string `json:"mediaType,omitempty"`
	URL  string `json:"mediaUrl,omitempty"`
}

// SavedBy records a principal bookmarking an article.
type SavedBy struct {
	PrincipalID string    `json:"userId"`
	SavedAt     time.Time `json:"savedAt"`
}

// Article represents an article entity in the system.
type Article struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Content           string        `json:"content"`
	Category          string        `json:"category"`
	PublishedAt       time.Time     `json:"publishedAt"`
	Author            PrincipalRef  `json:"author"`
	AuthorUsername    string        `json:"authorusername"`
	AuthorDisplayName string        `json:"authordisplayname"`
	Views             int64         `json:"views"`
	Upvotes           int           `json:"upvote"`
	Downvotes         int           `json:"downvote"`
	Upvoters          []string      `json:"userUpvote"`
	Downvoters        []string      `json:"userDownvote"`
	Media             Media         `json:"media"`
	Sources           []Source      `json:"sources"`
	Comments          []Comment     `json:"comments,omitempty"`
	SavedBy           []SavedBy     `json:"savedBy,omitempty"`
	Status            ArticleStatus `json:"status"`
	Deleted           bool          `json:"deleted"`
	DeletedAt         *time.Time    `json:"deletedAt,omitempty"`
	Rating            float64       `json:"rating"`
	LastRatingUpdate  *time.Time    `json:"lastRatingUpdate,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// IsPublic reports whether the article is visible on public read endpoints.
func (a *Article) IsPublic() bool {
	return !a.Deleted && a.Status == StatusApproved
}

// HasSources reports whether at least one source is cited.
func (a *Article) HasSources() bool {
	return len(a.Sources) > 0
}

// IsOwnedBy reports whether ref is the article's author.
func (a *Article) IsOwnedBy(ref PrincipalRef) bool {
	return a.Author == ref
}

// VisibleTo reports whether viewer may read the article. A nil viewer is anonymous.
// Deleted articles are visible to nobody through read endpoints.
func (a *Article) VisibleTo(viewer *Principal) bool {
	if a.Deleted {
		return false
	}
	if a.Status == StatusApproved {
		return true
	}
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin() || a.IsOwnedBy(viewer.Ref())
}

// Transition moves the article to status. Deleted articles and unknown
// statuses are rejected; moving back to on-going is not an admin action.
func (a *Article) Transition(status ArticleStatus, now time.Time) error {
	if a.Deleted {
		return InvalidStatef("article %s is deleted", a.ID)
	}
	if status != StatusApproved && status != StatusRejected {
		return InvalidStatef("cannot transition article to %q", status)
	}
	a.Status = status
	a.UpdatedAt = now
	return nil
}

// SoftDelete marks the article deleted. It is one-way.
func (a *Article) SoftDelete(now time.Time) error {
	if a.Deleted {
		return InvalidStatef("article %s is already deleted", a.ID)
	}
	a.Deleted = true
	a.DeletedAt = &now
	a.UpdatedAt = now
	return nil
}
