package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

// CommentService manages the comments owned by articles.
type CommentService struct {
	articles   repository.ArticleRepository
	comments   repository.CommentRepository
	principals repository.PrincipalRepository
	validator  *validator.Validator
	now        Clock
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
	principals repository.PrincipalRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		articles:   articles,
		comments:   comments,
		principals: principals,
		validator:  v,
		now:        utcNow,
	}
}

// Add posts a comment on an article the author can see.
func (s *CommentService) Add(ctx context.Context, author *domain.Principal, articleID, text string) (*domain.Comment, error) {
	if err := requirePrincipal(author); err != nil {
		return nil, err
	}
	if _, err := s.visibleArticle(ctx, author, articleID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateComment(text); err != nil {
		return nil, err
	}

	now := s.now()
	c := &domain.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		AuthorID:  author.ID,
		Text:      strings.TrimSpace(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Edit replaces the text of the author's own comment.
func (s *CommentService) Edit(ctx context.Context, author *domain.Principal, articleID, commentID string, text string) (*domain.Comment, error) {
	if err := requirePrincipal(author); err != nil {
		return nil, err
	}
	c, err := s.comment(ctx, articleID, commentID)
	if err != nil {
		return nil, err
	}
	if c.AuthorID != author.ID {
		return nil, domain.Forbiddenf("only the comment author can edit it")
	}
	if err := s.validator.ValidateComment(text); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateText(ctx, articleID, commentID, strings.TrimSpace(text), s.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFoundf("comment not found")
	}
	return updated, nil
}

// Delete removes a comment. The comment author, the article author and
// admins may delete.
func (s *CommentService) Delete(ctx context.Context, actor *domain.Principal, articleID, commentID string) error {
	if err := requirePrincipal(actor); err != nil {
		return err
	}
	c, err := s.comment(ctx, articleID, commentID)
	if err != nil {
		return err
	}

	if c.AuthorID != actor.ID && !actor.IsAdmin() {
		a, err := s.articles.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if a == nil || !a.IsOwnedBy(actor.Ref()) {
			return domain.Forbiddenf("you cannot delete this comment")
		}
	}

	deleted, err := s.comments.Delete(ctx, articleID, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFoundf("comment not found")
	}
	return nil
}

// List returns an article's comments oldest first, each with its author.
// Authors that no longer exist are shown as the unknown-user placeholder.
func (s *CommentService) List(ctx context.Context, viewer *domain.Principal, articleID string) ([]CommentView, error) {
	if _, err := s.visibleArticle(ctx, viewer, articleID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]domain.PrincipalSummary)
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		author, ok := authors[c.AuthorID]
		if !ok {
			p, err := findByID(ctx, s.principals, c.AuthorID)
			if err != nil {
				return nil, err
			}
			author = domain.UnknownPrincipal
			if p != nil {
				author = p.Summary()
			}
			authors[c.AuthorID] = author
		}
		views = append(views, CommentView{Comment: c, Author: author})
	}
	return views, nil
}

func (s *CommentService) visibleArticle(ctx context.Context, viewer *domain.Principal, articleID string) (*domain.Article, error) {
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}
	a, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.VisibleTo(viewer) {
		return nil, domain.NotFoundf("article not found")
	}
	return a, nil
}

func (s *CommentService) comment(ctx context.Context, articleID, commentID string) (*domain.Comment, error) {
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("commentId", commentID); err != nil {
		return nil, err
	}
	c, err := s.comments.GetByID(ctx, articleID, commentID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFoundf("comment not found")
	}
	return c, nil
}
