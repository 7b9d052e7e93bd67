package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
// Comments are always addressed through their parent article.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Text, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO article_comments (id, article_id, author_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.ArticleID, c.AuthorID, c.Text, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves one comment of an article.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, articleID, commentID string) (*domain.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, `
		SELECT id, article_id, author_id, text, created_at, updated_at
		FROM article_comments
		WHERE article_id = $1 AND id = $2
	`, articleID, commentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// UpdateText replaces the comment text.
func (r *PostgresCommentRepository) UpdateText(ctx context.Context, articleID, commentID, text string, at time.Time) (*domain.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, `
		UPDATE article_comments SET text = $3, updated_at = $4
		WHERE article_id = $1 AND id = $2
		RETURNING id, article_id, author_id, text, created_at, updated_at
	`, articleID, commentID, text, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

// Delete removes a comment and reports whether it existed.
func (r *PostgresCommentRepository) Delete(ctx context.Context, articleID, commentID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM article_comments WHERE article_id = $1 AND id = $2`, articleID, commentID)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByArticle returns an article's comments, oldest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, article_id, author_id, text, created_at, updated_at
		FROM article_comments
		WHERE article_id = $1
		ORDER BY created_at, id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	return comments, nil
}
