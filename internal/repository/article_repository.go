package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform/internal/domain"
)

const articleColumns = `id, title, description, content, category, published_at,
	author_id, author_kind, author_username, author_display_name,
	views, upvotes, downvotes, upvoters, downvoters, media_type, media_url, sources,
	status, deleted, deleted_at, rating, last_rating_update, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var a domain.Article
	var sources []byte
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.Category, &a.PublishedAt,
		&a.Author.ID, &a.Author.Kind, &a.AuthorUsername, &a.AuthorDisplayName,
		&a.Views, &a.Upvotes, &a.Downvotes, &a.Upvoters, &a.Downvoters, &a.Media.Type, &a.Media.URL, &sources,
		&a.Status, &a.Deleted, &a.DeletedAt, &a.Rating, &a.LastRatingUpdate, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(sources) > 0 {
		if err := json.Unmarshal(sources, &a.Sources); err != nil {
			return nil, fmt.Errorf("unmarshal sources: %w", err)
		}
	}
	if a.Upvoters == nil {
		a.Upvoters = []string{}
	}
	if a.Downvoters == nil {
		a.Downvoters = []string{}
	}
	return &a, nil
}

// Create inserts a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	sources, err := json.Marshal(nonNilSources(a.Sources))
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, description, content, category, published_at,
			author_id, author_kind, author_username, author_display_name,
			views, upvotes, downvotes, upvoters, downvoters, media_type, media_url, sources,
			status, deleted, rating, last_rating_update, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24)
	`, a.ID, a.Title, a.Description, a.Content, a.Category, a.PublishedAt,
		a.Author.ID, a.Author.Kind, a.AuthorUsername, a.AuthorDisplayName,
		a.Views, a.Upvotes, a.Downvotes, nonNilStrings(a.Upvoters), nonNilStrings(a.Downvoters),
		a.Media.Type, a.Media.URL, sources,
		a.Status, a.Deleted, a.Rating, a.LastRatingUpdate, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article with its saved-by records. Deleted articles
// are returned; callers decide visibility.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	saves, err := r.pool.Query(ctx, `
		SELECT principal_id, saved_at FROM article_saves
		WHERE article_id = $1
		ORDER BY saved_at
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query saves: %w", err)
	}
	defer saves.Close()

	for saves.Next() {
		var s domain.SavedBy
		if err := saves.Scan(&s.PrincipalID, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		a.SavedBy = append(a.SavedBy, s)
	}
	if err := saves.Err(); err != nil {
		return nil, fmt.Errorf("read saves: %w", err)
	}
	return a, nil
}

func applyArticleFilter(b sq.SelectBuilder, f ArticleFilter) sq.SelectBuilder {
	if !f.IncludeDeleted {
		b = b.Where(sq.Eq{"deleted": false})
	}
	if f.PublicOnly {
		b = b.Where(sq.Eq{"status": domain.StatusApproved})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if f.Category != "" {
		b = b.Where("LOWER(category) = LOWER(?)", f.Category)
	}
	if f.AuthorUsername != "" {
		b = b.Where("LOWER(author_username) = LOWER(?)", f.AuthorUsername)
	}
	if f.Author != nil {
		b = b.Where(sq.Eq{"author_id": f.Author.ID, "author_kind": f.Author.Kind})
	}
	if f.SubscribedBy != nil {
		b = b.Where(`(author_id, author_kind) IN (
			SELECT target_id, target_kind FROM subscriptions
			WHERE subscriber_id = ? AND subscriber_kind = ?)`, f.SubscribedBy.ID, f.SubscribedBy.Kind)
	}
	if f.SavedBy != "" {
		b = b.Where("id IN (SELECT article_id FROM article_saves WHERE principal_id = ?)", f.SavedBy)
	}
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author_username": pattern},
			sq.ILike{"author_display_name": pattern},
			sq.ILike{"content": pattern},
			sq.ILike{"category": pattern},
		})
	}
	return b
}

// List returns articles matching filter, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error) {
	b := applyArticleFilter(psql.Select(articleColumns).From("articles"), filter).
		OrderBy("published_at DESC", "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}

// Count returns how many articles match filter, ignoring limit and offset.
func (r *PostgresArticleRepository) Count(ctx context.Context, filter ArticleFilter) (int, error) {
	query, args, err := applyArticleFilter(psql.Select("COUNT(*)").From("articles"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}

// IncrementViews atomically bumps the view counter of a non-deleted article
// and returns the updated row.
func (r *PostgresArticleRepository) IncrementViews(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE articles SET views = views + 1
		WHERE id = $1 AND deleted = FALSE
		RETURNING `+articleColumns, id)

	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	return a, nil
}

// Update locks the article row, applies fn and writes back the vote, status
// and deletion columns. Absent articles yield (nil, nil) and fn is not called.
// An error from fn rolls the transaction back and is returned unchanged.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, fn func(*domain.Article) error) (*domain.Article, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	a, err := scanArticle(tx.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock article: %w", err)
	}

	if err := fn(a); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE articles
		SET upvotes = $2, downvotes = $3, upvoters = $4, downvoters = $5,
			status = $6, deleted = $7, deleted_at = $8, updated_at = $9
		WHERE id = $1
	`, a.ID, a.Upvotes, a.Downvotes, nonNilStrings(a.Upvoters), nonNilStrings(a.Downvoters),
		a.Status, a.Deleted, a.DeletedAt, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return a, nil
}

// UpdateRating stores a freshly computed rating.
func (r *PostgresArticleRepository) UpdateRating(ctx context.Context, id string, rating float64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles SET rating = $2, last_rating_update = $3 WHERE id = $1
	`, id, rating, at)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// BulkSoftDelete marks every listed, not yet deleted article deleted and
// returns how many rows changed.
func (r *PostgresArticleRepository) BulkSoftDelete(ctx context.Context, ids []string, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET deleted = TRUE, deleted_at = $2, updated_at = $2
		WHERE id = ANY($1::uuid[]) AND deleted = FALSE
	`, ids, at)
	if err != nil {
		return 0, fmt.Errorf("bulk soft delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ToggleSave adds or removes principalID's bookmark on the article and
// returns whether it is saved afterwards.
func (r *PostgresArticleRepository) ToggleSave(ctx context.Context, articleID, principalID string, at time.Time) (bool, error) {
	var saved bool
	err := r.pool.QueryRow(ctx, `
		WITH removed AS (
			DELETE FROM article_saves
			WHERE article_id = $1 AND principal_id = $2
			RETURNING 1
		), added AS (
			INSERT INTO article_saves (article_id, principal_id, saved_at)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT DO NOTHING
			RETURNING 1
		)
		SELECT NOT EXISTS (SELECT 1 FROM removed)
	`, articleID, principalID, at).Scan(&saved)
	if err != nil {
		return false, fmt.Errorf("toggle save: %w", err)
	}
	return saved, nil
}

// CountRatedAtLeast counts the author's non-deleted articles rated at or above threshold.
func (r *PostgresArticleRepository) CountRatedAtLeast(ctx context.Context, author domain.PrincipalRef, threshold float64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM articles
		WHERE author_id = $1 AND author_kind = $2 AND deleted = FALSE AND rating >= $3
	`, author.ID, author.Kind, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rated articles: %w", err)
	}
	return n, nil
}

// AuthorStats aggregates the author's non-deleted articles in one query.
// Monthly counts cover articles published at or after since.
func (r *PostgresArticleRepository) AuthorStats(ctx context.Context, author domain.PrincipalRef, since time.Time) (*domain.AuthorStats, error) {
	var (
		stats        domain.AuthorStats
		popularID    *string
		popularTitle *string
		popularViews *int64
		monthly      []byte
	)
	err := r.pool.QueryRow(ctx, `
		WITH authored AS (
			SELECT id, title, views, upvotes, status, published_at FROM articles
			WHERE author_id = $1 AND author_kind = $2 AND deleted = FALSE
		), popular AS (
			SELECT id, title, views FROM authored
			WHERE status = 'approved'
			ORDER BY views DESC, published_at DESC
			LIMIT 1
		), monthly AS (
			SELECT EXTRACT(YEAR FROM published_at AT TIME ZONE 'UTC')::int AS y,
				EXTRACT(MONTH FROM published_at AT TIME ZONE 'UTC')::int AS m,
				COUNT(*)::int AS n
			FROM authored
			WHERE published_at >= $3
			GROUP BY 1, 2
		)
		SELECT
			(SELECT COUNT(*) FROM authored),
			(SELECT COALESCE(SUM(upvotes), 0)::bigint FROM authored),
			(SELECT COALESCE(SUM(views), 0)::bigint FROM authored),
			(SELECT COUNT(*) FROM article_comments c JOIN authored a ON a.id = c.article_id),
			(SELECT id::text FROM popular),
			(SELECT title FROM popular),
			(SELECT views FROM popular),
			(SELECT COALESCE(json_agg(json_build_object('year', y, 'month', m, 'count', n) ORDER BY y, m), '[]'::json)
				FROM monthly)
	`, author.ID, author.Kind, since).Scan(&stats.TotalArticles, &stats.TotalLikes, &stats.TotalViews,
		&stats.TotalComments, &popularID, &popularTitle, &popularViews, &monthly)
	if err != nil {
		return nil, fmt.Errorf("aggregate author stats: %w", err)
	}

	if popularID != nil {
		stats.MostPopular = &domain.ArticleHighlight{ID: *popularID}
		if popularTitle != nil {
			stats.MostPopular.Title = *popularTitle
		}
		if popularViews != nil {
			stats.MostPopular.Views = *popularViews
		}
	}
	if err := json.Unmarshal(monthly, &stats.Monthly); err != nil {
		return nil, fmt.Errorf("unmarshal monthly counts: %w", err)
	}
	return &stats, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilSources(s []domain.Source) []domain.Source {
	if s == nil {
		return []domain.Source{}
	}
	return s
}
