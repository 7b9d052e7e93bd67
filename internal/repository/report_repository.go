package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform/internal/domain"
)

const reportColumns = `id, article_id, reporter_id, reporter_kind, reason, description, status,
	admin_notes, reviewed_by_id, reviewed_by_kind, reviewed_at, created_at, updated_at`

// PostgresReportRepository implements ReportRepository using PostgreSQL.
type PostgresReportRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReportRepository creates a new PostgresReportRepository.
func NewPostgresReportRepository(pool *pgxpool.Pool) *PostgresReportRepository {
	return &PostgresReportRepository{pool: pool}
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var reviewerID, reviewerKind *string
	err := row.Scan(&rep.ID, &rep.ArticleID, &rep.ReportedBy.ID, &rep.ReportedBy.Kind,
		&rep.Reason, &rep.Description, &rep.Status, &rep.AdminNotes,
		&reviewerID, &reviewerKind, &rep.ReviewedAt, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if reviewerID != nil && reviewerKind != nil {
		rep.ReviewedBy = &domain.PrincipalRef{ID: *reviewerID, Kind: domain.PrincipalKind(*reviewerKind)}
	}
	return &rep, nil
}

// Create inserts a report. A second report by the same reporter on the same
// article is a Conflict.
func (r *PostgresReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reports (id, article_id, reporter_id, reporter_kind, reason, description,
			status, admin_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rep.ID, rep.ArticleID, rep.ReportedBy.ID, rep.ReportedBy.Kind, rep.Reason, rep.Description,
		rep.Status, rep.AdminNotes, rep.CreatedAt, rep.UpdatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "reports_article_reporter_key" {
			return domain.Conflictf("you have already reported this article")
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by ID.
func (r *PostgresReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	rep, err := scanReport(r.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

// Update locks the report, applies fn and writes the review columns back.
// Absent reports yield (nil, nil) and fn is not called.
func (r *PostgresReportRepository) Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rep, err := scanReport(tx.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock report: %w", err)
	}

	if err := fn(rep); err != nil {
		return nil, err
	}

	var reviewerID, reviewerKind *string
	if rep.ReviewedBy != nil {
		rid, kind := rep.ReviewedBy.ID, string(rep.ReviewedBy.Kind)
		reviewerID, reviewerKind = &rid, &kind
	}

	_, err = tx.Exec(ctx, `
		UPDATE reports
		SET status = $2, admin_notes = $3, reviewed_by_id = $4, reviewed_by_kind = $5,
			reviewed_at = $6, updated_at = $7
		WHERE id = $1
	`, rep.ID, rep.Status, rep.AdminNotes, reviewerID, reviewerKind, rep.ReviewedAt, rep.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return rep, nil
}

// List returns one page of reports, newest first, and the total matching count.
func (r *PostgresReportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.Report, int, error) {
	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("reports").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	b := psql.Select(reportColumns).From("reports").Where(where).OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build report query: %w", err)
	}

	reports, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ListByArticle returns every report filed against an article, newest first.
func (r *PostgresReportRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Report, error) {
	return r.query(ctx, `
		SELECT `+reportColumns+` FROM reports
		WHERE article_id = $1
		ORDER BY created_at DESC, id
	`, articleID)
}

// CountRows aggregates reports by (status, reason).
func (r *PostgresReportRepository) CountRows(ctx context.Context) ([]domain.ReportCountRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, reason, COUNT(*) FROM reports GROUP BY status, reason
	`)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}
	defer rows.Close()

	var out []domain.ReportCountRow
	for rows.Next() {
		var row domain.ReportCountRow
		if err := rows.Scan(&row.Status, &row.Reason, &row.Count); err != nil {
			return nil, fmt.Errorf("scan report count: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PostgresReportRepository) query(ctx context.Context, query string, args ...any) ([]domain.Report, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}
	return reports, nil
}
