package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
	"content-platform/internal/metrics"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

// ReportService handles reader reports and their moderation.
type ReportService struct {
	reports   repository.ReportRepository
	articles  repository.ArticleRepository
	validator *validator.Validator
	cfg       ArticleConfig
	now       Clock
}

// NewReportService creates a new ReportService. cfg supplies the page size limits.
func NewReportService(
	reports repository.ReportRepository,
	articles repository.ArticleRepository,
	v *validator.Validator,
	cfg ArticleConfig,
) *ReportService {
	return &ReportService{
		reports:   reports,
		articles:  articles,
		validator: v,
		cfg:       cfg,
		now:       utcNow,
	}
}

// SetClock overrides the clock. Intended for tests.
func (s *ReportService) SetClock(now Clock) {
	s.now = now
}

// Submit files a pending report. Deleted articles stay reportable.
// A reporter may report an article only once.
func (s *ReportService) Submit(ctx context.Context, reporter *domain.Principal, articleID string, in *domain.ReportInput) (*domain.Report, error) {
	if err := requirePrincipal(reporter); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validator.ValidateReport(in); err != nil {
		return nil, err
	}

	a, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFoundf("article not found")
	}

	now := s.now()
	r := &domain.Report{
		ID:          uuid.NewString(),
		ArticleID:   articleID,
		ReportedBy:  reporter.Ref(),
		Reason:      in.Reason,
		Description: in.Description,
		Status:      domain.ReportPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}

	metrics.ObserveReportSubmitted(string(r.Reason))
	logger.WithArticleID(articleID).InfoContext(ctx, "report submitted", "report_id", r.ID, "reason", r.Reason)
	return r, nil
}

// UpdateStatus applies an admin review to a report.
func (s *ReportService) UpdateStatus(ctx context.Context, admin *domain.Principal, reportID string, in *domain.ReportReview) (*domain.Report, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", reportID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateReportReview(in); err != nil {
		return nil, err
	}

	r, err := s.reports.Update(ctx, reportID, func(r *domain.Report) error {
		return r.Review(in.Status, strings.TrimSpace(in.AdminNotes), admin.Ref(), s.now())
	})
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFoundf("report not found")
	}

	metrics.ObserveModeration("review_report", 1)
	return r, nil
}

// List returns a page of reports, newest first, optionally narrowed by status.
func (s *ReportService) List(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*ReportPage, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if status != "" && !domain.IsValidReportStatus(status) {
		return nil, domain.Validationf("invalid report status %q", status)
	}

	page = page.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	reports, total, err := s.reports.List(ctx, repository.ReportFilter{
		Status: domain.ReportStatus(status),
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}

	return &ReportPage{
		Reports:    reports,
		Page:       page.Number,
		Limit:      page.Size,
		Total:      total,
		TotalPages: page.PageCount(total),
	}, nil
}

// ListByArticle returns every report filed against an article.
func (s *ReportService) ListByArticle(ctx context.Context, admin *domain.Principal, articleID string) ([]domain.Report, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID("id", articleID); err != nil {
		return nil, err
	}
	return s.reports.ListByArticle(ctx, articleID)
}

// Counts folds the stored reports into per-status and per-reason totals.
func (s *ReportService) Counts(ctx context.Context, admin *domain.Principal) (*domain.ReportCounts, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	rows, err := s.reports.CountRows(ctx)
	if err != nil {
		return nil, err
	}
	counts := domain.FoldReportCounts(rows)
	return &counts, nil
}
