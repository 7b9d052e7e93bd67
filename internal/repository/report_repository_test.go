package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
)

func TestPostgresReportRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	principals := repository.NewPostgresPrincipalRepository(testDB.Pool)
	articles := repository.NewPostgresArticleRepository(testDB.Pool)
	repo := repository.NewPostgresReportRepository(testDB.Pool)
	ctx := context.Background()

	newReport := func(articleID string, reporter domain.PrincipalRef, reason domain.ReportReason) *domain.Report {
		now := time.Now().UTC().Truncate(time.Microsecond)
		return &domain.Report{
			ID:          uuid.New().String(),
			ArticleID:   articleID,
			ReportedBy:  reporter,
			Reason:      reason,
			Description: "see paragraph two",
			Status:      domain.ReportPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	t.Run("second report by the same reporter conflicts", func(t *testing.T) {
		testDB.Reset(t)
		author := createLocal(t, principals, "author")
		reporter := createExternal(t, principals, "reporter")
		a := createArticle(t, articles, author.Principal, domain.StatusApproved)

		first := newReport(a.ID, reporter.Ref(), domain.ReasonSpam)
		require.NoError(t, repo.Create(ctx, first))

		err := repo.Create(ctx, newReport(a.ID, reporter.Ref(), domain.ReasonMisinformation))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)

		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.ReasonSpam, got.Reason)
		assert.Equal(t, domain.ReportPending, got.Status)
	})

	t.Run("review stamps the reviewer once", func(t *testing.T) {
		testDB.Reset(t)
		author := createLocal(t, principals, "author")
		admin := createLocal(t, principals, "admin")
		second := createLocal(t, principals, "admin2")
		a := createArticle(t, articles, author.Principal, domain.StatusApproved)
		rep := newReport(a.ID, author.Ref(), domain.ReasonOther)
		require.NoError(t, repo.Create(ctx, rep))

		reviewed, err := repo.Update(ctx, rep.ID, func(r *domain.Report) error {
			return r.Review(domain.ReportReviewed, "looking", admin.Ref(), time.Now().UTC())
		})
		require.NoError(t, err)
		require.NotNil(t, reviewed.ReviewedBy)
		firstStamp := *reviewed.ReviewedAt

		_, err = repo.Update(ctx, rep.ID, func(r *domain.Report) error {
			return r.Review(domain.ReportResolved, "", second.Ref(), time.Now().UTC().Add(time.Hour))
		})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, rep.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReportResolved, got.Status)
		assert.Equal(t, "looking", got.AdminNotes)
		require.NotNil(t, got.ReviewedBy)
		assert.Equal(t, admin.Ref(), *got.ReviewedBy)
		assert.WithinDuration(t, firstStamp, *got.ReviewedAt, time.Millisecond)
	})

	t.Run("list filter pagination and counts", func(t *testing.T) {
		testDB.Reset(t)
		author := createLocal(t, principals, "author")
		a := createArticle(t, articles, author.Principal, domain.StatusApproved)
		reasons := []domain.ReportReason{domain.ReasonSpam, domain.ReasonSpam, domain.ReasonViolence}
		var ids []string
		for i, reason := range reasons {
			reporter := createExternal(t, principals, uuid.New().String()[:8])
			rep := newReport(a.ID, reporter.Ref(), reason)
			rep.CreatedAt = rep.CreatedAt.Add(time.Duration(i) * time.Second)
			require.NoError(t, repo.Create(ctx, rep))
			ids = append(ids, rep.ID)
		}
		_, err := repo.Update(ctx, ids[0], func(r *domain.Report) error {
			return r.Review(domain.ReportRejected, "", author.Ref(), time.Now().UTC())
		})
		require.NoError(t, err)

		pending, total, err := repo.List(ctx, repository.ReportFilter{Status: domain.ReportPending, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, pending, 1)
		assert.Equal(t, ids[2], pending[0].ID)

		all, total, err := repo.List(ctx, repository.ReportFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, all, 3)

		byArticle, err := repo.ListByArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, byArticle, 3)

		rows, err := repo.CountRows(ctx)
		require.NoError(t, err)
		counts := domain.FoldReportCounts(rows)
		assert.Equal(t, 2, counts.Pending)
		assert.Equal(t, 1, counts.Rejected)
		assert.Equal(t, 3, counts.Total)
		assert.Equal(t, 2, counts.ByReason[domain.ReasonSpam])
		assert.Equal(t, 1, counts.ByReason[domain.ReasonViolence])
	})
}
