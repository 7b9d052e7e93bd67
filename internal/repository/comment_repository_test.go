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

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	principals := repository.NewPostgresPrincipalRepository(testDB.Pool)
	articles := repository.NewPostgresArticleRepository(testDB.Pool)
	repo := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	newComment := func(articleID, authorID, text string, at time.Time) *domain.Comment {
		return &domain.Comment{
			ID:        uuid.New().String(),
			ArticleID: articleID,
			AuthorID:  authorID,
			Text:      text,
			CreatedAt: at,
			UpdatedAt: at,
		}
	}

	t.Run("create list edit delete", func(t *testing.T) {
		testDB.Reset(t)
		author := createLocal(t, principals, "author")
		a := createArticle(t, articles, author.Principal, domain.StatusApproved)
		now := time.Now().UTC().Truncate(time.Microsecond)

		first := newComment(a.ID, author.ID, "first", now)
		second := newComment(a.ID, author.ID, "second", now.Add(time.Second))
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, first))

		list, err := repo.ListByArticle(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "first", list[0].Text)
		assert.Equal(t, "second", list[1].Text)

		edited, err := repo.UpdateText(ctx, a.ID, first.ID, "first, edited", now.Add(time.Minute))
		require.NoError(t, err)
		require.NotNil(t, edited)
		assert.Equal(t, "first, edited", edited.Text)
		assert.True(t, edited.UpdatedAt.After(edited.CreatedAt))

		deleted, err := repo.Delete(ctx, a.ID, first.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.GetByID(ctx, a.ID, first.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("comments are scoped to their article", func(t *testing.T) {
		testDB.Reset(t)
		author := createLocal(t, principals, "author")
		a := createArticle(t, articles, author.Principal, domain.StatusApproved)
		b := createArticle(t, articles, author.Principal, domain.StatusApproved)
		c := newComment(a.ID, author.ID, "on a", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, c))

		got, err := repo.GetByID(ctx, b.ID, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err := repo.Delete(ctx, b.ID, c.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		edited, err := repo.UpdateText(ctx, b.ID, c.ID, "hijack", time.Now())
		require.NoError(t, err)
		assert.Nil(t, edited)
	})
}
