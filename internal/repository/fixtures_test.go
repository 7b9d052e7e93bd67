package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
)

func newLocalPrincipal(username string) *domain.LocalPrincipal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.LocalPrincipal{
		Principal: domain.Principal{
			ID:          uuid.New().String(),
			Kind:        domain.PrincipalLocal,
			Username:    username,
			DisplayName: username,
			Email:       username + "@example.com",
			Role:        domain.RoleUser,
			Active:      true,
			Badge:       domain.BadgeIron,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func newExternalPrincipal(username string) *domain.ExternalPrincipal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.ExternalPrincipal{
		Principal: domain.Principal{
			ID:          uuid.New().String(),
			Kind:        domain.PrincipalExternal,
			Username:    username,
			DisplayName: username,
			Email:       username + "@mail.example.org",
			Role:        domain.RoleUser,
			Active:      true,
			Badge:       domain.BadgeIron,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		ProviderID:    "provider-" + uuid.New().String(),
		EmailVerified: true,
	}
}

func createLocal(t *testing.T, repo *repository.PostgresPrincipalRepository, username string) *domain.LocalPrincipal {
	t.Helper()
	p := newLocalPrincipal(username)
	require.NoError(t, repo.CreateLocal(context.Background(), p))
	return p
}

func createExternal(t *testing.T, repo *repository.PostgresPrincipalRepository, username string) *domain.ExternalPrincipal {
	t.Helper()
	p := newExternalPrincipal(username)
	require.NoError(t, repo.CreateExternal(context.Background(), p))
	return p
}

func newArticle(author domain.Principal, status domain.ArticleStatus) *domain.Article {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Article{
		ID:                uuid.New().String(),
		Title:             "Consensus in practice",
		Description:       "Raft walk-through",
		Content:           "Leaders, terms and logs.",
		Category:          "distributed-systems",
		PublishedAt:       now,
		Author:            author.Ref(),
		AuthorUsername:    author.Username,
		AuthorDisplayName: author.DisplayName,
		Upvoters:          []string{},
		Downvoters:        []string{},
		Sources:           []domain.Source{{Kind: domain.SourceURL, Value: "https://raft.github.io"}},
		Status:            status,
		Rating:            50,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func createArticle(t *testing.T, repo *repository.PostgresArticleRepository, author domain.Principal, status domain.ArticleStatus) *domain.Article {
	t.Helper()
	a := newArticle(author, status)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}
