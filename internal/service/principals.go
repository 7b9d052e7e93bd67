package service

import (
	"context"
	"time"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
)

// Clock returns the current time. Services default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// findByUsername looks the username up in each principal table in probe order.
func findByUsername(ctx context.Context, repo repository.PrincipalRepository, username string) (*domain.Principal, error) {
	for _, kind := range domain.PrincipalKinds {
		p, err := repo.GetByUsername(ctx, kind, username)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, nil
}

// findByID probes both principal tables for id; the first match wins.
func findByID(ctx context.Context, repo repository.PrincipalRepository, id string) (*domain.Principal, error) {
	for _, kind := range domain.PrincipalKinds {
		p, err := repo.Get(ctx, domain.PrincipalRef{ID: id, Kind: kind})
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, nil
}

// summarize resolves each ref by its stored kind, skipping refs that no longer resolve.
func summarize(ctx context.Context, repo repository.PrincipalRepository, refs []domain.PrincipalRef) ([]domain.PrincipalSummary, error) {
	out := make([]domain.PrincipalSummary, 0, len(refs))
	for _, ref := range refs {
		p, err := repo.Get(ctx, ref)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		out = append(out, p.Summary())
	}
	return out, nil
}

func requireAdmin(p *domain.Principal) error {
	if !p.IsAdmin() {
		return domain.Forbiddenf("admin access required")
	}
	return nil
}

func requirePrincipal(p *domain.Principal) error {
	if p == nil {
		return domain.Forbiddenf("authentication required")
	}
	return nil
}
