package service

import (
	"context"
	"strings"

	"content-platform/internal/domain"
	"content-platform/internal/metrics"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

// SubscriptionService maintains the subscription graph between principals of either kind.
type SubscriptionService struct {
	principals    repository.PrincipalRepository
	subscriptions repository.SubscriptionRepository
	validator     *validator.Validator
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	principals repository.PrincipalRepository,
	subscriptions repository.SubscriptionRepository,
	v *validator.Validator,
) *SubscriptionService {
	return &SubscriptionService{principals: principals, subscriptions: subscriptions, validator: v}
}

// Toggle subscribes current to the target, or unsubscribes when already
// subscribed, and returns whether the edge exists afterwards.
func (s *SubscriptionService) Toggle(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error) {
	if targetID == current.ID {
		return false, domain.InvalidOperationf("you cannot subscribe to yourself")
	}
	target, err := s.target(ctx, targetID)
	if err != nil {
		return false, err
	}

	subscribed, err := s.subscriptions.Toggle(ctx, current, target.Ref())
	if err != nil {
		return false, err
	}
	metrics.ObserveSubscriptionToggle(subscribed)
	return subscribed, nil
}

// Status reports whether current is subscribed to the target.
func (s *SubscriptionService) Status(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error) {
	target, err := s.target(ctx, targetID)
	if err != nil {
		return false, err
	}
	return s.subscriptions.Exists(ctx, current, target.Ref())
}

// ListSubscribers returns who subscribes to the named principal.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, username string) ([]domain.PrincipalSummary, error) {
	p, err := s.named(ctx, username)
	if err != nil {
		return nil, err
	}
	refs, err := s.subscriptions.ListSubscribers(ctx, p.Ref())
	if err != nil {
		return nil, err
	}
	return summarize(ctx, s.principals, refs)
}

// ListSubscriptions returns whom the named principal subscribes to.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, username string) ([]domain.PrincipalSummary, error) {
	p, err := s.named(ctx, username)
	if err != nil {
		return nil, err
	}
	refs, err := s.subscriptions.ListSubscriptions(ctx, p.Ref())
	if err != nil {
		return nil, err
	}
	return summarize(ctx, s.principals, refs)
}

func (s *SubscriptionService) target(ctx context.Context, id string) (*domain.Principal, error) {
	if err := s.validator.ValidateID("id", id); err != nil {
		return nil, err
	}
	p, err := findByID(ctx, s.principals, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("user not found")
	}
	return p, nil
}

func (s *SubscriptionService) named(ctx context.Context, username string) (*domain.Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.Validationf("username is required")
	}
	p, err := findByUsername(ctx, s.principals, username)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("user %q not found", username)
	}
	return p, nil
}
