package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-platform/internal/domain"
	"content-platform/internal/mocks"
	"content-platform/internal/service"
	"content-platform/internal/validator"
)

func newSubscriptionService(t *testing.T) (*service.SubscriptionService, *mocks.MockPrincipalRepository, *mocks.MockSubscriptionRepository) {
	principals := mocks.NewMockPrincipalRepository(t)
	subscriptions := mocks.NewMockSubscriptionRepository(t)
	return service.NewSubscriptionService(principals, subscriptions, validator.NewValidator()), principals, subscriptions
}

func TestSubscriptionService_Toggle(t *testing.T) {
	ctx := context.Background()
	me := principal(domain.PrincipalLocal, "alice")
	target := principal(domain.PrincipalExternal, "bob.smith")

	t.Run("rejects self subscription without touching storage", func(t *testing.T) {
		svc, _, _ := newSubscriptionService(t)

		_, err := svc.Toggle(ctx, me.Ref(), me.ID)

		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})

	t.Run("probes both kinds to find the target", func(t *testing.T) {
		svc, principals, subscriptions := newSubscriptionService(t)
		principals.EXPECT().Get(mock.Anything, domain.PrincipalRef{ID: target.ID, Kind: domain.PrincipalLocal}).Return(nil, nil)
		principals.EXPECT().Get(mock.Anything, target.Ref()).Return(target, nil)
		subscriptions.EXPECT().Toggle(mock.Anything, me.Ref(), target.Ref()).Return(true, nil).Once()
		subscriptions.EXPECT().Toggle(mock.Anything, me.Ref(), target.Ref()).Return(false, nil).Once()

		subscribed, err := svc.Toggle(ctx, me.Ref(), target.ID)
		require.NoError(t, err)
		assert.True(t, subscribed)

		subscribed, err = svc.Toggle(ctx, me.Ref(), target.ID)
		require.NoError(t, err)
		assert.False(t, subscribed)
	})

	t.Run("reports unknown targets", func(t *testing.T) {
		svc, principals, _ := newSubscriptionService(t)
		id := uuid.NewString()
		principals.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil).Twice()

		_, err := svc.Toggle(ctx, me.Ref(), id)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		svc, _, _ := newSubscriptionService(t)
		_, err := svc.Toggle(ctx, me.Ref(), "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSubscriptionService_Status(t *testing.T) {
	svc, principals, subscriptions := newSubscriptionService(t)
	me := principal(domain.PrincipalLocal, "alice")
	target := principal(domain.PrincipalLocal, "carol")
	principals.EXPECT().Get(mock.Anything, target.Ref()).Return(target, nil)
	subscriptions.EXPECT().Exists(mock.Anything, me.Ref(), target.Ref()).Return(true, nil)

	subscribed, err := svc.Status(context.Background(), me.Ref(), target.ID)

	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestSubscriptionService_ListSubscribers(t *testing.T) {
	ctx := context.Background()
	bob := principal(domain.PrincipalLocal, "bob")
	alice := principal(domain.PrincipalLocal, "alice")
	alice.Profile.ProfilePicture = "https://img.example.com/a.png"
	gone := domain.PrincipalRef{ID: uuid.NewString(), Kind: domain.PrincipalExternal}

	t.Run("skips refs that no longer resolve", func(t *testing.T) {
		svc, principals, subscriptions := newSubscriptionService(t)
		principals.EXPECT().GetByUsername(mock.Anything, domain.PrincipalLocal, "bob").Return(bob, nil)
		subscriptions.EXPECT().ListSubscribers(mock.Anything, bob.Ref()).Return([]domain.PrincipalRef{gone, alice.Ref()}, nil)
		principals.EXPECT().Get(mock.Anything, gone).Return(nil, nil)
		principals.EXPECT().Get(mock.Anything, alice.Ref()).Return(alice, nil)

		subscribers, err := svc.ListSubscribers(ctx, "bob")

		require.NoError(t, err)
		require.Len(t, subscribers, 1)
		assert.Equal(t, domain.PrincipalSummary{
			ID:          alice.ID,
			Username:    "alice",
			DisplayName: "alice",
			Avatar:      "https://img.example.com/a.png",
		}, subscribers[0])
	})

	t.Run("lists subscriptions", func(t *testing.T) {
		svc, principals, subscriptions := newSubscriptionService(t)
		principals.EXPECT().GetByUsername(mock.Anything, domain.PrincipalLocal, "alice").Return(alice, nil)
		subscriptions.EXPECT().ListSubscriptions(mock.Anything, alice.Ref()).Return([]domain.PrincipalRef{bob.Ref()}, nil)
		principals.EXPECT().Get(mock.Anything, bob.Ref()).Return(bob, nil)

		subs, err := svc.ListSubscriptions(ctx, "alice")

		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "bob", subs[0].Username)
	})

	t.Run("reports unknown usernames", func(t *testing.T) {
		svc, principals, _ := newSubscriptionService(t)
		principals.EXPECT().GetByUsername(mock.Anything, mock.Anything, "ghost").Return(nil, nil).Twice()

		_, err := svc.ListSubscribers(ctx, "ghost")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
