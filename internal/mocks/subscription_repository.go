package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
)

// MockSubscriptionRepository is a mock type for the SubscriptionRepository type
type MockSubscriptionRepository struct {
	mock.Mock
}

type MockSubscriptionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSubscriptionRepository) EXPECT() *MockSubscriptionRepository_Expecter {
	return &MockSubscriptionRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriber domain.PrincipalRef, target domain.PrincipalRef) (bool, error) {
	ret := _m.Called(ctx, subscriber, target)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, domain.PrincipalRef) (bool, error)); ok {
		return rf(ctx, subscriber, target)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// Toggle is a helper method to define mock.On call
func (_e *MockSubscriptionRepository_Expecter) Toggle(ctx interface{}, subscriber interface{}, target interface{}) *mock.Call {
	return _e.mock.On("Toggle", ctx, subscriber, target)
}

func (_m *MockSubscriptionRepository) Exists(ctx context.Context, subscriber domain.PrincipalRef, target domain.PrincipalRef) (bool, error) {
	ret := _m.Called(ctx, subscriber, target)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, domain.PrincipalRef) (bool, error)); ok {
		return rf(ctx, subscriber, target)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// Exists is a helper method to define mock.On call
func (_e *MockSubscriptionRepository_Expecter) Exists(ctx interface{}, subscriber interface{}, target interface{}) *mock.Call {
	return _e.mock.On("Exists", ctx, subscriber, target)
}

func (_m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, target domain.PrincipalRef) ([]domain.PrincipalRef, error) {
	ret := _m.Called(ctx, target)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef) ([]domain.PrincipalRef, error)); ok {
		return rf(ctx, target)
	}
	return returnValue[[]domain.PrincipalRef](ret, 0), ret.Error(1)
}

// ListSubscribers is a helper method to define mock.On call
func (_e *MockSubscriptionRepository_Expecter) ListSubscribers(ctx interface{}, target interface{}) *mock.Call {
	return _e.mock.On("ListSubscribers", ctx, target)
}

func (_m *MockSubscriptionRepository) ListSubscriptions(ctx context.Context, subscriber domain.PrincipalRef) ([]domain.PrincipalRef, error) {
	ret := _m.Called(ctx, subscriber)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef) ([]domain.PrincipalRef, error)); ok {
		return rf(ctx, subscriber)
	}
	return returnValue[[]domain.PrincipalRef](ret, 0), ret.Error(1)
}

// ListSubscriptions is a helper method to define mock.On call
func (_e *MockSubscriptionRepository_Expecter) ListSubscriptions(ctx interface{}, subscriber interface{}) *mock.Call {
	return _e.mock.On("ListSubscriptions", ctx, subscriber)
}

// NewMockSubscriptionRepository creates a new instance of MockSubscriptionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSubscriptionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
