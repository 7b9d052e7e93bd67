package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
)

// MockSubscriptionServiceInterface is a mock type for the SubscriptionServiceInterface type
type MockSubscriptionServiceInterface struct {
	mock.Mock
}

type MockSubscriptionServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSubscriptionServiceInterface) EXPECT() *MockSubscriptionServiceInterface_Expecter {
	return &MockSubscriptionServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockSubscriptionServiceInterface) Toggle(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error) {
	ret := _m.Called(ctx, current, targetID)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, string) (bool, error)); ok {
		return rf(ctx, current, targetID)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// Toggle is a helper method to define mock.On call
func (_e *MockSubscriptionServiceInterface_Expecter) Toggle(ctx interface{}, current interface{}, targetID interface{}) *mock.Call {
	return _e.mock.On("Toggle", ctx, current, targetID)
}

func (_m *MockSubscriptionServiceInterface) Status(ctx context.Context, current domain.PrincipalRef, targetID string) (bool, error) {
	ret := _m.Called(ctx, current, targetID)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, string) (bool, error)); ok {
		return rf(ctx, current, targetID)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// Status is a helper method to define mock.On call
func (_e *MockSubscriptionServiceInterface_Expecter) Status(ctx interface{}, current interface{}, targetID interface{}) *mock.Call {
	return _e.mock.On("Status", ctx, current, targetID)
}

func (_m *MockSubscriptionServiceInterface) ListSubscribers(ctx context.Context, username string) ([]domain.PrincipalSummary, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.PrincipalSummary, error)); ok {
		return rf(ctx, username)
	}
	return returnValue[[]domain.PrincipalSummary](ret, 0), ret.Error(1)
}

// ListSubscribers is a helper method to define mock.On call
func (_e *MockSubscriptionServiceInterface_Expecter) ListSubscribers(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("ListSubscribers", ctx, username)
}

func (_m *MockSubscriptionServiceInterface) ListSubscriptions(ctx context.Context, username string) ([]domain.PrincipalSummary, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.PrincipalSummary, error)); ok {
		return rf(ctx, username)
	}
	return returnValue[[]domain.PrincipalSummary](ret, 0), ret.Error(1)
}

// ListSubscriptions is a helper method to define mock.On call
func (_e *MockSubscriptionServiceInterface_Expecter) ListSubscriptions(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("ListSubscriptions", ctx, username)
}

// NewMockSubscriptionServiceInterface creates a new instance of MockSubscriptionServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSubscriptionServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriptionServiceInterface {
	m := &MockSubscriptionServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
