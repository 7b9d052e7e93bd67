package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/service"
)

// MockVoteServiceInterface is a mock type for the VoteServiceInterface type
type MockVoteServiceInterface struct {
	mock.Mock
}

type MockVoteServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockVoteServiceInterface) EXPECT() *MockVoteServiceInterface_Expecter {
	return &MockVoteServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockVoteServiceInterface) Upvote(ctx context.Context, voter *domain.Principal, articleID string) (*service.VoteResult, error) {
	ret := _m.Called(ctx, voter, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*service.VoteResult, error)); ok {
		return rf(ctx, voter, articleID)
	}
	return returnValue[*service.VoteResult](ret, 0), ret.Error(1)
}

// Upvote is a helper method to define mock.On call
func (_e *MockVoteServiceInterface_Expecter) Upvote(ctx interface{}, voter interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("Upvote", ctx, voter, articleID)
}

func (_m *MockVoteServiceInterface) Downvote(ctx context.Context, voter *domain.Principal, articleID string) (*service.VoteResult, error) {
	ret := _m.Called(ctx, voter, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*service.VoteResult, error)); ok {
		return rf(ctx, voter, articleID)
	}
	return returnValue[*service.VoteResult](ret, 0), ret.Error(1)
}

// Downvote is a helper method to define mock.On call
func (_e *MockVoteServiceInterface_Expecter) Downvote(ctx interface{}, voter interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("Downvote", ctx, voter, articleID)
}

func (_m *MockVoteServiceInterface) Status(ctx context.Context, voter *domain.Principal, articleID string) (*service.VoteResult, error) {
	ret := _m.Called(ctx, voter, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*service.VoteResult, error)); ok {
		return rf(ctx, voter, articleID)
	}
	return returnValue[*service.VoteResult](ret, 0), ret.Error(1)
}

// Status is a helper method to define mock.On call
func (_e *MockVoteServiceInterface_Expecter) Status(ctx interface{}, voter interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("Status", ctx, voter, articleID)
}

// NewMockVoteServiceInterface creates a new instance of MockVoteServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockVoteServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVoteServiceInterface {
	m := &MockVoteServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
