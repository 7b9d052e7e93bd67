package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/service"
)

// MockCommentServiceInterface is a mock type for the CommentServiceInterface type
type MockCommentServiceInterface struct {
	mock.Mock
}

type MockCommentServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommentServiceInterface) EXPECT() *MockCommentServiceInterface_Expecter {
	return &MockCommentServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockCommentServiceInterface) Add(ctx context.Context, author *domain.Principal, articleID string, text string) (*domain.Comment, error) {
	ret := _m.Called(ctx, author, articleID, text)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, string) (*domain.Comment, error)); ok {
		return rf(ctx, author, articleID, text)
	}
	return returnValue[*domain.Comment](ret, 0), ret.Error(1)
}

// Add is a helper method to define mock.On call
func (_e *MockCommentServiceInterface_Expecter) Add(ctx interface{}, author interface{}, articleID interface{}, text interface{}) *mock.Call {
	return _e.mock.On("Add", ctx, author, articleID, text)
}

func (_m *MockCommentServiceInterface) Edit(ctx context.Context, author *domain.Principal, articleID string, commentID string, text string) (*domain.Comment, error) {
	ret := _m.Called(ctx, author, articleID, commentID, text)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, string, string) (*domain.Comment, error)); ok {
		return rf(ctx, author, articleID, commentID, text)
	}
	return returnValue[*domain.Comment](ret, 0), ret.Error(1)
}

// Edit is a helper method to define mock.On call
func (_e *MockCommentServiceInterface_Expecter) Edit(ctx interface{}, author interface{}, articleID interface{}, commentID interface{}, text interface{}) *mock.Call {
	return _e.mock.On("Edit", ctx, author, articleID, commentID, text)
}

func (_m *MockCommentServiceInterface) Delete(ctx context.Context, actor *domain.Principal, articleID string, commentID string) error {
	ret := _m.Called(ctx, actor, articleID, commentID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, string) error); ok {
		return rf(ctx, actor, articleID, commentID)
	}
	return ret.Error(0)
}

// Delete is a helper method to define mock.On call
func (_e *MockCommentServiceInterface_Expecter) Delete(ctx interface{}, actor interface{}, articleID interface{}, commentID interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, actor, articleID, commentID)
}

func (_m *MockCommentServiceInterface) List(ctx context.Context, viewer *domain.Principal, articleID string) ([]service.CommentView, error) {
	ret := _m.Called(ctx, viewer, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) ([]service.CommentView, error)); ok {
		return rf(ctx, viewer, articleID)
	}
	return returnValue[[]service.CommentView](ret, 0), ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockCommentServiceInterface_Expecter) List(ctx interface{}, viewer interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("List", ctx, viewer, articleID)
}

// NewMockCommentServiceInterface creates a new instance of MockCommentServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCommentServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentServiceInterface {
	m := &MockCommentServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
