package mocks

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
)

// MockCommentRepository is a mock type for the CommentRepository type
type MockCommentRepository struct {
	mock.Mock
}

type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	ret := _m.Called(ctx, comment)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Comment) error); ok {
		return rf(ctx, comment)
	}
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) Create(ctx interface{}, comment interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, comment)
}

func (_m *MockCommentRepository) GetByID(ctx context.Context, articleID string, commentID string) (*domain.Comment, error) {
	ret := _m.Called(ctx, articleID, commentID)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*domain.Comment, error)); ok {
		return rf(ctx, articleID, commentID)
	}
	return returnValue[*domain.Comment](ret, 0), ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) GetByID(ctx interface{}, articleID interface{}, commentID interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, articleID, commentID)
}

func (_m *MockCommentRepository) UpdateText(ctx context.Context, articleID string, commentID string, text string, at time.Time) (*domain.Comment, error) {
	ret := _m.Called(ctx, articleID, commentID, text, at)

	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, time.Time) (*domain.Comment, error)); ok {
		return rf(ctx, articleID, commentID, text, at)
	}
	return returnValue[*domain.Comment](ret, 0), ret.Error(1)
}

// UpdateText is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) UpdateText(ctx interface{}, articleID interface{}, commentID interface{}, text interface{}, at interface{}) *mock.Call {
	return _e.mock.On("UpdateText", ctx, articleID, commentID, text, at)
}

func (_m *MockCommentRepository) Delete(ctx context.Context, articleID string, commentID string) (bool, error) {
	ret := _m.Called(ctx, articleID, commentID)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (bool, error)); ok {
		return rf(ctx, articleID, commentID)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// Delete is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) Delete(ctx interface{}, articleID interface{}, commentID interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, articleID, commentID)
}

func (_m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	ret := _m.Called(ctx, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.Comment, error)); ok {
		return rf(ctx, articleID)
	}
	return returnValue[[]domain.Comment](ret, 0), ret.Error(1)
}

// ListByArticle is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) ListByArticle(ctx interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("ListByArticle", ctx, articleID)
}

// NewMockCommentRepository creates a new instance of MockCommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
