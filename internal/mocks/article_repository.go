package mocks

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
)

// MockArticleRepository is a mock type for the ArticleRepository type
type MockArticleRepository struct {
	mock.Mock
}

type MockArticleRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArticleRepository) EXPECT() *MockArticleRepository_Expecter {
	return &MockArticleRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	ret := _m.Called(ctx, article)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Article) error); ok {
		return rf(ctx, article)
	}
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) Create(ctx interface{}, article interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, article)
}

func (_m *MockArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Article, error)); ok {
		return rf(ctx, id)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

func (_m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter) ([]domain.Article, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, repository.ArticleFilter) ([]domain.Article, error)); ok {
		return rf(ctx, filter)
	}
	return returnValue[[]domain.Article](ret, 0), ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockArticleRepository) Count(ctx context.Context, filter repository.ArticleFilter) (int, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, repository.ArticleFilter) (int, error)); ok {
		return rf(ctx, filter)
	}
	return returnValue[int](ret, 0), ret.Error(1)
}

// Count is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) Count(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("Count", ctx, filter)
}

func (_m *MockArticleRepository) IncrementViews(ctx context.Context, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Article, error)); ok {
		return rf(ctx, id)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// IncrementViews is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) IncrementViews(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("IncrementViews", ctx, id)
}

func (_m *MockArticleRepository) Update(ctx context.Context, id string, fn func(*domain.Article) error) (*domain.Article, error) {
	ret := _m.Called(ctx, id, fn)

	if rf, ok := ret.Get(0).(func(context.Context, string, func(*domain.Article) error) (*domain.Article, error)); ok {
		return rf(ctx, id, fn)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// Update is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) Update(ctx interface{}, id interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, id, fn)
}

func (_m *MockArticleRepository) UpdateRating(ctx context.Context, id string, rating float64, at time.Time) error {
	ret := _m.Called(ctx, id, rating, at)

	if rf, ok := ret.Get(0).(func(context.Context, string, float64, time.Time) error); ok {
		return rf(ctx, id, rating, at)
	}
	return ret.Error(0)
}

// UpdateRating is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) UpdateRating(ctx interface{}, id interface{}, rating interface{}, at interface{}) *mock.Call {
	return _e.mock.On("UpdateRating", ctx, id, rating, at)
}

func (_m *MockArticleRepository) BulkSoftDelete(ctx context.Context, ids []string, at time.Time) (int64, error) {
	ret := _m.Called(ctx, ids, at)

	if rf, ok := ret.Get(0).(func(context.Context, []string, time.Time) (int64, error)); ok {
		return rf(ctx, ids, at)
	}
	return returnValue[int64](ret, 0), ret.Error(1)
}

// BulkSoftDelete is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) BulkSoftDelete(ctx interface{}, ids interface{}, at interface{}) *mock.Call {
	return _e.mock.On("BulkSoftDelete", ctx, ids, at)
}

func (_m *MockArticleRepository) ToggleSave(ctx context.Context, articleID string, principalID string, at time.Time) (bool, error) {
	ret := _m.Called(ctx, articleID, principalID, at)

	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Time) (bool, error)); ok {
		return rf(ctx, articleID, principalID, at)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// ToggleSave is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) ToggleSave(ctx interface{}, articleID interface{}, principalID interface{}, at interface{}) *mock.Call {
	return _e.mock.On("ToggleSave", ctx, articleID, principalID, at)
}

func (_m *MockArticleRepository) CountRatedAtLeast(ctx context.Context, author domain.PrincipalRef, threshold float64) (int, error) {
	ret := _m.Called(ctx, author, threshold)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, float64) (int, error)); ok {
		return rf(ctx, author, threshold)
	}
	return returnValue[int](ret, 0), ret.Error(1)
}

// CountRatedAtLeast is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) CountRatedAtLeast(ctx interface{}, author interface{}, threshold interface{}) *mock.Call {
	return _e.mock.On("CountRatedAtLeast", ctx, author, threshold)
}

// AuthorStats provides a mock function with given fields: ctx, author, since
func (_m *MockArticleRepository) AuthorStats(ctx context.Context, author domain.PrincipalRef, since time.Time) (*domain.AuthorStats, error) {
	ret := _m.Called(ctx, author, since)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, time.Time) (*domain.AuthorStats, error)); ok {
		return rf(ctx, author, since)
	}
	return returnValue[*domain.AuthorStats](ret, 0), ret.Error(1)
}

// AuthorStats is a helper method to define mock.On call
func (_e *MockArticleRepository_Expecter) AuthorStats(ctx interface{}, author interface{}, since interface{}) *mock.Call {
	return _e.mock.On("AuthorStats", ctx, author, since)
}

// NewMockArticleRepository creates a new instance of MockArticleRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockArticleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArticleRepository {
	m := &MockArticleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
