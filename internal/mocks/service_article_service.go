package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/service"
)

// MockArticleServiceInterface is a mock type for the ArticleServiceInterface type
type MockArticleServiceInterface struct {
	mock.Mock
}

type MockArticleServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArticleServiceInterface) EXPECT() *MockArticleServiceInterface_Expecter {
	return &MockArticleServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockArticleServiceInterface) Create(ctx context.Context, author *domain.Principal, in *domain.ArticleInput) (*domain.Article, error) {
	ret := _m.Called(ctx, author, in)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, *domain.ArticleInput) (*domain.Article, error)); ok {
		return rf(ctx, author, in)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// Create is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Create(ctx interface{}, author interface{}, in interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, author, in)
}

func (_m *MockArticleServiceInterface) Latest(ctx context.Context) ([]domain.Article, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Article, error)); ok {
		return rf(ctx)
	}
	return returnValue[[]domain.Article](ret, 0), ret.Error(1)
}

// Latest is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Latest(ctx interface{}) *mock.Call {
	return _e.mock.On("Latest", ctx)
}

func (_m *MockArticleServiceInterface) ByCategory(ctx context.Context, category string, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, category, page)

	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, category, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// ByCategory is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) ByCategory(ctx interface{}, category interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ByCategory", ctx, category, page)
}

func (_m *MockArticleServiceInterface) ByUsername(ctx context.Context, username string, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, username, page)

	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, username, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// ByUsername is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) ByUsername(ctx interface{}, username interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ByUsername", ctx, username, page)
}

func (_m *MockArticleServiceInterface) Search(ctx context.Context, query string, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, query, page)

	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, query, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// Search is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Search(ctx interface{}, query interface{}, page interface{}) *mock.Call {
	return _e.mock.On("Search", ctx, query, page)
}

func (_m *MockArticleServiceInterface) SubscribedFeed(ctx context.Context, current *domain.Principal, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, current, page)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, current, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// SubscribedFeed is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) SubscribedFeed(ctx interface{}, current interface{}, page interface{}) *mock.Call {
	return _e.mock.On("SubscribedFeed", ctx, current, page)
}

func (_m *MockArticleServiceInterface) Saved(ctx context.Context, current *domain.Principal, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, current, page)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, current, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// Saved is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Saved(ctx interface{}, current interface{}, page interface{}) *mock.Call {
	return _e.mock.On("Saved", ctx, current, page)
}

func (_m *MockArticleServiceInterface) MyOngoing(ctx context.Context, current *domain.Principal) ([]domain.Article, error) {
	ret := _m.Called(ctx, current)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) ([]domain.Article, error)); ok {
		return rf(ctx, current)
	}
	return returnValue[[]domain.Article](ret, 0), ret.Error(1)
}

// MyOngoing is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) MyOngoing(ctx interface{}, current interface{}) *mock.Call {
	return _e.mock.On("MyOngoing", ctx, current)
}

func (_m *MockArticleServiceInterface) ListForModeration(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*service.ArticlePage, error) {
	ret := _m.Called(ctx, admin, status, page)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, domain.Page) (*service.ArticlePage, error)); ok {
		return rf(ctx, admin, status, page)
	}
	return returnValue[*service.ArticlePage](ret, 0), ret.Error(1)
}

// ListForModeration is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) ListForModeration(ctx interface{}, admin interface{}, status interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ListForModeration", ctx, admin, status, page)
}

func (_m *MockArticleServiceInterface) View(ctx context.Context, id string, viewer *domain.Principal) (*domain.Article, error) {
	ret := _m.Called(ctx, id, viewer)

	if rf, ok := ret.Get(0).(func(context.Context, string, *domain.Principal) (*domain.Article, error)); ok {
		return rf(ctx, id, viewer)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// View is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) View(ctx interface{}, id interface{}, viewer interface{}) *mock.Call {
	return _e.mock.On("View", ctx, id, viewer)
}

func (_m *MockArticleServiceInterface) RatingBreakdown(ctx context.Context, id string) (*service.RatingBreakdown, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.RatingBreakdown, error)); ok {
		return rf(ctx, id)
	}
	return returnValue[*service.RatingBreakdown](ret, 0), ret.Error(1)
}

// RatingBreakdown is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) RatingBreakdown(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("RatingBreakdown", ctx, id)
}

func (_m *MockArticleServiceInterface) SoftDelete(ctx context.Context, actor *domain.Principal, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, actor, id)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.Article, error)); ok {
		return rf(ctx, actor, id)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// SoftDelete is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) SoftDelete(ctx interface{}, actor interface{}, id interface{}) *mock.Call {
	return _e.mock.On("SoftDelete", ctx, actor, id)
}

func (_m *MockArticleServiceInterface) BulkSoftDelete(ctx context.Context, admin *domain.Principal, ids []string) (int64, error) {
	ret := _m.Called(ctx, admin, ids)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, []string) (int64, error)); ok {
		return rf(ctx, admin, ids)
	}
	return returnValue[int64](ret, 0), ret.Error(1)
}

// BulkSoftDelete is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) BulkSoftDelete(ctx interface{}, admin interface{}, ids interface{}) *mock.Call {
	return _e.mock.On("BulkSoftDelete", ctx, admin, ids)
}

func (_m *MockArticleServiceInterface) Approve(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, admin, id)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.Article, error)); ok {
		return rf(ctx, admin, id)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// Approve is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Approve(ctx interface{}, admin interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Approve", ctx, admin, id)
}

func (_m *MockArticleServiceInterface) Reject(ctx context.Context, admin *domain.Principal, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, admin, id)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.Article, error)); ok {
		return rf(ctx, admin, id)
	}
	return returnValue[*domain.Article](ret, 0), ret.Error(1)
}

// Reject is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) Reject(ctx interface{}, admin interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Reject", ctx, admin, id)
}

func (_m *MockArticleServiceInterface) ToggleSave(ctx context.Context, current *domain.Principal, id string) (bool, error) {
	ret := _m.Called(ctx, current, id)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (bool, error)); ok {
		return rf(ctx, current, id)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// ToggleSave is a helper method to define mock.On call
func (_e *MockArticleServiceInterface_Expecter) ToggleSave(ctx interface{}, current interface{}, id interface{}) *mock.Call {
	return _e.mock.On("ToggleSave", ctx, current, id)
}

// NewMockArticleServiceInterface creates a new instance of MockArticleServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockArticleServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArticleServiceInterface {
	m := &MockArticleServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
