package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/repository"
)

// MockReportRepository is a mock type for the ReportRepository type
type MockReportRepository struct {
	mock.Mock
}

type MockReportRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportRepository) EXPECT() *MockReportRepository_Expecter {
	return &MockReportRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	ret := _m.Called(ctx, report)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Report) error); ok {
		return rf(ctx, report)
	}
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) Create(ctx interface{}, report interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, report)
}

func (_m *MockReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Report, error)); ok {
		return rf(ctx, id)
	}
	return returnValue[*domain.Report](ret, 0), ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

func (_m *MockReportRepository) Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error) {
	ret := _m.Called(ctx, id, fn)

	if rf, ok := ret.Get(0).(func(context.Context, string, func(*domain.Report) error) (*domain.Report, error)); ok {
		return rf(ctx, id, fn)
	}
	return returnValue[*domain.Report](ret, 0), ret.Error(1)
}

// Update is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) Update(ctx interface{}, id interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, id, fn)
}

func (_m *MockReportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]domain.Report, int, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, repository.ReportFilter) ([]domain.Report, int, error)); ok {
		return rf(ctx, filter)
	}
	return returnValue[[]domain.Report](ret, 0), returnValue[int](ret, 1), ret.Error(2)
}

// List is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockReportRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Report, error) {
	ret := _m.Called(ctx, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.Report, error)); ok {
		return rf(ctx, articleID)
	}
	return returnValue[[]domain.Report](ret, 0), ret.Error(1)
}

// ListByArticle is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) ListByArticle(ctx interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("ListByArticle", ctx, articleID)
}

func (_m *MockReportRepository) CountRows(ctx context.Context) ([]domain.ReportCountRow, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.ReportCountRow, error)); ok {
		return rf(ctx)
	}
	return returnValue[[]domain.ReportCountRow](ret, 0), ret.Error(1)
}

// CountRows is a helper method to define mock.On call
func (_e *MockReportRepository_Expecter) CountRows(ctx interface{}) *mock.Call {
	return _e.mock.On("CountRows", ctx)
}

// NewMockReportRepository creates a new instance of MockReportRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRepository {
	m := &MockReportRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
