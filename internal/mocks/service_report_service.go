package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/service"
)

// MockReportServiceInterface is a mock type for the ReportServiceInterface type
type MockReportServiceInterface struct {
	mock.Mock
}

type MockReportServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportServiceInterface) EXPECT() *MockReportServiceInterface_Expecter {
	return &MockReportServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockReportServiceInterface) Submit(ctx context.Context, reporter *domain.Principal, articleID string, in *domain.ReportInput) (*domain.Report, error) {
	ret := _m.Called(ctx, reporter, articleID, in)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, *domain.ReportInput) (*domain.Report, error)); ok {
		return rf(ctx, reporter, articleID, in)
	}
	return returnValue[*domain.Report](ret, 0), ret.Error(1)
}

// Submit is a helper method to define mock.On call
func (_e *MockReportServiceInterface_Expecter) Submit(ctx interface{}, reporter interface{}, articleID interface{}, in interface{}) *mock.Call {
	return _e.mock.On("Submit", ctx, reporter, articleID, in)
}

func (_m *MockReportServiceInterface) UpdateStatus(ctx context.Context, admin *domain.Principal, reportID string, in *domain.ReportReview) (*domain.Report, error) {
	ret := _m.Called(ctx, admin, reportID, in)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, *domain.ReportReview) (*domain.Report, error)); ok {
		return rf(ctx, admin, reportID, in)
	}
	return returnValue[*domain.Report](ret, 0), ret.Error(1)
}

// UpdateStatus is a helper method to define mock.On call
func (_e *MockReportServiceInterface_Expecter) UpdateStatus(ctx interface{}, admin interface{}, reportID interface{}, in interface{}) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, admin, reportID, in)
}

func (_m *MockReportServiceInterface) List(ctx context.Context, admin *domain.Principal, status string, page domain.Page) (*service.ReportPage, error) {
	ret := _m.Called(ctx, admin, status, page)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, domain.Page) (*service.ReportPage, error)); ok {
		return rf(ctx, admin, status, page)
	}
	return returnValue[*service.ReportPage](ret, 0), ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockReportServiceInterface_Expecter) List(ctx interface{}, admin interface{}, status interface{}, page interface{}) *mock.Call {
	return _e.mock.On("List", ctx, admin, status, page)
}

func (_m *MockReportServiceInterface) ListByArticle(ctx context.Context, admin *domain.Principal, articleID string) ([]domain.Report, error) {
	ret := _m.Called(ctx, admin, articleID)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) ([]domain.Report, error)); ok {
		return rf(ctx, admin, articleID)
	}
	return returnValue[[]domain.Report](ret, 0), ret.Error(1)
}

// ListByArticle is a helper method to define mock.On call
func (_e *MockReportServiceInterface_Expecter) ListByArticle(ctx interface{}, admin interface{}, articleID interface{}) *mock.Call {
	return _e.mock.On("ListByArticle", ctx, admin, articleID)
}

func (_m *MockReportServiceInterface) Counts(ctx context.Context, admin *domain.Principal) (*domain.ReportCounts, error) {
	ret := _m.Called(ctx, admin)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) (*domain.ReportCounts, error)); ok {
		return rf(ctx, admin)
	}
	return returnValue[*domain.ReportCounts](ret, 0), ret.Error(1)
}

// Counts is a helper method to define mock.On call
func (_e *MockReportServiceInterface_Expecter) Counts(ctx interface{}, admin interface{}) *mock.Call {
	return _e.mock.On("Counts", ctx, admin)
}

// NewMockReportServiceInterface creates a new instance of MockReportServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockReportServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportServiceInterface {
	m := &MockReportServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
