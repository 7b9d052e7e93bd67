package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
)

// MockPrincipalRepository is a mock type for the PrincipalRepository type
type MockPrincipalRepository struct {
	mock.Mock
}

type MockPrincipalRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPrincipalRepository) EXPECT() *MockPrincipalRepository_Expecter {
	return &MockPrincipalRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPrincipalRepository) CreateLocal(ctx context.Context, p *domain.LocalPrincipal) error {
	ret := _m.Called(ctx, p)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.LocalPrincipal) error); ok {
		return rf(ctx, p)
	}
	return ret.Error(0)
}

// CreateLocal is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) CreateLocal(ctx interface{}, p interface{}) *mock.Call {
	return _e.mock.On("CreateLocal", ctx, p)
}

func (_m *MockPrincipalRepository) GetLocalByLogin(ctx context.Context, login string) (*domain.LocalPrincipal, error) {
	ret := _m.Called(ctx, login)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.LocalPrincipal, error)); ok {
		return rf(ctx, login)
	}
	return returnValue[*domain.LocalPrincipal](ret, 0), ret.Error(1)
}

// GetLocalByLogin is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) GetLocalByLogin(ctx interface{}, login interface{}) *mock.Call {
	return _e.mock.On("GetLocalByLogin", ctx, login)
}

func (_m *MockPrincipalRepository) CreateExternal(ctx context.Context, p *domain.ExternalPrincipal) error {
	ret := _m.Called(ctx, p)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.ExternalPrincipal) error); ok {
		return rf(ctx, p)
	}
	return ret.Error(0)
}

// CreateExternal is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) CreateExternal(ctx interface{}, p interface{}) *mock.Call {
	return _e.mock.On("CreateExternal", ctx, p)
}

func (_m *MockPrincipalRepository) GetExternalByProviderID(ctx context.Context, providerID string) (*domain.ExternalPrincipal, error) {
	ret := _m.Called(ctx, providerID)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.ExternalPrincipal, error)); ok {
		return rf(ctx, providerID)
	}
	return returnValue[*domain.ExternalPrincipal](ret, 0), ret.Error(1)
}

// GetExternalByProviderID is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) GetExternalByProviderID(ctx interface{}, providerID interface{}) *mock.Call {
	return _e.mock.On("GetExternalByProviderID", ctx, providerID)
}

func (_m *MockPrincipalRepository) GetExternalByEmail(ctx context.Context, email string) (*domain.ExternalPrincipal, error) {
	ret := _m.Called(ctx, email)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.ExternalPrincipal, error)); ok {
		return rf(ctx, email)
	}
	return returnValue[*domain.ExternalPrincipal](ret, 0), ret.Error(1)
}

// GetExternalByEmail is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) GetExternalByEmail(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("GetExternalByEmail", ctx, email)
}

func (_m *MockPrincipalRepository) RefreshExternal(ctx context.Context, id string, profile domain.ExternalProfile) (*domain.ExternalPrincipal, error) {
	ret := _m.Called(ctx, id, profile)

	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ExternalProfile) (*domain.ExternalPrincipal, error)); ok {
		return rf(ctx, id, profile)
	}
	return returnValue[*domain.ExternalPrincipal](ret, 0), ret.Error(1)
}

// RefreshExternal is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) RefreshExternal(ctx interface{}, id interface{}, profile interface{}) *mock.Call {
	return _e.mock.On("RefreshExternal", ctx, id, profile)
}

func (_m *MockPrincipalRepository) Get(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	ret := _m.Called(ctx, ref)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef) (*domain.Principal, error)); ok {
		return rf(ctx, ref)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// Get is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) Get(ctx interface{}, ref interface{}) *mock.Call {
	return _e.mock.On("Get", ctx, ref)
}

func (_m *MockPrincipalRepository) GetByUsername(ctx context.Context, kind domain.PrincipalKind, username string) (*domain.Principal, error) {
	ret := _m.Called(ctx, kind, username)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalKind, string) (*domain.Principal, error)); ok {
		return rf(ctx, kind, username)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// GetByUsername is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) GetByUsername(ctx interface{}, kind interface{}, username interface{}) *mock.Call {
	return _e.mock.On("GetByUsername", ctx, kind, username)
}

func (_m *MockPrincipalRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, username)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// UsernameTaken is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) UsernameTaken(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("UsernameTaken", ctx, username)
}

func (_m *MockPrincipalRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	ret := _m.Called(ctx, email)

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, email)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// EmailTaken is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) EmailTaken(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("EmailTaken", ctx, email)
}

func (_m *MockPrincipalRepository) Search(ctx context.Context, query string, limit int) ([]domain.Principal, error) {
	ret := _m.Called(ctx, query, limit)

	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]domain.Principal, error)); ok {
		return rf(ctx, query, limit)
	}
	return returnValue[[]domain.Principal](ret, 0), ret.Error(1)
}

// Search is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) Search(ctx interface{}, query interface{}, limit interface{}) *mock.Call {
	return _e.mock.On("Search", ctx, query, limit)
}

func (_m *MockPrincipalRepository) Update(ctx context.Context, ref domain.PrincipalRef, fn func(*domain.Principal) error) (*domain.Principal, error) {
	ret := _m.Called(ctx, ref, fn)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, func(*domain.Principal) error) (*domain.Principal, error)); ok {
		return rf(ctx, ref, fn)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// Update is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) Update(ctx interface{}, ref interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, ref, fn)
}

func (_m *MockPrincipalRepository) SetBadge(ctx context.Context, ref domain.PrincipalRef, badge domain.Badge) error {
	ret := _m.Called(ctx, ref, badge)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, domain.Badge) error); ok {
		return rf(ctx, ref, badge)
	}
	return ret.Error(0)
}

// SetBadge is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) SetBadge(ctx interface{}, ref interface{}, badge interface{}) *mock.Call {
	return _e.mock.On("SetBadge", ctx, ref, badge)
}

func (_m *MockPrincipalRepository) DeleteLocal(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, id)
	}
	return returnValue[bool](ret, 0), ret.Error(1)
}

// DeleteLocal is a helper method to define mock.On call
func (_e *MockPrincipalRepository_Expecter) DeleteLocal(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeleteLocal", ctx, id)
}

// NewMockPrincipalRepository creates a new instance of MockPrincipalRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPrincipalRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPrincipalRepository {
	m := &MockPrincipalRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
