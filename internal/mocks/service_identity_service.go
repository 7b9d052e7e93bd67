package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/service"
)

// MockIdentityServiceInterface is a mock type for the IdentityServiceInterface type
type MockIdentityServiceInterface struct {
	mock.Mock
}

type MockIdentityServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityServiceInterface) EXPECT() *MockIdentityServiceInterface_Expecter {
	return &MockIdentityServiceInterface_Expecter{mock: &_m.Mock}
}

func (_m *MockIdentityServiceInterface) RegisterLocal(ctx context.Context, in *domain.SignupInput) (*domain.Principal, error) {
	ret := _m.Called(ctx, in)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.SignupInput) (*domain.Principal, error)); ok {
		return rf(ctx, in)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// RegisterLocal is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) RegisterLocal(ctx interface{}, in interface{}) *mock.Call {
	return _e.mock.On("RegisterLocal", ctx, in)
}

func (_m *MockIdentityServiceInterface) VerifyCredentials(ctx context.Context, login string, password string) (*domain.Principal, error) {
	ret := _m.Called(ctx, login, password)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*domain.Principal, error)); ok {
		return rf(ctx, login, password)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// VerifyCredentials is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) VerifyCredentials(ctx interface{}, login interface{}, password interface{}) *mock.Call {
	return _e.mock.On("VerifyCredentials", ctx, login, password)
}

func (_m *MockIdentityServiceInterface) ProvisionExternal(ctx context.Context, profile domain.ExternalProfile) (*domain.Principal, error) {
	ret := _m.Called(ctx, profile)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ExternalProfile) (*domain.Principal, error)); ok {
		return rf(ctx, profile)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// ProvisionExternal is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) ProvisionExternal(ctx interface{}, profile interface{}) *mock.Call {
	return _e.mock.On("ProvisionExternal", ctx, profile)
}

func (_m *MockIdentityServiceInterface) Resolve(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	ret := _m.Called(ctx, ref)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef) (*domain.Principal, error)); ok {
		return rf(ctx, ref)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// Resolve is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) Resolve(ctx interface{}, ref interface{}) *mock.Call {
	return _e.mock.On("Resolve", ctx, ref)
}

func (_m *MockIdentityServiceInterface) Lookup(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	ret := _m.Called(ctx, ref)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef) (*domain.Principal, error)); ok {
		return rf(ctx, ref)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// Lookup is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) Lookup(ctx interface{}, ref interface{}) *mock.Call {
	return _e.mock.On("Lookup", ctx, ref)
}

func (_m *MockIdentityServiceInterface) GetProfile(ctx context.Context, username string) (*service.PublicProfile, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.PublicProfile, error)); ok {
		return rf(ctx, username)
	}
	return returnValue[*service.PublicProfile](ret, 0), ret.Error(1)
}

// GetProfile is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) GetProfile(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("GetProfile", ctx, username)
}

func (_m *MockIdentityServiceInterface) SearchUsers(ctx context.Context, query string) ([]service.UserSearchResult, error) {
	ret := _m.Called(ctx, query)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]service.UserSearchResult, error)); ok {
		return rf(ctx, query)
	}
	return returnValue[[]service.UserSearchResult](ret, 0), ret.Error(1)
}

// SearchUsers is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) SearchUsers(ctx interface{}, query interface{}) *mock.Call {
	return _e.mock.On("SearchUsers", ctx, query)
}

func (_m *MockIdentityServiceInterface) UpdateProfile(ctx context.Context, ref domain.PrincipalRef, update *domain.ProfileUpdate) (*domain.Principal, error) {
	ret := _m.Called(ctx, ref, update)

	if rf, ok := ret.Get(0).(func(context.Context, domain.PrincipalRef, *domain.ProfileUpdate) (*domain.Principal, error)); ok {
		return rf(ctx, ref, update)
	}
	return returnValue[*domain.Principal](ret, 0), ret.Error(1)
}

// UpdateProfile is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) UpdateProfile(ctx interface{}, ref interface{}, update interface{}) *mock.Call {
	return _e.mock.On("UpdateProfile", ctx, ref, update)
}

func (_m *MockIdentityServiceInterface) DeletePrincipal(ctx context.Context, admin *domain.Principal, id string) error {
	ret := _m.Called(ctx, admin, id)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) error); ok {
		return rf(ctx, admin, id)
	}
	return ret.Error(0)
}

// DeletePrincipal is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) DeletePrincipal(ctx interface{}, admin interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeletePrincipal", ctx, admin, id)
}

func (_m *MockIdentityServiceInterface) ComputeBadge(ctx context.Context, username string) (*service.BadgeResult, error) {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.BadgeResult, error)); ok {
		return rf(ctx, username)
	}
	return returnValue[*service.BadgeResult](ret, 0), ret.Error(1)
}

// ComputeBadge is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) ComputeBadge(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("ComputeBadge", ctx, username)
}

// Overview provides a mock function with given fields: ctx, current
func (_m *MockIdentityServiceInterface) Overview(ctx context.Context, current *domain.Principal) (*service.Overview, error) {
	ret := _m.Called(ctx, current)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) (*service.Overview, error)); ok {
		return rf(ctx, current)
	}
	return returnValue[*service.Overview](ret, 0), ret.Error(1)
}

// Overview is a helper method to define mock.On call
func (_e *MockIdentityServiceInterface_Expecter) Overview(ctx interface{}, current interface{}) *mock.Call {
	return _e.mock.On("Overview", ctx, current)
}

// NewMockIdentityServiceInterface creates a new instance of MockIdentityServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockIdentityServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityServiceInterface {
	m := &MockIdentityServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
