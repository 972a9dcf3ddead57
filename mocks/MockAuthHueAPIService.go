package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthHueAPIService is a testify mock of the hueAPIService type
type MockAuthHueAPIService struct {
	mock.Mock
}

// CreateUser provides a mock function with given fields: ctx, username
func (_m *MockAuthHueAPIService) CreateUser(ctx context.Context, username string) ([]byte, error) {
	ret := _m.Called(ctx, username)

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]byte, error)); ok {
		return rf(ctx, username)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, username)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAuthHueAPIService creates a new instance of MockAuthHueAPIService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthHueAPIService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthHueAPIService {
	mock := &MockAuthHueAPIService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
