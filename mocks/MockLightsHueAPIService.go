package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockLightsHueAPIService is a testify mock of the hueAPIService type
type MockLightsHueAPIService struct {
	mock.Mock
}

// GetLights provides a mock function with given fields: ctx
func (_m *MockLightsHueAPIService) GetLights(ctx context.Context) ([]byte, error) {
	ret := _m.Called(ctx)

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]byte, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []byte); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetLightOn provides a mock function with given fields: ctx, id, on
func (_m *MockLightsHueAPIService) SetLightOn(ctx context.Context, id int, on bool) ([]byte, error) {
	ret := _m.Called(ctx, id, on)

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, bool) ([]byte, error)); ok {
		return rf(ctx, id, on)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, bool) []byte); ok {
		r0 = rf(ctx, id, on)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, bool) error); ok {
		r1 = rf(ctx, id, on)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockLightsHueAPIService creates a new instance of MockLightsHueAPIService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLightsHueAPIService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLightsHueAPIService {
	mock := &MockLightsHueAPIService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
