package mocks

import mock "github.com/stretchr/testify/mock"

// MockAuthPrompter is a testify mock of the prompter type
type MockAuthPrompter struct {
	mock.Mock
}

// Confirm provides a mock function with given fields: label
func (_m *MockAuthPrompter) Confirm(label string) (bool, error) {
	ret := _m.Called(label)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (bool, error)); ok {
		return rf(label)
	}
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(label)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(label)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Prompt provides a mock function with given fields: label
func (_m *MockAuthPrompter) Prompt(label string) (string, error) {
	ret := _m.Called(label)

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(label)
	}
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(label)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(label)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAuthPrompter creates a new instance of MockAuthPrompter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthPrompter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthPrompter {
	mock := &MockAuthPrompter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
