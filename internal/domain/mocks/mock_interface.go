// Package mocks provides testify mocks of the domain contracts.
package mocks

import (
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockInterface is a mock of domain.Interface.
type MockInterface struct {
	mock.Mock
}

// NewMockInterface creates a mock that asserts its expectations on cleanup.
func NewMockInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInterface {
	mi := &MockInterface{}
	mi.Mock.Test(t)

	t.Cleanup(func() { mi.AssertExpectations(t) })

	return mi
}

// Confirm provides a mock function.
func (mi *MockInterface) Confirm(replacement m.Replacement) m.Confirmation {
	ret := mi.Called(replacement)

	return ret.Get(0).(m.Confirmation)
}

// Rescue provides a mock function.
func (mi *MockInterface) Rescue(err error) (m.Replacement, error) {
	ret := mi.Called(err)

	return ret.Get(0).(m.Replacement), ret.Error(1)
}

// Setup provides a mock function.
func (mi *MockInterface) Setup(count int) {
	mi.Called(count)
}

// Processing provides a mock function.
func (mi *MockInterface) Processing(path m.Path) {
	mi.Called(path)
}

// ProcessingOK provides a mock function.
func (mi *MockInterface) ProcessingOK(replacement m.Replacement) {
	mi.Called(replacement)
}

// ProcessingErr provides a mock function.
func (mi *MockInterface) ProcessingErr(path m.Path, err error) {
	mi.Called(path, err)
}
