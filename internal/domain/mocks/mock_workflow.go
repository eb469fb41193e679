// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"apiprep.dev/pkg/apiprep/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow that asserts its expectations when the test ends.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	wf := &MockWorkflow{}
	wf.Mock.Test(t)

	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

// Build provides a mock function.
func (_m *MockWorkflow) Build(ctx context.Context, args domain.BuildArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Plan provides a mock function.
func (_m *MockWorkflow) Plan(ctx context.Context, args domain.PlanArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Diff provides a mock function.
func (_m *MockWorkflow) Diff(ctx context.Context, args domain.DiffArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
