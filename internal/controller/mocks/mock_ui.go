// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"apiprep.dev/pkg/apiprep/internal/controller"
	m "apiprep.dev/pkg/apiprep/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI that asserts its expectations when the test ends.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// DisplayBanner provides a mock function.
func (_m *MockUI) DisplayBanner(ctx context.Context) {
	_m.Called(ctx)
}

// DisplayRemoving provides a mock function.
func (_m *MockUI) DisplayRemoving(ctx context.Context, mapping m.Mapping) {
	_m.Called(ctx, mapping)
}

// DisplayCopying provides a mock function.
func (_m *MockUI) DisplayCopying(ctx context.Context, mapping m.Mapping) {
	_m.Called(ctx, mapping)
}

// DisplaySourceMissing provides a mock function.
func (_m *MockUI) DisplaySourceMissing(ctx context.Context, source m.Path) {
	_m.Called(ctx, source)
}

// DisplaySharedCheck provides a mock function.
func (_m *MockUI) DisplaySharedCheck(ctx context.Context, mapping m.Mapping, found bool) {
	_m.Called(ctx, mapping, found)
}

// DisplayBuildReport provides a mock function.
func (_m *MockUI) DisplayBuildReport(ctx context.Context, report m.BuildReport) {
	_m.Called(ctx, report)
}

// DisplayPlan provides a mock function.
func (_m *MockUI) DisplayPlan(ctx context.Context, root m.Path, entries []m.PlanEntry, format controller.PlanFormat) error {
	ret := _m.Called(ctx, root, entries, format)
	return ret.Error(0)
}

// DisplayDiffs provides a mock function.
func (_m *MockUI) DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error {
	ret := _m.Called(ctx, diffs)
	return ret.Error(0)
}
