package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"apiprep.dev/pkg/apiprep/internal/adapter"
	"apiprep.dev/pkg/apiprep/internal/controller"
	"apiprep.dev/pkg/apiprep/internal/domain"
	domainmocks "apiprep.dev/pkg/apiprep/internal/domain/mocks"
	m "apiprep.dev/pkg/apiprep/internal/model"
)

func TestBuildCmd_PassesResolvedRoot(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root := t.TempDir()

	cmd, _ := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Build", mock.Anything, domain.BuildArgs{Root: m.Path(root)}).Return(nil)

	cmd.SetArgs(append([]string{"build", "--root", root}, testLogArgs(t)...))
	require.NoError(t, cmd.Execute())
}

func TestBuildCmd_PropagatesError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, _ := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Build", mock.Anything, mock.Anything).Return(errors.New("remove api: permission denied"))

	cmd.SetArgs(append([]string{"build", "--root", t.TempDir()}, testLogArgs(t)...))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestBuildCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newBuildCmd())

	cmd.SetArgs(append([]string{"build", "extra"}, testLogArgs(t)...))
	require.Error(t, cmd.Execute())
}

func TestBuildCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	handler := filepath.Join(root, "apps", "api", "api", "handler.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(handler), 0o755))
	require.NoError(t, os.WriteFile(handler,
		[]byte("import { x } from '../../../packages/shared/src/types';\n"), 0o644))

	cmd, out := newTestRootCmd(t, newBuildCmd())

	fs := adapter.NewLocalSourceFSAdapter()
	testUI := controller.NewSimpleUI(cmd)

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(fs, testUI, domain.NewMaterializer(fs, testUI))
	defer func() { workflow = originalWorkflow }()

	logFile := filepath.Join(t.TempDir(), "apiprep.log")
	cmd.SetArgs([]string{"build", "--root", root, "--log-file", logFile})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(root, "api", "handler.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import { x } from '../../packages/shared/src/types';\n", string(content))

	assert.Contains(t, out.String(), "Copying API functions from")
	assert.Contains(t, out.String(), "Shared source directory not found")

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Build finished")

}
