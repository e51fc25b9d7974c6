package cli

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jammission/jamsetup/internal/bootstrap"
	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/stretchr/testify/require"
)

func projectFileSystem() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.SetWorkingDir("/checkout")
	fs.AddFile("/checkout/requirements.txt", []byte("Django>=4.2,<5.0\npillow\n"))
	fs.AddFile("/checkout/manage.py", []byte("#!/usr/bin/env python\n"))
	return fs
}

func TestSetup_MissingManifest(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetWorkingDir("/empty")
	fs.AddDir("/empty")

	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf}

	err := cmd.Run(nil, nil)
	require.Error(t, err)

	var missing *bootstrap.MissingManifestError
	require.ErrorAs(t, err, &missing)
	require.Contains(t, err.Error(), "Please run this script from the root of the project.")
	require.Equal(t, 1, bootstrap.ExitCodeFor(err))

	// Zero side effects: no tool ran, nothing was removed, nothing printed
	require.Empty(t, tool.Ops())
	require.Empty(t, fs.Removed)
	require.Empty(t, buf.String())
	require.False(t, fs.Exists("/empty/venv"))
}

func TestSetup_HappyPath(t *testing.T) {
	fs := projectFileSystem()
	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf}

	require.NoError(t, cmd.Run(nil, nil))

	// Every external operation exactly once, in the fixed order
	require.Equal(t, []string{
		python.OpCreate,
		python.OpPip,
		python.OpInstall,
		python.OpManage,
		python.OpManage,
	}, tool.Ops())

	output := buf.String()
	require.Contains(t, output, "Creating virtual environment in venv")
	require.Contains(t, output, "Upgrading pip")
	require.Contains(t, output, "Installing dependencies from requirements.txt")
	require.Contains(t, output, "Applying database migrations")
	require.Contains(t, output, "Collecting static files")
	require.Contains(t, output, "Setup complete.")
	require.Contains(t, output, "runserver")

	snaps.MatchSnapshot(t, output)
}

func TestSetup_MigrateFailureSkipsCollectstatic(t *testing.T) {
	fs := projectFileSystem()
	tool := python.NewMockToolchain()
	tool.FailManage("migrate", &python.ToolError{Tool: "manage.py migrate", Code: 3, Stderr: "connection refused"})

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf}

	err := cmd.Run(nil, nil)
	require.Error(t, err)
	require.Equal(t, 3, bootstrap.ExitCodeFor(err))

	ops := tool.Ops()
	require.Equal(t, python.OpManage, ops[len(ops)-1])
	require.Len(t, ops, 4, "collectstatic must not run after migrate fails")
	require.NotContains(t, buf.String(), "Setup complete.")
}

func TestSetup_RecreateFlag(t *testing.T) {
	fs := projectFileSystem()
	fs.AddDir("/checkout/venv")

	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf, recreate: true}

	require.NoError(t, cmd.Run(nil, nil))
	require.Equal(t, []string{"venv"}, fs.Removed)
}

func TestSetup_ExistingEnvReusedByDefault(t *testing.T) {
	fs := projectFileSystem()
	fs.AddDir("/checkout/venv")

	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf, noInput: true}

	require.NoError(t, cmd.Run(nil, nil))
	require.Empty(t, fs.Removed)
	require.Equal(t, python.OpCreate, tool.Ops()[0])
}

func TestSetup_ConfigFileOverridesDefaults(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetWorkingDir("/checkout")
	fs.AddFile("/checkout/jamsetup.yaml", []byte("python: python3.12\nvenv: .venv\nrequirements: requirements/dev.txt\n"))
	fs.AddFile("/checkout/requirements/dev.txt", []byte("Django>=4.2\n"))
	fs.AddFile("/checkout/manage.py", []byte("#!/usr/bin/env python\n"))

	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf}

	require.NoError(t, cmd.Run(nil, nil))

	calls := tool.Calls()
	require.Equal(t, []string{"python3.12", ".venv"}, calls[0].Args)
	require.Equal(t, []string{python.EnvPython(".venv"), "requirements/dev.txt"}, calls[2].Args)
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	fs := projectFileSystem()
	fs.AddFile("/checkout/jamsetup.yaml", []byte("python: python3.11\n"))

	tool := python.NewMockToolchain()

	var buf bytes.Buffer
	cmd := &SetupCommand{fs: fs, tool: tool, out: &buf, pythonBin: "python3.13"}

	require.NoError(t, cmd.Run(nil, nil))
	require.Equal(t, []string{"python3.13", "venv"}, tool.Calls()[0].Args)
}
