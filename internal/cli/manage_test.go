package cli

import (
	"testing"

	"github.com/jammission/jamsetup/internal/python"
	"github.com/stretchr/testify/require"
)

func TestManage_RequiresArguments(t *testing.T) {
	fs := projectFileSystem()
	tool := python.NewMockToolchain()

	cmd := &ManageCommand{fs: fs, tool: tool}

	err := cmd.Run(nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "use -- before arguments")
	require.Empty(t, tool.Ops())
}

func TestManage_PassesArgumentsThrough(t *testing.T) {
	fs := projectFileSystem()
	fs.AddFile("/checkout/venv/bin/python", nil)

	tool := python.NewMockToolchain()

	cmd := &ManageCommand{fs: fs, tool: tool}

	require.NoError(t, cmd.Run(nil, []string{"createsuperuser", "--email", "owner@example.com"}))

	calls := tool.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{
		"/checkout/venv/bin/python",
		"/checkout/manage.py",
		"createsuperuser",
		"--email",
		"owner@example.com",
	}, calls[0].Args)
}

func TestManage_ForwardsToolExitCode(t *testing.T) {
	fs := projectFileSystem()
	fs.AddFile("/checkout/venv/bin/python", nil)

	tool := python.NewMockToolchain()
	tool.FailManage("createsuperuser", &python.ToolError{Tool: "manage.py createsuperuser", Code: 2})

	cmd := &ManageCommand{fs: fs, tool: tool}

	err := cmd.Run(nil, []string{"createsuperuser"})
	require.Error(t, err)
	require.Equal(t, 2, python.ExitCode(err))
}
