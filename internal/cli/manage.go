package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/spf13/cobra"
)

// ManageCommand handles the manage command
type ManageCommand struct {
	fs   filesystem.FileSystem
	tool python.Toolchain

	venvDir string
}

// NewManageCommand creates a new manage command
func NewManageCommand(fs filesystem.FileSystem, tool python.Toolchain) *cobra.Command {
	cmd := &ManageCommand{
		fs:   fs,
		tool: tool,
	}

	cobraCmd := &cobra.Command{
		Use:   "manage [flags] -- <args...>",
		Short: "Run manage.py through the virtual environment",
		Long: `Passes the given arguments straight to the project's manage.py using
the virtual environment's interpreter, streaming its output and exiting
with its exit code.`,
		Example: `  # Create an admin account for the owner dashboard
  jamsetup manage -- createsuperuser

  # Open a Django shell
  jamsetup manage -- shell`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.venvDir, "venv", "", "Virtual environment directory (default venv)")

	return cobraCmd
}

// Run executes the manage command
func (c *ManageCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no manage.py arguments given (use -- before arguments)")
	}

	ctx := commandContext(cmd)

	proj, cfg, err := resolveProject(c.fs)
	if err != nil {
		return err
	}

	envDir := filepath.Join(proj.Root, firstNonEmpty(c.venvDir, cfg.VenvDir))
	envPython := python.EnvPython(envDir)
	if !c.fs.Exists(envPython) {
		return fmt.Errorf("virtual environment not found at %s (run 'jamsetup setup' first)", envDir)
	}

	return c.tool.Manage(ctx, envPython, proj.ManagePath, args...)
}
