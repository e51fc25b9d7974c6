package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	fs   filesystem.FileSystem
	tool python.Toolchain
	out  io.Writer

	addr    string
	venvDir string
}

// NewServeCommand creates a new serve command
func NewServeCommand(fs filesystem.FileSystem, tool python.Toolchain) *cobra.Command {
	cmd := &ServeCommand{
		fs:   fs,
		tool: tool,
	}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server through the virtual environment",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.addr, "addr", "", "Address to bind (default 127.0.0.1:8000)")
	cobraCmd.Flags().StringVar(&cmd.venvDir, "venv", "", "Virtual environment directory (default venv)")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	proj, cfg, err := resolveProject(c.fs)
	if err != nil {
		return err
	}

	envDir := filepath.Join(proj.Root, firstNonEmpty(c.venvDir, cfg.VenvDir))
	envPython := python.EnvPython(envDir)
	if !c.fs.Exists(envPython) {
		return fmt.Errorf("virtual environment not found at %s (run 'jamsetup setup' first)", envDir)
	}

	addr := firstNonEmpty(c.addr, cfg.ServeAddr)
	fmt.Fprintf(out, "Starting development server at http://%s/\n", addr)

	return c.tool.Manage(ctx, envPython, proj.ManagePath, "runserver", addr)
}
