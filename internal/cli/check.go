package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jammission/jamsetup/internal/config"
	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/manifest"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/jammission/jamsetup/internal/tui"
	"github.com/spf13/cobra"
)

// databaseFile is the development database the migrations create, per the
// site's default settings.
const databaseFile = "db.sqlite3"

// CheckCommand handles the check command
type CheckCommand struct {
	fs   filesystem.FileSystem
	tool python.Toolchain
	out  io.Writer

	pythonBin string
	venvDir   string
}

// NewCheckCommand creates a new check command
func NewCheckCommand(fs filesystem.FileSystem, tool python.Toolchain) *cobra.Command {
	cmd := &CheckCommand{
		fs:   fs,
		tool: tool,
	}

	cobraCmd := &cobra.Command{
		Use:   "check",
		Short: "Diagnose the checkout without changing anything",
		Long: `Verifies everything a setup run needs: the project root, the
dependency manifest, the base interpreter and manage.py. Also reports the
virtual environment and database state. Performs no writes.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.pythonBin, "python", "", "Base interpreter to check for (default python3)")
	cobraCmd.Flags().StringVar(&cmd.venvDir, "venv", "", "Virtual environment directory (default venv)")

	return cobraCmd
}

// Run executes the check command
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	failures := 0
	ok := func(format string, a ...interface{}) {
		fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render("✓"), fmt.Sprintf(format, a...))
	}
	fail := func(format string, a ...interface{}) {
		failures++
		fmt.Fprintf(out, "%s %s\n", tui.ErrorStyle.Render("✗"), fmt.Sprintf(format, a...))
	}
	warn := func(format string, a ...interface{}) {
		fmt.Fprintf(out, "%s %s\n", tui.WarningStyle.Render("!"), fmt.Sprintf(format, a...))
	}
	note := func(format string, a ...interface{}) {
		fmt.Fprintf(out, "%s\n", tui.SubtleStyle.Render("  "+fmt.Sprintf(format, a...)))
	}

	proj, cfg, err := resolveProject(c.fs)
	if err != nil {
		fail("%v", err)
	} else {
		ok("project root: %s", proj.Root)

		m, err := manifest.Load(c.fs, proj.ManifestPath)
		if err != nil {
			fail("dependency manifest: %v", err)
		} else {
			ok("dependency manifest: %d requirement(s)", len(m.Requirements))
			if dups := m.Duplicates(); len(dups) > 0 {
				warn("duplicate requirement(s): %s", strings.Join(dups, ", "))
			}
		}

		if proj.HasManage(c.fs) {
			ok("manage.py: %s", proj.ManagePath)
		} else {
			fail("manage.py not found at %s", proj.ManagePath)
		}

		envDir := filepath.Join(proj.Root, firstNonEmpty(c.venvDir, cfg.VenvDir))
		if c.fs.Exists(python.EnvPython(envDir)) {
			note("virtual environment present at %s", envDir)
		} else {
			note("virtual environment not created yet (run 'jamsetup setup')")
		}

		if c.fs.Exists(filepath.Join(proj.Root, databaseFile)) {
			note("database present (%s)", databaseFile)
		} else {
			note("database not created yet (migrations will create it)")
		}
	}

	pythonBin := firstNonEmpty(c.pythonBin, cfg.Python, config.Default().Python)
	if version, err := c.tool.Version(ctx, pythonBin); err != nil {
		fail("interpreter %s: %v", pythonBin, err)
	} else {
		ok("interpreter: %s (%s)", version, pythonBin)
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	return nil
}
