package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jammission/jamsetup/internal/bootstrap"
	"github.com/jammission/jamsetup/internal/config"
	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/jammission/jamsetup/internal/tui"
	"github.com/spf13/cobra"
)

// SetupCommand handles the setup command
type SetupCommand struct {
	fs   filesystem.FileSystem
	tool python.Toolchain
	out  io.Writer

	pythonBin    string
	venvDir      string
	requirements string
	managePath   string
	recreate     bool
	noInput      bool
}

// NewSetupCommand creates a new setup command
func NewSetupCommand(fs filesystem.FileSystem, tool python.Toolchain) *cobra.Command {
	cmd := &SetupCommand{
		fs:   fs,
		tool: tool,
	}

	cobraCmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the site: virtual environment, dependencies, migrations, static files",
		Long: `Prepares a runnable instance of the site from the current checkout,
in strict order and stopping at the first failing step:

  1. verify the dependency manifest exists
  2. create the virtual environment
  3. upgrade pip inside it
  4. install the manifest's packages
  5. apply database migrations
  6. collect static files

Nothing a finished step did is rolled back; after fixing the cause of a
failure, re-run setup from the top. Must be run from the project root.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.pythonBin, "python", "", "Base interpreter used to create the virtual environment (default python3)")
	cobraCmd.Flags().StringVar(&cmd.venvDir, "venv", "", "Virtual environment directory (default venv)")
	cobraCmd.Flags().StringVar(&cmd.requirements, "requirements", "", "Dependency manifest path (default requirements.txt)")
	cobraCmd.Flags().StringVar(&cmd.managePath, "manage", "", "manage.py path (default manage.py)")
	cobraCmd.Flags().BoolVar(&cmd.recreate, "recreate", false, "Remove an existing virtual environment before creating it")
	cobraCmd.Flags().BoolVar(&cmd.noInput, "no-input", false, "Never prompt; reuse an existing virtual environment as-is")

	return cobraCmd
}

// Run executes the setup command
func (c *SetupCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := c.stdout()

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(c.fs, cwd)
	if err != nil {
		return err
	}

	opts := bootstrap.Options{
		Python:       firstNonEmpty(c.pythonBin, cfg.Python),
		EnvDir:       firstNonEmpty(c.venvDir, cfg.VenvDir),
		Requirements: firstNonEmpty(c.requirements, cfg.Requirements),
		ManagePath:   firstNonEmpty(c.managePath, cfg.ManagePath),
		Recreate:     c.recreate,
	}

	// The manifest is the sequence's only local precondition: when it is
	// missing, nothing runs and nothing is created.
	if err := bootstrap.CheckManifest(c.fs, opts.Requirements); err != nil {
		return err
	}

	if c.fs.Exists(opts.EnvDir) && !opts.Recreate && !c.noInput && interactive() {
		recreate, err := tui.ConfirmRecreate(opts.EnvDir)
		if err != nil {
			return fmt.Errorf("setup cancelled: %w", err)
		}
		opts.Recreate = recreate
	}

	plan := bootstrap.NewSetupPlan(c.fs, c.tool, opts)
	if err := plan.Execute(ctx, newConsoleReporter(out, interactive())); err != nil {
		return err
	}

	c.printCompletionNotice(out, opts)
	return nil
}

func (c *SetupCommand) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// printCompletionNotice tells the operator exactly how to start the site
func (c *SetupCommand) printCompletionNotice(out io.Writer, opts bootstrap.Options) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.SuccessStyle.Render("Setup complete."))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Start the development server with:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", tui.CommandStyle.Render("source "+python.ActivateScript(opts.EnvDir)))
	fmt.Fprintf(out, "  %s\n", tui.CommandStyle.Render("python "+opts.ManagePath+" runserver"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "or simply: %s\n", tui.CommandStyle.Render("jamsetup serve"))
}
