package bootstrap

import (
	"context"
	"fmt"

	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
)

// Options configures a setup plan.
type Options struct {
	// Python is the base interpreter used to create the environment
	Python string
	// EnvDir is the virtual environment directory
	EnvDir string
	// Requirements is the dependency manifest path
	Requirements string
	// ManagePath is the manage.py entry point
	ManagePath string
	// Recreate removes an existing environment before creating it
	Recreate bool
}

// CheckManifest verifies the dependency manifest exists. This is the
// sequence's only local precondition: when it fails, nothing else runs and
// no side effect has happened.
func CheckManifest(fsys filesystem.FileSystem, path string) error {
	if !fsys.Exists(path) {
		return &MissingManifestError{Path: path}
	}
	return nil
}

// NewSetupPlan builds the bootstrap sequence: create the virtual
// environment, upgrade pip inside it, install the manifest's packages,
// apply database migrations, collect static assets. Every step after
// environment creation addresses the environment's own interpreter by path.
func NewSetupPlan(fsys filesystem.FileSystem, tool python.Toolchain, opts Options) *Plan {
	envPython := python.EnvPython(opts.EnvDir)

	return NewPlan(
		Step{
			Name:  "create-env",
			Title: fmt.Sprintf("Creating virtual environment in %s", opts.EnvDir),
			Run: func(ctx context.Context) error {
				if opts.Recreate && fsys.Exists(opts.EnvDir) {
					if err := fsys.RemoveAll(opts.EnvDir); err != nil {
						return fmt.Errorf("failed to remove existing environment: %w", err)
					}
				}
				return tool.CreateEnv(ctx, opts.Python, opts.EnvDir)
			},
		},
		Step{
			Name:  "upgrade-pip",
			Title: "Upgrading pip",
			Run: func(ctx context.Context) error {
				return tool.UpgradePip(ctx, envPython)
			},
		},
		Step{
			Name:  "install-deps",
			Title: fmt.Sprintf("Installing dependencies from %s", opts.Requirements),
			Run: func(ctx context.Context) error {
				return tool.InstallRequirements(ctx, envPython, opts.Requirements)
			},
		},
		Step{
			Name:  "migrate",
			Title: "Applying database migrations",
			Run: func(ctx context.Context) error {
				return tool.Manage(ctx, envPython, opts.ManagePath, "migrate")
			},
		},
		Step{
			Name:  "collectstatic",
			Title: "Collecting static files",
			Run: func(ctx context.Context) error {
				return tool.Manage(ctx, envPython, opts.ManagePath, "collectstatic", "--noinput")
			},
		},
	)
}
