package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jammission/jamsetup/internal/config"
	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/project"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// resolveProject locates the checkout, loading jamsetup.yaml from the
// project root once it is known. Commands other than setup may be run from
// anywhere inside the checkout.
func resolveProject(fs filesystem.FileSystem) (*project.Project, config.Config, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(fs, cwd)
	if err != nil {
		return nil, cfg, err
	}

	proj, err := project.Discover(fs, cfg.Requirements, cfg.ManagePath)
	if err != nil {
		return nil, cfg, err
	}

	if proj.Root != cwd {
		if rootCfg, err := config.Load(fs, proj.Root); err == nil {
			cfg = rootCfg
		}
	}

	return proj, cfg, nil
}

// commandContext returns the cobra command's context, tolerating the nil
// command used in tests.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil {
		if ctx := cmd.Context(); ctx != nil {
			return ctx
		}
	}
	return context.Background()
}

// interactive reports whether the tool is attached to a terminal on both
// ends, gating prompts and spinners.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// firstNonEmpty returns the first non-empty value, letting flags override
// configuration which overrides defaults.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
