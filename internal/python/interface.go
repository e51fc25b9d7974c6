package python

import (
	"context"
)

// Toolchain provides an abstraction over the external Python tooling the
// bootstrapper shells out to: the interpreter, pip inside the virtual
// environment, and the project's manage.py entry point.
//
// IMPORTANT: the virtual environment is never "activated". Activation is
// process-local state that would have to be re-established on every run, so
// callers resolve the environment's own interpreter with EnvPython and pass
// that explicit path into every subsequent invocation instead.
type Toolchain interface {
	// Version reports the interpreter's version string, verifying the
	// binary can be found and executed.
	Version(ctx context.Context, python string) (string, error)

	// CreateEnv creates a virtual environment at dir using the given
	// interpreter. Creating over an existing environment follows the venv
	// module's own semantics (it upgrades in place rather than failing).
	CreateEnv(ctx context.Context, python, dir string) error

	// UpgradePip upgrades pip inside the environment to its latest release.
	UpgradePip(ctx context.Context, envPython string) error

	// InstallRequirements installs every package listed in the manifest
	// into the environment.
	InstallRequirements(ctx context.Context, envPython, manifestPath string) error

	// Manage invokes the project's manage.py with the given arguments
	// (migrate, collectstatic, runserver, ...).
	Manage(ctx context.Context, envPython, managePath string, args ...string) error
}
