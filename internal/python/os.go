package python

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// OSToolchain implements Toolchain by running the real interpreter via
// os/exec. Tool output streams to the configured writers as the tool runs;
// stderr is additionally captured so failures carry the tool's diagnostics.
type OSToolchain struct {
	stdout io.Writer
	stderr io.Writer
}

// NewOSToolchain creates a new OSToolchain writing tool output to the
// process's stdout and stderr
func NewOSToolchain() *OSToolchain {
	return &OSToolchain{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewOSToolchainWithOutput creates an OSToolchain writing tool output to
// the given writers
func NewOSToolchainWithOutput(stdout, stderr io.Writer) *OSToolchain {
	return &OSToolchain{
		stdout: stdout,
		stderr: stderr,
	}
}

// run executes a command, streaming its output and converting a non-zero
// exit into a ToolError carrying the status and captured stderr.
func (t *OSToolchain) run(ctx context.Context, tool, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = t.stdout
	cmd.Stderr = io.MultiWriter(t.stderr, &stderr)
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolError{
				Tool:   tool,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return fmt.Errorf("failed to run %s: %w", tool, err)
	}

	return nil
}

// Version reports the interpreter version ("Python 3.12.4")
func (t *OSToolchain) Version(ctx context.Context, python string) (string, error) {
	cmd := exec.CommandContext(ctx, python, "--version")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run %s: %w", python, err)
	}

	return strings.TrimSpace(out.String()), nil
}

// CreateEnv creates a virtual environment via `python -m venv`
func (t *OSToolchain) CreateEnv(ctx context.Context, python, dir string) error {
	return t.run(ctx, "venv", python, "-m", "venv", dir)
}

// UpgradePip upgrades pip inside the environment
func (t *OSToolchain) UpgradePip(ctx context.Context, envPython string) error {
	return t.run(ctx, "pip", envPython, "-m", "pip", "install", "--upgrade", "pip")
}

// InstallRequirements installs the manifest's packages into the environment
func (t *OSToolchain) InstallRequirements(ctx context.Context, envPython, manifestPath string) error {
	return t.run(ctx, "pip", envPython, "-m", "pip", "install", "-r", manifestPath)
}

// Manage invokes manage.py through the environment's interpreter
func (t *OSToolchain) Manage(ctx context.Context, envPython, managePath string, args ...string) error {
	tool := "manage.py"
	if len(args) > 0 {
		tool = fmt.Sprintf("manage.py %s", args[0])
	}

	runArgs := append([]string{managePath}, args...)
	return t.run(ctx, tool, envPython, runArgs...)
}
