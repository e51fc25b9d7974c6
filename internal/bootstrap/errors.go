package bootstrap

import (
	"errors"
	"fmt"

	"github.com/jammission/jamsetup/internal/python"
)

// MissingManifestError is the one locally detected precondition failure:
// the dependency manifest is not in the working directory.
type MissingManifestError struct {
	Path string
}

func (e *MissingManifestError) Error() string {
	return fmt.Sprintf("%s not found. Please run this script from the root of the project.", e.Path)
}

// StepError wraps the first failing step of a plan. The sequence stops
// there; no later step runs.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status the failing step's tool reported, or 1
// when the failure happened before any tool ran.
func (e *StepError) ExitCode() int {
	return python.ExitCode(e.Err)
}

// ExitCodeFor maps any error surfaced by the tool to a process exit status.
// A failed step forwards its tool's own status; the missing-manifest
// precondition and everything else exit 1.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode()
	}

	return python.ExitCode(err)
}
