package python

import (
	"errors"
	"fmt"
)

// ToolError reports an external tool that ran and exited non-zero. The
// tool's own diagnostics go to stderr as the process runs; Stderr keeps a
// copy for error messages.
type ToolError struct {
	Tool   string
	Code   int
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Tool, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// ExitCode returns the tool's exit status
func (e *ToolError) ExitCode() int {
	return e.Code
}

// ExitCode maps an error from a Toolchain call to a process exit status:
// the failing tool's own status when it ran and failed, 1 for anything else
// (tool not found, context cancelled), 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Code
	}

	return 1
}
