package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jammission/jamsetup/internal/bootstrap"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// consoleReporter renders step progress: an animated spinner with a result
// line on a terminal, one plain progress line per step otherwise.
type consoleReporter struct {
	out         io.Writer
	interactive bool
	spin        *spinner.Spinner
}

func newConsoleReporter(out io.Writer, interactive bool) *consoleReporter {
	return &consoleReporter{
		out:         out,
		interactive: interactive,
	}
}

func (r *consoleReporter) StepStarted(step bootstrap.Step) {
	if !r.interactive {
		fmt.Fprintf(r.out, "%s...\n", step.Title)
		return
	}

	r.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(r.out))
	r.spin.Suffix = " " + step.Title
	r.spin.Start()
}

func (r *consoleReporter) StepSucceeded(step bootstrap.Step) {
	if !r.stopSpinner() {
		return
	}
	successColor.Fprintf(r.out, "✓ %s\n", step.Title)
}

func (r *consoleReporter) StepFailed(step bootstrap.Step, err error) {
	r.stopSpinner()
	errorColor.Fprintf(r.out, "✗ %s\n", step.Title)
}

// stopSpinner halts any running spinner, reporting whether one was active
func (r *consoleReporter) stopSpinner() bool {
	if r.spin == nil {
		return false
	}
	r.spin.Stop()
	r.spin = nil
	return true
}
