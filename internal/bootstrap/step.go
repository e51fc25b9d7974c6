package bootstrap

import (
	"context"
)

// Step is one stage of the bootstrap sequence. Steps are independent: each
// either fully succeeds or fails the whole run, and nothing a finished step
// did is ever rolled back.
type Step struct {
	// Name is a stable identifier, e.g. "create-env"
	Name string
	// Title is the human-readable progress line shown before the step runs
	Title string
	// Run performs the step
	Run func(ctx context.Context) error
}

// Reporter observes plan execution. Implementations render progress;
// the plan itself never writes output.
type Reporter interface {
	StepStarted(step Step)
	StepSucceeded(step Step)
	StepFailed(step Step, err error)
}
