package bootstrap

import (
	"context"
)

// Plan is an ordered, fail-fast sequence of steps. Execution stops at the
// first failure and surfaces it unchanged; there is no retry and no
// compensation — the operator fixes the cause and re-runs from the top.
type Plan struct {
	steps []Step
}

// NewPlan creates a plan over the given steps
func NewPlan(steps ...Step) *Plan {
	return &Plan{steps: steps}
}

// Steps returns the plan's steps in execution order
func (p *Plan) Steps() []Step {
	return append([]Step{}, p.steps...)
}

// Execute runs the steps in order, stopping at the first failure. The
// reporter may be nil.
func (p *Plan) Execute(ctx context.Context, reporter Reporter) error {
	for _, step := range p.steps {
		if reporter != nil {
			reporter.StepStarted(step)
		}

		if err := step.Run(ctx); err != nil {
			if reporter != nil {
				reporter.StepFailed(step, err)
			}
			return &StepError{Step: step.Name, Err: err}
		}

		if reporter != nil {
			reporter.StepSucceeded(step)
		}
	}

	return nil
}
