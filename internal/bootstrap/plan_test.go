package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) StepStarted(step Step) {
	r.events = append(r.events, "start:"+step.Name)
}

func (r *recordingReporter) StepSucceeded(step Step) {
	r.events = append(r.events, "ok:"+step.Name)
}

func (r *recordingReporter) StepFailed(step Step, err error) {
	r.events = append(r.events, "fail:"+step.Name)
}

func step(name string, ran *[]string, err error) Step {
	return Step{
		Name:  name,
		Title: name,
		Run: func(ctx context.Context) error {
			*ran = append(*ran, name)
			return err
		},
	}
}

func TestPlan_ExecutesStepsInOrder(t *testing.T) {
	var ran []string
	plan := NewPlan(
		step("one", &ran, nil),
		step("two", &ran, nil),
		step("three", &ran, nil),
	)

	reporter := &recordingReporter{}
	require.NoError(t, plan.Execute(context.Background(), reporter))
	require.Equal(t, []string{"one", "two", "three"}, ran)
	require.Equal(t, []string{
		"start:one", "ok:one",
		"start:two", "ok:two",
		"start:three", "ok:three",
	}, reporter.events)
}

func TestPlan_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")

	var ran []string
	plan := NewPlan(
		step("one", &ran, nil),
		step("two", &ran, boom),
		step("three", &ran, nil),
	)

	reporter := &recordingReporter{}
	err := plan.Execute(context.Background(), reporter)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "two", stepErr.Step)
	require.ErrorIs(t, err, boom)

	require.Equal(t, []string{"one", "two"}, ran)
	require.Equal(t, []string{
		"start:one", "ok:one",
		"start:two", "fail:two",
	}, reporter.events)
}

func TestPlan_NilReporter(t *testing.T) {
	var ran []string
	plan := NewPlan(step("only", &ran, nil))

	require.NoError(t, plan.Execute(context.Background(), nil))
	require.Equal(t, []string{"only"}, ran)
}

func TestStepError_Message(t *testing.T) {
	err := &StepError{Step: "migrate", Err: fmt.Errorf("manage.py migrate exited with status 3")}
	require.Contains(t, err.Error(), "migrate failed")
}
