package provisioning

import (
	"context"
	"fmt"
	"time"
)

// StepError reports the first failing step of a pipeline run.
type StepError struct {
	Pipeline string
	Step     string
	Index    int // 1-based position of the failing step
	Err      error
	// Rollback holds the rollback outcome; nil when rollback was not
	// attempted or every revert succeeded.
	Rollback error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s pipeline: %s step (%d) failed: %v", e.Pipeline, e.Step, e.Index, e.Err)
	if e.Rollback != nil {
		msg += fmt.Sprintf("; rollback incomplete: %v", e.Rollback)
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline is an ordered list of steps sharing one State.
type Pipeline struct {
	Name  string
	Steps []Step
	// Rollback enables best-effort teardown of completed steps on failure.
	Rollback bool
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(name string, rollback bool, steps ...Step) *Pipeline {
	return &Pipeline{Name: name, Steps: steps, Rollback: rollback}
}

// StepNames returns the names of all steps in order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name()
	}
	return names
}

// Run executes all steps sequentially. The first failing step stops the
// run; later steps are never invoked. When Rollback is set, the steps that
// completed before the failure are reverted in reverse order.
func (p *Pipeline) Run(ctx *Context) error {
	start := time.Now()
	obs := ctx.Observer.WithFields(map[string]string{"pipeline": p.Name})
	obs.Event(Event{
		Type:     EventPipelineStarted,
		Pipeline: p.Name,
		Message:  fmt.Sprintf("starting %d steps", len(p.Steps)),
	})

	for i, step := range p.Steps {
		stepStart := time.Now()
		obs.Event(Event{
			Type:     EventStepStarted,
			Pipeline: p.Name,
			Step:     step.Name(),
			Message:  fmt.Sprintf("starting (%d/%d)", i+1, len(p.Steps)),
		})

		err := ctx.Err()
		if err == nil {
			err = p.runStep(ctx, obs, step)
		}
		ctx.Metrics.ObserveStep(p.Name, step.Name(), err, time.Since(stepStart))

		if err != nil {
			obs.Event(Event{
				Type:     EventStepFailed,
				Pipeline: p.Name,
				Step:     step.Name(),
				Message:  fmt.Sprintf("failed: %v", err),
			})

			stepErr := &StepError{Pipeline: p.Name, Step: step.Name(), Index: i + 1, Err: err}
			if p.Rollback {
				stepErr.Rollback = Rollback(ctx, p.Name, p.Steps[:i])
			}

			obs.Event(Event{
				Type:     EventPipelineFailed,
				Pipeline: p.Name,
				Message:  fmt.Sprintf("failed after %v", time.Since(start).Round(time.Millisecond)),
			})
			return stepErr
		}

		obs.Event(Event{
			Type:     EventStepCompleted,
			Pipeline: p.Name,
			Step:     step.Name(),
			Message:  fmt.Sprintf("completed in %v", time.Since(stepStart).Round(time.Millisecond)),
		})
	}

	obs.Event(Event{
		Type:     EventPipelineCompleted,
		Pipeline: p.Name,
		Message:  fmt.Sprintf("completed in %v", time.Since(start).Round(time.Millisecond)),
	})
	return nil
}

// runStep bounds a step by the configured step timeout.
func (p *Pipeline) runStep(ctx *Context, obs Observer, step Step) error {
	stepCtx := ctx.WithContext(ctx.Context)
	stepCtx.Observer = obs.WithFields(map[string]string{"step": step.Name()})

	if ctx.Timeouts != nil && ctx.Timeouts.Step > 0 {
		c, cancel := context.WithTimeout(ctx.Context, ctx.Timeouts.Step)
		defer cancel()
		stepCtx.Context = c
	}
	return step.Provision(stepCtx)
}

// Destroy reverts every step of the pipeline in reverse order, regardless
// of what this process created. Reverts must work from configuration alone.
// Resources that are already gone are skipped, so destroy can be repeated.
func (p *Pipeline) Destroy(ctx *Context) error {
	return rollback(ctx, p.Name, p.Steps, true)
}
