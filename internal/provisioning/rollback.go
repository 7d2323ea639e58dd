package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/adbvnet/internal/platform/azure"
)

// RollbackError represents accumulated errors from rollback reverts.
type RollbackError struct {
	Errors []error
}

func (e *RollbackError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("rollback encountered %d errors: %v", len(e.Errors), e.Errors)
}

func (e *RollbackError) Unwrap() error {
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return errors.Join(e.Errors...)
}

func (e *RollbackError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *RollbackError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Rollback reverts completed steps in reverse order. Steps that do not
// implement Reverter are skipped. A failing revert is logged and the next
// one still runs. Returns a *RollbackError if any revert failed, else nil.
//
// Reverts run detached from ctx cancellation so an interrupted run still
// cleans up; each revert is bounded by the rollback timeout instead.
func Rollback(ctx *Context, pipeline string, completed []Step) error {
	return rollback(ctx, pipeline, completed, false)
}

// rollback reverts completed in reverse order. With skipMissing, a revert
// failing only because its resources no longer exist counts as done.
func rollback(ctx *Context, pipeline string, completed []Step, skipMissing bool) error {
	obs := ctx.Observer.WithFields(map[string]string{"pipeline": pipeline})
	obs.Event(Event{
		Type:     EventRollbackStarted,
		Pipeline: pipeline,
		Message:  fmt.Sprintf("reverting %d completed steps", len(completed)),
	})

	rbErr := &RollbackError{}
	base := context.WithoutCancel(ctx.Context)

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		rev, ok := step.(Reverter)
		if !ok {
			continue
		}

		err := revert(ctx.WithContext(base), obs, step.Name(), rev)
		if err != nil && skipMissing && azure.AllNotFound(err) {
			obs.Event(Event{
				Type:     EventRollbackStep,
				Pipeline: pipeline,
				Step:     step.Name(),
				Message:  "already deleted",
			})
			ctx.Metrics.ObserveRollback(pipeline, step.Name(), nil)
			continue
		}
		ctx.Metrics.ObserveRollback(pipeline, step.Name(), err)
		if err != nil {
			obs.Event(Event{
				Type:     EventRollbackFailed,
				Pipeline: pipeline,
				Step:     step.Name(),
				Message:  fmt.Sprintf("revert failed: %v", err),
			})
			rbErr.Add(fmt.Errorf("%s: %w", step.Name(), err))
			continue
		}
		obs.Event(Event{
			Type:     EventRollbackStep,
			Pipeline: pipeline,
			Step:     step.Name(),
			Message:  "reverted",
		})
	}

	if rbErr.HasErrors() {
		obs.Event(Event{
			Type:     EventRollbackFailed,
			Pipeline: pipeline,
			Message:  fmt.Sprintf("rollback completed with %d errors", len(rbErr.Errors)),
		})
		return rbErr
	}

	obs.Event(Event{
		Type:     EventRollbackCompleted,
		Pipeline: pipeline,
		Message:  "rollback complete",
	})
	return nil
}

func revert(ctx *Context, obs Observer, name string, rev Reverter) error {
	ctx.Observer = obs.WithFields(map[string]string{"step": name})
	if ctx.Timeouts != nil && ctx.Timeouts.Rollback > 0 {
		c, cancel := context.WithTimeout(ctx.Context, ctx.Timeouts.Rollback)
		defer cancel()
		ctx.Context = c
	}
	return rev.Revert(ctx)
}
