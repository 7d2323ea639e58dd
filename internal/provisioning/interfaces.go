package provisioning

// Step defines the interface for a provisioning step.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Provision executes the step. It may read any identifier recorded in
	// ctx.State by earlier steps and records what it creates.
	Provision(ctx *Context) error
}

// Reverter is implemented by steps that can undo what they created.
type Reverter interface {
	// Revert deletes the resources created by Provision.
	Revert(ctx *Context) error
}

// StepFunc adapts a pair of functions to the Step and Reverter interfaces.
// A nil RevertFn makes Revert a no-op.
type StepFunc struct {
	StepName    string
	ProvisionFn func(ctx *Context) error
	RevertFn    func(ctx *Context) error
}

// Name implements Step.
func (s *StepFunc) Name() string { return s.StepName }

// Provision implements Step.
func (s *StepFunc) Provision(ctx *Context) error { return s.ProvisionFn(ctx) }

// Revert implements Reverter.
func (s *StepFunc) Revert(ctx *Context) error {
	if s.RevertFn == nil {
		return nil
	}
	return s.RevertFn(ctx)
}
