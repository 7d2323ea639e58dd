package provisioning

import (
	"context"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning step.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Cloud    azure.Client
	Observer Observer
	Metrics  *Metrics
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, cloud azure.Client, observer Observer) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Cloud:    cloud,
		Observer: observer,
		Metrics:  NewMetrics(),
		Timeouts: config.LoadTimeouts(),
	}
}

// WithContext returns a shallow copy of c bound to ctx. State is shared.
func (c *Context) WithContext(ctx context.Context) *Context {
	cp := *c
	cp.Context = ctx
	return &cp
}
