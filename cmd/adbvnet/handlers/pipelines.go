package handlers

import (
	"context"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/jobs"
	"github.com/imamik/adbvnet/internal/provisioning/endpoint"
	"github.com/imamik/adbvnet/internal/provisioning/network"
	"github.com/imamik/adbvnet/internal/provisioning/storage"
)

// Network provisions the resource group, network, workspace and the
// workspace private endpoint, rolling back on failure.
func Network(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	return s.finish(opts, s.run(network.NewPipeline(s.cfg)))
}

// Storage connects the storage account to the workspace network and grants
// the workspace identity access to it.
func Storage(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts, (*config.Config).ValidateStorage)
	if err != nil {
		return err
	}
	return s.finish(opts, s.run(storage.NewPipeline(s.cfg)))
}

// Endpoint creates a private endpoint to an existing workspace.
func Endpoint(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts, (*config.Config).ValidateEndpoint)
	if err != nil {
		return err
	}
	return s.finish(opts, s.run(endpoint.NewPipeline(s.cfg)))
}

// Job creates a cluster and a JAR job in the workspace and triggers a run.
func Job(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts, (*config.Config).ValidateJobs)
	if err != nil {
		return err
	}
	return s.finish(opts, s.run(newSubmitter(s.cred).Pipeline()))
}

// PipelineNames returns the pipelines known to plan, in execution order.
func PipelineNames() []string {
	return []string{network.PipelineName, storage.PipelineName, endpoint.PipelineName, jobs.PipelineName}
}
