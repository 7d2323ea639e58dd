package handlers

import (
	"context"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/network"
	"github.com/imamik/adbvnet/internal/provisioning/storage"
)

// Apply runs the network and storage pipelines in order and, when submitJob
// is set, submits the job. It stops at the first failing pipeline.
func Apply(ctx context.Context, opts Options, submitJob bool) error {
	validators := []func(*config.Config) error{(*config.Config).ValidateStorage}
	if submitJob {
		validators = append(validators, (*config.Config).ValidateJobs)
	}

	s, err := newSession(ctx, opts, validators...)
	if err != nil {
		return err
	}

	pipelines := []*provisioning.Pipeline{
		network.NewPipeline(s.cfg),
		storage.NewPipeline(s.cfg),
	}
	if submitJob {
		pipelines = append(pipelines, newSubmitter(s.cred).Pipeline())
	}

	for _, p := range pipelines {
		if err := s.run(p); err != nil {
			return s.finish(opts, err)
		}
	}
	return s.finish(opts, nil)
}
