package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/endpoint"
	"github.com/imamik/adbvnet/internal/provisioning/network"
	"github.com/imamik/adbvnet/internal/provisioning/storage"
)

// ErrDestroyAborted is returned when the user declines the destroy prompt.
var ErrDestroyAborted = errors.New("destroy aborted")

// confirmDestroy asks the user to confirm deletion. Replaced in tests.
var confirmDestroy = func(cfg *config.Config) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete workspace %s and its network?", cfg.Workspace.Name)).
				Description(destroyDescription(cfg)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	return ok, err
}

func destroyDescription(cfg *config.Config) string {
	if cfg.Rollback.ResourceGroupDeletion() {
		return fmt.Sprintf("Resource group %s will be deleted as well.", cfg.ResourceGroup)
	}
	return fmt.Sprintf("Resource group %s is kept.", cfg.ResourceGroup)
}

// Destroy deletes what the pipelines create, working from the configuration
// alone. The endpoint and storage pipelines are torn down first when they are
// configured, since their private endpoints keep the network subnet in use.
// Without yes it asks for confirmation, which requires a terminal.
func Destroy(ctx context.Context, opts Options, yes bool) error {
	cfg, err := loadConfig(configPath(opts))
	if err != nil {
		return err
	}

	if !yes {
		if !isInteractive() {
			return fmt.Errorf("refusing to destroy without confirmation: pass --yes when not running in a terminal")
		}
		ok, err := confirmDestroy(cfg)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return ErrDestroyAborted
		}
	}

	s, err := openSession(ctx, opts, cfg)
	if err != nil {
		return err
	}

	var errs []error
	for _, p := range destroyPipelines(s.cfg) {
		if err := s.destroy(p); err != nil {
			errs = append(errs, err)
		}
	}
	return s.finish(opts, errors.Join(errs...))
}

// destroyPipelines returns the configured pipelines in teardown order.
func destroyPipelines(cfg *config.Config) []*provisioning.Pipeline {
	var pipelines []*provisioning.Pipeline
	if cfg.ValidateEndpoint() == nil {
		pipelines = append(pipelines, endpoint.NewPipeline(cfg))
	}
	if cfg.ValidateStorage() == nil {
		pipelines = append(pipelines, storage.NewPipeline(cfg))
	}
	return append(pipelines, network.NewPipeline(cfg))
}
