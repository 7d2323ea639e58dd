package handlers

import (
	"fmt"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/jobs"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/endpoint"
	"github.com/imamik/adbvnet/internal/provisioning/network"
	"github.com/imamik/adbvnet/internal/provisioning/storage"
	"github.com/imamik/adbvnet/internal/ui/report"
)

// Plan prints the steps of the named pipelines and the resources they touch
// without contacting Azure. With no names it shows network and storage.
func Plan(opts Options, names []string) error {
	cfg, err := loadConfig(configPath(opts))
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names = []string{network.PipelineName, storage.PipelineName}
	}

	plans := make([]report.Plan, 0, len(names))
	for _, name := range names {
		p, targets, err := plannedPipeline(cfg, name)
		if err != nil {
			return err
		}
		plan := report.Plan{Pipeline: p.Name, Rollback: p.Rollback}
		for _, step := range p.StepNames() {
			plan.Steps = append(plan.Steps, report.PlanStep{Name: step, Target: targets[step]})
		}
		plans = append(plans, plan)
	}

	fmt.Fprint(stdout, report.RenderPlan(plans, isInteractive()))
	return nil
}

func plannedPipeline(cfg *config.Config, name string) (*provisioning.Pipeline, map[string]string, error) {
	switch name {
	case network.PipelineName:
		return network.NewPipeline(cfg), network.Targets(cfg), nil
	case storage.PipelineName:
		return storage.NewPipeline(cfg), storage.Targets(cfg), nil
	case endpoint.PipelineName:
		return endpoint.NewPipeline(cfg), endpoint.Targets(cfg), nil
	case jobs.PipelineName:
		return newSubmitter(nil).Pipeline(), jobs.Targets(cfg), nil
	default:
		return nil, nil, fmt.Errorf("unknown pipeline %q (valid: %v)", name, PipelineNames())
	}
}
