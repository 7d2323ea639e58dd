package jobs

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/databricks"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Targets maps each step to the resource or endpoint it touches.
func Targets(cfg *config.Config) map[string]string {
	url := cfg.Jobs.WorkspaceURL
	if url == "" {
		url = naming.Workspace(cfg.SubscriptionID, cfg.ResourceGroup, cfg.Workspace.Name)
	}
	return map[string]string{
		StepClientID:      naming.UserAssignedIdentity(cfg.SubscriptionID, cfg.Workspace.ManagedResourceGroupName(), cfg.Identity.Name),
		StepWorkspaceURL:  url,
		StepToken:         DatabricksScope,
		StepClusterCreate: databricks.EndpointClusterCreate + " (" + cfg.Jobs.Cluster.Name + ")",
		StepJobCreate:     databricks.EndpointJobCreate + " (" + cfg.Jobs.Job.Name + ")",
		StepRunNow:        databricks.EndpointJobRunNow,
	}
}
