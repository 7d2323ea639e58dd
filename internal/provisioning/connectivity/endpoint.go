package connectivity

import (
	"fmt"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/util/labels"
)

const resourcePrivateEndpoint = "private-endpoint"

// PrivateEndpointStep creates a private endpoint in the configured resource group.
type PrivateEndpointStep struct {
	StepName string
	Endpoint config.PrivateEndpointConfig
	Subnet   Resolve
	Target   Resolve
}

// Name implements provisioning.Step.
func (s *PrivateEndpointStep) Name() string { return s.StepName }

// Provision implements provisioning.Step.
func (s *PrivateEndpointStep) Provision(ctx *provisioning.Context) error {
	subnetID, err := s.Subnet(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve subnet for private endpoint %s: %w", s.Endpoint.Name, err)
	}
	targetID, err := s.Target(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve target for private endpoint %s: %w", s.Endpoint.Name, err)
	}

	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, s.StepName, resourcePrivateEndpoint, s.Endpoint.Name)
	id, err := ctx.Cloud.CreatePrivateEndpoint(ctx, cfg.ResourceGroup, azure.PrivateEndpointSpec{
		Name:             s.Endpoint.Name,
		Location:         cfg.Location,
		SubnetID:         subnetID,
		TargetResourceID: targetID,
		ConnectionName:   s.Endpoint.ConnectionName,
		GroupIDs:         s.Endpoint.GroupIDs,
		Tags:             labels.NewTagBuilder(cfg.Workspace.Name).Merge(cfg.Tags).Build(),
	})
	if err != nil {
		return fmt.Errorf("failed to create private endpoint %s: %w", s.Endpoint.Name, err)
	}

	ctx.State.PrivateEndpoints[s.Endpoint.Name] = id
	provisioning.LogResourceCreated(ctx.Observer, s.StepName, resourcePrivateEndpoint, s.Endpoint.Name, id)
	return nil
}

// Revert implements provisioning.Reverter.
func (s *PrivateEndpointStep) Revert(ctx *provisioning.Context) error {
	provisioning.LogResourceDeleting(ctx.Observer, s.StepName, resourcePrivateEndpoint, s.Endpoint.Name)
	if err := ctx.Cloud.DeletePrivateEndpoint(ctx, ctx.Config.ResourceGroup, s.Endpoint.Name); err != nil {
		return fmt.Errorf("failed to delete private endpoint %s: %w", s.Endpoint.Name, err)
	}
	delete(ctx.State.PrivateEndpoints, s.Endpoint.Name)
	provisioning.LogResourceDeleted(ctx.Observer, s.StepName, resourcePrivateEndpoint, s.Endpoint.Name)
	return nil
}
