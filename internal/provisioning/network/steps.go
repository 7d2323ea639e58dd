package network

import (
	"fmt"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/util/labels"
	"github.com/imamik/adbvnet/internal/util/naming"
)

func tags(cfg *config.Config) map[string]string {
	return labels.NewTagBuilder(cfg.Workspace.Name).Merge(cfg.Tags).Build()
}

// resourceGroupStep creates the resource group holding every other resource.
type resourceGroupStep struct{}

func (s *resourceGroupStep) Name() string { return StepResourceGroup }

func (s *resourceGroupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, StepResourceGroup, "resource-group", cfg.ResourceGroup)
	id, err := ctx.Cloud.CreateResourceGroup(ctx, cfg.ResourceGroup, cfg.Location, tags(cfg))
	if err != nil {
		return fmt.Errorf("failed to create resource group %s: %w", cfg.ResourceGroup, err)
	}
	ctx.State.ResourceGroupID = id
	provisioning.LogResourceCreated(ctx.Observer, StepResourceGroup, "resource-group", cfg.ResourceGroup, id)
	return nil
}

func (s *resourceGroupStep) Revert(ctx *provisioning.Context) error {
	cfg := ctx.Config
	if !cfg.Rollback.ResourceGroupDeletion() {
		ctx.Observer.Printf("[%s] Keeping resource group %s (rollback.deleteResourceGroup is false)", StepResourceGroup, cfg.ResourceGroup)
		return nil
	}
	provisioning.LogResourceDeleting(ctx.Observer, StepResourceGroup, "resource-group", cfg.ResourceGroup)
	if err := ctx.Cloud.DeleteResourceGroup(ctx, cfg.ResourceGroup); err != nil {
		return fmt.Errorf("failed to delete resource group %s: %w", cfg.ResourceGroup, err)
	}
	ctx.State.ResourceGroupID = ""
	provisioning.LogResourceDeleted(ctx.Observer, StepResourceGroup, "resource-group", cfg.ResourceGroup)
	return nil
}

// securityGroupStep creates the network security group attached to every subnet.
type securityGroupStep struct{}

func (s *securityGroupStep) Name() string { return StepSecurityGroup }

func (s *securityGroupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	name := cfg.Network.SecurityGroup
	provisioning.LogResourceCreating(ctx.Observer, StepSecurityGroup, "network-security-group", name)
	id, err := ctx.Cloud.CreateSecurityGroup(ctx, cfg.ResourceGroup, name, cfg.Location, tags(cfg))
	if err != nil {
		return fmt.Errorf("failed to create network security group %s: %w", name, err)
	}
	ctx.State.SecurityGroupID = id
	provisioning.LogResourceCreated(ctx.Observer, StepSecurityGroup, "network-security-group", name, id)
	return nil
}

func (s *securityGroupStep) Revert(ctx *provisioning.Context) error {
	cfg := ctx.Config
	name := cfg.Network.SecurityGroup
	provisioning.LogResourceDeleting(ctx.Observer, StepSecurityGroup, "network-security-group", name)
	if err := ctx.Cloud.DeleteSecurityGroup(ctx, cfg.ResourceGroup, name); err != nil {
		return fmt.Errorf("failed to delete network security group %s: %w", name, err)
	}
	ctx.State.SecurityGroupID = ""
	provisioning.LogResourceDeleted(ctx.Observer, StepSecurityGroup, "network-security-group", name)
	return nil
}

// virtualNetworkStep creates the virtual network and all configured subnets.
type virtualNetworkStep struct{}

func (s *virtualNetworkStep) Name() string { return StepVirtualNetwork }

func (s *virtualNetworkStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	n := cfg.Network

	nsgID := ctx.State.SecurityGroupID
	if nsgID == "" {
		nsgID = naming.SecurityGroup(cfg.SubscriptionID, cfg.ResourceGroup, n.SecurityGroup)
	}

	subnets := make([]azure.SubnetSpec, 0, len(n.Subnets))
	for _, sn := range n.Subnets {
		subnets = append(subnets, azure.SubnetSpec{
			Name:                              sn.Name,
			AddressPrefix:                     sn.AddressPrefix,
			Delegation:                        sn.Delegation,
			PrivateEndpointNetworkPolicies:    sn.PrivateEndpointNetworkPolicies,
			PrivateLinkServiceNetworkPolicies: sn.PrivateLinkServiceNetworkPolicies,
		})
	}

	provisioning.LogResourceCreating(ctx.Observer, StepVirtualNetwork, "virtual-network", n.Name)
	vnet, err := ctx.Cloud.CreateVirtualNetwork(ctx, cfg.ResourceGroup, azure.VirtualNetworkSpec{
		Name:            n.Name,
		Location:        cfg.Location,
		AddressSpace:    n.AddressSpace,
		Subnets:         subnets,
		SecurityGroupID: nsgID,
		Tags:            tags(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create virtual network %s: %w", n.Name, err)
	}
	ctx.State.VirtualNetwork = vnet
	provisioning.LogResourceCreated(ctx.Observer, StepVirtualNetwork, "virtual-network", n.Name, vnet.ID)
	return nil
}

func (s *virtualNetworkStep) Revert(ctx *provisioning.Context) error {
	cfg := ctx.Config
	name := cfg.Network.Name
	provisioning.LogResourceDeleting(ctx.Observer, StepVirtualNetwork, "virtual-network", name)
	if err := ctx.Cloud.DeleteVirtualNetwork(ctx, cfg.ResourceGroup, name); err != nil {
		return fmt.Errorf("failed to delete virtual network %s: %w", name, err)
	}
	ctx.State.VirtualNetwork = nil
	provisioning.LogResourceDeleted(ctx.Observer, StepVirtualNetwork, "virtual-network", name)
	return nil
}

// workspaceStep creates the Databricks workspace injected into the virtual network.
type workspaceStep struct{}

func (s *workspaceStep) Name() string { return StepWorkspace }

func (s *workspaceStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	w := cfg.Workspace

	vnetID := ctx.State.VirtualNetworkID()
	if vnetID == "" {
		return fmt.Errorf("virtual network %s has not been provisioned", cfg.Network.Name)
	}

	provisioning.LogResourceCreating(ctx.Observer, StepWorkspace, "databricks-workspace", w.Name)
	ws, err := ctx.Cloud.CreateWorkspace(ctx, cfg.ResourceGroup, azure.WorkspaceSpec{
		Name:                   w.Name,
		Location:               cfg.Location,
		SKU:                    w.SKU,
		ManagedResourceGroupID: naming.ResourceGroup(cfg.SubscriptionID, w.ManagedResourceGroupName()),
		VirtualNetworkID:       vnetID,
		PublicSubnet:           w.PublicSubnet,
		PrivateSubnet:          w.PrivateSubnet,
		NoPublicIP:             w.NoPublicIP(),
		Tags:                   tags(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", w.Name, err)
	}
	ctx.State.Workspace = ws
	provisioning.LogResourceCreated(ctx.Observer, StepWorkspace, "databricks-workspace", w.Name, ws.ID)
	return nil
}

func (s *workspaceStep) Revert(ctx *provisioning.Context) error {
	cfg := ctx.Config
	name := cfg.Workspace.Name
	provisioning.LogResourceDeleting(ctx.Observer, StepWorkspace, "databricks-workspace", name)
	if err := ctx.Cloud.DeleteWorkspace(ctx, cfg.ResourceGroup, name); err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", name, err)
	}
	ctx.State.Workspace = nil
	provisioning.LogResourceDeleted(ctx.Observer, StepWorkspace, "databricks-workspace", name)
	return nil
}

// workspaceID resolves the workspace private endpoint target.
func workspaceID(ctx *provisioning.Context) (string, error) {
	if id := ctx.State.WorkspaceID(); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("workspace %s has not been provisioned", ctx.Config.Workspace.Name)
}
