package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/databricks/armdatabricks"

	"github.com/imamik/adbvnet/internal/util/labels"
)

// CreateWorkspace creates or updates a VNet-injected Databricks workspace.
func (c *RealClient) CreateWorkspace(ctx context.Context, resourceGroup string, spec WorkspaceSpec) (*Workspace, error) {
	resp, err := (&CreateOperation[armdatabricks.WorkspacesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "workspace",
		Begin: func(ctx context.Context) (*runtime.Poller[armdatabricks.WorkspacesClientCreateOrUpdateResponse], error) {
			return c.workspaces.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, buildWorkspace(spec), nil)
		},
	}).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return toWorkspace(resp.Workspace), nil
}

// GetWorkspace returns the workspace's ID, managed resource group and URL.
func (c *RealClient) GetWorkspace(ctx context.Context, resourceGroup, name string) (*Workspace, error) {
	resp, err := c.workspaces.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace %s: %w", name, err)
	}
	return toWorkspace(resp.Workspace), nil
}

// DeleteWorkspace deletes the workspace. Azure removes its managed resource group.
func (c *RealClient) DeleteWorkspace(ctx context.Context, resourceGroup, name string) error {
	return (&DeleteOperation[armdatabricks.WorkspacesClientDeleteResponse]{
		Name:         name,
		ResourceType: "workspace",
		Begin: func(ctx context.Context) (*runtime.Poller[armdatabricks.WorkspacesClientDeleteResponse], error) {
			return c.workspaces.BeginDelete(ctx, resourceGroup, name, nil)
		},
	}).Execute(ctx)
}

func buildWorkspace(spec WorkspaceSpec) armdatabricks.Workspace {
	params := &armdatabricks.WorkspaceCustomParameters{
		EnableNoPublicIP: &armdatabricks.WorkspaceCustomBooleanParameter{Value: to.Ptr(spec.NoPublicIP)},
	}
	if spec.VirtualNetworkID != "" {
		params.CustomVirtualNetworkID = &armdatabricks.WorkspaceCustomStringParameter{Value: to.Ptr(spec.VirtualNetworkID)}
		params.CustomPublicSubnetName = &armdatabricks.WorkspaceCustomStringParameter{Value: to.Ptr(spec.PublicSubnet)}
		params.CustomPrivateSubnetName = &armdatabricks.WorkspaceCustomStringParameter{Value: to.Ptr(spec.PrivateSubnet)}
	}

	return armdatabricks.Workspace{
		Location: to.Ptr(spec.Location),
		SKU:      &armdatabricks.SKU{Name: to.Ptr(spec.SKU)},
		Tags:     labels.ToAzure(spec.Tags),
		Properties: &armdatabricks.WorkspaceProperties{
			ManagedResourceGroupID: to.Ptr(spec.ManagedResourceGroupID),
			Parameters:             params,
		},
	}
}

func toWorkspace(w armdatabricks.Workspace) *Workspace {
	out := &Workspace{
		ID:   deref(w.ID),
		Name: deref(w.Name),
	}
	if w.Properties != nil {
		out.ManagedResourceGroupID = deref(w.Properties.ManagedResourceGroupID)
		if url := deref(w.Properties.WorkspaceURL); url != "" {
			out.URL = "https://" + url
		}
	}
	return out
}
