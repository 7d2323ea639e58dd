package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning/network"
)

// deployment is a stateful cloud: lookups return what earlier creates stored.
type deployment struct {
	mu         sync.Mutex
	vnet       *azure.VirtualNetwork
	workspace  *azure.Workspace
	wsSpec     azure.WorkspaceSpec
	endpoints  map[string]string
	identities []string
}

func (d *deployment) client() *azure.MockClient {
	return &azure.MockClient{
		CreateVirtualNetworkFunc: func(_ context.Context, _ string, spec azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			subnets := make(map[string]string, len(spec.Subnets))
			for _, sn := range spec.Subnets {
				subnets[sn.Name] = "vnet-123/subnets/" + sn.Name
			}
			d.vnet = &azure.VirtualNetwork{ID: "vnet-123", Name: spec.Name, Subnets: subnets}
			return d.vnet, nil
		},
		GetVirtualNetworkFunc: func(context.Context, string, string) (*azure.VirtualNetwork, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			return d.vnet, nil
		},
		CreateWorkspaceFunc: func(_ context.Context, _ string, spec azure.WorkspaceSpec) (*azure.Workspace, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.wsSpec = spec
			d.workspace = &azure.Workspace{
				ID:                     "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Databricks/workspaces/" + spec.Name,
				Name:                   spec.Name,
				ManagedResourceGroupID: spec.ManagedResourceGroupID,
				URL:                    "https://adb-1.1.azuredatabricks.net",
			}
			return d.workspace, nil
		},
		GetWorkspaceFunc: func(context.Context, string, string) (*azure.Workspace, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			return d.workspace, nil
		},
		CreatePrivateEndpointFunc: func(_ context.Context, _ string, spec azure.PrivateEndpointSpec) (string, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.endpoints[spec.Name] = spec.SubnetID
			return spec.Name + "-id", nil
		},
		GetStorageAccountIDFunc: func(context.Context, string, string) (string, error) {
			return storageID, nil
		},
		GetResourcePropertiesFunc: func(_ context.Context, id, _ string) (map[string]any, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.identities = append(d.identities, id)
			return map[string]any{"principalId": "principal-1", "clientId": "client-1"}, nil
		},
	}
}

func TestDeployment_StorageUsesNetworkOutputs(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)
	cfg.Workspace.ManagedResourceGroup = "mrg-abc"

	d := &deployment{endpoints: map[string]string{}}
	cloud := d.client()

	require.NoError(t, network.NewPipeline(cfg).Run(testContext(cfg, cloud)))
	require.NoError(t, NewPipeline(cfg).Run(testContext(cfg, cloud)))

	assert.Equal(t, "vnet-123", d.wsSpec.VirtualNetworkID)
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/mrg-abc", d.wsSpec.ManagedResourceGroupID)
	assert.Equal(t, map[string]string{
		"ws-pe":   "vnet-123/subnets/PrivateLink",
		"adls-pe": "vnet-123/subnets/PrivateLink",
	}, d.endpoints)
	assert.Equal(t, []string{identityID}, d.identities)
}
