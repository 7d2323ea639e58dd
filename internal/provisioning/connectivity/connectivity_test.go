package connectivity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning"
)

func testContext(cloud *azure.MockClient) *provisioning.Context {
	return &provisioning.Context{
		Context: context.Background(),
		Config: &config.Config{
			SubscriptionID: "sub-1",
			ResourceGroup:  "rg",
			Location:       "uksouth",
			Tags:           map[string]string{"environment": "development"},
			Network:        config.NetworkConfig{Name: "vnet"},
			Workspace:      config.WorkspaceConfig{Name: "ws"},
		},
		State:    provisioning.NewState(),
		Cloud:    cloud,
		Observer: provisioning.NewConsoleObserver(nil),
		Metrics:  provisioning.NewMetrics(),
		Timeouts: &config.Timeouts{Step: time.Minute, Rollback: time.Minute},
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()
	ctx := testContext(&azure.MockClient{})

	id, err := Static("/x/y")(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/x/y", id)

	_, err = Static("")(ctx)
	assert.Error(t, err)
}

func TestLookupSubnet(t *testing.T) {
	t.Parallel()

	t.Run("uses recorded network", func(t *testing.T) {
		t.Parallel()
		cloud := &azure.MockClient{}
		ctx := testContext(cloud)
		ctx.State.VirtualNetwork = &azure.VirtualNetwork{ID: "vnet-123", Subnets: map[string]string{"PrivateLink": "vnet-123/subnets/PrivateLink"}}

		id, err := LookupSubnet("PrivateLink")(ctx)
		require.NoError(t, err)
		assert.Equal(t, "vnet-123/subnets/PrivateLink", id)
		assert.Empty(t, cloud.CallLog())
	})

	t.Run("fetches and caches network", func(t *testing.T) {
		t.Parallel()
		cloud := &azure.MockClient{
			GetVirtualNetworkFunc: func(_ context.Context, rg, name string) (*azure.VirtualNetwork, error) {
				assert.Equal(t, "rg", rg)
				return &azure.VirtualNetwork{ID: "vnet-123", Name: name, Subnets: map[string]string{"PrivateLink": "pl-id"}}, nil
			},
		}
		ctx := testContext(cloud)

		id, err := LookupSubnet("PrivateLink")(ctx)
		require.NoError(t, err)
		assert.Equal(t, "pl-id", id)

		_, err = LookupSubnet("PrivateLink")(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"GetVirtualNetwork:vnet"}, cloud.CallLog())
		assert.Equal(t, "vnet-123", ctx.State.VirtualNetworkID())
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Parallel()
		cloud := &azure.MockClient{
			GetVirtualNetworkFunc: func(context.Context, string, string) (*azure.VirtualNetwork, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := LookupSubnet("PrivateLink")(testContext(cloud))
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("missing subnet", func(t *testing.T) {
		t.Parallel()
		_, err := LookupSubnet("PrivateLink")(testContext(&azure.MockClient{}))
		assert.ErrorContains(t, err, "subnet PrivateLink not found")
	})
}

func TestFormattedSubnet(t *testing.T) {
	t.Parallel()
	cloud := &azure.MockClient{}

	id, err := FormattedSubnet("PrivateLink")(testContext(cloud))
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet/subnets/PrivateLink", id)
	assert.Empty(t, cloud.CallLog())
}

func TestVirtualNetworkID(t *testing.T) {
	t.Parallel()
	ctx := testContext(&azure.MockClient{})

	id, err := VirtualNetworkID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet", id)

	ctx.State.VirtualNetwork = &azure.VirtualNetwork{ID: "vnet-123"}
	id, err = VirtualNetworkID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vnet-123", id)
}

func TestPrivateEndpointStep(t *testing.T) {
	t.Parallel()

	var got azure.PrivateEndpointSpec
	cloud := &azure.MockClient{
		CreatePrivateEndpointFunc: func(_ context.Context, rg string, spec azure.PrivateEndpointSpec) (string, error) {
			assert.Equal(t, "rg", rg)
			got = spec
			return "pe-id", nil
		},
	}
	ctx := testContext(cloud)
	step := &PrivateEndpointStep{
		StepName: "workspace-private-endpoint",
		Endpoint: config.PrivateEndpointConfig{Name: "pe", ConnectionName: "pe-conn", GroupIDs: []string{"databricks_ui_api"}},
		Subnet:   Static("subnet-id"),
		Target:   Static("ws-id"),
	}

	require.NoError(t, step.Provision(ctx))
	assert.Equal(t, "pe", got.Name)
	assert.Equal(t, "uksouth", got.Location)
	assert.Equal(t, "subnet-id", got.SubnetID)
	assert.Equal(t, "ws-id", got.TargetResourceID)
	assert.Equal(t, "pe-conn", got.ConnectionName)
	assert.Equal(t, []string{"databricks_ui_api"}, got.GroupIDs)
	assert.Equal(t, "development", got.Tags["environment"])
	assert.Equal(t, "ws", got.Tags["adbvnet-workspace"])
	assert.Equal(t, "pe-id", ctx.State.PrivateEndpoints["pe"])

	require.NoError(t, step.Revert(ctx))
	assert.Empty(t, ctx.State.PrivateEndpoints)
	assert.Equal(t, []string{"CreatePrivateEndpoint:pe", "DeletePrivateEndpoint:pe"}, cloud.CallLog())
}

func TestPrivateEndpointStep_Errors(t *testing.T) {
	t.Parallel()
	failing := func(*provisioning.Context) (string, error) { return "", errors.New("unresolved") }

	tests := []struct {
		name    string
		step    *PrivateEndpointStep
		cloud   *azure.MockClient
		wantErr string
		calls   int
	}{
		{
			name:    "subnet unresolved",
			step:    &PrivateEndpointStep{Endpoint: config.PrivateEndpointConfig{Name: "pe"}, Subnet: failing, Target: Static("t")},
			cloud:   &azure.MockClient{},
			wantErr: "failed to resolve subnet",
		},
		{
			name:    "target unresolved",
			step:    &PrivateEndpointStep{Endpoint: config.PrivateEndpointConfig{Name: "pe"}, Subnet: Static("s"), Target: failing},
			cloud:   &azure.MockClient{},
			wantErr: "failed to resolve target",
		},
		{
			name: "create fails",
			step: &PrivateEndpointStep{Endpoint: config.PrivateEndpointConfig{Name: "pe"}, Subnet: Static("s"), Target: Static("t")},
			cloud: &azure.MockClient{
				CreatePrivateEndpointFunc: func(context.Context, string, azure.PrivateEndpointSpec) (string, error) {
					return "", errors.New("quota")
				},
			},
			wantErr: "failed to create private endpoint pe",
			calls:   1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := testContext(tt.cloud)
			err := tt.step.Provision(ctx)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Len(t, tt.cloud.CallLog(), tt.calls)
			assert.Empty(t, ctx.State.PrivateEndpoints)
		})
	}
}

func TestDNSZoneStep(t *testing.T) {
	t.Parallel()

	var deployed map[string]any
	cloud := &azure.MockClient{
		DeployTemplateFunc: func(_ context.Context, rg, name string, tmpl map[string]any) error {
			assert.Equal(t, "rg", rg)
			deployed = tmpl
			return nil
		},
	}
	ctx := testContext(cloud)
	ctx.State.VirtualNetwork = &azure.VirtualNetwork{ID: "vnet-123"}
	step := &DNSZoneStep{StepName: "workspace-dns-zone", Zone: "privatelink.azuredatabricks.net", Network: VirtualNetworkID}

	require.NoError(t, step.Provision(ctx))
	require.NotNil(t, deployed)
	assert.Contains(t, deployed, "resources")
	assert.Equal(t,
		"/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones/privatelink.azuredatabricks.net",
		ctx.State.DNSZones["privatelink.azuredatabricks.net"])

	require.NoError(t, step.Revert(ctx))
	assert.Empty(t, ctx.State.DNSZones)
	assert.Equal(t, []string{
		"DeployTemplate:PrivateDnsZoneDeployment",
		"DeleteVirtualNetworkLink:privatelink.azuredatabricks.net/privatelink.azuredatabricks.net-link",
		"DeletePrivateDNSZone:privatelink.azuredatabricks.net",
	}, cloud.CallLog())
}

func TestDNSZoneStep_DeployFails(t *testing.T) {
	t.Parallel()
	cloud := &azure.MockClient{
		DeployTemplateFunc: func(context.Context, string, string, map[string]any) error { return errors.New("conflict") },
	}
	ctx := testContext(cloud)
	step := &DNSZoneStep{StepName: "dns", Zone: "z", Network: VirtualNetworkID}

	assert.ErrorContains(t, step.Provision(ctx), "failed to deploy private DNS zone z")
	assert.Empty(t, ctx.State.DNSZones)
}

func TestDNSZoneStep_RevertDeletesZoneWhenLinkFails(t *testing.T) {
	t.Parallel()
	linkErr := errors.New("link busy")
	cloud := &azure.MockClient{
		DeleteVirtualNetworkLinkFunc: func(context.Context, string, string, string) error { return linkErr },
	}
	ctx := testContext(cloud)
	step := &DNSZoneStep{StepName: "dns", Zone: "z", Network: VirtualNetworkID}

	err := step.Revert(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, linkErr)
	assert.Equal(t, []string{"DeleteVirtualNetworkLink:z/z-link", "DeletePrivateDNSZone:z"}, cloud.CallLog())
}

func TestZoneGroupStep(t *testing.T) {
	t.Parallel()

	var deployed map[string]any
	cloud := &azure.MockClient{
		DeployTemplateFunc: func(_ context.Context, _, _ string, tmpl map[string]any) error {
			deployed = tmpl
			return nil
		},
	}
	ctx := testContext(cloud)
	ctx.State.DNSZones["z"] = "zone-id"
	step := &ZoneGroupStep{StepName: "zone-group", Endpoint: "pe", ConfigName: "cfg", Zone: "z"}

	require.NoError(t, step.Provision(ctx))
	resources, ok := deployed["resources"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, resources, 1)
	assert.Equal(t, "pe/default", resources[0]["name"])

	require.NoError(t, step.Revert(ctx))
	assert.Equal(t, []string{
		"DeployTemplate:PrivateDnsZoneGroupDeployment",
		"DeletePrivateDNSZoneGroup:pe/default",
	}, cloud.CallLog())
}

func TestZoneGroupStep_FormatsZoneIDWhenNotRecorded(t *testing.T) {
	t.Parallel()

	var deployed map[string]any
	cloud := &azure.MockClient{
		DeployTemplateFunc: func(_ context.Context, _, _ string, tmpl map[string]any) error {
			deployed = tmpl
			return nil
		},
	}
	step := &ZoneGroupStep{StepName: "zone-group", Endpoint: "pe", ConfigName: "z", Zone: "z"}

	require.NoError(t, step.Provision(testContext(cloud)))
	assert.Contains(t, deployed, "resources")
}

func TestZoneGroupStep_RevertError(t *testing.T) {
	t.Parallel()
	cloud := &azure.MockClient{
		DeletePrivateDNSZoneGroupFunc: func(context.Context, string, string, string) error { return errors.New("gone") },
	}
	step := &ZoneGroupStep{StepName: "zone-group", Endpoint: "pe", Zone: "z"}

	assert.ErrorContains(t, step.Revert(testContext(cloud)), "failed to delete DNS zone group pe/default")
}
