package endpoint

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

const targetID = "/subscriptions/sub-2/resourceGroups/source-rg/providers/Microsoft.Databricks/workspaces/adbdevsourcews"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		SubscriptionID: "sub-1",
		ResourceGroup:  "rg",
		Network:        config.NetworkConfig{Name: "adbdev2queryvnet2"},
		Workspace: config.WorkspaceConfig{
			Name:            "ws",
			PrivateEndpoint: config.PrivateEndpointConfig{Name: "ws-pe"},
		},
		Endpoint: config.EndpointConfig{
			Name:             "adbPrivateEndpointCustomerWorkspace",
			TargetResourceID: targetID,
		},
	}
	require.NoError(t, cfg.ApplyDefaults())
	return cfg
}

func testContext(cfg *config.Config, cloud *azure.MockClient) *provisioning.Context {
	return &provisioning.Context{
		Context:  context.Background(),
		Config:   cfg,
		State:    provisioning.NewState(),
		Cloud:    cloud,
		Observer: provisioning.NewConsoleObserver(nil),
		Metrics:  provisioning.NewMetrics(),
		Timeouts: &config.Timeouts{Step: time.Minute, Rollback: time.Minute},
	}
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()
	p := NewPipeline(testConfig(t))

	assert.Equal(t, PipelineName, p.Name)
	assert.False(t, p.Rollback)
	assert.Equal(t, []string{StepPrivateEndpoint, StepDNSZoneGroup}, p.StepNames())
}

func TestPipeline_Success(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)

	var (
		gotEndpoint azure.PrivateEndpointSpec
		gotGroup    map[string]any
	)
	cloud := &azure.MockClient{
		CreatePrivateEndpointFunc: func(_ context.Context, rg string, spec azure.PrivateEndpointSpec) (string, error) {
			assert.Equal(t, "rg", rg)
			gotEndpoint = spec
			return "pe-id", nil
		},
		DeployTemplateFunc: func(_ context.Context, _, _ string, tmpl map[string]any) error {
			gotGroup = tmpl
			return nil
		},
	}

	require.NoError(t, NewPipeline(cfg).Run(testContext(cfg, cloud)))
	assert.Equal(t, []string{
		"CreatePrivateEndpoint:adbPrivateEndpointCustomerWorkspace",
		"DeployTemplate:PrivateDnsZoneGroupDeployment",
	}, cloud.CallLog())

	assert.Equal(t,
		"/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/adbdev2queryvnet2/subnets/PrivateLink",
		gotEndpoint.SubnetID)
	assert.Equal(t, targetID, gotEndpoint.TargetResourceID)
	assert.Equal(t, "adbPrivateEndpointCustomerWorkspace", gotEndpoint.ConnectionName)
	assert.Equal(t, []string{"databricks_ui_api"}, gotEndpoint.GroupIDs)

	resources := gotGroup["resources"].([]map[string]any)
	require.Len(t, resources, 1)
	assert.Equal(t, "adbPrivateEndpointCustomerWorkspace/default", resources[0]["name"])
	configs := resources[0]["properties"].(map[string]any)["privateDnsZoneConfigs"].([]map[string]any)
	require.Len(t, configs, 1)
	assert.Equal(t, "privatelink.azuredatabricks.net", configs[0]["name"])
	assert.Equal(t,
		"/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones/privatelink.azuredatabricks.net",
		configs[0]["properties"].(map[string]any)["privateDnsZoneId"])
}

func TestPipeline_EndpointFailureSkipsZoneGroup(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)
	cloud := &azure.MockClient{
		CreatePrivateEndpointFunc: func(context.Context, string, azure.PrivateEndpointSpec) (string, error) {
			return "", errors.New("target rejected connection")
		},
	}

	err := NewPipeline(cfg).Run(testContext(cfg, cloud))
	require.Error(t, err)

	var stepErr *provisioning.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepPrivateEndpoint, stepErr.Step)
	assert.Equal(t, []string{"CreatePrivateEndpoint:adbPrivateEndpointCustomerWorkspace"}, cloud.CallLog())
}

func TestTargets(t *testing.T) {
	t.Parallel()
	targets := Targets(testConfig(t))

	assert.Equal(t, map[string]string{
		StepPrivateEndpoint: "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/privateEndpoints/adbPrivateEndpointCustomerWorkspace",
		StepDNSZoneGroup:    "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Network/privateEndpoints/adbPrivateEndpointCustomerWorkspace/privateDnsZoneGroups/default",
	}, targets)
}
