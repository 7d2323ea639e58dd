package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{
		SubscriptionID: "sub",
		TenantID:       "tenant",
		ResourceGroup:  "rg",
		Network:        NetworkConfig{Name: "vnet"},
		Workspace: WorkspaceConfig{
			Name:            "ws",
			PrivateEndpoint: PrivateEndpointConfig{Name: "ws-pe"},
		},
		Storage: StorageConfig{
			AccountName:     "adlsstoragedev01",
			PrivateEndpoint: PrivateEndpointConfig{Name: "adls-pe"},
		},
		Endpoint: EndpointConfig{
			Name:             "ep",
			TargetResourceID: "/subscriptions/s/resourceGroups/r/providers/Microsoft.Databricks/workspaces/w",
		},
		Jobs: JobsConfig{
			Job: JobConfig{MainClass: "org.proj.deltamain", Jar: "abfss://c@a.dfs.core.windows.net/x.jar"},
		},
	}
	require.NoError(t, cfg.ApplyDefaults())
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing resource group", mutate: func(c *Config) { c.ResourceGroup = "" }, wantErr: "resourceGroup is required"},
		{name: "missing location", mutate: func(c *Config) { c.Location = "" }, wantErr: "location is required"},
		{name: "missing network name", mutate: func(c *Config) { c.Network.Name = "" }, wantErr: "network.name is required"},
		{
			name:    "overlapping subnets",
			mutate:  func(c *Config) { c.Network.Subnets[1].AddressPrefix = "10.0.0.0/21" },
			wantErr: "overlaps subnet default",
		},
		{
			name:    "subnet outside address space",
			mutate:  func(c *Config) { c.Network.Subnets[0].AddressPrefix = "192.168.0.0/24" },
			wantErr: "outside the network address space",
		},
		{
			name:    "host bits set",
			mutate:  func(c *Config) { c.Network.Subnets[0].AddressPrefix = "10.0.0.1/22" },
			wantErr: "host bits set",
		},
		{
			name: "duplicate subnet",
			mutate: func(c *Config) {
				c.Network.Subnets = append(c.Network.Subnets, SubnetConfig{Name: "default", AddressPrefix: "10.0.16.0/22"})
			},
			wantErr: "duplicate subnet name",
		},
		{
			name:    "invalid policy",
			mutate:  func(c *Config) { c.Network.Subnets[3].PrivateEndpointNetworkPolicies = "Off" },
			wantErr: "privateEndpointNetworkPolicies",
		},
		{
			name:    "unknown private link subnet",
			mutate:  func(c *Config) { c.Network.PrivateLinkSubnet = "missing" },
			wantErr: "privateLinkSubnet",
		},
		{
			name:    "workspace subnet not delegated",
			mutate:  func(c *Config) { c.Workspace.PublicSubnet = "default" },
			wantErr: "must be delegated",
		},
		{
			name:    "workspace subnets identical",
			mutate:  func(c *Config) { c.Workspace.PrivateSubnet = c.Workspace.PublicSubnet },
			wantErr: "must differ",
		},
		{
			name:    "missing workspace endpoint",
			mutate:  func(c *Config) { c.Workspace.PrivateEndpoint.Name = "" },
			wantErr: "workspace.privateEndpoint.name is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateStorage(t *testing.T) {
	t.Parallel()

	cfg := validConfig(t)
	require.NoError(t, cfg.ValidateStorage())

	cfg.Storage.AccountName = "Bad_Name"
	assert.ErrorContains(t, cfg.ValidateStorage(), "storage.accountName")

	cfg = validConfig(t)
	cfg.Storage.PrivateEndpoint.Name = ""
	assert.ErrorContains(t, cfg.ValidateStorage(), "storage.privateEndpoint.name")
}

func TestValidateEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validConfig(t)
	require.NoError(t, cfg.ValidateEndpoint())

	cfg.Endpoint.TargetResourceID = "adbdevsourcews"
	assert.ErrorContains(t, cfg.ValidateEndpoint(), "full resource ID")

	cfg.Endpoint.Name = ""
	assert.ErrorContains(t, cfg.ValidateEndpoint(), "endpoint.name is required")
}

func TestValidateJobs(t *testing.T) {
	t.Parallel()

	cfg := validConfig(t)
	require.NoError(t, cfg.ValidateJobs())

	cfg.Jobs.WorkspaceURL = "http://adb-1.azuredatabricks.net"
	assert.ErrorContains(t, cfg.ValidateJobs(), "https URL")

	cfg = validConfig(t)
	cfg.TenantID = ""
	assert.ErrorContains(t, cfg.ValidateJobs(), "tenantId is required")

	cfg = validConfig(t)
	cfg.Jobs.Job.Jar = ""
	assert.ErrorContains(t, cfg.ValidateJobs(), "jobs.job.jar")
}
