package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceConfig_ManagedResourceGroupName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "databricks-rg-ws1", WorkspaceConfig{Name: "ws1"}.ManagedResourceGroupName())
	assert.Equal(t, "custom-mrg", WorkspaceConfig{Name: "ws1", ManagedResourceGroup: "custom-mrg"}.ManagedResourceGroupName())
}

func TestWorkspaceConfig_NoPublicIP(t *testing.T) {
	t.Parallel()
	f := false

	assert.True(t, WorkspaceConfig{}.NoPublicIP())
	assert.False(t, WorkspaceConfig{EnableNoPublicIP: &f}.NoPublicIP())
}

func TestRollbackConfig_ResourceGroupDeletion(t *testing.T) {
	t.Parallel()
	f := false

	assert.True(t, RollbackConfig{}.ResourceGroupDeletion())
	assert.False(t, RollbackConfig{DeleteResourceGroup: &f}.ResourceGroupDeletion())
}

func TestConfig_StorageResourceGroup(t *testing.T) {
	t.Parallel()

	cfg := &Config{ResourceGroup: "rg"}
	assert.Equal(t, "rg", cfg.StorageResourceGroup())

	cfg.Storage.ResourceGroup = "data-rg"
	assert.Equal(t, "data-rg", cfg.StorageResourceGroup())
}

func TestNetworkConfig_Subnet(t *testing.T) {
	t.Parallel()
	n := NetworkConfig{Subnets: []SubnetConfig{{Name: "a"}, {Name: "b"}}}

	s := n.Subnet("b")
	if assert.NotNil(t, s) {
		assert.Equal(t, "b", s.Name)
	}
	assert.Nil(t, n.Subnet("c"))
}
