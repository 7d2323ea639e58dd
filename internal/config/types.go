package config

// Config holds the complete provisioning configuration.
type Config struct {
	SubscriptionID string            `yaml:"subscriptionId"`
	TenantID       string            `yaml:"tenantId"`
	ResourceGroup  string            `yaml:"resourceGroup"`
	Location       string            `yaml:"location"`
	Tags           map[string]string `yaml:"tags"`

	Network   NetworkConfig   `yaml:"network"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Storage   StorageConfig   `yaml:"storage"`
	Identity  IdentityConfig  `yaml:"identity"`
	Endpoint  EndpointConfig  `yaml:"endpoint"`
	Jobs      JobsConfig      `yaml:"jobs"`
	Rollback  RollbackConfig  `yaml:"rollback"`
}

// NetworkConfig describes the virtual network the workspace is injected into.
type NetworkConfig struct {
	Name              string         `yaml:"name"`
	SecurityGroup     string         `yaml:"securityGroup"`
	AddressSpace      []string       `yaml:"addressSpace"`
	PrivateLinkSubnet string         `yaml:"privateLinkSubnet"`
	Subnets           []SubnetConfig `yaml:"subnets"`
}

// SubnetConfig describes a single subnet of the virtual network.
type SubnetConfig struct {
	Name          string `yaml:"name"`
	AddressPrefix string `yaml:"addressPrefix"`
	// Delegation is a service name such as Microsoft.Databricks/workspaces.
	Delegation                        string `yaml:"delegation,omitempty"`
	PrivateEndpointNetworkPolicies    string `yaml:"privateEndpointNetworkPolicies,omitempty"`
	PrivateLinkServiceNetworkPolicies string `yaml:"privateLinkServiceNetworkPolicies,omitempty"`
}

// PrivateEndpointConfig describes a private endpoint and its DNS zone group entry.
type PrivateEndpointConfig struct {
	Name           string   `yaml:"name"`
	ConnectionName string   `yaml:"connectionName,omitempty"`
	GroupIDs       []string `yaml:"groupIds"`
	ZoneConfigName string   `yaml:"zoneConfigName,omitempty"`
}

// WorkspaceConfig describes the Databricks workspace.
type WorkspaceConfig struct {
	Name                 string                `yaml:"name"`
	SKU                  string                `yaml:"sku"`
	PublicSubnet         string                `yaml:"publicSubnet"`
	PrivateSubnet        string                `yaml:"privateSubnet"`
	EnableNoPublicIP     *bool                 `yaml:"enableNoPublicIp,omitempty"`
	ManagedResourceGroup string                `yaml:"managedResourceGroup,omitempty"`
	PrivateEndpoint      PrivateEndpointConfig `yaml:"privateEndpoint"`
	PrivateDNSZone       string                `yaml:"privateDnsZone"`
}

// NoPublicIP reports whether secure cluster connectivity is enabled (default true).
func (w WorkspaceConfig) NoPublicIP() bool {
	return w.EnableNoPublicIP == nil || *w.EnableNoPublicIP
}

// ManagedResourceGroupName returns the workspace's managed resource group name.
func (w WorkspaceConfig) ManagedResourceGroupName() string {
	if w.ManagedResourceGroup != "" {
		return w.ManagedResourceGroup
	}
	return ManagedResourceGroupPrefix + w.Name
}

// StorageConfig describes the ADLS Gen2 account connected to the workspace.
type StorageConfig struct {
	AccountName string `yaml:"accountName"`
	// ResourceGroup defaults to the top-level resource group.
	ResourceGroup   string                `yaml:"resourceGroup,omitempty"`
	PrivateEndpoint PrivateEndpointConfig `yaml:"privateEndpoint"`
	PrivateDNSZone  string                `yaml:"privateDnsZone"`
	RoleName        string                `yaml:"roleName"`
}

// IdentityConfig names the workspace-managed identity.
type IdentityConfig struct {
	Name       string `yaml:"name"`
	APIVersion string `yaml:"apiVersion"`
}

// EndpointConfig describes a private endpoint to a workspace living elsewhere.
type EndpointConfig struct {
	Name             string   `yaml:"name"`
	ConnectionName   string   `yaml:"connectionName,omitempty"`
	TargetResourceID string   `yaml:"targetResourceId"`
	GroupIDs         []string `yaml:"groupIds"`
	PrivateDNSZone   string   `yaml:"privateDnsZone"`
}

// JobsConfig describes the cluster and job submitted to the workspace.
type JobsConfig struct {
	WorkspaceURL      string        `yaml:"workspaceUrl"`
	JarStorageAccount string        `yaml:"jarStorageAccount"`
	Cluster           ClusterConfig `yaml:"cluster"`
	Job               JobConfig     `yaml:"job"`
}

// ClusterConfig describes the compute cluster.
type ClusterConfig struct {
	Name                   string `yaml:"name"`
	SparkVersion           string `yaml:"sparkVersion"`
	NodeType               string `yaml:"nodeType"`
	Workers                int    `yaml:"workers"`
	AutoTerminationMinutes int    `yaml:"autoTerminationMinutes"`
}

// JobConfig describes the Spark JAR job.
type JobConfig struct {
	Name        string `yaml:"name"`
	TaskKey     string `yaml:"taskKey"`
	Description string `yaml:"description"`
	MainClass   string `yaml:"mainClass"`
	Jar         string `yaml:"jar"`
}

// RollbackConfig controls the teardown performed after a failed run.
type RollbackConfig struct {
	DeleteResourceGroup *bool `yaml:"deleteResourceGroup,omitempty"`
}

// ResourceGroupDeletion reports whether rollback deletes the resource group (default true).
func (r RollbackConfig) ResourceGroupDeletion() bool {
	return r.DeleteResourceGroup == nil || *r.DeleteResourceGroup
}

// StorageResourceGroup returns the resource group holding the storage account.
func (c *Config) StorageResourceGroup() string {
	if c.Storage.ResourceGroup != "" {
		return c.Storage.ResourceGroup
	}
	return c.ResourceGroup
}

// Subnet returns the subnet with the given name, or nil.
func (n *NetworkConfig) Subnet(name string) *SubnetConfig {
	for i := range n.Subnets {
		if n.Subnets[i].Name == name {
			return &n.Subnets[i]
		}
	}
	return nil
}
