package config

// Defaults applied when the configuration leaves a field empty.
const (
	DefaultLocation            = "uksouth"
	DefaultAddressSpace        = "10.0.0.0/16"
	DefaultSecurityGroup       = "databricksnsg"
	DefaultPrivateLinkSubnet   = "PrivateLink"
	DefaultPublicSubnet        = "databricks-source-public-subnet"
	DefaultPrivateSubnet       = "databricks-source-private-subnet"
	DefaultWorkspaceSKU        = "premium"
	DefaultWorkspaceDNSZone    = "privatelink.azuredatabricks.net"
	DefaultStorageDNSZone      = "privatelink.dfs.core.windows.net"
	DefaultStorageRole         = "Storage Blob Data Contributor"
	DefaultStorageConnection   = "adls-private-link"
	DefaultStorageZoneConfig   = "dnsZoneConfig"
	DefaultIdentityName        = "dbmanagedidentity"
	DefaultIdentityAPIVersion  = "2023-01-31"
	DefaultWorkspaceGroupID    = "databricks_ui_api"
	DefaultStorageGroupID      = "dfs"
	DefaultDelegationService   = "Microsoft.Databricks/workspaces"
	DefaultSubnetPrefixBits    = 6
	ManagedResourceGroupPrefix = "databricks-rg-"
)

// Job defaults mirror a small general purpose cluster.
const (
	DefaultClusterName        = "StandardCluster"
	DefaultSparkVersion       = "16.1.x-scala2.12"
	DefaultNodeType           = "Standard_D4ds_v5"
	DefaultClusterWorkers     = 2
	DefaultAutoTermination    = 30
	DefaultJobName            = "SparkJarJob"
	DefaultTaskKey            = "Task"
	DefaultTaskDescription    = "A Spark JAR task running on an existing cluster"
	DefaultConfigFilename     = "adbvnet.yaml"
	EnvSubscriptionID         = "AZURE_SUBSCRIPTION_ID"
	EnvTenantID               = "AZURE_TENANT_ID"
	EnvDatabricksWorkspaceURL = "DATABRICKS_WORKSPACE_URL"
)

// Network policy values accepted on subnets.
const (
	PolicyEnabled  = "Enabled"
	PolicyDisabled = "Disabled"
)
