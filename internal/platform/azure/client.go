package azure

import "context"

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	// CreateResourceGroup creates or updates a resource group and returns its ID.
	CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (string, error)
	DeleteResourceGroup(ctx context.Context, name string) error
}

// NetworkManager defines the interface for managing security groups and virtual networks.
type NetworkManager interface {
	CreateSecurityGroup(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (string, error)
	DeleteSecurityGroup(ctx context.Context, resourceGroup, name string) error
	// CreateVirtualNetwork creates or updates a virtual network with all its subnets in one call.
	CreateVirtualNetwork(ctx context.Context, resourceGroup string, spec VirtualNetworkSpec) (*VirtualNetwork, error)
	GetVirtualNetwork(ctx context.Context, resourceGroup, name string) (*VirtualNetwork, error)
	DeleteVirtualNetwork(ctx context.Context, resourceGroup, name string) error
}

// PrivateEndpointManager defines the interface for managing private endpoints.
type PrivateEndpointManager interface {
	// CreatePrivateEndpoint creates or updates a private endpoint and returns its ID.
	CreatePrivateEndpoint(ctx context.Context, resourceGroup string, spec PrivateEndpointSpec) (string, error)
	DeletePrivateEndpoint(ctx context.Context, resourceGroup, name string) error
	DeletePrivateDNSZoneGroup(ctx context.Context, resourceGroup, endpoint, group string) error
}

// PrivateDNSManager defines the interface for tearing down private DNS zones.
// Zones are created through template deployments.
type PrivateDNSManager interface {
	DeletePrivateDNSZone(ctx context.Context, resourceGroup, zone string) error
	DeleteVirtualNetworkLink(ctx context.Context, resourceGroup, zone, link string) error
}

// WorkspaceManager defines the interface for managing Databricks workspaces.
type WorkspaceManager interface {
	CreateWorkspace(ctx context.Context, resourceGroup string, spec WorkspaceSpec) (*Workspace, error)
	GetWorkspace(ctx context.Context, resourceGroup, name string) (*Workspace, error)
	DeleteWorkspace(ctx context.Context, resourceGroup, name string) error
}

// DeploymentManager defines the interface for ARM template deployments.
type DeploymentManager interface {
	// DeployTemplate runs an incremental deployment and waits for it to finish.
	DeployTemplate(ctx context.Context, resourceGroup, name string, template map[string]any) error
}

// StorageReader defines the interface for reading storage accounts.
type StorageReader interface {
	GetStorageAccountID(ctx context.Context, resourceGroup, name string) (string, error)
}

// ResourceReader defines the interface for generic resource lookups.
type ResourceReader interface {
	// GetResourceProperties returns the properties bag of the resource with the given ID.
	GetResourceProperties(ctx context.Context, id, apiVersion string) (map[string]any, error)
}

// RoleManager defines the interface for role definitions and assignments.
type RoleManager interface {
	// FindRoleDefinitionID returns the ID of the role named roleName visible at scope.
	FindRoleDefinitionID(ctx context.Context, scope, roleName string) (string, error)
	// CreateRoleAssignment creates an assignment called name and returns its ID.
	CreateRoleAssignment(ctx context.Context, scope, name string, spec RoleAssignmentSpec) (string, error)
	// FindRoleAssignments returns the names of the assignments made directly at
	// scope that grant roleDefinitionID to principalID.
	FindRoleAssignments(ctx context.Context, scope, principalID, roleDefinitionID string) ([]string, error)
	DeleteRoleAssignment(ctx context.Context, scope, name string) error
}

// Client combines all resource managers.
type Client interface {
	ResourceGroupManager
	NetworkManager
	PrivateEndpointManager
	PrivateDNSManager
	WorkspaceManager
	DeploymentManager
	StorageReader
	ResourceReader
	RoleManager
}
