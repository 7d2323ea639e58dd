package azure

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client. Unset funcs succeed with
// deterministic IDs. Every call is recorded in Calls as "Method:name".
type MockClient struct {
	mu    sync.Mutex
	Calls []string

	// Resource groups
	CreateResourceGroupFunc func(ctx context.Context, name, location string, tags map[string]string) (string, error)
	DeleteResourceGroupFunc func(ctx context.Context, name string) error

	// Network
	CreateSecurityGroupFunc  func(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (string, error)
	DeleteSecurityGroupFunc  func(ctx context.Context, resourceGroup, name string) error
	CreateVirtualNetworkFunc func(ctx context.Context, resourceGroup string, spec VirtualNetworkSpec) (*VirtualNetwork, error)
	GetVirtualNetworkFunc    func(ctx context.Context, resourceGroup, name string) (*VirtualNetwork, error)
	DeleteVirtualNetworkFunc func(ctx context.Context, resourceGroup, name string) error

	// Private endpoints
	CreatePrivateEndpointFunc     func(ctx context.Context, resourceGroup string, spec PrivateEndpointSpec) (string, error)
	DeletePrivateEndpointFunc     func(ctx context.Context, resourceGroup, name string) error
	DeletePrivateDNSZoneGroupFunc func(ctx context.Context, resourceGroup, endpoint, group string) error

	// Private DNS
	DeletePrivateDNSZoneFunc     func(ctx context.Context, resourceGroup, zone string) error
	DeleteVirtualNetworkLinkFunc func(ctx context.Context, resourceGroup, zone, link string) error

	// Workspace
	CreateWorkspaceFunc func(ctx context.Context, resourceGroup string, spec WorkspaceSpec) (*Workspace, error)
	GetWorkspaceFunc    func(ctx context.Context, resourceGroup, name string) (*Workspace, error)
	DeleteWorkspaceFunc func(ctx context.Context, resourceGroup, name string) error

	// Deployments
	DeployTemplateFunc func(ctx context.Context, resourceGroup, name string, template map[string]any) error

	// Lookups
	GetStorageAccountIDFunc   func(ctx context.Context, resourceGroup, name string) (string, error)
	GetResourcePropertiesFunc func(ctx context.Context, id, apiVersion string) (map[string]any, error)

	// Roles
	FindRoleDefinitionIDFunc func(ctx context.Context, scope, roleName string) (string, error)
	CreateRoleAssignmentFunc func(ctx context.Context, scope, name string, spec RoleAssignmentSpec) (string, error)
	FindRoleAssignmentsFunc  func(ctx context.Context, scope, principalID, roleDefinitionID string) ([]string, error)
	DeleteRoleAssignmentFunc func(ctx context.Context, scope, name string) error
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

func (m *MockClient) record(method, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, method+":"+name)
}

// CallLog returns a copy of the recorded calls.
func (m *MockClient) CallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Calls...)
}

func mockID(kind, name string) string {
	return fmt.Sprintf("/subscriptions/mock/resourceGroups/mock-rg/providers/%s/%s", kind, name)
}

// CreateResourceGroup mocks resource group creation.
func (m *MockClient) CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (string, error) {
	m.record("CreateResourceGroup", name)
	if m.CreateResourceGroupFunc != nil {
		return m.CreateResourceGroupFunc(ctx, name, location, tags)
	}
	return "/subscriptions/mock/resourceGroups/" + name, nil
}

// DeleteResourceGroup mocks resource group deletion.
func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	m.record("DeleteResourceGroup", name)
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// CreateSecurityGroup mocks security group creation.
func (m *MockClient) CreateSecurityGroup(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (string, error) {
	m.record("CreateSecurityGroup", name)
	if m.CreateSecurityGroupFunc != nil {
		return m.CreateSecurityGroupFunc(ctx, resourceGroup, name, location, tags)
	}
	return mockID("Microsoft.Network/networkSecurityGroups", name), nil
}

// DeleteSecurityGroup mocks security group deletion.
func (m *MockClient) DeleteSecurityGroup(ctx context.Context, resourceGroup, name string) error {
	m.record("DeleteSecurityGroup", name)
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, resourceGroup, name)
	}
	return nil
}

// CreateVirtualNetwork mocks virtual network creation.
func (m *MockClient) CreateVirtualNetwork(ctx context.Context, resourceGroup string, spec VirtualNetworkSpec) (*VirtualNetwork, error) {
	m.record("CreateVirtualNetwork", spec.Name)
	if m.CreateVirtualNetworkFunc != nil {
		return m.CreateVirtualNetworkFunc(ctx, resourceGroup, spec)
	}
	return mockVirtualNetwork(spec.Name, spec.Subnets), nil
}

// GetVirtualNetwork mocks virtual network lookup.
func (m *MockClient) GetVirtualNetwork(ctx context.Context, resourceGroup, name string) (*VirtualNetwork, error) {
	m.record("GetVirtualNetwork", name)
	if m.GetVirtualNetworkFunc != nil {
		return m.GetVirtualNetworkFunc(ctx, resourceGroup, name)
	}
	return mockVirtualNetwork(name, nil), nil
}

func mockVirtualNetwork(name string, subnets []SubnetSpec) *VirtualNetwork {
	id := mockID("Microsoft.Network/virtualNetworks", name)
	vnet := &VirtualNetwork{ID: id, Name: name, Subnets: map[string]string{}}
	for _, s := range subnets {
		vnet.Subnets[s.Name] = id + "/subnets/" + s.Name
	}
	return vnet
}

// DeleteVirtualNetwork mocks virtual network deletion.
func (m *MockClient) DeleteVirtualNetwork(ctx context.Context, resourceGroup, name string) error {
	m.record("DeleteVirtualNetwork", name)
	if m.DeleteVirtualNetworkFunc != nil {
		return m.DeleteVirtualNetworkFunc(ctx, resourceGroup, name)
	}
	return nil
}

// CreatePrivateEndpoint mocks private endpoint creation.
func (m *MockClient) CreatePrivateEndpoint(ctx context.Context, resourceGroup string, spec PrivateEndpointSpec) (string, error) {
	m.record("CreatePrivateEndpoint", spec.Name)
	if m.CreatePrivateEndpointFunc != nil {
		return m.CreatePrivateEndpointFunc(ctx, resourceGroup, spec)
	}
	return mockID("Microsoft.Network/privateEndpoints", spec.Name), nil
}

// DeletePrivateEndpoint mocks private endpoint deletion.
func (m *MockClient) DeletePrivateEndpoint(ctx context.Context, resourceGroup, name string) error {
	m.record("DeletePrivateEndpoint", name)
	if m.DeletePrivateEndpointFunc != nil {
		return m.DeletePrivateEndpointFunc(ctx, resourceGroup, name)
	}
	return nil
}

// DeletePrivateDNSZoneGroup mocks zone group deletion.
func (m *MockClient) DeletePrivateDNSZoneGroup(ctx context.Context, resourceGroup, endpoint, group string) error {
	m.record("DeletePrivateDNSZoneGroup", endpoint+"/"+group)
	if m.DeletePrivateDNSZoneGroupFunc != nil {
		return m.DeletePrivateDNSZoneGroupFunc(ctx, resourceGroup, endpoint, group)
	}
	return nil
}

// DeletePrivateDNSZone mocks private DNS zone deletion.
func (m *MockClient) DeletePrivateDNSZone(ctx context.Context, resourceGroup, zone string) error {
	m.record("DeletePrivateDNSZone", zone)
	if m.DeletePrivateDNSZoneFunc != nil {
		return m.DeletePrivateDNSZoneFunc(ctx, resourceGroup, zone)
	}
	return nil
}

// DeleteVirtualNetworkLink mocks DNS zone link deletion.
func (m *MockClient) DeleteVirtualNetworkLink(ctx context.Context, resourceGroup, zone, link string) error {
	m.record("DeleteVirtualNetworkLink", zone+"/"+link)
	if m.DeleteVirtualNetworkLinkFunc != nil {
		return m.DeleteVirtualNetworkLinkFunc(ctx, resourceGroup, zone, link)
	}
	return nil
}

// CreateWorkspace mocks workspace creation.
func (m *MockClient) CreateWorkspace(ctx context.Context, resourceGroup string, spec WorkspaceSpec) (*Workspace, error) {
	m.record("CreateWorkspace", spec.Name)
	if m.CreateWorkspaceFunc != nil {
		return m.CreateWorkspaceFunc(ctx, resourceGroup, spec)
	}
	return &Workspace{
		ID:                     mockID("Microsoft.Databricks/workspaces", spec.Name),
		Name:                   spec.Name,
		ManagedResourceGroupID: spec.ManagedResourceGroupID,
		URL:                    "https://adb-0000000000000000.0.azuredatabricks.net",
	}, nil
}

// GetWorkspace mocks workspace lookup.
func (m *MockClient) GetWorkspace(ctx context.Context, resourceGroup, name string) (*Workspace, error) {
	m.record("GetWorkspace", name)
	if m.GetWorkspaceFunc != nil {
		return m.GetWorkspaceFunc(ctx, resourceGroup, name)
	}
	return &Workspace{
		ID:                     mockID("Microsoft.Databricks/workspaces", name),
		Name:                   name,
		ManagedResourceGroupID: "/subscriptions/mock/resourceGroups/databricks-rg-" + name,
		URL:                    "https://adb-0000000000000000.0.azuredatabricks.net",
	}, nil
}

// DeleteWorkspace mocks workspace deletion.
func (m *MockClient) DeleteWorkspace(ctx context.Context, resourceGroup, name string) error {
	m.record("DeleteWorkspace", name)
	if m.DeleteWorkspaceFunc != nil {
		return m.DeleteWorkspaceFunc(ctx, resourceGroup, name)
	}
	return nil
}

// DeployTemplate mocks template deployments.
func (m *MockClient) DeployTemplate(ctx context.Context, resourceGroup, name string, template map[string]any) error {
	m.record("DeployTemplate", name)
	if m.DeployTemplateFunc != nil {
		return m.DeployTemplateFunc(ctx, resourceGroup, name, template)
	}
	return nil
}

// GetStorageAccountID mocks storage account lookup.
func (m *MockClient) GetStorageAccountID(ctx context.Context, resourceGroup, name string) (string, error) {
	m.record("GetStorageAccountID", name)
	if m.GetStorageAccountIDFunc != nil {
		return m.GetStorageAccountIDFunc(ctx, resourceGroup, name)
	}
	return mockID("Microsoft.Storage/storageAccounts", name), nil
}

// GetResourceProperties mocks generic resource lookup.
func (m *MockClient) GetResourceProperties(ctx context.Context, id, apiVersion string) (map[string]any, error) {
	m.record("GetResourceProperties", id)
	if m.GetResourcePropertiesFunc != nil {
		return m.GetResourcePropertiesFunc(ctx, id, apiVersion)
	}
	return map[string]any{
		"principalId": "00000000-0000-0000-0000-000000000001",
		"clientId":    "00000000-0000-0000-0000-000000000002",
	}, nil
}

// FindRoleDefinitionID mocks role definition lookup.
func (m *MockClient) FindRoleDefinitionID(ctx context.Context, scope, roleName string) (string, error) {
	m.record("FindRoleDefinitionID", roleName)
	if m.FindRoleDefinitionIDFunc != nil {
		return m.FindRoleDefinitionIDFunc(ctx, scope, roleName)
	}
	return scope + "/providers/Microsoft.Authorization/roleDefinitions/mock-role", nil
}

// CreateRoleAssignment mocks role assignment creation.
func (m *MockClient) CreateRoleAssignment(ctx context.Context, scope, name string, spec RoleAssignmentSpec) (string, error) {
	m.record("CreateRoleAssignment", name)
	if m.CreateRoleAssignmentFunc != nil {
		return m.CreateRoleAssignmentFunc(ctx, scope, name, spec)
	}
	return scope + "/providers/Microsoft.Authorization/roleAssignments/" + name, nil
}

// FindRoleAssignments mocks role assignment lookup. By default nothing is assigned.
func (m *MockClient) FindRoleAssignments(ctx context.Context, scope, principalID, roleDefinitionID string) ([]string, error) {
	m.record("FindRoleAssignments", principalID)
	if m.FindRoleAssignmentsFunc != nil {
		return m.FindRoleAssignmentsFunc(ctx, scope, principalID, roleDefinitionID)
	}
	return nil, nil
}

// DeleteRoleAssignment mocks role assignment deletion.
func (m *MockClient) DeleteRoleAssignment(ctx context.Context, scope, name string) error {
	m.record("DeleteRoleAssignment", name)
	if m.DeleteRoleAssignmentFunc != nil {
		return m.DeleteRoleAssignmentFunc(ctx, scope, name)
	}
	return nil
}
