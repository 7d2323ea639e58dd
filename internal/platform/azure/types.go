package azure

// SubnetSpec describes a subnet created together with its virtual network.
type SubnetSpec struct {
	Name          string
	AddressPrefix string
	// Delegation is a service name, e.g. Microsoft.Databricks/workspaces.
	Delegation                        string
	PrivateEndpointNetworkPolicies    string
	PrivateLinkServiceNetworkPolicies string
}

// VirtualNetworkSpec holds all parameters for creating a virtual network.
type VirtualNetworkSpec struct {
	Name         string
	Location     string
	AddressSpace []string
	Subnets      []SubnetSpec
	// SecurityGroupID is attached to every subnet when set.
	SecurityGroupID string
	Tags            map[string]string
}

// VirtualNetwork is the provisioned state of a virtual network.
type VirtualNetwork struct {
	ID   string
	Name string
	// Subnets maps subnet name to subnet resource ID.
	Subnets map[string]string
}

// SubnetID returns the ID of the named subnet, or "" if it does not exist.
func (v *VirtualNetwork) SubnetID(name string) string {
	if v == nil {
		return ""
	}
	return v.Subnets[name]
}

// PrivateEndpointSpec holds all parameters for creating a private endpoint.
type PrivateEndpointSpec struct {
	Name             string
	Location         string
	SubnetID         string
	TargetResourceID string
	ConnectionName   string
	GroupIDs         []string
	Tags             map[string]string
}

// WorkspaceSpec holds all parameters for creating a VNet-injected workspace.
type WorkspaceSpec struct {
	Name                   string
	Location               string
	SKU                    string
	ManagedResourceGroupID string
	VirtualNetworkID       string
	PublicSubnet           string
	PrivateSubnet          string
	NoPublicIP             bool
	Tags                   map[string]string
}

// Workspace is the provisioned state of a Databricks workspace.
type Workspace struct {
	ID                     string
	Name                   string
	ManagedResourceGroupID string
	URL                    string
}

// PrincipalTypeServicePrincipal is the principal type of managed identities.
const PrincipalTypeServicePrincipal = "ServicePrincipal"

// RoleAssignmentSpec holds the parameters of a role assignment.
type RoleAssignmentSpec struct {
	PrincipalID      string
	RoleDefinitionID string
	PrincipalType    string
}
