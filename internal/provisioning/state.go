package provisioning

import "github.com/imamik/adbvnet/internal/platform/azure"

// State holds the identifiers produced by provisioning steps.
// It is progressively populated as each step completes and is passed
// to subsequent steps that need earlier results.
type State struct {
	// Network results
	ResourceGroupID string
	SecurityGroupID string
	VirtualNetwork  *azure.VirtualNetwork

	// Workspace results
	Workspace *azure.Workspace

	// Private connectivity results
	PrivateEndpoints map[string]string // endpoint name -> ID
	DNSZones         map[string]string // zone name -> ID

	// Storage results
	StorageAccountID   string
	PrincipalID        string
	RoleDefinitionID   string
	RoleAssignmentName string
	RoleAssignmentID   string

	// Job submission results
	ClientID     string
	WorkspaceURL string
	ClusterID    string
	JobID        int64
	RunID        int64
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		PrivateEndpoints: make(map[string]string),
		DNSZones:         make(map[string]string),
	}
}

// VirtualNetworkID returns the ID of the provisioned virtual network, or "".
func (s *State) VirtualNetworkID() string {
	if s.VirtualNetwork == nil {
		return ""
	}
	return s.VirtualNetwork.ID
}

// WorkspaceID returns the ID of the provisioned workspace, or "".
func (s *State) WorkspaceID() string {
	if s.Workspace == nil {
		return ""
	}
	return s.Workspace.ID
}
