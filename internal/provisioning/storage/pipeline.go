package storage

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/connectivity"
)

// PipelineName identifies the storage pipeline in logs and metrics.
const PipelineName = "storage"

// Step names, in execution order.
const (
	StepStorageAccount  = "storage-account"
	StepVirtualNetwork  = "virtual-network-lookup"
	StepPrivateEndpoint = "storage-private-endpoint"
	StepDNSZone         = "storage-dns-zone"
	StepDNSZoneGroup    = "storage-dns-zone-group"
	StepManagedIdentity = "managed-identity"
	StepRoleDefinition  = "role-definition"
	StepRoleAssignment  = "role-assignment"
)

// NewPipeline returns the storage pipeline for cfg.
func NewPipeline(cfg *config.Config) *provisioning.Pipeline {
	s := cfg.Storage
	return provisioning.NewPipeline(PipelineName, false,
		&storageAccountStep{},
		&virtualNetworkLookupStep{},
		&connectivity.PrivateEndpointStep{
			StepName: StepPrivateEndpoint,
			Endpoint: s.PrivateEndpoint,
			Subnet:   connectivity.LookupSubnet(cfg.Network.PrivateLinkSubnet),
			Target:   storageAccountID,
		},
		&connectivity.DNSZoneStep{
			StepName: StepDNSZone,
			Zone:     s.PrivateDNSZone,
			Network:  connectivity.VirtualNetworkID,
		},
		&connectivity.ZoneGroupStep{
			StepName:   StepDNSZoneGroup,
			Endpoint:   s.PrivateEndpoint.Name,
			ConfigName: s.PrivateEndpoint.ZoneConfigName,
			Zone:       s.PrivateDNSZone,
		},
		&managedIdentityStep{},
		&roleDefinitionStep{},
		&roleAssignmentStep{},
	)
}
