package network

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/connectivity"
)

// PipelineName identifies the network pipeline in logs and metrics.
const PipelineName = "network"

// Step names, in execution order.
const (
	StepResourceGroup   = "resource-group"
	StepSecurityGroup   = "security-group"
	StepVirtualNetwork  = "virtual-network"
	StepWorkspace       = "workspace"
	StepPrivateEndpoint = "workspace-private-endpoint"
	StepDNSZone         = "workspace-dns-zone"
	StepDNSZoneGroup    = "workspace-dns-zone-group"
)

// NewPipeline returns the network pipeline for cfg.
func NewPipeline(cfg *config.Config) *provisioning.Pipeline {
	ws := cfg.Workspace
	return provisioning.NewPipeline(PipelineName, true,
		&resourceGroupStep{},
		&securityGroupStep{},
		&virtualNetworkStep{},
		&workspaceStep{},
		&connectivity.PrivateEndpointStep{
			StepName: StepPrivateEndpoint,
			Endpoint: ws.PrivateEndpoint,
			Subnet:   connectivity.LookupSubnet(cfg.Network.PrivateLinkSubnet),
			Target:   workspaceID,
		},
		&connectivity.DNSZoneStep{
			StepName: StepDNSZone,
			Zone:     ws.PrivateDNSZone,
			Network:  connectivity.VirtualNetworkID,
		},
		&connectivity.ZoneGroupStep{
			StepName:   StepDNSZoneGroup,
			Endpoint:   ws.PrivateEndpoint.Name,
			ConfigName: ws.PrivateEndpoint.ZoneConfigName,
			Zone:       ws.PrivateDNSZone,
		},
	)
}
