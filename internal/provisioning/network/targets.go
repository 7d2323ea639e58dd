package network

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Targets maps each step to the resource ID it creates.
func Targets(cfg *config.Config) map[string]string {
	sub, rg := cfg.SubscriptionID, cfg.ResourceGroup
	ws := cfg.Workspace
	return map[string]string{
		StepResourceGroup:   naming.ResourceGroup(sub, rg),
		StepSecurityGroup:   naming.SecurityGroup(sub, rg, cfg.Network.SecurityGroup),
		StepVirtualNetwork:  naming.VirtualNetwork(sub, rg, cfg.Network.Name),
		StepWorkspace:       naming.Workspace(sub, rg, ws.Name),
		StepPrivateEndpoint: naming.PrivateEndpoint(sub, rg, ws.PrivateEndpoint.Name),
		StepDNSZone:         naming.PrivateDNSZone(sub, rg, ws.PrivateDNSZone),
		StepDNSZoneGroup:    naming.PrivateDNSZoneGroup(sub, rg, ws.PrivateEndpoint.Name),
	}
}
