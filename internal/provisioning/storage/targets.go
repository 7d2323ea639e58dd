package storage

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Targets maps each step to the resource ID it reads or creates. The
// managed identity assumes the configured managed resource group name, and
// the role assignment name is only known once it is created.
func Targets(cfg *config.Config) map[string]string {
	sub, rg := cfg.SubscriptionID, cfg.ResourceGroup
	s := cfg.Storage
	account := naming.StorageAccount(sub, cfg.StorageResourceGroup(), s.AccountName)
	return map[string]string{
		StepStorageAccount:  account,
		StepVirtualNetwork:  naming.VirtualNetwork(sub, rg, cfg.Network.Name),
		StepPrivateEndpoint: naming.PrivateEndpoint(sub, rg, s.PrivateEndpoint.Name),
		StepDNSZone:         naming.PrivateDNSZone(sub, rg, s.PrivateDNSZone),
		StepDNSZoneGroup:    naming.PrivateDNSZoneGroup(sub, rg, s.PrivateEndpoint.Name),
		StepManagedIdentity: naming.UserAssignedIdentity(sub, cfg.Workspace.ManagedResourceGroupName(), cfg.Identity.Name),
		StepRoleDefinition:  naming.Subscription(sub) + " (" + s.RoleName + ")",
		StepRoleAssignment:  account,
	}
}
