package endpoint

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Targets maps each step to the resource ID it creates.
func Targets(cfg *config.Config) map[string]string {
	sub, rg := cfg.SubscriptionID, cfg.ResourceGroup
	return map[string]string{
		StepPrivateEndpoint: naming.PrivateEndpoint(sub, rg, cfg.Endpoint.Name),
		StepDNSZoneGroup:    naming.PrivateDNSZoneGroup(sub, rg, cfg.Endpoint.Name),
	}
}
