package endpoint

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/connectivity"
)

// PipelineName identifies the endpoint pipeline in logs and metrics.
const PipelineName = "endpoint"

// Step names, in execution order.
const (
	StepPrivateEndpoint = "private-endpoint"
	StepDNSZoneGroup    = "dns-zone-group"
)

// NewPipeline returns the endpoint pipeline for cfg.
func NewPipeline(cfg *config.Config) *provisioning.Pipeline {
	e := cfg.Endpoint
	return provisioning.NewPipeline(PipelineName, false,
		&connectivity.PrivateEndpointStep{
			StepName: StepPrivateEndpoint,
			Endpoint: config.PrivateEndpointConfig{
				Name:           e.Name,
				ConnectionName: e.ConnectionName,
				GroupIDs:       e.GroupIDs,
			},
			Subnet: connectivity.FormattedSubnet(cfg.Network.PrivateLinkSubnet),
			Target: connectivity.Static(e.TargetResourceID),
		},
		// The zone config entry is named after the zone itself.
		&connectivity.ZoneGroupStep{
			StepName:   StepDNSZoneGroup,
			Endpoint:   e.Name,
			ConfigName: e.PrivateDNSZone,
			Zone:       e.PrivateDNSZone,
		},
	)
}
