package connectivity

import (
	"errors"
	"fmt"

	"github.com/imamik/adbvnet/internal/armtemplate"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/util/naming"
)

const (
	resourceDNSZone      = "private-dns-zone"
	resourceDNSZoneGroup = "private-dns-zone-group"
)

// DNSZoneStep deploys a private DNS zone linked to the virtual network.
type DNSZoneStep struct {
	StepName string
	Zone     string
	Network  Resolve
}

// Name implements provisioning.Step.
func (s *DNSZoneStep) Name() string { return s.StepName }

// Provision implements provisioning.Step.
func (s *DNSZoneStep) Provision(ctx *provisioning.Context) error {
	vnetID, err := s.Network(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve virtual network for zone %s: %w", s.Zone, err)
	}

	cfg := ctx.Config
	provisioning.LogResourceCreating(ctx.Observer, s.StepName, resourceDNSZone, s.Zone)
	tmpl := armtemplate.PrivateDNSZone(s.Zone, vnetID)
	if err := ctx.Cloud.DeployTemplate(ctx, cfg.ResourceGroup, naming.PrivateDNSZoneDeployment, tmpl); err != nil {
		return fmt.Errorf("failed to deploy private DNS zone %s: %w", s.Zone, err)
	}

	id := naming.PrivateDNSZone(cfg.SubscriptionID, cfg.ResourceGroup, s.Zone)
	ctx.State.DNSZones[s.Zone] = id
	provisioning.LogResourceCreated(ctx.Observer, s.StepName, resourceDNSZone, s.Zone, id)
	return nil
}

// Revert removes the virtual network link, then the zone. The zone delete is
// attempted even when the link delete fails.
func (s *DNSZoneStep) Revert(ctx *provisioning.Context) error {
	rg := ctx.Config.ResourceGroup
	link := naming.DNSZoneLink(s.Zone)
	provisioning.LogResourceDeleting(ctx.Observer, s.StepName, resourceDNSZone, s.Zone)

	var errs []error
	if err := ctx.Cloud.DeleteVirtualNetworkLink(ctx, rg, s.Zone, link); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete zone link %s: %w", link, err))
	}
	if err := ctx.Cloud.DeletePrivateDNSZone(ctx, rg, s.Zone); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete private DNS zone %s: %w", s.Zone, err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	delete(ctx.State.DNSZones, s.Zone)
	provisioning.LogResourceDeleted(ctx.Observer, s.StepName, resourceDNSZone, s.Zone)
	return nil
}

// ZoneGroupStep binds a private endpoint to a private DNS zone.
type ZoneGroupStep struct {
	StepName string
	Endpoint string
	// ConfigName names the zone config entry inside the group.
	ConfigName string
	Zone       string
}

// Name implements provisioning.Step.
func (s *ZoneGroupStep) Name() string { return s.StepName }

// Provision implements provisioning.Step.
func (s *ZoneGroupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	zoneID := ctx.State.DNSZones[s.Zone]
	if zoneID == "" {
		zoneID = naming.PrivateDNSZone(cfg.SubscriptionID, cfg.ResourceGroup, s.Zone)
	}

	name := s.Endpoint + "/" + naming.DefaultZoneGroup
	provisioning.LogResourceCreating(ctx.Observer, s.StepName, resourceDNSZoneGroup, name)
	tmpl := armtemplate.PrivateDNSZoneGroup(s.Endpoint, s.ConfigName, zoneID)
	if err := ctx.Cloud.DeployTemplate(ctx, cfg.ResourceGroup, naming.PrivateDNSZoneGroupDeployment, tmpl); err != nil {
		return fmt.Errorf("failed to deploy DNS zone group for %s: %w", s.Endpoint, err)
	}

	provisioning.LogResourceCreated(ctx.Observer, s.StepName, resourceDNSZoneGroup, name, zoneID)
	return nil
}

// Revert implements provisioning.Reverter.
func (s *ZoneGroupStep) Revert(ctx *provisioning.Context) error {
	name := s.Endpoint + "/" + naming.DefaultZoneGroup
	provisioning.LogResourceDeleting(ctx.Observer, s.StepName, resourceDNSZoneGroup, name)
	if err := ctx.Cloud.DeletePrivateDNSZoneGroup(ctx, ctx.Config.ResourceGroup, s.Endpoint, naming.DefaultZoneGroup); err != nil {
		return fmt.Errorf("failed to delete DNS zone group %s: %w", name, err)
	}
	provisioning.LogResourceDeleted(ctx.Observer, s.StepName, resourceDNSZoneGroup, name)
	return nil
}
