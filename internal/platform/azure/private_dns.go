package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"
)

// DeletePrivateDNSZone deletes a private DNS zone. Its virtual network links
// must be removed first.
func (c *RealClient) DeletePrivateDNSZone(ctx context.Context, resourceGroup, zone string) error {
	return (&DeleteOperation[armprivatedns.PrivateZonesClientDeleteResponse]{
		Name:         zone,
		ResourceType: "private DNS zone",
		Begin: func(ctx context.Context) (*runtime.Poller[armprivatedns.PrivateZonesClientDeleteResponse], error) {
			return c.privateZones.BeginDelete(ctx, resourceGroup, zone, nil)
		},
	}).Execute(ctx)
}

// DeleteVirtualNetworkLink removes the link between a private DNS zone and a virtual network.
func (c *RealClient) DeleteVirtualNetworkLink(ctx context.Context, resourceGroup, zone, link string) error {
	return (&DeleteOperation[armprivatedns.VirtualNetworkLinksClientDeleteResponse]{
		Name:         zone + "/" + link,
		ResourceType: "virtual network link",
		Begin: func(ctx context.Context) (*runtime.Poller[armprivatedns.VirtualNetworkLinksClientDeleteResponse], error) {
			return c.zoneLinks.BeginDelete(ctx, resourceGroup, zone, link, nil)
		},
	}).Execute(ctx)
}
