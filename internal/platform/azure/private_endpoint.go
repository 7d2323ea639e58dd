package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"

	"github.com/imamik/adbvnet/internal/util/labels"
)

// CreatePrivateEndpoint creates or updates a private endpoint with a single
// private link service connection and returns its ID.
func (c *RealClient) CreatePrivateEndpoint(ctx context.Context, resourceGroup string, spec PrivateEndpointSpec) (string, error) {
	resp, err := (&CreateOperation[armnetwork.PrivateEndpointsClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "private endpoint",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.PrivateEndpointsClientCreateOrUpdateResponse], error) {
			return c.endpoints.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, buildPrivateEndpoint(spec), nil)
		},
	}).Execute(ctx)
	if err != nil {
		return "", err
	}
	return deref(resp.ID), nil
}

// DeletePrivateEndpoint deletes the private endpoint.
func (c *RealClient) DeletePrivateEndpoint(ctx context.Context, resourceGroup, name string) error {
	return (&DeleteOperation[armnetwork.PrivateEndpointsClientDeleteResponse]{
		Name:         name,
		ResourceType: "private endpoint",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.PrivateEndpointsClientDeleteResponse], error) {
			return c.endpoints.BeginDelete(ctx, resourceGroup, name, nil)
		},
	}).Execute(ctx)
}

// DeletePrivateDNSZoneGroup detaches a DNS zone group from a private endpoint.
func (c *RealClient) DeletePrivateDNSZoneGroup(ctx context.Context, resourceGroup, endpoint, group string) error {
	return (&DeleteOperation[armnetwork.PrivateDNSZoneGroupsClientDeleteResponse]{
		Name:         endpoint + "/" + group,
		ResourceType: "private DNS zone group",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.PrivateDNSZoneGroupsClientDeleteResponse], error) {
			return c.zoneGroups.BeginDelete(ctx, resourceGroup, endpoint, group, nil)
		},
	}).Execute(ctx)
}

func buildPrivateEndpoint(spec PrivateEndpointSpec) armnetwork.PrivateEndpoint {
	return armnetwork.PrivateEndpoint{
		Location: to.Ptr(spec.Location),
		Tags:     labels.ToAzure(spec.Tags),
		Properties: &armnetwork.PrivateEndpointProperties{
			Subnet: &armnetwork.Subnet{ID: to.Ptr(spec.SubnetID)},
			PrivateLinkServiceConnections: []*armnetwork.PrivateLinkServiceConnection{{
				Name: to.Ptr(spec.ConnectionName),
				Properties: &armnetwork.PrivateLinkServiceConnectionProperties{
					PrivateLinkServiceID: to.Ptr(spec.TargetResourceID),
					GroupIDs:             to.SliceOfPtrs(spec.GroupIDs...),
				},
			}},
		},
	}
}
