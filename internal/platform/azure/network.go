package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"

	"github.com/imamik/adbvnet/internal/util/labels"
)

// CreateSecurityGroup creates or updates an empty network security group and returns its ID.
func (c *RealClient) CreateSecurityGroup(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (string, error) {
	resp, err := (&CreateOperation[armnetwork.SecurityGroupsClientCreateOrUpdateResponse]{
		Name:         name,
		ResourceType: "network security group",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.SecurityGroupsClientCreateOrUpdateResponse], error) {
			return c.securityGroups.BeginCreateOrUpdate(ctx, resourceGroup, name, armnetwork.SecurityGroup{
				Location: to.Ptr(location),
				Tags:     labels.ToAzure(tags),
			}, nil)
		},
	}).Execute(ctx)
	if err != nil {
		return "", err
	}
	return deref(resp.ID), nil
}

// DeleteSecurityGroup deletes the network security group.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, resourceGroup, name string) error {
	return (&DeleteOperation[armnetwork.SecurityGroupsClientDeleteResponse]{
		Name:         name,
		ResourceType: "network security group",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.SecurityGroupsClientDeleteResponse], error) {
			return c.securityGroups.BeginDelete(ctx, resourceGroup, name, nil)
		},
	}).Execute(ctx)
}

// CreateVirtualNetwork creates or updates the virtual network with all subnets.
func (c *RealClient) CreateVirtualNetwork(ctx context.Context, resourceGroup string, spec VirtualNetworkSpec) (*VirtualNetwork, error) {
	resp, err := (&CreateOperation[armnetwork.VirtualNetworksClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "virtual network",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientCreateOrUpdateResponse], error) {
			return c.virtualNetworks.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, buildVirtualNetwork(spec), nil)
		},
	}).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return toVirtualNetwork(resp.VirtualNetwork), nil
}

// GetVirtualNetwork returns the virtual network with its subnet IDs.
func (c *RealClient) GetVirtualNetwork(ctx context.Context, resourceGroup, name string) (*VirtualNetwork, error) {
	resp, err := c.virtualNetworks.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get virtual network %s: %w", name, err)
	}
	return toVirtualNetwork(resp.VirtualNetwork), nil
}

// DeleteVirtualNetwork deletes the virtual network and its subnets.
func (c *RealClient) DeleteVirtualNetwork(ctx context.Context, resourceGroup, name string) error {
	return (&DeleteOperation[armnetwork.VirtualNetworksClientDeleteResponse]{
		Name:         name,
		ResourceType: "virtual network",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientDeleteResponse], error) {
			return c.virtualNetworks.BeginDelete(ctx, resourceGroup, name, nil)
		},
	}).Execute(ctx)
}

// buildVirtualNetwork maps a spec onto the SDK model.
func buildVirtualNetwork(spec VirtualNetworkSpec) armnetwork.VirtualNetwork {
	subnets := make([]*armnetwork.Subnet, 0, len(spec.Subnets))
	for _, s := range spec.Subnets {
		props := &armnetwork.SubnetPropertiesFormat{
			AddressPrefix: to.Ptr(s.AddressPrefix),
		}
		if spec.SecurityGroupID != "" {
			props.NetworkSecurityGroup = &armnetwork.SecurityGroup{ID: to.Ptr(spec.SecurityGroupID)}
		}
		if s.Delegation != "" {
			props.Delegations = []*armnetwork.Delegation{{
				Name: to.Ptr(s.Name + "-delegation"),
				Properties: &armnetwork.ServiceDelegationPropertiesFormat{
					ServiceName: to.Ptr(s.Delegation),
				},
			}}
		}
		if s.PrivateEndpointNetworkPolicies != "" {
			props.PrivateEndpointNetworkPolicies = to.Ptr(armnetwork.VirtualNetworkPrivateEndpointNetworkPolicies(s.PrivateEndpointNetworkPolicies))
		}
		if s.PrivateLinkServiceNetworkPolicies != "" {
			props.PrivateLinkServiceNetworkPolicies = to.Ptr(armnetwork.VirtualNetworkPrivateLinkServiceNetworkPolicies(s.PrivateLinkServiceNetworkPolicies))
		}
		subnets = append(subnets, &armnetwork.Subnet{Name: to.Ptr(s.Name), Properties: props})
	}

	return armnetwork.VirtualNetwork{
		Location: to.Ptr(spec.Location),
		Tags:     labels.ToAzure(spec.Tags),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{AddressPrefixes: to.SliceOfPtrs(spec.AddressSpace...)},
			Subnets:      subnets,
		},
	}
}

func toVirtualNetwork(v armnetwork.VirtualNetwork) *VirtualNetwork {
	out := &VirtualNetwork{
		ID:      deref(v.ID),
		Name:    deref(v.Name),
		Subnets: map[string]string{},
	}
	if v.Properties == nil {
		return out
	}
	for _, s := range v.Properties.Subnets {
		if s == nil || s.Name == nil {
			continue
		}
		out.Subnets[*s.Name] = deref(s.ID)
	}
	return out
}
