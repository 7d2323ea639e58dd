package config

import "fmt"

// DefaultSubnets lays out the four standard subnets of an injected workspace
// network as consecutive blocks carved from addressSpace: a general purpose
// "default" subnet, the delegated public and private workspace subnets, and
// the private link subnet that hosts private endpoints.
func DefaultSubnets(addressSpace, publicSubnet, privateSubnet, privateLinkSubnet string) ([]SubnetConfig, error) {
	names := []string{"default", publicSubnet, privateSubnet, privateLinkSubnet}
	subnets := make([]SubnetConfig, 0, len(names))

	for i, name := range names {
		prefix, err := CIDRSubnet(addressSpace, DefaultSubnetPrefixBits, i)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate subnet %s: %w", name, err)
		}
		subnets = append(subnets, SubnetConfig{Name: name, AddressPrefix: prefix})
	}

	subnets[1].Delegation = DefaultDelegationService
	subnets[2].Delegation = DefaultDelegationService
	subnets[3].PrivateEndpointNetworkPolicies = PolicyDisabled
	subnets[3].PrivateLinkServiceNetworkPolicies = PolicyEnabled

	return subnets, nil
}
