package connectivity

import (
	"fmt"

	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Resolve returns a resource ID needed by a step.
type Resolve func(ctx *provisioning.Context) (string, error)

// Static returns a resolver for a fixed ID.
func Static(id string) Resolve {
	return func(*provisioning.Context) (string, error) {
		if id == "" {
			return "", fmt.Errorf("resource ID is empty")
		}
		return id, nil
	}
}

// LookupSubnet resolves a subnet ID from the virtual network recorded in
// State, fetching and caching the network when no earlier step recorded it.
func LookupSubnet(subnet string) Resolve {
	return func(ctx *provisioning.Context) (string, error) {
		if ctx.State.VirtualNetwork == nil {
			vnet, err := ctx.Cloud.GetVirtualNetwork(ctx, ctx.Config.ResourceGroup, ctx.Config.Network.Name)
			if err != nil {
				return "", fmt.Errorf("failed to get virtual network %s: %w", ctx.Config.Network.Name, err)
			}
			ctx.State.VirtualNetwork = vnet
		}

		id := ctx.State.VirtualNetwork.SubnetID(subnet)
		if id == "" {
			return "", fmt.Errorf("subnet %s not found in virtual network %s", subnet, ctx.Config.Network.Name)
		}
		return id, nil
	}
}

// FormattedSubnet resolves a subnet ID from configuration names without any
// remote call.
func FormattedSubnet(subnet string) Resolve {
	return func(ctx *provisioning.Context) (string, error) {
		cfg := ctx.Config
		return naming.Subnet(naming.VirtualNetwork(cfg.SubscriptionID, cfg.ResourceGroup, cfg.Network.Name), subnet), nil
	}
}

// VirtualNetworkID resolves the virtual network ID from State, falling back
// to the ID formatted from configuration.
func VirtualNetworkID(ctx *provisioning.Context) (string, error) {
	if id := ctx.State.VirtualNetworkID(); id != "" {
		return id, nil
	}
	cfg := ctx.Config
	return naming.VirtualNetwork(cfg.SubscriptionID, cfg.ResourceGroup, cfg.Network.Name), nil
}
