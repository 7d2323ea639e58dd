package naming

import (
	"fmt"
	"strings"
)

// Deployment names used for the ARM template deployments.
const (
	PrivateDNSZoneDeployment      = "PrivateDnsZoneDeployment"
	PrivateDNSZoneGroupDeployment = "PrivateDnsZoneGroupDeployment"
)

// DefaultZoneGroup is the zone group name attached to every private endpoint.
const DefaultZoneGroup = "default"

func Subscription(sub string) string {
	return "/subscriptions/" + sub
}

func ResourceGroup(sub, rg string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", sub, rg)
}

func provider(sub, rg, namespace, name string) string {
	return fmt.Sprintf("%s/providers/%s/%s", ResourceGroup(sub, rg), namespace, name)
}

func SecurityGroup(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.Network/networkSecurityGroups", name)
}

func VirtualNetwork(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.Network/virtualNetworks", name)
}

// Subnet appends a subnet name to a virtual network ID.
func Subnet(vnetID, name string) string {
	return strings.TrimSuffix(vnetID, "/") + "/subnets/" + name
}

func PrivateEndpoint(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.Network/privateEndpoints", name)
}

// PrivateDNSZoneGroup returns the ID of an endpoint's default zone group.
func PrivateDNSZoneGroup(sub, rg, endpoint string) string {
	return PrivateEndpoint(sub, rg, endpoint) + "/privateDnsZoneGroups/" + DefaultZoneGroup
}

func PrivateDNSZone(sub, rg, zone string) string {
	return provider(sub, rg, "Microsoft.Network/privateDnsZones", zone)
}

func Workspace(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.Databricks/workspaces", name)
}

func StorageAccount(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.Storage/storageAccounts", name)
}

// UserAssignedIdentity returns the ID of a user-assigned managed identity.
func UserAssignedIdentity(sub, rg, name string) string {
	return provider(sub, rg, "Microsoft.ManagedIdentity/userAssignedIdentities", name)
}

// DNSZoneLink returns the virtual network link name for a private DNS zone.
func DNSZoneLink(zone string) string {
	return zone + "-link"
}

// LastSegment returns the final "/"-separated segment of a resource ID,
// ignoring a trailing slash. It returns "" when id has no segments.
func LastSegment(id string) string {
	id = strings.TrimRight(id, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
