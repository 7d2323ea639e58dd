// Package azure wraps the Azure Resource Manager SDK clients used to
// provision a VNet-injected Databricks workspace.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: Manager interfaces consumed by provisioning steps
//   - real_client.go: SDK client construction and credential handling
//   - resource_group.go: Resource group create and delete
//   - network.go: Network security groups and virtual networks
//   - private_endpoint.go: Private endpoints and their DNS zone groups
//   - private_dns.go: Private DNS zone and virtual network link deletion
//   - workspace.go: Databricks workspace lifecycle
//   - deployment.go: ARM template deployments
//   - resource.go: Generic get-by-ID lookups
//   - role.go: Role definition lookup and role assignments
//   - storage.go: Storage account lookup
//   - errors.go: Error classification
//
// Every long-running operation blocks on the SDK poller until the resource
// reaches a terminal state. Nothing is retried: the first error is returned
// to the caller, which decides whether to roll back.
//
// # Example Usage
//
//	cred, err := azure.NewCredential(tenantID)
//	client, err := azure.NewRealClient(subscriptionID, cred, azure.WithClientOptions(azure.NoRetryOptions()))
//
//	vnet, err := client.CreateVirtualNetwork(ctx, "my-rg", azure.VirtualNetworkSpec{
//	    Name:         "my-vnet",
//	    Location:     "uksouth",
//	    AddressSpace: []string{"10.0.0.0/16"},
//	})
package azure
