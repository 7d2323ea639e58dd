package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/databricks/armdatabricks"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

// RealClient implements Client using the Azure Resource Manager SDK.
type RealClient struct {
	clientOptions *arm.ClientOptions

	groups          *armresources.ResourceGroupsClient
	resources       *armresources.Client
	deployments     *armresources.DeploymentsClient
	securityGroups  *armnetwork.SecurityGroupsClient
	virtualNetworks *armnetwork.VirtualNetworksClient
	endpoints       *armnetwork.PrivateEndpointsClient
	zoneGroups      *armnetwork.PrivateDNSZoneGroupsClient
	privateZones    *armprivatedns.PrivateZonesClient
	zoneLinks       *armprivatedns.VirtualNetworkLinksClient
	workspaces      *armdatabricks.WorkspacesClient
	accounts        *armstorage.AccountsClient
	roleDefinitions *armauthorization.RoleDefinitionsClient
	roleAssignments *armauthorization.RoleAssignmentsClient
}

var _ Client = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithClientOptions sets the ARM client options (transport, retry policy,
// cloud) for every SDK client.
func WithClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.clientOptions = opts
	}
}

// NoRetryOptions returns ARM client options that make a single attempt per
// request. Failed calls surface immediately instead of being retried by the
// SDK pipeline.
func NoRetryOptions() *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	}
}

// NewCredential returns the default Azure credential chain (environment,
// workload identity, managed identity, Azure CLI), pinned to tenantID when set.
func NewCredential(tenantID string) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		TenantID: tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	return cred, nil
}

// NewRealClient creates every SDK client for subscriptionID.
func NewRealClient(subscriptionID string, cred azcore.TokenCredential, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	o := c.clientOptions
	if c.groups, err = armresources.NewResourceGroupsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("resource groups", err)
	}
	if c.resources, err = armresources.NewClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("resources", err)
	}
	if c.deployments, err = armresources.NewDeploymentsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("deployments", err)
	}
	if c.securityGroups, err = armnetwork.NewSecurityGroupsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("security groups", err)
	}
	if c.virtualNetworks, err = armnetwork.NewVirtualNetworksClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("virtual networks", err)
	}
	if c.endpoints, err = armnetwork.NewPrivateEndpointsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("private endpoints", err)
	}
	if c.zoneGroups, err = armnetwork.NewPrivateDNSZoneGroupsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("private DNS zone groups", err)
	}
	if c.privateZones, err = armprivatedns.NewPrivateZonesClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("private DNS zones", err)
	}
	if c.zoneLinks, err = armprivatedns.NewVirtualNetworkLinksClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("virtual network links", err)
	}
	if c.workspaces, err = armdatabricks.NewWorkspacesClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("workspaces", err)
	}
	if c.accounts, err = armstorage.NewAccountsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("storage accounts", err)
	}
	if c.roleDefinitions, err = armauthorization.NewRoleDefinitionsClient(cred, o); err != nil {
		return nil, clientErr("role definitions", err)
	}
	if c.roleAssignments, err = armauthorization.NewRoleAssignmentsClient(subscriptionID, cred, o); err != nil {
		return nil, clientErr("role assignments", err)
	}

	return c, nil
}

func clientErr(kind string, err error) error {
	return fmt.Errorf("failed to create %s client: %w", kind, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
