package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/adbvnet/cmd/adbvnet/handlers"
)

// Network returns the network command.
//
// The network command creates the resource group, network security group,
// virtual network, workspace, and the workspace's private endpoint and DNS
// zone. A failure rolls back everything created before it.
func Network(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Provision the virtual network and VNet-injected workspace",
		Long: `Provision the virtual network and a VNet-injected Databricks workspace.

Steps run in order:
  1. Resource group
  2. Network security group
  3. Virtual network with delegated subnets
  4. Databricks workspace
  5. Workspace private endpoint
  6. Private DNS zone linked to the virtual network
  7. DNS zone group on the private endpoint

If a step fails, the resources created by earlier steps are deleted in
reverse order. Set rollback.deleteResourceGroup to false to keep the
resource group.

Example:
  adbvnet network -c adbvnet.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Network(cmd.Context(), *opts)
		},
	}
}

// Storage returns the storage command.
func Storage(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Connect an ADLS Gen2 storage account to the workspace",
		Long: `Connect an existing ADLS Gen2 storage account to the workspace.

Creates a private endpoint for the storage account on the private-link
subnet, its DNS zone and zone group, then grants the workspace-managed
identity the configured role on the account.

The storage account, virtual network and workspace must already exist.
Nothing is rolled back on failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Storage(cmd.Context(), *opts)
		},
	}
}

// Endpoint returns the endpoint command.
func Endpoint(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint",
		Short: "Create a private endpoint to a workspace in another deployment",
		Long: `Create a private endpoint from the local private-link subnet to the
workspace named by endpoint.targetResourceId, and register it in the
workspace private DNS zone.

Nothing is rolled back on failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Endpoint(cmd.Context(), *opts)
		},
	}
}

// Job returns the job command.
func Job(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "job",
		Short: "Create a cluster and submit the Spark JAR job",
		Long: `Create a Databricks cluster configured for managed-identity access to
the JAR storage account, create the Spark JAR job on it and trigger a run.

The first failing call stops the submission.

Environment variables:
  DATABRICKS_WORKSPACE_URL  Workspace URL when jobs.workspaceUrl is empty
  AZURE_TENANT_ID           Tenant when tenantId is empty`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Job(cmd.Context(), *opts)
		},
	}
}
