package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/adbvnet/cmd/adbvnet/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes every resource the network pipeline creates,
// in reverse order of creation.
func Destroy(opts *handlers.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the workspace, virtual network and related resources",
		Long: `Delete every resource created by the network pipeline:
  - DNS zone group, zone link and private DNS zone
  - Workspace private endpoint
  - Databricks workspace
  - Virtual network
  - Network security group
  - Resource group (unless rollback.deleteResourceGroup is false)

Every delete is attempted even when an earlier one fails.

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), *opts, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
