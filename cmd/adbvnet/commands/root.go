// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/adbvnet/cmd/adbvnet/handlers"
)

// Root returns the root command for the adbvnet CLI.
//
// Global flags are bound to a single handlers.Options value shared by every
// subcommand.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:           "adbvnet",
		Short:         "Provision VNet-injected Azure Databricks workspaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: adbvnet.yaml)")
	cmd.PersistentFlags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	// Pipelines
	cmd.AddCommand(Network(opts))
	cmd.AddCommand(Storage(opts))
	cmd.AddCommand(Endpoint(opts))
	cmd.AddCommand(Job(opts))

	// Composite and utility commands
	cmd.AddCommand(Apply(opts))
	cmd.AddCommand(Destroy(opts))
	cmd.AddCommand(Plan(opts))
	cmd.AddCommand(Version())

	return cmd
}
