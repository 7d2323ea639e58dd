package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/adbvnet/cmd/adbvnet/handlers"
)

// Apply returns the apply command, which runs the network and storage
// pipelines and optionally submits the job.
func Apply(opts *handlers.Options) *cobra.Command {
	var submitJob bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Provision the network and connect storage",
		Long: `Run the network pipeline, then the storage pipeline.

With --submit-job, the job is submitted once both pipelines succeed.
The first failing pipeline stops the run.

Examples:
  adbvnet apply
  adbvnet apply -c production.yaml --submit-job`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), *opts, submitJob)
		},
	}

	cmd.Flags().BoolVar(&submitJob, "submit-job", false, "Submit the Spark job after provisioning")

	return cmd
}
