package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/adbvnet/cmd/adbvnet/handlers"
)

// Plan returns the plan command.
func Plan(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "plan [pipeline...]",
		Short:     "Show the steps and resources each pipeline would touch",
		ValidArgs: handlers.PipelineNames(),
		Args:      cobra.OnlyValidArgs,
		Long: `Print the ordered steps of each pipeline and the resource each step
creates or reads, without calling Azure.

Pipelines: network, storage, endpoint, job (default: network storage).`,
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Plan(*opts, args)
		},
	}
}
