package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the gateway is running and accessible",
		Long: `Send a minimal chat request to verify LlamaGate is reachable.
Exits 0 when the gateway responds, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Runner.CheckConnection(cmd.Context()) {
				return NewExitError(1)
			}
			return nil
		},
	}
}
