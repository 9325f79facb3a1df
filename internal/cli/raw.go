package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRawCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <prompt>",
		Short: "Send an arbitrary prompt to the gateway",
		Long: `Send an arbitrary prompt directly to the gateway and print the response.
Useful for testing or one-off queries.

Example:
  llamagate-demo raw "List all files in the workspace"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if !app.Runner.RunRaw(cmd.Context(), prompt) {
				return NewExitError(1)
			}
			return nil
		},
	}
}
