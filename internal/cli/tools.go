package cli

import (
	"github.com/spf13/cobra"
)

func newToolsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Ask the model to enumerate available MCP tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Runner.ListTools(cmd.Context()) {
				return NewExitError(1)
			}
			return nil
		},
	}
}
