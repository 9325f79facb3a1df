package cli

import (
	"github.com/spf13/cobra"
)

func newModelsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models available behind the gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Printer.Section("Available Models")

			models, err := app.Models.ListModels(cmd.Context())
			if err != nil {
				app.Printer.Fail("Failed to list models: %v", err)
				return NewExitError(1)
			}

			if len(models) == 0 {
				app.Printer.Warn("No models reported by the gateway")
				return nil
			}

			for _, m := range models {
				if m.OwnedBy != "" {
					app.Printer.Info("  %s (%s)", m.ID, m.OwnedBy)
				} else {
					app.Printer.Info("  %s", m.ID)
				}
			}
			return nil
		},
	}
}
