package cli

import (
	"github.com/spf13/cobra"

	"llamagate-demo/internal/report"
	"llamagate-demo/internal/workflow"
)

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the complete demo sequence",
		Long: `Run the complete demo sequence:
  1. Connectivity check (fatal on failure)
  2. Tool discovery (non-fatal)
  3. Read PDF
  4. Multi-Step Processing
  5. List and Process
  6. Document Conversion

Exits 0 only when every workflow passed. A run report is written to the
workspace unless disabled in the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), app)
		},
	}
}

// writeReport persists the run's results into the workspace.
func writeReport(app *App, results []workflow.Result) error {
	if err := app.Workspace.Ensure(); err != nil {
		return err
	}

	rep := report.FromResults(app.Config.Gateway.URL, app.Config.Model, results)
	path := app.Workspace.Path(app.Config.Report.Filename)
	if err := report.NewWriter(path).Write(rep); err != nil {
		return err
	}

	app.Printer.Info("\nRun report written to %s", path)
	return nil
}
