package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"llamagate-demo/internal/workflow"
)

func newWorkflowCommand(app *App) *cobra.Command {
	names := make([]string, len(workflow.DemoSequence))
	for i, def := range workflow.DemoSequence {
		names[i] = def.Name
	}

	return &cobra.Command{
		Use:   "workflow <name>",
		Short: "Run a single demo workflow",
		Long: fmt.Sprintf(`Run a single demo workflow by name.

Available workflows:
  %s`, strings.Join(names, "\n  ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passed, err := app.Runner.Run(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%v (available: %s)", err, strings.Join(names, ", "))
			}
			if !passed {
				return NewExitError(1)
			}
			return nil
		},
	}
}
