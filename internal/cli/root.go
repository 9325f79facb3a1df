package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"llamagate-demo/internal/config"
)

// NewRootCommand builds the root command with all subcommands attached.
//
// Running the root command with no subcommand executes the full demo,
// matching the original single-script behavior.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "llamagate-demo",
		Short: "Exercise LlamaGate's MCP document-processing workflows",
		Long: `llamagate-demo runs a sequence of document-processing workflows against
a LlamaGate chat-completion endpoint, verifying that the gateway's MCP
tool integrations can read, summarize, transform, and write documents
in a local workspace directory.

Configuration comes from environment variables:
  LLAMAGATE_URL      Gateway base URL (default http://localhost:11435/v1)
  LLAMAGATE_API_KEY  API key (default sk-llamagate)
  MODEL              Model identifier (default mistral)
  WORKSPACE_DIR      Workspace directory (default ~/llamagate-workspace)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newRunCommand(app),
		newCheckCommand(app),
		newToolsCommand(app),
		newModelsCommand(app),
		newWorkflowCommand(app),
		newRawCommand(app),
	)

	return root
}

// Execute loads configuration, wires the application, and runs the CLI.
// It returns the process exit code.
func Execute() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := NewApp(cfg, log)
	root := NewRootCommand(app)

	err = root.ExecuteContext(ctx)

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted by user")
		return 1
	}

	if err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		return 1
	}

	return 0
}

// runDemo runs the complete demo sequence and persists the run report.
func runDemo(ctx context.Context, app *App) error {
	results, code := app.Runner.RunAll(ctx)

	if results != nil && app.Config.Report.Enabled {
		if err := writeReport(app, results); err != nil {
			app.Printer.Warn("Failed to write run report: %v", err)
			app.Log.Warn("report write failed", zap.Error(err))
		}
	}

	if code != 0 {
		return NewExitError(code)
	}
	return nil
}
