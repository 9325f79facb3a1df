// Package cli provides the command-line interface for llamagate-demo.
//
// The root command runs the complete demo sequence; subcommands expose the
// individual pieces (connectivity check, tool discovery, model listing,
// single workflows, raw prompts). Commands signal failure through
// [ExitError] instead of calling os.Exit directly, so the CLI surface is
// testable end to end with mocked gateway transports.
package cli

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"llamagate-demo/internal/config"
	"llamagate-demo/internal/gateway"
	"llamagate-demo/internal/output"
	"llamagate-demo/internal/workflow"
	"llamagate-demo/internal/workspace"
)

// ModelLister lists the models available behind the gateway.
// The [gateway.Client] type implements this interface.
type ModelLister interface {
	ListModels(ctx context.Context) ([]gateway.Model, error)
}

// App holds the wired collaborators shared by all commands.
type App struct {
	Config    *config.Config
	Runner    *workflow.Runner
	Models    ModelLister
	Workspace workspace.Workspace
	Printer   *output.Printer
	Log       *zap.Logger
}

// NewApp builds an App with a real gateway client writing to stdout.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	client := gateway.NewClient(cfg.Gateway.URL, cfg.Gateway.APIKey, cfg.Model)
	return newApp(cfg, log, os.Stdout, client, client)
}

// newApp is the injectable constructor used by tests.
func newApp(cfg *config.Config, log *zap.Logger, w io.Writer, completer gateway.Completer, models ModelLister) *App {
	if log == nil {
		log = zap.NewNop()
	}
	printer := output.NewPrinterWithWriter(w)
	ws := workspace.New(cfg.Workspace.Dir)

	return &App{
		Config:    cfg,
		Runner:    workflow.NewRunner(completer, ws, printer, cfg, log),
		Models:    models,
		Workspace: ws,
		Printer:   printer,
		Log:       log,
	}
}
