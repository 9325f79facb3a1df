package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"llamagate-demo/internal/config"
	"llamagate-demo/internal/gateway"
	"llamagate-demo/internal/output"
	"llamagate-demo/internal/workspace"
)

// Runner executes demo workflows against one shared gateway client.
//
// Use [NewRunner] to create an instance. The runner is strictly sequential:
// each gateway call blocks until response or error, and the workspace is
// only ever touched by one workflow at a time.
type Runner struct {
	client  gateway.Completer
	ws      workspace.Workspace
	printer *output.Printer
	cfg     *config.Config
	log     *zap.Logger
}

// NewRunner creates a Runner with the given collaborators.
func NewRunner(client gateway.Completer, ws workspace.Workspace, printer *output.Printer, cfg *config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		client:  client,
		ws:      ws,
		printer: printer,
		cfg:     cfg,
		log:     log,
	}
}

// call expands the named workflow's prompt template and sends it with the
// workflow's configured sampling settings.
func (r *Runner) call(ctx context.Context, workflowName string, data config.PromptData) (*gateway.ChatResponse, error) {
	prompt, err := r.cfg.GetPrompt(workflowName, data)
	if err != nil {
		return nil, err
	}

	wf := r.cfg.Workflows[workflowName]
	opts := []gateway.Option{}
	if wf.Temperature != 0 {
		opts = append(opts, gateway.WithTemperature(wf.Temperature))
	}
	if wf.MaxTokens != 0 {
		opts = append(opts, gateway.WithMaxTokens(wf.MaxTokens))
	}
	if wf.System != "" {
		opts = append(opts, gateway.WithSystemPrompt(wf.System))
	}

	return r.client.ChatCompletion(ctx, []gateway.Message{{Role: gateway.RoleUser, Content: prompt}}, opts...)
}

// RunAll executes the complete demo: connectivity check, tool discovery,
// then every workflow in [DemoSequence].
//
// A failed connectivity check aborts the run immediately. A failed tool
// discovery is logged and the run continues. The returned exit code is 0
// iff every recorded workflow result passed.
func (r *Runner) RunAll(ctx context.Context) ([]Result, int) {
	r.printer.Section("LlamaGate MCP Demo Workflow")
	r.printer.Info("LlamaGate URL: %s", r.cfg.Gateway.URL)
	r.printer.Info("Model: %s", r.cfg.Model)
	r.printer.Info("Workspace: %s", r.ws.Dir())

	if !r.CheckConnection(ctx) {
		return nil, 1
	}

	if !r.ListTools(ctx) {
		r.printer.Warn("Continuing anyway...")
	}

	r.printer.Section("Running Demo Workflows")

	results := make([]Result, 0, len(DemoSequence))
	for _, def := range DemoSequence {
		start := time.Now()
		passed, err := r.Run(ctx, def.Name)
		if err != nil {
			// Only ErrUnknownWorkflow reaches here; workflows themselves
			// never propagate errors.
			r.log.Error("workflow dispatch failed", zap.String("workflow", def.Name), zap.Error(err))
			passed = false
		}
		results = append(results, Result{
			Name:     def.Title,
			Passed:   passed,
			Duration: time.Since(start),
		})
	}

	r.printer.Section("Workflow Summary")
	rows := make([]output.SummaryRow, len(results))
	for i, res := range results {
		rows[i] = output.SummaryRow{Name: res.Name, Passed: res.Passed, Duration: res.Duration}
	}
	r.printer.Summary(rows)

	for _, res := range results {
		if !res.Passed {
			return results, 1
		}
	}
	return results, 0
}

// RunRaw sends an arbitrary prompt and prints the response.
// Useful for testing or one-off queries against the gateway.
func (r *Runner) RunRaw(ctx context.Context, prompt string) bool {
	resp, err := r.client.ChatCompletion(ctx, []gateway.Message{{Role: gateway.RoleUser, Content: prompt}})
	if err != nil {
		r.printer.Fail("Request failed: %v", err)
		r.log.Warn("raw prompt failed", zap.Error(err))
		return false
	}

	r.printer.Info("%s", resp.Content())
	for _, tc := range resp.ToolCalls() {
		r.printer.ToolCall(tc.Function.Name)
	}
	return true
}
