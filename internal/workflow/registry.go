// Package workflow implements the demo workflow runner.
//
// The runner executes a fixed sequence of document-processing workflows
// against one shared gateway client, collecting per-workflow pass/fail
// outcomes. Each workflow catches its own errors and records a failure
// rather than propagating, so one failing workflow never blocks later
// ones. The initial connectivity check is the single exception: without
// a reachable gateway the whole run aborts.
//
// Key types:
//   - [Runner] orchestrates workflow execution and output formatting
//   - [Result] is one workflow's recorded outcome
//   - [DemoSequence] is the fixed execution order of the demo
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"llamagate-demo/internal/config"
)

// ErrUnknownWorkflow is returned by [Runner.Run] for names not present
// in [DemoSequence].
var ErrUnknownWorkflow = errors.New("unknown workflow")

// Definition names one demo workflow: its config key and the title shown
// in the summary table.
type Definition struct {
	Name  string
	Title string
}

// DemoSequence is the fixed, ordered list of demo workflows.
var DemoSequence = []Definition{
	{Name: config.WorkflowReadPDF, Title: "Read PDF"},
	{Name: config.WorkflowMultiStep, Title: "Multi-Step Processing"},
	{Name: config.WorkflowListAndProcess, Title: "List and Process"},
	{Name: config.WorkflowConvertDocument, Title: "Document Conversion"},
}

// Lookup resolves a workflow name to its [Definition].
func Lookup(name string) (Definition, error) {
	for _, def := range DemoSequence {
		if def.Name == name {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrUnknownWorkflow, name)
}

// Result records one workflow execution outcome.
type Result struct {
	// Name is the workflow's display title.
	Name string

	// Passed reports whether the workflow succeeded.
	Passed bool

	// Duration is the wall-clock time the workflow took.
	Duration time.Duration
}

// Run executes a single named workflow and returns its outcome.
// It returns [ErrUnknownWorkflow] for names not in [DemoSequence].
func (r *Runner) Run(ctx context.Context, name string) (bool, error) {
	switch name {
	case config.WorkflowReadPDF:
		return r.ReadPDF(ctx), nil
	case config.WorkflowMultiStep:
		return r.MultiStepProcessing(ctx), nil
	case config.WorkflowListAndProcess:
		return r.ListAndProcess(ctx), nil
	case config.WorkflowConvertDocument:
		return r.DocumentConversion(ctx), nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownWorkflow, name)
	}
}
