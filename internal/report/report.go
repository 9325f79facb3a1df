// Package report persists demo run reports as YAML files in the workspace.
//
// After a full demo run the harness records each workflow's outcome so a
// later invocation (or an operator) can inspect the previous run without
// scrolling back through terminal output. Reports are written atomically:
// to a temp file first, then renamed into place.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"llamagate-demo/internal/workflow"
)

// DefaultFilename is the report file name inside the workspace.
const DefaultFilename = "demo-report.yaml"

// Report is the persisted record of one demo run.
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	GatewayURL  string    `yaml:"gateway_url"`
	Model       string    `yaml:"model"`
	Passed      int       `yaml:"passed"`
	Total       int       `yaml:"total"`
	Results     []Entry   `yaml:"results"`
}

// Entry is one workflow's outcome within a [Report].
type Entry struct {
	Name     string `yaml:"name"`
	Passed   bool   `yaml:"passed"`
	Duration string `yaml:"duration"`
}

// FromResults builds a [Report] from a finished run's results.
func FromResults(gatewayURL, model string, results []workflow.Result) *Report {
	rep := &Report{
		GeneratedAt: time.Now().UTC(),
		GatewayURL:  gatewayURL,
		Model:       model,
		Total:       len(results),
		Results:     make([]Entry, len(results)),
	}
	for i, res := range results {
		if res.Passed {
			rep.Passed++
		}
		rep.Results[i] = Entry{
			Name:     res.Name,
			Passed:   res.Passed,
			Duration: res.Duration.Round(time.Millisecond).String(),
		}
	}
	return rep
}

// Writer writes run reports to a fixed path.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write marshals the report and writes it atomically
// (write to temp, then rename).
func (w *Writer) Write(rep *Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tmpPath := w.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Read loads a previously written run report.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &rep, nil
}
