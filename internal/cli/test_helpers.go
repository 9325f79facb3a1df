package cli

import (
	"bytes"
	"context"
	"testing"

	"llamagate-demo/internal/config"
	"llamagate-demo/internal/gateway"
)

// MockModelLister is a ModelLister mock for testing.
type MockModelLister struct {
	Models []gateway.Model
	Err    error
	Calls  int
}

func (m *MockModelLister) ListModels(ctx context.Context) ([]gateway.Model, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Models, nil
}

// setupTestApp builds an App with a mocked gateway, a temp workspace, and
// a captured output buffer.
func setupTestApp(t *testing.T, completer gateway.Completer, models ModelLister) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Workspace.Dir = t.TempDir()

	buf := &bytes.Buffer{}
	app := newApp(cfg, nil, buf, completer, models)
	return app, buf
}

// executeCommand runs the given subcommand of a fresh root command and
// returns its error.
func executeCommand(app *App, args ...string) error {
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}
