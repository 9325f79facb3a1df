package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable that points at an explicit
// config file, bypassing the default search locations.
const EnvConfigPath = "LLAMAGATE_DEMO_CONFIG"

// Loader handles Viper-based configuration loading.
//
// Use [NewLoader] to create an instance, then [Loader.Load] for the standard
// resolution order or [Loader.LoadFromFile] for an explicit file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration using the standard resolution order:
// defaults, then an optional config file, then environment variables.
//
// The config file is LLAMAGATE_DEMO_CONFIG if set, otherwise
// ./llamagate-demo.yaml. A missing config file is not an error.
func (l *Loader) Load() (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return l.LoadFromFile(envPath)
	}

	l.setDefaults()
	l.bindEnv()

	l.v.SetConfigName("llamagate-demo")
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return l.finish()
}

// LoadFromFile loads configuration from a specific file path.
//
// Environment variables still override file values.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.setDefaults()
	l.bindEnv()

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return l.finish()
}

func (l *Loader) setDefaults() {
	def := DefaultConfig()
	l.v.SetDefault("gateway.url", def.Gateway.URL)
	l.v.SetDefault("gateway.api_key", def.Gateway.APIKey)
	l.v.SetDefault("model", def.Model)
	l.v.SetDefault("workspace.dir", def.Workspace.Dir)
	l.v.SetDefault("report.enabled", def.Report.Enabled)
	l.v.SetDefault("report.filename", def.Report.Filename)
}

// bindEnv maps the demo's environment variables onto config keys.
// The variable names are part of the harness contract and deliberately
// carry no common prefix.
func (l *Loader) bindEnv() {
	l.v.BindEnv("gateway.url", "LLAMAGATE_URL")
	l.v.BindEnv("gateway.api_key", "LLAMAGATE_API_KEY")
	l.v.BindEnv("model", "MODEL")
	l.v.BindEnv("workspace.dir", "WORKSPACE_DIR")
}

func (l *Loader) finish() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// File-provided workflows override defaults individually; workflows
	// absent from the file keep their default prompt and sampling settings.
	defaults := DefaultConfig()
	if cfg.Workflows == nil {
		cfg.Workflows = make(map[string]WorkflowConfig, len(defaults.Workflows))
	}
	for name, wf := range defaults.Workflows {
		if _, ok := cfg.Workflows[name]; !ok {
			cfg.Workflows[name] = wf
		}
	}

	dir, err := expandHome(cfg.Workspace.Dir)
	if err != nil {
		return nil, err
	}
	cfg.Workspace.Dir = dir

	return &cfg, nil
}

// GetPrompt expands the prompt template for the named workflow.
//
// Returns an error if the workflow is not configured or the template
// fails to parse or execute.
func (c *Config) GetPrompt(workflowName string, data PromptData) (string, error) {
	wf, ok := c.Workflows[workflowName]
	if !ok {
		return "", fmt.Errorf("workflow not found: %s", workflowName)
	}
	return expandTemplate(wf.PromptTemplate, data)
}

// expandTemplate executes a Go text template with the given prompt data.
func expandTemplate(tmpl string, data PromptData) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid prompt template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to expand prompt template: %w", err)
	}

	return sb.String(), nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
