// Package config provides configuration loading and management for llamagate-demo.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The package provides sensible defaults that work out of the
// box against a local LlamaGate instance, with the ability to customize the gateway
// endpoint, model, workspace location, and workflow prompts.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [WorkflowConfig] defines a single workflow's prompt and sampling settings
//
// Configuration priority (highest to lowest):
//  1. Environment variables (LLAMAGATE_URL, LLAMAGATE_API_KEY, MODEL, WORKSPACE_DIR)
//  2. Config file specified by LLAMAGATE_DEMO_CONFIG
//  3. ./llamagate-demo.yaml
//  4. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used throughout
// the application. Use [DefaultConfig] to get sensible defaults. Config is
// immutable after loading; components receive it by pointer and never write to it.
type Config struct {
	// Gateway contains the LlamaGate endpoint settings.
	Gateway GatewayConfig `mapstructure:"gateway"`

	// Model is the model identifier sent with every chat completion request.
	// Overridable with the MODEL environment variable.
	Model string `mapstructure:"model"`

	// Workspace contains the scratch directory settings.
	Workspace WorkspaceConfig `mapstructure:"workspace"`

	// Workflows maps workflow names to their configurations.
	// Keys are workflow names (e.g., "read-pdf", "convert-document").
	Workflows map[string]WorkflowConfig `mapstructure:"workflows"`

	// Report contains run report persistence settings.
	Report ReportConfig `mapstructure:"report"`
}

// GatewayConfig contains LlamaGate endpoint configuration.
type GatewayConfig struct {
	// URL is the base URL of the OpenAI-compatible API, including the /v1 prefix.
	// Overridable with the LLAMAGATE_URL environment variable.
	URL string `mapstructure:"url"`

	// APIKey is sent as a bearer token on every request.
	// Overridable with the LLAMAGATE_API_KEY environment variable.
	APIKey string `mapstructure:"api_key"`
}

// WorkspaceConfig contains workspace directory configuration.
type WorkspaceConfig struct {
	// Dir is the scratch directory for demo documents. A leading "~" is
	// expanded to the user's home directory at load time.
	// Overridable with the WORKSPACE_DIR environment variable.
	Dir string `mapstructure:"dir"`
}

// WorkflowConfig represents a single workflow configuration.
//
// Each workflow sends one prompt built from PromptTemplate, optionally preceded
// by a system message, with the given sampling settings.
type WorkflowConfig struct {
	// PromptTemplate is a Go template string for the workflow prompt.
	// Available fields: {{.File}}, {{.Target}}, {{.Workspace}}.
	PromptTemplate string `mapstructure:"prompt_template"`

	// System is an optional system message sent before the user prompt.
	System string `mapstructure:"system"`

	// Temperature is the sampling temperature for the request.
	// Zero means the gateway's default.
	Temperature float64 `mapstructure:"temperature"`

	// MaxTokens limits the generated response length.
	// Zero means the gateway's default.
	MaxTokens int `mapstructure:"max_tokens"`
}

// ReportConfig contains run report persistence configuration.
type ReportConfig struct {
	// Enabled controls whether a YAML run report is written into the
	// workspace after a full demo run. Default: true.
	Enabled bool `mapstructure:"enabled"`

	// Filename is the report file name inside the workspace.
	// Default: "demo-report.yaml".
	Filename string `mapstructure:"filename"`
}

// Workflow name constants used as keys into [Config.Workflows].
const (
	WorkflowToolDiscovery   = "tool-discovery"
	WorkflowReadPDF         = "read-pdf"
	WorkflowMultiStep       = "multi-step"
	WorkflowListAndProcess  = "list-and-process"
	WorkflowConvertDocument = "convert-document"
)

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults target a local LlamaGate instance and include the standard
// prompts for the tool discovery query and the four document-processing
// workflows. These defaults work out of the box without any configuration file.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			URL:    "http://localhost:11435/v1",
			APIKey: "sk-llamagate",
		},
		Model: "mistral",
		Workspace: WorkspaceConfig{
			Dir: "~/llamagate-workspace",
		},
		Workflows: map[string]WorkflowConfig{
			WorkflowToolDiscovery: {
				PromptTemplate: "What MCP tools are available? List all tools with their namespaces.",
				Temperature:    0.3,
			},
			WorkflowReadPDF: {
				PromptTemplate: "Read the PDF file at {{.File}} and provide a brief summary of its contents. Include the title, main topics, and key points.",
				Temperature:    0.7,
				MaxTokens:      1000,
			},
			WorkflowMultiStep: {
				System: "You are a document processing assistant. Use available tools to process documents.",
				PromptTemplate: `Process the file {{.File}}:
1. Read the file content
2. Extract the main sections (Overview, Key Features, Conclusion)
3. Create a structured summary
4. Save the summary to {{.Target}}
5. List all files in the workspace to confirm the file was created`,
				Temperature: 0.7,
				MaxTokens:   2000,
			},
			WorkflowListAndProcess: {
				PromptTemplate: `List all files in the directory {{.Workspace}},
then for each text or markdown file, read it and create a brief description.
Present the results as a list of files with their descriptions.`,
				Temperature: 0.7,
				MaxTokens:   2000,
			},
			WorkflowConvertDocument: {
				PromptTemplate: `Read the file {{.File}} and convert it to Markdown format.
Save the converted content to {{.Target}}.
Use proper Markdown formatting with headers, lists, and emphasis.`,
				Temperature: 0.7,
				MaxTokens:   2000,
			},
		},
		Report: ReportConfig{
			Enabled:  true,
			Filename: "demo-report.yaml",
		},
	}
}

// PromptData contains data for workflow prompt template expansion.
//
// This struct is passed to Go's text/template when expanding workflow prompts.
// Fields are accessible in templates using {{.FieldName}} syntax. Not every
// workflow uses every field.
type PromptData struct {
	// File is the full path of the source document being processed.
	File string

	// Target is the full path of the expected output document.
	Target string

	// Workspace is the workspace directory path.
	Workspace string
}
