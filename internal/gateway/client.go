package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Completer is the interface workflows use to request chat completions.
//
// ChatCompletion sends the ordered message list with the given call options
// and blocks until the gateway responds or the context is canceled.
// The [Client] type implements this interface; tests use [MockCompleter].
type Completer interface {
	ChatCompletion(ctx context.Context, messages []Message, opts ...Option) (*ChatResponse, error)
}

// CallSettings holds the per-request sampling settings.
//
// Zero values are omitted from the wire request, letting the gateway
// apply its own defaults.
type CallSettings struct {
	Temperature float64
	MaxTokens   int
	System      string
}

// Option customizes a single chat-completion call.
type Option func(*CallSettings)

// WithTemperature sets the sampling temperature for this call.
func WithTemperature(temp float64) Option {
	return func(s *CallSettings) { s.Temperature = temp }
}

// WithMaxTokens limits the generated response length for this call.
func WithMaxTokens(tokens int) Option {
	return func(s *CallSettings) { s.MaxTokens = tokens }
}

// WithSystemPrompt prepends a system message to the conversation.
func WithSystemPrompt(prompt string) Option {
	return func(s *CallSettings) { s.System = prompt }
}

// ApplyOptions folds a list of options into a [CallSettings].
func ApplyOptions(opts ...Option) CallSettings {
	var s CallSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Client is an HTTP client for LlamaGate's OpenAI-compatible API.
//
// Use [NewClient] to create an instance. The client is safe for sequential
// reuse; the demo harness only ever issues one request at a time.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given base URL (including the
// /v1 prefix), API key, and model identifier.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

// ChatCompletion sends a chat-completion request and decodes the response.
//
// It returns an error for transport failures, non-200 responses (including
// the response body for diagnosis), and responses with no choices.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, opts ...Option) (*ChatResponse, error) {
	settings := ApplyOptions(opts...)

	request := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	}

	if settings.System != "" {
		systemMsg := Message{Role: RoleSystem, Content: settings.System}
		request.Messages = append([]Message{systemMsg}, request.Messages...)
	}

	body, err := c.post(ctx, "/chat/completions", request)
	if err != nil {
		return nil, err
	}

	var response ChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &response, nil
}

// ListModels fetches the models available behind the gateway.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var list ModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	return list.Data, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
