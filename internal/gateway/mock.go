package gateway

import "context"

// MockCompleter is a [Completer] implementation for tests.
//
// It records every call's messages and resolved settings. Responses are
// produced by Handler when set; otherwise Err is returned when non-nil,
// otherwise Response, otherwise a canned single-choice text response.
type MockCompleter struct {
	// RecordedMessages holds the message list of each call, in order.
	RecordedMessages [][]Message

	// RecordedSettings holds the resolved call settings of each call.
	RecordedSettings []CallSettings

	// Handler, when set, produces the response for each call.
	Handler func(ctx context.Context, messages []Message, settings CallSettings) (*ChatResponse, error)

	// Err, when set (and Handler is nil), is returned by every call.
	Err error

	// Response, when set (and Handler and Err are nil), is returned by every call.
	Response *ChatResponse
}

// TextResponse builds a single-choice response with the given content.
func TextResponse(content string) *ChatResponse {
	return &ChatResponse{
		Choices: []Choice{
			{Message: ResponseMessage{Role: RoleAssistant, Content: content}},
		},
	}
}

// ChatCompletion implements [Completer].
func (m *MockCompleter) ChatCompletion(ctx context.Context, messages []Message, opts ...Option) (*ChatResponse, error) {
	settings := ApplyOptions(opts...)
	m.RecordedMessages = append(m.RecordedMessages, messages)
	m.RecordedSettings = append(m.RecordedSettings, settings)

	if m.Handler != nil {
		return m.Handler(ctx, messages, settings)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return TextResponse("ok"), nil
}
