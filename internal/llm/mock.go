package llm

import "context"

// MockResponse is one scripted completion result.
type MockResponse struct {
	Text string
	Err  error
}

// MockCall records the arguments of one Complete invocation.
type MockCall struct {
	Messages []Message
	Format   ResponseFormat
}

// MockCompleter returns scripted responses in order and records every call.
// Once the script is exhausted it returns empty text, mirroring a provider
// that produced no content.
type MockCompleter struct {
	Responses []MockResponse
	Calls     []MockCall
}

func (m *MockCompleter) Complete(ctx context.Context, messages []Message, format ResponseFormat) (string, error) {
	_ = ctx
	m.Calls = append(m.Calls, MockCall{Messages: messages, Format: format})
	if len(m.Responses) == 0 {
		return "", nil
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp.Text, resp.Err
}
