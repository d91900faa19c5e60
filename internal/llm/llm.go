package llm

import "context"

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of a chat-completion conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat is an optional hint asking the provider to bias its output
// toward parseable JSON. It is advisory, not a guarantee, and implementations
// (test doubles in particular) may ignore it.
type ResponseFormat string

const (
	FormatText       ResponseFormat = ""
	FormatJSONObject ResponseFormat = "json_object"
	FormatJSONArray  ResponseFormat = "json_array"
)

// Completer is the single capability the assistant needs from a completion
// provider: given a conversation and an optional output-format hint, return
// the generated text of the first choice.
type Completer interface {
	Complete(ctx context.Context, messages []Message, format ResponseFormat) (string, error)
}
