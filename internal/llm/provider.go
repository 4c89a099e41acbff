package llm

import "context"

// Provider is the completion capability abstraction. Consumers send a
// system instruction plus a prompt and get back the model's raw text.
// What that text means is the caller's problem — the analysis layer
// repairs and parses it against its own schema.
type Provider interface {
	// Generate sends a single completion request. It makes exactly one
	// attempt: any transport error, non-success upstream status, or
	// malformed upstream envelope is returned to the caller immediately.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in FormCheck), this contains one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Content is the raw text completion, untouched. It may arrive
	// wrapped in Markdown code fences; stripping those is the caller's
	// responsibility.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
