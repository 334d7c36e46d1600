package llm

import (
	"context"
	"encoding/json"
)

// Provider is what the generators program against. Implementations
// wrap one vendor SDK each; decorators add retry and event logging.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the
	// provider asks for structured output and validates the result, so
	// a nil error means Content conforms to the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model this provider was configured with.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Generation here is single-turn, so
	// this is almost always one user message.
	Messages []Message

	// Schema, when set, constrains the output to the given JSON
	// Schema. When nil the raw text comes back as a json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a response must take.
type Schema struct {
	// Name is kebab-case, e.g. "quiz-gen". Anthropic sees it as the
	// tool name, OpenAI as the schema name.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting.
type Response struct {
	// Content is valid JSON matching the request schema, or the raw
	// text when no schema was given.
	Content json.RawMessage

	// Usage is the token count the vendor reported.
	Usage Usage

	// Model is the model that actually served the request, which may
	// be a dated snapshot of the configured one.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
