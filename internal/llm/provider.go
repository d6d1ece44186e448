// Package llm abstracts the hosted language models used to author quiz
// questions. The engine never talks to a vendor SDK directly; it builds
// a Request and hands it to a Provider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured
	// response. When the request carries a Schema, the provider uses
	// its native structured-output mechanism and the response Content
	// is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil
	// the Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single turn in the conversation.
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "quiz-questions".
	Name string

	// Description guides the model toward the intended output.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output, validated JSON when a Schema was
	// supplied.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
