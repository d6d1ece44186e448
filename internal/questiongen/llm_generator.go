package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/apratap/adept/internal/llm"
	"github.com/apratap/adept/internal/mastery"
)

// Config bounds a single generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response before conversion.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty"`
	Concept       string   `json:"concept"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a batch of questions in a single provider call.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", input.Count)
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		d := mastery.Difficulty(q.Difficulty)
		if !d.Valid() {
			d = mastery.Medium
		}
		concepts := []string{q.Concept}
		if q.Concept == "" {
			concepts = input.Concepts
		}
		questions = append(questions, Question{
			ID:            uuid.NewString(),
			Type:          QuestionType(q.Type),
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    d,
			Explanation:   q.Explanation,
			Concepts:      concepts,
		})
	}

	// Providers occasionally over-deliver; trim to the requested count.
	if len(questions) > input.Count {
		questions = questions[:input.Count]
	}

	return questions, nil
}
