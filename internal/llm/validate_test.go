package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-question",
	Description: "A single quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{"type": "string"},
			"answer": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
		},
		"required": []any{"prompt", "answer"},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"prompt": "2+2?", "answer": "4", "difficulty": "easy"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"missing required", `{"prompt": "2+2?"}`},
		{"bad enum", `{"prompt": "2+2?", "answer": "4", "difficulty": "impossible"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Errorf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema must not validate: %v", err)
	}
}
