package questiongen

import "github.com/apratap/adept/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question batches.
var QuestionSetSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of practice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "short_answer", "true_false"},
							"description": "How the learner answers this question",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner, plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple_choice, [\"True\",\"False\"] for true_false, empty otherwise",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple choice: the text of the correct option.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "The difficulty band this question targets",
						},
						"concept": map[string]any{
							"type":        "string",
							"description": "The concept this question exercises, one of the requested concepts",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short worked explanation of the correct answer",
						},
					},
					"required":             []any{"type", "prompt", "options", "correct_answer", "difficulty", "concept", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
