package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/apratap/adept/internal/llm"
	"github.com/apratap/adept/internal/mastery"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"type": "multiple_choice",
				"prompt": "Which fraction equals 0.5?",
				"options": ["1/2", "1/3", "2/3", "3/4"],
				"correct_answer": "1/2",
				"difficulty": "easy",
				"concept": "fractions",
				"explanation": "0.5 is one half, written 1/2."
			},
			{
				"type": "true_false",
				"prompt": "0.25 is larger than 1/3.",
				"options": ["True", "False"],
				"correct_answer": "False",
				"difficulty": "medium",
				"concept": "decimals",
				"explanation": "1/3 is about 0.33, which is larger than 0.25."
			}
		]
	}`)
}

func TestLLMGeneratorParsesBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	input := GenerateInput{
		Concepts:       []string{"fractions", "decimals"},
		Count:          2,
		Distribution:   mastery.Distribution{Easy: 1, Medium: 1},
		DifficultyHint: "1 easy, 1 medium, 0 hard",
	}

	questions, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID == "" || questions[1].ID == "" {
		t.Error("questions must carry generated ids")
	}
	if questions[0].Difficulty != mastery.Easy {
		t.Errorf("difficulty = %s, want easy", questions[0].Difficulty)
	}
	if got := questions[1].Concepts; len(got) != 1 || got[0] != "decimals" {
		t.Errorf("concepts = %v, want [decimals]", got)
	}
}

func TestLLMGeneratorTrimsOverdelivery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), GenerateInput{
		Concepts: []string{"fractions"},
		Count:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("expected trim to 1 question, got %d", len(questions))
	}
}

func TestLLMGeneratorPropagatesProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("quota")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Concepts: []string{"fractions"},
		Count:    3,
	})
	if err == nil {
		t.Fatal("expected error when provider fails")
	}
}

func TestFallbackPreservesDistribution(t *testing.T) {
	gen := NewFallback()

	input := GenerateInput{
		Concepts:     []string{"fractions", "decimals"},
		Count:        10,
		Distribution: mastery.Distribution{Easy: 8, Medium: 2, Hard: 0},
	}

	questions, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}

	counts := map[mastery.Difficulty]int{}
	for _, q := range questions {
		counts[q.Difficulty]++
		if q.CorrectAnswer == "" {
			t.Error("fallback question missing correct answer")
		}
		if len(q.Concepts) == 0 {
			t.Error("fallback question missing concept tags")
		}
	}
	if counts[mastery.Easy] != 8 || counts[mastery.Medium] != 2 {
		t.Errorf("distribution not preserved: %v", counts)
	}
}

func TestFallbackPadsShortDistribution(t *testing.T) {
	gen := NewFallback()

	// Rounding drift: distribution sums to 4, count wants 5.
	questions, err := gen.Generate(context.Background(), GenerateInput{
		Concepts:     []string{"algebra"},
		Count:        5,
		Distribution: mastery.Distribution{Easy: 2, Medium: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5 {
		t.Errorf("expected count to win over distribution, got %d questions", len(questions))
	}
}

func TestFallbackNoConcepts(t *testing.T) {
	gen := NewFallback()
	questions, err := gen.Generate(context.Background(), GenerateInput{
		Count:        2,
		Distribution: mastery.Distribution{Medium: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}
