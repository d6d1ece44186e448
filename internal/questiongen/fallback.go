package questiongen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apratap/adept/internal/mastery"
)

// FallbackGenerator synthesizes deterministic placeholder questions
// locally. It exists so that a provider outage never blocks session
// creation: the questions are generic recall prompts, but they keep the
// requested difficulty distribution and concept coverage.
type FallbackGenerator struct{}

// NewFallback creates a FallbackGenerator.
func NewFallback() *FallbackGenerator {
	return &FallbackGenerator{}
}

// promptTemplates gives the fallback some variety per difficulty band.
var promptTemplates = map[mastery.Difficulty][]string{
	mastery.Easy: {
		"Which of the following best defines %q?",
		"True or false: %q is a concept you have practiced before.",
	},
	mastery.Medium: {
		"Which statement about %q is most accurate?",
		"Identify the correct application of %q.",
	},
	mastery.Hard: {
		"Which of the following is the strongest counterexample related to %q?",
		"Analyze the edge case: which option correctly extends %q?",
	},
}

// Generate produces input.Count placeholder questions honoring the
// requested distribution. It never fails.
func (f *FallbackGenerator) Generate(_ context.Context, input GenerateInput) ([]Question, error) {
	if input.Count <= 0 {
		return nil, nil
	}
	concepts := input.Concepts
	if len(concepts) == 0 {
		concepts = []string{"general review"}
	}

	// Expand the distribution into a difficulty sequence, then pad or
	// trim to the exact count (the distribution may drift by one).
	var bands []mastery.Difficulty
	appendBand := func(d mastery.Difficulty, n int) {
		for i := 0; i < n; i++ {
			bands = append(bands, d)
		}
	}
	appendBand(mastery.Easy, input.Distribution.Easy)
	appendBand(mastery.Medium, input.Distribution.Medium)
	appendBand(mastery.Hard, input.Distribution.Hard)
	for len(bands) < input.Count {
		bands = append(bands, mastery.Medium)
	}
	bands = bands[:input.Count]

	questions := make([]Question, input.Count)
	for i, d := range bands {
		concept := concepts[i%len(concepts)]
		templates := promptTemplates[d]
		prompt := fmt.Sprintf(templates[i%len(templates)], concept)

		options := []string{
			fmt.Sprintf("The standard definition of %s", concept),
			fmt.Sprintf("A common misconception about %s", concept),
			fmt.Sprintf("An unrelated property of %s", concept),
			"None of the above",
		}

		questions[i] = Question{
			ID:            uuid.NewString(),
			Type:          TypeMultipleChoice,
			Prompt:        prompt,
			Options:       options,
			CorrectAnswer: options[0],
			Difficulty:    d,
			Explanation:   fmt.Sprintf("Review your notes on %s; the first option states its standard definition.", concept),
			Concepts:      []string{concept},
		}
	}

	return questions, nil
}
