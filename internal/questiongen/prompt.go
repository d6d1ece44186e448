package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating practice questions for an adaptive learning platform.

Rules:
- Generate exactly the requested number of questions, spread across the listed concepts.
- Follow the requested difficulty mix as closely as possible.
- Each question must be self-contained and answerable without external material.
- Use plain text. No LaTeX, no markdown, no Unicode math symbols.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- For true/false, the options must be exactly ["True", "False"].
- The correct_answer must exactly match one of the options when options are present.
- Tag each question with the single concept it exercises, from the requested list.
- Keep explanations to two or three sentences.`

// buildUserMessage constructs the user message for a generation request.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concepts: %s\n", strings.Join(input.Concepts, ", "))
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)
	fmt.Fprintf(&b, "Difficulty mix: %s\n", input.DifficultyHint)

	return b.String()
}

// DifficultyHint renders a distribution as the human-readable mix
// instruction sent to the provider.
func DifficultyHint(input GenerateInput) string {
	d := input.Distribution
	return fmt.Sprintf("%d easy, %d medium, %d hard", d.Easy, d.Medium, d.Hard)
}
