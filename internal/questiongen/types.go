package questiongen

import "github.com/apratap/adept/internal/mastery"

// Question is one generated practice question.
type Question struct {
	// ID uniquely identifies the question within its session.
	ID string

	// Type indicates how the learner answers.
	Type QuestionType

	// Prompt is the question text displayed to the learner.
	Prompt string

	// Options is populated only for multiple choice: exactly 4 options,
	// one of which matches CorrectAnswer.
	Options []string

	// CorrectAnswer is the canonical correct answer. Grading compares
	// against it case-insensitively after trimming.
	CorrectAnswer string

	// Difficulty is the band this question was authored for.
	Difficulty mastery.Difficulty

	// Explanation is a short worked solution shown after answering.
	Explanation string

	// Concepts are the concept tags this question exercises.
	Concepts []string
}

// QuestionType describes how the learner provides their answer.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeShortAnswer    QuestionType = "short_answer"
	TypeTrueFalse      QuestionType = "true_false"
)

// GenerateInput is the request handed to a Generator.
type GenerateInput struct {
	// Concepts are the concept names to draw questions from.
	Concepts []string

	// Count is the number of questions wanted.
	Count int

	// Distribution is the desired difficulty mix. Its total may drift
	// from Count by one due to rounding; Count wins.
	Distribution mastery.Distribution

	// DifficultyHint is a human-readable description of the desired
	// mix, passed verbatim to the provider.
	DifficultyHint string
}
