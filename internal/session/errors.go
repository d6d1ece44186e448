package session

import "errors"

// Sentinel errors surfaced to callers. Each maps to one distinguishable
// failure condition; outer layers match with errors.Is.
var (
	// ErrNotFound reports a session, concept, or learner reference that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted reports a second completion attempt for a
	// session that is already terminal.
	ErrAlreadyCompleted = errors.New("session already completed")

	// ErrForbidden reports an attempt to act on a session owned by a
	// different learner.
	ErrForbidden = errors.New("session belongs to another learner")

	// ErrNoConcepts reports a planning strategy that yielded zero
	// concepts to practice.
	ErrNoConcepts = errors.New("no concepts available to practice")

	// ErrGenerationFailed reports that question generation failed and
	// the fallback could not satisfy the request.
	ErrGenerationFailed = errors.New("question generation failed")

	// ErrValidation reports malformed input, such as an empty answer
	// list.
	ErrValidation = errors.New("invalid input")
)
