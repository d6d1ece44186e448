// Package questiongen produces practice questions for sessions, either
// through a hosted LLM or a deterministic local fallback. The session
// planner treats both paths as one Generator.
package questiongen

import "context"

// Generator produces a batch of quiz questions.
type Generator interface {
	// Generate produces input.Count questions covering input.Concepts.
	// May fail (network, quota, schema violations); callers are
	// expected to fall back rather than surface the failure.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
