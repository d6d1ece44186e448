package session

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/internal/mastery"
	"github.com/apratap/adept/internal/questiongen"
)

// Base answer time per difficulty band, in seconds. Scaled by a
// question-type multiplier when estimating session length.
var baseSeconds = map[mastery.Difficulty]int{
	mastery.Easy:   20,
	mastery.Medium: 30,
	mastery.Hard:   45,
}

func typeMultiplier(t questiongen.QuestionType) float64 {
	switch t {
	case questiongen.TypeTrueFalse:
		return 0.5
	case questiongen.TypeShortAnswer:
		return 1.5
	}
	return 1.0
}

// Planner builds question sets for sessions. Generation goes to the
// external provider first; any failure falls back to locally
// synthesized questions so planning never blocks on a flaky provider.
type Planner struct {
	gen      questiongen.Generator
	fallback questiongen.Generator
	timeout  time.Duration
	rng      *rand.Rand
	logger   *zap.Logger
}

// NewPlanner creates a Planner over the given generator. The provider
// call is bounded by a 20 second timeout.
func NewPlanner(gen questiongen.Generator, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		gen:      gen,
		fallback: questiongen.NewFallback(),
		timeout:  20 * time.Second,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger,
	}
}

// WithRand swaps the randomness source. Tests supply a seeded source to
// make bank selection deterministic.
func (p *Planner) WithRand(rng *rand.Rand) *Planner {
	p.rng = rng
	return p
}

// PlanQuestions builds a question set for the named concepts. The
// difficulty mix follows the learner's average mastery across the
// concepts (50 when nothing is known yet). Provider output is enriched
// with concept tags, an estimated difficulty and an estimated answer
// time before serialization.
func (p *Planner) PlanQuestions(ctx context.Context, concepts []string, masteryByConcept map[string]int, count int) ([]schema.PlannedQuestion, error) {
	if count <= 0 || len(concepts) == 0 {
		return nil, ErrValidation
	}

	avg := averageMastery(concepts, masteryByConcept)
	dist := mastery.DistributionFor(avg, count)

	input := questiongen.GenerateInput{
		Concepts:     concepts,
		Count:        count,
		Distribution: dist,
	}
	input.DifficultyHint = questiongen.DifficultyHint(input)

	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	questions, err := p.gen.Generate(genCtx, input)
	if err != nil || len(questions) == 0 {
		if err != nil {
			p.logger.Warn("question provider failed, using fallback", zap.Error(err))
		}
		questions, err = p.fallback.Generate(ctx, input)
		if err != nil || len(questions) == 0 {
			return nil, ErrGenerationFailed
		}
	}

	planned := make([]schema.PlannedQuestion, 0, len(questions))
	for _, q := range questions {
		planned = append(planned, p.enrich(q, concepts))
	}
	return planned, nil
}

// enrich fills in the fields the provider may omit and estimates the
// answer time.
func (p *Planner) enrich(q questiongen.Question, sessionConcepts []string) schema.PlannedQuestion {
	tags := q.Concepts
	if len(tags) == 0 {
		tags = sessionConcepts
	}

	diff := q.Difficulty
	if !diff.Valid() {
		diff = estimateDifficulty(q)
	}

	secs := float64(baseSeconds[diff]) * typeMultiplier(q.Type)

	return schema.PlannedQuestion{
		ID:            q.ID,
		Type:          string(q.Type),
		Prompt:        q.Prompt,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    string(diff),
		Explanation:   q.Explanation,
		Concepts:      tags,
		EstSeconds:    int(secs),
	}
}

// estimateDifficulty guesses a band from the question shape when the
// provider omitted one. Short prompts with answer options read easy;
// long free-form prompts read hard.
func estimateDifficulty(q questiongen.Question) mastery.Difficulty {
	switch {
	case len(q.Prompt) < 80 && len(q.Options) >= 4:
		return mastery.Easy
	case len(q.Prompt) > 160 && len(q.Options) == 0:
		return mastery.Hard
	default:
		return mastery.Medium
	}
}

// SelectFromBank picks n questions matching the target difficulty from
// an existing pool, falling back to the whole pool when too few match.
// The subset is randomized through the planner's rand source.
func (p *Planner) SelectFromBank(pool []schema.PlannedQuestion, target mastery.Difficulty, n int) []schema.PlannedQuestion {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	matching := make([]schema.PlannedQuestion, 0, len(pool))
	for _, q := range pool {
		if q.Difficulty == string(target) {
			matching = append(matching, q)
		}
	}
	if len(matching) < n {
		matching = append([]schema.PlannedQuestion(nil), pool...)
	}

	p.rng.Shuffle(len(matching), func(i, j int) {
		matching[i], matching[j] = matching[j], matching[i]
	})
	if len(matching) > n {
		matching = matching[:n]
	}
	return matching
}

// AdjustDifficulty checks the last answers for a mid-session difficulty
// shift and, when one is warranted, reselects n questions at the new
// band from the pool.
func (p *Planner) AdjustDifficulty(pool []schema.PlannedQuestion, recent []bool, current mastery.Difficulty, n int) (mastery.Adjustment, []schema.PlannedQuestion) {
	adj := mastery.ShouldAdjustDifficulty(recent, current)
	if !adj.ShouldAdjust {
		return adj, nil
	}
	return adj, p.SelectFromBank(pool, adj.NewDifficulty, n)
}

// averageMastery returns the mean mastery across the named concepts,
// defaulting to 50 when none of them have been practiced.
func averageMastery(concepts []string, masteryByConcept map[string]int) float64 {
	sum, known := 0, 0
	for _, c := range concepts {
		if m, ok := masteryByConcept[c]; ok {
			sum += m
			known++
		}
	}
	if known == 0 {
		return 50
	}
	return float64(sum) / float64(known)
}
