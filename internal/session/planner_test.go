package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/internal/mastery"
	"github.com/apratap/adept/internal/questiongen"
)

type scriptedGenerator struct {
	questions []questiongen.Question
	err       error
	lastInput questiongen.GenerateInput
}

func (g *scriptedGenerator) Generate(_ context.Context, input questiongen.GenerateInput) ([]questiongen.Question, error) {
	g.lastInput = input
	return g.questions, g.err
}

func TestPlanQuestionsEnrichesProviderOutput(t *testing.T) {
	gen := &scriptedGenerator{questions: []questiongen.Question{
		{
			ID:            "q1",
			Type:          questiongen.TypeShortAnswer,
			Prompt:        "compute 2+2",
			CorrectAnswer: "4",
			Difficulty:    mastery.Hard,
		},
	}}
	p := NewPlanner(gen, nil)

	planned, err := p.PlanQuestions(context.Background(), []string{"arithmetic"}, map[string]int{"arithmetic": 65}, 1)
	if err != nil {
		t.Fatalf("PlanQuestions: %v", err)
	}
	if len(planned) != 1 {
		t.Fatalf("planned = %d questions, want 1", len(planned))
	}

	q := planned[0]
	if len(q.Concepts) != 1 || q.Concepts[0] != "arithmetic" {
		t.Fatalf("concepts = %v, want session concepts applied", q.Concepts)
	}
	if q.Difficulty != "hard" {
		t.Fatalf("difficulty = %s, want provider value kept", q.Difficulty)
	}
	// hard base 45s, short answer x1.5
	if q.EstSeconds != 67 {
		t.Fatalf("est seconds = %d, want 67", q.EstSeconds)
	}
	if gen.lastInput.DifficultyHint == "" {
		t.Fatal("provider was not given a difficulty hint")
	}
}

func TestPlanQuestionsFallsBackOnProviderFailure(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("quota exceeded")}
	p := NewPlanner(gen, nil)

	planned, err := p.PlanQuestions(context.Background(), []string{"fractions"}, nil, 6)
	if err != nil {
		t.Fatalf("PlanQuestions: %v", err)
	}
	if len(planned) != 6 {
		t.Fatalf("planned = %d questions, want 6 from fallback", len(planned))
	}
	// Unknown mastery defaults to 50: the mid band asks for a mix, so
	// the fallback set must not be single-difficulty.
	bands := make(map[string]bool)
	for _, q := range planned {
		bands[q.Difficulty] = true
	}
	if len(bands) < 2 {
		t.Fatalf("fallback produced one band only: %v", bands)
	}
}

func TestPlanQuestionsRejectsBadInput(t *testing.T) {
	p := NewPlanner(&scriptedGenerator{}, nil)
	if _, err := p.PlanQuestions(context.Background(), nil, nil, 5); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for no concepts", err)
	}
	if _, err := p.PlanQuestions(context.Background(), []string{"x"}, nil, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for zero count", err)
	}
}

func TestAverageMasteryIgnoresUnknownConcepts(t *testing.T) {
	known := map[string]int{"fractions": 80}

	if got := averageMastery([]string{"fractions", "never-seen"}, known); got != 80 {
		t.Fatalf("average = %v, want 80 (unknown concepts excluded from the mean)", got)
	}
	if got := averageMastery([]string{"never-seen"}, known); got != 50 {
		t.Fatalf("average = %v, want the 50 default when nothing is known", got)
	}
	if got := averageMastery([]string{"a", "b"}, map[string]int{"a": 30, "b": 60}); got != 45 {
		t.Fatalf("average = %v, want 45", got)
	}
}

func bankQuestion(id string, diff mastery.Difficulty) schema.PlannedQuestion {
	return schema.PlannedQuestion{ID: id, Difficulty: string(diff)}
}

func TestSelectFromBankFiltersByDifficulty(t *testing.T) {
	p := NewPlanner(nil, nil).WithRand(rand.New(rand.NewSource(1)))
	pool := []schema.PlannedQuestion{
		bankQuestion("e1", mastery.Easy),
		bankQuestion("m1", mastery.Medium),
		bankQuestion("m2", mastery.Medium),
		bankQuestion("m3", mastery.Medium),
		bankQuestion("h1", mastery.Hard),
	}

	picked := p.SelectFromBank(pool, mastery.Medium, 2)
	if len(picked) != 2 {
		t.Fatalf("picked = %d, want 2", len(picked))
	}
	for _, q := range picked {
		if q.Difficulty != "medium" {
			t.Fatalf("picked %s with difficulty %s, want medium only", q.ID, q.Difficulty)
		}
	}
}

func TestSelectFromBankFallsBackToFullPool(t *testing.T) {
	p := NewPlanner(nil, nil).WithRand(rand.New(rand.NewSource(1)))
	pool := []schema.PlannedQuestion{
		bankQuestion("e1", mastery.Easy),
		bankQuestion("m1", mastery.Medium),
		bankQuestion("h1", mastery.Hard),
	}

	picked := p.SelectFromBank(pool, mastery.Hard, 3)
	if len(picked) != 3 {
		t.Fatalf("picked = %d, want 3 via full-pool fallback", len(picked))
	}
}

func TestAdjustDifficultyEscalatesOnPerfectWindow(t *testing.T) {
	p := NewPlanner(nil, nil).WithRand(rand.New(rand.NewSource(1)))
	pool := []schema.PlannedQuestion{
		bankQuestion("h1", mastery.Hard),
		bankQuestion("h2", mastery.Hard),
	}

	adj, next := p.AdjustDifficulty(pool, []bool{true, true, true}, mastery.Medium, 2)
	if !adj.ShouldAdjust || adj.NewDifficulty != mastery.Hard {
		t.Fatalf("adjustment = %+v, want escalation to hard", adj)
	}
	if len(next) != 2 {
		t.Fatalf("reselected = %d questions, want 2", len(next))
	}

	adj, next = p.AdjustDifficulty(pool, []bool{true, false, true}, mastery.Medium, 2)
	if adj.ShouldAdjust || next != nil {
		t.Fatalf("adjustment = %+v with %d questions, want no-op", adj, len(next))
	}
}
