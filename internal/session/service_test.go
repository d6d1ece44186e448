package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apratap/adept/internal/questiongen"
	"github.com/apratap/adept/internal/recommend"
	"github.com/apratap/adept/internal/store"
)

func seedConcept(concepts *fakeConceptRepo, learnerID, name string, masteryVal int, due time.Time) {
	row, _ := concepts.GetOrCreate(context.Background(), learnerID, name)
	stored := concepts.rows[conceptKey(learnerID, name)]
	stored.Mastery = masteryVal
	stored.NextReviewDue = due
	_ = row
}

func plannerWithGenerator(svc *Service, gen questiongen.Generator) {
	svc.planner = NewPlanner(gen, nil)
}

func TestPlanSessionFocusedUsesGivenConcepts(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _, sessions := newTestService(now)
	plannerWithGenerator(svc, &scriptedGenerator{err: errors.New("offline")})

	sess, err := svc.PlanSession(context.Background(), "alice", StrategyFocused, []string{"fractions", "decimals"}, 4)
	if err != nil {
		t.Fatalf("PlanSession: %v", err)
	}
	if len(sess.Concepts) != 2 {
		t.Fatalf("concepts = %v, want the two given", sess.Concepts)
	}
	if len(sess.Questions) != 4 {
		t.Fatalf("questions = %d, want 4 (fallback path)", len(sess.Questions))
	}
	if stored, _ := sessions.Get(context.Background(), sess.ID); stored.CompletedAt != nil {
		t.Fatal("new session is not open")
	}
}

func TestPlanSessionWeakPicksLowMasteryConcepts(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, _ := newTestService(now)
	plannerWithGenerator(svc, &scriptedGenerator{err: errors.New("offline")})

	seedConcept(concepts, "alice", "fractions", 25, now)
	seedConcept(concepts, "alice", "decimals", 70, now)
	seedConcept(concepts, "alice", "ratios", 35, now)

	sess, err := svc.PlanSession(context.Background(), "alice", StrategyWeak, nil, 0)
	if err != nil {
		t.Fatalf("PlanSession: %v", err)
	}
	want := map[string]bool{"fractions": true, "ratios": true}
	if len(sess.Concepts) != 2 {
		t.Fatalf("concepts = %v, want the two weak ones", sess.Concepts)
	}
	for _, c := range sess.Concepts {
		if !want[c] {
			t.Fatalf("unexpected concept %s", c)
		}
	}
	if len(sess.Questions) != defaultQuestionCount {
		t.Fatalf("questions = %d, want default %d", len(sess.Questions), defaultQuestionCount)
	}
}

func TestPlanSessionQuickOrdersByReviewDue(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, _ := newTestService(now)
	plannerWithGenerator(svc, &scriptedGenerator{err: errors.New("offline")})

	seedConcept(concepts, "alice", "fresh", 50, now.Add(72*time.Hour))
	seedConcept(concepts, "alice", "due", 50, now.Add(-24*time.Hour))
	seedConcept(concepts, "alice", "soon", 50, now.Add(24*time.Hour))

	sess, err := svc.PlanSession(context.Background(), "alice", StrategyQuick, nil, 3)
	if err != nil {
		t.Fatalf("PlanSession: %v", err)
	}
	if sess.Concepts[0] != "due" {
		t.Fatalf("first concept = %s, want the overdue one", sess.Concepts[0])
	}
}

func TestPlanSessionNoConcepts(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _, _ := newTestService(now)
	plannerWithGenerator(svc, &scriptedGenerator{err: errors.New("offline")})

	if _, err := svc.PlanSession(context.Background(), "alice", StrategyWeak, nil, 5); !errors.Is(err, ErrNoConcepts) {
		t.Fatalf("err = %v, want ErrNoConcepts", err)
	}
	if _, err := svc.PlanSession(context.Background(), "alice", StrategyMastery, nil, 5); !errors.Is(err, ErrNoConcepts) {
		t.Fatalf("err = %v, want ErrNoConcepts", err)
	}
	if _, err := svc.PlanSession(context.Background(), "alice", StrategyFocused, nil, 5); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for focused without concepts", err)
	}
	if _, err := svc.PlanSession(context.Background(), "alice", Strategy("bogus"), nil, 5); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for unknown strategy", err)
	}
}

func TestRecommendationsSurfaceWeakConcepts(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, _ := newTestService(now)

	seedConcept(concepts, "alice", "decimals", 20, now.Add(24*time.Hour))

	recs, err := svc.Recommendations(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("no recommendations for a weak concept")
	}
}

func TestRecommendationsUseWrongAnswerHistory(t *testing.T) {
	now := time.Now().UTC()
	svc, _, history, _ := newTestService(now)
	ctx := context.Background()

	// Three wrong answers trending down, then a newer correct one. Only
	// the wrong-answer view is strictly declining; mixing the correct
	// record in would break the window.
	fails := []int{70, 65, 60}
	for i, after := range fails {
		history.records = append(history.records, store.PracticeRecord{
			LearnerID:    "alice",
			Concept:      "fractions",
			Correct:      false,
			MasteryAfter: after,
			Timestamp:    now.Add(time.Duration(i-3) * time.Hour),
		})
	}
	history.records = append(history.records, store.PracticeRecord{
		LearnerID:    "alice",
		Concept:      "fractions",
		Correct:      true,
		MasteryAfter: 68,
		Timestamp:    now,
	})

	recs, err := svc.Recommendations(ctx, "alice")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	found := false
	for _, r := range recs {
		if r.Kind == recommend.KindDeclining && r.Concept == "fractions" {
			found = true
		}
	}
	if !found {
		t.Fatalf("recs = %+v, want a declining entry from wrong-answer history", recs)
	}
}

func TestAchievementProgressCoversFullCatalog(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _, _ := newTestService(now)

	sum, err := svc.AchievementProgress(context.Background(), "alice")
	if err != nil {
		t.Fatalf("AchievementProgress: %v", err)
	}
	if sum.TotalCount == 0 || len(sum.Locked) != sum.TotalCount {
		t.Fatalf("summary = %+v, want everything locked for a new learner", sum)
	}
}
