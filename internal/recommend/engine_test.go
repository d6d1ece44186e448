package recommend

import (
	"testing"
	"time"

	"github.com/apratap/adept/internal/store"
)

func concept(name string, mastery int, lastPracticed, nextDue time.Time) *store.Concept {
	return &store.Concept{
		Concept:       name,
		Mastery:       mastery,
		LastPracticed: lastPracticed,
		NextReviewDue: nextDue,
	}
}

func TestOverdueAndWeakOutrankLowerPriorities(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	concepts := []*store.Concept{
		concept("fractions", 55, now.Add(-48*time.Hour), now.Add(-72*time.Hour)),
		concept("decimals", 25, now.Add(-24*time.Hour), now.Add(24*time.Hour)),
		concept("algebra", 85, now.Add(-12*time.Hour), now.Add(24*time.Hour)),
		concept("geometry", 82, now, now.Add(24*time.Hour)),
		concept("trig", 90, now, now.Add(24*time.Hour)),
	}

	recs := Recommend(concepts, nil, now)

	var kinds []Kind
	for _, r := range recs {
		kinds = append(kinds, r.Kind)
	}

	if kinds[0] != KindOverdueReview && kinds[0] != KindWeakConcept {
		t.Fatalf("first recommendation is %s, want a high-priority kind", kinds[0])
	}
	var haveOverdue, haveWeak bool
	lastHigh := -1
	for i, r := range recs {
		switch r.Kind {
		case KindOverdueReview:
			haveOverdue = true
			lastHigh = i
		case KindWeakConcept:
			haveWeak = true
			lastHigh = i
		}
	}
	if !haveOverdue || !haveWeak {
		t.Fatalf("kinds = %v, want both overdue and weak present", kinds)
	}
	for i, r := range recs {
		if r.Priority != PriorityHigh && i < lastHigh {
			t.Fatalf("non-high recommendation %s at %d precedes a high one at %d", r.Kind, i, lastHigh)
		}
	}
}

func TestDecliningRequiresStrictDecrease(t *testing.T) {
	now := time.Now()
	// Records arrive newest first.
	declining := []*store.PracticeRecord{
		{Concept: "fractions", MasteryAfter: 60, Timestamp: now},
		{Concept: "fractions", MasteryAfter: 65, Timestamp: now.Add(-time.Hour)},
		{Concept: "fractions", MasteryAfter: 70, Timestamp: now.Add(-2 * time.Hour)},
	}
	recs := Recommend(nil, declining, now)
	if len(recs) != 1 || recs[0].Kind != KindDeclining {
		t.Fatalf("recs = %+v, want one declining entry", recs)
	}

	// A tie anywhere in the window disqualifies.
	tied := []*store.PracticeRecord{
		{Concept: "fractions", MasteryAfter: 65, Timestamp: now},
		{Concept: "fractions", MasteryAfter: 65, Timestamp: now.Add(-time.Hour)},
		{Concept: "fractions", MasteryAfter: 70, Timestamp: now.Add(-2 * time.Hour)},
	}
	if recs := Recommend(nil, tied, now); len(recs) != 0 {
		t.Fatalf("recs = %+v, want none for a tied window", recs)
	}
}

func TestDecliningNeedsThreeRecords(t *testing.T) {
	now := time.Now()
	history := []*store.PracticeRecord{
		{Concept: "fractions", MasteryAfter: 60},
		{Concept: "fractions", MasteryAfter: 70},
	}
	if recs := Recommend(nil, history, now); len(recs) != 0 {
		t.Fatalf("recs = %+v, want none with only two records", recs)
	}
}

func TestRelatedCappedAtTwo(t *testing.T) {
	now := time.Now()
	concepts := []*store.Concept{
		concept("a", 60, now, now.Add(time.Hour)),
		concept("b", 62, now.Add(-time.Hour), now.Add(time.Hour)),
		concept("c", 58, now.Add(-2*time.Hour), now.Add(time.Hour)),
		concept("d", 55, time.Time{}, now.Add(time.Hour)),
		concept("e", 65, time.Time{}, now.Add(time.Hour)),
		concept("f", 70, time.Time{}, now.Add(time.Hour)),
	}
	recs := Recommend(concepts, nil, now)
	related := 0
	for _, r := range recs {
		if r.Kind == KindRelated {
			related++
		}
	}
	if related != 2 {
		t.Fatalf("related count = %d, want 2", related)
	}
}

func TestAdvancedGatedOnThreeMastered(t *testing.T) {
	now := time.Now()
	two := []*store.Concept{
		concept("a", 85, now, now.Add(time.Hour)),
		concept("b", 90, now, now.Add(time.Hour)),
	}
	for _, r := range Recommend(two, nil, now) {
		if r.Kind == KindAdvanced {
			t.Fatalf("advanced emitted with only two mastered concepts")
		}
	}

	three := append(two, concept("c", 80, now, now.Add(time.Hour)))
	var advanced int
	for _, r := range Recommend(three, nil, now) {
		if r.Kind == KindAdvanced {
			advanced++
		}
	}
	if advanced != 1 {
		t.Fatalf("advanced count = %d, want 1", advanced)
	}
}

func TestResultCap(t *testing.T) {
	now := time.Now()
	var concepts []*store.Concept
	for i := 0; i < 15; i++ {
		concepts = append(concepts, concept(string(rune('a'+i)), 10, now, now.Add(-time.Hour)))
	}
	recs := Recommend(concepts, nil, now)
	if len(recs) != 10 {
		t.Fatalf("len = %d, want cap of 10", len(recs))
	}
}
