// Package recommend ranks next-step suggestions from a learner's
// concept state and recent history. All computation is pure: the caller
// loads the inputs, the engine never touches storage.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/apratap/adept/internal/store"
)

// Kind names one recommendation heuristic.
type Kind string

const (
	KindOverdueReview Kind = "overdue_review"
	KindWeakConcept   Kind = "weak_concept"
	KindDeclining     Kind = "declining"
	KindRelated       Kind = "related"
	KindAdvanced      Kind = "advanced"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// score collapses priority into a sortable weight.
func (p Priority) score() int {
	switch p {
	case PriorityHigh:
		return 100
	case PriorityMedium:
		return 50
	}
	return 10
}

// Recommendation is one actionable suggestion. Recommendations are
// ephemeral: recomputed on demand, never persisted.
type Recommendation struct {
	Kind        Kind
	Priority    Priority
	Concept     string
	Reason      string
	Action      string
	SessionHint string
}

const (
	maxResults = 10
	maxRelated = 2

	weakThreshold     = 40
	masteredThreshold = 80
	relatedSpread     = 20
	decliningWindow   = 3
	advancedMinimum   = 3
)

// Recommend builds the ranked list for one learner. concepts is the
// learner's full concept set; history is their recent records, newest
// first. Five candidate groups are generated independently, then stably
// sorted by priority so ties keep generation order. Capped at 10.
func Recommend(concepts []*store.Concept, history []*store.PracticeRecord, now time.Time) []Recommendation {
	var recs []Recommendation
	recs = append(recs, overdue(concepts, now)...)
	recs = append(recs, weak(concepts)...)
	recs = append(recs, declining(history)...)
	recs = append(recs, related(concepts)...)
	recs = append(recs, advanced(concepts)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.score() > recs[j].Priority.score()
	})

	if len(recs) > maxResults {
		recs = recs[:maxResults]
	}
	return recs
}

// overdue flags every concept whose review date has passed.
func overdue(concepts []*store.Concept, now time.Time) []Recommendation {
	var recs []Recommendation
	for _, c := range concepts {
		if c.NextReviewDue.IsZero() || !c.NextReviewDue.Before(now) {
			continue
		}
		days := int(now.Sub(c.NextReviewDue).Hours() / 24)
		if days < 1 {
			days = 1
		}
		recs = append(recs, Recommendation{
			Kind:        KindOverdueReview,
			Priority:    PriorityHigh,
			Concept:     c.Concept,
			Reason:      fmt.Sprintf("review was due %d day(s) ago", days),
			Action:      "schedule a review session before the material fades",
			SessionHint: "quick",
		})
	}
	return recs
}

// weak flags concepts below the weak-mastery threshold.
func weak(concepts []*store.Concept) []Recommendation {
	var recs []Recommendation
	for _, c := range concepts {
		if c.Mastery >= weakThreshold {
			continue
		}
		recs = append(recs, Recommendation{
			Kind:        KindWeakConcept,
			Priority:    PriorityHigh,
			Concept:     c.Concept,
			Reason:      fmt.Sprintf("mastery is %d, below %d", c.Mastery, weakThreshold),
			Action:      "practice fundamentals with easier questions",
			SessionHint: "weak",
		})
	}
	return recs
}

// declining flags concepts whose last three recorded mastery values are
// strictly decreasing. A single tie or recovery anywhere in the window
// disqualifies the concept.
func declining(history []*store.PracticeRecord) []Recommendation {
	// history arrives newest first; chronological order per concept is
	// the reverse of encounter order.
	byConcept := make(map[string][]int)
	var order []string
	for _, rec := range history {
		if _, seen := byConcept[rec.Concept]; !seen {
			order = append(order, rec.Concept)
		}
		byConcept[rec.Concept] = append(byConcept[rec.Concept], rec.MasteryAfter)
	}

	var recs []Recommendation
	for _, concept := range order {
		values := byConcept[concept]
		if len(values) < decliningWindow {
			continue
		}
		// The newest three, oldest to newest.
		window := []int{values[2], values[1], values[0]}
		strict := true
		for i := 1; i < len(window); i++ {
			if window[i] >= window[i-1] {
				strict = false
				break
			}
		}
		if !strict {
			continue
		}
		recs = append(recs, Recommendation{
			Kind:        KindDeclining,
			Priority:    PriorityMedium,
			Concept:     concept,
			Reason:      fmt.Sprintf("mastery fell across the last %d attempts (%d → %d)", decliningWindow, window[0], window[len(window)-1]),
			Action:      "revisit this concept before the slide continues",
			SessionHint: "focused",
		})
	}
	return recs
}

// related suggests concepts near the learner's recent work: within 20
// mastery points of one of the 3 most-recently-practiced concepts and
// themselves in the 40-80 band. Capped at 2.
func related(concepts []*store.Concept) []Recommendation {
	recent := make([]*store.Concept, 0, len(concepts))
	for _, c := range concepts {
		if !c.LastPracticed.IsZero() {
			recent = append(recent, c)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LastPracticed.After(recent[j].LastPracticed)
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}

	recentNames := make(map[string]bool, len(recent))
	for _, c := range recent {
		recentNames[c.Concept] = true
	}

	var recs []Recommendation
	suggested := make(map[string]bool)
	for _, anchor := range recent {
		for _, c := range concepts {
			if recentNames[c.Concept] || suggested[c.Concept] {
				continue
			}
			if c.Mastery < weakThreshold || c.Mastery > masteredThreshold {
				continue
			}
			diff := c.Mastery - anchor.Mastery
			if diff < 0 {
				diff = -diff
			}
			if diff > relatedSpread {
				continue
			}
			suggested[c.Concept] = true
			recs = append(recs, Recommendation{
				Kind:        KindRelated,
				Priority:    PriorityMedium,
				Concept:     c.Concept,
				Reason:      fmt.Sprintf("close to %s in difficulty and not yet mastered", anchor.Concept),
				Action:      "fold it into your next session",
				SessionHint: "focused",
			})
			if len(recs) == maxRelated {
				return recs
			}
		}
	}
	return recs
}

// advanced emits a single challenge prompt once the learner has
// mastered enough concepts to stretch.
func advanced(concepts []*store.Concept) []Recommendation {
	mastered := 0
	for _, c := range concepts {
		if c.Mastery >= masteredThreshold {
			mastered++
		}
	}
	if mastered < advancedMinimum {
		return nil
	}
	return []Recommendation{{
		Kind:        KindAdvanced,
		Priority:    PriorityLow,
		Concept:     "",
		Reason:      fmt.Sprintf("%d concepts at mastery %d or above", mastered, masteredThreshold),
		Action:      "take a hard-difficulty mastery session",
		SessionHint: "mastery",
	}}
}
