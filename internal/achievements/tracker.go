// Package achievements tracks learner milestones against a static
// catalog and detects unlocks.
package achievements

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apratap/adept/internal/store"
)

// EventKind names the engine events the tracker reacts to.
type EventKind string

const (
	EventSessionComplete EventKind = "session_complete"
	EventConceptMastered EventKind = "concept_mastered"
	EventStreakUpdate    EventKind = "streak_update"
)

// Event carries freshly recomputed aggregate metrics alongside the
// event kind. Only the fields relevant to the kind are read.
type Event struct {
	Kind EventKind

	// SessionCount is the learner's completed session total
	// (session_complete).
	SessionCount int

	// Perfect reports whether the triggering session scored 100%
	// (session_complete).
	Perfect bool

	// MasteredCount is the number of concepts at mastery >= 80
	// (concept_mastered).
	MasteredCount int

	// StreakDays is the current consecutive practice-day streak
	// (streak_update).
	StreakDays int
}

// Unlocked describes one newly earned achievement.
type Unlocked struct {
	Key         string
	Name        string
	Description string
	Target      int
	EarnedAt    time.Time
}

// Tracker evaluates events against the catalog and persists progress.
type Tracker struct {
	catalog Catalog
	repo    store.AchievementRepo
	logger  *zap.Logger
}

// NewTracker creates a Tracker over the given catalog and repo.
func NewTracker(catalog Catalog, repo store.AchievementRepo, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{catalog: catalog, repo: repo, logger: logger}
}

// OnEvent advances progress for every catalog entry matching the event
// and returns the achievements that unlocked as a result. Unlocking is
// idempotent: the conditional earned_at write in the repo is the
// linearization point, so concurrent calls cannot double-unlock.
func (t *Tracker) OnEvent(ctx context.Context, learnerID string, ev Event) ([]Unlocked, error) {
	var unlocked []Unlocked

	for _, cat := range categoriesFor(ev.Kind) {
		for _, def := range t.catalog.ForCategory(cat) {
			u, err := t.evaluate(ctx, learnerID, def, ev)
			if err != nil {
				return unlocked, fmt.Errorf("achievement %s: %w", def.Key, err)
			}
			if u != nil {
				unlocked = append(unlocked, *u)
			}
		}
	}

	return unlocked, nil
}

func (t *Tracker) evaluate(ctx context.Context, learnerID string, def Definition, ev Event) (*Unlocked, error) {
	row, err := t.repo.GetOrCreate(ctx, learnerID, def.Key, def.Target)
	if err != nil {
		return nil, err
	}

	metric := t.metricFor(def, row, ev)

	// Already earned: progress may still be tracked, but earned status
	// never reverts and no unlock fires again.
	if row.EarnedAt != nil {
		if metric != row.Progress {
			if err := t.repo.SetProgress(ctx, row.ID, metric); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if metric < def.Target {
		if metric != row.Progress {
			if err := t.repo.SetProgress(ctx, row.ID, metric); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	now := time.Now()
	won, err := t.repo.MarkEarned(ctx, row.ID, now)
	if err != nil {
		return nil, err
	}
	if !won {
		// A concurrent completion earned it first.
		return nil, nil
	}
	if err := t.repo.SetProgress(ctx, row.ID, def.Target); err != nil {
		// The unlock already happened; a progress write failure is not
		// worth surfacing.
		t.logger.Warn("achievement progress write failed",
			zap.String("learner_id", learnerID),
			zap.String("key", def.Key),
			zap.Error(err))
	}

	t.logger.Info("achievement unlocked",
		zap.String("learner_id", learnerID),
		zap.String("key", def.Key))

	return &Unlocked{
		Key:         def.Key,
		Name:        def.Name,
		Description: def.Description,
		Target:      def.Target,
		EarnedAt:    now,
	}, nil
}

// metricFor resolves the event metric for one definition. Perfect
// session achievements count occurrences, so their metric builds on the
// stored progress rather than an absolute aggregate.
func (t *Tracker) metricFor(def Definition, row *store.AchievementRow, ev Event) int {
	switch def.Category {
	case CategorySessionsCompleted:
		return ev.SessionCount
	case CategoryPerfectSessions:
		if ev.Perfect {
			return row.Progress + 1
		}
		return row.Progress
	case CategoryConceptsMastered:
		return ev.MasteredCount
	case CategoryStreak:
		return ev.StreakDays
	}
	return row.Progress
}

// categoriesFor maps an event kind to the catalog categories it can
// advance. Session completion drives both session-count and
// perfect-score achievements.
func categoriesFor(kind EventKind) []Category {
	switch kind {
	case EventSessionComplete:
		return []Category{CategorySessionsCompleted, CategoryPerfectSessions}
	case EventConceptMastered:
		return []Category{CategoryConceptsMastered}
	case EventStreakUpdate:
		return []Category{CategoryStreak}
	}
	return nil
}
