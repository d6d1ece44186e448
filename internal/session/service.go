// Package session plans and completes practice sessions. It is the
// stateful core of the engine: planning calls out to question
// generation, completion grades answers and drives every mastery,
// history, achievement and recommendation update.
package session

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/apratap/adept/internal/achievements"
	"github.com/apratap/adept/internal/mastery"
	"github.com/apratap/adept/internal/recommend"
	"github.com/apratap/adept/internal/store"
)

// Strategy selects how a session's concepts are chosen.
type Strategy string

const (
	// StrategyQuick practices the concepts most due for review.
	StrategyQuick Strategy = "quick"

	// StrategyFocused practices an explicit concept list.
	StrategyFocused Strategy = "focused"

	// StrategyMastery challenges concepts already at high mastery.
	StrategyMastery Strategy = "mastery"

	// StrategyWeak drills the learner's weakest concepts.
	StrategyWeak Strategy = "weak"
)

func (s Strategy) valid() bool {
	switch s {
	case StrategyQuick, StrategyFocused, StrategyMastery, StrategyWeak:
		return true
	}
	return false
}

const (
	defaultQuestionCount = 5
	maxStrategyConcepts  = 3
	weakMastery          = 40
	masteredMastery      = 80
)

// Service exposes the caller-facing operations. A thin transport layer
// wraps it; the service itself is transport-agnostic and reports
// failures through the package sentinels.
type Service struct {
	concepts store.ConceptRepo
	history  store.HistoryRepo
	sessions store.SessionRepo
	tx       store.TxRunner
	planner  *Planner
	tracker  *achievements.Tracker
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires the service over its repos and collaborators.
func NewService(st *store.Store, planner *Planner, tracker *achievements.Tracker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		concepts: st.Concepts(),
		history:  st.History(),
		sessions: st.Sessions(),
		tx:       st,
		planner:  planner,
		tracker:  tracker,
		logger:   logger,
		now:      time.Now,
	}
}

// PlanSession resolves the strategy to a concept list, generates the
// question set and stores the new open session. Zero resolvable
// concepts is ErrNoConcepts; generation failure after fallback is
// ErrGenerationFailed.
func (s *Service) PlanSession(ctx context.Context, learnerID string, strategy Strategy, conceptNames []string, count int) (*store.Session, error) {
	if !strategy.valid() {
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrValidation, strategy)
	}
	if count <= 0 {
		count = defaultQuestionCount
	}

	names, masteryByConcept, err := s.resolveConcepts(ctx, learnerID, strategy, conceptNames)
	if err != nil {
		return nil, err
	}

	questions, err := s.planner.PlanQuestions(ctx, names, masteryByConcept, count)
	if err != nil {
		return nil, fmt.Errorf("plan questions: %w", err)
	}

	avg := averageMastery(names, masteryByConcept)
	sess := &store.Session{
		ID:               uuid.NewString(),
		LearnerID:        learnerID,
		Kind:             string(strategy),
		Concepts:         names,
		TargetDifficulty: string(mastery.SuggestedDifficulty(int(avg))),
		Questions:        questions,
		StartedAt:        s.now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session planned",
		zap.String("session_id", sess.ID),
		zap.String("learner_id", learnerID),
		zap.String("strategy", string(strategy)),
		zap.Int("questions", len(questions)))
	return sess, nil
}

// resolveConcepts turns a strategy into concrete concept names plus the
// mastery map the planner needs.
func (s *Service) resolveConcepts(ctx context.Context, learnerID string, strategy Strategy, conceptNames []string) ([]string, map[string]int, error) {
	rows, err := s.concepts.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load concepts: %w", err)
	}
	masteryByConcept := make(map[string]int, len(rows))
	for _, row := range rows {
		masteryByConcept[row.Concept] = row.Mastery
	}

	var names []string
	switch strategy {
	case StrategyFocused:
		if len(conceptNames) == 0 {
			return nil, nil, fmt.Errorf("%w: focused sessions need explicit concepts", ErrValidation)
		}
		names = conceptNames

	case StrategyQuick:
		if len(conceptNames) > 0 {
			names = conceptNames
			break
		}
		// Most-due first.
		due := append([]*store.Concept(nil), rows...)
		sort.SliceStable(due, func(i, j int) bool {
			return due[i].NextReviewDue.Before(due[j].NextReviewDue)
		})
		for _, row := range due {
			names = append(names, row.Concept)
			if len(names) == maxStrategyConcepts {
				break
			}
		}

	case StrategyWeak:
		for _, row := range rows {
			if row.Mastery < weakMastery {
				names = append(names, row.Concept)
			}
			if len(names) == maxStrategyConcepts {
				break
			}
		}

	case StrategyMastery:
		for _, row := range rows {
			if row.Mastery >= masteredMastery {
				names = append(names, row.Concept)
			}
			if len(names) == maxStrategyConcepts {
				break
			}
		}
	}

	if len(names) == 0 {
		return nil, nil, ErrNoConcepts
	}
	return names, masteryByConcept, nil
}

// Recommendations recomputes the learner's ranked next steps from their
// current concept state plus recent wrong-answer history, the same
// inputs the post-completion next steps use.
func (s *Service) Recommendations(ctx context.Context, learnerID string) ([]recommend.Recommendation, error) {
	concepts, err := s.concepts.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	wrong, err := s.history.RecentWrong(ctx, learnerID, recentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return recommend.Recommend(concepts, wrong, s.now()), nil
}

// AchievementProgress returns the learner's standing against the full
// achievement catalog.
func (s *Service) AchievementProgress(ctx context.Context, learnerID string) (*achievements.Summary, error) {
	return s.tracker.ProgressSummary(ctx, learnerID)
}

const recentHistoryLimit = 50
