package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/internal/achievements"
	"github.com/apratap/adept/internal/mastery"
	"github.com/apratap/adept/internal/recommend"
	"github.com/apratap/adept/internal/store"
)

const (
	casRetries   = 5
	maxNextSteps = 3
)

// ConceptDelta reports one concept's mastery movement from a completed
// session.
type ConceptDelta struct {
	Concept string
	Before  int
	After   int
	Correct int
	Total   int
}

// CompletionResult is the outcome of a completed session. Unlocked and
// NextSteps are best-effort: either may be empty when their computation
// failed after the session turned terminal.
type CompletionResult struct {
	SessionID        string
	Score            int
	QuestionsTotal   int
	QuestionsCorrect int
	Deltas           []ConceptDelta
	Unlocked         []achievements.Unlocked
	NextSteps        []recommend.Recommendation
}

// gradedAnswer is one submitted answer matched to its question.
type gradedAnswer struct {
	question schema.PlannedQuestion
	correct  bool
}

// conceptTally accumulates one concept's results within a session.
type conceptTally struct {
	correct    int
	total      int
	difficulty mastery.Difficulty
}

// Complete grades the submitted answers and drives every downstream
// update. Grading, history and mastery writes run in one transaction
// with the conditional completed_at write as the claim: a second
// completion for the same session id fails with ErrAlreadyCompleted
// without touching mastery, and a failure mid-update rolls the whole
// session back to open with no mutation visible. Achievement and
// recommendation failures after the commit are logged, not surfaced.
func (s *Service) Complete(ctx context.Context, sessionID, learnerID string, answers map[string]string, timeSpentSecs int) (*CompletionResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: empty answer list", ErrValidation)
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.LearnerID != learnerID {
		return nil, ErrForbidden
	}
	if sess.CompletedAt != nil {
		return nil, ErrAlreadyCompleted
	}

	graded := grade(sess.Questions, answers)
	if len(graded) == 0 {
		return nil, fmt.Errorf("%w: no answers matched the session's questions", ErrValidation)
	}

	now := s.now()
	tallies, order := tally(graded)

	perAnswerMs := 0
	if timeSpentSecs > 0 {
		perAnswerMs = timeSpentSecs * 1000 / len(graded)
	}

	correct := 0
	for _, g := range graded {
		if g.correct {
			correct++
		}
	}
	score := int(math.Round(float64(correct) / float64(len(graded)) * 100))

	var deltas []ConceptDelta
	err = s.tx.RunInTx(ctx, func(r store.Repos) error {
		// Claim the session first. The conditional completed_at write
		// is the lock: a concurrent completion that read the session as
		// open loses here, before any of its mastery writes commit.
		err := r.Sessions.CompleteCAS(ctx, sessionID, store.SessionResult{
			QuestionsTotal:   len(graded),
			QuestionsCorrect: correct,
			Score:            score,
			CompletedAt:      now,
			DurationSecs:     timeSpentSecs,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyCompleted
			}
			return fmt.Errorf("complete session: %w", err)
		}

		// Per-answer history first, then the per-concept authoritative
		// update. Both run the same delta formula with different inputs
		// (per-answer vs per-session pass/fail), so the history
		// snapshots can drift slightly from the stored row. That
		// mirrors how the records have always been written; reconciling
		// them would rewrite every existing trend chart.
		startMastery := make(map[string]int, len(order))
		for _, concept := range order {
			row, err := r.Concepts.GetOrCreate(ctx, learnerID, concept)
			if err != nil {
				return fmt.Errorf("concept %s: %w", concept, err)
			}
			startMastery[concept] = row.Mastery
		}
		if err := s.appendHistory(ctx, r.History, sess, graded, startMastery, perAnswerMs, now); err != nil {
			return err
		}

		deltas = make([]ConceptDelta, 0, len(order))
		for _, concept := range order {
			t := tallies[concept]
			delta, err := s.applyConceptUpdate(ctx, r.Concepts, learnerID, concept, t, now)
			if err != nil {
				return fmt.Errorf("update concept %s: %w", concept, err)
			}
			deltas = append(deltas, delta)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	result := &CompletionResult{
		SessionID:        sessionID,
		Score:            score,
		QuestionsTotal:   len(graded),
		QuestionsCorrect: correct,
		Deltas:           deltas,
	}

	// The session is terminal from here on. Everything below is
	// best-effort.
	result.Unlocked = s.fireAchievements(ctx, learnerID, score, now)
	result.NextSteps = s.nextSteps(ctx, learnerID, now)

	s.logger.Info("session completed",
		zap.String("session_id", sessionID),
		zap.String("learner_id", learnerID),
		zap.Int("score", score),
		zap.Int("answered", len(graded)),
		zap.Int("unlocked", len(result.Unlocked)))
	return result, nil
}

// grade matches answers to questions and grades by trimmed
// case-insensitive equality. Answers referencing unknown question ids
// are skipped, not errors. Output keeps the session's question order.
func grade(questions []schema.PlannedQuestion, answers map[string]string) []gradedAnswer {
	var graded []gradedAnswer
	for _, q := range questions {
		submitted, ok := answers[q.ID]
		if !ok {
			continue
		}
		correct := strings.EqualFold(
			strings.TrimSpace(submitted),
			strings.TrimSpace(q.CorrectAnswer),
		)
		graded = append(graded, gradedAnswer{question: q, correct: correct})
	}
	return graded
}

// tally accumulates per-concept results across every (answer, tag)
// pair. order preserves first-touch sequence for deterministic output.
func tally(graded []gradedAnswer) (map[string]*conceptTally, []string) {
	tallies := make(map[string]*conceptTally)
	var order []string
	for _, g := range graded {
		for _, concept := range g.question.Concepts {
			t, ok := tallies[concept]
			if !ok {
				t = &conceptTally{}
				tallies[concept] = t
				order = append(order, concept)
			}
			t.total++
			if g.correct {
				t.correct++
			}
			t.difficulty = mastery.Difficulty(g.question.Difficulty)
		}
	}
	return tallies, order
}

// appendHistory writes one record per (answer, concept-tag) pair. Each
// record carries its own before/after snapshot, threaded per concept
// through the session in answer order. The snapshots are informational;
// the stored row is mutated separately.
func (s *Service) appendHistory(ctx context.Context, history store.HistoryRepo, sess *store.Session, graded []gradedAnswer, startMastery map[string]int, perAnswerMs int, now time.Time) error {
	running := make(map[string]int, len(startMastery))
	for concept, m := range startMastery {
		running[concept] = m
	}

	for _, g := range graded {
		diff := mastery.Difficulty(g.question.Difficulty)
		for _, concept := range g.question.Concepts {
			before := running[concept]
			after := mastery.Delta(before, diff, g.correct)
			running[concept] = after

			rec := store.PracticeRecord{
				LearnerID:     sess.LearnerID,
				Concept:       concept,
				SessionID:     sess.ID,
				Difficulty:    string(diff),
				Correct:       g.correct,
				MasteryBefore: before,
				MasteryAfter:  after,
				TimeSpentMs:   perAnswerMs,
				Timestamp:     now,
			}
			if err := history.Append(ctx, rec); err != nil {
				return fmt.Errorf("append history for %s: %w", concept, err)
			}
		}
	}
	return nil
}

// applyConceptUpdate runs the authoritative mastery update for one
// concept: a single delta keyed on whether the learner passed more than
// half of the concept's questions this session. Mastery, streaks,
// difficulty and the review date move together under an optimistic CAS
// so concurrent sessions cannot lose updates.
func (s *Service) applyConceptUpdate(ctx context.Context, concepts store.ConceptRepo, learnerID, concept string, t *conceptTally, now time.Time) (ConceptDelta, error) {
	passed := float64(t.correct)/float64(t.total) > 0.5

	for attempt := 0; attempt < casRetries; attempt++ {
		row, err := concepts.GetOrCreate(ctx, learnerID, concept)
		if err != nil {
			return ConceptDelta{}, err
		}

		newMastery := mastery.Delta(row.Mastery, t.difficulty, passed)

		upd := store.ConceptUpdate{
			Mastery:         newMastery,
			TotalAttempts:   row.TotalAttempts + t.total,
			CorrectAttempts: row.CorrectAttempts + t.correct,
			Difficulty:      string(mastery.SuggestedDifficulty(newMastery)),
			LastPracticed:   now,
			NextReviewDue:   mastery.NextReviewDate(newMastery, now),
		}
		if passed {
			upd.ConsecutiveCorrect = row.ConsecutiveCorrect + 1
			upd.ConsecutiveWrong = 0
		} else {
			upd.ConsecutiveCorrect = 0
			upd.ConsecutiveWrong = row.ConsecutiveWrong + 1
		}

		err = concepts.UpdateCAS(ctx, row.ID, row.Mastery, upd)
		if err == nil {
			return ConceptDelta{
				Concept: concept,
				Before:  row.Mastery,
				After:   newMastery,
				Correct: t.correct,
				Total:   t.total,
			}, nil
		}
		if !errors.Is(err, store.ErrConflict) {
			return ConceptDelta{}, err
		}
		// Another session moved the row; recompute from fresh state.
	}
	return ConceptDelta{}, fmt.Errorf("concept %s: %w after %d attempts", concept, store.ErrConflict, casRetries)
}

// fireAchievements recomputes aggregates and raises the three event
// kinds in a fixed order. Failures never unwind the completed session.
func (s *Service) fireAchievements(ctx context.Context, learnerID string, score int, now time.Time) []achievements.Unlocked {
	var unlocked []achievements.Unlocked

	sessionCount, err := s.sessions.CountCompleted(ctx, learnerID)
	if err != nil {
		s.logger.Warn("achievement aggregates unavailable", zap.Error(err))
		return nil
	}

	masteredCount := 0
	if rows, err := s.concepts.ByLearner(ctx, learnerID); err != nil {
		s.logger.Warn("achievement aggregates unavailable", zap.Error(err))
	} else {
		for _, row := range rows {
			if row.Mastery >= masteredMastery {
				masteredCount++
			}
		}
	}

	streak := 0
	if days, err := s.history.PracticeDays(ctx, learnerID); err != nil {
		s.logger.Warn("achievement aggregates unavailable", zap.Error(err))
	} else {
		streak = streakLength(days, now)
	}

	events := []achievements.Event{
		{Kind: achievements.EventSessionComplete, SessionCount: sessionCount, Perfect: score == 100},
		{Kind: achievements.EventConceptMastered, MasteredCount: masteredCount},
		{Kind: achievements.EventStreakUpdate, StreakDays: streak},
	}
	for _, ev := range events {
		u, err := s.tracker.OnEvent(ctx, learnerID, ev)
		if err != nil {
			s.logger.Warn("achievement update failed",
				zap.String("event", string(ev.Kind)),
				zap.Error(err))
		}
		unlocked = append(unlocked, u...)
	}
	return unlocked
}

// nextSteps recomputes recommendations and keeps the top entries.
func (s *Service) nextSteps(ctx context.Context, learnerID string, now time.Time) []recommend.Recommendation {
	concepts, err := s.concepts.ByLearner(ctx, learnerID)
	if err != nil {
		s.logger.Warn("recommendations unavailable", zap.Error(err))
		return nil
	}
	wrong, err := s.history.RecentWrong(ctx, learnerID, recentHistoryLimit)
	if err != nil {
		s.logger.Warn("recommendations unavailable", zap.Error(err))
		return nil
	}

	recs := recommend.Recommend(concepts, wrong, now)
	if len(recs) > maxNextSteps {
		recs = recs[:maxNextSteps]
	}
	return recs
}

// streakLength counts consecutive UTC practice days ending today. days
// arrives newest first.
func streakLength(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	expect := now.UTC().Truncate(24 * time.Hour)
	streak := 0
	for _, day := range days {
		if !day.Equal(expect) {
			break
		}
		streak++
		expect = expect.AddDate(0, 0, -1)
	}
	return streak
}
