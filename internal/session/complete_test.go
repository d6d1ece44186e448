package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/internal/store"
)

func mediumQuestion(id, concept, answer string) schema.PlannedQuestion {
	return schema.PlannedQuestion{
		ID:            id,
		Type:          "short_answer",
		Prompt:        "solve",
		CorrectAnswer: answer,
		Difficulty:    "medium",
		Concepts:      []string{concept},
	}
}

func openSession(sessions *fakeSessionRepo, learnerID string, questions []schema.PlannedQuestion) *store.Session {
	sess := &store.Session{
		ID:        "sess-1",
		LearnerID: learnerID,
		Kind:      "focused",
		Questions: questions,
		StartedAt: time.Now(),
	}
	_ = sessions.Create(context.Background(), sess)
	return sess
}

func TestCompletePerfectMediumSessionMovesMasteryByEight(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, concepts, _, sessions := newTestService(now)
	ctx := context.Background()

	row, _ := concepts.GetOrCreate(ctx, "alice", "fractions")
	concepts.rows[conceptKey("alice", "fractions")].Mastery = 50
	_ = row

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "1/2"),
		mediumQuestion("q2", "fractions", "3/4"),
		mediumQuestion("q3", "fractions", "2/3"),
	})

	res, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{
		"q1": " 1/2 ",
		"q2": "3/4",
		"q3": "2/3",
	}, 90)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if res.Score != 100 {
		t.Fatalf("score = %d, want 100", res.Score)
	}
	got := concepts.rows[conceptKey("alice", "fractions")]
	if got.Mastery != 58 {
		t.Fatalf("mastery = %d, want 58 (one authoritative medium update from 50)", got.Mastery)
	}
	if got.ConsecutiveCorrect != 1 || got.ConsecutiveWrong != 0 {
		t.Fatalf("streaks = %d/%d, want 1/0", got.ConsecutiveCorrect, got.ConsecutiveWrong)
	}
	if got.Difficulty != "medium" {
		t.Fatalf("difficulty = %s, want medium for mastery 58", got.Difficulty)
	}
	wantDue := now.AddDate(0, 0, 7)
	if !got.NextReviewDue.Equal(wantDue) {
		t.Fatalf("next review = %v, want %v", got.NextReviewDue, wantDue)
	}
	if len(res.Deltas) != 1 || res.Deltas[0].Before != 50 || res.Deltas[0].After != 58 {
		t.Fatalf("deltas = %+v, want fractions 50 -> 58", res.Deltas)
	}
}

func TestCompleteTwiceFailsAndPreservesFirstResult(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, sessions := newTestService(now)
	ctx := context.Background()

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
	})
	answers := map[string]string{"q1": "yes"}

	if _, err := svc.Complete(ctx, sess.ID, "alice", answers, 10); err != nil {
		t.Fatalf("first Complete: %v", err)
	}
	masteryAfterFirst := concepts.rows[conceptKey("alice", "fractions")].Mastery

	_, err := svc.Complete(ctx, sess.ID, "alice", answers, 10)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second Complete err = %v, want ErrAlreadyCompleted", err)
	}
	if got := concepts.rows[conceptKey("alice", "fractions")].Mastery; got != masteryAfterFirst {
		t.Fatalf("mastery moved from %d to %d on rejected completion", masteryAfterFirst, got)
	}
}

func TestCompleteOwnershipAndMissingSession(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _, sessions := newTestService(now)
	ctx := context.Background()

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
	})

	if _, err := svc.Complete(ctx, sess.ID, "mallory", map[string]string{"q1": "yes"}, 5); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Complete(ctx, "missing", "alice", map[string]string{"q1": "yes"}, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Complete(ctx, sess.ID, "alice", nil, 5); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for empty answers", err)
	}
}

func TestCompleteSkipsUnknownQuestionIDs(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _, sessions := newTestService(now)
	ctx := context.Background()

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
		mediumQuestion("q2", "fractions", "no"),
	})

	res, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{
		"q1":    "YES",
		"ghost": "whatever",
	}, 5)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.QuestionsTotal != 1 || res.QuestionsCorrect != 1 {
		t.Fatalf("graded %d/%d, want 1/1 (unknown id skipped)", res.QuestionsCorrect, res.QuestionsTotal)
	}
}

func TestCompleteWritesOneHistoryRecordPerAnswerTag(t *testing.T) {
	now := time.Now().UTC()
	svc, _, history, sessions := newTestService(now)
	ctx := context.Background()

	q := mediumQuestion("q1", "fractions", "yes")
	q.Concepts = []string{"fractions", "ratios"}
	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		q,
		mediumQuestion("q2", "fractions", "no"),
	})

	if _, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{"q1": "yes", "q2": "wrong"}, 30); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// q1 carries two tags, q2 one.
	if len(history.records) != 3 {
		t.Fatalf("history records = %d, want 3", len(history.records))
	}
	first := history.records[0]
	if first.Concept != "fractions" || first.MasteryBefore != 0 || first.MasteryAfter != 8 {
		t.Fatalf("first record = %+v, want fractions 0 -> 8", first)
	}
	// Second fractions record threads from the first snapshot.
	third := history.records[2]
	if third.Concept != "fractions" || third.MasteryBefore != 8 {
		t.Fatalf("third record = %+v, want before = 8", third)
	}
}

func TestCompleteRetriesMasteryConflict(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, sessions := newTestService(now)
	ctx := context.Background()

	row, _ := concepts.GetOrCreate(ctx, "alice", "fractions")
	concepts.conflicts[row.ID] = 2

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
	})

	if _, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{"q1": "yes"}, 5); err != nil {
		t.Fatalf("Complete with transient conflicts: %v", err)
	}
	if got := concepts.rows[conceptKey("alice", "fractions")].Mastery; got != 8 {
		t.Fatalf("mastery = %d, want 8 after retried update", got)
	}
}

func TestCompleteRollsBackAllWritesWhenOneConceptFails(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, history, sessions := newTestService(now)
	ctx := context.Background()

	_, _ = concepts.GetOrCreate(ctx, "alice", "alpha")
	beta, _ := concepts.GetOrCreate(ctx, "alice", "beta")
	concepts.rows[conceptKey("alice", "alpha")].Mastery = 50
	concepts.rows[conceptKey("alice", "beta")].Mastery = 50
	concepts.conflicts[beta.ID] = casRetries

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "alpha", "yes"),
		mediumQuestion("q2", "beta", "yes"),
	})

	_, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{"q1": "yes", "q2": "yes"}, 10)
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want exhausted-retry conflict", err)
	}

	// Alpha was updated before beta failed; the rollback must undo it.
	if got := concepts.rows[conceptKey("alice", "alpha")].Mastery; got != 50 {
		t.Fatalf("alpha mastery = %d after failed completion, want 50", got)
	}
	if stored, _ := sessions.Get(ctx, sess.ID); stored.CompletedAt != nil {
		t.Fatal("session is completed after a failed completion")
	}
	if len(history.records) != 0 {
		t.Fatalf("history has %d records after rollback, want 0", len(history.records))
	}
}

func TestCompleteDuplicateRaceLeavesMasteryUntouched(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, history, sessions := newTestService(now)
	ctx := context.Background()

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
	})
	answers := map[string]string{"q1": "yes"}

	if _, err := svc.Complete(ctx, sess.ID, "alice", answers, 10); err != nil {
		t.Fatalf("first Complete: %v", err)
	}
	masteryAfterFirst := concepts.rows[conceptKey("alice", "fractions")].Mastery
	recordsAfterFirst := len(history.records)

	// A concurrent completer reads the session before the first commit
	// lands, so its own open/completed precheck passes and only the
	// claim inside the transaction can stop it.
	sessions.staleOpenRead = true
	_, err := svc.Complete(ctx, sess.ID, "alice", answers, 10)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("racing Complete err = %v, want ErrAlreadyCompleted", err)
	}
	if got := concepts.rows[conceptKey("alice", "fractions")].Mastery; got != masteryAfterFirst {
		t.Fatalf("mastery moved from %d to %d on the losing completion", masteryAfterFirst, got)
	}
	if len(history.records) != recordsAfterFirst {
		t.Fatalf("history grew from %d to %d records on the losing completion", recordsAfterFirst, len(history.records))
	}
}

func TestCompleteFiresAchievementsAndNextSteps(t *testing.T) {
	now := time.Now().UTC()
	svc, concepts, _, sessions := newTestService(now)
	ctx := context.Background()

	// A weak concept guarantees at least one recommendation.
	_, _ = concepts.GetOrCreate(ctx, "alice", "decimals")
	concepts.rows[conceptKey("alice", "decimals")].Mastery = 20

	sess := openSession(sessions, "alice", []schema.PlannedQuestion{
		mediumQuestion("q1", "fractions", "yes"),
	})

	res, err := svc.Complete(ctx, sess.ID, "alice", map[string]string{"q1": "yes"}, 5)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var keys []string
	for _, u := range res.Unlocked {
		keys = append(keys, u.Key)
	}
	wantKeys := map[string]bool{"first_session": true, "perfect_1": true}
	for _, k := range keys {
		if !wantKeys[k] {
			t.Fatalf("unexpected unlock %s (all: %v)", k, keys)
		}
		delete(wantKeys, k)
	}
	if len(wantKeys) != 0 {
		t.Fatalf("missing unlocks %v (got %v)", wantKeys, keys)
	}

	if len(res.NextSteps) == 0 || len(res.NextSteps) > 3 {
		t.Fatalf("next steps = %d, want 1..3", len(res.NextSteps))
	}
}
