package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apratap/adept/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestConceptGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Concepts()

	first, err := repo.GetOrCreate(ctx, "learner-1", "fractions")
	require.NoError(t, err)
	require.Equal(t, 0, first.Mastery)
	require.Equal(t, "easy", first.Difficulty)

	again, err := repo.GetOrCreate(ctx, "learner-1", "fractions")
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID, "second call must return the same row")

	_, err = repo.Get(ctx, "learner-1", "decimals")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestConceptUpdateCAS(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Concepts()

	row, err := repo.GetOrCreate(ctx, "learner-1", "fractions")
	require.NoError(t, err)

	now := time.Now()
	upd := ConceptUpdate{
		Mastery:            58,
		TotalAttempts:      3,
		CorrectAttempts:    3,
		Difficulty:         "medium",
		ConsecutiveCorrect: 1,
		LastPracticed:      now,
		NextReviewDue:      now.AddDate(0, 0, 7),
	}
	require.NoError(t, repo.UpdateCAS(ctx, row.ID, row.Mastery, upd))

	// Stale expected value: a concurrent writer changed the row.
	err = repo.UpdateCAS(ctx, row.ID, row.Mastery, upd)
	require.ErrorIs(t, err, ErrConflict)

	fresh, err := repo.Get(ctx, "learner-1", "fractions")
	require.NoError(t, err)
	require.Equal(t, 58, fresh.Mastery)
	require.Equal(t, "medium", fresh.Difficulty)
}

func TestSessionCompleteOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	sess := &Session{
		ID:               "sess-1",
		LearnerID:        "learner-1",
		Kind:             "quick",
		Concepts:         []string{"fractions"},
		TargetDifficulty: "medium",
		Questions: []schema.PlannedQuestion{
			{ID: "q1", Prompt: "1/2 + 1/4?", CorrectAnswer: "3/4", Difficulty: "medium", Concepts: []string{"fractions"}},
		},
		QuestionsTotal: 1,
	}
	require.NoError(t, repo.Create(ctx, sess))

	res := SessionResult{
		QuestionsTotal:   1,
		QuestionsCorrect: 1,
		Score:            100,
		CompletedAt:      time.Now(),
		DurationSecs:     42,
	}
	require.NoError(t, repo.CompleteCAS(ctx, "sess-1", res))

	// The losing completion attempt must observe the conflict.
	err := repo.CompleteCAS(ctx, "sess-1", res)
	require.ErrorIs(t, err, ErrConflict)

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	require.Equal(t, 100, got.Score)

	n, err := repo.CountCompleted(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAchievementMarkEarnedOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Achievements()

	row, err := repo.GetOrCreate(ctx, "learner-1", "streak_7", 7)
	require.NoError(t, err)
	require.Nil(t, row.EarnedAt)

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	earned, err := repo.MarkEarned(ctx, row.ID, first)
	require.NoError(t, err)
	require.True(t, earned)

	// A second unlock attempt is a no-op and must not move earned_at.
	earned, err = repo.MarkEarned(ctx, row.ID, first.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, earned)

	rows, err := repo.ByLearner(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].EarnedAt)
	require.True(t, rows[0].EarnedAt.Equal(first))
}

func TestHistoryPracticeDays(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.History()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		base,
		base.Add(2 * time.Hour),              // same day
		base.AddDate(0, 0, -1),               // previous day
		base.AddDate(0, 0, -1).Add(time.Minute), // previous day again
		base.AddDate(0, 0, -3),
	}
	for i, ts := range stamps {
		rec := PracticeRecord{
			LearnerID:     "learner-1",
			Concept:       "fractions",
			Difficulty:    "easy",
			Correct:       i%2 == 0,
			MasteryBefore: 10,
			MasteryAfter:  14,
			Timestamp:     ts,
		}
		require.NoError(t, repo.Append(ctx, rec))
	}

	days, err := repo.PracticeDays(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, days, 3, "duplicate days must collapse")
	require.True(t, days[0].After(days[1]) && days[1].After(days[2]), "newest first")
}

func TestHistoryRecentWrong(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.History()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := PracticeRecord{
			LearnerID:     "learner-1",
			Concept:       "decimals",
			Difficulty:    "medium",
			Correct:       i < 2,
			MasteryBefore: 40,
			MasteryAfter:  35,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Append(ctx, rec))
	}

	wrong, err := repo.RecentWrong(ctx, "learner-1", 2)
	require.NoError(t, err)
	require.Len(t, wrong, 2)
	for _, rec := range wrong {
		require.False(t, rec.Correct)
	}
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row, err := s.Concepts().GetOrCreate(ctx, "learner-1", "fractions")
	require.NoError(t, err)

	now := time.Now()
	boom := context.Canceled
	err = s.RunInTx(ctx, func(r Repos) error {
		upd := ConceptUpdate{
			Mastery:       58,
			Difficulty:    "medium",
			LastPracticed: now,
			NextReviewDue: now.AddDate(0, 0, 7),
		}
		require.NoError(t, r.Concepts.UpdateCAS(ctx, row.ID, row.Mastery, upd))
		require.NoError(t, r.History.Append(ctx, PracticeRecord{
			LearnerID:  "learner-1",
			Concept:    "fractions",
			Difficulty: "medium",
			Timestamp:  now,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	fresh, err := s.Concepts().Get(ctx, "learner-1", "fractions")
	require.NoError(t, err)
	require.Equal(t, 0, fresh.Mastery, "rolled-back update must not be visible")

	records, err := s.History().ByLearner(ctx, "learner-1", 0)
	require.NoError(t, err)
	require.Empty(t, records, "rolled-back history must not be visible")
}

func TestRunInTxCommits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row, err := s.Concepts().GetOrCreate(ctx, "learner-1", "fractions")
	require.NoError(t, err)

	now := time.Now()
	err = s.RunInTx(ctx, func(r Repos) error {
		return r.Concepts.UpdateCAS(ctx, row.ID, row.Mastery, ConceptUpdate{
			Mastery:       8,
			Difficulty:    "easy",
			LastPracticed: now,
			NextReviewDue: now.AddDate(0, 0, 1),
		})
	})
	require.NoError(t, err)

	fresh, err := s.Concepts().Get(ctx, "learner-1", "fractions")
	require.NoError(t, err)
	require.Equal(t, 8, fresh.Mastery)
}
