package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/apratap/adept/internal/store"
)

type fakeAchievementRepo struct {
	rows   map[string]*store.AchievementRow
	nextID int
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{rows: make(map[string]*store.AchievementRow)}
}

func (r *fakeAchievementRepo) key(learnerID, key string) string {
	return learnerID + "/" + key
}

func (r *fakeAchievementRepo) GetOrCreate(_ context.Context, learnerID, key string, target int) (*store.AchievementRow, error) {
	if row, ok := r.rows[r.key(learnerID, key)]; ok {
		cp := *row
		return &cp, nil
	}
	r.nextID++
	row := &store.AchievementRow{ID: r.nextID, LearnerID: learnerID, Key: key, Target: target}
	r.rows[r.key(learnerID, key)] = row
	cp := *row
	return &cp, nil
}

func (r *fakeAchievementRepo) SetProgress(_ context.Context, id int, progress int) error {
	for _, row := range r.rows {
		if row.ID == id {
			row.Progress = progress
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *fakeAchievementRepo) MarkEarned(_ context.Context, id int, at time.Time) (bool, error) {
	for _, row := range r.rows {
		if row.ID == id {
			if row.EarnedAt != nil {
				return false, nil
			}
			t := at
			row.EarnedAt = &t
			return true, nil
		}
	}
	return false, store.ErrNotFound
}

func (r *fakeAchievementRepo) ByLearner(_ context.Context, learnerID string) ([]*store.AchievementRow, error) {
	var out []*store.AchievementRow
	for _, row := range r.rows {
		if row.LearnerID == learnerID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func testCatalog() Catalog {
	return Catalog{
		{Key: "first_session", Name: "First Steps", Target: 1, Category: CategorySessionsCompleted},
		{Key: "sessions_10", Name: "Regular", Target: 10, Category: CategorySessionsCompleted},
		{Key: "perfect_1", Name: "Flawless", Target: 1, Category: CategoryPerfectSessions},
		{Key: "mastered_1", Name: "Breakthrough", Target: 1, Category: CategoryConceptsMastered},
		{Key: "streak_3", Name: "Warming Up", Target: 3, Category: CategoryStreak},
	}
}

func TestOnEventUnlocksAtTarget(t *testing.T) {
	repo := newFakeAchievementRepo()
	tracker := NewTracker(testCatalog(), repo, nil)

	unlocked, err := tracker.OnEvent(context.Background(), "alice", Event{
		Kind:         EventSessionComplete,
		SessionCount: 1,
		Perfect:      false,
	})
	if err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Key != "first_session" {
		t.Fatalf("unlocked = %+v, want first_session only", unlocked)
	}
}

func TestOnEventTracksPartialProgress(t *testing.T) {
	repo := newFakeAchievementRepo()
	tracker := NewTracker(testCatalog(), repo, nil)

	unlocked, err := tracker.OnEvent(context.Background(), "alice", Event{
		Kind:       EventStreakUpdate,
		StreakDays: 2,
	})
	if err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unlocked = %+v, want none", unlocked)
	}
	row := repo.rows[repo.key("alice", "streak_3")]
	if row == nil || row.Progress != 2 {
		t.Fatalf("streak_3 progress = %+v, want 2", row)
	}
}

func TestOnEventIdempotentOnceEarned(t *testing.T) {
	repo := newFakeAchievementRepo()
	tracker := NewTracker(testCatalog(), repo, nil)
	ctx := context.Background()

	ev := Event{Kind: EventConceptMastered, MasteredCount: 3}
	if _, err := tracker.OnEvent(ctx, "alice", ev); err != nil {
		t.Fatalf("first OnEvent: %v", err)
	}
	earnedAt := *repo.rows[repo.key("alice", "mastered_1")].EarnedAt

	unlocked, err := tracker.OnEvent(ctx, "alice", ev)
	if err != nil {
		t.Fatalf("second OnEvent: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("second event unlocked %+v, want none", unlocked)
	}
	if got := *repo.rows[repo.key("alice", "mastered_1")].EarnedAt; !got.Equal(earnedAt) {
		t.Fatalf("earned_at moved from %v to %v", earnedAt, got)
	}
}

func TestPerfectSessionsCountOccurrences(t *testing.T) {
	repo := newFakeAchievementRepo()
	catalog := Catalog{
		{Key: "perfect_2", Name: "Twice Flawless", Target: 2, Category: CategoryPerfectSessions},
	}
	tracker := NewTracker(catalog, repo, nil)
	ctx := context.Background()

	// An imperfect session leaves the count alone.
	if _, err := tracker.OnEvent(ctx, "alice", Event{Kind: EventSessionComplete, SessionCount: 1}); err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	if row := repo.rows[repo.key("alice", "perfect_2")]; row.Progress != 0 {
		t.Fatalf("progress after imperfect session = %d, want 0", row.Progress)
	}

	if _, err := tracker.OnEvent(ctx, "alice", Event{Kind: EventSessionComplete, SessionCount: 2, Perfect: true}); err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	unlocked, err := tracker.OnEvent(ctx, "alice", Event{Kind: EventSessionComplete, SessionCount: 3, Perfect: true})
	if err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Key != "perfect_2" {
		t.Fatalf("unlocked = %+v, want perfect_2", unlocked)
	}
}

func TestProgressSummaryPartitions(t *testing.T) {
	repo := newFakeAchievementRepo()
	tracker := NewTracker(testCatalog(), repo, nil)
	ctx := context.Background()

	// Earn first_session, leave sessions_10 in progress, touch nothing
	// else.
	if _, err := tracker.OnEvent(ctx, "alice", Event{Kind: EventSessionComplete, SessionCount: 1}); err != nil {
		t.Fatalf("OnEvent: %v", err)
	}
	if _, err := tracker.OnEvent(ctx, "alice", Event{Kind: EventSessionComplete, SessionCount: 2}); err != nil {
		t.Fatalf("OnEvent: %v", err)
	}

	sum, err := tracker.ProgressSummary(ctx, "alice")
	if err != nil {
		t.Fatalf("ProgressSummary: %v", err)
	}
	if sum.EarnedCount != 1 || sum.TotalCount != 5 {
		t.Fatalf("earned/total = %d/%d, want 1/5", sum.EarnedCount, sum.TotalCount)
	}
	if len(sum.InProgress) != 1 || sum.InProgress[0].Key != "sessions_10" {
		t.Fatalf("in progress = %+v, want sessions_10", sum.InProgress)
	}
	if len(sum.Locked) != 3 {
		t.Fatalf("locked = %d entries, want 3", len(sum.Locked))
	}
	if sum.CompletionPercentage != 20 {
		t.Fatalf("completion = %v, want 20", sum.CompletionPercentage)
	}
}
