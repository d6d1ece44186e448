package session

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/apratap/adept/internal/achievements"
	"github.com/apratap/adept/internal/store"
)

type fakeConceptRepo struct {
	rows   map[string]*store.Concept
	nextID int

	// conflicts[id] makes the next n UpdateCAS calls for that row fail
	// with ErrConflict without applying.
	conflicts map[int]int
}

func newFakeConceptRepo() *fakeConceptRepo {
	return &fakeConceptRepo{
		rows:      make(map[string]*store.Concept),
		conflicts: make(map[int]int),
	}
}

func conceptKey(learnerID, concept string) string {
	return learnerID + "/" + concept
}

func (r *fakeConceptRepo) GetOrCreate(_ context.Context, learnerID, concept string) (*store.Concept, error) {
	if row, ok := r.rows[conceptKey(learnerID, concept)]; ok {
		cp := *row
		return &cp, nil
	}
	r.nextID++
	row := &store.Concept{
		ID:         r.nextID,
		LearnerID:  learnerID,
		Concept:    concept,
		Difficulty: "easy",
	}
	r.rows[conceptKey(learnerID, concept)] = row
	cp := *row
	return &cp, nil
}

func (r *fakeConceptRepo) Get(_ context.Context, learnerID, concept string) (*store.Concept, error) {
	row, ok := r.rows[conceptKey(learnerID, concept)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeConceptRepo) ByLearner(_ context.Context, learnerID string) ([]*store.Concept, error) {
	var out []*store.Concept
	for _, row := range r.rows {
		if row.LearnerID == learnerID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeConceptRepo) UpdateCAS(_ context.Context, id int, expectedMastery int, upd store.ConceptUpdate) error {
	if n := r.conflicts[id]; n > 0 {
		r.conflicts[id] = n - 1
		return store.ErrConflict
	}
	for _, row := range r.rows {
		if row.ID != id {
			continue
		}
		if row.Mastery != expectedMastery {
			return store.ErrConflict
		}
		row.Mastery = upd.Mastery
		row.TotalAttempts = upd.TotalAttempts
		row.CorrectAttempts = upd.CorrectAttempts
		row.Difficulty = upd.Difficulty
		row.ConsecutiveCorrect = upd.ConsecutiveCorrect
		row.ConsecutiveWrong = upd.ConsecutiveWrong
		row.LastPracticed = upd.LastPracticed
		row.NextReviewDue = upd.NextReviewDue
		return nil
	}
	return store.ErrNotFound
}

type fakeHistoryRepo struct {
	records []store.PracticeRecord
}

func (r *fakeHistoryRepo) Append(_ context.Context, rec store.PracticeRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeHistoryRepo) ByLearner(_ context.Context, learnerID string, limit int) ([]*store.PracticeRecord, error) {
	var out []*store.PracticeRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].LearnerID != learnerID {
			continue
		}
		rec := r.records[i]
		out = append(out, &rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) RecentWrong(_ context.Context, learnerID string, limit int) ([]*store.PracticeRecord, error) {
	var out []*store.PracticeRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].LearnerID != learnerID || r.records[i].Correct {
			continue
		}
		rec := r.records[i]
		out = append(out, &rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) PracticeDays(_ context.Context, learnerID string) ([]time.Time, error) {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].LearnerID != learnerID {
			continue
		}
		day := r.records[i].Timestamp.UTC().Truncate(24 * time.Hour)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days, nil
}

type fakeSessionRepo struct {
	sessions map[string]*store.Session

	// staleOpenRead makes Get report every session as still open, the
	// view a concurrent completer has before the first commit lands.
	staleOpenRead bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*store.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *store.Session) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	if r.staleOpenRead {
		cp.CompletedAt = nil
	}
	return &cp, nil
}

func (r *fakeSessionRepo) CompleteCAS(_ context.Context, id string, res store.SessionResult) error {
	s, ok := r.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	if s.CompletedAt != nil {
		return store.ErrConflict
	}
	at := res.CompletedAt
	s.CompletedAt = &at
	s.QuestionsTotal = res.QuestionsTotal
	s.QuestionsCorrect = res.QuestionsCorrect
	s.Score = res.Score
	s.DurationSecs = res.DurationSecs
	return nil
}

func (r *fakeSessionRepo) CountCompleted(_ context.Context, learnerID string) (int, error) {
	n := 0
	for _, s := range r.sessions {
		if s.LearnerID == learnerID && s.CompletedAt != nil {
			n++
		}
	}
	return n, nil
}

type fakeAchievementRepo struct {
	rows   map[string]*store.AchievementRow
	nextID int
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{rows: make(map[string]*store.AchievementRow)}
}

func (r *fakeAchievementRepo) GetOrCreate(_ context.Context, learnerID, key string, target int) (*store.AchievementRow, error) {
	k := learnerID + "/" + key
	if row, ok := r.rows[k]; ok {
		cp := *row
		return &cp, nil
	}
	r.nextID++
	row := &store.AchievementRow{ID: r.nextID, LearnerID: learnerID, Key: key, Target: target}
	r.rows[k] = row
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

// fakeTxRunner gives the fakes transaction semantics: state is
// snapshotted before fn runs and restored when fn fails, so rollback
// behavior is observable in tests.
type fakeTxRunner struct {
	concepts *fakeConceptRepo
	history  *fakeHistoryRepo
	sessions *fakeSessionRepo
}

func (r *fakeTxRunner) RunInTx(_ context.Context, fn func(store.Repos) error) error {
	conceptRows := make(map[string]*store.Concept, len(r.concepts.rows))
	for k, v := range r.concepts.rows {
		cp := *v
		conceptRows[k] = &cp
	}
	conceptNextID := r.concepts.nextID
	records := append([]store.PracticeRecord(nil), r.history.records...)
	sessionRows := make(map[string]*store.Session, len(r.sessions.sessions))
	for k, v := range r.sessions.sessions {
		cp := *v
		if v.CompletedAt != nil {
			at := *v.CompletedAt
			cp.CompletedAt = &at
		}
		sessionRows[k] = &cp
	}

	err := fn(store.Repos{
		Concepts: r.concepts,
		History:  r.history,
		Sessions: r.sessions,
	})
	if err != nil {
		r.concepts.rows = conceptRows
		r.concepts.nextID = conceptNextID
		r.history.records = records
		r.sessions.sessions = sessionRows
	}
	return err
}

// newTestService wires a Service over in-memory fakes with a pinned
// clock.
func newTestService(now time.Time) (*Service, *fakeConceptRepo, *fakeHistoryRepo, *fakeSessionRepo) {
	concepts := newFakeConceptRepo()
	history := &fakeHistoryRepo{}
	sessions := newFakeSessionRepo()
	tracker := achievements.NewTracker(achievements.DefaultCatalog(), newFakeAchievementRepo(), nil)

	svc := &Service{
		concepts: concepts,
		history:  history,
		sessions: sessions,
		tx:       &fakeTxRunner{concepts: concepts, history: history, sessions: sessions},
		planner:  NewPlanner(nil, nil),
		tracker:  tracker,
		logger:   zap.NewNop(),
		now:      func() time.Time { return now },
	}
	return svc, concepts, history, sessions
}
