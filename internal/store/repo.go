package store

import (
	"context"
	"time"

	"github.com/apratap/adept/ent/schema"
)

// Repos bundles the repositories bound to one transaction scope.
type Repos struct {
	Concepts     ConceptRepo
	History      HistoryRepo
	Sessions     SessionRepo
	Achievements AchievementRepo
}

// TxRunner executes a function against transactional repos. When fn
// returns an error every write made through the passed Repos is rolled
// back; otherwise the transaction commits.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(Repos) error) error
}

// Concept is the persistence view of one learner's state in one
// concept.
type Concept struct {
	ID                 int
	LearnerID          string
	Concept            string
	Mastery            int
	TotalAttempts      int
	CorrectAttempts    int
	Difficulty         string
	ConsecutiveCorrect int
	ConsecutiveWrong   int
	LastPracticed      time.Time
	NextReviewDue      time.Time
}

// ConceptUpdate carries the full replacement state for one concept row.
// Mastery, difficulty, streaks and the review date change together so
// the row never holds a difficulty that disagrees with its mastery.
type ConceptUpdate struct {
	Mastery            int
	TotalAttempts      int
	CorrectAttempts    int
	Difficulty         string
	ConsecutiveCorrect int
	ConsecutiveWrong   int
	LastPracticed      time.Time
	NextReviewDue      time.Time
}

// ConceptRepo manages UserConcept rows.
type ConceptRepo interface {
	// GetOrCreate returns the learner's row for a concept, creating a
	// fresh one at mastery 0 on first practice.
	GetOrCreate(ctx context.Context, learnerID, concept string) (*Concept, error)

	// Get returns the learner's row for a concept, or ErrNotFound.
	Get(ctx context.Context, learnerID, concept string) (*Concept, error)

	// ByLearner returns all of a learner's concept rows.
	ByLearner(ctx context.Context, learnerID string) ([]*Concept, error)

	// UpdateCAS applies upd to the row identified by id, but only if
	// the row's mastery still equals expectedMastery. Returns
	// ErrConflict when a concurrent update won the race.
	UpdateCAS(ctx context.Context, id int, expectedMastery int, upd ConceptUpdate) error
}

// PracticeRecord is one append-only history entry.
type PracticeRecord struct {
	LearnerID     string
	Concept       string
	SessionID     string
	Difficulty    string
	Correct       bool
	MasteryBefore int
	MasteryAfter  int
	TimeSpentMs   int
	Timestamp     time.Time
}

// HistoryRepo manages the append-only practice log.
type HistoryRepo interface {
	// Append stores one history record. Records are immutable.
	Append(ctx context.Context, rec PracticeRecord) error

	// ByLearner returns the learner's records, newest first, capped at
	// limit (0 = unlimited).
	ByLearner(ctx context.Context, learnerID string, limit int) ([]*PracticeRecord, error)

	// RecentWrong returns the learner's most recent incorrect records,
	// newest first, capped at limit.
	RecentWrong(ctx context.Context, learnerID string, limit int) ([]*PracticeRecord, error)

	// PracticeDays returns the distinct UTC days on which the learner
	// practiced, newest first.
	PracticeDays(ctx context.Context, learnerID string) ([]time.Time, error)
}

// Session is the persistence view of a practice session.
type Session struct {
	ID               string
	LearnerID        string
	Kind             string
	Concepts         []string
	TargetDifficulty string
	Questions        []schema.PlannedQuestion
	QuestionsTotal   int
	QuestionsCorrect int
	Score            int
	StartedAt        time.Time
	CompletedAt      *time.Time
	DurationSecs     int
}

// SessionResult carries the terminal fields written exactly once when
// a session completes.
type SessionResult struct {
	QuestionsTotal   int
	QuestionsCorrect int
	Score            int
	CompletedAt      time.Time
	DurationSecs     int
}

// SessionRepo manages practice session rows.
type SessionRepo interface {
	// Create stores a new open session.
	Create(ctx context.Context, s *Session) error

	// Get returns a session by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// CompleteCAS sets the terminal fields, but only if the session is
	// still open. The conditional update on completed_at is the lock
	// that makes duplicate completions fail: the loser observes
	// ErrConflict.
	CompleteCAS(ctx context.Context, id string, res SessionResult) error

	// CountCompleted returns how many sessions the learner has
	// completed.
	CountCompleted(ctx context.Context, learnerID string) (int, error)
}

// AchievementRow is the persistence view of one learner/achievement
// pair.
type AchievementRow struct {
	ID        int
	LearnerID string
	Key       string
	Progress  int
	Target    int
	EarnedAt  *time.Time
}

// AchievementRepo manages achievement progress rows.
type AchievementRepo interface {
	// GetOrCreate returns the learner's row for a catalog key, creating
	// it with zero progress on first evaluation.
	GetOrCreate(ctx context.Context, learnerID, key string, target int) (*AchievementRow, error)

	// SetProgress records partial progress toward an unearned
	// achievement.
	SetProgress(ctx context.Context, id int, progress int) error

	// MarkEarned sets earned_at, but only if it is not already set.
	// Returns false when another call earned it first; earned status
	// never reverts.
	MarkEarned(ctx context.Context, id int, at time.Time) (bool, error)

	// ByLearner returns all of the learner's achievement rows.
	ByLearner(ctx context.Context, learnerID string) ([]*AchievementRow, error)
}
