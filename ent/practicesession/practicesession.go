// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldConcepts holds the string denoting the concepts field in the database.
	FieldConcepts = "concepts"
	// FieldTargetDifficulty holds the string denoting the target_difficulty field in the database.
	FieldTargetDifficulty = "target_difficulty"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldQuestionsTotal holds the string denoting the questions_total field in the database.
	FieldQuestionsTotal = "questions_total"
	// FieldQuestionsCorrect holds the string denoting the questions_correct field in the database.
	FieldQuestionsCorrect = "questions_correct"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldKind,
	FieldConcepts,
	FieldTargetDifficulty,
	FieldQuestions,
	FieldQuestionsTotal,
	FieldQuestionsCorrect,
	FieldScore,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// TargetDifficultyValidator is a validator for the "target_difficulty" field. It is called by the builders before save.
	TargetDifficultyValidator func(string) error
	// DefaultQuestionsTotal holds the default value on creation for the "questions_total" field.
	DefaultQuestionsTotal int
	// DefaultQuestionsCorrect holds the default value on creation for the "questions_correct" field.
	DefaultQuestionsCorrect int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTargetDifficulty orders the results by the target_difficulty field.
func ByTargetDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDifficulty, opts...).ToFunc()
}

// ByQuestionsTotal orders the results by the questions_total field.
func ByQuestionsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsTotal, opts...).ToFunc()
}

// ByQuestionsCorrect orders the results by the questions_correct field.
func ByQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCorrect, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
