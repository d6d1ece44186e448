// Code generated by ent, DO NOT EDIT.

package practicerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicerecord type in the database.
	Label = "practice_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldMasteryBefore holds the string denoting the mastery_before field in the database.
	FieldMasteryBefore = "mastery_before"
	// FieldMasteryAfter holds the string denoting the mastery_after field in the database.
	FieldMasteryAfter = "mastery_after"
	// FieldTimeSpentMs holds the string denoting the time_spent_ms field in the database.
	FieldTimeSpentMs = "time_spent_ms"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the practicerecord in the database.
	Table = "practice_records"
)

// Columns holds all SQL columns for practicerecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldConcept,
	FieldSessionID,
	FieldDifficulty,
	FieldCorrect,
	FieldMasteryBefore,
	FieldMasteryAfter,
	FieldTimeSpentMs,
	FieldTimestamp,
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
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultTimeSpentMs holds the default value on creation for the "time_spent_ms" field.
	DefaultTimeSpentMs int
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the PracticeRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByMasteryBefore orders the results by the mastery_before field.
func ByMasteryBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryBefore, opts...).ToFunc()
}

// ByMasteryAfter orders the results by the mastery_after field.
func ByMasteryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAfter, opts...).ToFunc()
}

// ByTimeSpentMs orders the results by the time_spent_ms field.
func ByTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMs, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
