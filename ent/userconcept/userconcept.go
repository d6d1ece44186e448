// Code generated by ent, DO NOT EDIT.

package userconcept

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userconcept type in the database.
	Label = "user_concept"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldConsecutiveWrong holds the string denoting the consecutive_wrong field in the database.
	FieldConsecutiveWrong = "consecutive_wrong"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// FieldNextReviewDue holds the string denoting the next_review_due field in the database.
	FieldNextReviewDue = "next_review_due"
	// Table holds the table name of the userconcept in the database.
	Table = "user_concepts"
)

// Columns holds all SQL columns for userconcept fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldConcept,
	FieldMastery,
	FieldTotalAttempts,
	FieldCorrectAttempts,
	FieldDifficulty,
	FieldConsecutiveCorrect,
	FieldConsecutiveWrong,
	FieldLastPracticed,
	FieldNextReviewDue,
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
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery int
	// MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	MasteryValidator func(int) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultConsecutiveCorrect holds the default value on creation for the "consecutive_correct" field.
	DefaultConsecutiveCorrect int
	// DefaultConsecutiveWrong holds the default value on creation for the "consecutive_wrong" field.
	DefaultConsecutiveWrong int
	// DefaultLastPracticed holds the default value on creation for the "last_practiced" field.
	DefaultLastPracticed func() time.Time
	// DefaultNextReviewDue holds the default value on creation for the "next_review_due" field.
	DefaultNextReviewDue func() time.Time
)

// OrderOption defines the ordering options for the UserConcept queries.
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

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByConsecutiveWrong orders the results by the consecutive_wrong field.
func ByConsecutiveWrong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveWrong, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}

// ByNextReviewDue orders the results by the next_review_due field.
func ByNextReviewDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewDue, opts...).ToFunc()
}
