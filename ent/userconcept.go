// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/userconcept"
)

// UserConcept is the model entity for the UserConcept schema.
type UserConcept struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning learner
	LearnerID string `json:"learner_id,omitempty"`
	// Concept name, unique per learner
	Concept string `json:"concept,omitempty"`
	// Estimated competence, 0-100
	Mastery int `json:"mastery,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// Suggested difficulty for the current mastery: easy, medium or hard
	Difficulty string `json:"difficulty,omitempty"`
	// ConsecutiveCorrect holds the value of the "consecutive_correct" field.
	ConsecutiveCorrect int `json:"consecutive_correct,omitempty"`
	// ConsecutiveWrong holds the value of the "consecutive_wrong" field.
	ConsecutiveWrong int `json:"consecutive_wrong,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed time.Time `json:"last_practiced,omitempty"`
	// Spaced repetition due date derived from mastery
	NextReviewDue time.Time `json:"next_review_due,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserConcept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userconcept.FieldID, userconcept.FieldMastery, userconcept.FieldTotalAttempts, userconcept.FieldCorrectAttempts, userconcept.FieldConsecutiveCorrect, userconcept.FieldConsecutiveWrong:
			values[i] = new(sql.NullInt64)
		case userconcept.FieldLearnerID, userconcept.FieldConcept, userconcept.FieldDifficulty:
			values[i] = new(sql.NullString)
		case userconcept.FieldLastPracticed, userconcept.FieldNextReviewDue:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserConcept fields.
func (_m *UserConcept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userconcept.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userconcept.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case userconcept.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case userconcept.FieldMastery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = int(value.Int64)
			}
		case userconcept.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case userconcept.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case userconcept.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case userconcept.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				_m.ConsecutiveCorrect = int(value.Int64)
			}
		case userconcept.FieldConsecutiveWrong:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_wrong", values[i])
			} else if value.Valid {
				_m.ConsecutiveWrong = int(value.Int64)
			}
		case userconcept.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = value.Time
			}
		case userconcept.FieldNextReviewDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_due", values[i])
			} else if value.Valid {
				_m.NextReviewDue = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserConcept.
// This includes values selected through modifiers, order, etc.
func (_m *UserConcept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserConcept.
// Note that you need to call UserConcept.Unwrap() before calling this method if this UserConcept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserConcept) Update() *UserConceptUpdateOne {
	return NewUserConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserConcept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserConcept) Unwrap() *UserConcept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserConcept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserConcept) String() string {
	var builder strings.Builder
	builder.WriteString("UserConcept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("consecutive_wrong=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveWrong))
	builder.WriteString(", ")
	builder.WriteString("last_practiced=")
	builder.WriteString(_m.LastPracticed.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review_due=")
	builder.WriteString(_m.NextReviewDue.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserConcepts is a parsable slice of UserConcept.
type UserConcepts []*UserConcept
