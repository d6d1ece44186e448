// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/practicerecord"
)

// PracticeRecord is the model entity for the PracticeRecord schema.
type PracticeRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Concept holds the value of the "concept" field.
	Concept string `json:"concept,omitempty"`
	// UUID of the practice session, empty for ad-hoc practice
	SessionID string `json:"session_id,omitempty"`
	// Difficulty of the answered question
	Difficulty string `json:"difficulty,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// MasteryBefore holds the value of the "mastery_before" field.
	MasteryBefore int `json:"mastery_before,omitempty"`
	// MasteryAfter holds the value of the "mastery_after" field.
	MasteryAfter int `json:"mastery_after,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs int `json:"time_spent_ms,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicerecord.FieldCorrect:
			values[i] = new(sql.NullBool)
		case practicerecord.FieldID, practicerecord.FieldMasteryBefore, practicerecord.FieldMasteryAfter, practicerecord.FieldTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case practicerecord.FieldLearnerID, practicerecord.FieldConcept, practicerecord.FieldSessionID, practicerecord.FieldDifficulty:
			values[i] = new(sql.NullString)
		case practicerecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeRecord fields.
func (_m *PracticeRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicerecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case practicerecord.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case practicerecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case practicerecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case practicerecord.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case practicerecord.FieldMasteryBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_before", values[i])
			} else if value.Valid {
				_m.MasteryBefore = int(value.Int64)
			}
		case practicerecord.FieldMasteryAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_after", values[i])
			} else if value.Valid {
				_m.MasteryAfter = int(value.Int64)
			}
		case practicerecord.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = int(value.Int64)
			}
		case practicerecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeRecord.
// Note that you need to call PracticeRecord.Unwrap() before calling this method if this PracticeRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeRecord) Update() *PracticeRecordUpdateOne {
	return NewPracticeRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeRecord) Unwrap() *PracticeRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("mastery_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryBefore))
	builder.WriteString(", ")
	builder.WriteString("mastery_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAfter))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeRecords is a parsable slice of PracticeRecord.
type PracticeRecords []*PracticeRecord
