// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/schema"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at creation
	ID string `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// quick, focused, mastery or weak
	Kind string `json:"kind,omitempty"`
	// Concept names covered by this session
	Concepts []string `json:"concepts,omitempty"`
	// TargetDifficulty holds the value of the "target_difficulty" field.
	TargetDifficulty string `json:"target_difficulty,omitempty"`
	// The planned question set, graded against on completion
	Questions []schema.PlannedQuestion `json:"questions,omitempty"`
	// QuestionsTotal holds the value of the "questions_total" field.
	QuestionsTotal int `json:"questions_total,omitempty"`
	// QuestionsCorrect holds the value of the "questions_correct" field.
	QuestionsCorrect int `json:"questions_correct,omitempty"`
	// Percentage score, set on completion
	Score int `json:"score,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldConcepts, practicesession.FieldQuestions:
			values[i] = new([]byte)
		case practicesession.FieldQuestionsTotal, practicesession.FieldQuestionsCorrect, practicesession.FieldScore, practicesession.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldID, practicesession.FieldLearnerID, practicesession.FieldKind, practicesession.FieldTargetDifficulty:
			values[i] = new(sql.NullString)
		case practicesession.FieldStartedAt, practicesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (_m *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case practicesession.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case practicesession.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case practicesession.FieldConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concepts); err != nil {
					return fmt.Errorf("unmarshal field concepts: %w", err)
				}
			}
		case practicesession.FieldTargetDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_difficulty", values[i])
			} else if value.Valid {
				_m.TargetDifficulty = value.String
			}
		case practicesession.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case practicesession.FieldQuestionsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_total", values[i])
			} else if value.Valid {
				_m.QuestionsTotal = int(value.Int64)
			}
		case practicesession.FieldQuestionsCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_correct", values[i])
			} else if value.Valid {
				_m.QuestionsCorrect = int(value.Int64)
			}
		case practicesession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case practicesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case practicesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case practicesession.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concepts))
	builder.WriteString(", ")
	builder.WriteString("target_difficulty=")
	builder.WriteString(_m.TargetDifficulty)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("questions_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsTotal))
	builder.WriteString(", ")
	builder.WriteString("questions_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsCorrect))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
