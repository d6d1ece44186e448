package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlannedQuestion is the serialized form of a planned question stored
// with its session.
type PlannedQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation,omitempty"`
	Concepts      []string `json:"concepts"`
	EstSeconds    int      `json:"est_seconds"`
}

// PracticeSession is one bounded practice attempt. It is created open
// and completed exactly once: completed_at transitions nil -> set and
// the row is terminal afterwards.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("learner_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("quick, focused, mastery or weak"),
		field.JSON("concepts", []string{}).
			Comment("Concept names covered by this session"),
		field.String("target_difficulty").
			NotEmpty(),
		field.JSON("questions", []PlannedQuestion{}).
			Comment("The planned question set, graded against on completion"),
		field.Int("questions_total").
			Default(0),
		field.Int("questions_correct").
			Default(0),
		field.Int("score").
			Default(0).
			Comment("Percentage score, set on completion"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_secs").
			Default(0),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "completed_at"),
	}
}
