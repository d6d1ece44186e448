package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeRecord is an append-only log entry: one row per answered
// question per concept tag. Immutable after creation; feeds trend
// charts and the declining-performance signal.
type PracticeRecord struct {
	ent.Schema
}

func (PracticeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept").
			NotEmpty(),
		field.String("session_id").
			Optional().
			Comment("UUID of the practice session, empty for ad-hoc practice"),
		field.String("difficulty").
			NotEmpty().
			Comment("Difficulty of the answered question"),
		field.Bool("correct"),
		field.Int("mastery_before"),
		field.Int("mastery_after"),
		field.Int("time_spent_ms").
			Default(0),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (PracticeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept"),
		index.Fields("learner_id", "timestamp"),
		index.Fields("session_id"),
	}
}
