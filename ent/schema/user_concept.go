package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserConcept tracks one learner's competence in one named concept.
// Rows are created on first practice and never deleted.
type UserConcept struct {
	ent.Schema
}

func (UserConcept) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Owning learner"),
		field.String("concept").
			NotEmpty().
			Comment("Concept name, unique per learner"),
		field.Int("mastery").
			Default(0).
			Min(0).
			Max(100).
			Comment("Estimated competence, 0-100"),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_attempts").
			Default(0),
		field.String("difficulty").
			Default("easy").
			Comment("Suggested difficulty for the current mastery: easy, medium or hard"),
		field.Int("consecutive_correct").
			Default(0),
		field.Int("consecutive_wrong").
			Default(0),
		field.Time("last_practiced").
			Default(time.Now),
		field.Time("next_review_due").
			Default(time.Now).
			Comment("Spaced repetition due date derived from mastery"),
	}
}

func (UserConcept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept").Unique(),
		index.Fields("learner_id", "next_review_due"),
	}
}
