package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement is one learner's progress against one catalog entry.
// Created lazily on first evaluation; immutable once earned_at is set.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("key").
			NotEmpty().
			Comment("Catalog key, e.g. streak_7 or concepts_mastered_5"),
		field.Int("progress").
			Default(0),
		field.Int("target").
			Comment("Copied from the catalog at creation time"),
		field.Time("earned_at").
			Optional().
			Nillable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "key").Unique(),
	}
}
