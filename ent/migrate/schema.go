// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "target", Type: field.TypeInt},
		{Name: "earned_at", Type: field.TypeTime, Nullable: true},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_learner_id_key",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
		},
	}
	// PracticeRecordsColumns holds the columns for the "practice_records" table.
	PracticeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "mastery_before", Type: field.TypeInt},
		{Name: "mastery_after", Type: field.TypeInt},
		{Name: "time_spent_ms", Type: field.TypeInt, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PracticeRecordsTable holds the schema information for the "practice_records" table.
	PracticeRecordsTable = &schema.Table{
		Name:       "practice_records",
		Columns:    PracticeRecordsColumns,
		PrimaryKey: []*schema.Column{PracticeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicerecord_learner_id_concept",
				Unique:  false,
				Columns: []*schema.Column{PracticeRecordsColumns[1], PracticeRecordsColumns[2]},
			},
			{
				Name:    "practicerecord_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeRecordsColumns[1], PracticeRecordsColumns[9]},
			},
			{
				Name:    "practicerecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeRecordsColumns[3]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "concepts", Type: field.TypeJSON},
		{Name: "target_difficulty", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_correct", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
			{
				Name:    "practicesession_learner_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[10]},
			},
		},
	}
	// UserConceptsColumns holds the columns for the "user_concepts" table.
	UserConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: "easy"},
		{Name: "consecutive_correct", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_wrong", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime},
		{Name: "next_review_due", Type: field.TypeTime},
	}
	// UserConceptsTable holds the schema information for the "user_concepts" table.
	UserConceptsTable = &schema.Table{
		Name:       "user_concepts",
		Columns:    UserConceptsColumns,
		PrimaryKey: []*schema.Column{UserConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userconcept_learner_id_concept",
				Unique:  true,
				Columns: []*schema.Column{UserConceptsColumns[1], UserConceptsColumns[2]},
			},
			{
				Name:    "userconcept_learner_id_next_review_due",
				Unique:  false,
				Columns: []*schema.Column{UserConceptsColumns[1], UserConceptsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		PracticeRecordsTable,
		PracticeSessionsTable,
		UserConceptsTable,
	}
)

func init() {
}
