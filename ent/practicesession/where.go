// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldLearnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldKind, v))
}

// TargetDifficulty applies equality check predicate on the "target_difficulty" field. It's identical to TargetDifficultyEQ.
func TargetDifficulty(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTargetDifficulty, v))
}

// QuestionsTotal applies equality check predicate on the "questions_total" field. It's identical to QuestionsTotalEQ.
func QuestionsTotal(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsCorrect applies equality check predicate on the "questions_correct" field. It's identical to QuestionsCorrectEQ.
func QuestionsCorrect(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldScore, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDurationSecs, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldLearnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldKind, v))
}

// TargetDifficultyEQ applies the EQ predicate on the "target_difficulty" field.
func TargetDifficultyEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTargetDifficulty, v))
}

// TargetDifficultyNEQ applies the NEQ predicate on the "target_difficulty" field.
func TargetDifficultyNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTargetDifficulty, v))
}

// TargetDifficultyIn applies the In predicate on the "target_difficulty" field.
func TargetDifficultyIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTargetDifficulty, vs...))
}

// TargetDifficultyNotIn applies the NotIn predicate on the "target_difficulty" field.
func TargetDifficultyNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTargetDifficulty, vs...))
}

// TargetDifficultyGT applies the GT predicate on the "target_difficulty" field.
func TargetDifficultyGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTargetDifficulty, v))
}

// TargetDifficultyGTE applies the GTE predicate on the "target_difficulty" field.
func TargetDifficultyGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTargetDifficulty, v))
}

// TargetDifficultyLT applies the LT predicate on the "target_difficulty" field.
func TargetDifficultyLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTargetDifficulty, v))
}

// TargetDifficultyLTE applies the LTE predicate on the "target_difficulty" field.
func TargetDifficultyLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTargetDifficulty, v))
}

// TargetDifficultyContains applies the Contains predicate on the "target_difficulty" field.
func TargetDifficultyContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldTargetDifficulty, v))
}

// TargetDifficultyHasPrefix applies the HasPrefix predicate on the "target_difficulty" field.
func TargetDifficultyHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldTargetDifficulty, v))
}

// TargetDifficultyHasSuffix applies the HasSuffix predicate on the "target_difficulty" field.
func TargetDifficultyHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldTargetDifficulty, v))
}

// TargetDifficultyEqualFold applies the EqualFold predicate on the "target_difficulty" field.
func TargetDifficultyEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldTargetDifficulty, v))
}

// TargetDifficultyContainsFold applies the ContainsFold predicate on the "target_difficulty" field.
func TargetDifficultyContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldTargetDifficulty, v))
}

// QuestionsTotalEQ applies the EQ predicate on the "questions_total" field.
func QuestionsTotalEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalNEQ applies the NEQ predicate on the "questions_total" field.
func QuestionsTotalNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalIn applies the In predicate on the "questions_total" field.
func QuestionsTotalIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalNotIn applies the NotIn predicate on the "questions_total" field.
func QuestionsTotalNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalGT applies the GT predicate on the "questions_total" field.
func QuestionsTotalGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldQuestionsTotal, v))
}

// QuestionsTotalGTE applies the GTE predicate on the "questions_total" field.
func QuestionsTotalGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldQuestionsTotal, v))
}

// QuestionsTotalLT applies the LT predicate on the "questions_total" field.
func QuestionsTotalLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldQuestionsTotal, v))
}

// QuestionsTotalLTE applies the LTE predicate on the "questions_total" field.
func QuestionsTotalLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldQuestionsTotal, v))
}

// QuestionsCorrectEQ applies the EQ predicate on the "questions_correct" field.
func QuestionsCorrectEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectNEQ applies the NEQ predicate on the "questions_correct" field.
func QuestionsCorrectNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectIn applies the In predicate on the "questions_correct" field.
func QuestionsCorrectIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectNotIn applies the NotIn predicate on the "questions_correct" field.
func QuestionsCorrectNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectGT applies the GT predicate on the "questions_correct" field.
func QuestionsCorrectGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectGTE applies the GTE predicate on the "questions_correct" field.
func QuestionsCorrectGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLT applies the LT predicate on the "questions_correct" field.
func QuestionsCorrectLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLTE applies the LTE predicate on the "questions_correct" field.
func QuestionsCorrectLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldQuestionsCorrect, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldScore, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCompletedAt))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
