// Code generated by ent, DO NOT EDIT.

package practicerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldLearnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldConcept, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldSessionID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldDifficulty, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldCorrect, v))
}

// MasteryBefore applies equality check predicate on the "mastery_before" field. It's identical to MasteryBeforeEQ.
func MasteryBefore(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryAfter applies equality check predicate on the "mastery_after" field. It's identical to MasteryAfterEQ.
func MasteryAfter(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldMasteryAfter, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldTimeSpentMs, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContainsFold(FieldConcept, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldContainsFold(FieldDifficulty, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldCorrect, v))
}

// MasteryBeforeEQ applies the EQ predicate on the "mastery_before" field.
func MasteryBeforeEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryBeforeNEQ applies the NEQ predicate on the "mastery_before" field.
func MasteryBeforeNEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldMasteryBefore, v))
}

// MasteryBeforeIn applies the In predicate on the "mastery_before" field.
func MasteryBeforeIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeNotIn applies the NotIn predicate on the "mastery_before" field.
func MasteryBeforeNotIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeGT applies the GT predicate on the "mastery_before" field.
func MasteryBeforeGT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldMasteryBefore, v))
}

// MasteryBeforeGTE applies the GTE predicate on the "mastery_before" field.
func MasteryBeforeGTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldMasteryBefore, v))
}

// MasteryBeforeLT applies the LT predicate on the "mastery_before" field.
func MasteryBeforeLT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldMasteryBefore, v))
}

// MasteryBeforeLTE applies the LTE predicate on the "mastery_before" field.
func MasteryBeforeLTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldMasteryBefore, v))
}

// MasteryAfterEQ applies the EQ predicate on the "mastery_after" field.
func MasteryAfterEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldMasteryAfter, v))
}

// MasteryAfterNEQ applies the NEQ predicate on the "mastery_after" field.
func MasteryAfterNEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldMasteryAfter, v))
}

// MasteryAfterIn applies the In predicate on the "mastery_after" field.
func MasteryAfterIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldMasteryAfter, vs...))
}

// MasteryAfterNotIn applies the NotIn predicate on the "mastery_after" field.
func MasteryAfterNotIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldMasteryAfter, vs...))
}

// MasteryAfterGT applies the GT predicate on the "mastery_after" field.
func MasteryAfterGT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldMasteryAfter, v))
}

// MasteryAfterGTE applies the GTE predicate on the "mastery_after" field.
func MasteryAfterGTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldMasteryAfter, v))
}

// MasteryAfterLT applies the LT predicate on the "mastery_after" field.
func MasteryAfterLT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldMasteryAfter, v))
}

// MasteryAfterLTE applies the LTE predicate on the "mastery_after" field.
func MasteryAfterLTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldMasteryAfter, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldTimeSpentMs, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeRecord) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeRecord) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeRecord) predicate.PracticeRecord {
	return predicate.PracticeRecord(sql.NotPredicates(p))
}
