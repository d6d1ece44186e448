// Code generated by ent, DO NOT EDIT.

package userconcept

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldLearnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConcept, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldMastery, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldCorrectAttempts, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldDifficulty, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveWrong applies equality check predicate on the "consecutive_wrong" field. It's identical to ConsecutiveWrongEQ.
func ConsecutiveWrong(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConsecutiveWrong, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldLastPracticed, v))
}

// NextReviewDue applies equality check predicate on the "next_review_due" field. It's identical to NextReviewDueEQ.
func NextReviewDue(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldNextReviewDue, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContainsFold(FieldConcept, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldMastery, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldCorrectAttempts, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldContainsFold(FieldDifficulty, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveWrongEQ applies the EQ predicate on the "consecutive_wrong" field.
func ConsecutiveWrongEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldConsecutiveWrong, v))
}

// ConsecutiveWrongNEQ applies the NEQ predicate on the "consecutive_wrong" field.
func ConsecutiveWrongNEQ(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldConsecutiveWrong, v))
}

// ConsecutiveWrongIn applies the In predicate on the "consecutive_wrong" field.
func ConsecutiveWrongIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldConsecutiveWrong, vs...))
}

// ConsecutiveWrongNotIn applies the NotIn predicate on the "consecutive_wrong" field.
func ConsecutiveWrongNotIn(vs ...int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldConsecutiveWrong, vs...))
}

// ConsecutiveWrongGT applies the GT predicate on the "consecutive_wrong" field.
func ConsecutiveWrongGT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldConsecutiveWrong, v))
}

// ConsecutiveWrongGTE applies the GTE predicate on the "consecutive_wrong" field.
func ConsecutiveWrongGTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldConsecutiveWrong, v))
}

// ConsecutiveWrongLT applies the LT predicate on the "consecutive_wrong" field.
func ConsecutiveWrongLT(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldConsecutiveWrong, v))
}

// ConsecutiveWrongLTE applies the LTE predicate on the "consecutive_wrong" field.
func ConsecutiveWrongLTE(v int) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldConsecutiveWrong, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldLastPracticed, v))
}

// NextReviewDueEQ applies the EQ predicate on the "next_review_due" field.
func NextReviewDueEQ(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldEQ(FieldNextReviewDue, v))
}

// NextReviewDueNEQ applies the NEQ predicate on the "next_review_due" field.
func NextReviewDueNEQ(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNEQ(FieldNextReviewDue, v))
}

// NextReviewDueIn applies the In predicate on the "next_review_due" field.
func NextReviewDueIn(vs ...time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldIn(FieldNextReviewDue, vs...))
}

// NextReviewDueNotIn applies the NotIn predicate on the "next_review_due" field.
func NextReviewDueNotIn(vs ...time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldNotIn(FieldNextReviewDue, vs...))
}

// NextReviewDueGT applies the GT predicate on the "next_review_due" field.
func NextReviewDueGT(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGT(FieldNextReviewDue, v))
}

// NextReviewDueGTE applies the GTE predicate on the "next_review_due" field.
func NextReviewDueGTE(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldGTE(FieldNextReviewDue, v))
}

// NextReviewDueLT applies the LT predicate on the "next_review_due" field.
func NextReviewDueLT(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLT(FieldNextReviewDue, v))
}

// NextReviewDueLTE applies the LTE predicate on the "next_review_due" field.
func NextReviewDueLTE(v time.Time) predicate.UserConcept {
	return predicate.UserConcept(sql.FieldLTE(FieldNextReviewDue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserConcept) predicate.UserConcept {
	return predicate.UserConcept(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserConcept) predicate.UserConcept {
	return predicate.UserConcept(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserConcept) predicate.UserConcept {
	return predicate.UserConcept(sql.NotPredicates(p))
}
