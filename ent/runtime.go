// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apratap/adept/ent/achievement"
	"github.com/apratap/adept/ent/practicerecord"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/ent/userconcept"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescLearnerID is the schema descriptor for learner_id field.
	achievementDescLearnerID := achievementFields[0].Descriptor()
	// achievement.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	achievement.LearnerIDValidator = achievementDescLearnerID.Validators[0].(func(string) error)
	// achievementDescKey is the schema descriptor for key field.
	achievementDescKey := achievementFields[1].Descriptor()
	// achievement.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	achievement.KeyValidator = achievementDescKey.Validators[0].(func(string) error)
	// achievementDescProgress is the schema descriptor for progress field.
	achievementDescProgress := achievementFields[2].Descriptor()
	// achievement.DefaultProgress holds the default value on creation for the progress field.
	achievement.DefaultProgress = achievementDescProgress.Default.(int)
	practicerecordFields := schema.PracticeRecord{}.Fields()
	_ = practicerecordFields
	// practicerecordDescLearnerID is the schema descriptor for learner_id field.
	practicerecordDescLearnerID := practicerecordFields[0].Descriptor()
	// practicerecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	practicerecord.LearnerIDValidator = practicerecordDescLearnerID.Validators[0].(func(string) error)
	// practicerecordDescConcept is the schema descriptor for concept field.
	practicerecordDescConcept := practicerecordFields[1].Descriptor()
	// practicerecord.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	practicerecord.ConceptValidator = practicerecordDescConcept.Validators[0].(func(string) error)
	// practicerecordDescDifficulty is the schema descriptor for difficulty field.
	practicerecordDescDifficulty := practicerecordFields[3].Descriptor()
	// practicerecord.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	practicerecord.DifficultyValidator = practicerecordDescDifficulty.Validators[0].(func(string) error)
	// practicerecordDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	practicerecordDescTimeSpentMs := practicerecordFields[7].Descriptor()
	// practicerecord.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	practicerecord.DefaultTimeSpentMs = practicerecordDescTimeSpentMs.Default.(int)
	// practicerecordDescTimestamp is the schema descriptor for timestamp field.
	practicerecordDescTimestamp := practicerecordFields[8].Descriptor()
	// practicerecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	practicerecord.DefaultTimestamp = practicerecordDescTimestamp.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescLearnerID is the schema descriptor for learner_id field.
	practicesessionDescLearnerID := practicesessionFields[1].Descriptor()
	// practicesession.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	practicesession.LearnerIDValidator = practicesessionDescLearnerID.Validators[0].(func(string) error)
	// practicesessionDescKind is the schema descriptor for kind field.
	practicesessionDescKind := practicesessionFields[2].Descriptor()
	// practicesession.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	practicesession.KindValidator = practicesessionDescKind.Validators[0].(func(string) error)
	// practicesessionDescTargetDifficulty is the schema descriptor for target_difficulty field.
	practicesessionDescTargetDifficulty := practicesessionFields[4].Descriptor()
	// practicesession.TargetDifficultyValidator is a validator for the "target_difficulty" field. It is called by the builders before save.
	practicesession.TargetDifficultyValidator = practicesessionDescTargetDifficulty.Validators[0].(func(string) error)
	// practicesessionDescQuestionsTotal is the schema descriptor for questions_total field.
	practicesessionDescQuestionsTotal := practicesessionFields[6].Descriptor()
	// practicesession.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	practicesession.DefaultQuestionsTotal = practicesessionDescQuestionsTotal.Default.(int)
	// practicesessionDescQuestionsCorrect is the schema descriptor for questions_correct field.
	practicesessionDescQuestionsCorrect := practicesessionFields[7].Descriptor()
	// practicesession.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	practicesession.DefaultQuestionsCorrect = practicesessionDescQuestionsCorrect.Default.(int)
	// practicesessionDescScore is the schema descriptor for score field.
	practicesessionDescScore := practicesessionFields[8].Descriptor()
	// practicesession.DefaultScore holds the default value on creation for the score field.
	practicesession.DefaultScore = practicesessionDescScore.Default.(int)
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionFields[9].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescDurationSecs is the schema descriptor for duration_secs field.
	practicesessionDescDurationSecs := practicesessionFields[11].Descriptor()
	// practicesession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	practicesession.DefaultDurationSecs = practicesessionDescDurationSecs.Default.(int)
	// practicesessionDescID is the schema descriptor for id field.
	practicesessionDescID := practicesessionFields[0].Descriptor()
	// practicesession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	practicesession.IDValidator = practicesessionDescID.Validators[0].(func(string) error)
	userconceptFields := schema.UserConcept{}.Fields()
	_ = userconceptFields
	// userconceptDescLearnerID is the schema descriptor for learner_id field.
	userconceptDescLearnerID := userconceptFields[0].Descriptor()
	// userconcept.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	userconcept.LearnerIDValidator = userconceptDescLearnerID.Validators[0].(func(string) error)
	// userconceptDescConcept is the schema descriptor for concept field.
	userconceptDescConcept := userconceptFields[1].Descriptor()
	// userconcept.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	userconcept.ConceptValidator = userconceptDescConcept.Validators[0].(func(string) error)
	// userconceptDescMastery is the schema descriptor for mastery field.
	userconceptDescMastery := userconceptFields[2].Descriptor()
	// userconcept.DefaultMastery holds the default value on creation for the mastery field.
	userconcept.DefaultMastery = userconceptDescMastery.Default.(int)
	// userconcept.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	userconcept.MasteryValidator = func() func(int) error {
		validators := userconceptDescMastery.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery int) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userconceptDescTotalAttempts is the schema descriptor for total_attempts field.
	userconceptDescTotalAttempts := userconceptFields[3].Descriptor()
	// userconcept.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	userconcept.DefaultTotalAttempts = userconceptDescTotalAttempts.Default.(int)
	// userconceptDescCorrectAttempts is the schema descriptor for correct_attempts field.
	userconceptDescCorrectAttempts := userconceptFields[4].Descriptor()
	// userconcept.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	userconcept.DefaultCorrectAttempts = userconceptDescCorrectAttempts.Default.(int)
	// userconceptDescDifficulty is the schema descriptor for difficulty field.
	userconceptDescDifficulty := userconceptFields[5].Descriptor()
	// userconcept.DefaultDifficulty holds the default value on creation for the difficulty field.
	userconcept.DefaultDifficulty = userconceptDescDifficulty.Default.(string)
	// userconceptDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	userconceptDescConsecutiveCorrect := userconceptFields[6].Descriptor()
	// userconcept.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	userconcept.DefaultConsecutiveCorrect = userconceptDescConsecutiveCorrect.Default.(int)
	// userconceptDescConsecutiveWrong is the schema descriptor for consecutive_wrong field.
	userconceptDescConsecutiveWrong := userconceptFields[7].Descriptor()
	// userconcept.DefaultConsecutiveWrong holds the default value on creation for the consecutive_wrong field.
	userconcept.DefaultConsecutiveWrong = userconceptDescConsecutiveWrong.Default.(int)
	// userconceptDescLastPracticed is the schema descriptor for last_practiced field.
	userconceptDescLastPracticed := userconceptFields[8].Descriptor()
	// userconcept.DefaultLastPracticed holds the default value on creation for the last_practiced field.
	userconcept.DefaultLastPracticed = userconceptDescLastPracticed.Default.(func() time.Time)
	// userconceptDescNextReviewDue is the schema descriptor for next_review_due field.
	userconceptDescNextReviewDue := userconceptFields[9].Descriptor()
	// userconcept.DefaultNextReviewDue holds the default value on creation for the next_review_due field.
	userconcept.DefaultNextReviewDue = userconceptDescNextReviewDue.Default.(func() time.Time)
}
