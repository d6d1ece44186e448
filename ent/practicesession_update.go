// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/predicate"
	"github.com/apratap/adept/ent/schema"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PracticeSessionUpdate) SetLearnerID(v string) *PracticeSessionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableLearnerID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PracticeSessionUpdate) SetKind(v string) *PracticeSessionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableKind(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *PracticeSessionUpdate) SetConcepts(v []string) *PracticeSessionUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *PracticeSessionUpdate) AppendConcepts(v []string) *PracticeSessionUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_u *PracticeSessionUpdate) SetTargetDifficulty(v string) *PracticeSessionUpdate {
	_u.mutation.SetTargetDifficulty(v)
	return _u
}

// SetNillableTargetDifficulty sets the "target_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTargetDifficulty(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTargetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PracticeSessionUpdate) SetQuestions(v []schema.PlannedQuestion) *PracticeSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PracticeSessionUpdate) AppendQuestions(v []schema.PlannedQuestion) *PracticeSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *PracticeSessionUpdate) SetQuestionsTotal(v int) *PracticeSessionUpdate {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableQuestionsTotal(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *PracticeSessionUpdate) AddQuestionsTotal(v int) *PracticeSessionUpdate {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *PracticeSessionUpdate) SetQuestionsCorrect(v int) *PracticeSessionUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableQuestionsCorrect(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *PracticeSessionUpdate) AddQuestionsCorrect(v int) *PracticeSessionUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeSessionUpdate) SetScore(v int) *PracticeSessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableScore(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeSessionUpdate) AddScore(v int) *PracticeSessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdate) SetCompletedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdate) ClearCompletedAt() *PracticeSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdate) SetDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableDurationSecs(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdate) AddDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := practicesession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := practicesession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetDifficulty(); ok {
		if err := practicesession.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.target_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(practicesession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(practicesession.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldConcepts, value)
		})
	}
	if value, ok := _u.mutation.TargetDifficulty(); ok {
		_spec.SetField(practicesession.FieldTargetDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(practicesession.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(practicesession.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practicesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practicesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PracticeSessionUpdateOne) SetLearnerID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableLearnerID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PracticeSessionUpdateOne) SetKind(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableKind(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *PracticeSessionUpdateOne) SetConcepts(v []string) *PracticeSessionUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *PracticeSessionUpdateOne) AppendConcepts(v []string) *PracticeSessionUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_u *PracticeSessionUpdateOne) SetTargetDifficulty(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetTargetDifficulty(v)
	return _u
}

// SetNillableTargetDifficulty sets the "target_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTargetDifficulty(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTargetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PracticeSessionUpdateOne) SetQuestions(v []schema.PlannedQuestion) *PracticeSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PracticeSessionUpdateOne) AppendQuestions(v []schema.PlannedQuestion) *PracticeSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *PracticeSessionUpdateOne) SetQuestionsTotal(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableQuestionsTotal(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *PracticeSessionUpdateOne) AddQuestionsTotal(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *PracticeSessionUpdateOne) SetQuestionsCorrect(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableQuestionsCorrect(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *PracticeSessionUpdateOne) AddQuestionsCorrect(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeSessionUpdateOne) SetScore(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableScore(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeSessionUpdateOne) AddScore(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdateOne) SetCompletedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdateOne) ClearCompletedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) SetDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableDurationSecs(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) AddDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := practicesession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := practicesession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetDifficulty(); ok {
		if err := practicesession.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.target_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(practicesession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(practicesession.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldConcepts, value)
		})
	}
	if value, ok := _u.mutation.TargetDifficulty(); ok {
		_spec.SetField(practicesession.FieldTargetDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(practicesession.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(practicesession.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practicesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practicesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
