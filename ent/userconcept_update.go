// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/predicate"
	"github.com/apratap/adept/ent/userconcept"
)

// UserConceptUpdate is the builder for updating UserConcept entities.
type UserConceptUpdate struct {
	config
	hooks    []Hook
	mutation *UserConceptMutation
}

// Where appends a list predicates to the UserConceptUpdate builder.
func (_u *UserConceptUpdate) Where(ps ...predicate.UserConcept) *UserConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *UserConceptUpdate) SetLearnerID(v string) *UserConceptUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableLearnerID(v *string) *UserConceptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *UserConceptUpdate) SetConcept(v string) *UserConceptUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableConcept(v *string) *UserConceptUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *UserConceptUpdate) SetMastery(v int) *UserConceptUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableMastery(v *int) *UserConceptUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *UserConceptUpdate) AddMastery(v int) *UserConceptUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserConceptUpdate) SetTotalAttempts(v int) *UserConceptUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableTotalAttempts(v *int) *UserConceptUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserConceptUpdate) AddTotalAttempts(v int) *UserConceptUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *UserConceptUpdate) SetCorrectAttempts(v int) *UserConceptUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableCorrectAttempts(v *int) *UserConceptUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *UserConceptUpdate) AddCorrectAttempts(v int) *UserConceptUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *UserConceptUpdate) SetDifficulty(v string) *UserConceptUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableDifficulty(v *string) *UserConceptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *UserConceptUpdate) SetConsecutiveCorrect(v int) *UserConceptUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableConsecutiveCorrect(v *int) *UserConceptUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *UserConceptUpdate) AddConsecutiveCorrect(v int) *UserConceptUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetConsecutiveWrong sets the "consecutive_wrong" field.
func (_u *UserConceptUpdate) SetConsecutiveWrong(v int) *UserConceptUpdate {
	_u.mutation.ResetConsecutiveWrong()
	_u.mutation.SetConsecutiveWrong(v)
	return _u
}

// SetNillableConsecutiveWrong sets the "consecutive_wrong" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableConsecutiveWrong(v *int) *UserConceptUpdate {
	if v != nil {
		_u.SetConsecutiveWrong(*v)
	}
	return _u
}

// AddConsecutiveWrong adds value to the "consecutive_wrong" field.
func (_u *UserConceptUpdate) AddConsecutiveWrong(v int) *UserConceptUpdate {
	_u.mutation.AddConsecutiveWrong(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *UserConceptUpdate) SetLastPracticed(v time.Time) *UserConceptUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableLastPracticed(v *time.Time) *UserConceptUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// SetNextReviewDue sets the "next_review_due" field.
func (_u *UserConceptUpdate) SetNextReviewDue(v time.Time) *UserConceptUpdate {
	_u.mutation.SetNextReviewDue(v)
	return _u
}

// SetNillableNextReviewDue sets the "next_review_due" field if the given value is not nil.
func (_u *UserConceptUpdate) SetNillableNextReviewDue(v *time.Time) *UserConceptUpdate {
	if v != nil {
		_u.SetNextReviewDue(*v)
	}
	return _u
}

// Mutation returns the UserConceptMutation object of the builder.
func (_u *UserConceptUpdate) Mutation() *UserConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserConceptUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := userconcept.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "UserConcept.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := userconcept.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "UserConcept.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := userconcept.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "UserConcept.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *UserConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userconcept.Table, userconcept.Columns, sqlgraph.NewFieldSpec(userconcept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(userconcept.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(userconcept.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(userconcept.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(userconcept.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userconcept.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userconcept.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(userconcept.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(userconcept.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(userconcept.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(userconcept.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(userconcept.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveWrong(); ok {
		_spec.SetField(userconcept.FieldConsecutiveWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveWrong(); ok {
		_spec.AddField(userconcept.FieldConsecutiveWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(userconcept.FieldLastPracticed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewDue(); ok {
		_spec.SetField(userconcept.FieldNextReviewDue, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserConceptUpdateOne is the builder for updating a single UserConcept entity.
type UserConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserConceptMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *UserConceptUpdateOne) SetLearnerID(v string) *UserConceptUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableLearnerID(v *string) *UserConceptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *UserConceptUpdateOne) SetConcept(v string) *UserConceptUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableConcept(v *string) *UserConceptUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *UserConceptUpdateOne) SetMastery(v int) *UserConceptUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableMastery(v *int) *UserConceptUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *UserConceptUpdateOne) AddMastery(v int) *UserConceptUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserConceptUpdateOne) SetTotalAttempts(v int) *UserConceptUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableTotalAttempts(v *int) *UserConceptUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserConceptUpdateOne) AddTotalAttempts(v int) *UserConceptUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *UserConceptUpdateOne) SetCorrectAttempts(v int) *UserConceptUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableCorrectAttempts(v *int) *UserConceptUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *UserConceptUpdateOne) AddCorrectAttempts(v int) *UserConceptUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *UserConceptUpdateOne) SetDifficulty(v string) *UserConceptUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableDifficulty(v *string) *UserConceptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *UserConceptUpdateOne) SetConsecutiveCorrect(v int) *UserConceptUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableConsecutiveCorrect(v *int) *UserConceptUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *UserConceptUpdateOne) AddConsecutiveCorrect(v int) *UserConceptUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetConsecutiveWrong sets the "consecutive_wrong" field.
func (_u *UserConceptUpdateOne) SetConsecutiveWrong(v int) *UserConceptUpdateOne {
	_u.mutation.ResetConsecutiveWrong()
	_u.mutation.SetConsecutiveWrong(v)
	return _u
}

// SetNillableConsecutiveWrong sets the "consecutive_wrong" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableConsecutiveWrong(v *int) *UserConceptUpdateOne {
	if v != nil {
		_u.SetConsecutiveWrong(*v)
	}
	return _u
}

// AddConsecutiveWrong adds value to the "consecutive_wrong" field.
func (_u *UserConceptUpdateOne) AddConsecutiveWrong(v int) *UserConceptUpdateOne {
	_u.mutation.AddConsecutiveWrong(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *UserConceptUpdateOne) SetLastPracticed(v time.Time) *UserConceptUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableLastPracticed(v *time.Time) *UserConceptUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// SetNextReviewDue sets the "next_review_due" field.
func (_u *UserConceptUpdateOne) SetNextReviewDue(v time.Time) *UserConceptUpdateOne {
	_u.mutation.SetNextReviewDue(v)
	return _u
}

// SetNillableNextReviewDue sets the "next_review_due" field if the given value is not nil.
func (_u *UserConceptUpdateOne) SetNillableNextReviewDue(v *time.Time) *UserConceptUpdateOne {
	if v != nil {
		_u.SetNextReviewDue(*v)
	}
	return _u
}

// Mutation returns the UserConceptMutation object of the builder.
func (_u *UserConceptUpdateOne) Mutation() *UserConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserConceptUpdate builder.
func (_u *UserConceptUpdateOne) Where(ps ...predicate.UserConcept) *UserConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserConceptUpdateOne) Select(field string, fields ...string) *UserConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserConcept entity.
func (_u *UserConceptUpdateOne) Save(ctx context.Context) (*UserConcept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserConceptUpdateOne) SaveX(ctx context.Context) *UserConcept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserConceptUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := userconcept.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "UserConcept.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := userconcept.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "UserConcept.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := userconcept.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "UserConcept.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *UserConceptUpdateOne) sqlSave(ctx context.Context) (_node *UserConcept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userconcept.Table, userconcept.Columns, sqlgraph.NewFieldSpec(userconcept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserConcept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userconcept.FieldID)
		for _, f := range fields {
			if !userconcept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userconcept.FieldID {
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
		_spec.SetField(userconcept.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(userconcept.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(userconcept.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(userconcept.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userconcept.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userconcept.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(userconcept.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(userconcept.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(userconcept.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(userconcept.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(userconcept.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveWrong(); ok {
		_spec.SetField(userconcept.FieldConsecutiveWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveWrong(); ok {
		_spec.AddField(userconcept.FieldConsecutiveWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(userconcept.FieldLastPracticed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewDue(); ok {
		_spec.SetField(userconcept.FieldNextReviewDue, field.TypeTime, value)
	}
	_node = &UserConcept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
