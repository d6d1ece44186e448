// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/practicerecord"
	"github.com/apratap/adept/ent/predicate"
)

// PracticeRecordUpdate is the builder for updating PracticeRecord entities.
type PracticeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeRecordMutation
}

// Where appends a list predicates to the PracticeRecordUpdate builder.
func (_u *PracticeRecordUpdate) Where(ps ...predicate.PracticeRecord) *PracticeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PracticeRecordUpdate) SetLearnerID(v string) *PracticeRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableLearnerID(v *string) *PracticeRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *PracticeRecordUpdate) SetConcept(v string) *PracticeRecordUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableConcept(v *string) *PracticeRecordUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeRecordUpdate) SetSessionID(v string) *PracticeRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableSessionID(v *string) *PracticeRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PracticeRecordUpdate) ClearSessionID() *PracticeRecordUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeRecordUpdate) SetDifficulty(v string) *PracticeRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableDifficulty(v *string) *PracticeRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeRecordUpdate) SetCorrect(v bool) *PracticeRecordUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableCorrect(v *bool) *PracticeRecordUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *PracticeRecordUpdate) SetMasteryBefore(v int) *PracticeRecordUpdate {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableMasteryBefore(v *int) *PracticeRecordUpdate {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *PracticeRecordUpdate) AddMasteryBefore(v int) *PracticeRecordUpdate {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *PracticeRecordUpdate) SetMasteryAfter(v int) *PracticeRecordUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableMasteryAfter(v *int) *PracticeRecordUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *PracticeRecordUpdate) AddMasteryAfter(v int) *PracticeRecordUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeRecordUpdate) SetTimeSpentMs(v int) *PracticeRecordUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeRecordUpdate) SetNillableTimeSpentMs(v *int) *PracticeRecordUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeRecordUpdate) AddTimeSpentMs(v int) *PracticeRecordUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the PracticeRecordMutation object of the builder.
func (_u *PracticeRecordUpdate) Mutation() *PracticeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := practicerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := practicerecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practicerecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicerecord.Table, practicerecord.Columns, sqlgraph.NewFieldSpec(practicerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(practicerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(practicerecord.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicerecord.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(practicerecord.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicerecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practicerecord.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(practicerecord.FieldMasteryBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(practicerecord.FieldMasteryBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(practicerecord.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(practicerecord.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicerecord.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practicerecord.FieldTimeSpentMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeRecordUpdateOne is the builder for updating a single PracticeRecord entity.
type PracticeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PracticeRecordUpdateOne) SetLearnerID(v string) *PracticeRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableLearnerID(v *string) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *PracticeRecordUpdateOne) SetConcept(v string) *PracticeRecordUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableConcept(v *string) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeRecordUpdateOne) SetSessionID(v string) *PracticeRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableSessionID(v *string) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PracticeRecordUpdateOne) ClearSessionID() *PracticeRecordUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeRecordUpdateOne) SetDifficulty(v string) *PracticeRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableDifficulty(v *string) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeRecordUpdateOne) SetCorrect(v bool) *PracticeRecordUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableCorrect(v *bool) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *PracticeRecordUpdateOne) SetMasteryBefore(v int) *PracticeRecordUpdateOne {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableMasteryBefore(v *int) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *PracticeRecordUpdateOne) AddMasteryBefore(v int) *PracticeRecordUpdateOne {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *PracticeRecordUpdateOne) SetMasteryAfter(v int) *PracticeRecordUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableMasteryAfter(v *int) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *PracticeRecordUpdateOne) AddMasteryAfter(v int) *PracticeRecordUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeRecordUpdateOne) SetTimeSpentMs(v int) *PracticeRecordUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeRecordUpdateOne) SetNillableTimeSpentMs(v *int) *PracticeRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeRecordUpdateOne) AddTimeSpentMs(v int) *PracticeRecordUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the PracticeRecordMutation object of the builder.
func (_u *PracticeRecordUpdateOne) Mutation() *PracticeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeRecordUpdate builder.
func (_u *PracticeRecordUpdateOne) Where(ps ...predicate.PracticeRecord) *PracticeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeRecordUpdateOne) Select(field string, fields ...string) *PracticeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeRecord entity.
func (_u *PracticeRecordUpdateOne) Save(ctx context.Context) (*PracticeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeRecordUpdateOne) SaveX(ctx context.Context) *PracticeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := practicerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := practicerecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practicerecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeRecordUpdateOne) sqlSave(ctx context.Context) (_node *PracticeRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicerecord.Table, practicerecord.Columns, sqlgraph.NewFieldSpec(practicerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicerecord.FieldID)
		for _, f := range fields {
			if !practicerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicerecord.FieldID {
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
		_spec.SetField(practicerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(practicerecord.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicerecord.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(practicerecord.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicerecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practicerecord.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(practicerecord.FieldMasteryBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(practicerecord.FieldMasteryBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(practicerecord.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(practicerecord.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicerecord.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practicerecord.FieldTimeSpentMs, field.TypeInt, value)
	}
	_node = &PracticeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
