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
	"github.com/apratap/adept/ent/achievement"
	"github.com/apratap/adept/ent/predicate"
)

// AchievementUpdate is the builder for updating Achievement entities.
type AchievementUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementMutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdate) Where(ps ...predicate.Achievement) *AchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AchievementUpdate) SetLearnerID(v string) *AchievementUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableLearnerID(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *AchievementUpdate) SetKey(v string) *AchievementUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableKey(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementUpdate) SetProgress(v int) *AchievementUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableProgress(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementUpdate) AddProgress(v int) *AchievementUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *AchievementUpdate) SetTarget(v int) *AchievementUpdate {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableTarget(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *AchievementUpdate) AddTarget(v int) *AchievementUpdate {
	_u.mutation.AddTarget(v)
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdate) SetEarnedAt(v time.Time) *AchievementUpdate {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEarnedAt(v *time.Time) *AchievementUpdate {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// ClearEarnedAt clears the value of the "earned_at" field.
func (_u *AchievementUpdate) ClearEarnedAt() *AchievementUpdate {
	_u.mutation.ClearEarnedAt()
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdate) Mutation() *AchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := achievement.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := achievement.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Achievement.key": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(achievement.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievement.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievement.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(achievement.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(achievement.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	if _u.mutation.EarnedAtCleared() {
		_spec.ClearField(achievement.FieldEarnedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUpdateOne is the builder for updating a single Achievement entity.
type AchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AchievementUpdateOne) SetLearnerID(v string) *AchievementUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableLearnerID(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *AchievementUpdateOne) SetKey(v string) *AchievementUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableKey(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AchievementUpdateOne) SetProgress(v int) *AchievementUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableProgress(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AchievementUpdateOne) AddProgress(v int) *AchievementUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *AchievementUpdateOne) SetTarget(v int) *AchievementUpdateOne {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableTarget(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *AchievementUpdateOne) AddTarget(v int) *AchievementUpdateOne {
	_u.mutation.AddTarget(v)
	return _u
}

// SetEarnedAt sets the "earned_at" field.
func (_u *AchievementUpdateOne) SetEarnedAt(v time.Time) *AchievementUpdateOne {
	_u.mutation.SetEarnedAt(v)
	return _u
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEarnedAt(v *time.Time) *AchievementUpdateOne {
	if v != nil {
		_u.SetEarnedAt(*v)
	}
	return _u
}

// ClearEarnedAt clears the value of the "earned_at" field.
func (_u *AchievementUpdateOne) ClearEarnedAt() *AchievementUpdateOne {
	_u.mutation.ClearEarnedAt()
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdateOne) Mutation() *AchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdateOne) Where(ps ...predicate.Achievement) *AchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUpdateOne) Select(field string, fields ...string) *AchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Achievement entity.
func (_u *AchievementUpdateOne) Save(ctx context.Context) (*Achievement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdateOne) SaveX(ctx context.Context) *Achievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := achievement.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := achievement.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Achievement.key": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdateOne) sqlSave(ctx context.Context) (_node *Achievement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Achievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievement.FieldID)
		for _, f := range fields {
			if !achievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievement.FieldID {
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
		_spec.SetField(achievement.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(achievement.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(achievement.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(achievement.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(achievement.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
	}
	if _u.mutation.EarnedAtCleared() {
		_spec.ClearField(achievement.FieldEarnedAt, field.TypeTime)
	}
	_node = &Achievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
