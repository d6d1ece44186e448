// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/practicerecord"
)

// PracticeRecordCreate is the builder for creating a PracticeRecord entity.
type PracticeRecordCreate struct {
	config
	mutation *PracticeRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *PracticeRecordCreate) SetLearnerID(v string) *PracticeRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *PracticeRecordCreate) SetConcept(v string) *PracticeRecordCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeRecordCreate) SetSessionID(v string) *PracticeRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PracticeRecordCreate) SetNillableSessionID(v *string) *PracticeRecordCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeRecordCreate) SetDifficulty(v string) *PracticeRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PracticeRecordCreate) SetCorrect(v bool) *PracticeRecordCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetMasteryBefore sets the "mastery_before" field.
func (_c *PracticeRecordCreate) SetMasteryBefore(v int) *PracticeRecordCreate {
	_c.mutation.SetMasteryBefore(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *PracticeRecordCreate) SetMasteryAfter(v int) *PracticeRecordCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *PracticeRecordCreate) SetTimeSpentMs(v int) *PracticeRecordCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *PracticeRecordCreate) SetNillableTimeSpentMs(v *int) *PracticeRecordCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeRecordCreate) SetTimestamp(v time.Time) *PracticeRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeRecordCreate) SetNillableTimestamp(v *time.Time) *PracticeRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the PracticeRecordMutation object of the builder.
func (_c *PracticeRecordCreate) Mutation() *PracticeRecordMutation {
	return _c.mutation
}

// Save creates the PracticeRecord in the database.
func (_c *PracticeRecordCreate) Save(ctx context.Context) (*PracticeRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeRecordCreate) SaveX(ctx context.Context) *PracticeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeRecordCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := practicerecord.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practicerecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PracticeRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := practicerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "PracticeRecord.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := practicerecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PracticeRecord.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := practicerecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeRecord.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PracticeRecord.correct"`)}
	}
	if _, ok := _c.mutation.MasteryBefore(); !ok {
		return &ValidationError{Name: "mastery_before", err: errors.New(`ent: missing required field "PracticeRecord.mastery_before"`)}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "PracticeRecord.mastery_after"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "PracticeRecord.time_spent_ms"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeRecord.timestamp"`)}
	}
	return nil
}

func (_c *PracticeRecordCreate) sqlSave(ctx context.Context) (*PracticeRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeRecordCreate) createSpec() (*PracticeRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicerecord.Table, sqlgraph.NewFieldSpec(practicerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(practicerecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(practicerecord.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practicerecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practicerecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(practicerecord.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MasteryBefore(); ok {
		_spec.SetField(practicerecord.FieldMasteryBefore, field.TypeInt, value)
		_node.MasteryBefore = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(practicerecord.FieldMasteryAfter, field.TypeInt, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicerecord.FieldTimeSpentMs, field.TypeInt, value)
		_node.TimeSpentMs = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practicerecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// PracticeRecordCreateBulk is the builder for creating many PracticeRecord entities in bulk.
type PracticeRecordCreateBulk struct {
	config
	err      error
	builders []*PracticeRecordCreate
}

// Save creates the PracticeRecord entities in the database.
func (_c *PracticeRecordCreateBulk) Save(ctx context.Context) ([]*PracticeRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeRecordCreateBulk) SaveX(ctx context.Context) []*PracticeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
