// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/achievement"
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *AchievementCreate) SetLearnerID(v string) *AchievementCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *AchievementCreate) SetKey(v string) *AchievementCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AchievementCreate) SetProgress(v int) *AchievementCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableProgress(v *int) *AchievementCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetTarget sets the "target" field.
func (_c *AchievementCreate) SetTarget(v int) *AchievementCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetEarnedAt sets the "earned_at" field.
func (_c *AchievementCreate) SetEarnedAt(v time.Time) *AchievementCreate {
	_c.mutation.SetEarnedAt(v)
	return _c
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableEarnedAt(v *time.Time) *AchievementCreate {
	if v != nil {
		_c.SetEarnedAt(*v)
	}
	return _c
}

// Mutation returns the AchievementMutation object of the builder.
func (_c *AchievementCreate) Mutation() *AchievementMutation {
	return _c.mutation
}

// Save creates the Achievement in the database.
func (_c *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := achievement.DefaultProgress
		_c.mutation.SetProgress(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Achievement.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := achievement.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Achievement.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := achievement.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Achievement.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Achievement.progress"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "Achievement.target"`)}
	}
	return nil
}

func (_c *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
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

func (_c *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(achievement.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(achievement.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(achievement.FieldTarget, field.TypeInt, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = &value
	}
	return _node, _spec
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
}

// Save creates the Achievement entities in the database.
func (_c *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Achievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
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
func (_c *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
