// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/userconcept"
)

// UserConceptCreate is the builder for creating a UserConcept entity.
type UserConceptCreate struct {
	config
	mutation *UserConceptMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *UserConceptCreate) SetLearnerID(v string) *UserConceptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *UserConceptCreate) SetConcept(v string) *UserConceptCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *UserConceptCreate) SetMastery(v int) *UserConceptCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableMastery(v *int) *UserConceptCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *UserConceptCreate) SetTotalAttempts(v int) *UserConceptCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableTotalAttempts(v *int) *UserConceptCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *UserConceptCreate) SetCorrectAttempts(v int) *UserConceptCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableCorrectAttempts(v *int) *UserConceptCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *UserConceptCreate) SetDifficulty(v string) *UserConceptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableDifficulty(v *string) *UserConceptCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *UserConceptCreate) SetConsecutiveCorrect(v int) *UserConceptCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableConsecutiveCorrect(v *int) *UserConceptCreate {
	if v != nil {
		_c.SetConsecutiveCorrect(*v)
	}
	return _c
}

// SetConsecutiveWrong sets the "consecutive_wrong" field.
func (_c *UserConceptCreate) SetConsecutiveWrong(v int) *UserConceptCreate {
	_c.mutation.SetConsecutiveWrong(v)
	return _c
}

// SetNillableConsecutiveWrong sets the "consecutive_wrong" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableConsecutiveWrong(v *int) *UserConceptCreate {
	if v != nil {
		_c.SetConsecutiveWrong(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *UserConceptCreate) SetLastPracticed(v time.Time) *UserConceptCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableLastPracticed(v *time.Time) *UserConceptCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetNextReviewDue sets the "next_review_due" field.
func (_c *UserConceptCreate) SetNextReviewDue(v time.Time) *UserConceptCreate {
	_c.mutation.SetNextReviewDue(v)
	return _c
}

// SetNillableNextReviewDue sets the "next_review_due" field if the given value is not nil.
func (_c *UserConceptCreate) SetNillableNextReviewDue(v *time.Time) *UserConceptCreate {
	if v != nil {
		_c.SetNextReviewDue(*v)
	}
	return _c
}

// Mutation returns the UserConceptMutation object of the builder.
func (_c *UserConceptCreate) Mutation() *UserConceptMutation {
	return _c.mutation
}

// Save creates the UserConcept in the database.
func (_c *UserConceptCreate) Save(ctx context.Context) (*UserConcept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserConceptCreate) SaveX(ctx context.Context) *UserConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserConceptCreate) defaults() {
	if _, ok := _c.mutation.Mastery(); !ok {
		v := userconcept.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := userconcept.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := userconcept.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := userconcept.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		v := userconcept.DefaultConsecutiveCorrect
		_c.mutation.SetConsecutiveCorrect(v)
	}
	if _, ok := _c.mutation.ConsecutiveWrong(); !ok {
		v := userconcept.DefaultConsecutiveWrong
		_c.mutation.SetConsecutiveWrong(v)
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		v := userconcept.DefaultLastPracticed()
		_c.mutation.SetLastPracticed(v)
	}
	if _, ok := _c.mutation.NextReviewDue(); !ok {
		v := userconcept.DefaultNextReviewDue()
		_c.mutation.SetNextReviewDue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserConceptCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "UserConcept.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := userconcept.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "UserConcept.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "UserConcept.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := userconcept.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "UserConcept.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "UserConcept.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := userconcept.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "UserConcept.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "UserConcept.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "UserConcept.correct_attempts"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "UserConcept.difficulty"`)}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "UserConcept.consecutive_correct"`)}
	}
	if _, ok := _c.mutation.ConsecutiveWrong(); !ok {
		return &ValidationError{Name: "consecutive_wrong", err: errors.New(`ent: missing required field "UserConcept.consecutive_wrong"`)}
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		return &ValidationError{Name: "last_practiced", err: errors.New(`ent: missing required field "UserConcept.last_practiced"`)}
	}
	if _, ok := _c.mutation.NextReviewDue(); !ok {
		return &ValidationError{Name: "next_review_due", err: errors.New(`ent: missing required field "UserConcept.next_review_due"`)}
	}
	return nil
}

func (_c *UserConceptCreate) sqlSave(ctx context.Context) (*UserConcept, error) {
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

func (_c *UserConceptCreate) createSpec() (*UserConcept, *sqlgraph.CreateSpec) {
	var (
		_node = &UserConcept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userconcept.Table, sqlgraph.NewFieldSpec(userconcept.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(userconcept.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(userconcept.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(userconcept.FieldMastery, field.TypeInt, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(userconcept.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(userconcept.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(userconcept.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(userconcept.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.ConsecutiveWrong(); ok {
		_spec.SetField(userconcept.FieldConsecutiveWrong, field.TypeInt, value)
		_node.ConsecutiveWrong = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(userconcept.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = value
	}
	if value, ok := _c.mutation.NextReviewDue(); ok {
		_spec.SetField(userconcept.FieldNextReviewDue, field.TypeTime, value)
		_node.NextReviewDue = value
	}
	return _node, _spec
}

// UserConceptCreateBulk is the builder for creating many UserConcept entities in bulk.
type UserConceptCreateBulk struct {
	config
	err      error
	builders []*UserConceptCreate
}

// Save creates the UserConcept entities in the database.
func (_c *UserConceptCreateBulk) Save(ctx context.Context) ([]*UserConcept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserConcept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserConceptMutation)
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
func (_c *UserConceptCreateBulk) SaveX(ctx context.Context) []*UserConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
