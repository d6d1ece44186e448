// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/schema"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *PracticeSessionCreate) SetLearnerID(v string) *PracticeSessionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PracticeSessionCreate) SetKind(v string) *PracticeSessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *PracticeSessionCreate) SetConcepts(v []string) *PracticeSessionCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_c *PracticeSessionCreate) SetTargetDifficulty(v string) *PracticeSessionCreate {
	_c.mutation.SetTargetDifficulty(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PracticeSessionCreate) SetQuestions(v []schema.PlannedQuestion) *PracticeSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetQuestionsTotal sets the "questions_total" field.
func (_c *PracticeSessionCreate) SetQuestionsTotal(v int) *PracticeSessionCreate {
	_c.mutation.SetQuestionsTotal(v)
	return _c
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableQuestionsTotal(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetQuestionsTotal(*v)
	}
	return _c
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_c *PracticeSessionCreate) SetQuestionsCorrect(v int) *PracticeSessionCreate {
	_c.mutation.SetQuestionsCorrect(v)
	return _c
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableQuestionsCorrect(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetQuestionsCorrect(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PracticeSessionCreate) SetScore(v int) *PracticeSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableScore(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PracticeSessionCreate) SetStartedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableStartedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PracticeSessionCreate) SetCompletedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCompletedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *PracticeSessionCreate) SetDurationSecs(v int) *PracticeSessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableDurationSecs(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeSessionCreate) SetID(v string) *PracticeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		v := practicesession.DefaultQuestionsTotal
		_c.mutation.SetQuestionsTotal(v)
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		v := practicesession.DefaultQuestionsCorrect
		_c.mutation.SetQuestionsCorrect(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := practicesession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := practicesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := practicesession.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PracticeSession.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := practicesession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PracticeSession.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := practicesession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concepts(); !ok {
		return &ValidationError{Name: "concepts", err: errors.New(`ent: missing required field "PracticeSession.concepts"`)}
	}
	if _, ok := _c.mutation.TargetDifficulty(); !ok {
		return &ValidationError{Name: "target_difficulty", err: errors.New(`ent: missing required field "PracticeSession.target_difficulty"`)}
	}
	if v, ok := _c.mutation.TargetDifficulty(); ok {
		if err := practicesession.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.target_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "PracticeSession.questions"`)}
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		return &ValidationError{Name: "questions_total", err: errors.New(`ent: missing required field "PracticeSession.questions_total"`)}
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		return &ValidationError{Name: "questions_correct", err: errors.New(`ent: missing required field "PracticeSession.questions_correct"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PracticeSession.score"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PracticeSession.started_at"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "PracticeSession.duration_secs"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := practicesession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PracticeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(practicesession.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(practicesession.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.TargetDifficulty(); ok {
		_spec.SetField(practicesession.FieldTargetDifficulty, field.TypeString, value)
		_node.TargetDifficulty = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.QuestionsTotal(); ok {
		_spec.SetField(practicesession.FieldQuestionsTotal, field.TypeInt, value)
		_node.QuestionsTotal = value
	}
	if value, ok := _c.mutation.QuestionsCorrect(); ok {
		_spec.SetField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
		_node.QuestionsCorrect = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(practicesession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
