// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/achievement"
	"github.com/apratap/adept/ent/practicerecord"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/predicate"
	"github.com/apratap/adept/ent/schema"
	"github.com/apratap/adept/ent/userconcept"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement     = "Achievement"
	TypePracticeRecord  = "PracticeRecord"
	TypePracticeSession = "PracticeSession"
	TypeUserConcept     = "UserConcept"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	key           *string
	progress      *int
	addprogress   *int
	target        *int
	addtarget     *int
	earned_at     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Achievement, error)
	predicates    []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id int) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *AchievementMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AchievementMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AchievementMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKey sets the "key" field.
func (m *AchievementMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AchievementMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AchievementMutation) ResetKey() {
	m.key = nil
}

// SetProgress sets the "progress" field.
func (m *AchievementMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *AchievementMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *AchievementMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *AchievementMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *AchievementMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetTarget sets the "target" field.
func (m *AchievementMutation) SetTarget(i int) {
	m.target = &i
	m.addtarget = nil
}

// Target returns the value of the "target" field in the mutation.
func (m *AchievementMutation) Target() (r int, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// AddTarget adds i to the "target" field.
func (m *AchievementMutation) AddTarget(i int) {
	if m.addtarget != nil {
		*m.addtarget += i
	} else {
		m.addtarget = &i
	}
}

// AddedTarget returns the value that was added to the "target" field in this mutation.
func (m *AchievementMutation) AddedTarget() (r int, exists bool) {
	v := m.addtarget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTarget resets all changes to the "target" field.
func (m *AchievementMutation) ResetTarget() {
	m.target = nil
	m.addtarget = nil
}

// SetEarnedAt sets the "earned_at" field.
func (m *AchievementMutation) SetEarnedAt(t time.Time) {
	m.earned_at = &t
}

// EarnedAt returns the value of the "earned_at" field in the mutation.
func (m *AchievementMutation) EarnedAt() (r time.Time, exists bool) {
	v := m.earned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEarnedAt returns the old "earned_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldEarnedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarnedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarnedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarnedAt: %w", err)
	}
	return oldValue.EarnedAt, nil
}

// ClearEarnedAt clears the value of the "earned_at" field.
func (m *AchievementMutation) ClearEarnedAt() {
	m.earned_at = nil
	m.clearedFields[achievement.FieldEarnedAt] = struct{}{}
}

// EarnedAtCleared returns if the "earned_at" field was cleared in this mutation.
func (m *AchievementMutation) EarnedAtCleared() bool {
	_, ok := m.clearedFields[achievement.FieldEarnedAt]
	return ok
}

// ResetEarnedAt resets all changes to the "earned_at" field.
func (m *AchievementMutation) ResetEarnedAt() {
	m.earned_at = nil
	delete(m.clearedFields, achievement.FieldEarnedAt)
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.learner_id != nil {
		fields = append(fields, achievement.FieldLearnerID)
	}
	if m.key != nil {
		fields = append(fields, achievement.FieldKey)
	}
	if m.progress != nil {
		fields = append(fields, achievement.FieldProgress)
	}
	if m.target != nil {
		fields = append(fields, achievement.FieldTarget)
	}
	if m.earned_at != nil {
		fields = append(fields, achievement.FieldEarnedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldLearnerID:
		return m.LearnerID()
	case achievement.FieldKey:
		return m.Key()
	case achievement.FieldProgress:
		return m.Progress()
	case achievement.FieldTarget:
		return m.Target()
	case achievement.FieldEarnedAt:
		return m.EarnedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case achievement.FieldKey:
		return m.OldKey(ctx)
	case achievement.FieldProgress:
		return m.OldProgress(ctx)
	case achievement.FieldTarget:
		return m.OldTarget(ctx)
	case achievement.FieldEarnedAt:
		return m.OldEarnedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case achievement.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case achievement.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case achievement.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case achievement.FieldEarnedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarnedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, achievement.FieldProgress)
	}
	if m.addtarget != nil {
		fields = append(fields, achievement.FieldTarget)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldProgress:
		return m.AddedProgress()
	case achievement.FieldTarget:
		return m.AddedTarget()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case achievement.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTarget(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievement.FieldEarnedAt) {
		fields = append(fields, achievement.FieldEarnedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	switch name {
	case achievement.FieldEarnedAt:
		m.ClearEarnedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case achievement.FieldKey:
		m.ResetKey()
		return nil
	case achievement.FieldProgress:
		m.ResetProgress()
		return nil
	case achievement.FieldTarget:
		m.ResetTarget()
		return nil
	case achievement.FieldEarnedAt:
		m.ResetEarnedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// PracticeRecordMutation represents an operation that mutates the PracticeRecord nodes in the graph.
type PracticeRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	learner_id        *string
	concept           *string
	session_id        *string
	difficulty        *string
	correct           *bool
	mastery_before    *int
	addmastery_before *int
	mastery_after     *int
	addmastery_after  *int
	time_spent_ms     *int
	addtime_spent_ms  *int
	timestamp         *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PracticeRecord, error)
	predicates        []predicate.PracticeRecord
}

var _ ent.Mutation = (*PracticeRecordMutation)(nil)

// practicerecordOption allows management of the mutation configuration using functional options.
type practicerecordOption func(*PracticeRecordMutation)

// newPracticeRecordMutation creates new mutation for the PracticeRecord entity.
func newPracticeRecordMutation(c config, op Op, opts ...practicerecordOption) *PracticeRecordMutation {
	m := &PracticeRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeRecordID sets the ID field of the mutation.
func withPracticeRecordID(id int) practicerecordOption {
	return func(m *PracticeRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeRecord
		)
		m.oldValue = func(ctx context.Context) (*PracticeRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeRecord sets the old PracticeRecord of the mutation.
func withPracticeRecord(node *PracticeRecord) practicerecordOption {
	return func(m *PracticeRecordMutation) {
		m.oldValue = func(context.Context) (*PracticeRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *PracticeRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PracticeRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PracticeRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetConcept sets the "concept" field.
func (m *PracticeRecordMutation) SetConcept(s string) {
	m.concept = &s
}

// Concept returns the value of the "concept" field in the mutation.
func (m *PracticeRecordMutation) Concept() (r string, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConcept returns the old "concept" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldConcept(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcept: %w", err)
	}
	return oldValue.Concept, nil
}

// ResetConcept resets all changes to the "concept" field.
func (m *PracticeRecordMutation) ResetConcept() {
	m.concept = nil
}

// SetSessionID sets the "session_id" field.
func (m *PracticeRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PracticeRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PracticeRecordMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[practicerecord.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PracticeRecordMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[practicerecord.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PracticeRecordMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, practicerecord.FieldSessionID)
}

// SetDifficulty sets the "difficulty" field.
func (m *PracticeRecordMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *PracticeRecordMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *PracticeRecordMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetCorrect sets the "correct" field.
func (m *PracticeRecordMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *PracticeRecordMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *PracticeRecordMutation) ResetCorrect() {
	m.correct = nil
}

// SetMasteryBefore sets the "mastery_before" field.
func (m *PracticeRecordMutation) SetMasteryBefore(i int) {
	m.mastery_before = &i
	m.addmastery_before = nil
}

// MasteryBefore returns the value of the "mastery_before" field in the mutation.
func (m *PracticeRecordMutation) MasteryBefore() (r int, exists bool) {
	v := m.mastery_before
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryBefore returns the old "mastery_before" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldMasteryBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryBefore: %w", err)
	}
	return oldValue.MasteryBefore, nil
}

// AddMasteryBefore adds i to the "mastery_before" field.
func (m *PracticeRecordMutation) AddMasteryBefore(i int) {
	if m.addmastery_before != nil {
		*m.addmastery_before += i
	} else {
		m.addmastery_before = &i
	}
}

// AddedMasteryBefore returns the value that was added to the "mastery_before" field in this mutation.
func (m *PracticeRecordMutation) AddedMasteryBefore() (r int, exists bool) {
	v := m.addmastery_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryBefore resets all changes to the "mastery_before" field.
func (m *PracticeRecordMutation) ResetMasteryBefore() {
	m.mastery_before = nil
	m.addmastery_before = nil
}

// SetMasteryAfter sets the "mastery_after" field.
func (m *PracticeRecordMutation) SetMasteryAfter(i int) {
	m.mastery_after = &i
	m.addmastery_after = nil
}

// MasteryAfter returns the value of the "mastery_after" field in the mutation.
func (m *PracticeRecordMutation) MasteryAfter() (r int, exists bool) {
	v := m.mastery_after
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryAfter returns the old "mastery_after" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldMasteryAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryAfter: %w", err)
	}
	return oldValue.MasteryAfter, nil
}

// AddMasteryAfter adds i to the "mastery_after" field.
func (m *PracticeRecordMutation) AddMasteryAfter(i int) {
	if m.addmastery_after != nil {
		*m.addmastery_after += i
	} else {
		m.addmastery_after = &i
	}
}

// AddedMasteryAfter returns the value that was added to the "mastery_after" field in this mutation.
func (m *PracticeRecordMutation) AddedMasteryAfter() (r int, exists bool) {
	v := m.addmastery_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryAfter resets all changes to the "mastery_after" field.
func (m *PracticeRecordMutation) ResetMasteryAfter() {
	m.mastery_after = nil
	m.addmastery_after = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *PracticeRecordMutation) SetTimeSpentMs(i int) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *PracticeRecordMutation) TimeSpentMs() (r int, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldTimeSpentMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *PracticeRecordMutation) AddTimeSpentMs(i int) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *PracticeRecordMutation) AddedTimeSpentMs() (r int, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *PracticeRecordMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeRecord entity.
// If the PracticeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the PracticeRecordMutation builder.
func (m *PracticeRecordMutation) Where(ps ...predicate.PracticeRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeRecord).
func (m *PracticeRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.learner_id != nil {
		fields = append(fields, practicerecord.FieldLearnerID)
	}
	if m.concept != nil {
		fields = append(fields, practicerecord.FieldConcept)
	}
	if m.session_id != nil {
		fields = append(fields, practicerecord.FieldSessionID)
	}
	if m.difficulty != nil {
		fields = append(fields, practicerecord.FieldDifficulty)
	}
	if m.correct != nil {
		fields = append(fields, practicerecord.FieldCorrect)
	}
	if m.mastery_before != nil {
		fields = append(fields, practicerecord.FieldMasteryBefore)
	}
	if m.mastery_after != nil {
		fields = append(fields, practicerecord.FieldMasteryAfter)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, practicerecord.FieldTimeSpentMs)
	}
	if m.timestamp != nil {
		fields = append(fields, practicerecord.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicerecord.FieldLearnerID:
		return m.LearnerID()
	case practicerecord.FieldConcept:
		return m.Concept()
	case practicerecord.FieldSessionID:
		return m.SessionID()
	case practicerecord.FieldDifficulty:
		return m.Difficulty()
	case practicerecord.FieldCorrect:
		return m.Correct()
	case practicerecord.FieldMasteryBefore:
		return m.MasteryBefore()
	case practicerecord.FieldMasteryAfter:
		return m.MasteryAfter()
	case practicerecord.FieldTimeSpentMs:
		return m.TimeSpentMs()
	case practicerecord.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicerecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case practicerecord.FieldConcept:
		return m.OldConcept(ctx)
	case practicerecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case practicerecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case practicerecord.FieldCorrect:
		return m.OldCorrect(ctx)
	case practicerecord.FieldMasteryBefore:
		return m.OldMasteryBefore(ctx)
	case practicerecord.FieldMasteryAfter:
		return m.OldMasteryAfter(ctx)
	case practicerecord.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	case practicerecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicerecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case practicerecord.FieldConcept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcept(v)
		return nil
	case practicerecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case practicerecord.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case practicerecord.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case practicerecord.FieldMasteryBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryBefore(v)
		return nil
	case practicerecord.FieldMasteryAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryAfter(v)
		return nil
	case practicerecord.FieldTimeSpentMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	case practicerecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeRecordMutation) AddedFields() []string {
	var fields []string
	if m.addmastery_before != nil {
		fields = append(fields, practicerecord.FieldMasteryBefore)
	}
	if m.addmastery_after != nil {
		fields = append(fields, practicerecord.FieldMasteryAfter)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, practicerecord.FieldTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicerecord.FieldMasteryBefore:
		return m.AddedMasteryBefore()
	case practicerecord.FieldMasteryAfter:
		return m.AddedMasteryAfter()
	case practicerecord.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicerecord.FieldMasteryBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryBefore(v)
		return nil
	case practicerecord.FieldMasteryAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryAfter(v)
		return nil
	case practicerecord.FieldTimeSpentMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicerecord.FieldSessionID) {
		fields = append(fields, practicerecord.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeRecordMutation) ClearField(name string) error {
	switch name {
	case practicerecord.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown PracticeRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeRecordMutation) ResetField(name string) error {
	switch name {
	case practicerecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case practicerecord.FieldConcept:
		m.ResetConcept()
		return nil
	case practicerecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case practicerecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case practicerecord.FieldCorrect:
		m.ResetCorrect()
		return nil
	case practicerecord.FieldMasteryBefore:
		m.ResetMasteryBefore()
		return nil
	case practicerecord.FieldMasteryAfter:
		m.ResetMasteryAfter()
		return nil
	case practicerecord.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	case practicerecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown PracticeRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeRecord edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	learner_id           *string
	kind                 *string
	concepts             *[]string
	appendconcepts       []string
	target_difficulty    *string
	questions            *[]schema.PlannedQuestion
	appendquestions      []schema.PlannedQuestion
	questions_total      *int
	addquestions_total   *int
	questions_correct    *int
	addquestions_correct *int
	score                *int
	addscore             *int
	started_at           *time.Time
	completed_at         *time.Time
	duration_secs        *int
	addduration_secs     *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PracticeSession, error)
	predicates           []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id string) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PracticeSession entities.
func (m *PracticeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *PracticeSessionMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PracticeSessionMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PracticeSessionMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKind sets the "kind" field.
func (m *PracticeSessionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PracticeSessionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PracticeSessionMutation) ResetKind() {
	m.kind = nil
}

// SetConcepts sets the "concepts" field.
func (m *PracticeSessionMutation) SetConcepts(s []string) {
	m.concepts = &s
	m.appendconcepts = nil
}

// Concepts returns the value of the "concepts" field in the mutation.
func (m *PracticeSessionMutation) Concepts() (r []string, exists bool) {
	v := m.concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldConcepts returns the old "concepts" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcepts: %w", err)
	}
	return oldValue.Concepts, nil
}

// AppendConcepts adds s to the "concepts" field.
func (m *PracticeSessionMutation) AppendConcepts(s []string) {
	m.appendconcepts = append(m.appendconcepts, s...)
}

// AppendedConcepts returns the list of values that were appended to the "concepts" field in this mutation.
func (m *PracticeSessionMutation) AppendedConcepts() ([]string, bool) {
	if len(m.appendconcepts) == 0 {
		return nil, false
	}
	return m.appendconcepts, true
}

// ResetConcepts resets all changes to the "concepts" field.
func (m *PracticeSessionMutation) ResetConcepts() {
	m.concepts = nil
	m.appendconcepts = nil
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (m *PracticeSessionMutation) SetTargetDifficulty(s string) {
	m.target_difficulty = &s
}

// TargetDifficulty returns the value of the "target_difficulty" field in the mutation.
func (m *PracticeSessionMutation) TargetDifficulty() (r string, exists bool) {
	v := m.target_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDifficulty returns the old "target_difficulty" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTargetDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDifficulty: %w", err)
	}
	return oldValue.TargetDifficulty, nil
}

// ResetTargetDifficulty resets all changes to the "target_difficulty" field.
func (m *PracticeSessionMutation) ResetTargetDifficulty() {
	m.target_difficulty = nil
}

// SetQuestions sets the "questions" field.
func (m *PracticeSessionMutation) SetQuestions(sq []schema.PlannedQuestion) {
	m.questions = &sq
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *PracticeSessionMutation) Questions() (r []schema.PlannedQuestion, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestions(ctx context.Context) (v []schema.PlannedQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds sq to the "questions" field.
func (m *PracticeSessionMutation) AppendQuestions(sq []schema.PlannedQuestion) {
	m.appendquestions = append(m.appendquestions, sq...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *PracticeSessionMutation) AppendedQuestions() ([]schema.PlannedQuestion, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *PracticeSessionMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetQuestionsTotal sets the "questions_total" field.
func (m *PracticeSessionMutation) SetQuestionsTotal(i int) {
	m.questions_total = &i
	m.addquestions_total = nil
}

// QuestionsTotal returns the value of the "questions_total" field in the mutation.
func (m *PracticeSessionMutation) QuestionsTotal() (r int, exists bool) {
	v := m.questions_total
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsTotal returns the old "questions_total" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestionsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsTotal: %w", err)
	}
	return oldValue.QuestionsTotal, nil
}

// AddQuestionsTotal adds i to the "questions_total" field.
func (m *PracticeSessionMutation) AddQuestionsTotal(i int) {
	if m.addquestions_total != nil {
		*m.addquestions_total += i
	} else {
		m.addquestions_total = &i
	}
}

// AddedQuestionsTotal returns the value that was added to the "questions_total" field in this mutation.
func (m *PracticeSessionMutation) AddedQuestionsTotal() (r int, exists bool) {
	v := m.addquestions_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsTotal resets all changes to the "questions_total" field.
func (m *PracticeSessionMutation) ResetQuestionsTotal() {
	m.questions_total = nil
	m.addquestions_total = nil
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (m *PracticeSessionMutation) SetQuestionsCorrect(i int) {
	m.questions_correct = &i
	m.addquestions_correct = nil
}

// QuestionsCorrect returns the value of the "questions_correct" field in the mutation.
func (m *PracticeSessionMutation) QuestionsCorrect() (r int, exists bool) {
	v := m.questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsCorrect returns the old "questions_correct" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestionsCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsCorrect: %w", err)
	}
	return oldValue.QuestionsCorrect, nil
}

// AddQuestionsCorrect adds i to the "questions_correct" field.
func (m *PracticeSessionMutation) AddQuestionsCorrect(i int) {
	if m.addquestions_correct != nil {
		*m.addquestions_correct += i
	} else {
		m.addquestions_correct = &i
	}
}

// AddedQuestionsCorrect returns the value that was added to the "questions_correct" field in this mutation.
func (m *PracticeSessionMutation) AddedQuestionsCorrect() (r int, exists bool) {
	v := m.addquestions_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsCorrect resets all changes to the "questions_correct" field.
func (m *PracticeSessionMutation) ResetQuestionsCorrect() {
	m.questions_correct = nil
	m.addquestions_correct = nil
}

// SetScore sets the "score" field.
func (m *PracticeSessionMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PracticeSessionMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *PracticeSessionMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PracticeSessionMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PracticeSessionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PracticeSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PracticeSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PracticeSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[practicesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PracticeSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, practicesession.FieldCompletedAt)
}

// SetDurationSecs sets the "duration_secs" field.
func (m *PracticeSessionMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *PracticeSessionMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *PracticeSessionMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *PracticeSessionMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *PracticeSessionMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.learner_id != nil {
		fields = append(fields, practicesession.FieldLearnerID)
	}
	if m.kind != nil {
		fields = append(fields, practicesession.FieldKind)
	}
	if m.concepts != nil {
		fields = append(fields, practicesession.FieldConcepts)
	}
	if m.target_difficulty != nil {
		fields = append(fields, practicesession.FieldTargetDifficulty)
	}
	if m.questions != nil {
		fields = append(fields, practicesession.FieldQuestions)
	}
	if m.questions_total != nil {
		fields = append(fields, practicesession.FieldQuestionsTotal)
	}
	if m.questions_correct != nil {
		fields = append(fields, practicesession.FieldQuestionsCorrect)
	}
	if m.score != nil {
		fields = append(fields, practicesession.FieldScore)
	}
	if m.started_at != nil {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	if m.duration_secs != nil {
		fields = append(fields, practicesession.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldLearnerID:
		return m.LearnerID()
	case practicesession.FieldKind:
		return m.Kind()
	case practicesession.FieldConcepts:
		return m.Concepts()
	case practicesession.FieldTargetDifficulty:
		return m.TargetDifficulty()
	case practicesession.FieldQuestions:
		return m.Questions()
	case practicesession.FieldQuestionsTotal:
		return m.QuestionsTotal()
	case practicesession.FieldQuestionsCorrect:
		return m.QuestionsCorrect()
	case practicesession.FieldScore:
		return m.Score()
	case practicesession.FieldStartedAt:
		return m.StartedAt()
	case practicesession.FieldCompletedAt:
		return m.CompletedAt()
	case practicesession.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case practicesession.FieldKind:
		return m.OldKind(ctx)
	case practicesession.FieldConcepts:
		return m.OldConcepts(ctx)
	case practicesession.FieldTargetDifficulty:
		return m.OldTargetDifficulty(ctx)
	case practicesession.FieldQuestions:
		return m.OldQuestions(ctx)
	case practicesession.FieldQuestionsTotal:
		return m.OldQuestionsTotal(ctx)
	case practicesession.FieldQuestionsCorrect:
		return m.OldQuestionsCorrect(ctx)
	case practicesession.FieldScore:
		return m.OldScore(ctx)
	case practicesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practicesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case practicesession.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case practicesession.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case practicesession.FieldConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcepts(v)
		return nil
	case practicesession.FieldTargetDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDifficulty(v)
		return nil
	case practicesession.FieldQuestions:
		v, ok := value.([]schema.PlannedQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case practicesession.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsTotal(v)
		return nil
	case practicesession.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsCorrect(v)
		return nil
	case practicesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case practicesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practicesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case practicesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquestions_total != nil {
		fields = append(fields, practicesession.FieldQuestionsTotal)
	}
	if m.addquestions_correct != nil {
		fields = append(fields, practicesession.FieldQuestionsCorrect)
	}
	if m.addscore != nil {
		fields = append(fields, practicesession.FieldScore)
	}
	if m.addduration_secs != nil {
		fields = append(fields, practicesession.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldQuestionsTotal:
		return m.AddedQuestionsTotal()
	case practicesession.FieldQuestionsCorrect:
		return m.AddedQuestionsCorrect()
	case practicesession.FieldScore:
		return m.AddedScore()
	case practicesession.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsTotal(v)
		return nil
	case practicesession.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsCorrect(v)
		return nil
	case practicesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case practicesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldCompletedAt) {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case practicesession.FieldKind:
		m.ResetKind()
		return nil
	case practicesession.FieldConcepts:
		m.ResetConcepts()
		return nil
	case practicesession.FieldTargetDifficulty:
		m.ResetTargetDifficulty()
		return nil
	case practicesession.FieldQuestions:
		m.ResetQuestions()
		return nil
	case practicesession.FieldQuestionsTotal:
		m.ResetQuestionsTotal()
		return nil
	case practicesession.FieldQuestionsCorrect:
		m.ResetQuestionsCorrect()
		return nil
	case practicesession.FieldScore:
		m.ResetScore()
		return nil
	case practicesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practicesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case practicesession.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// UserConceptMutation represents an operation that mutates the UserConcept nodes in the graph.
type UserConceptMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	learner_id             *string
	concept                *string
	mastery                *int
	addmastery             *int
	total_attempts         *int
	addtotal_attempts      *int
	correct_attempts       *int
	addcorrect_attempts    *int
	difficulty             *string
	consecutive_correct    *int
	addconsecutive_correct *int
	consecutive_wrong      *int
	addconsecutive_wrong   *int
	last_practiced         *time.Time
	next_review_due        *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*UserConcept, error)
	predicates             []predicate.UserConcept
}

var _ ent.Mutation = (*UserConceptMutation)(nil)

// userconceptOption allows management of the mutation configuration using functional options.
type userconceptOption func(*UserConceptMutation)

// newUserConceptMutation creates new mutation for the UserConcept entity.
func newUserConceptMutation(c config, op Op, opts ...userconceptOption) *UserConceptMutation {
	m := &UserConceptMutation{
		config:        c,
		op:            op,
		typ:           TypeUserConcept,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserConceptID sets the ID field of the mutation.
func withUserConceptID(id int) userconceptOption {
	return func(m *UserConceptMutation) {
		var (
			err   error
			once  sync.Once
			value *UserConcept
		)
		m.oldValue = func(ctx context.Context) (*UserConcept, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserConcept.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserConcept sets the old UserConcept of the mutation.
func withUserConcept(node *UserConcept) userconceptOption {
	return func(m *UserConceptMutation) {
		m.oldValue = func(context.Context) (*UserConcept, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserConceptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserConceptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserConceptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserConceptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserConcept.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *UserConceptMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *UserConceptMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *UserConceptMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetConcept sets the "concept" field.
func (m *UserConceptMutation) SetConcept(s string) {
	m.concept = &s
}

// Concept returns the value of the "concept" field in the mutation.
func (m *UserConceptMutation) Concept() (r string, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConcept returns the old "concept" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldConcept(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcept: %w", err)
	}
	return oldValue.Concept, nil
}

// ResetConcept resets all changes to the "concept" field.
func (m *UserConceptMutation) ResetConcept() {
	m.concept = nil
}

// SetMastery sets the "mastery" field.
func (m *UserConceptMutation) SetMastery(i int) {
	m.mastery = &i
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *UserConceptMutation) Mastery() (r int, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldMastery(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds i to the "mastery" field.
func (m *UserConceptMutation) AddMastery(i int) {
	if m.addmastery != nil {
		*m.addmastery += i
	} else {
		m.addmastery = &i
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *UserConceptMutation) AddedMastery() (r int, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *UserConceptMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *UserConceptMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *UserConceptMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *UserConceptMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *UserConceptMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *UserConceptMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (m *UserConceptMutation) SetCorrectAttempts(i int) {
	m.correct_attempts = &i
	m.addcorrect_attempts = nil
}

// CorrectAttempts returns the value of the "correct_attempts" field in the mutation.
func (m *UserConceptMutation) CorrectAttempts() (r int, exists bool) {
	v := m.correct_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAttempts returns the old "correct_attempts" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldCorrectAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAttempts: %w", err)
	}
	return oldValue.CorrectAttempts, nil
}

// AddCorrectAttempts adds i to the "correct_attempts" field.
func (m *UserConceptMutation) AddCorrectAttempts(i int) {
	if m.addcorrect_attempts != nil {
		*m.addcorrect_attempts += i
	} else {
		m.addcorrect_attempts = &i
	}
}

// AddedCorrectAttempts returns the value that was added to the "correct_attempts" field in this mutation.
func (m *UserConceptMutation) AddedCorrectAttempts() (r int, exists bool) {
	v := m.addcorrect_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAttempts resets all changes to the "correct_attempts" field.
func (m *UserConceptMutation) ResetCorrectAttempts() {
	m.correct_attempts = nil
	m.addcorrect_attempts = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *UserConceptMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *UserConceptMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *UserConceptMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (m *UserConceptMutation) SetConsecutiveCorrect(i int) {
	m.consecutive_correct = &i
	m.addconsecutive_correct = nil
}

// ConsecutiveCorrect returns the value of the "consecutive_correct" field in the mutation.
func (m *UserConceptMutation) ConsecutiveCorrect() (r int, exists bool) {
	v := m.consecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveCorrect returns the old "consecutive_correct" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldConsecutiveCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveCorrect: %w", err)
	}
	return oldValue.ConsecutiveCorrect, nil
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (m *UserConceptMutation) AddConsecutiveCorrect(i int) {
	if m.addconsecutive_correct != nil {
		*m.addconsecutive_correct += i
	} else {
		m.addconsecutive_correct = &i
	}
}

// AddedConsecutiveCorrect returns the value that was added to the "consecutive_correct" field in this mutation.
func (m *UserConceptMutation) AddedConsecutiveCorrect() (r int, exists bool) {
	v := m.addconsecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveCorrect resets all changes to the "consecutive_correct" field.
func (m *UserConceptMutation) ResetConsecutiveCorrect() {
	m.consecutive_correct = nil
	m.addconsecutive_correct = nil
}

// SetConsecutiveWrong sets the "consecutive_wrong" field.
func (m *UserConceptMutation) SetConsecutiveWrong(i int) {
	m.consecutive_wrong = &i
	m.addconsecutive_wrong = nil
}

// ConsecutiveWrong returns the value of the "consecutive_wrong" field in the mutation.
func (m *UserConceptMutation) ConsecutiveWrong() (r int, exists bool) {
	v := m.consecutive_wrong
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveWrong returns the old "consecutive_wrong" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldConsecutiveWrong(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveWrong is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveWrong requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveWrong: %w", err)
	}
	return oldValue.ConsecutiveWrong, nil
}

// AddConsecutiveWrong adds i to the "consecutive_wrong" field.
func (m *UserConceptMutation) AddConsecutiveWrong(i int) {
	if m.addconsecutive_wrong != nil {
		*m.addconsecutive_wrong += i
	} else {
		m.addconsecutive_wrong = &i
	}
}

// AddedConsecutiveWrong returns the value that was added to the "consecutive_wrong" field in this mutation.
func (m *UserConceptMutation) AddedConsecutiveWrong() (r int, exists bool) {
	v := m.addconsecutive_wrong
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveWrong resets all changes to the "consecutive_wrong" field.
func (m *UserConceptMutation) ResetConsecutiveWrong() {
	m.consecutive_wrong = nil
	m.addconsecutive_wrong = nil
}

// SetLastPracticed sets the "last_practiced" field.
func (m *UserConceptMutation) SetLastPracticed(t time.Time) {
	m.last_practiced = &t
}

// LastPracticed returns the value of the "last_practiced" field in the mutation.
func (m *UserConceptMutation) LastPracticed() (r time.Time, exists bool) {
	v := m.last_practiced
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticed returns the old "last_practiced" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldLastPracticed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticed: %w", err)
	}
	return oldValue.LastPracticed, nil
}

// ResetLastPracticed resets all changes to the "last_practiced" field.
func (m *UserConceptMutation) ResetLastPracticed() {
	m.last_practiced = nil
}

// SetNextReviewDue sets the "next_review_due" field.
func (m *UserConceptMutation) SetNextReviewDue(t time.Time) {
	m.next_review_due = &t
}

// NextReviewDue returns the value of the "next_review_due" field in the mutation.
func (m *UserConceptMutation) NextReviewDue() (r time.Time, exists bool) {
	v := m.next_review_due
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDue returns the old "next_review_due" field's value of the UserConcept entity.
// If the UserConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserConceptMutation) OldNextReviewDue(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDue: %w", err)
	}
	return oldValue.NextReviewDue, nil
}

// ResetNextReviewDue resets all changes to the "next_review_due" field.
func (m *UserConceptMutation) ResetNextReviewDue() {
	m.next_review_due = nil
}

// Where appends a list predicates to the UserConceptMutation builder.
func (m *UserConceptMutation) Where(ps ...predicate.UserConcept) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserConceptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserConceptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserConcept, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserConceptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserConceptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserConcept).
func (m *UserConceptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserConceptMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.learner_id != nil {
		fields = append(fields, userconcept.FieldLearnerID)
	}
	if m.concept != nil {
		fields = append(fields, userconcept.FieldConcept)
	}
	if m.mastery != nil {
		fields = append(fields, userconcept.FieldMastery)
	}
	if m.total_attempts != nil {
		fields = append(fields, userconcept.FieldTotalAttempts)
	}
	if m.correct_attempts != nil {
		fields = append(fields, userconcept.FieldCorrectAttempts)
	}
	if m.difficulty != nil {
		fields = append(fields, userconcept.FieldDifficulty)
	}
	if m.consecutive_correct != nil {
		fields = append(fields, userconcept.FieldConsecutiveCorrect)
	}
	if m.consecutive_wrong != nil {
		fields = append(fields, userconcept.FieldConsecutiveWrong)
	}
	if m.last_practiced != nil {
		fields = append(fields, userconcept.FieldLastPracticed)
	}
	if m.next_review_due != nil {
		fields = append(fields, userconcept.FieldNextReviewDue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserConceptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userconcept.FieldLearnerID:
		return m.LearnerID()
	case userconcept.FieldConcept:
		return m.Concept()
	case userconcept.FieldMastery:
		return m.Mastery()
	case userconcept.FieldTotalAttempts:
		return m.TotalAttempts()
	case userconcept.FieldCorrectAttempts:
		return m.CorrectAttempts()
	case userconcept.FieldDifficulty:
		return m.Difficulty()
	case userconcept.FieldConsecutiveCorrect:
		return m.ConsecutiveCorrect()
	case userconcept.FieldConsecutiveWrong:
		return m.ConsecutiveWrong()
	case userconcept.FieldLastPracticed:
		return m.LastPracticed()
	case userconcept.FieldNextReviewDue:
		return m.NextReviewDue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserConceptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userconcept.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case userconcept.FieldConcept:
		return m.OldConcept(ctx)
	case userconcept.FieldMastery:
		return m.OldMastery(ctx)
	case userconcept.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case userconcept.FieldCorrectAttempts:
		return m.OldCorrectAttempts(ctx)
	case userconcept.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case userconcept.FieldConsecutiveCorrect:
		return m.OldConsecutiveCorrect(ctx)
	case userconcept.FieldConsecutiveWrong:
		return m.OldConsecutiveWrong(ctx)
	case userconcept.FieldLastPracticed:
		return m.OldLastPracticed(ctx)
	case userconcept.FieldNextReviewDue:
		return m.OldNextReviewDue(ctx)
	}
	return nil, fmt.Errorf("unknown UserConcept field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserConceptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userconcept.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case userconcept.FieldConcept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcept(v)
		return nil
	case userconcept.FieldMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case userconcept.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case userconcept.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAttempts(v)
		return nil
	case userconcept.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case userconcept.FieldConsecutiveCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveCorrect(v)
		return nil
	case userconcept.FieldConsecutiveWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveWrong(v)
		return nil
	case userconcept.FieldLastPracticed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticed(v)
		return nil
	case userconcept.FieldNextReviewDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDue(v)
		return nil
	}
	return fmt.Errorf("unknown UserConcept field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserConceptMutation) AddedFields() []string {
	var fields []string
	if m.addmastery != nil {
		fields = append(fields, userconcept.FieldMastery)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, userconcept.FieldTotalAttempts)
	}
	if m.addcorrect_attempts != nil {
		fields = append(fields, userconcept.FieldCorrectAttempts)
	}
	if m.addconsecutive_correct != nil {
		fields = append(fields, userconcept.FieldConsecutiveCorrect)
	}
	if m.addconsecutive_wrong != nil {
		fields = append(fields, userconcept.FieldConsecutiveWrong)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserConceptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userconcept.FieldMastery:
		return m.AddedMastery()
	case userconcept.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case userconcept.FieldCorrectAttempts:
		return m.AddedCorrectAttempts()
	case userconcept.FieldConsecutiveCorrect:
		return m.AddedConsecutiveCorrect()
	case userconcept.FieldConsecutiveWrong:
		return m.AddedConsecutiveWrong()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserConceptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userconcept.FieldMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	case userconcept.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case userconcept.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAttempts(v)
		return nil
	case userconcept.FieldConsecutiveCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveCorrect(v)
		return nil
	case userconcept.FieldConsecutiveWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveWrong(v)
		return nil
	}
	return fmt.Errorf("unknown UserConcept numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserConceptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserConceptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserConceptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserConcept nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserConceptMutation) ResetField(name string) error {
	switch name {
	case userconcept.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case userconcept.FieldConcept:
		m.ResetConcept()
		return nil
	case userconcept.FieldMastery:
		m.ResetMastery()
		return nil
	case userconcept.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case userconcept.FieldCorrectAttempts:
		m.ResetCorrectAttempts()
		return nil
	case userconcept.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case userconcept.FieldConsecutiveCorrect:
		m.ResetConsecutiveCorrect()
		return nil
	case userconcept.FieldConsecutiveWrong:
		m.ResetConsecutiveWrong()
		return nil
	case userconcept.FieldLastPracticed:
		m.ResetLastPracticed()
		return nil
	case userconcept.FieldNextReviewDue:
		m.ResetNextReviewDue()
		return nil
	}
	return fmt.Errorf("unknown UserConcept field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserConceptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserConceptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserConceptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserConceptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserConceptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserConceptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserConceptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserConcept unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserConceptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserConcept edge %s", name)
}
