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
	"github.com/vocadrill/vocadrill/ent/attemptevent"
	"github.com/vocadrill/vocadrill/ent/learningitem"
	"github.com/vocadrill/vocadrill/ent/mistakeevent"
	"github.com/vocadrill/vocadrill/ent/predicate"
	"github.com/vocadrill/vocadrill/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent = "AttemptEvent"
	TypeLearningItem = "LearningItem"
	TypeMistakeEvent = "MistakeEvent"
	TypeSessionEvent = "SessionEvent"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	user_id       *int64
	adduser_id    *int64
	item_id       *int64
	additem_id    *int64
	modality      *string
	user_input    *string
	expected      *string
	correct       *bool
	accuracy      *float64
	addaccuracy   *float64
	time_ms       *int
	addtime_ms    *int
	skipped       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptEvent, error)
	predicates    []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AttemptEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AttemptEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptEventMutation) SetItemID(i int64) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptEventMutation) ItemID() (r int64, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldItemID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *AttemptEventMutation) AddItemID(i int64) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *AttemptEventMutation) AddedItemID() (r int64, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptEventMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// SetModality sets the "modality" field.
func (m *AttemptEventMutation) SetModality(s string) {
	m.modality = &s
}

// Modality returns the value of the "modality" field in the mutation.
func (m *AttemptEventMutation) Modality() (r string, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldModality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ResetModality resets all changes to the "modality" field.
func (m *AttemptEventMutation) ResetModality() {
	m.modality = nil
}

// SetUserInput sets the "user_input" field.
func (m *AttemptEventMutation) SetUserInput(s string) {
	m.user_input = &s
}

// UserInput returns the value of the "user_input" field in the mutation.
func (m *AttemptEventMutation) UserInput() (r string, exists bool) {
	v := m.user_input
	if v == nil {
		return
	}
	return *v, true
}

// OldUserInput returns the old "user_input" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserInput: %w", err)
	}
	return oldValue.UserInput, nil
}

// ClearUserInput clears the value of the "user_input" field.
func (m *AttemptEventMutation) ClearUserInput() {
	m.user_input = nil
	m.clearedFields[attemptevent.FieldUserInput] = struct{}{}
}

// UserInputCleared returns if the "user_input" field was cleared in this mutation.
func (m *AttemptEventMutation) UserInputCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldUserInput]
	return ok
}

// ResetUserInput resets all changes to the "user_input" field.
func (m *AttemptEventMutation) ResetUserInput() {
	m.user_input = nil
	delete(m.clearedFields, attemptevent.FieldUserInput)
}

// SetExpected sets the "expected" field.
func (m *AttemptEventMutation) SetExpected(s string) {
	m.expected = &s
}

// Expected returns the value of the "expected" field in the mutation.
func (m *AttemptEventMutation) Expected() (r string, exists bool) {
	v := m.expected
	if v == nil {
		return
	}
	return *v, true
}

// OldExpected returns the old "expected" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldExpected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpected: %w", err)
	}
	return oldValue.Expected, nil
}

// ClearExpected clears the value of the "expected" field.
func (m *AttemptEventMutation) ClearExpected() {
	m.expected = nil
	m.clearedFields[attemptevent.FieldExpected] = struct{}{}
}

// ExpectedCleared returns if the "expected" field was cleared in this mutation.
func (m *AttemptEventMutation) ExpectedCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldExpected]
	return ok
}

// ResetExpected resets all changes to the "expected" field.
func (m *AttemptEventMutation) ResetExpected() {
	m.expected = nil
	delete(m.clearedFields, attemptevent.FieldExpected)
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
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
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *AttemptEventMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *AttemptEventMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *AttemptEventMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *AttemptEventMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *AttemptEventMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AttemptEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AttemptEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AttemptEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AttemptEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AttemptEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// SetSkipped sets the "skipped" field.
func (m *AttemptEventMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *AttemptEventMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *AttemptEventMutation) ResetSkipped() {
	m.skipped = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, attemptevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, attemptevent.FieldUserID)
	}
	if m.item_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.modality != nil {
		fields = append(fields, attemptevent.FieldModality)
	}
	if m.user_input != nil {
		fields = append(fields, attemptevent.FieldUserInput)
	}
	if m.expected != nil {
		fields = append(fields, attemptevent.FieldExpected)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.accuracy != nil {
		fields = append(fields, attemptevent.FieldAccuracy)
	}
	if m.time_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	if m.skipped != nil {
		fields = append(fields, attemptevent.FieldSkipped)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldSessionID:
		return m.SessionID()
	case attemptevent.FieldUserID:
		return m.UserID()
	case attemptevent.FieldItemID:
		return m.ItemID()
	case attemptevent.FieldModality:
		return m.Modality()
	case attemptevent.FieldUserInput:
		return m.UserInput()
	case attemptevent.FieldExpected:
		return m.Expected()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldAccuracy:
		return m.Accuracy()
	case attemptevent.FieldTimeMs:
		return m.TimeMs()
	case attemptevent.FieldSkipped:
		return m.Skipped()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptevent.FieldUserID:
		return m.OldUserID(ctx)
	case attemptevent.FieldItemID:
		return m.OldItemID(ctx)
	case attemptevent.FieldModality:
		return m.OldModality(ctx)
	case attemptevent.FieldUserInput:
		return m.OldUserInput(ctx)
	case attemptevent.FieldExpected:
		return m.OldExpected(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case attemptevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	case attemptevent.FieldSkipped:
		return m.OldSkipped(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attemptevent.FieldModality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	case attemptevent.FieldUserInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserInput(v)
		return nil
	case attemptevent.FieldExpected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpected(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	case attemptevent.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.adduser_id != nil {
		fields = append(fields, attemptevent.FieldUserID)
	}
	if m.additem_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.addaccuracy != nil {
		fields = append(fields, attemptevent.FieldAccuracy)
	}
	if m.addtime_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldUserID:
		return m.AddedUserID()
	case attemptevent.FieldItemID:
		return m.AddedItemID()
	case attemptevent.FieldAccuracy:
		return m.AddedAccuracy()
	case attemptevent.FieldTimeMs:
		return m.AddedTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	case attemptevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldUserInput) {
		fields = append(fields, attemptevent.FieldUserInput)
	}
	if m.FieldCleared(attemptevent.FieldExpected) {
		fields = append(fields, attemptevent.FieldExpected)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldUserInput:
		m.ClearUserInput()
		return nil
	case attemptevent.FieldExpected:
		m.ClearExpected()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptevent.FieldUserID:
		m.ResetUserID()
		return nil
	case attemptevent.FieldItemID:
		m.ResetItemID()
		return nil
	case attemptevent.FieldModality:
		m.ResetModality()
		return nil
	case attemptevent.FieldUserInput:
		m.ResetUserInput()
		return nil
	case attemptevent.FieldExpected:
		m.ResetExpected()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case attemptevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	case attemptevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// LearningItemMutation represents an operation that mutates the LearningItem nodes in the graph.
type LearningItemMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *int64
	adduser_id               *int64
	list_id                  *int64
	addlist_id               *int64
	word                     *string
	definition               *string
	part_of_speech           *string
	phonetic                 *string
	context                  *string
	has_image                *bool
	frequency_rank           *int
	addfrequency_rank        *int
	related_count            *int
	addrelated_count         *int
	review_count             *int
	addreview_count          *int
	mistake_count            *int
	addmistake_count         *int
	correct_streak           *int
	addcorrect_streak        *int
	skip_count               *int
	addskip_count            *int
	srs_level                *int
	addsrs_level             *int
	status                   *string
	mastery_score            *int
	addmastery_score         *int
	last_reviewed_at         *time.Time
	next_review_at           *time.Time
	recent_response_ms       *[]int
	appendrecent_response_ms []int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*LearningItem, error)
	predicates               []predicate.LearningItem
}

var _ ent.Mutation = (*LearningItemMutation)(nil)

// learningitemOption allows management of the mutation configuration using functional options.
type learningitemOption func(*LearningItemMutation)

// newLearningItemMutation creates new mutation for the LearningItem entity.
func newLearningItemMutation(c config, op Op, opts ...learningitemOption) *LearningItemMutation {
	m := &LearningItemMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningItemID sets the ID field of the mutation.
func withLearningItemID(id int) learningitemOption {
	return func(m *LearningItemMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningItem
		)
		m.oldValue = func(ctx context.Context) (*LearningItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningItem sets the old LearningItem of the mutation.
func withLearningItem(node *LearningItem) learningitemOption {
	return func(m *LearningItemMutation) {
		m.oldValue = func(context.Context) (*LearningItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearningItemMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningItemMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *LearningItemMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *LearningItemMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningItemMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetListID sets the "list_id" field.
func (m *LearningItemMutation) SetListID(i int64) {
	m.list_id = &i
	m.addlist_id = nil
}

// ListID returns the value of the "list_id" field in the mutation.
func (m *LearningItemMutation) ListID() (r int64, exists bool) {
	v := m.list_id
	if v == nil {
		return
	}
	return *v, true
}

// OldListID returns the old "list_id" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldListID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListID: %w", err)
	}
	return oldValue.ListID, nil
}

// AddListID adds i to the "list_id" field.
func (m *LearningItemMutation) AddListID(i int64) {
	if m.addlist_id != nil {
		*m.addlist_id += i
	} else {
		m.addlist_id = &i
	}
}

// AddedListID returns the value that was added to the "list_id" field in this mutation.
func (m *LearningItemMutation) AddedListID() (r int64, exists bool) {
	v := m.addlist_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearListID clears the value of the "list_id" field.
func (m *LearningItemMutation) ClearListID() {
	m.list_id = nil
	m.addlist_id = nil
	m.clearedFields[learningitem.FieldListID] = struct{}{}
}

// ListIDCleared returns if the "list_id" field was cleared in this mutation.
func (m *LearningItemMutation) ListIDCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldListID]
	return ok
}

// ResetListID resets all changes to the "list_id" field.
func (m *LearningItemMutation) ResetListID() {
	m.list_id = nil
	m.addlist_id = nil
	delete(m.clearedFields, learningitem.FieldListID)
}

// SetWord sets the "word" field.
func (m *LearningItemMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *LearningItemMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ResetWord resets all changes to the "word" field.
func (m *LearningItemMutation) ResetWord() {
	m.word = nil
}

// SetDefinition sets the "definition" field.
func (m *LearningItemMutation) SetDefinition(s string) {
	m.definition = &s
}

// Definition returns the value of the "definition" field in the mutation.
func (m *LearningItemMutation) Definition() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *LearningItemMutation) ResetDefinition() {
	m.definition = nil
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (m *LearningItemMutation) SetPartOfSpeech(s string) {
	m.part_of_speech = &s
}

// PartOfSpeech returns the value of the "part_of_speech" field in the mutation.
func (m *LearningItemMutation) PartOfSpeech() (r string, exists bool) {
	v := m.part_of_speech
	if v == nil {
		return
	}
	return *v, true
}

// OldPartOfSpeech returns the old "part_of_speech" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldPartOfSpeech(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartOfSpeech is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartOfSpeech requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartOfSpeech: %w", err)
	}
	return oldValue.PartOfSpeech, nil
}

// ClearPartOfSpeech clears the value of the "part_of_speech" field.
func (m *LearningItemMutation) ClearPartOfSpeech() {
	m.part_of_speech = nil
	m.clearedFields[learningitem.FieldPartOfSpeech] = struct{}{}
}

// PartOfSpeechCleared returns if the "part_of_speech" field was cleared in this mutation.
func (m *LearningItemMutation) PartOfSpeechCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldPartOfSpeech]
	return ok
}

// ResetPartOfSpeech resets all changes to the "part_of_speech" field.
func (m *LearningItemMutation) ResetPartOfSpeech() {
	m.part_of_speech = nil
	delete(m.clearedFields, learningitem.FieldPartOfSpeech)
}

// SetPhonetic sets the "phonetic" field.
func (m *LearningItemMutation) SetPhonetic(s string) {
	m.phonetic = &s
}

// Phonetic returns the value of the "phonetic" field in the mutation.
func (m *LearningItemMutation) Phonetic() (r string, exists bool) {
	v := m.phonetic
	if v == nil {
		return
	}
	return *v, true
}

// OldPhonetic returns the old "phonetic" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldPhonetic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhonetic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhonetic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhonetic: %w", err)
	}
	return oldValue.Phonetic, nil
}

// ClearPhonetic clears the value of the "phonetic" field.
func (m *LearningItemMutation) ClearPhonetic() {
	m.phonetic = nil
	m.clearedFields[learningitem.FieldPhonetic] = struct{}{}
}

// PhoneticCleared returns if the "phonetic" field was cleared in this mutation.
func (m *LearningItemMutation) PhoneticCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldPhonetic]
	return ok
}

// ResetPhonetic resets all changes to the "phonetic" field.
func (m *LearningItemMutation) ResetPhonetic() {
	m.phonetic = nil
	delete(m.clearedFields, learningitem.FieldPhonetic)
}

// SetContext sets the "context" field.
func (m *LearningItemMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *LearningItemMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *LearningItemMutation) ClearContext() {
	m.context = nil
	m.clearedFields[learningitem.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *LearningItemMutation) ContextCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *LearningItemMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, learningitem.FieldContext)
}

// SetHasImage sets the "has_image" field.
func (m *LearningItemMutation) SetHasImage(b bool) {
	m.has_image = &b
}

// HasImage returns the value of the "has_image" field in the mutation.
func (m *LearningItemMutation) HasImage() (r bool, exists bool) {
	v := m.has_image
	if v == nil {
		return
	}
	return *v, true
}

// OldHasImage returns the old "has_image" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldHasImage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasImage: %w", err)
	}
	return oldValue.HasImage, nil
}

// ResetHasImage resets all changes to the "has_image" field.
func (m *LearningItemMutation) ResetHasImage() {
	m.has_image = nil
}

// SetFrequencyRank sets the "frequency_rank" field.
func (m *LearningItemMutation) SetFrequencyRank(i int) {
	m.frequency_rank = &i
	m.addfrequency_rank = nil
}

// FrequencyRank returns the value of the "frequency_rank" field in the mutation.
func (m *LearningItemMutation) FrequencyRank() (r int, exists bool) {
	v := m.frequency_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequencyRank returns the old "frequency_rank" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldFrequencyRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequencyRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequencyRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequencyRank: %w", err)
	}
	return oldValue.FrequencyRank, nil
}

// AddFrequencyRank adds i to the "frequency_rank" field.
func (m *LearningItemMutation) AddFrequencyRank(i int) {
	if m.addfrequency_rank != nil {
		*m.addfrequency_rank += i
	} else {
		m.addfrequency_rank = &i
	}
}

// AddedFrequencyRank returns the value that was added to the "frequency_rank" field in this mutation.
func (m *LearningItemMutation) AddedFrequencyRank() (r int, exists bool) {
	v := m.addfrequency_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrequencyRank resets all changes to the "frequency_rank" field.
func (m *LearningItemMutation) ResetFrequencyRank() {
	m.frequency_rank = nil
	m.addfrequency_rank = nil
}

// SetRelatedCount sets the "related_count" field.
func (m *LearningItemMutation) SetRelatedCount(i int) {
	m.related_count = &i
	m.addrelated_count = nil
}

// RelatedCount returns the value of the "related_count" field in the mutation.
func (m *LearningItemMutation) RelatedCount() (r int, exists bool) {
	v := m.related_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedCount returns the old "related_count" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldRelatedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedCount: %w", err)
	}
	return oldValue.RelatedCount, nil
}

// AddRelatedCount adds i to the "related_count" field.
func (m *LearningItemMutation) AddRelatedCount(i int) {
	if m.addrelated_count != nil {
		*m.addrelated_count += i
	} else {
		m.addrelated_count = &i
	}
}

// AddedRelatedCount returns the value that was added to the "related_count" field in this mutation.
func (m *LearningItemMutation) AddedRelatedCount() (r int, exists bool) {
	v := m.addrelated_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelatedCount resets all changes to the "related_count" field.
func (m *LearningItemMutation) ResetRelatedCount() {
	m.related_count = nil
	m.addrelated_count = nil
}

// SetReviewCount sets the "review_count" field.
func (m *LearningItemMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *LearningItemMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *LearningItemMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *LearningItemMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *LearningItemMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetMistakeCount sets the "mistake_count" field.
func (m *LearningItemMutation) SetMistakeCount(i int) {
	m.mistake_count = &i
	m.addmistake_count = nil
}

// MistakeCount returns the value of the "mistake_count" field in the mutation.
func (m *LearningItemMutation) MistakeCount() (r int, exists bool) {
	v := m.mistake_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMistakeCount returns the old "mistake_count" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldMistakeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMistakeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMistakeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMistakeCount: %w", err)
	}
	return oldValue.MistakeCount, nil
}

// AddMistakeCount adds i to the "mistake_count" field.
func (m *LearningItemMutation) AddMistakeCount(i int) {
	if m.addmistake_count != nil {
		*m.addmistake_count += i
	} else {
		m.addmistake_count = &i
	}
}

// AddedMistakeCount returns the value that was added to the "mistake_count" field in this mutation.
func (m *LearningItemMutation) AddedMistakeCount() (r int, exists bool) {
	v := m.addmistake_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMistakeCount resets all changes to the "mistake_count" field.
func (m *LearningItemMutation) ResetMistakeCount() {
	m.mistake_count = nil
	m.addmistake_count = nil
}

// SetCorrectStreak sets the "correct_streak" field.
func (m *LearningItemMutation) SetCorrectStreak(i int) {
	m.correct_streak = &i
	m.addcorrect_streak = nil
}

// CorrectStreak returns the value of the "correct_streak" field in the mutation.
func (m *LearningItemMutation) CorrectStreak() (r int, exists bool) {
	v := m.correct_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectStreak returns the old "correct_streak" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldCorrectStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectStreak: %w", err)
	}
	return oldValue.CorrectStreak, nil
}

// AddCorrectStreak adds i to the "correct_streak" field.
func (m *LearningItemMutation) AddCorrectStreak(i int) {
	if m.addcorrect_streak != nil {
		*m.addcorrect_streak += i
	} else {
		m.addcorrect_streak = &i
	}
}

// AddedCorrectStreak returns the value that was added to the "correct_streak" field in this mutation.
func (m *LearningItemMutation) AddedCorrectStreak() (r int, exists bool) {
	v := m.addcorrect_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectStreak resets all changes to the "correct_streak" field.
func (m *LearningItemMutation) ResetCorrectStreak() {
	m.correct_streak = nil
	m.addcorrect_streak = nil
}

// SetSkipCount sets the "skip_count" field.
func (m *LearningItemMutation) SetSkipCount(i int) {
	m.skip_count = &i
	m.addskip_count = nil
}

// SkipCount returns the value of the "skip_count" field in the mutation.
func (m *LearningItemMutation) SkipCount() (r int, exists bool) {
	v := m.skip_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCount returns the old "skip_count" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldSkipCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCount: %w", err)
	}
	return oldValue.SkipCount, nil
}

// AddSkipCount adds i to the "skip_count" field.
func (m *LearningItemMutation) AddSkipCount(i int) {
	if m.addskip_count != nil {
		*m.addskip_count += i
	} else {
		m.addskip_count = &i
	}
}

// AddedSkipCount returns the value that was added to the "skip_count" field in this mutation.
func (m *LearningItemMutation) AddedSkipCount() (r int, exists bool) {
	v := m.addskip_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipCount resets all changes to the "skip_count" field.
func (m *LearningItemMutation) ResetSkipCount() {
	m.skip_count = nil
	m.addskip_count = nil
}

// SetSrsLevel sets the "srs_level" field.
func (m *LearningItemMutation) SetSrsLevel(i int) {
	m.srs_level = &i
	m.addsrs_level = nil
}

// SrsLevel returns the value of the "srs_level" field in the mutation.
func (m *LearningItemMutation) SrsLevel() (r int, exists bool) {
	v := m.srs_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSrsLevel returns the old "srs_level" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldSrsLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrsLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrsLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrsLevel: %w", err)
	}
	return oldValue.SrsLevel, nil
}

// AddSrsLevel adds i to the "srs_level" field.
func (m *LearningItemMutation) AddSrsLevel(i int) {
	if m.addsrs_level != nil {
		*m.addsrs_level += i
	} else {
		m.addsrs_level = &i
	}
}

// AddedSrsLevel returns the value that was added to the "srs_level" field in this mutation.
func (m *LearningItemMutation) AddedSrsLevel() (r int, exists bool) {
	v := m.addsrs_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetSrsLevel resets all changes to the "srs_level" field.
func (m *LearningItemMutation) ResetSrsLevel() {
	m.srs_level = nil
	m.addsrs_level = nil
}

// SetStatus sets the "status" field.
func (m *LearningItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LearningItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LearningItemMutation) ResetStatus() {
	m.status = nil
}

// SetMasteryScore sets the "mastery_score" field.
func (m *LearningItemMutation) SetMasteryScore(i int) {
	m.mastery_score = &i
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *LearningItemMutation) MasteryScore() (r int, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldMasteryScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds i to the "mastery_score" field.
func (m *LearningItemMutation) AddMasteryScore(i int) {
	if m.addmastery_score != nil {
		*m.addmastery_score += i
	} else {
		m.addmastery_score = &i
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *LearningItemMutation) AddedMasteryScore() (r int, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *LearningItemMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *LearningItemMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *LearningItemMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *LearningItemMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[learningitem.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *LearningItemMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *LearningItemMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, learningitem.FieldLastReviewedAt)
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *LearningItemMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *LearningItemMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldNextReviewAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (m *LearningItemMutation) ClearNextReviewAt() {
	m.next_review_at = nil
	m.clearedFields[learningitem.FieldNextReviewAt] = struct{}{}
}

// NextReviewAtCleared returns if the "next_review_at" field was cleared in this mutation.
func (m *LearningItemMutation) NextReviewAtCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldNextReviewAt]
	return ok
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *LearningItemMutation) ResetNextReviewAt() {
	m.next_review_at = nil
	delete(m.clearedFields, learningitem.FieldNextReviewAt)
}

// SetRecentResponseMs sets the "recent_response_ms" field.
func (m *LearningItemMutation) SetRecentResponseMs(i []int) {
	m.recent_response_ms = &i
	m.appendrecent_response_ms = nil
}

// RecentResponseMs returns the value of the "recent_response_ms" field in the mutation.
func (m *LearningItemMutation) RecentResponseMs() (r []int, exists bool) {
	v := m.recent_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentResponseMs returns the old "recent_response_ms" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldRecentResponseMs(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentResponseMs: %w", err)
	}
	return oldValue.RecentResponseMs, nil
}

// AppendRecentResponseMs adds i to the "recent_response_ms" field.
func (m *LearningItemMutation) AppendRecentResponseMs(i []int) {
	m.appendrecent_response_ms = append(m.appendrecent_response_ms, i...)
}

// AppendedRecentResponseMs returns the list of values that were appended to the "recent_response_ms" field in this mutation.
func (m *LearningItemMutation) AppendedRecentResponseMs() ([]int, bool) {
	if len(m.appendrecent_response_ms) == 0 {
		return nil, false
	}
	return m.appendrecent_response_ms, true
}

// ClearRecentResponseMs clears the value of the "recent_response_ms" field.
func (m *LearningItemMutation) ClearRecentResponseMs() {
	m.recent_response_ms = nil
	m.appendrecent_response_ms = nil
	m.clearedFields[learningitem.FieldRecentResponseMs] = struct{}{}
}

// RecentResponseMsCleared returns if the "recent_response_ms" field was cleared in this mutation.
func (m *LearningItemMutation) RecentResponseMsCleared() bool {
	_, ok := m.clearedFields[learningitem.FieldRecentResponseMs]
	return ok
}

// ResetRecentResponseMs resets all changes to the "recent_response_ms" field.
func (m *LearningItemMutation) ResetRecentResponseMs() {
	m.recent_response_ms = nil
	m.appendrecent_response_ms = nil
	delete(m.clearedFields, learningitem.FieldRecentResponseMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearningItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearningItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearningItem entity.
// If the LearningItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearningItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearningItemMutation builder.
func (m *LearningItemMutation) Where(ps ...predicate.LearningItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningItem).
func (m *LearningItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningItemMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.user_id != nil {
		fields = append(fields, learningitem.FieldUserID)
	}
	if m.list_id != nil {
		fields = append(fields, learningitem.FieldListID)
	}
	if m.word != nil {
		fields = append(fields, learningitem.FieldWord)
	}
	if m.definition != nil {
		fields = append(fields, learningitem.FieldDefinition)
	}
	if m.part_of_speech != nil {
		fields = append(fields, learningitem.FieldPartOfSpeech)
	}
	if m.phonetic != nil {
		fields = append(fields, learningitem.FieldPhonetic)
	}
	if m.context != nil {
		fields = append(fields, learningitem.FieldContext)
	}
	if m.has_image != nil {
		fields = append(fields, learningitem.FieldHasImage)
	}
	if m.frequency_rank != nil {
		fields = append(fields, learningitem.FieldFrequencyRank)
	}
	if m.related_count != nil {
		fields = append(fields, learningitem.FieldRelatedCount)
	}
	if m.review_count != nil {
		fields = append(fields, learningitem.FieldReviewCount)
	}
	if m.mistake_count != nil {
		fields = append(fields, learningitem.FieldMistakeCount)
	}
	if m.correct_streak != nil {
		fields = append(fields, learningitem.FieldCorrectStreak)
	}
	if m.skip_count != nil {
		fields = append(fields, learningitem.FieldSkipCount)
	}
	if m.srs_level != nil {
		fields = append(fields, learningitem.FieldSrsLevel)
	}
	if m.status != nil {
		fields = append(fields, learningitem.FieldStatus)
	}
	if m.mastery_score != nil {
		fields = append(fields, learningitem.FieldMasteryScore)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, learningitem.FieldLastReviewedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, learningitem.FieldNextReviewAt)
	}
	if m.recent_response_ms != nil {
		fields = append(fields, learningitem.FieldRecentResponseMs)
	}
	if m.created_at != nil {
		fields = append(fields, learningitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learningitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningitem.FieldUserID:
		return m.UserID()
	case learningitem.FieldListID:
		return m.ListID()
	case learningitem.FieldWord:
		return m.Word()
	case learningitem.FieldDefinition:
		return m.Definition()
	case learningitem.FieldPartOfSpeech:
		return m.PartOfSpeech()
	case learningitem.FieldPhonetic:
		return m.Phonetic()
	case learningitem.FieldContext:
		return m.Context()
	case learningitem.FieldHasImage:
		return m.HasImage()
	case learningitem.FieldFrequencyRank:
		return m.FrequencyRank()
	case learningitem.FieldRelatedCount:
		return m.RelatedCount()
	case learningitem.FieldReviewCount:
		return m.ReviewCount()
	case learningitem.FieldMistakeCount:
		return m.MistakeCount()
	case learningitem.FieldCorrectStreak:
		return m.CorrectStreak()
	case learningitem.FieldSkipCount:
		return m.SkipCount()
	case learningitem.FieldSrsLevel:
		return m.SrsLevel()
	case learningitem.FieldStatus:
		return m.Status()
	case learningitem.FieldMasteryScore:
		return m.MasteryScore()
	case learningitem.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case learningitem.FieldNextReviewAt:
		return m.NextReviewAt()
	case learningitem.FieldRecentResponseMs:
		return m.RecentResponseMs()
	case learningitem.FieldCreatedAt:
		return m.CreatedAt()
	case learningitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningitem.FieldUserID:
		return m.OldUserID(ctx)
	case learningitem.FieldListID:
		return m.OldListID(ctx)
	case learningitem.FieldWord:
		return m.OldWord(ctx)
	case learningitem.FieldDefinition:
		return m.OldDefinition(ctx)
	case learningitem.FieldPartOfSpeech:
		return m.OldPartOfSpeech(ctx)
	case learningitem.FieldPhonetic:
		return m.OldPhonetic(ctx)
	case learningitem.FieldContext:
		return m.OldContext(ctx)
	case learningitem.FieldHasImage:
		return m.OldHasImage(ctx)
	case learningitem.FieldFrequencyRank:
		return m.OldFrequencyRank(ctx)
	case learningitem.FieldRelatedCount:
		return m.OldRelatedCount(ctx)
	case learningitem.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case learningitem.FieldMistakeCount:
		return m.OldMistakeCount(ctx)
	case learningitem.FieldCorrectStreak:
		return m.OldCorrectStreak(ctx)
	case learningitem.FieldSkipCount:
		return m.OldSkipCount(ctx)
	case learningitem.FieldSrsLevel:
		return m.OldSrsLevel(ctx)
	case learningitem.FieldStatus:
		return m.OldStatus(ctx)
	case learningitem.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case learningitem.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case learningitem.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case learningitem.FieldRecentResponseMs:
		return m.OldRecentResponseMs(ctx)
	case learningitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learningitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningitem.FieldListID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListID(v)
		return nil
	case learningitem.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case learningitem.FieldDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case learningitem.FieldPartOfSpeech:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartOfSpeech(v)
		return nil
	case learningitem.FieldPhonetic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhonetic(v)
		return nil
	case learningitem.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case learningitem.FieldHasImage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasImage(v)
		return nil
	case learningitem.FieldFrequencyRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequencyRank(v)
		return nil
	case learningitem.FieldRelatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedCount(v)
		return nil
	case learningitem.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case learningitem.FieldMistakeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMistakeCount(v)
		return nil
	case learningitem.FieldCorrectStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectStreak(v)
		return nil
	case learningitem.FieldSkipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCount(v)
		return nil
	case learningitem.FieldSrsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrsLevel(v)
		return nil
	case learningitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case learningitem.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case learningitem.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case learningitem.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case learningitem.FieldRecentResponseMs:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentResponseMs(v)
		return nil
	case learningitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learningitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningItemMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, learningitem.FieldUserID)
	}
	if m.addlist_id != nil {
		fields = append(fields, learningitem.FieldListID)
	}
	if m.addfrequency_rank != nil {
		fields = append(fields, learningitem.FieldFrequencyRank)
	}
	if m.addrelated_count != nil {
		fields = append(fields, learningitem.FieldRelatedCount)
	}
	if m.addreview_count != nil {
		fields = append(fields, learningitem.FieldReviewCount)
	}
	if m.addmistake_count != nil {
		fields = append(fields, learningitem.FieldMistakeCount)
	}
	if m.addcorrect_streak != nil {
		fields = append(fields, learningitem.FieldCorrectStreak)
	}
	if m.addskip_count != nil {
		fields = append(fields, learningitem.FieldSkipCount)
	}
	if m.addsrs_level != nil {
		fields = append(fields, learningitem.FieldSrsLevel)
	}
	if m.addmastery_score != nil {
		fields = append(fields, learningitem.FieldMasteryScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningitem.FieldUserID:
		return m.AddedUserID()
	case learningitem.FieldListID:
		return m.AddedListID()
	case learningitem.FieldFrequencyRank:
		return m.AddedFrequencyRank()
	case learningitem.FieldRelatedCount:
		return m.AddedRelatedCount()
	case learningitem.FieldReviewCount:
		return m.AddedReviewCount()
	case learningitem.FieldMistakeCount:
		return m.AddedMistakeCount()
	case learningitem.FieldCorrectStreak:
		return m.AddedCorrectStreak()
	case learningitem.FieldSkipCount:
		return m.AddedSkipCount()
	case learningitem.FieldSrsLevel:
		return m.AddedSrsLevel()
	case learningitem.FieldMasteryScore:
		return m.AddedMasteryScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case learningitem.FieldListID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListID(v)
		return nil
	case learningitem.FieldFrequencyRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrequencyRank(v)
		return nil
	case learningitem.FieldRelatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelatedCount(v)
		return nil
	case learningitem.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case learningitem.FieldMistakeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMistakeCount(v)
		return nil
	case learningitem.FieldCorrectStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectStreak(v)
		return nil
	case learningitem.FieldSkipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipCount(v)
		return nil
	case learningitem.FieldSrsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSrsLevel(v)
		return nil
	case learningitem.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	}
	return fmt.Errorf("unknown LearningItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningitem.FieldListID) {
		fields = append(fields, learningitem.FieldListID)
	}
	if m.FieldCleared(learningitem.FieldPartOfSpeech) {
		fields = append(fields, learningitem.FieldPartOfSpeech)
	}
	if m.FieldCleared(learningitem.FieldPhonetic) {
		fields = append(fields, learningitem.FieldPhonetic)
	}
	if m.FieldCleared(learningitem.FieldContext) {
		fields = append(fields, learningitem.FieldContext)
	}
	if m.FieldCleared(learningitem.FieldLastReviewedAt) {
		fields = append(fields, learningitem.FieldLastReviewedAt)
	}
	if m.FieldCleared(learningitem.FieldNextReviewAt) {
		fields = append(fields, learningitem.FieldNextReviewAt)
	}
	if m.FieldCleared(learningitem.FieldRecentResponseMs) {
		fields = append(fields, learningitem.FieldRecentResponseMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningItemMutation) ClearField(name string) error {
	switch name {
	case learningitem.FieldListID:
		m.ClearListID()
		return nil
	case learningitem.FieldPartOfSpeech:
		m.ClearPartOfSpeech()
		return nil
	case learningitem.FieldPhonetic:
		m.ClearPhonetic()
		return nil
	case learningitem.FieldContext:
		m.ClearContext()
		return nil
	case learningitem.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	case learningitem.FieldNextReviewAt:
		m.ClearNextReviewAt()
		return nil
	case learningitem.FieldRecentResponseMs:
		m.ClearRecentResponseMs()
		return nil
	}
	return fmt.Errorf("unknown LearningItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningItemMutation) ResetField(name string) error {
	switch name {
	case learningitem.FieldUserID:
		m.ResetUserID()
		return nil
	case learningitem.FieldListID:
		m.ResetListID()
		return nil
	case learningitem.FieldWord:
		m.ResetWord()
		return nil
	case learningitem.FieldDefinition:
		m.ResetDefinition()
		return nil
	case learningitem.FieldPartOfSpeech:
		m.ResetPartOfSpeech()
		return nil
	case learningitem.FieldPhonetic:
		m.ResetPhonetic()
		return nil
	case learningitem.FieldContext:
		m.ResetContext()
		return nil
	case learningitem.FieldHasImage:
		m.ResetHasImage()
		return nil
	case learningitem.FieldFrequencyRank:
		m.ResetFrequencyRank()
		return nil
	case learningitem.FieldRelatedCount:
		m.ResetRelatedCount()
		return nil
	case learningitem.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case learningitem.FieldMistakeCount:
		m.ResetMistakeCount()
		return nil
	case learningitem.FieldCorrectStreak:
		m.ResetCorrectStreak()
		return nil
	case learningitem.FieldSkipCount:
		m.ResetSkipCount()
		return nil
	case learningitem.FieldSrsLevel:
		m.ResetSrsLevel()
		return nil
	case learningitem.FieldStatus:
		m.ResetStatus()
		return nil
	case learningitem.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case learningitem.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case learningitem.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case learningitem.FieldRecentResponseMs:
		m.ResetRecentResponseMs()
		return nil
	case learningitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learningitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningItem edge %s", name)
}

// MistakeEventMutation represents an operation that mutates the MistakeEvent nodes in the graph.
type MistakeEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	user_id       *int64
	adduser_id    *int64
	item_id       *int64
	additem_id    *int64
	modality      *string
	metadata      *map[string]string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MistakeEvent, error)
	predicates    []predicate.MistakeEvent
}

var _ ent.Mutation = (*MistakeEventMutation)(nil)

// mistakeeventOption allows management of the mutation configuration using functional options.
type mistakeeventOption func(*MistakeEventMutation)

// newMistakeEventMutation creates new mutation for the MistakeEvent entity.
func newMistakeEventMutation(c config, op Op, opts ...mistakeeventOption) *MistakeEventMutation {
	m := &MistakeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMistakeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMistakeEventID sets the ID field of the mutation.
func withMistakeEventID(id int) mistakeeventOption {
	return func(m *MistakeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MistakeEvent
		)
		m.oldValue = func(ctx context.Context) (*MistakeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MistakeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMistakeEvent sets the old MistakeEvent of the mutation.
func withMistakeEvent(node *MistakeEvent) mistakeeventOption {
	return func(m *MistakeEventMutation) {
		m.oldValue = func(context.Context) (*MistakeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MistakeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MistakeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MistakeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MistakeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MistakeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MistakeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MistakeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MistakeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MistakeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MistakeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MistakeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MistakeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *MistakeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *MistakeEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MistakeEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *MistakeEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *MistakeEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MistakeEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetItemID sets the "item_id" field.
func (m *MistakeEventMutation) SetItemID(i int64) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *MistakeEventMutation) ItemID() (r int64, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldItemID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *MistakeEventMutation) AddItemID(i int64) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *MistakeEventMutation) AddedItemID() (r int64, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *MistakeEventMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// SetModality sets the "modality" field.
func (m *MistakeEventMutation) SetModality(s string) {
	m.modality = &s
}

// Modality returns the value of the "modality" field in the mutation.
func (m *MistakeEventMutation) Modality() (r string, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldModality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ResetModality resets all changes to the "modality" field.
func (m *MistakeEventMutation) ResetModality() {
	m.modality = nil
}

// SetMetadata sets the "metadata" field.
func (m *MistakeEventMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MistakeEventMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MistakeEvent entity.
// If the MistakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeEventMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MistakeEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[mistakeevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MistakeEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[mistakeevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MistakeEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, mistakeevent.FieldMetadata)
}

// Where appends a list predicates to the MistakeEventMutation builder.
func (m *MistakeEventMutation) Where(ps ...predicate.MistakeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MistakeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MistakeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MistakeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MistakeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MistakeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MistakeEvent).
func (m *MistakeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MistakeEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, mistakeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, mistakeevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, mistakeevent.FieldUserID)
	}
	if m.item_id != nil {
		fields = append(fields, mistakeevent.FieldItemID)
	}
	if m.modality != nil {
		fields = append(fields, mistakeevent.FieldModality)
	}
	if m.metadata != nil {
		fields = append(fields, mistakeevent.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MistakeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mistakeevent.FieldSequence:
		return m.Sequence()
	case mistakeevent.FieldTimestamp:
		return m.Timestamp()
	case mistakeevent.FieldUserID:
		return m.UserID()
	case mistakeevent.FieldItemID:
		return m.ItemID()
	case mistakeevent.FieldModality:
		return m.Modality()
	case mistakeevent.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MistakeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mistakeevent.FieldSequence:
		return m.OldSequence(ctx)
	case mistakeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case mistakeevent.FieldUserID:
		return m.OldUserID(ctx)
	case mistakeevent.FieldItemID:
		return m.OldItemID(ctx)
	case mistakeevent.FieldModality:
		return m.OldModality(ctx)
	case mistakeevent.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown MistakeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MistakeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mistakeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case mistakeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case mistakeevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mistakeevent.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case mistakeevent.FieldModality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	case mistakeevent.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown MistakeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MistakeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, mistakeevent.FieldSequence)
	}
	if m.adduser_id != nil {
		fields = append(fields, mistakeevent.FieldUserID)
	}
	if m.additem_id != nil {
		fields = append(fields, mistakeevent.FieldItemID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MistakeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mistakeevent.FieldSequence:
		return m.AddedSequence()
	case mistakeevent.FieldUserID:
		return m.AddedUserID()
	case mistakeevent.FieldItemID:
		return m.AddedItemID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MistakeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mistakeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case mistakeevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case mistakeevent.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	}
	return fmt.Errorf("unknown MistakeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MistakeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mistakeevent.FieldMetadata) {
		fields = append(fields, mistakeevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MistakeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MistakeEventMutation) ClearField(name string) error {
	switch name {
	case mistakeevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown MistakeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MistakeEventMutation) ResetField(name string) error {
	switch name {
	case mistakeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case mistakeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case mistakeevent.FieldUserID:
		m.ResetUserID()
		return nil
	case mistakeevent.FieldItemID:
		m.ResetItemID()
		return nil
	case mistakeevent.FieldModality:
		m.ResetModality()
		return nil
	case mistakeevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown MistakeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MistakeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MistakeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MistakeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MistakeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MistakeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MistakeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MistakeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MistakeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MistakeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MistakeEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	user_id           *int64
	adduser_id        *int64
	action            *string
	session_type      *string
	items_planned     *int
	additems_planned  *int
	completed         *int
	addcompleted      *int
	correct           *int
	addcorrect        *int
	incorrect         *int
	addincorrect      *int
	skipped           *int
	addskipped        *int
	duration_secs     *int
	addduration_secs  *int
	score             *float64
	addscore          *float64
	completion_pct    *float64
	addcompletion_pct *float64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SessionEvent, error)
	predicates        []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *SessionEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SessionEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetSessionType sets the "session_type" field.
func (m *SessionEventMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *SessionEventMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ClearSessionType clears the value of the "session_type" field.
func (m *SessionEventMutation) ClearSessionType() {
	m.session_type = nil
	m.clearedFields[sessionevent.FieldSessionType] = struct{}{}
}

// SessionTypeCleared returns if the "session_type" field was cleared in this mutation.
func (m *SessionEventMutation) SessionTypeCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldSessionType]
	return ok
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *SessionEventMutation) ResetSessionType() {
	m.session_type = nil
	delete(m.clearedFields, sessionevent.FieldSessionType)
}

// SetItemsPlanned sets the "items_planned" field.
func (m *SessionEventMutation) SetItemsPlanned(i int) {
	m.items_planned = &i
	m.additems_planned = nil
}

// ItemsPlanned returns the value of the "items_planned" field in the mutation.
func (m *SessionEventMutation) ItemsPlanned() (r int, exists bool) {
	v := m.items_planned
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsPlanned returns the old "items_planned" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldItemsPlanned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsPlanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsPlanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsPlanned: %w", err)
	}
	return oldValue.ItemsPlanned, nil
}

// AddItemsPlanned adds i to the "items_planned" field.
func (m *SessionEventMutation) AddItemsPlanned(i int) {
	if m.additems_planned != nil {
		*m.additems_planned += i
	} else {
		m.additems_planned = &i
	}
}

// AddedItemsPlanned returns the value that was added to the "items_planned" field in this mutation.
func (m *SessionEventMutation) AddedItemsPlanned() (r int, exists bool) {
	v := m.additems_planned
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsPlanned resets all changes to the "items_planned" field.
func (m *SessionEventMutation) ResetItemsPlanned() {
	m.items_planned = nil
	m.additems_planned = nil
}

// SetCompleted sets the "completed" field.
func (m *SessionEventMutation) SetCompleted(i int) {
	m.completed = &i
	m.addcompleted = nil
}

// Completed returns the value of the "completed" field in the mutation.
func (m *SessionEventMutation) Completed() (r int, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// AddCompleted adds i to the "completed" field.
func (m *SessionEventMutation) AddCompleted(i int) {
	if m.addcompleted != nil {
		*m.addcompleted += i
	} else {
		m.addcompleted = &i
	}
}

// AddedCompleted returns the value that was added to the "completed" field in this mutation.
func (m *SessionEventMutation) AddedCompleted() (r int, exists bool) {
	v := m.addcompleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleted resets all changes to the "completed" field.
func (m *SessionEventMutation) ResetCompleted() {
	m.completed = nil
	m.addcompleted = nil
}

// SetCorrect sets the "correct" field.
func (m *SessionEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *SessionEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
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

// AddCorrect adds i to the "correct" field.
func (m *SessionEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *SessionEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *SessionEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetIncorrect sets the "incorrect" field.
func (m *SessionEventMutation) SetIncorrect(i int) {
	m.incorrect = &i
	m.addincorrect = nil
}

// Incorrect returns the value of the "incorrect" field in the mutation.
func (m *SessionEventMutation) Incorrect() (r int, exists bool) {
	v := m.incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldIncorrect returns the old "incorrect" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldIncorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncorrect: %w", err)
	}
	return oldValue.Incorrect, nil
}

// AddIncorrect adds i to the "incorrect" field.
func (m *SessionEventMutation) AddIncorrect(i int) {
	if m.addincorrect != nil {
		*m.addincorrect += i
	} else {
		m.addincorrect = &i
	}
}

// AddedIncorrect returns the value that was added to the "incorrect" field in this mutation.
func (m *SessionEventMutation) AddedIncorrect() (r int, exists bool) {
	v := m.addincorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncorrect resets all changes to the "incorrect" field.
func (m *SessionEventMutation) ResetIncorrect() {
	m.incorrect = nil
	m.addincorrect = nil
}

// SetSkipped sets the "skipped" field.
func (m *SessionEventMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *SessionEventMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *SessionEventMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *SessionEventMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *SessionEventMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
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
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetScore sets the "score" field.
func (m *SessionEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SessionEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldScore(ctx context.Context) (v float64, err error) {
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

// AddScore adds f to the "score" field.
func (m *SessionEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SessionEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SessionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCompletionPct sets the "completion_pct" field.
func (m *SessionEventMutation) SetCompletionPct(f float64) {
	m.completion_pct = &f
	m.addcompletion_pct = nil
}

// CompletionPct returns the value of the "completion_pct" field in the mutation.
func (m *SessionEventMutation) CompletionPct() (r float64, exists bool) {
	v := m.completion_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionPct returns the old "completion_pct" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCompletionPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionPct: %w", err)
	}
	return oldValue.CompletionPct, nil
}

// AddCompletionPct adds f to the "completion_pct" field.
func (m *SessionEventMutation) AddCompletionPct(f float64) {
	if m.addcompletion_pct != nil {
		*m.addcompletion_pct += f
	} else {
		m.addcompletion_pct = &f
	}
}

// AddedCompletionPct returns the value that was added to the "completion_pct" field in this mutation.
func (m *SessionEventMutation) AddedCompletionPct() (r float64, exists bool) {
	v := m.addcompletion_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionPct resets all changes to the "completion_pct" field.
func (m *SessionEventMutation) ResetCompletionPct() {
	m.completion_pct = nil
	m.addcompletion_pct = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.session_type != nil {
		fields = append(fields, sessionevent.FieldSessionType)
	}
	if m.items_planned != nil {
		fields = append(fields, sessionevent.FieldItemsPlanned)
	}
	if m.completed != nil {
		fields = append(fields, sessionevent.FieldCompleted)
	}
	if m.correct != nil {
		fields = append(fields, sessionevent.FieldCorrect)
	}
	if m.incorrect != nil {
		fields = append(fields, sessionevent.FieldIncorrect)
	}
	if m.skipped != nil {
		fields = append(fields, sessionevent.FieldSkipped)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.score != nil {
		fields = append(fields, sessionevent.FieldScore)
	}
	if m.completion_pct != nil {
		fields = append(fields, sessionevent.FieldCompletionPct)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldUserID:
		return m.UserID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldSessionType:
		return m.SessionType()
	case sessionevent.FieldItemsPlanned:
		return m.ItemsPlanned()
	case sessionevent.FieldCompleted:
		return m.Completed()
	case sessionevent.FieldCorrect:
		return m.Correct()
	case sessionevent.FieldIncorrect:
		return m.Incorrect()
	case sessionevent.FieldSkipped:
		return m.Skipped()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	case sessionevent.FieldScore:
		return m.Score()
	case sessionevent.FieldCompletionPct:
		return m.CompletionPct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldUserID:
		return m.OldUserID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldSessionType:
		return m.OldSessionType(ctx)
	case sessionevent.FieldItemsPlanned:
		return m.OldItemsPlanned(ctx)
	case sessionevent.FieldCompleted:
		return m.OldCompleted(ctx)
	case sessionevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case sessionevent.FieldIncorrect:
		return m.OldIncorrect(ctx)
	case sessionevent.FieldSkipped:
		return m.OldSkipped(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case sessionevent.FieldScore:
		return m.OldScore(ctx)
	case sessionevent.FieldCompletionPct:
		return m.OldCompletionPct(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case sessionevent.FieldItemsPlanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsPlanned(v)
		return nil
	case sessionevent.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case sessionevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case sessionevent.FieldIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncorrect(v)
		return nil
	case sessionevent.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case sessionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case sessionevent.FieldCompletionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionPct(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.adduser_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.additems_planned != nil {
		fields = append(fields, sessionevent.FieldItemsPlanned)
	}
	if m.addcompleted != nil {
		fields = append(fields, sessionevent.FieldCompleted)
	}
	if m.addcorrect != nil {
		fields = append(fields, sessionevent.FieldCorrect)
	}
	if m.addincorrect != nil {
		fields = append(fields, sessionevent.FieldIncorrect)
	}
	if m.addskipped != nil {
		fields = append(fields, sessionevent.FieldSkipped)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.addscore != nil {
		fields = append(fields, sessionevent.FieldScore)
	}
	if m.addcompletion_pct != nil {
		fields = append(fields, sessionevent.FieldCompletionPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldUserID:
		return m.AddedUserID()
	case sessionevent.FieldItemsPlanned:
		return m.AddedItemsPlanned()
	case sessionevent.FieldCompleted:
		return m.AddedCompleted()
	case sessionevent.FieldCorrect:
		return m.AddedCorrect()
	case sessionevent.FieldIncorrect:
		return m.AddedIncorrect()
	case sessionevent.FieldSkipped:
		return m.AddedSkipped()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	case sessionevent.FieldScore:
		return m.AddedScore()
	case sessionevent.FieldCompletionPct:
		return m.AddedCompletionPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case sessionevent.FieldItemsPlanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsPlanned(v)
		return nil
	case sessionevent.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleted(v)
		return nil
	case sessionevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case sessionevent.FieldIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncorrect(v)
		return nil
	case sessionevent.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	case sessionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case sessionevent.FieldCompletionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionPct(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldSessionType) {
		fields = append(fields, sessionevent.FieldSessionType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldSessionType:
		m.ClearSessionType()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldSessionType:
		m.ResetSessionType()
		return nil
	case sessionevent.FieldItemsPlanned:
		m.ResetItemsPlanned()
		return nil
	case sessionevent.FieldCompleted:
		m.ResetCompleted()
		return nil
	case sessionevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case sessionevent.FieldIncorrect:
		m.ResetIncorrect()
		return nil
	case sessionevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case sessionevent.FieldScore:
		m.ResetScore()
		return nil
	case sessionevent.FieldCompletionPct:
		m.ResetCompletionPct()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
