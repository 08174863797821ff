// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vocadrill/vocadrill/ent/mistakeevent"
)

// MistakeEventCreate is the builder for creating a MistakeEvent entity.
type MistakeEventCreate struct {
	config
	mutation *MistakeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MistakeEventCreate) SetSequence(v int64) *MistakeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MistakeEventCreate) SetTimestamp(v time.Time) *MistakeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MistakeEventCreate) SetNillableTimestamp(v *time.Time) *MistakeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MistakeEventCreate) SetUserID(v int64) *MistakeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *MistakeEventCreate) SetItemID(v int64) *MistakeEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetModality sets the "modality" field.
func (_c *MistakeEventCreate) SetModality(v string) *MistakeEventCreate {
	_c.mutation.SetModality(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MistakeEventCreate) SetMetadata(v map[string]string) *MistakeEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the MistakeEventMutation object of the builder.
func (_c *MistakeEventCreate) Mutation() *MistakeEventMutation {
	return _c.mutation
}

// Save creates the MistakeEvent in the database.
func (_c *MistakeEventCreate) Save(ctx context.Context) (*MistakeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeEventCreate) SaveX(ctx context.Context) *MistakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mistakeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MistakeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MistakeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MistakeEvent.user_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "MistakeEvent.item_id"`)}
	}
	if _, ok := _c.mutation.Modality(); !ok {
		return &ValidationError{Name: "modality", err: errors.New(`ent: missing required field "MistakeEvent.modality"`)}
	}
	if v, ok := _c.mutation.Modality(); ok {
		if err := mistakeevent.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.modality": %w`, err)}
		}
	}
	return nil
}

func (_c *MistakeEventCreate) sqlSave(ctx context.Context) (*MistakeEvent, error) {
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

func (_c *MistakeEventCreate) createSpec() (*MistakeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MistakeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistakeevent.Table, sqlgraph.NewFieldSpec(mistakeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(mistakeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mistakeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mistakeevent.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(mistakeevent.FieldItemID, field.TypeInt64, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Modality(); ok {
		_spec.SetField(mistakeevent.FieldModality, field.TypeString, value)
		_node.Modality = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(mistakeevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// MistakeEventCreateBulk is the builder for creating many MistakeEvent entities in bulk.
type MistakeEventCreateBulk struct {
	config
	err      error
	builders []*MistakeEventCreate
}

// Save creates the MistakeEvent entities in the database.
func (_c *MistakeEventCreateBulk) Save(ctx context.Context) ([]*MistakeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MistakeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeEventMutation)
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
func (_c *MistakeEventCreateBulk) SaveX(ctx context.Context) []*MistakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
