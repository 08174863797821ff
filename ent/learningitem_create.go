// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vocadrill/vocadrill/ent/learningitem"
)

// LearningItemCreate is the builder for creating a LearningItem entity.
type LearningItemCreate struct {
	config
	mutation *LearningItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningItemCreate) SetUserID(v int64) *LearningItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetListID sets the "list_id" field.
func (_c *LearningItemCreate) SetListID(v int64) *LearningItemCreate {
	_c.mutation.SetListID(v)
	return _c
}

// SetNillableListID sets the "list_id" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableListID(v *int64) *LearningItemCreate {
	if v != nil {
		_c.SetListID(*v)
	}
	return _c
}

// SetWord sets the "word" field.
func (_c *LearningItemCreate) SetWord(v string) *LearningItemCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *LearningItemCreate) SetDefinition(v string) *LearningItemCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_c *LearningItemCreate) SetPartOfSpeech(v string) *LearningItemCreate {
	_c.mutation.SetPartOfSpeech(v)
	return _c
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillablePartOfSpeech(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetPartOfSpeech(*v)
	}
	return _c
}

// SetPhonetic sets the "phonetic" field.
func (_c *LearningItemCreate) SetPhonetic(v string) *LearningItemCreate {
	_c.mutation.SetPhonetic(v)
	return _c
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillablePhonetic(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetPhonetic(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *LearningItemCreate) SetContext(v string) *LearningItemCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableContext(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetHasImage sets the "has_image" field.
func (_c *LearningItemCreate) SetHasImage(v bool) *LearningItemCreate {
	_c.mutation.SetHasImage(v)
	return _c
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableHasImage(v *bool) *LearningItemCreate {
	if v != nil {
		_c.SetHasImage(*v)
	}
	return _c
}

// SetFrequencyRank sets the "frequency_rank" field.
func (_c *LearningItemCreate) SetFrequencyRank(v int) *LearningItemCreate {
	_c.mutation.SetFrequencyRank(v)
	return _c
}

// SetNillableFrequencyRank sets the "frequency_rank" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableFrequencyRank(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetFrequencyRank(*v)
	}
	return _c
}

// SetRelatedCount sets the "related_count" field.
func (_c *LearningItemCreate) SetRelatedCount(v int) *LearningItemCreate {
	_c.mutation.SetRelatedCount(v)
	return _c
}

// SetNillableRelatedCount sets the "related_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableRelatedCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetRelatedCount(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *LearningItemCreate) SetReviewCount(v int) *LearningItemCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableReviewCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetMistakeCount sets the "mistake_count" field.
func (_c *LearningItemCreate) SetMistakeCount(v int) *LearningItemCreate {
	_c.mutation.SetMistakeCount(v)
	return _c
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableMistakeCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetMistakeCount(*v)
	}
	return _c
}

// SetCorrectStreak sets the "correct_streak" field.
func (_c *LearningItemCreate) SetCorrectStreak(v int) *LearningItemCreate {
	_c.mutation.SetCorrectStreak(v)
	return _c
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableCorrectStreak(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetCorrectStreak(*v)
	}
	return _c
}

// SetSkipCount sets the "skip_count" field.
func (_c *LearningItemCreate) SetSkipCount(v int) *LearningItemCreate {
	_c.mutation.SetSkipCount(v)
	return _c
}

// SetNillableSkipCount sets the "skip_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableSkipCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetSkipCount(*v)
	}
	return _c
}

// SetSrsLevel sets the "srs_level" field.
func (_c *LearningItemCreate) SetSrsLevel(v int) *LearningItemCreate {
	_c.mutation.SetSrsLevel(v)
	return _c
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableSrsLevel(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetSrsLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningItemCreate) SetStatus(v string) *LearningItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableStatus(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *LearningItemCreate) SetMasteryScore(v int) *LearningItemCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableMasteryScore(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *LearningItemCreate) SetLastReviewedAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableLastReviewedAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *LearningItemCreate) SetNextReviewAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableNextReviewAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetRecentResponseMs sets the "recent_response_ms" field.
func (_c *LearningItemCreate) SetRecentResponseMs(v []int) *LearningItemCreate {
	_c.mutation.SetRecentResponseMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningItemCreate) SetCreatedAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableCreatedAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningItemCreate) SetUpdatedAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableUpdatedAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearningItemMutation object of the builder.
func (_c *LearningItemCreate) Mutation() *LearningItemMutation {
	return _c.mutation
}

// Save creates the LearningItem in the database.
func (_c *LearningItemCreate) Save(ctx context.Context) (*LearningItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningItemCreate) SaveX(ctx context.Context) *LearningItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningItemCreate) defaults() {
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		v := learningitem.DefaultPartOfSpeech
		_c.mutation.SetPartOfSpeech(v)
	}
	if _, ok := _c.mutation.Phonetic(); !ok {
		v := learningitem.DefaultPhonetic
		_c.mutation.SetPhonetic(v)
	}
	if _, ok := _c.mutation.Context(); !ok {
		v := learningitem.DefaultContext
		_c.mutation.SetContext(v)
	}
	if _, ok := _c.mutation.HasImage(); !ok {
		v := learningitem.DefaultHasImage
		_c.mutation.SetHasImage(v)
	}
	if _, ok := _c.mutation.FrequencyRank(); !ok {
		v := learningitem.DefaultFrequencyRank
		_c.mutation.SetFrequencyRank(v)
	}
	if _, ok := _c.mutation.RelatedCount(); !ok {
		v := learningitem.DefaultRelatedCount
		_c.mutation.SetRelatedCount(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := learningitem.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.MistakeCount(); !ok {
		v := learningitem.DefaultMistakeCount
		_c.mutation.SetMistakeCount(v)
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		v := learningitem.DefaultCorrectStreak
		_c.mutation.SetCorrectStreak(v)
	}
	if _, ok := _c.mutation.SkipCount(); !ok {
		v := learningitem.DefaultSkipCount
		_c.mutation.SetSkipCount(v)
	}
	if _, ok := _c.mutation.SrsLevel(); !ok {
		v := learningitem.DefaultSrsLevel
		_c.mutation.SetSrsLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := learningitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := learningitem.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningItem.user_id"`)}
	}
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "LearningItem.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := learningitem.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "LearningItem.word": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "LearningItem.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := learningitem.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "LearningItem.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasImage(); !ok {
		return &ValidationError{Name: "has_image", err: errors.New(`ent: missing required field "LearningItem.has_image"`)}
	}
	if _, ok := _c.mutation.FrequencyRank(); !ok {
		return &ValidationError{Name: "frequency_rank", err: errors.New(`ent: missing required field "LearningItem.frequency_rank"`)}
	}
	if _, ok := _c.mutation.RelatedCount(); !ok {
		return &ValidationError{Name: "related_count", err: errors.New(`ent: missing required field "LearningItem.related_count"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "LearningItem.review_count"`)}
	}
	if _, ok := _c.mutation.MistakeCount(); !ok {
		return &ValidationError{Name: "mistake_count", err: errors.New(`ent: missing required field "LearningItem.mistake_count"`)}
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		return &ValidationError{Name: "correct_streak", err: errors.New(`ent: missing required field "LearningItem.correct_streak"`)}
	}
	if _, ok := _c.mutation.SkipCount(); !ok {
		return &ValidationError{Name: "skip_count", err: errors.New(`ent: missing required field "LearningItem.skip_count"`)}
	}
	if _, ok := _c.mutation.SrsLevel(); !ok {
		return &ValidationError{Name: "srs_level", err: errors.New(`ent: missing required field "LearningItem.srs_level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningItem.status"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "LearningItem.mastery_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningItem.updated_at"`)}
	}
	return nil
}

func (_c *LearningItemCreate) sqlSave(ctx context.Context) (*LearningItem, error) {
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

func (_c *LearningItemCreate) createSpec() (*LearningItem, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningitem.Table, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningitem.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ListID(); ok {
		_spec.SetField(learningitem.FieldListID, field.TypeInt64, value)
		_node.ListID = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(learningitem.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(learningitem.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.PartOfSpeech(); ok {
		_spec.SetField(learningitem.FieldPartOfSpeech, field.TypeString, value)
		_node.PartOfSpeech = value
	}
	if value, ok := _c.mutation.Phonetic(); ok {
		_spec.SetField(learningitem.FieldPhonetic, field.TypeString, value)
		_node.Phonetic = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(learningitem.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.HasImage(); ok {
		_spec.SetField(learningitem.FieldHasImage, field.TypeBool, value)
		_node.HasImage = value
	}
	if value, ok := _c.mutation.FrequencyRank(); ok {
		_spec.SetField(learningitem.FieldFrequencyRank, field.TypeInt, value)
		_node.FrequencyRank = value
	}
	if value, ok := _c.mutation.RelatedCount(); ok {
		_spec.SetField(learningitem.FieldRelatedCount, field.TypeInt, value)
		_node.RelatedCount = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(learningitem.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.MistakeCount(); ok {
		_spec.SetField(learningitem.FieldMistakeCount, field.TypeInt, value)
		_node.MistakeCount = value
	}
	if value, ok := _c.mutation.CorrectStreak(); ok {
		_spec.SetField(learningitem.FieldCorrectStreak, field.TypeInt, value)
		_node.CorrectStreak = value
	}
	if value, ok := _c.mutation.SkipCount(); ok {
		_spec.SetField(learningitem.FieldSkipCount, field.TypeInt, value)
		_node.SkipCount = value
	}
	if value, ok := _c.mutation.SrsLevel(); ok {
		_spec.SetField(learningitem.FieldSrsLevel, field.TypeInt, value)
		_node.SrsLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(learningitem.FieldMasteryScore, field.TypeInt, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(learningitem.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(learningitem.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.RecentResponseMs(); ok {
		_spec.SetField(learningitem.FieldRecentResponseMs, field.TypeJSON, value)
		_node.RecentResponseMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningItemCreateBulk is the builder for creating many LearningItem entities in bulk.
type LearningItemCreateBulk struct {
	config
	err      error
	builders []*LearningItemCreate
}

// Save creates the LearningItem entities in the database.
func (_c *LearningItemCreateBulk) Save(ctx context.Context) ([]*LearningItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningItemMutation)
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
func (_c *LearningItemCreateBulk) SaveX(ctx context.Context) []*LearningItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
