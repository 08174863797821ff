// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vocadrill/vocadrill/ent/learningitem"
	"github.com/vocadrill/vocadrill/ent/predicate"
)

// LearningItemUpdate is the builder for updating LearningItem entities.
type LearningItemUpdate struct {
	config
	hooks    []Hook
	mutation *LearningItemMutation
}

// Where appends a list predicates to the LearningItemUpdate builder.
func (_u *LearningItemUpdate) Where(ps ...predicate.LearningItem) *LearningItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningItemUpdate) SetUserID(v int64) *LearningItemUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableUserID(v *int64) *LearningItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LearningItemUpdate) AddUserID(v int64) *LearningItemUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetListID sets the "list_id" field.
func (_u *LearningItemUpdate) SetListID(v int64) *LearningItemUpdate {
	_u.mutation.ResetListID()
	_u.mutation.SetListID(v)
	return _u
}

// SetNillableListID sets the "list_id" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableListID(v *int64) *LearningItemUpdate {
	if v != nil {
		_u.SetListID(*v)
	}
	return _u
}

// AddListID adds value to the "list_id" field.
func (_u *LearningItemUpdate) AddListID(v int64) *LearningItemUpdate {
	_u.mutation.AddListID(v)
	return _u
}

// ClearListID clears the value of the "list_id" field.
func (_u *LearningItemUpdate) ClearListID() *LearningItemUpdate {
	_u.mutation.ClearListID()
	return _u
}

// SetWord sets the "word" field.
func (_u *LearningItemUpdate) SetWord(v string) *LearningItemUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableWord(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *LearningItemUpdate) SetDefinition(v string) *LearningItemUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableDefinition(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *LearningItemUpdate) SetPartOfSpeech(v string) *LearningItemUpdate {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillablePartOfSpeech(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// ClearPartOfSpeech clears the value of the "part_of_speech" field.
func (_u *LearningItemUpdate) ClearPartOfSpeech() *LearningItemUpdate {
	_u.mutation.ClearPartOfSpeech()
	return _u
}

// SetPhonetic sets the "phonetic" field.
func (_u *LearningItemUpdate) SetPhonetic(v string) *LearningItemUpdate {
	_u.mutation.SetPhonetic(v)
	return _u
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillablePhonetic(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetPhonetic(*v)
	}
	return _u
}

// ClearPhonetic clears the value of the "phonetic" field.
func (_u *LearningItemUpdate) ClearPhonetic() *LearningItemUpdate {
	_u.mutation.ClearPhonetic()
	return _u
}

// SetContext sets the "context" field.
func (_u *LearningItemUpdate) SetContext(v string) *LearningItemUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableContext(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *LearningItemUpdate) ClearContext() *LearningItemUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *LearningItemUpdate) SetHasImage(v bool) *LearningItemUpdate {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableHasImage(v *bool) *LearningItemUpdate {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetFrequencyRank sets the "frequency_rank" field.
func (_u *LearningItemUpdate) SetFrequencyRank(v int) *LearningItemUpdate {
	_u.mutation.ResetFrequencyRank()
	_u.mutation.SetFrequencyRank(v)
	return _u
}

// SetNillableFrequencyRank sets the "frequency_rank" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableFrequencyRank(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetFrequencyRank(*v)
	}
	return _u
}

// AddFrequencyRank adds value to the "frequency_rank" field.
func (_u *LearningItemUpdate) AddFrequencyRank(v int) *LearningItemUpdate {
	_u.mutation.AddFrequencyRank(v)
	return _u
}

// SetRelatedCount sets the "related_count" field.
func (_u *LearningItemUpdate) SetRelatedCount(v int) *LearningItemUpdate {
	_u.mutation.ResetRelatedCount()
	_u.mutation.SetRelatedCount(v)
	return _u
}

// SetNillableRelatedCount sets the "related_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableRelatedCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetRelatedCount(*v)
	}
	return _u
}

// AddRelatedCount adds value to the "related_count" field.
func (_u *LearningItemUpdate) AddRelatedCount(v int) *LearningItemUpdate {
	_u.mutation.AddRelatedCount(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *LearningItemUpdate) SetReviewCount(v int) *LearningItemUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableReviewCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *LearningItemUpdate) AddReviewCount(v int) *LearningItemUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetMistakeCount sets the "mistake_count" field.
func (_u *LearningItemUpdate) SetMistakeCount(v int) *LearningItemUpdate {
	_u.mutation.ResetMistakeCount()
	_u.mutation.SetMistakeCount(v)
	return _u
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableMistakeCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetMistakeCount(*v)
	}
	return _u
}

// AddMistakeCount adds value to the "mistake_count" field.
func (_u *LearningItemUpdate) AddMistakeCount(v int) *LearningItemUpdate {
	_u.mutation.AddMistakeCount(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *LearningItemUpdate) SetCorrectStreak(v int) *LearningItemUpdate {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableCorrectStreak(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *LearningItemUpdate) AddCorrectStreak(v int) *LearningItemUpdate {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetSkipCount sets the "skip_count" field.
func (_u *LearningItemUpdate) SetSkipCount(v int) *LearningItemUpdate {
	_u.mutation.ResetSkipCount()
	_u.mutation.SetSkipCount(v)
	return _u
}

// SetNillableSkipCount sets the "skip_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableSkipCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetSkipCount(*v)
	}
	return _u
}

// AddSkipCount adds value to the "skip_count" field.
func (_u *LearningItemUpdate) AddSkipCount(v int) *LearningItemUpdate {
	_u.mutation.AddSkipCount(v)
	return _u
}

// SetSrsLevel sets the "srs_level" field.
func (_u *LearningItemUpdate) SetSrsLevel(v int) *LearningItemUpdate {
	_u.mutation.ResetSrsLevel()
	_u.mutation.SetSrsLevel(v)
	return _u
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableSrsLevel(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetSrsLevel(*v)
	}
	return _u
}

// AddSrsLevel adds value to the "srs_level" field.
func (_u *LearningItemUpdate) AddSrsLevel(v int) *LearningItemUpdate {
	_u.mutation.AddSrsLevel(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningItemUpdate) SetStatus(v string) *LearningItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableStatus(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *LearningItemUpdate) SetMasteryScore(v int) *LearningItemUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableMasteryScore(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *LearningItemUpdate) AddMasteryScore(v int) *LearningItemUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *LearningItemUpdate) SetLastReviewedAt(v time.Time) *LearningItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableLastReviewedAt(v *time.Time) *LearningItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *LearningItemUpdate) ClearLastReviewedAt() *LearningItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *LearningItemUpdate) SetNextReviewAt(v time.Time) *LearningItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableNextReviewAt(v *time.Time) *LearningItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *LearningItemUpdate) ClearNextReviewAt() *LearningItemUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetRecentResponseMs sets the "recent_response_ms" field.
func (_u *LearningItemUpdate) SetRecentResponseMs(v []int) *LearningItemUpdate {
	_u.mutation.SetRecentResponseMs(v)
	return _u
}

// AppendRecentResponseMs appends value to the "recent_response_ms" field.
func (_u *LearningItemUpdate) AppendRecentResponseMs(v []int) *LearningItemUpdate {
	_u.mutation.AppendRecentResponseMs(v)
	return _u
}

// ClearRecentResponseMs clears the value of the "recent_response_ms" field.
func (_u *LearningItemUpdate) ClearRecentResponseMs() *LearningItemUpdate {
	_u.mutation.ClearRecentResponseMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningItemUpdate) SetUpdatedAt(v time.Time) *LearningItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningItemMutation object of the builder.
func (_u *LearningItemUpdate) Mutation() *LearningItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningItemUpdate) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := learningitem.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "LearningItem.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := learningitem.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "LearningItem.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningitem.Table, learningitem.Columns, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(learningitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ListID(); ok {
		_spec.SetField(learningitem.FieldListID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedListID(); ok {
		_spec.AddField(learningitem.FieldListID, field.TypeInt64, value)
	}
	if _u.mutation.ListIDCleared() {
		_spec.ClearField(learningitem.FieldListID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(learningitem.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(learningitem.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(learningitem.FieldPartOfSpeech, field.TypeString, value)
	}
	if _u.mutation.PartOfSpeechCleared() {
		_spec.ClearField(learningitem.FieldPartOfSpeech, field.TypeString)
	}
	if value, ok := _u.mutation.Phonetic(); ok {
		_spec.SetField(learningitem.FieldPhonetic, field.TypeString, value)
	}
	if _u.mutation.PhoneticCleared() {
		_spec.ClearField(learningitem.FieldPhonetic, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(learningitem.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(learningitem.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(learningitem.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FrequencyRank(); ok {
		_spec.SetField(learningitem.FieldFrequencyRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyRank(); ok {
		_spec.AddField(learningitem.FieldFrequencyRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelatedCount(); ok {
		_spec.SetField(learningitem.FieldRelatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedCount(); ok {
		_spec.AddField(learningitem.FieldRelatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(learningitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(learningitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MistakeCount(); ok {
		_spec.SetField(learningitem.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakeCount(); ok {
		_spec.AddField(learningitem.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(learningitem.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(learningitem.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipCount(); ok {
		_spec.SetField(learningitem.FieldSkipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipCount(); ok {
		_spec.AddField(learningitem.FieldSkipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SrsLevel(); ok {
		_spec.SetField(learningitem.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSrsLevel(); ok {
		_spec.AddField(learningitem.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(learningitem.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(learningitem.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(learningitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(learningitem.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(learningitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(learningitem.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecentResponseMs(); ok {
		_spec.SetField(learningitem.FieldRecentResponseMs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentResponseMs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningitem.FieldRecentResponseMs, value)
		})
	}
	if _u.mutation.RecentResponseMsCleared() {
		_spec.ClearField(learningitem.FieldRecentResponseMs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningItemUpdateOne is the builder for updating a single LearningItem entity.
type LearningItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningItemUpdateOne) SetUserID(v int64) *LearningItemUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableUserID(v *int64) *LearningItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LearningItemUpdateOne) AddUserID(v int64) *LearningItemUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetListID sets the "list_id" field.
func (_u *LearningItemUpdateOne) SetListID(v int64) *LearningItemUpdateOne {
	_u.mutation.ResetListID()
	_u.mutation.SetListID(v)
	return _u
}

// SetNillableListID sets the "list_id" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableListID(v *int64) *LearningItemUpdateOne {
	if v != nil {
		_u.SetListID(*v)
	}
	return _u
}

// AddListID adds value to the "list_id" field.
func (_u *LearningItemUpdateOne) AddListID(v int64) *LearningItemUpdateOne {
	_u.mutation.AddListID(v)
	return _u
}

// ClearListID clears the value of the "list_id" field.
func (_u *LearningItemUpdateOne) ClearListID() *LearningItemUpdateOne {
	_u.mutation.ClearListID()
	return _u
}

// SetWord sets the "word" field.
func (_u *LearningItemUpdateOne) SetWord(v string) *LearningItemUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableWord(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *LearningItemUpdateOne) SetDefinition(v string) *LearningItemUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableDefinition(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *LearningItemUpdateOne) SetPartOfSpeech(v string) *LearningItemUpdateOne {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillablePartOfSpeech(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// ClearPartOfSpeech clears the value of the "part_of_speech" field.
func (_u *LearningItemUpdateOne) ClearPartOfSpeech() *LearningItemUpdateOne {
	_u.mutation.ClearPartOfSpeech()
	return _u
}

// SetPhonetic sets the "phonetic" field.
func (_u *LearningItemUpdateOne) SetPhonetic(v string) *LearningItemUpdateOne {
	_u.mutation.SetPhonetic(v)
	return _u
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillablePhonetic(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetPhonetic(*v)
	}
	return _u
}

// ClearPhonetic clears the value of the "phonetic" field.
func (_u *LearningItemUpdateOne) ClearPhonetic() *LearningItemUpdateOne {
	_u.mutation.ClearPhonetic()
	return _u
}

// SetContext sets the "context" field.
func (_u *LearningItemUpdateOne) SetContext(v string) *LearningItemUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableContext(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *LearningItemUpdateOne) ClearContext() *LearningItemUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *LearningItemUpdateOne) SetHasImage(v bool) *LearningItemUpdateOne {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableHasImage(v *bool) *LearningItemUpdateOne {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetFrequencyRank sets the "frequency_rank" field.
func (_u *LearningItemUpdateOne) SetFrequencyRank(v int) *LearningItemUpdateOne {
	_u.mutation.ResetFrequencyRank()
	_u.mutation.SetFrequencyRank(v)
	return _u
}

// SetNillableFrequencyRank sets the "frequency_rank" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableFrequencyRank(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetFrequencyRank(*v)
	}
	return _u
}

// AddFrequencyRank adds value to the "frequency_rank" field.
func (_u *LearningItemUpdateOne) AddFrequencyRank(v int) *LearningItemUpdateOne {
	_u.mutation.AddFrequencyRank(v)
	return _u
}

// SetRelatedCount sets the "related_count" field.
func (_u *LearningItemUpdateOne) SetRelatedCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetRelatedCount()
	_u.mutation.SetRelatedCount(v)
	return _u
}

// SetNillableRelatedCount sets the "related_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableRelatedCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetRelatedCount(*v)
	}
	return _u
}

// AddRelatedCount adds value to the "related_count" field.
func (_u *LearningItemUpdateOne) AddRelatedCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddRelatedCount(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *LearningItemUpdateOne) SetReviewCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableReviewCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *LearningItemUpdateOne) AddReviewCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetMistakeCount sets the "mistake_count" field.
func (_u *LearningItemUpdateOne) SetMistakeCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetMistakeCount()
	_u.mutation.SetMistakeCount(v)
	return _u
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableMistakeCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetMistakeCount(*v)
	}
	return _u
}

// AddMistakeCount adds value to the "mistake_count" field.
func (_u *LearningItemUpdateOne) AddMistakeCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddMistakeCount(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *LearningItemUpdateOne) SetCorrectStreak(v int) *LearningItemUpdateOne {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableCorrectStreak(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *LearningItemUpdateOne) AddCorrectStreak(v int) *LearningItemUpdateOne {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetSkipCount sets the "skip_count" field.
func (_u *LearningItemUpdateOne) SetSkipCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetSkipCount()
	_u.mutation.SetSkipCount(v)
	return _u
}

// SetNillableSkipCount sets the "skip_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableSkipCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetSkipCount(*v)
	}
	return _u
}

// AddSkipCount adds value to the "skip_count" field.
func (_u *LearningItemUpdateOne) AddSkipCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddSkipCount(v)
	return _u
}

// SetSrsLevel sets the "srs_level" field.
func (_u *LearningItemUpdateOne) SetSrsLevel(v int) *LearningItemUpdateOne {
	_u.mutation.ResetSrsLevel()
	_u.mutation.SetSrsLevel(v)
	return _u
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableSrsLevel(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetSrsLevel(*v)
	}
	return _u
}

// AddSrsLevel adds value to the "srs_level" field.
func (_u *LearningItemUpdateOne) AddSrsLevel(v int) *LearningItemUpdateOne {
	_u.mutation.AddSrsLevel(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningItemUpdateOne) SetStatus(v string) *LearningItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableStatus(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *LearningItemUpdateOne) SetMasteryScore(v int) *LearningItemUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableMasteryScore(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *LearningItemUpdateOne) AddMasteryScore(v int) *LearningItemUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *LearningItemUpdateOne) SetLastReviewedAt(v time.Time) *LearningItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *LearningItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *LearningItemUpdateOne) ClearLastReviewedAt() *LearningItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *LearningItemUpdateOne) SetNextReviewAt(v time.Time) *LearningItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *LearningItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *LearningItemUpdateOne) ClearNextReviewAt() *LearningItemUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetRecentResponseMs sets the "recent_response_ms" field.
func (_u *LearningItemUpdateOne) SetRecentResponseMs(v []int) *LearningItemUpdateOne {
	_u.mutation.SetRecentResponseMs(v)
	return _u
}

// AppendRecentResponseMs appends value to the "recent_response_ms" field.
func (_u *LearningItemUpdateOne) AppendRecentResponseMs(v []int) *LearningItemUpdateOne {
	_u.mutation.AppendRecentResponseMs(v)
	return _u
}

// ClearRecentResponseMs clears the value of the "recent_response_ms" field.
func (_u *LearningItemUpdateOne) ClearRecentResponseMs() *LearningItemUpdateOne {
	_u.mutation.ClearRecentResponseMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningItemUpdateOne) SetUpdatedAt(v time.Time) *LearningItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningItemMutation object of the builder.
func (_u *LearningItemUpdateOne) Mutation() *LearningItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningItemUpdate builder.
func (_u *LearningItemUpdateOne) Where(ps ...predicate.LearningItem) *LearningItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningItemUpdateOne) Select(field string, fields ...string) *LearningItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningItem entity.
func (_u *LearningItemUpdateOne) Save(ctx context.Context) (*LearningItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningItemUpdateOne) SaveX(ctx context.Context) *LearningItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningItemUpdateOne) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := learningitem.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "LearningItem.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := learningitem.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "LearningItem.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningItemUpdateOne) sqlSave(ctx context.Context) (_node *LearningItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningitem.Table, learningitem.Columns, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningitem.FieldID)
		for _, f := range fields {
			if !learningitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningitem.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(learningitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ListID(); ok {
		_spec.SetField(learningitem.FieldListID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedListID(); ok {
		_spec.AddField(learningitem.FieldListID, field.TypeInt64, value)
	}
	if _u.mutation.ListIDCleared() {
		_spec.ClearField(learningitem.FieldListID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(learningitem.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(learningitem.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(learningitem.FieldPartOfSpeech, field.TypeString, value)
	}
	if _u.mutation.PartOfSpeechCleared() {
		_spec.ClearField(learningitem.FieldPartOfSpeech, field.TypeString)
	}
	if value, ok := _u.mutation.Phonetic(); ok {
		_spec.SetField(learningitem.FieldPhonetic, field.TypeString, value)
	}
	if _u.mutation.PhoneticCleared() {
		_spec.ClearField(learningitem.FieldPhonetic, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(learningitem.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(learningitem.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(learningitem.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FrequencyRank(); ok {
		_spec.SetField(learningitem.FieldFrequencyRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyRank(); ok {
		_spec.AddField(learningitem.FieldFrequencyRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelatedCount(); ok {
		_spec.SetField(learningitem.FieldRelatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedCount(); ok {
		_spec.AddField(learningitem.FieldRelatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(learningitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(learningitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MistakeCount(); ok {
		_spec.SetField(learningitem.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakeCount(); ok {
		_spec.AddField(learningitem.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(learningitem.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(learningitem.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipCount(); ok {
		_spec.SetField(learningitem.FieldSkipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipCount(); ok {
		_spec.AddField(learningitem.FieldSkipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SrsLevel(); ok {
		_spec.SetField(learningitem.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSrsLevel(); ok {
		_spec.AddField(learningitem.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(learningitem.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(learningitem.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(learningitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(learningitem.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(learningitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(learningitem.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecentResponseMs(); ok {
		_spec.SetField(learningitem.FieldRecentResponseMs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentResponseMs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningitem.FieldRecentResponseMs, value)
		})
	}
	if _u.mutation.RecentResponseMsCleared() {
		_spec.ClearField(learningitem.FieldRecentResponseMs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
