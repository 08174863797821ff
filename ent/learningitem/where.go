// Code generated by ent, DO NOT EDIT.

package learningitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vocadrill/vocadrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldUserID, v))
}

// ListID applies equality check predicate on the "list_id" field. It's identical to ListIDEQ.
func ListID(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldListID, v))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldWord, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldDefinition, v))
}

// PartOfSpeech applies equality check predicate on the "part_of_speech" field. It's identical to PartOfSpeechEQ.
func PartOfSpeech(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPartOfSpeech, v))
}

// Phonetic applies equality check predicate on the "phonetic" field. It's identical to PhoneticEQ.
func Phonetic(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPhonetic, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldContext, v))
}

// HasImage applies equality check predicate on the "has_image" field. It's identical to HasImageEQ.
func HasImage(v bool) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldHasImage, v))
}

// FrequencyRank applies equality check predicate on the "frequency_rank" field. It's identical to FrequencyRankEQ.
func FrequencyRank(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldFrequencyRank, v))
}

// RelatedCount applies equality check predicate on the "related_count" field. It's identical to RelatedCountEQ.
func RelatedCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldRelatedCount, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldReviewCount, v))
}

// MistakeCount applies equality check predicate on the "mistake_count" field. It's identical to MistakeCountEQ.
func MistakeCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldMistakeCount, v))
}

// CorrectStreak applies equality check predicate on the "correct_streak" field. It's identical to CorrectStreakEQ.
func CorrectStreak(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCorrectStreak, v))
}

// SkipCount applies equality check predicate on the "skip_count" field. It's identical to SkipCountEQ.
func SkipCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldSkipCount, v))
}

// SrsLevel applies equality check predicate on the "srs_level" field. It's identical to SrsLevelEQ.
func SrsLevel(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldSrsLevel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldStatus, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldMasteryScore, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldNextReviewAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldUserID, v))
}

// ListIDEQ applies the EQ predicate on the "list_id" field.
func ListIDEQ(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldListID, v))
}

// ListIDNEQ applies the NEQ predicate on the "list_id" field.
func ListIDNEQ(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldListID, v))
}

// ListIDIn applies the In predicate on the "list_id" field.
func ListIDIn(vs ...int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldListID, vs...))
}

// ListIDNotIn applies the NotIn predicate on the "list_id" field.
func ListIDNotIn(vs ...int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldListID, vs...))
}

// ListIDGT applies the GT predicate on the "list_id" field.
func ListIDGT(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldListID, v))
}

// ListIDGTE applies the GTE predicate on the "list_id" field.
func ListIDGTE(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldListID, v))
}

// ListIDLT applies the LT predicate on the "list_id" field.
func ListIDLT(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldListID, v))
}

// ListIDLTE applies the LTE predicate on the "list_id" field.
func ListIDLTE(v int64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldListID, v))
}

// ListIDIsNil applies the IsNil predicate on the "list_id" field.
func ListIDIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldListID))
}

// ListIDNotNil applies the NotNil predicate on the "list_id" field.
func ListIDNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldListID))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldWord, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldDefinition, v))
}

// PartOfSpeechEQ applies the EQ predicate on the "part_of_speech" field.
func PartOfSpeechEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechNEQ applies the NEQ predicate on the "part_of_speech" field.
func PartOfSpeechNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechIn applies the In predicate on the "part_of_speech" field.
func PartOfSpeechIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechNotIn applies the NotIn predicate on the "part_of_speech" field.
func PartOfSpeechNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechGT applies the GT predicate on the "part_of_speech" field.
func PartOfSpeechGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldPartOfSpeech, v))
}

// PartOfSpeechGTE applies the GTE predicate on the "part_of_speech" field.
func PartOfSpeechGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldPartOfSpeech, v))
}

// PartOfSpeechLT applies the LT predicate on the "part_of_speech" field.
func PartOfSpeechLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldPartOfSpeech, v))
}

// PartOfSpeechLTE applies the LTE predicate on the "part_of_speech" field.
func PartOfSpeechLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldPartOfSpeech, v))
}

// PartOfSpeechContains applies the Contains predicate on the "part_of_speech" field.
func PartOfSpeechContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldPartOfSpeech, v))
}

// PartOfSpeechHasPrefix applies the HasPrefix predicate on the "part_of_speech" field.
func PartOfSpeechHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldPartOfSpeech, v))
}

// PartOfSpeechHasSuffix applies the HasSuffix predicate on the "part_of_speech" field.
func PartOfSpeechHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldPartOfSpeech, v))
}

// PartOfSpeechIsNil applies the IsNil predicate on the "part_of_speech" field.
func PartOfSpeechIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldPartOfSpeech))
}

// PartOfSpeechNotNil applies the NotNil predicate on the "part_of_speech" field.
func PartOfSpeechNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldPartOfSpeech))
}

// PartOfSpeechEqualFold applies the EqualFold predicate on the "part_of_speech" field.
func PartOfSpeechEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldPartOfSpeech, v))
}

// PartOfSpeechContainsFold applies the ContainsFold predicate on the "part_of_speech" field.
func PartOfSpeechContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldPartOfSpeech, v))
}

// PhoneticEQ applies the EQ predicate on the "phonetic" field.
func PhoneticEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPhonetic, v))
}

// PhoneticNEQ applies the NEQ predicate on the "phonetic" field.
func PhoneticNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldPhonetic, v))
}

// PhoneticIn applies the In predicate on the "phonetic" field.
func PhoneticIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldPhonetic, vs...))
}

// PhoneticNotIn applies the NotIn predicate on the "phonetic" field.
func PhoneticNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldPhonetic, vs...))
}

// PhoneticGT applies the GT predicate on the "phonetic" field.
func PhoneticGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldPhonetic, v))
}

// PhoneticGTE applies the GTE predicate on the "phonetic" field.
func PhoneticGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldPhonetic, v))
}

// PhoneticLT applies the LT predicate on the "phonetic" field.
func PhoneticLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldPhonetic, v))
}

// PhoneticLTE applies the LTE predicate on the "phonetic" field.
func PhoneticLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldPhonetic, v))
}

// PhoneticContains applies the Contains predicate on the "phonetic" field.
func PhoneticContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldPhonetic, v))
}

// PhoneticHasPrefix applies the HasPrefix predicate on the "phonetic" field.
func PhoneticHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldPhonetic, v))
}

// PhoneticHasSuffix applies the HasSuffix predicate on the "phonetic" field.
func PhoneticHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldPhonetic, v))
}

// PhoneticIsNil applies the IsNil predicate on the "phonetic" field.
func PhoneticIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldPhonetic))
}

// PhoneticNotNil applies the NotNil predicate on the "phonetic" field.
func PhoneticNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldPhonetic))
}

// PhoneticEqualFold applies the EqualFold predicate on the "phonetic" field.
func PhoneticEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldPhonetic, v))
}

// PhoneticContainsFold applies the ContainsFold predicate on the "phonetic" field.
func PhoneticContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldPhonetic, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldContext, v))
}

// HasImageEQ applies the EQ predicate on the "has_image" field.
func HasImageEQ(v bool) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldHasImage, v))
}

// HasImageNEQ applies the NEQ predicate on the "has_image" field.
func HasImageNEQ(v bool) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldHasImage, v))
}

// FrequencyRankEQ applies the EQ predicate on the "frequency_rank" field.
func FrequencyRankEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldFrequencyRank, v))
}

// FrequencyRankNEQ applies the NEQ predicate on the "frequency_rank" field.
func FrequencyRankNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldFrequencyRank, v))
}

// FrequencyRankIn applies the In predicate on the "frequency_rank" field.
func FrequencyRankIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldFrequencyRank, vs...))
}

// FrequencyRankNotIn applies the NotIn predicate on the "frequency_rank" field.
func FrequencyRankNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldFrequencyRank, vs...))
}

// FrequencyRankGT applies the GT predicate on the "frequency_rank" field.
func FrequencyRankGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldFrequencyRank, v))
}

// FrequencyRankGTE applies the GTE predicate on the "frequency_rank" field.
func FrequencyRankGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldFrequencyRank, v))
}

// FrequencyRankLT applies the LT predicate on the "frequency_rank" field.
func FrequencyRankLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldFrequencyRank, v))
}

// FrequencyRankLTE applies the LTE predicate on the "frequency_rank" field.
func FrequencyRankLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldFrequencyRank, v))
}

// RelatedCountEQ applies the EQ predicate on the "related_count" field.
func RelatedCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldRelatedCount, v))
}

// RelatedCountNEQ applies the NEQ predicate on the "related_count" field.
func RelatedCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldRelatedCount, v))
}

// RelatedCountIn applies the In predicate on the "related_count" field.
func RelatedCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldRelatedCount, vs...))
}

// RelatedCountNotIn applies the NotIn predicate on the "related_count" field.
func RelatedCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldRelatedCount, vs...))
}

// RelatedCountGT applies the GT predicate on the "related_count" field.
func RelatedCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldRelatedCount, v))
}

// RelatedCountGTE applies the GTE predicate on the "related_count" field.
func RelatedCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldRelatedCount, v))
}

// RelatedCountLT applies the LT predicate on the "related_count" field.
func RelatedCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldRelatedCount, v))
}

// RelatedCountLTE applies the LTE predicate on the "related_count" field.
func RelatedCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldRelatedCount, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldReviewCount, v))
}

// MistakeCountEQ applies the EQ predicate on the "mistake_count" field.
func MistakeCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldMistakeCount, v))
}

// MistakeCountNEQ applies the NEQ predicate on the "mistake_count" field.
func MistakeCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldMistakeCount, v))
}

// MistakeCountIn applies the In predicate on the "mistake_count" field.
func MistakeCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldMistakeCount, vs...))
}

// MistakeCountNotIn applies the NotIn predicate on the "mistake_count" field.
func MistakeCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldMistakeCount, vs...))
}

// MistakeCountGT applies the GT predicate on the "mistake_count" field.
func MistakeCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldMistakeCount, v))
}

// MistakeCountGTE applies the GTE predicate on the "mistake_count" field.
func MistakeCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldMistakeCount, v))
}

// MistakeCountLT applies the LT predicate on the "mistake_count" field.
func MistakeCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldMistakeCount, v))
}

// MistakeCountLTE applies the LTE predicate on the "mistake_count" field.
func MistakeCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldMistakeCount, v))
}

// CorrectStreakEQ applies the EQ predicate on the "correct_streak" field.
func CorrectStreakEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCorrectStreak, v))
}

// CorrectStreakNEQ applies the NEQ predicate on the "correct_streak" field.
func CorrectStreakNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldCorrectStreak, v))
}

// CorrectStreakIn applies the In predicate on the "correct_streak" field.
func CorrectStreakIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldCorrectStreak, vs...))
}

// CorrectStreakNotIn applies the NotIn predicate on the "correct_streak" field.
func CorrectStreakNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldCorrectStreak, vs...))
}

// CorrectStreakGT applies the GT predicate on the "correct_streak" field.
func CorrectStreakGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldCorrectStreak, v))
}

// CorrectStreakGTE applies the GTE predicate on the "correct_streak" field.
func CorrectStreakGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldCorrectStreak, v))
}

// CorrectStreakLT applies the LT predicate on the "correct_streak" field.
func CorrectStreakLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldCorrectStreak, v))
}

// CorrectStreakLTE applies the LTE predicate on the "correct_streak" field.
func CorrectStreakLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldCorrectStreak, v))
}

// SkipCountEQ applies the EQ predicate on the "skip_count" field.
func SkipCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldSkipCount, v))
}

// SkipCountNEQ applies the NEQ predicate on the "skip_count" field.
func SkipCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldSkipCount, v))
}

// SkipCountIn applies the In predicate on the "skip_count" field.
func SkipCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldSkipCount, vs...))
}

// SkipCountNotIn applies the NotIn predicate on the "skip_count" field.
func SkipCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldSkipCount, vs...))
}

// SkipCountGT applies the GT predicate on the "skip_count" field.
func SkipCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldSkipCount, v))
}

// SkipCountGTE applies the GTE predicate on the "skip_count" field.
func SkipCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldSkipCount, v))
}

// SkipCountLT applies the LT predicate on the "skip_count" field.
func SkipCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldSkipCount, v))
}

// SkipCountLTE applies the LTE predicate on the "skip_count" field.
func SkipCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldSkipCount, v))
}

// SrsLevelEQ applies the EQ predicate on the "srs_level" field.
func SrsLevelEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldSrsLevel, v))
}

// SrsLevelNEQ applies the NEQ predicate on the "srs_level" field.
func SrsLevelNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldSrsLevel, v))
}

// SrsLevelIn applies the In predicate on the "srs_level" field.
func SrsLevelIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldSrsLevel, vs...))
}

// SrsLevelNotIn applies the NotIn predicate on the "srs_level" field.
func SrsLevelNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldSrsLevel, vs...))
}

// SrsLevelGT applies the GT predicate on the "srs_level" field.
func SrsLevelGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldSrsLevel, v))
}

// SrsLevelGTE applies the GTE predicate on the "srs_level" field.
func SrsLevelGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldSrsLevel, v))
}

// SrsLevelLT applies the LT predicate on the "srs_level" field.
func SrsLevelLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldSrsLevel, v))
}

// SrsLevelLTE applies the LTE predicate on the "srs_level" field.
func SrsLevelLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldSrsLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldStatus, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldMasteryScore, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldLastReviewedAt))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldNextReviewAt))
}

// RecentResponseMsIsNil applies the IsNil predicate on the "recent_response_ms" field.
func RecentResponseMsIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldRecentResponseMs))
}

// RecentResponseMsNotNil applies the NotNil predicate on the "recent_response_ms" field.
func RecentResponseMsNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldRecentResponseMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.NotPredicates(p))
}
