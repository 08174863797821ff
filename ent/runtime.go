// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vocadrill/vocadrill/ent/attemptevent"
	"github.com/vocadrill/vocadrill/ent/learningitem"
	"github.com/vocadrill/vocadrill/ent/mistakeevent"
	"github.com/vocadrill/vocadrill/ent/schema"
	"github.com/vocadrill/vocadrill/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescModality is the schema descriptor for modality field.
	attempteventDescModality := attempteventFields[3].Descriptor()
	// attemptevent.ModalityValidator is a validator for the "modality" field. It is called by the builders before save.
	attemptevent.ModalityValidator = attempteventDescModality.Validators[0].(func(string) error)
	// attempteventDescUserInput is the schema descriptor for user_input field.
	attempteventDescUserInput := attempteventFields[4].Descriptor()
	// attemptevent.DefaultUserInput holds the default value on creation for the user_input field.
	attemptevent.DefaultUserInput = attempteventDescUserInput.Default.(string)
	// attempteventDescExpected is the schema descriptor for expected field.
	attempteventDescExpected := attempteventFields[5].Descriptor()
	// attemptevent.DefaultExpected holds the default value on creation for the expected field.
	attemptevent.DefaultExpected = attempteventDescExpected.Default.(string)
	// attempteventDescAccuracy is the schema descriptor for accuracy field.
	attempteventDescAccuracy := attempteventFields[7].Descriptor()
	// attemptevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	attemptevent.DefaultAccuracy = attempteventDescAccuracy.Default.(float64)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[8].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	// attempteventDescSkipped is the schema descriptor for skipped field.
	attempteventDescSkipped := attempteventFields[9].Descriptor()
	// attemptevent.DefaultSkipped holds the default value on creation for the skipped field.
	attemptevent.DefaultSkipped = attempteventDescSkipped.Default.(bool)
	learningitemFields := schema.LearningItem{}.Fields()
	_ = learningitemFields
	// learningitemDescWord is the schema descriptor for word field.
	learningitemDescWord := learningitemFields[2].Descriptor()
	// learningitem.WordValidator is a validator for the "word" field. It is called by the builders before save.
	learningitem.WordValidator = learningitemDescWord.Validators[0].(func(string) error)
	// learningitemDescDefinition is the schema descriptor for definition field.
	learningitemDescDefinition := learningitemFields[3].Descriptor()
	// learningitem.DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	learningitem.DefinitionValidator = learningitemDescDefinition.Validators[0].(func(string) error)
	// learningitemDescPartOfSpeech is the schema descriptor for part_of_speech field.
	learningitemDescPartOfSpeech := learningitemFields[4].Descriptor()
	// learningitem.DefaultPartOfSpeech holds the default value on creation for the part_of_speech field.
	learningitem.DefaultPartOfSpeech = learningitemDescPartOfSpeech.Default.(string)
	// learningitemDescPhonetic is the schema descriptor for phonetic field.
	learningitemDescPhonetic := learningitemFields[5].Descriptor()
	// learningitem.DefaultPhonetic holds the default value on creation for the phonetic field.
	learningitem.DefaultPhonetic = learningitemDescPhonetic.Default.(string)
	// learningitemDescContext is the schema descriptor for context field.
	learningitemDescContext := learningitemFields[6].Descriptor()
	// learningitem.DefaultContext holds the default value on creation for the context field.
	learningitem.DefaultContext = learningitemDescContext.Default.(string)
	// learningitemDescHasImage is the schema descriptor for has_image field.
	learningitemDescHasImage := learningitemFields[7].Descriptor()
	// learningitem.DefaultHasImage holds the default value on creation for the has_image field.
	learningitem.DefaultHasImage = learningitemDescHasImage.Default.(bool)
	// learningitemDescFrequencyRank is the schema descriptor for frequency_rank field.
	learningitemDescFrequencyRank := learningitemFields[8].Descriptor()
	// learningitem.DefaultFrequencyRank holds the default value on creation for the frequency_rank field.
	learningitem.DefaultFrequencyRank = learningitemDescFrequencyRank.Default.(int)
	// learningitemDescRelatedCount is the schema descriptor for related_count field.
	learningitemDescRelatedCount := learningitemFields[9].Descriptor()
	// learningitem.DefaultRelatedCount holds the default value on creation for the related_count field.
	learningitem.DefaultRelatedCount = learningitemDescRelatedCount.Default.(int)
	// learningitemDescReviewCount is the schema descriptor for review_count field.
	learningitemDescReviewCount := learningitemFields[10].Descriptor()
	// learningitem.DefaultReviewCount holds the default value on creation for the review_count field.
	learningitem.DefaultReviewCount = learningitemDescReviewCount.Default.(int)
	// learningitemDescMistakeCount is the schema descriptor for mistake_count field.
	learningitemDescMistakeCount := learningitemFields[11].Descriptor()
	// learningitem.DefaultMistakeCount holds the default value on creation for the mistake_count field.
	learningitem.DefaultMistakeCount = learningitemDescMistakeCount.Default.(int)
	// learningitemDescCorrectStreak is the schema descriptor for correct_streak field.
	learningitemDescCorrectStreak := learningitemFields[12].Descriptor()
	// learningitem.DefaultCorrectStreak holds the default value on creation for the correct_streak field.
	learningitem.DefaultCorrectStreak = learningitemDescCorrectStreak.Default.(int)
	// learningitemDescSkipCount is the schema descriptor for skip_count field.
	learningitemDescSkipCount := learningitemFields[13].Descriptor()
	// learningitem.DefaultSkipCount holds the default value on creation for the skip_count field.
	learningitem.DefaultSkipCount = learningitemDescSkipCount.Default.(int)
	// learningitemDescSrsLevel is the schema descriptor for srs_level field.
	learningitemDescSrsLevel := learningitemFields[14].Descriptor()
	// learningitem.DefaultSrsLevel holds the default value on creation for the srs_level field.
	learningitem.DefaultSrsLevel = learningitemDescSrsLevel.Default.(int)
	// learningitemDescStatus is the schema descriptor for status field.
	learningitemDescStatus := learningitemFields[15].Descriptor()
	// learningitem.DefaultStatus holds the default value on creation for the status field.
	learningitem.DefaultStatus = learningitemDescStatus.Default.(string)
	// learningitemDescMasteryScore is the schema descriptor for mastery_score field.
	learningitemDescMasteryScore := learningitemFields[16].Descriptor()
	// learningitem.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	learningitem.DefaultMasteryScore = learningitemDescMasteryScore.Default.(int)
	// learningitemDescCreatedAt is the schema descriptor for created_at field.
	learningitemDescCreatedAt := learningitemFields[20].Descriptor()
	// learningitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningitem.DefaultCreatedAt = learningitemDescCreatedAt.Default.(func() time.Time)
	// learningitemDescUpdatedAt is the schema descriptor for updated_at field.
	learningitemDescUpdatedAt := learningitemFields[21].Descriptor()
	// learningitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningitem.DefaultUpdatedAt = learningitemDescUpdatedAt.Default.(func() time.Time)
	// learningitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningitem.UpdateDefaultUpdatedAt = learningitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	mistakeeventMixin := schema.MistakeEvent{}.Mixin()
	mistakeeventMixinFields0 := mistakeeventMixin[0].Fields()
	_ = mistakeeventMixinFields0
	mistakeeventFields := schema.MistakeEvent{}.Fields()
	_ = mistakeeventFields
	// mistakeeventDescTimestamp is the schema descriptor for timestamp field.
	mistakeeventDescTimestamp := mistakeeventMixinFields0[1].Descriptor()
	// mistakeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mistakeevent.DefaultTimestamp = mistakeeventDescTimestamp.Default.(func() time.Time)
	// mistakeeventDescModality is the schema descriptor for modality field.
	mistakeeventDescModality := mistakeeventFields[2].Descriptor()
	// mistakeevent.ModalityValidator is a validator for the "modality" field. It is called by the builders before save.
	mistakeevent.ModalityValidator = mistakeeventDescModality.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSessionType holds the default value on creation for the session_type field.
	sessionevent.DefaultSessionType = sessioneventDescSessionType.Default.(string)
	// sessioneventDescItemsPlanned is the schema descriptor for items_planned field.
	sessioneventDescItemsPlanned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsPlanned holds the default value on creation for the items_planned field.
	sessionevent.DefaultItemsPlanned = sessioneventDescItemsPlanned.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescIncorrect is the schema descriptor for incorrect field.
	sessioneventDescIncorrect := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultIncorrect holds the default value on creation for the incorrect field.
	sessionevent.DefaultIncorrect = sessioneventDescIncorrect.Default.(int)
	// sessioneventDescSkipped is the schema descriptor for skipped field.
	sessioneventDescSkipped := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultSkipped holds the default value on creation for the skipped field.
	sessionevent.DefaultSkipped = sessioneventDescSkipped.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(float64)
	// sessioneventDescCompletionPct is the schema descriptor for completion_pct field.
	sessioneventDescCompletionPct := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultCompletionPct holds the default value on creation for the completion_pct field.
	sessionevent.DefaultCompletionPct = sessioneventDescCompletionPct.Default.(float64)
}
