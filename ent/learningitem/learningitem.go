// Code generated by ent, DO NOT EDIT.

package learningitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningitem type in the database.
	Label = "learning_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldListID holds the string denoting the list_id field in the database.
	FieldListID = "list_id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldDefinition holds the string denoting the definition field in the database.
	FieldDefinition = "definition"
	// FieldPartOfSpeech holds the string denoting the part_of_speech field in the database.
	FieldPartOfSpeech = "part_of_speech"
	// FieldPhonetic holds the string denoting the phonetic field in the database.
	FieldPhonetic = "phonetic"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldHasImage holds the string denoting the has_image field in the database.
	FieldHasImage = "has_image"
	// FieldFrequencyRank holds the string denoting the frequency_rank field in the database.
	FieldFrequencyRank = "frequency_rank"
	// FieldRelatedCount holds the string denoting the related_count field in the database.
	FieldRelatedCount = "related_count"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldMistakeCount holds the string denoting the mistake_count field in the database.
	FieldMistakeCount = "mistake_count"
	// FieldCorrectStreak holds the string denoting the correct_streak field in the database.
	FieldCorrectStreak = "correct_streak"
	// FieldSkipCount holds the string denoting the skip_count field in the database.
	FieldSkipCount = "skip_count"
	// FieldSrsLevel holds the string denoting the srs_level field in the database.
	FieldSrsLevel = "srs_level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldRecentResponseMs holds the string denoting the recent_response_ms field in the database.
	FieldRecentResponseMs = "recent_response_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learningitem in the database.
	Table = "learning_items"
)

// Columns holds all SQL columns for learningitem fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldListID,
	FieldWord,
	FieldDefinition,
	FieldPartOfSpeech,
	FieldPhonetic,
	FieldContext,
	FieldHasImage,
	FieldFrequencyRank,
	FieldRelatedCount,
	FieldReviewCount,
	FieldMistakeCount,
	FieldCorrectStreak,
	FieldSkipCount,
	FieldSrsLevel,
	FieldStatus,
	FieldMasteryScore,
	FieldLastReviewedAt,
	FieldNextReviewAt,
	FieldRecentResponseMs,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	DefinitionValidator func(string) error
	// DefaultPartOfSpeech holds the default value on creation for the "part_of_speech" field.
	DefaultPartOfSpeech string
	// DefaultPhonetic holds the default value on creation for the "phonetic" field.
	DefaultPhonetic string
	// DefaultContext holds the default value on creation for the "context" field.
	DefaultContext string
	// DefaultHasImage holds the default value on creation for the "has_image" field.
	DefaultHasImage bool
	// DefaultFrequencyRank holds the default value on creation for the "frequency_rank" field.
	DefaultFrequencyRank int
	// DefaultRelatedCount holds the default value on creation for the "related_count" field.
	DefaultRelatedCount int
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultMistakeCount holds the default value on creation for the "mistake_count" field.
	DefaultMistakeCount int
	// DefaultCorrectStreak holds the default value on creation for the "correct_streak" field.
	DefaultCorrectStreak int
	// DefaultSkipCount holds the default value on creation for the "skip_count" field.
	DefaultSkipCount int
	// DefaultSrsLevel holds the default value on creation for the "srs_level" field.
	DefaultSrsLevel int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearningItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByListID orders the results by the list_id field.
func ByListID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByDefinition orders the results by the definition field.
func ByDefinition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinition, opts...).ToFunc()
}

// ByPartOfSpeech orders the results by the part_of_speech field.
func ByPartOfSpeech(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartOfSpeech, opts...).ToFunc()
}

// ByPhonetic orders the results by the phonetic field.
func ByPhonetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhonetic, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByHasImage orders the results by the has_image field.
func ByHasImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImage, opts...).ToFunc()
}

// ByFrequencyRank orders the results by the frequency_rank field.
func ByFrequencyRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequencyRank, opts...).ToFunc()
}

// ByRelatedCount orders the results by the related_count field.
func ByRelatedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedCount, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByMistakeCount orders the results by the mistake_count field.
func ByMistakeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMistakeCount, opts...).ToFunc()
}

// ByCorrectStreak orders the results by the correct_streak field.
func ByCorrectStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectStreak, opts...).ToFunc()
}

// BySkipCount orders the results by the skip_count field.
func BySkipCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipCount, opts...).ToFunc()
}

// BySrsLevel orders the results by the srs_level field.
func BySrsLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrsLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
