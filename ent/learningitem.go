// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vocadrill/vocadrill/ent/learningitem"
)

// LearningItem is the model entity for the LearningItem schema.
type LearningItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Word list the item belongs to, 0 when unlisted
	ListID int64 `json:"list_id,omitempty"`
	// Word holds the value of the "word" field.
	Word string `json:"word,omitempty"`
	// Definition holds the value of the "definition" field.
	Definition string `json:"definition,omitempty"`
	// PartOfSpeech holds the value of the "part_of_speech" field.
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	// Phonetic holds the value of the "phonetic" field.
	Phonetic string `json:"phonetic,omitempty"`
	// Example sentence shown with the word
	Context string `json:"context,omitempty"`
	// HasImage holds the value of the "has_image" field.
	HasImage bool `json:"has_image,omitempty"`
	// Source-corpus frequency rank, 0 when unknown
	FrequencyRank int `json:"frequency_rank,omitempty"`
	// Known related items (synonyms, forms)
	RelatedCount int `json:"related_count,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// MistakeCount holds the value of the "mistake_count" field.
	MistakeCount int `json:"mistake_count,omitempty"`
	// CorrectStreak holds the value of the "correct_streak" field.
	CorrectStreak int `json:"correct_streak,omitempty"`
	// SkipCount holds the value of the "skip_count" field.
	SkipCount int `json:"skip_count,omitempty"`
	// Spaced-repetition level, clamped to 0-5
	SrsLevel int `json:"srs_level,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Derived 0-100 mastery metric
	MasteryScore int `json:"mastery_score,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// Rolling window of recent response times
	RecentResponseMs []int `json:"recent_response_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningitem.FieldRecentResponseMs:
			values[i] = new([]byte)
		case learningitem.FieldHasImage:
			values[i] = new(sql.NullBool)
		case learningitem.FieldID, learningitem.FieldUserID, learningitem.FieldListID, learningitem.FieldFrequencyRank, learningitem.FieldRelatedCount, learningitem.FieldReviewCount, learningitem.FieldMistakeCount, learningitem.FieldCorrectStreak, learningitem.FieldSkipCount, learningitem.FieldSrsLevel, learningitem.FieldMasteryScore:
			values[i] = new(sql.NullInt64)
		case learningitem.FieldWord, learningitem.FieldDefinition, learningitem.FieldPartOfSpeech, learningitem.FieldPhonetic, learningitem.FieldContext, learningitem.FieldStatus:
			values[i] = new(sql.NullString)
		case learningitem.FieldLastReviewedAt, learningitem.FieldNextReviewAt, learningitem.FieldCreatedAt, learningitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningItem fields.
func (_m *LearningItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningitem.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case learningitem.FieldListID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field list_id", values[i])
			} else if value.Valid {
				_m.ListID = value.Int64
			}
		case learningitem.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case learningitem.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case learningitem.FieldPartOfSpeech:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_of_speech", values[i])
			} else if value.Valid {
				_m.PartOfSpeech = value.String
			}
		case learningitem.FieldPhonetic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phonetic", values[i])
			} else if value.Valid {
				_m.Phonetic = value.String
			}
		case learningitem.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case learningitem.FieldHasImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_image", values[i])
			} else if value.Valid {
				_m.HasImage = value.Bool
			}
		case learningitem.FieldFrequencyRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frequency_rank", values[i])
			} else if value.Valid {
				_m.FrequencyRank = int(value.Int64)
			}
		case learningitem.FieldRelatedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field related_count", values[i])
			} else if value.Valid {
				_m.RelatedCount = int(value.Int64)
			}
		case learningitem.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case learningitem.FieldMistakeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_count", values[i])
			} else if value.Valid {
				_m.MistakeCount = int(value.Int64)
			}
		case learningitem.FieldCorrectStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_streak", values[i])
			} else if value.Valid {
				_m.CorrectStreak = int(value.Int64)
			}
		case learningitem.FieldSkipCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skip_count", values[i])
			} else if value.Valid {
				_m.SkipCount = int(value.Int64)
			}
		case learningitem.FieldSrsLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field srs_level", values[i])
			} else if value.Valid {
				_m.SrsLevel = int(value.Int64)
			}
		case learningitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case learningitem.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = int(value.Int64)
			}
		case learningitem.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case learningitem.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case learningitem.FieldRecentResponseMs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent_response_ms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecentResponseMs); err != nil {
					return fmt.Errorf("unmarshal field recent_response_ms: %w", err)
				}
			}
		case learningitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningItem.
// This includes values selected through modifiers, order, etc.
func (_m *LearningItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningItem.
// Note that you need to call LearningItem.Unwrap() before calling this method if this LearningItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningItem) Update() *LearningItemUpdateOne {
	return NewLearningItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningItem) Unwrap() *LearningItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningItem) String() string {
	var builder strings.Builder
	builder.WriteString("LearningItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("list_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListID))
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("part_of_speech=")
	builder.WriteString(_m.PartOfSpeech)
	builder.WriteString(", ")
	builder.WriteString("phonetic=")
	builder.WriteString(_m.Phonetic)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("has_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasImage))
	builder.WriteString(", ")
	builder.WriteString("frequency_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrequencyRank))
	builder.WriteString(", ")
	builder.WriteString("related_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedCount))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("mistake_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MistakeCount))
	builder.WriteString(", ")
	builder.WriteString("correct_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectStreak))
	builder.WriteString(", ")
	builder.WriteString("skip_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipCount))
	builder.WriteString(", ")
	builder.WriteString("srs_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SrsLevel))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("recent_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentResponseMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningItems is a parsable slice of LearningItem.
type LearningItems []*LearningItem
