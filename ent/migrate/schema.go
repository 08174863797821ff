// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "item_id", Type: field.TypeInt64},
		{Name: "modality", Type: field.TypeString},
		{Name: "user_input", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "expected", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeBool, Default: false},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// LearningItemsColumns holds the columns for the "learning_items" table.
	LearningItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "list_id", Type: field.TypeInt64, Nullable: true},
		{Name: "word", Type: field.TypeString},
		{Name: "definition", Type: field.TypeString},
		{Name: "part_of_speech", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "phonetic", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "context", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "has_image", Type: field.TypeBool, Default: false},
		{Name: "frequency_rank", Type: field.TypeInt, Default: 0},
		{Name: "related_count", Type: field.TypeInt, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "mistake_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "skip_count", Type: field.TypeInt, Default: 0},
		{Name: "srs_level", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "mastery_score", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "recent_response_ms", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningItemsTable holds the schema information for the "learning_items" table.
	LearningItemsTable = &schema.Table{
		Name:       "learning_items",
		Columns:    LearningItemsColumns,
		PrimaryKey: []*schema.Column{LearningItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningitem_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[1]},
			},
			{
				Name:    "learningitem_user_id_list_id",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[1], LearningItemsColumns[2]},
			},
			{
				Name:    "learningitem_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[1], LearningItemsColumns[19]},
			},
			{
				Name:    "learningitem_user_id_word",
				Unique:  true,
				Columns: []*schema.Column{LearningItemsColumns[1], LearningItemsColumns[3]},
			},
		},
	}
	// MistakeEventsColumns holds the columns for the "mistake_events" table.
	MistakeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "item_id", Type: field.TypeInt64},
		{Name: "modality", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// MistakeEventsTable holds the schema information for the "mistake_events" table.
	MistakeEventsTable = &schema.Table{
		Name:       "mistake_events",
		Columns:    MistakeEventsColumns,
		PrimaryKey: []*schema.Column{MistakeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistakeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[1]},
			},
			{
				Name:    "mistakeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[2]},
			},
			{
				Name:    "mistakeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[3]},
			},
			{
				Name:    "mistakeevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "action", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "items_planned", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "incorrect", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "completion_pct", Type: field.TypeFloat64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LearningItemsTable,
		MistakeEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
