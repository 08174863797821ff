package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningItem is one user's binding to one definition of one word,
// carrying the durable spaced-repetition state.
type LearningItem struct {
	ent.Schema
}

func (LearningItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("list_id").
			Optional().
			Comment("Word list the item belongs to, 0 when unlisted"),
		field.String("word").
			NotEmpty(),
		field.String("definition").
			NotEmpty(),
		field.String("part_of_speech").
			Optional().
			Default(""),
		field.String("phonetic").
			Optional().
			Default(""),
		field.String("context").
			Optional().
			Default("").
			Comment("Example sentence shown with the word"),
		field.Bool("has_image").
			Default(false),
		field.Int("frequency_rank").
			Default(0).
			Comment("Source-corpus frequency rank, 0 when unknown"),
		field.Int("related_count").
			Default(0).
			Comment("Known related items (synonyms, forms)"),
		field.Int("review_count").
			Default(0),
		field.Int("mistake_count").
			Default(0),
		field.Int("correct_streak").
			Default(0),
		field.Int("skip_count").
			Default(0),
		field.Int("srs_level").
			Default(0).
			Comment("Spaced-repetition level, clamped to 0-5"),
		field.String("status").
			Default("not_started"),
		field.Int("mastery_score").
			Default(0).
			Comment("Derived 0-100 mastery metric"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("next_review_at").
			Optional().
			Nillable(),
		field.JSON("recent_response_ms", []int{}).
			Optional().
			Comment("Rolling window of recent response times"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "list_id"),
		index.Fields("user_id", "next_review_at"),
		index.Fields("user_id", "word").Unique(),
	}
}
