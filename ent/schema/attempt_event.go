package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single practice attempt within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int64("user_id"),
		field.Int64("item_id"),
		field.String("modality").
			NotEmpty().
			Comment("typing, flashcard, pronunciation, or quiz"),
		field.String("user_input").
			Optional().
			Default(""),
		field.String("expected").
			Optional().
			Default(""),
		field.Bool("correct"),
		field.Float("accuracy").
			Default(0),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
		field.Bool("skipped").
			Default(false),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("user_id"),
	}
}
