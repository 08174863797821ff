package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle checkpoints (started, completed,
// abandoned).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int64("user_id"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.String("session_type").
			Optional().
			Default(""),
		field.Int("items_planned").
			Default(0),
		field.Int("completed").
			Default(0).
			Comment("Items consumed (terminal actions only)"),
		field.Int("correct").
			Default(0),
		field.Int("incorrect").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.Int("duration_secs").
			Default(0),
		field.Float("score").
			Default(0),
		field.Float("completion_pct").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
