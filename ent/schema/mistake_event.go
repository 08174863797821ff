package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MistakeEvent records one failed attempt for review-list generation.
type MistakeEvent struct {
	ent.Schema
}

func (MistakeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MistakeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("item_id"),
		field.String("modality").
			NotEmpty(),
		field.JSON("metadata", map[string]string{}).
			Optional(),
	}
}

func (MistakeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("item_id"),
	}
}
