package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BlogCategory groups published posts for the landing-site blog.
type BlogCategory struct {
	ent.Schema
}

func (BlogCategory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			Unique(),

		field.String("slug").
			MaxLen(100).
			Unique(),

		field.Int("sort_order").
			Default(0),
	}
}

func (BlogCategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("posts", BlogPost.Type),
	}
}
