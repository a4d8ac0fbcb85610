package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BlogPost is a server-rendered article. Content is sanitized HTML,
// never raw editor output.
type BlogPost struct {
	ent.Schema
}

func (BlogPost) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(200),

		field.String("slug").
			MaxLen(200).
			Unique(),

		field.Text("content").
			NotEmpty(),

		field.String("banner_url").
			Optional().
			Nillable(),

		// Social preview image, distinct from the in-page banner.
		field.String("og_image_url").
			Optional().
			Nillable(),

		field.String("excerpt").
			MaxLen(500).
			Optional().
			Nillable(),

		field.String("meta_title").
			MaxLen(60).
			Optional().
			Nillable(),

		field.String("meta_description").
			MaxLen(160),

		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),

		// Staff author identity from the external auth service.
		field.String("author").
			MaxLen(255),

		field.UUID("category_id", uuid.UUID{}),

		field.Time("published_at").
			Optional().
			Nillable(),
	}
}

func (BlogPost) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", BlogCategory.Type).
			Ref("posts").
			Field("category_id").
			Unique().
			Required(),
	}
}

func (BlogPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "published_at"),
	}
}
