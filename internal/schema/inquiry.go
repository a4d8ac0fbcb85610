package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Inquiry stores submissions from the public contact form.
type Inquiry struct {
	ent.Schema
}

func (Inquiry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Inquiry) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255),

		field.String("subject").
			MaxLen(255),

		field.Text("message"),

		field.Enum("status").
			Values("unread", "read", "archived").
			Default("unread"),

		// Transport Message-ID of the acknowledgement email. Stays nil
		// when that email never went out.
		field.String("message_id").
			MaxLen(255).
			Optional().
			Nillable(),
	}
}

func (Inquiry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("replies", InquiryReply.Type),
	}
}

func (Inquiry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
