package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InquiryReply is one staff response on an inquiry thread. Rows are
// append-only; chronological order of their message_ids is what mail
// clients use to group the conversation.
type InquiryReply struct {
	ent.Schema
}

func (InquiryReply) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InquiryReply) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("inquiry_id", uuid.UUID{}),

		field.Text("message"),

		// Transport Message-ID of the outbound reply email; nil when the
		// send failed (the row is still recorded).
		field.String("message_id").
			MaxLen(255).
			Optional().
			Nillable(),

		field.String("sent_by").
			MaxLen(255),
	}
}

func (InquiryReply) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("inquiry", Inquiry.Type).
			Ref("replies").
			Field("inquiry_id").
			Unique().
			Required(),
	}
}

func (InquiryReply) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("inquiry_id", "created_at"),
	}
}
