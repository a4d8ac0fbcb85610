// Code generated by ent, DO NOT EDIT.

package inquiryreply

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atriumhq/atrium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldCreatedAt, v))
}

// InquiryID applies equality check predicate on the "inquiry_id" field. It's identical to InquiryIDEQ.
func InquiryID(v uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldInquiryID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldMessage, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldMessageID, v))
}

// SentBy applies equality check predicate on the "sent_by" field. It's identical to SentByEQ.
func SentBy(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldSentBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLTE(FieldCreatedAt, v))
}

// InquiryIDEQ applies the EQ predicate on the "inquiry_id" field.
func InquiryIDEQ(v uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldInquiryID, v))
}

// InquiryIDNEQ applies the NEQ predicate on the "inquiry_id" field.
func InquiryIDNEQ(v uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldInquiryID, v))
}

// InquiryIDIn applies the In predicate on the "inquiry_id" field.
func InquiryIDIn(vs ...uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldInquiryID, vs...))
}

// InquiryIDNotIn applies the NotIn predicate on the "inquiry_id" field.
func InquiryIDNotIn(vs ...uuid.UUID) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldInquiryID, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContainsFold(FieldMessage, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContainsFold(FieldMessageID, v))
}

// SentByEQ applies the EQ predicate on the "sent_by" field.
func SentByEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEQ(FieldSentBy, v))
}

// SentByNEQ applies the NEQ predicate on the "sent_by" field.
func SentByNEQ(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNEQ(FieldSentBy, v))
}

// SentByIn applies the In predicate on the "sent_by" field.
func SentByIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldIn(FieldSentBy, vs...))
}

// SentByNotIn applies the NotIn predicate on the "sent_by" field.
func SentByNotIn(vs ...string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldNotIn(FieldSentBy, vs...))
}

// SentByGT applies the GT predicate on the "sent_by" field.
func SentByGT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGT(FieldSentBy, v))
}

// SentByGTE applies the GTE predicate on the "sent_by" field.
func SentByGTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldGTE(FieldSentBy, v))
}

// SentByLT applies the LT predicate on the "sent_by" field.
func SentByLT(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLT(FieldSentBy, v))
}

// SentByLTE applies the LTE predicate on the "sent_by" field.
func SentByLTE(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldLTE(FieldSentBy, v))
}

// SentByContains applies the Contains predicate on the "sent_by" field.
func SentByContains(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContains(FieldSentBy, v))
}

// SentByHasPrefix applies the HasPrefix predicate on the "sent_by" field.
func SentByHasPrefix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasPrefix(FieldSentBy, v))
}

// SentByHasSuffix applies the HasSuffix predicate on the "sent_by" field.
func SentByHasSuffix(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldHasSuffix(FieldSentBy, v))
}

// SentByEqualFold applies the EqualFold predicate on the "sent_by" field.
func SentByEqualFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldEqualFold(FieldSentBy, v))
}

// SentByContainsFold applies the ContainsFold predicate on the "sent_by" field.
func SentByContainsFold(v string) predicate.InquiryReply {
	return predicate.InquiryReply(sql.FieldContainsFold(FieldSentBy, v))
}

// HasInquiry applies the HasEdge predicate on the "inquiry" edge.
func HasInquiry() predicate.InquiryReply {
	return predicate.InquiryReply(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InquiryTable, InquiryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInquiryWith applies the HasEdge predicate on the "inquiry" edge with a given conditions (other predicates).
func HasInquiryWith(preds ...predicate.Inquiry) predicate.InquiryReply {
	return predicate.InquiryReply(func(s *sql.Selector) {
		step := newInquiryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InquiryReply) predicate.InquiryReply {
	return predicate.InquiryReply(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InquiryReply) predicate.InquiryReply {
	return predicate.InquiryReply(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InquiryReply) predicate.InquiryReply {
	return predicate.InquiryReply(sql.NotPredicates(p))
}
