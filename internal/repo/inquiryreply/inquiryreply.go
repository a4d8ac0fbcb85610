// Code generated by ent, DO NOT EDIT.

package inquiryreply

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the inquiryreply type in the database.
	Label = "inquiry_reply"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldInquiryID holds the string denoting the inquiry_id field in the database.
	FieldInquiryID = "inquiry_id"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldSentBy holds the string denoting the sent_by field in the database.
	FieldSentBy = "sent_by"
	// EdgeInquiry holds the string denoting the inquiry edge name in mutations.
	EdgeInquiry = "inquiry"
	// Table holds the table name of the inquiryreply in the database.
	Table = "inquiry_replies"
	// InquiryTable is the table that holds the inquiry relation/edge.
	InquiryTable = "inquiry_replies"
	// InquiryInverseTable is the table name for the Inquiry entity.
	// It exists in this package in order to avoid circular dependency with the "inquiry" package.
	InquiryInverseTable = "inquiries"
	// InquiryColumn is the table column denoting the inquiry relation/edge.
	InquiryColumn = "inquiry_id"
)

// Columns holds all SQL columns for inquiryreply fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldInquiryID,
	FieldMessage,
	FieldMessageID,
	FieldSentBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	MessageIDValidator func(string) error
	// SentByValidator is a validator for the "sent_by" field. It is called by the builders before save.
	SentByValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InquiryReply queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInquiryID orders the results by the inquiry_id field.
func ByInquiryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInquiryID, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// BySentBy orders the results by the sent_by field.
func BySentBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentBy, opts...).ToFunc()
}

// ByInquiryField orders the results by inquiry field.
func ByInquiryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInquiryStep(), sql.OrderByField(field, opts...))
	}
}
func newInquiryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InquiryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InquiryTable, InquiryColumn),
	)
}
