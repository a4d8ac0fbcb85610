// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
	"github.com/google/uuid"
)

// InquiryReply is the model entity for the InquiryReply schema.
type InquiryReply struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// InquiryID holds the value of the "inquiry_id" field.
	InquiryID uuid.UUID `json:"inquiry_id,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID *string `json:"message_id,omitempty"`
	// SentBy holds the value of the "sent_by" field.
	SentBy string `json:"sent_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InquiryReplyQuery when eager-loading is set.
	Edges        InquiryReplyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InquiryReplyEdges holds the relations/edges for other nodes in the graph.
type InquiryReplyEdges struct {
	// Inquiry holds the value of the inquiry edge.
	Inquiry *Inquiry `json:"inquiry,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InquiryOrErr returns the Inquiry value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InquiryReplyEdges) InquiryOrErr() (*Inquiry, error) {
	if e.Inquiry != nil {
		return e.Inquiry, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: inquiry.Label}
	}
	return nil, &NotLoadedError{edge: "inquiry"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InquiryReply) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inquiryreply.FieldMessage, inquiryreply.FieldMessageID, inquiryreply.FieldSentBy:
			values[i] = new(sql.NullString)
		case inquiryreply.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case inquiryreply.FieldID, inquiryreply.FieldInquiryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InquiryReply fields.
func (_m *InquiryReply) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inquiryreply.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inquiryreply.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inquiryreply.FieldInquiryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field inquiry_id", values[i])
			} else if value != nil {
				_m.InquiryID = *value
			}
		case inquiryreply.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case inquiryreply.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(string)
				*_m.MessageID = value.String
			}
		case inquiryreply.FieldSentBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sent_by", values[i])
			} else if value.Valid {
				_m.SentBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InquiryReply.
// This includes values selected through modifiers, order, etc.
func (_m *InquiryReply) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInquiry queries the "inquiry" edge of the InquiryReply entity.
func (_m *InquiryReply) QueryInquiry() *InquiryQuery {
	return NewInquiryReplyClient(_m.config).QueryInquiry(_m)
}

// Update returns a builder for updating this InquiryReply.
// Note that you need to call InquiryReply.Unwrap() before calling this method if this InquiryReply
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InquiryReply) Update() *InquiryReplyUpdateOne {
	return NewInquiryReplyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InquiryReply entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InquiryReply) Unwrap() *InquiryReply {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InquiryReply is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InquiryReply) String() string {
	var builder strings.Builder
	builder.WriteString("InquiryReply(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("inquiry_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InquiryID))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sent_by=")
	builder.WriteString(_m.SentBy)
	builder.WriteByte(')')
	return builder.String()
}

// InquiryReplies is a parsable slice of InquiryReply.
type InquiryReplies []*InquiryReply
