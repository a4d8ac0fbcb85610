package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnread   Status = "unread"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUnread, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Inquiry is one contact-form submission.
type Inquiry struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	MessageID *string   `json:"messageId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reply is one staff response on an inquiry. Immutable once created.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	InquiryID uuid.UUID `json:"inquiryId"`
	Message   string    `json:"message"`
	MessageID *string   `json:"messageId"`
	SentBy    string    `json:"sentBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the persistence collaborator. It is injected so tests can swap
// in an in-memory fake; the production implementation is EntStore.
//
// Read contract: ListReplies and ReplyMessageIDs iterate in ascending
// creation order. Thread reconstruction depends on that guarantee, not on
// incidental insertion order.
type Store interface {
	CreateInquiry(ctx context.Context, email, subject, message string) (*Inquiry, error)
	SetInquiryMessageID(ctx context.Context, id uuid.UUID, messageID string) error
	GetInquiry(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	ListInquiries(ctx context.Context) ([]*Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status Status) (*Inquiry, error)

	// InquiryMessageID reads only the inquiry's message id. It reports
	// ErrInquiryNotFound for a missing inquiry, as opposed to an inquiry
	// that exists with no message id yet (nil, nil).
	InquiryMessageID(ctx context.Context, id uuid.UUID) (*string, error)

	CreateReply(ctx context.Context, inquiryID uuid.UUID, message, sentBy string, messageID *string) (*Reply, error)
	ListReplies(ctx context.Context, inquiryID uuid.UUID) ([]*Reply, error)
	ReplyMessageIDs(ctx context.Context, inquiryID uuid.UUID) ([]*string, error)
}
