package contact

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium_backend/internal/repo"
	entinquiry "github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	entreply "github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
)

// EntStore implements Store on the generated ent client.
type EntStore struct {
	db *repo.Client
}

func NewEntStore(db *repo.Client) *EntStore {
	return &EntStore{db: db}
}

func (s *EntStore) CreateInquiry(ctx context.Context, email, subject, message string) (*Inquiry, error) {
	row, err := s.db.Inquiry.Create().
		SetEmail(email).
		SetSubject(subject).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inquiryFromRow(row), nil
}

func (s *EntStore) SetInquiryMessageID(ctx context.Context, id uuid.UUID, messageID string) error {
	err := s.db.Inquiry.UpdateOneID(id).
		SetMessageID(messageID).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInquiryNotFound
		}
		return fmt.Errorf("set inquiry message id: %w", err)
	}
	return nil
}

func (s *EntStore) GetInquiry(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	row, err := s.db.Inquiry.Query().
		Where(entinquiry.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return inquiryFromRow(row), nil
}

func (s *EntStore) ListInquiries(ctx context.Context) ([]*Inquiry, error) {
	rows, err := s.db.Inquiry.Query().
		Order(entinquiry.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	out := make([]*Inquiry, 0, len(rows))
	for _, row := range rows {
		out = append(out, inquiryFromRow(row))
	}
	return out, nil
}

func (s *EntStore) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status Status) (*Inquiry, error) {
	row, err := s.db.Inquiry.UpdateOneID(id).
		SetStatus(entinquiry.Status(status)).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inquiryFromRow(row), nil
}

func (s *EntStore) InquiryMessageID(ctx context.Context, id uuid.UUID) (*string, error) {
	row, err := s.db.Inquiry.Query().
		Where(entinquiry.ID(id)).
		Select(entinquiry.FieldMessageID).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("get inquiry message id: %w", err)
	}
	return row.MessageID, nil
}

func (s *EntStore) CreateReply(ctx context.Context, inquiryID uuid.UUID, message, sentBy string, messageID *string) (*Reply, error) {
	c := s.db.InquiryReply.Create().
		SetInquiryID(inquiryID).
		SetMessage(message).
		SetSentBy(sentBy)
	if messageID != nil {
		c = c.SetMessageID(*messageID)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	return replyFromRow(row), nil
}

func (s *EntStore) ListReplies(ctx context.Context, inquiryID uuid.UUID) ([]*Reply, error) {
	rows, err := s.db.InquiryReply.Query().
		Where(entreply.InquiryID(inquiryID)).
		Order(entreply.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	out := make([]*Reply, 0, len(rows))
	for _, row := range rows {
		out = append(out, replyFromRow(row))
	}
	return out, nil
}

func (s *EntStore) ReplyMessageIDs(ctx context.Context, inquiryID uuid.UUID) ([]*string, error) {
	rows, err := s.db.InquiryReply.Query().
		Where(entreply.InquiryID(inquiryID)).
		Order(entreply.ByCreatedAt(sql.OrderAsc())).
		Select(entreply.FieldMessageID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reply message ids: %w", err)
	}
	out := make([]*string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.MessageID)
	}
	return out, nil
}

func inquiryFromRow(row *repo.Inquiry) *Inquiry {
	return &Inquiry{
		ID:        row.ID,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		Status:    Status(row.Status),
		MessageID: row.MessageID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func replyFromRow(row *repo.InquiryReply) *Reply {
	return &Reply{
		ID:        row.ID,
		InquiryID: row.InquiryID,
		Message:   row.Message,
		MessageID: row.MessageID,
		SentBy:    row.SentBy,
		CreatedAt: row.CreatedAt,
	}
}
