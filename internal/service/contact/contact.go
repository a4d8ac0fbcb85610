package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/atriumhq/atrium_backend/pkg/captcha"
)

// MaxMessageLen bounds inquiry and reply bodies.
const MaxMessageLen = 5000

// SubjectInquiryCreated is the NATS subject for new-inquiry events.
const SubjectInquiryCreated = "contact.inquiry.created"

// The regexp alone accepts single-letter TLDs, so the TLD length is
// checked separately (rejects user@example.c).
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Email   string
	Subject string
	Message string
	Altcha  string
}

type ReplyRequest struct {
	Message string
	// SentBy is the replying staff member's address; it becomes the
	// Reply-To of the outbound email and the sent_by of the Reply row.
	SentBy string
}

type ReplyResult struct {
	ReplyID   uuid.UUID
	MessageID *string
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// Captcha issues and verifies proof-of-work challenges.
type Captcha interface {
	Challenge(ctx context.Context) (captcha.Challenge, error)
	Verify(ctx context.Context, payload string) (bool, error)
}

// Mailer sends the two transactional emails of the contact flow and
// returns the transport Message-ID; empty means "sent, id unknown".
type Mailer interface {
	SendInquiryReceived(ctx context.Context, to, subject string) (string, error)
	SendInquiryReply(ctx context.Context, to, subject, body string, headers map[string]string) (string, error)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Challenge(ctx context.Context) (captcha.Challenge, error)
	Submit(ctx context.Context, req SubmitRequest) error
	List(ctx context.Context) ([]*Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*Inquiry, []*Reply, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Inquiry, error)
	Reply(ctx context.Context, id uuid.UUID, req ReplyRequest) (*ReplyResult, error)
	ThreadHeaders(ctx context.Context, id uuid.UUID) (map[string]string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store   Store
	mail    Mailer
	captcha Captcha
	nc      *nats.Conn
}

func New(store Store, mail Mailer, verifier Captcha, nc *nats.Conn) Service {
	return &contactService{store: store, mail: mail, captcha: verifier, nc: nc}
}

func (s *contactService) Challenge(ctx context.Context) (captcha.Challenge, error) {
	return s.captcha.Challenge(ctx)
}

// Submit runs field validation, then the captcha check, then persists.
// That order is a contract: a request that is both malformed and carries a
// bad captcha reports the validation error, and a captcha-rejected
// submission leaves no inquiry row behind.
func (s *contactService) Submit(ctx context.Context, req SubmitRequest) error {
	if verr := validateSubmit(req); verr != nil {
		return verr
	}

	ok, err := s.captcha.Verify(ctx, req.Altcha)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCaptchaRejected
	}

	inq, err := s.store.CreateInquiry(ctx, req.Email, strings.TrimSpace(req.Subject), req.Message)
	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}

	// Everything past this point is best-effort: the inquiry is durable
	// and the caller gets success regardless.
	s.notify(ctx, inq)
	s.publishCreated(inq)

	return nil
}

// notify sends the acknowledgement email and records its Message-ID on the
// inquiry. Both steps may fail without failing the submission; a lost
// message id only means the first staff reply starts a fresh thread.
func (s *contactService) notify(ctx context.Context, inq *Inquiry) {
	id, err := s.mail.SendInquiryReceived(ctx, inq.Email, inq.Subject)
	if err != nil {
		slog.Warn("inquiry acknowledgement email failed",
			"inquiry_id", inq.ID, "error", err)
		return
	}
	if id == "" {
		return
	}
	if err := s.store.SetInquiryMessageID(ctx, inq.ID, id); err != nil {
		slog.Warn("failed to record acknowledgement message id",
			"inquiry_id", inq.ID, "error", err)
	}
}

type inquiryCreatedEvent struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
}

func (s *contactService) publishCreated(inq *Inquiry) {
	if s.nc == nil {
		return
	}
	b, err := json.Marshal(inquiryCreatedEvent{ID: inq.ID, Email: inq.Email, Subject: inq.Subject})
	if err != nil {
		return
	}
	if err := s.nc.Publish(SubjectInquiryCreated, b); err != nil {
		slog.Warn("failed to publish inquiry event", "inquiry_id", inq.ID, "error", err)
	}
}

func (s *contactService) List(ctx context.Context) ([]*Inquiry, error) {
	return s.store.ListInquiries(ctx)
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*Inquiry, []*Reply, error) {
	inq, err := s.store.GetInquiry(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	replies, err := s.store.ListReplies(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return inq, replies, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Inquiry, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.store.UpdateInquiryStatus(ctx, id, status)
}

// Reply sends a staff answer threaded onto the conversation and records it.
// The Reply row is created even when the send fails (nil message id):
// durability of the staff response wins over delivery guarantees.
func (s *contactService) Reply(ctx context.Context, id uuid.UUID, req ReplyRequest) (*ReplyResult, error) {
	if verr := validateReply(req); verr != nil {
		return nil, verr
	}

	inq, err := s.store.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	headers, err := s.ThreadHeaders(ctx, id)
	if err != nil {
		return nil, err
	}
	// Reply-To is independent of In-Reply-To/References; merging can't
	// clash with the thread headers.
	headers[HeaderReplyTo] = req.SentBy

	var messageID *string
	sentID, err := s.mail.SendInquiryReply(ctx, inq.Email, inq.Subject, req.Message, headers)
	if err != nil {
		slog.Warn("inquiry reply email failed", "inquiry_id", id, "error", err)
	} else if sentID != "" {
		messageID = &sentID
	}

	rep, err := s.store.CreateReply(ctx, id, req.Message, req.SentBy, messageID)
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	return &ReplyResult{ReplyID: rep.ID, MessageID: messageID}, nil
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func validateSubmit(req SubmitRequest) *ValidationError {
	var fields []string

	if !validEmail(req.Email) {
		fields = append(fields, "email must be a valid address")
	}
	if strings.TrimSpace(req.Subject) == "" {
		fields = append(fields, "subject is required")
	}
	switch {
	case strings.TrimSpace(req.Message) == "":
		fields = append(fields, "message is required")
	case len(req.Message) > MaxMessageLen:
		fields = append(fields, fmt.Sprintf("message exceeds %d characters", MaxMessageLen))
	}
	if req.Altcha == "" {
		fields = append(fields, "altcha token is required")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateReply(req ReplyRequest) *ValidationError {
	var fields []string

	switch {
	case strings.TrimSpace(req.Message) == "":
		fields = append(fields, "message is required")
	case len(req.Message) > MaxMessageLen:
		fields = append(fields, fmt.Sprintf("message exceeds %d characters", MaxMessageLen))
	}
	if !validEmail(req.SentBy) {
		fields = append(fields, "sender email must be a valid address")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validEmail(addr string) bool {
	if !reEmail.MatchString(addr) {
		return false
	}
	dot := strings.LastIndex(addr, ".")
	return len(addr)-dot-1 >= 2
}
