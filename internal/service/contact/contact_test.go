package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/atriumhq/atrium_backend/pkg/captcha"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeStore struct {
	inquiries map[uuid.UUID]*Inquiry
	replies   []*Reply

	createErr       error
	setMessageIDErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{inquiries: map[uuid.UUID]*Inquiry{}}
}

func (f *fakeStore) CreateInquiry(_ context.Context, email, subject, message string) (*Inquiry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	inq := &Inquiry{
		ID:        uuid.New(),
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    StatusUnread,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.inquiries[inq.ID] = inq
	return inq, nil
}

func (f *fakeStore) SetInquiryMessageID(_ context.Context, id uuid.UUID, messageID string) error {
	if f.setMessageIDErr != nil {
		return f.setMessageIDErr
	}
	inq, ok := f.inquiries[id]
	if !ok {
		return ErrInquiryNotFound
	}
	inq.MessageID = &messageID
	return nil
}

func (f *fakeStore) GetInquiry(_ context.Context, id uuid.UUID) (*Inquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, ErrInquiryNotFound
	}
	return inq, nil
}

func (f *fakeStore) ListInquiries(_ context.Context) ([]*Inquiry, error) {
	out := make([]*Inquiry, 0, len(f.inquiries))
	for _, inq := range f.inquiries {
		out = append(out, inq)
	}
	return out, nil
}

func (f *fakeStore) UpdateInquiryStatus(_ context.Context, id uuid.UUID, status Status) (*Inquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, ErrInquiryNotFound
	}
	inq.Status = status
	return inq, nil
}

func (f *fakeStore) InquiryMessageID(_ context.Context, id uuid.UUID) (*string, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, ErrInquiryNotFound
	}
	return inq.MessageID, nil
}

func (f *fakeStore) CreateReply(_ context.Context, inquiryID uuid.UUID, message, sentBy string, messageID *string) (*Reply, error) {
	rep := &Reply{
		ID:        uuid.New(),
		InquiryID: inquiryID,
		Message:   message,
		MessageID: messageID,
		SentBy:    sentBy,
		CreatedAt: time.Now(),
	}
	f.replies = append(f.replies, rep)
	return rep, nil
}

func (f *fakeStore) ListReplies(_ context.Context, inquiryID uuid.UUID) ([]*Reply, error) {
	var out []*Reply
	for _, rep := range f.replies {
		if rep.InquiryID == inquiryID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (f *fakeStore) ReplyMessageIDs(_ context.Context, inquiryID uuid.UUID) ([]*string, error) {
	var out []*string
	for _, rep := range f.replies {
		if rep.InquiryID == inquiryID {
			out = append(out, rep.MessageID)
		}
	}
	return out, nil
}

type fakeCaptcha struct {
	ok      bool
	err     error
	called  int
	payload string
}

func (f *fakeCaptcha) Challenge(context.Context) (captcha.Challenge, error) {
	return captcha.Challenge{}, nil
}

func (f *fakeCaptcha) Verify(_ context.Context, payload string) (bool, error) {
	f.called++
	f.payload = payload
	return f.ok, f.err
}

type fakeMailer struct {
	ackID    string
	ackErr   error
	replyID  string
	replyErr error

	lastHeaders map[string]string
	ackCalls    int
	replyCalls  int
}

func (f *fakeMailer) SendInquiryReceived(_ context.Context, to, subject string) (string, error) {
	f.ackCalls++
	return f.ackID, f.ackErr
}

func (f *fakeMailer) SendInquiryReply(_ context.Context, to, subject, body string, headers map[string]string) (string, error) {
	f.replyCalls++
	f.lastHeaders = headers
	return f.replyID, f.replyErr
}

func validSubmit() SubmitRequest {
	return SubmitRequest{
		Email:   "jo@example.com",
		Subject: "Question",
		Message: "Hello there",
		Altcha:  "payload",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr string
	}{
		{
			name:    "missing at sign",
			mutate:  func(r *SubmitRequest) { r.Email = "not-an-email" },
			wantErr: "email",
		},
		{
			name:    "single letter tld",
			mutate:  func(r *SubmitRequest) { r.Email = "a@b.c" },
			wantErr: "email",
		},
		{
			name:    "whitespace in address",
			mutate:  func(r *SubmitRequest) { r.Email = "a b@example.com" },
			wantErr: "email",
		},
		{
			name:    "blank subject",
			mutate:  func(r *SubmitRequest) { r.Subject = "   " },
			wantErr: "subject",
		},
		{
			name:    "empty message",
			mutate:  func(r *SubmitRequest) { r.Message = "" },
			wantErr: "message is required",
		},
		{
			name:    "oversized message",
			mutate:  func(r *SubmitRequest) { r.Message = strings.Repeat("x", MaxMessageLen+1) },
			wantErr: "message exceeds",
		},
		{
			name:    "missing altcha token",
			mutate:  func(r *SubmitRequest) { r.Altcha = "" },
			wantErr: "altcha",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			verifier := &fakeCaptcha{ok: true}
			svc := New(store, &fakeMailer{}, verifier, nil)

			req := validSubmit()
			tc.mutate(&req)

			err := svc.Submit(context.Background(), req)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Submit() error = %v, want ValidationError", err)
			}
			if !strings.Contains(verr.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", verr.Error(), tc.wantErr)
			}
			if verifier.called != 0 {
				t.Error("captcha verified despite validation failure")
			}
			if len(store.inquiries) != 0 {
				t.Error("inquiry persisted despite validation failure")
			}
		})
	}
}

func TestSubmitMessageAtLimit(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeMailer{}, &fakeCaptcha{ok: true}, nil)

	req := validSubmit()
	req.Message = strings.Repeat("x", MaxMessageLen)

	if err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() with %d-char message = %v, want nil", MaxMessageLen, err)
	}
}

func TestSubmitValidationWinsOverCaptcha(t *testing.T) {
	// A request that is both malformed and carries a bad captcha must
	// report the validation error, and the captcha must never run.
	store := newFakeStore()
	verifier := &fakeCaptcha{ok: false}
	svc := New(store, &fakeMailer{}, verifier, nil)

	req := validSubmit()
	req.Email = "broken"

	err := svc.Submit(context.Background(), req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit() error = %v, want ValidationError", err)
	}
	if verifier.called != 0 {
		t.Error("captcha verified before validation passed")
	}
}

func TestSubmitCaptchaRejected(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{}
	svc := New(store, mail, &fakeCaptcha{ok: false}, nil)

	err := svc.Submit(context.Background(), validSubmit())
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("Submit() error = %v, want ErrCaptchaRejected", err)
	}
	if len(store.inquiries) != 0 {
		t.Error("inquiry persisted despite captcha rejection")
	}
	if mail.ackCalls != 0 {
		t.Error("acknowledgement sent despite captcha rejection")
	}
}

func TestSubmitCaptchaError(t *testing.T) {
	wantErr := errors.New("hmac key not configured")
	store := newFakeStore()
	svc := New(store, &fakeMailer{}, &fakeCaptcha{err: wantErr}, nil)

	err := svc.Submit(context.Background(), validSubmit())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Submit() error = %v, want %v", err, wantErr)
	}
	if len(store.inquiries) != 0 {
		t.Error("inquiry persisted despite captcha error")
	}
}

func TestSubmitRecordsAckMessageID(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{ackID: "<abc@atrium.example>"}
	svc := New(store, mail, &fakeCaptcha{ok: true}, nil)

	if err := svc.Submit(context.Background(), validSubmit()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(store.inquiries) != 1 {
		t.Fatalf("inquiries = %d, want 1", len(store.inquiries))
	}
	for _, inq := range store.inquiries {
		if inq.MessageID == nil || *inq.MessageID != "<abc@atrium.example>" {
			t.Errorf("inquiry message id = %v, want recorded ack id", inq.MessageID)
		}
	}
}

func TestSubmitSucceedsWhenAckFails(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{ackErr: errors.New("smtp down")}
	svc := New(store, mail, &fakeCaptcha{ok: true}, nil)

	if err := svc.Submit(context.Background(), validSubmit()); err != nil {
		t.Fatalf("Submit() error = %v, want nil despite ack failure", err)
	}
	for _, inq := range store.inquiries {
		if inq.MessageID != nil {
			t.Errorf("inquiry message id = %q, want nil after failed ack", *inq.MessageID)
		}
	}
}

func TestSubmitSucceedsWhenMessageIDWriteFails(t *testing.T) {
	store := newFakeStore()
	store.setMessageIDErr = errors.New("db gone")
	mail := &fakeMailer{ackID: "<abc@atrium.example>"}
	svc := New(store, mail, &fakeCaptcha{ok: true}, nil)

	if err := svc.Submit(context.Background(), validSubmit()); err != nil {
		t.Fatalf("Submit() error = %v, want nil despite write-back failure", err)
	}
}

func TestSubmitTrimsSubject(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeMailer{}, &fakeCaptcha{ok: true}, nil)

	req := validSubmit()
	req.Subject = "  Question  "
	if err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	for _, inq := range store.inquiries {
		if inq.Subject != "Question" {
			t.Errorf("subject = %q, want trimmed", inq.Subject)
		}
	}
}

// ---------------------------------------------------------------------------
// Reply
// ---------------------------------------------------------------------------

func seedInquiry(t *testing.T, store *fakeStore, messageID string) *Inquiry {
	t.Helper()
	inq, err := store.CreateInquiry(context.Background(), "jo@example.com", "Question", "Hello")
	if err != nil {
		t.Fatal(err)
	}
	if messageID != "" {
		if err := store.SetInquiryMessageID(context.Background(), inq.ID, messageID); err != nil {
			t.Fatal(err)
		}
	}
	return inq
}

func TestReplyThreadsOntoAck(t *testing.T) {
	store := newFakeStore()
	inq := seedInquiry(t, store, "<q1@atrium.example>")
	mail := &fakeMailer{replyID: "<r1@atrium.example>"}
	svc := New(store, mail, &fakeCaptcha{}, nil)

	res, err := svc.Reply(context.Background(), inq.ID, ReplyRequest{
		Message: "Thanks for writing in.",
		SentBy:  "staff@atrium.example",
	})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if res.MessageID == nil || *res.MessageID != "<r1@atrium.example>" {
		t.Errorf("reply message id = %v, want sent id", res.MessageID)
	}

	h := mail.lastHeaders
	if h[HeaderInReplyTo] != "<q1@atrium.example>" {
		t.Errorf("In-Reply-To = %q, want ack id", h[HeaderInReplyTo])
	}
	if h[HeaderReferences] != "<q1@atrium.example>" {
		t.Errorf("References = %q, want ack id", h[HeaderReferences])
	}
	if h[HeaderReplyTo] != "staff@atrium.example" {
		t.Errorf("Reply-To = %q, want staff address", h[HeaderReplyTo])
	}

	if len(store.replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(store.replies))
	}
	if store.replies[0].SentBy != "staff@atrium.example" {
		t.Errorf("sent_by = %q", store.replies[0].SentBy)
	}
}

func TestReplyRecordedWhenSendFails(t *testing.T) {
	store := newFakeStore()
	inq := seedInquiry(t, store, "<q1@atrium.example>")
	mail := &fakeMailer{replyErr: errors.New("smtp down")}
	svc := New(store, mail, &fakeCaptcha{}, nil)

	res, err := svc.Reply(context.Background(), inq.ID, ReplyRequest{
		Message: "Thanks for writing in.",
		SentBy:  "staff@atrium.example",
	})
	if err != nil {
		t.Fatalf("Reply() error = %v, want nil despite send failure", err)
	}
	if res.MessageID != nil {
		t.Errorf("reply message id = %q, want nil", *res.MessageID)
	}
	if len(store.replies) != 1 {
		t.Fatalf("replies = %d, want 1 even after failed send", len(store.replies))
	}
	if store.replies[0].MessageID != nil {
		t.Error("stored reply has a message id after failed send")
	}
}

func TestReplyUnknownInquiry(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeMailer{}, &fakeCaptcha{}, nil)

	_, err := svc.Reply(context.Background(), uuid.New(), ReplyRequest{
		Message: "Hello",
		SentBy:  "staff@atrium.example",
	})
	if !errors.Is(err, ErrInquiryNotFound) {
		t.Fatalf("Reply() error = %v, want ErrInquiryNotFound", err)
	}
}

func TestReplyValidation(t *testing.T) {
	store := newFakeStore()
	inq := seedInquiry(t, store, "")
	mail := &fakeMailer{}
	svc := New(store, mail, &fakeCaptcha{}, nil)

	tests := []struct {
		name string
		req  ReplyRequest
	}{
		{"empty message", ReplyRequest{Message: "", SentBy: "staff@atrium.example"}},
		{"oversized message", ReplyRequest{Message: strings.Repeat("x", MaxMessageLen+1), SentBy: "staff@atrium.example"}},
		{"bad sender", ReplyRequest{Message: "Hello", SentBy: "not-an-email"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Reply(context.Background(), inq.ID, tc.req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Reply() error = %v, want ValidationError", err)
			}
			if mail.replyCalls != 0 {
				t.Error("email sent despite validation failure")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Status
// ---------------------------------------------------------------------------

func TestUpdateStatus(t *testing.T) {
	store := newFakeStore()
	inq := seedInquiry(t, store, "")
	svc := New(store, &fakeMailer{}, &fakeCaptcha{}, nil)

	got, err := svc.UpdateStatus(context.Background(), inq.ID, StatusRead)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got.Status != StatusRead {
		t.Errorf("status = %q, want %q", got.Status, StatusRead)
	}

	if _, err := svc.UpdateStatus(context.Background(), inq.ID, Status("bogus")); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("UpdateStatus(bogus) error = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), StatusRead); !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("UpdateStatus(unknown) error = %v, want ErrInquiryNotFound", err)
	}
}
