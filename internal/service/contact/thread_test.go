package contact

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func strptr(s string) *string { return &s }

func TestThreadHeaders(t *testing.T) {
	tests := []struct {
		name     string
		ackID    string
		replyIDs []*string
		want     map[string]string
	}{
		{
			name:     "no messages sent yet",
			ackID:    "",
			replyIDs: nil,
			want:     map[string]string{},
		},
		{
			name:     "acknowledgement only",
			ackID:    "<q1@atrium.example>",
			replyIDs: nil,
			want: map[string]string{
				HeaderInReplyTo:  "<q1@atrium.example>",
				HeaderReferences: "<q1@atrium.example>",
			},
		},
		{
			name:     "acknowledgement and two replies",
			ackID:    "<q1@atrium.example>",
			replyIDs: []*string{strptr("<r1@atrium.example>"), strptr("<r2@atrium.example>")},
			want: map[string]string{
				HeaderInReplyTo:  "<r2@atrium.example>",
				HeaderReferences: "<q1@atrium.example> <r1@atrium.example> <r2@atrium.example>",
			},
		},
		{
			name:     "acknowledgement never sent, one reply delivered",
			ackID:    "",
			replyIDs: []*string{strptr("<r1@atrium.example>")},
			want: map[string]string{
				HeaderInReplyTo:  "<r1@atrium.example>",
				HeaderReferences: "<r1@atrium.example>",
			},
		},
		{
			name:     "failed sends are skipped",
			ackID:    "<q1@atrium.example>",
			replyIDs: []*string{nil, strptr("<r2@atrium.example>"), nil},
			want: map[string]string{
				HeaderInReplyTo:  "<r2@atrium.example>",
				HeaderReferences: "<q1@atrium.example> <r2@atrium.example>",
			},
		},
		{
			name:     "every send failed",
			ackID:    "",
			replyIDs: []*string{nil, nil},
			want:     map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			inq := seedInquiry(t, store, tc.ackID)
			for _, id := range tc.replyIDs {
				if _, err := store.CreateReply(context.Background(), inq.ID, "answer", "staff@atrium.example", id); err != nil {
					t.Fatal(err)
				}
			}
			svc := New(store, &fakeMailer{}, &fakeCaptcha{}, nil)

			got, err := svc.ThreadHeaders(context.Background(), inq.ID)
			if err != nil {
				t.Fatalf("ThreadHeaders() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ThreadHeaders() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestThreadHeadersUnknownInquiry(t *testing.T) {
	svc := New(newFakeStore(), &fakeMailer{}, &fakeCaptcha{}, nil)

	_, err := svc.ThreadHeaders(context.Background(), uuid.New())
	if !errors.Is(err, ErrInquiryNotFound) {
		t.Fatalf("ThreadHeaders() error = %v, want ErrInquiryNotFound", err)
	}
}

func TestThreadHeadersIdempotent(t *testing.T) {
	store := newFakeStore()
	inq := seedInquiry(t, store, "<q1@atrium.example>")
	if _, err := store.CreateReply(context.Background(), inq.ID, "answer", "staff@atrium.example", strptr("<r1@atrium.example>")); err != nil {
		t.Fatal(err)
	}
	svc := New(store, &fakeMailer{}, &fakeCaptcha{}, nil)

	first, err := svc.ThreadHeaders(context.Background(), inq.ID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.ThreadHeaders(context.Background(), inq.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
