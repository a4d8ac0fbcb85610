package email

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewMessageID(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		wantSuffix string
	}{
		{"plain address", "noreply@atrium.example", "@atrium.example>"},
		{"display name form", "Atrium <noreply@atrium.example>", "@atrium.example>"},
		{"no at sign", "broken", "@localhost>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := newMessageID(tc.from)
			if !strings.HasPrefix(id, "<") || !strings.HasSuffix(id, tc.wantSuffix) {
				t.Errorf("newMessageID(%q) = %q, want <uuid%s", tc.from, id, tc.wantSuffix)
			}
		})
	}

	if newMessageID("a@b") == newMessageID("a@b") {
		t.Error("message ids must be unique per call")
	}
}

func TestBuildMessage(t *testing.T) {
	m := Message{
		To:       []string{"jo@example.com"},
		Subject:  "Hello",
		TextBody: "hi",
		Headers: map[string]string{
			"In-Reply-To": "<q1@atrium.example>",
			"References":  "<q1@atrium.example>",
			"Empty":       "",
		},
	}

	msg, id, err := buildMessage("noreply@atrium.example", m)
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}

	if got := msg.GetHeader("Message-ID"); len(got) != 1 || got[0] != id {
		t.Errorf("Message-ID header = %v, want [%s]", got, id)
	}
	if got := msg.GetHeader("In-Reply-To"); len(got) != 1 || got[0] != "<q1@atrium.example>" {
		t.Errorf("In-Reply-To header = %v", got)
	}
	if got := msg.GetHeader("Empty"); len(got) != 0 {
		t.Errorf("blank extra header leaked through: %v", got)
	}
}

func TestBuildMessageValidation(t *testing.T) {
	base := Message{
		To:       []string{"jo@example.com"},
		Subject:  "Hello",
		TextBody: "hi",
	}

	tests := []struct {
		name   string
		from   string
		mutate func(*Message)
	}{
		{"missing from", "", func(m *Message) {}},
		{"missing subject", "noreply@atrium.example", func(m *Message) { m.Subject = "  " }},
		{"missing body", "noreply@atrium.example", func(m *Message) { m.TextBody = ""; m.HTMLBody = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := base
			tc.mutate(&m)
			_, _, err := buildMessage(tc.from, m)
			var ierr ErrInvalidMessage
			if !errors.As(err, &ierr) {
				t.Errorf("buildMessage() error = %v, want ErrInvalidMessage", err)
			}
		})
	}
}

func TestSendDisabled(t *testing.T) {
	cli, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cli.Send(context.Background(), Message{
		To:       []string{"jo@example.com"},
		Subject:  "Hello",
		TextBody: "hi",
	})
	var derr ErrDisabled
	if !errors.As(err, &derr) {
		t.Fatalf("Send() error = %v, want ErrDisabled", err)
	}
}
