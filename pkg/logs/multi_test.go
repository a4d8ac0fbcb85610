package logs

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

type captureHandler struct {
	level   slog.Level
	attrs   []slog.Attr
	records []slog.Record
}

func (c *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}

func (c *captureHandler) Handle(_ context.Context, r slog.Record) error {
	c.records = append(c.records, r)
	return nil
}

func (c *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c.attrs = append(c.attrs, attrs...)
	return c
}

func (c *captureHandler) WithGroup(string) slog.Handler { return c }

func TestMultiHandlerFanOut(t *testing.T) {
	a := &captureHandler{level: slog.LevelDebug}
	b := &captureHandler{level: slog.LevelDebug}
	m := &multiHandler{handlers: []slog.Handler{a, b}}

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := m.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	for i, c := range []*captureHandler{a, b} {
		if len(c.records) != 1 {
			t.Fatalf("handler %d got %d records, want 1", i, len(c.records))
		}
		if c.records[0].Message != "hello" {
			t.Errorf("handler %d message = %q", i, c.records[0].Message)
		}
	}
}

func TestMultiHandlerSkipsDisabled(t *testing.T) {
	quiet := &captureHandler{level: slog.LevelError}
	loud := &captureHandler{level: slog.LevelDebug}
	m := &multiHandler{handlers: []slog.Handler{quiet, loud}}

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "info only", 0)
	if err := m.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(quiet.records) != 0 {
		t.Errorf("error-level handler received %d records, want 0", len(quiet.records))
	}
	if len(loud.records) != 1 {
		t.Errorf("debug-level handler received %d records, want 1", len(loud.records))
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	m := &multiHandler{handlers: []slog.Handler{
		&captureHandler{level: slog.LevelError},
		&captureHandler{level: slog.LevelInfo},
	}}

	ctx := context.Background()
	if !m.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled(info) = false, want true when any handler accepts it")
	}
	if m.Enabled(ctx, slog.LevelDebug) {
		t.Error("Enabled(debug) = true, want false when no handler accepts it")
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	a := &captureHandler{level: slog.LevelDebug}
	b := &captureHandler{level: slog.LevelDebug}
	m := &multiHandler{handlers: []slog.Handler{a, b}}

	derived := m.WithAttrs([]slog.Attr{slog.String("service", "atrium")})
	if derived == slog.Handler(m) {
		t.Fatal("WithAttrs returned the same handler")
	}
	for i, c := range []*captureHandler{a, b} {
		if len(c.attrs) != 1 || c.attrs[0].Key != "service" {
			t.Errorf("handler %d attrs = %v, want the service attr", i, c.attrs)
		}
	}
}
