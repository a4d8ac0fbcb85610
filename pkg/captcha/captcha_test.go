package captcha

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestChallengeRequiresKey(t *testing.T) {
	c := New(Config{}, nil)

	if _, err := c.Challenge(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Challenge() error = %v, want ErrNotConfigured", err)
	}
	if _, err := c.Verify(context.Background(), "anything"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Verify() error = %v, want ErrNotConfigured", err)
	}
}

func TestChallengeShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HMACKey = "test-key"
	c := New(cfg, nil)

	ch, err := c.Challenge(context.Background())
	if err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if ch.Algorithm != "SHA-256" {
		t.Errorf("algorithm = %q, want SHA-256", ch.Algorithm)
	}
	if ch.Challenge == "" || ch.Salt == "" || ch.Signature == "" {
		t.Errorf("challenge has empty fields: %+v", ch)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HMACKey = "test-key"
	c := New(cfg, nil)

	// A malformed payload is a client mistake, not a server error.
	ok, err := c.Verify(context.Background(), "not-a-payload")
	if err != nil {
		t.Fatalf("Verify() error = %v, want nil", err)
	}
	if ok {
		t.Error("Verify() accepted a garbage payload")
	}
}

func TestConfigDurations(t *testing.T) {
	var zero Config
	if got := zero.Expiry(); got != 10*time.Minute {
		t.Errorf("zero Expiry() = %v, want 10m", got)
	}
	if got := zero.ReplayTTL(); got != time.Hour {
		t.Errorf("zero ReplayTTL() = %v, want 1h", got)
	}

	c := Config{ExpireSeconds: 120, ReplayTTLSeconds: 60}
	if got := c.Expiry(); got != 2*time.Minute {
		t.Errorf("Expiry() = %v, want 2m", got)
	}
	if got := c.ReplayTTL(); got != time.Minute {
		t.Errorf("ReplayTTL() = %v, want 1m", got)
	}
}

func TestReplayGuardOffDropsRedis(t *testing.T) {
	c := New(Config{HMACKey: "k", ReplayGuardOff: true}, nil)
	if c.rdb != nil {
		t.Error("replay guard off should clear the redis client")
	}
}
