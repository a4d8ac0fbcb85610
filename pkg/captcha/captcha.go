package captcha

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	altcha "github.com/altcha-org/altcha-lib-go"
	"github.com/redis/go-redis/v9"

	"github.com/atriumhq/atrium_backend/config"
)

// ErrNotConfigured means the server has no HMAC key. Callers must surface
// a generic configuration error, never the detail.
var ErrNotConfigured = errors.New("captcha: HMAC key is not configured")

// Challenge is the payload handed to the widget on the contact page.
type Challenge = altcha.Challenge

// Client issues and verifies altcha proof-of-work challenges. When a Redis
// client is supplied, accepted payloads are single-use: a digest of each is
// burned for ReplayTTL, and a second submission verifies false.
type Client struct {
	cfg Config
	rdb *redis.Client
}

// NewFromCentral creates a captcha client from central config
func NewFromCentral(cfg config.CaptchaConfig, rdb *redis.Client) *Client {
	return New(FromCentralConfig(cfg), rdb)
}

func New(cfg Config, rdb *redis.Client) *Client {
	if cfg.ReplayGuardOff {
		rdb = nil
	}
	return &Client{cfg: cfg, rdb: rdb}
}

// Challenge creates a fresh SHA-256 challenge with the configured bounds.
func (c *Client) Challenge(ctx context.Context) (Challenge, error) {
	if c.cfg.HMACKey == "" {
		return Challenge{}, ErrNotConfigured
	}

	expires := time.Now().Add(c.cfg.Expiry())
	ch, err := altcha.CreateChallenge(altcha.ChallengeOptions{
		Algorithm: altcha.SHA256,
		HMACKey:   c.cfg.HMACKey,
		MaxNumber: c.cfg.MaxNumber,
		Expires:   &expires,
	})
	if err != nil {
		return Challenge{}, err
	}
	return ch, nil
}

// Verify checks a solved payload against the server HMAC key. It returns
// false for invalid, expired, and replayed solutions alike; the only error
// cases are a missing key and a failing replay-guard backend.
func (c *Client) Verify(ctx context.Context, payload string) (bool, error) {
	if c.cfg.HMACKey == "" {
		return false, ErrNotConfigured
	}

	ok, err := altcha.VerifySolution(payload, c.cfg.HMACKey, true)
	if err != nil {
		// Malformed payloads are a client problem, not a server error.
		slog.Debug("captcha payload rejected", "error", err)
		return false, nil
	}
	if !ok {
		return false, nil
	}

	if c.rdb == nil {
		return true, nil
	}
	return c.burn(ctx, payload)
}

// burn marks the payload as used. SET NX is atomic, so two racing
// submissions of the same solution can't both pass.
func (c *Client) burn(ctx context.Context, payload string) (bool, error) {
	sum := sha256.Sum256([]byte(payload))
	key := "captcha:solved:" + hex.EncodeToString(sum[:])

	fresh, err := c.rdb.SetNX(ctx, key, 1, c.cfg.ReplayTTL()).Result()
	if err != nil {
		return false, err
	}
	return fresh, nil
}
