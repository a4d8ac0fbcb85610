package captcha

import (
	"time"

	"github.com/atriumhq/atrium_backend/config"
)

// Config holds proof-of-work captcha settings
type Config struct {
	HMACKey       string
	MaxNumber     int64
	ExpireSeconds int

	// Replay guard
	ReplayTTLSeconds int
	ReplayGuardOff   bool
}

// DefaultConfig returns sensible defaults for captcha configuration
func DefaultConfig() Config {
	return Config{
		MaxNumber:        100000,
		ExpireSeconds:    600,
		ReplayTTLSeconds: 3600,
	}
}

// Expiry returns the challenge lifetime as a duration
func (c Config) Expiry() time.Duration {
	if c.ExpireSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.ExpireSeconds) * time.Second
}

// ReplayTTL returns how long solved payloads stay burned
func (c Config) ReplayTTL() time.Duration {
	if c.ReplayTTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.ReplayTTLSeconds) * time.Second
}

// FromCentralConfig converts central config.CaptchaConfig to package Config
func FromCentralConfig(c config.CaptchaConfig) Config {
	cfg := DefaultConfig()
	cfg.HMACKey = c.HMACKey
	if c.MaxNumber > 0 {
		cfg.MaxNumber = c.MaxNumber
	}
	if c.ExpireSeconds > 0 {
		cfg.ExpireSeconds = c.ExpireSeconds
	}
	if c.ReplayTTLSeconds > 0 {
		cfg.ReplayTTLSeconds = c.ReplayTTLSeconds
	}
	cfg.ReplayGuardOff = c.ReplayGuardOff
	return cfg
}
