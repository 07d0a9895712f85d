package config

import (
	"errors"
	"time"
)

// Config is the top-level configuration struct.  All fields have safe
// defaults so callers can start with Config{} and override only what they
// need.
type Config struct {
	// Worker pool controls for the parallel engine variants.
	WorkerCount int // default: runtime.NumCPU()

	// Retry for transient pipeline steps (backend codecs).
	MaxRetries int
	RetryDelay time.Duration

	// Default encode quality applied when a codec call does not override.
	DefaultQuality int // 1-100; default 85

	// Decode memory limit; 0 = no limit.
	MaxImageBytes int64

	// Logging.
	LogLevel string // "debug", "info", "warn", "error"
}

// Default returns a Config populated with sensible production defaults.
func Default() Config {
	return Config{
		WorkerCount:    0, // resolved at runtime to NumCPU
		MaxRetries:     2,
		RetryDelay:     100 * time.Millisecond,
		DefaultQuality: 85,
		LogLevel:       "info",
	}
}

// Validate returns an error if the configuration is inconsistent.
func Validate(c Config) error {
	if c.DefaultQuality < 1 || c.DefaultQuality > 100 {
		return errors.New("config: DefaultQuality must be between 1 and 100")
	}
	if c.MaxRetries < 0 {
		return errors.New("config: MaxRetries must not be negative")
	}
	if c.RetryDelay < 0 {
		return errors.New("config: RetryDelay must not be negative")
	}
	if c.MaxImageBytes < 0 {
		return errors.New("config: MaxImageBytes must not be negative")
	}
	return nil
}
