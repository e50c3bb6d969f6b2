package config

import (
	"fmt"
	"strings"
	"time"
)

// SelectionBackend selects where selection slots are kept.
type SelectionBackend string

const (
	// SelectionBackendMemory keeps slots in a bounded in-process LRU.
	SelectionBackendMemory SelectionBackend = "memory"
	// SelectionBackendRedis keeps slots in Redis so replicas share them.
	SelectionBackendRedis SelectionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SelectionBackend.
func (b *SelectionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "redis":
		*b = SelectionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SelectionBackend: %q (valid options: memory, redis)", v)
	}
}

// SelectionConfig configures the shared selection store.
type SelectionConfig struct {
	Backend SelectionBackend `env:"BACKEND" envDefault:"memory"`

	// TTL bounds how long an idle page load keeps its slots.
	TTL time.Duration `env:"TTL" envDefault:"30m"`

	// Capacity is the number of page loads the memory backend retains.
	Capacity int `env:"CAPACITY" envDefault:"10000"`

	// KeyPrefix namespaces redis keys.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"selection:"`
}

// Sanitize clamps values to safe ranges.
func (s *SelectionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SelectionBackendMemory
	}
	if s.TTL <= 0 {
		s.TTL = 30 * time.Minute
	}
	if s.Capacity <= 0 {
		s.Capacity = 10000
	}
	s.KeyPrefix = defaultString(s.KeyPrefix, "selection:")
}

// CartConfig controls the cart summary refresh.
type CartConfig struct {
	// SummaryInterval is how often the cart badge refreshes while a shop view is open.
	SummaryInterval time.Duration `env:"SUMMARY_INTERVAL" envDefault:"30s"`
}

// Sanitize keeps the interval within sensible bounds.
func (c *CartConfig) Sanitize() {
	const minInterval = 5 * time.Second
	if c.SummaryInterval < minInterval {
		c.SummaryInterval = minInterval
	}
}
