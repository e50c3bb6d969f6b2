// Package redis provides Redis-based adapters for the storefront UI.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-ui/internal/ports"
)

const defaultSelectionPrefix = "storefront:selection:"

// SelectionBackend stores each page-load scope as a Redis hash of slot -> encoded value.
// Every write and read refreshes the hash's idle TTL so abandoned scopes expire on their own.
type SelectionBackend struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// SelectionBackendOptions configures a SelectionBackend.
type SelectionBackendOptions struct {
	Client redis.UniversalClient
	Prefix string
	TTL    time.Duration
}

// NewSelectionBackend creates a Redis-backed selection backend.
func NewSelectionBackend(opts SelectionBackendOptions) *SelectionBackend {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultSelectionPrefix
	}
	return &SelectionBackend{client: opts.Client, prefix: prefix, ttl: opts.TTL}
}

var _ ports.SelectionBackend = (*SelectionBackend)(nil)

func (s *SelectionBackend) key(scope string) string {
	return s.prefix + scope
}

func (s *SelectionBackend) Load(ctx context.Context, scope, slot string) ([]byte, bool, error) {
	if scope == "" {
		return nil, false, ports.ErrNoScope
	}
	key := s.key(scope)
	data, err := s.client.HGet(ctx, key, slot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis hget: %w", err)
	}
	if s.ttl > 0 {
		if expErr := s.client.Expire(ctx, key, s.ttl).Err(); expErr != nil {
			return nil, false, fmt.Errorf("redis expire: %w", expErr)
		}
	}
	return data, true, nil
}

func (s *SelectionBackend) Save(ctx context.Context, scope, slot string, value []byte) error {
	if scope == "" {
		return ports.ErrNoScope
	}
	key := s.key(scope)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, slot, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save selection: %w", err)
	}
	return nil
}

func (s *SelectionBackend) Delete(ctx context.Context, scope, slot string) error {
	if scope == "" {
		return nil
	}
	if err := s.client.HDel(ctx, s.key(scope), slot).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

func (s *SelectionBackend) Clear(ctx context.Context, scope string) error {
	if scope == "" {
		return nil // Nothing to clear
	}
	return s.client.Del(ctx, s.key(scope)).Err()
}
