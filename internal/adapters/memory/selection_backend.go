// Package memory provides in-process adapters for single-instance deployments and tests.
package memory

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/target/storefront-ui/internal/ports"
)

// SelectionBackend keeps page-load scopes in a bounded LRU with an idle TTL.
// Each scope holds its own slot map; evicting a scope drops all of its slots.
// Concurrency: methods are safe for concurrent use.
type SelectionBackend struct {
	mu     sync.Mutex
	cap    int
	ttl    time.Duration
	ll     *list.List               // front = most recently touched scope
	scopes map[string]*list.Element // scope -> element
	now    func() time.Time
	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
}

type scopeEntry struct {
	scope  string
	slots  map[string][]byte
	expiry time.Time // zero means no expiry
}

// SelectionBackendConfig groups constructor options.
type SelectionBackendConfig struct {
	Capacity int
	TTL      time.Duration
	Now      func() time.Time
}

// DefaultSelectionBackendConfig returns sensible defaults.
func DefaultSelectionBackendConfig() SelectionBackendConfig {
	return SelectionBackendConfig{Capacity: 4096, TTL: 30 * time.Minute, Now: time.Now}
}

// NewSelectionBackend creates an in-memory selection backend.
func NewSelectionBackend(cfg SelectionBackendConfig) *SelectionBackend {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 4096
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &SelectionBackend{
		cap:    capacity,
		ttl:    cfg.TTL,
		ll:     list.New(),
		scopes: make(map[string]*list.Element, capacity),
		now:    nowFn,
	}
}

var _ ports.SelectionBackend = (*SelectionBackend)(nil)

// Load returns a copy of the slot value when the scope is live and the slot is set.
func (b *SelectionBackend) Load(_ context.Context, scope, slot string) ([]byte, bool, error) {
	if scope == "" {
		return nil, false, ports.ErrNoScope
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	ent := b.live(scope)
	if ent == nil {
		b.misses.Add(1)
		return nil, false, nil
	}
	v, ok := ent.slots[slot]
	if !ok {
		b.misses.Add(1)
		return nil, false, nil
	}
	b.touch(ent)
	b.hits.Add(1)
	return append([]byte(nil), v...), true, nil
}

// Save stores a copy of value under slot and refreshes the scope's expiry.
func (b *SelectionBackend) Save(_ context.Context, scope, slot string, value []byte) error {
	if scope == "" {
		return ports.ErrNoScope
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	ent := b.live(scope)
	if ent == nil {
		ent = &scopeEntry{scope: scope, slots: make(map[string][]byte, 4)}
		b.scopes[scope] = b.ll.PushFront(ent)
	}
	ent.slots[slot] = append([]byte(nil), value...)
	b.touch(ent)
	b.evictIfNeeded()
	return nil
}

// Delete drops one slot of scope. An emptied scope stays until it expires or is evicted.
func (b *SelectionBackend) Delete(_ context.Context, scope, slot string) error {
	if scope == "" {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if ent := b.live(scope); ent != nil {
		delete(ent.slots, slot)
	}
	return nil
}

// Clear drops every slot held by scope.
func (b *SelectionBackend) Clear(_ context.Context, scope string) error {
	if scope == "" {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if el, ok := b.scopes[scope]; ok {
		b.removeElement(el)
	}
	return nil
}

// Len returns the number of live and not yet reaped scopes.
func (b *SelectionBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ll.Len()
}

// SelectionBackendStats are simple counters for observability.
type SelectionBackendStats struct {
	Hits, Misses, Evictions uint64
	Size, Capacity          int
}

// Stats returns a snapshot of counters and sizes.
func (b *SelectionBackend) Stats() SelectionBackendStats {
	return SelectionBackendStats{
		Hits:      b.hits.Load(),
		Misses:    b.misses.Load(),
		Evictions: b.evicts.Load(),
		Size:      b.Len(),
		Capacity:  b.cap,
	}
}

// Helpers below require b.mu.

func (b *SelectionBackend) live(scope string) *scopeEntry {
	el, ok := b.scopes[scope]
	if !ok {
		return nil
	}
	ent, _ := el.Value.(*scopeEntry)
	if ent == nil || b.isExpired(ent) {
		b.removeElement(el)
		return nil
	}
	return ent
}

func (b *SelectionBackend) touch(ent *scopeEntry) {
	if b.ttl > 0 {
		ent.expiry = b.now().Add(b.ttl)
	}
	if el, ok := b.scopes[ent.scope]; ok {
		b.ll.MoveToFront(el)
	}
}

func (b *SelectionBackend) isExpired(e *scopeEntry) bool {
	if e.expiry.IsZero() {
		return false
	}
	return b.now().After(e.expiry)
}

func (b *SelectionBackend) removeElement(el *list.Element) {
	b.ll.Remove(el)
	if ent, ok := el.Value.(*scopeEntry); ok {
		delete(b.scopes, ent.scope)
	}
}

func (b *SelectionBackend) evictIfNeeded() {
	for b.ll.Len() > b.cap {
		el := b.ll.Back()
		if el == nil {
			return
		}
		b.removeElement(el)
		b.evicts.Add(1)
	}
}
