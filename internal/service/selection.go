package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/observability/metrics"
	"github.com/target/storefront-ui/internal/observability/statsd"
	"github.com/target/storefront-ui/internal/ports"
)

// Slot names a shared selection slot.
type Slot string

const (
	SlotCurrentProduct    Slot = "current_product"
	SlotCurrentCategory   Slot = "current_category"
	SlotSelectedCartLines Slot = "selected_cart_lines"
)

// SelectionStoreOptions groups dependencies for SelectionStore.
type SelectionStoreOptions struct {
	Backend ports.SelectionBackend // Required: scope storage
	Metrics statsd.Sink            // Optional: slot hit/miss counters
	Logger  *slog.Logger           // Optional: structured logger
}

// SelectionStore holds the values one view hands to the next within a page load.
// Slots have no history and no change notification; a setter replaces, a getter reads.
// Reads with no scope are empty and writes with no scope are dropped.
type SelectionStore struct {
	backend ports.SelectionBackend
	metrics statsd.Sink
	logger  *slog.Logger
}

// NewSelectionStore constructs a new SelectionStore.
func NewSelectionStore(opts SelectionStoreOptions) *SelectionStore {
	if opts.Backend == nil {
		panic("SelectionBackend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SelectionStore{
		backend: opts.Backend,
		metrics: opts.Metrics,
		logger:  logger.With("component", "selection_store"),
	}
}

// CurrentProduct returns the product last selected in this page load.
func (s *SelectionStore) CurrentProduct(ctx context.Context, scope string) (*model.Product, bool) {
	var p model.Product
	if !s.load(ctx, scope, SlotCurrentProduct, &p) {
		return nil, false
	}
	return &p, true
}

// SetCurrentProduct replaces the current product slot.
func (s *SelectionStore) SetCurrentProduct(ctx context.Context, scope string, p *model.Product) error {
	if p == nil {
		return errors.New("selected product is required")
	}
	return s.save(ctx, scope, SlotCurrentProduct, p)
}

// CurrentCategory returns the category last selected in this page load.
func (s *SelectionStore) CurrentCategory(ctx context.Context, scope string) (*model.Category, bool) {
	var c model.Category
	if !s.load(ctx, scope, SlotCurrentCategory, &c) {
		return nil, false
	}
	return &c, true
}

// SetCurrentCategory replaces the current category slot.
func (s *SelectionStore) SetCurrentCategory(ctx context.Context, scope string, c *model.Category) error {
	if c == nil {
		return errors.New("selected category is required")
	}
	return s.save(ctx, scope, SlotCurrentCategory, c)
}

// SelectedCartLines returns the cart lines chosen for checkout in this page load.
func (s *SelectionStore) SelectedCartLines(ctx context.Context, scope string) ([]model.CartLine, bool) {
	var lines []model.CartLine
	if !s.load(ctx, scope, SlotSelectedCartLines, &lines) {
		return nil, false
	}
	return lines, true
}

// SetSelectedCartLines replaces the selected cart lines slot. An empty selection is stored as empty.
func (s *SelectionStore) SetSelectedCartLines(ctx context.Context, scope string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return s.save(ctx, scope, SlotSelectedCartLines, lines)
}

// ClearSelectedCartLines empties the selected cart lines slot, leaving the other slots alone.
func (s *SelectionStore) ClearSelectedCartLines(ctx context.Context, scope string) error {
	return s.clearSlot(ctx, scope, SlotSelectedCartLines)
}

// Reset empties every slot of scope.
func (s *SelectionStore) Reset(ctx context.Context, scope string) error {
	if scope == "" {
		return nil
	}
	if err := s.backend.Clear(ctx, scope); err != nil {
		s.logger.WarnContext(ctx, "selection reset failed", "error", err)
		return err
	}
	return nil
}

// RecordFallback notes that a reader ignored a slot and fetched instead.
func (s *SelectionStore) RecordFallback(slot Slot) {
	metrics.EmitSelectionFallback(s.metrics, string(slot))
}

// load decodes the slot into out. Backend failures read as empty: slots are only hints.
func (s *SelectionStore) load(ctx context.Context, scope string, slot Slot, out any) bool {
	if scope == "" {
		metrics.EmitSelectionRead(s.metrics, string(slot), false)
		return false
	}
	raw, ok, err := s.backend.Load(ctx, scope, string(slot))
	if err != nil {
		s.logger.WarnContext(ctx, "selection load failed", "slot", slot, "error", err)
		ok = false
	}
	if ok {
		if uErr := json.Unmarshal(raw, out); uErr != nil {
			s.logger.WarnContext(ctx, "selection slot undecodable", "slot", slot, "error", uErr)
			ok = false
		}
	}
	metrics.EmitSelectionRead(s.metrics, string(slot), ok)
	return ok
}

func (s *SelectionStore) clearSlot(ctx context.Context, scope string, slot Slot) error {
	if scope == "" {
		return nil
	}
	if err := s.backend.Delete(ctx, scope, string(slot)); err != nil {
		s.logger.WarnContext(ctx, "selection clear failed", "slot", slot, "error", err)
		return err
	}
	return nil
}

func (s *SelectionStore) save(ctx context.Context, scope string, slot Slot, v any) error {
	if scope == "" {
		s.logger.DebugContext(ctx, "selection write dropped without page-load scope", "slot", slot)
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, scope, string(slot), raw); err != nil {
		s.logger.WarnContext(ctx, "selection save failed", "slot", slot, "error", err)
		return err
	}
	return nil
}
