package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-ui/internal/adapters/memory"
	"github.com/target/storefront-ui/internal/domain/model"
	mockauth "github.com/target/storefront-ui/internal/mocks/auth"
	"github.com/target/storefront-ui/internal/observability/statsd"
	"github.com/target/storefront-ui/internal/testutil"
)

func newTestSelectionStore(t *testing.T) (*SelectionStore, *statsd.Recorder) {
	t.Helper()
	rec := &statsd.Recorder{}
	store := NewSelectionStore(SelectionStoreOptions{
		Backend: memory.NewSelectionBackend(memory.DefaultSelectionBackendConfig()),
		Metrics: rec,
	})
	return store, rec
}

func TestSelectionStore_ProductRoundTrip(t *testing.T) {
	store, rec := newTestSelectionStore(t)
	ctx := context.Background()

	_, ok := store.CurrentProduct(ctx, "load-1")
	assert.False(t, ok)

	p := testutil.NewProduct("7").WithName("Mug").WithPrice("12.50").Build()
	require.NoError(t, store.SetCurrentProduct(ctx, "load-1", p))

	got, ok := store.CurrentProduct(ctx, "load-1")
	require.True(t, ok)
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Mug", got.Name)
	assert.True(t, p.Price.Equal(got.Price))

	reads := rec.Named("selection.read")
	require.Len(t, reads, 2)
	assert.Equal(t, "false", reads[0].Tags["hit"])
	assert.Equal(t, "true", reads[1].Tags["hit"])
}

func TestSelectionStore_SetterReplaces(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentCategory(ctx, "s", &model.Category{ID: "1", Name: "Mugs"}))
	require.NoError(t, store.SetCurrentCategory(ctx, "s", &model.Category{ID: "2", Name: "Tea"}))

	got, ok := store.CurrentCategory(ctx, "s")
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)
}

func TestSelectionStore_ScopesAreIsolated(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentProduct(ctx, "tab-a", &model.Product{ID: "1"}))
	_, ok := store.CurrentProduct(ctx, "tab-b")
	assert.False(t, ok)
}

func TestSelectionStore_NoScope(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentProduct(ctx, "", &model.Product{ID: "1"}))
	_, ok := store.CurrentProduct(ctx, "")
	assert.False(t, ok)
	assert.NoError(t, store.Reset(ctx, ""))
}

func TestSelectionStore_CartLines(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	cart := testutil.NewCart().WithLine("1", "2.00", 1).WithLine("2", "3.00", 2).Build()
	require.NoError(t, store.SetSelectedCartLines(ctx, "s", cart.Lines))

	lines, ok := store.SelectedCartLines(ctx, "s")
	require.True(t, ok)
	require.Len(t, lines, 2)
	assert.Equal(t, "line-2", lines[1].ID)

	// An empty selection is a value, not an absence.
	require.NoError(t, store.SetSelectedCartLines(ctx, "s", nil))
	lines, ok = store.SelectedCartLines(ctx, "s")
	assert.True(t, ok)
	assert.Empty(t, lines)
}

func TestSelectionStore_ClearSelectedCartLines(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSelectedCartLines(ctx, "s", []model.CartLine{{ID: "l1"}}))
	require.NoError(t, store.SetCurrentProduct(ctx, "s", &model.Product{ID: "7"}))
	require.NoError(t, store.ClearSelectedCartLines(ctx, "s"))

	_, ok := store.SelectedCartLines(ctx, "s")
	assert.False(t, ok, "a cleared slot reads as missing, not as an empty selection")
	_, ok = store.CurrentProduct(ctx, "s")
	assert.True(t, ok, "other slots are untouched")
	assert.NoError(t, store.ClearSelectedCartLines(ctx, ""))
}

func TestSelectionStore_ResetEmptiesAllSlots(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentProduct(ctx, "s", &model.Product{ID: "1"}))
	require.NoError(t, store.SetCurrentCategory(ctx, "s", &model.Category{ID: "1"}))
	require.NoError(t, store.Reset(ctx, "s"))

	_, ok := store.CurrentProduct(ctx, "s")
	assert.False(t, ok)
	_, ok = store.CurrentCategory(ctx, "s")
	assert.False(t, ok)
}

func TestSelectionStore_BackendFailureReadsEmpty(t *testing.T) {
	store := NewSelectionStore(SelectionStoreOptions{Backend: mockauth.FailingSelectionBackend{}})
	ctx := context.Background()

	err := store.SetCurrentProduct(ctx, "s", &model.Product{ID: "1"})
	require.ErrorIs(t, err, mockauth.ErrBackendDown)

	_, ok := store.CurrentProduct(ctx, "s")
	assert.False(t, ok)
	assert.ErrorIs(t, store.Reset(ctx, "s"), mockauth.ErrBackendDown)
}

func TestSelectionStore_RecordFallback(t *testing.T) {
	store, rec := newTestSelectionStore(t)
	store.RecordFallback(SlotCurrentProduct)

	got := rec.Named("selection.fallback_fetch")
	require.Len(t, got, 1)
	assert.Equal(t, "current_product", got[0].Tags["slot"])
}

func TestSelectionStore_NilValues(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	assert.Error(t, store.SetCurrentProduct(context.Background(), "s", nil))
	assert.Error(t, store.SetCurrentCategory(context.Background(), "s", nil))
}
