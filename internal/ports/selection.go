package ports

import (
	"context"
	"errors"
)

// ErrNoScope is returned when a selection operation has no page-load scope to act on.
var ErrNoScope = errors.New("selection: no page-load scope")

// SelectionBackend stores encoded slot values per page-load scope.
// A scope is an opaque identifier minted for each full page load.
type SelectionBackend interface {
	// Load returns the encoded value for slot, or ok=false when the slot is empty.
	Load(ctx context.Context, scope, slot string) (value []byte, ok bool, err error)
	// Save replaces the slot value and refreshes the scope's idle expiry.
	Save(ctx context.Context, scope, slot string, value []byte) error
	// Delete empties one slot of the scope.
	Delete(ctx context.Context, scope, slot string) error
	// Clear empties every slot of the scope.
	Clear(ctx context.Context, scope string) error
}
