package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository defines the append-only order store. Records are created
// once and only their status changes afterwards.
type Repository interface {

	// Push appends one record and returns the store-assigned id.
	Push(ctx context.Context, rec *PersistedOrder) (string, error)

	// Exists reports whether a record with this call_id was already
	// persisted (duplicate-webhook check).
	Exists(ctx context.Context, callID string) (bool, error)

	// List returns every record keyed by store id (dashboard polling).
	List(ctx context.Context) (map[string]PersistedOrder, error)

	// UpdateStatus writes the status field of one record.
	UpdateStatus(ctx context.Context, id string, status string) error
}
