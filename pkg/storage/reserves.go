package storage

import (
	"context"

	"github.com/chris/coin-bank/pkg/models"
)

// ReserveReader defines read-only access to the reserve collection.
type ReserveReader interface {
	// Snapshot returns a copy of all reserves.
	Snapshot(ctx context.Context) (models.ReserveCollection, error)
}

// ReserveWriter defines the only way to mutate a reserve.
type ReserveWriter interface {
	// WithExclusiveAccess runs fn against the reserve for d while holding exclusive
	// access to the whole collection, and returns a copy of that reserve once fn is done.
	// fn must not block, perform I/O, or call back into the store.
	WithExclusiveAccess(ctx context.Context, d models.Denomination, fn func(r *models.Reserve) error) (models.Reserve, error)
}
