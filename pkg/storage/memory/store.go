package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chris/coin-bank/pkg/models"
	"github.com/chris/coin-bank/pkg/storage"
)

// Store implements the Storage interface with a single mutex guarding the whole collection.
type Store struct {
	mu       sync.Mutex
	reserves models.ReserveCollection
	poisoned bool
	logger   *slog.Logger
}

// New creates a new Store holding the given reserves.
func New(reserves models.ReserveCollection, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		reserves: reserves,
		logger:   logger,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Snapshot returns a copy of all reserves.
func (s *Store) Snapshot(ctx context.Context) (models.ReserveCollection, error) {
	if err := ctx.Err(); err != nil {
		return models.ReserveCollection{}, fmt.Errorf("%w: %w", storage.ErrStateUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return models.ReserveCollection{}, fmt.Errorf("%w: store is poisoned", storage.ErrStateUnavailable)
	}

	return s.reserves, nil
}

// WithExclusiveAccess runs fn against one reserve while holding the store lock.
// A panic in fn poisons the store: every later call fails with ErrStateUnavailable.
func (s *Store) WithExclusiveAccess(ctx context.Context, d models.Denomination, fn func(r *models.Reserve) error) (reserve models.Reserve, err error) {
	if !d.Valid() {
		return models.Reserve{}, fmt.Errorf("%w: %d", storage.ErrUnknownDenomination, d)
	}
	if err := ctx.Err(); err != nil {
		return models.Reserve{}, fmt.Errorf("%w: %w", storage.ErrStateUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return models.Reserve{}, fmt.Errorf("%w: store is poisoned", storage.ErrStateUnavailable)
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.poisoned = true
			s.logger.Error("reserve mutation panicked, store poisoned",
				slog.String("denomination", d.String()),
				slog.Any("panic", rec),
			)
			reserve = models.Reserve{}
			err = fmt.Errorf("%w: mutation panicked: %v", storage.ErrStateUnavailable, rec)
		}
	}()

	// Work on a copy so a failing fn leaves the reserve untouched.
	working := s.reserves[d]
	if err := fn(&working); err != nil {
		return models.Reserve{}, err
	}
	s.reserves[d] = working

	return working, nil
}

// Poisoned reports whether an earlier mutation left the store unusable.
func (s *Store) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}
