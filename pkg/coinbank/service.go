package coinbank

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chris/coin-bank/pkg/mapping"
	"github.com/chris/coin-bank/pkg/models"
	"github.com/chris/coin-bank/pkg/storage"
	"github.com/chris/coin-bank/pkg/websockets"
	"github.com/shopspring/decimal"
)

// Direction says whether a transaction puts coins into a reserve or takes them out.
type Direction int

const (
	Deposit Direction = iota
	Withdraw
)

func (d Direction) String() string {
	if d == Withdraw {
		return "subtract"
	}
	return "add"
}

// Service validates coin requests and applies them to the store.
type Service struct {
	Store     storage.Storage
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewService creates a new Service. A nil publisher disables reserve update broadcasts.
func NewService(store storage.Storage, publisher websockets.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = &websockets.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Store:     store,
		Publisher: publisher,
		Logger:    logger,
	}
}

// Make sure we conform to the interface
var _ Teller = (*Service)(nil)

// ResolveDenomination maps a user-supplied coin name to a denomination, ignoring case.
func ResolveDenomination(name string) (models.Denomination, bool) {
	return models.ParseDenomination(name)
}

func illegalName(name string) error {
	return fmt.Errorf("%w %q: accepted values are %s",
		ErrIllegalDenominationName, name, strings.Join(models.AcceptedNames(), ", "))
}

// AddCoins adds count coins to the named reserve. Coins beyond MaxCount are discarded.
func (s *Service) AddCoins(ctx context.Context, name string, count uint) (models.Reserve, error) {
	return s.Apply(ctx, name, count, Deposit)
}

// SubtractCoins removes count coins from the named reserve, never going below zero.
func (s *Service) SubtractCoins(ctx context.Context, name string, count uint) (models.Reserve, error) {
	return s.Apply(ctx, name, count, Withdraw)
}

// Apply resolves name and moves count coins in the given direction under exclusive access.
// Over- and underflow are clamped, not reported.
func (s *Service) Apply(ctx context.Context, name string, count uint, direction Direction) (models.Reserve, error) {
	d, ok := ResolveDenomination(name)
	if !ok {
		return models.Reserve{}, illegalName(name)
	}

	clamped := false
	reserve, err := s.Store.WithExclusiveAccess(ctx, d, func(r *models.Reserve) error {
		var next uint
		next, clamped = step(r.CurrentCount, r.MaxCount, count, direction)
		r.CurrentCount = next
		return nil
	})
	if err != nil {
		return models.Reserve{}, fmt.Errorf("failed to %s %d %s: %w", direction, count, d, err)
	}

	if clamped {
		s.Logger.Debug("coin count clamped",
			slog.String("denomination", d.String()),
			slog.String("operation", direction.String()),
			slog.Uint64("requested", uint64(count)),
			slog.Uint64("current_count", uint64(reserve.CurrentCount)),
		)
	}

	s.publish(ctx, reserve, count, direction)

	return reserve, nil
}

// step computes the next count, saturating at 0 and max. The bool reports whether it saturated.
func step(current, ceiling, count uint, direction Direction) (uint, bool) {
	switch direction {
	case Withdraw:
		if count > current {
			return 0, true
		}
		return current - count, false
	default:
		if current > ceiling || count > ceiling-current {
			return ceiling, true
		}
		return current + count, false
	}
}

func (s *Service) publish(ctx context.Context, reserve models.Reserve, count uint, direction Direction) {
	message := websockets.Message{
		Type: websockets.MessageTypeReserveUpdate,
		Payload: websockets.ReserveUpdatePayload{
			Operation: direction.String(),
			Requested: count,
			Reserve:   mapping.ToApiReserve(&reserve),
		},
	}
	if err := s.Publisher.Publish(ctx, message); err != nil {
		s.Logger.Error("failed to publish reserve update",
			slog.String("denomination", reserve.Denomination.String()),
			slog.Any("error", err),
		)
	}
}

// Reserves returns a snapshot of every reserve.
func (s *Service) Reserves(ctx context.Context) (models.ReserveCollection, error) {
	reserves, err := s.Store.Snapshot(ctx)
	if err != nil {
		return models.ReserveCollection{}, fmt.Errorf("failed to snapshot reserves: %w", err)
	}
	return reserves, nil
}

// Reserve returns a snapshot of the named reserve.
func (s *Service) Reserve(ctx context.Context, name string) (models.Reserve, error) {
	d, ok := ResolveDenomination(name)
	if !ok {
		return models.Reserve{}, illegalName(name)
	}

	reserves, err := s.Reserves(ctx)
	if err != nil {
		return models.Reserve{}, err
	}
	return reserves[d], nil
}

// Total returns the value of every coin held, in currency units with two decimal places.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	reserves, err := s.Reserves(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(reserves.TotalMinorUnits(), -2), nil
}
