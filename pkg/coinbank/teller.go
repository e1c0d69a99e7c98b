package coinbank

import (
	"context"

	"github.com/chris/coin-bank/pkg/models"
	"github.com/shopspring/decimal"
)

// ReserveViewer defines the read-only views over the coin reserves.
type ReserveViewer interface {
	// Reserves returns a snapshot of every reserve.
	Reserves(ctx context.Context) (models.ReserveCollection, error)

	// Reserve returns a snapshot of the reserve for a single denomination name.
	Reserve(ctx context.Context, name string) (models.Reserve, error)

	// Total returns the monetary value of all coins held.
	Total(ctx context.Context) (decimal.Decimal, error)
}

// Transactor defines the operations that change coin counts.
type Transactor interface {
	// AddCoins adds count coins to a reserve, discarding whatever exceeds its capacity.
	AddCoins(ctx context.Context, name string, count uint) (models.Reserve, error)

	// SubtractCoins removes count coins from a reserve, stopping at zero.
	SubtractCoins(ctx context.Context, name string, count uint) (models.Reserve, error)
}

// Teller combines the read and write sides of the coin bank.
type Teller interface {
	ReserveViewer
	Transactor
}
