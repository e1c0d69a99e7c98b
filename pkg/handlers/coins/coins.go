package coins

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chris/coin-bank/pkg/api"
	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/handlers/respond"
	"github.com/chris/coin-bank/pkg/mapping"
	"github.com/chris/coin-bank/pkg/models"
)

// CoinsHandler holds the dependencies for the handlers that change coin counts.
type CoinsHandler struct {
	Bank    coinbank.Transactor
	respond *respond.Responder
}

// NewCoinsHandler creates a new CoinsHandler.
func NewCoinsHandler(bank coinbank.Transactor, logger *slog.Logger) *CoinsHandler {
	return &CoinsHandler{Bank: bank, respond: respond.New(logger)}
}

// AddCoin handles POST /add_coin.
func (h *CoinsHandler) AddCoin(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.Bank.AddCoins)
}

// SubtractCoin handles POST /subtract_coin.
func (h *CoinsHandler) SubtractCoin(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.Bank.SubtractCoins)
}

func (h *CoinsHandler) apply(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, name string, count uint) (models.Reserve, error)) {
	var req api.CoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Message(w, http.StatusBadRequest, "Invalid request body: %v", err)
		return
	}

	reserve, err := op(r.Context(), req.Denomination, req.Count)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, mapping.ToApiReserve(&reserve))
}
