package reserves

import (
	"log/slog"
	"net/http"

	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/handlers/respond"
	"github.com/chris/coin-bank/pkg/mapping"
)

// ReservesHandler holds the dependencies for the read-only reserve handlers.
type ReservesHandler struct {
	Bank    coinbank.ReserveViewer
	respond *respond.Responder
}

// NewReservesHandler creates a new ReservesHandler.
func NewReservesHandler(bank coinbank.ReserveViewer, logger *slog.Logger) *ReservesHandler {
	return &ReservesHandler{Bank: bank, respond: respond.New(logger)}
}

// ListReserves handles GET /reserves.
func (h *ReservesHandler) ListReserves(w http.ResponseWriter, r *http.Request) {
	domainReserves, err := h.Bank.Reserves(r.Context())
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, mapping.ToApiReserves(domainReserves))
}

// GetReserve handles GET /reserves/{denomination}.
func (h *ReservesHandler) GetReserve(w http.ResponseWriter, r *http.Request, denomination string) {
	reserve, err := h.Bank.Reserve(r.Context(), denomination)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, mapping.ToApiReserve(&reserve))
}

// GetTotal handles GET /total. The body is the plain text amount, e.g. "1.80".
func (h *ReservesHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.Bank.Total(r.Context())
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(total.StringFixed(2)))
}
