package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/coin-bank/pkg/api"
	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/handlers/coins"
	"github.com/chris/coin-bank/pkg/handlers/reserves"
)

// ApiHandler implements the server interface by composing the per-resource handlers.
type ApiHandler struct {
	*reserves.ReservesHandler
	*coins.CoinsHandler
	AppName string
}

// NewApiHandler creates a new ApiHandler backed by a Teller.
func NewApiHandler(bank coinbank.Teller, appName string, logger *slog.Logger) *ApiHandler {
	return &ApiHandler{
		ReservesHandler: reserves.NewReservesHandler(bank, logger),
		CoinsHandler:    coins.NewCoinsHandler(bank, logger),
		AppName:         appName,
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// GetGreeting handles GET /.
func (h *ApiHandler) GetGreeting(w http.ResponseWriter, r *http.Request) {
	writeText(w, fmt.Sprintf("Hello %s!", h.AppName))
}

// GetHey handles GET /hey.
func (h *ApiHandler) GetHey(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Hey there!")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
