package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/coin-bank/pkg/api"
	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/storage"
)

// Responder writes JSON responses and logs the failures it cannot report to the client.
type Responder struct {
	Logger *slog.Logger
}

// New creates a Responder. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{Logger: logger}
}

// JSON writes body as a JSON response with the given status code.
func (rs *Responder) JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.Logger.Error("failed to write response", "error", err)
	}
}

// Message writes a {"message": ...} failure body.
func (rs *Responder) Message(w http.ResponseWriter, status int, format string, args ...interface{}) {
	rs.JSON(w, status, api.Error{Message: fmt.Sprintf(format, args...)})
}

// Error maps a coin bank error to its HTTP status and writes it.
func (rs *Responder) Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coinbank.ErrIllegalDenominationName):
		rs.Message(w, http.StatusNotAcceptable, "%v", err)
	case errors.Is(err, storage.ErrStateUnavailable):
		rs.Message(w, http.StatusLocked, "%v", err)
	default:
		rs.Logger.Error("unexpected coin bank error", "error", err)
		rs.Message(w, http.StatusInternalServerError, "%v", err)
	}
}
