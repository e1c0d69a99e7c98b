package respond

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/coin-bank/pkg/coinbank"
	"github.com/chris/coin-bank/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		logged bool
	}{
		{"Illegal Denomination", fmt.Errorf("%w %q", coinbank.ErrIllegalDenominationName, "loonie"), http.StatusNotAcceptable, false},
		{"State Unavailable", fmt.Errorf("failed to add: %w", storage.ErrStateUnavailable), http.StatusLocked, false},
		{"Unexpected", errors.New("disk on fire"), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rs := New(slog.New(slog.NewJSONHandler(&buf, nil)))
			rr := httptest.NewRecorder()

			rs.Error(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `"message"`)
			if tt.logged {
				assert.Contains(t, buf.String(), "unexpected coin bank error")
				assert.Contains(t, buf.String(), "disk on fire")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
