package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLogger(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		level   string
		message string
	}{
		{"Success", http.StatusOK, "INFO", "request completed"},
		{"Client Error", http.StatusNotAcceptable, "WARN", "client error"},
		{"Server Error", http.StatusInternalServerError, "ERROR", "server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("ok"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/add_coin", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			var entry struct {
				Level   string `json:"level"`
				Msg     string `json:"msg"`
				Request struct {
					Method string `json:"method"`
					Path   string `json:"path"`
				} `json:"request"`
				Response struct {
					Status int `json:"status"`
					Bytes  int `json:"bytes"`
				} `json:"response"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Msg)
			assert.Equal(t, http.MethodPost, entry.Request.Method)
			assert.Equal(t, "/add_coin", entry.Request.Path)
			assert.Equal(t, tt.status, entry.Response.Status)
			assert.Equal(t, 2, entry.Response.Bytes)
		})
	}
}
