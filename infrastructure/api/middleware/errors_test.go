package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/internal/log"
)

func TestAPIError(t *testing.T) {
	cause := errors.New("underlying")
	err := NewAPIError(http.StatusBadRequest, "invalid request body", cause)

	assert.Equal(t, http.StatusBadRequest, err.Code())
	assert.Equal(t, "invalid request body", err.Message())
	assert.Equal(t, "api error: invalid request body: underlying", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "api error uses its own status and message",
			err:        NewBadRequest("invalid request body", errors.New("cause")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "wrapped api error still maps",
			err:        fmt.Errorf("handler: %w", NewBadRequest("job id is required", nil)),
			wantStatus: http.StatusBadRequest,
			wantBody:   "job id is required",
		},
		{
			name:       "missing session maps to 404",
			err:        fmt.Errorf("load session: %w", session.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "session not found",
		},
		{
			name:       "unknown errors hide internals",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)

			WriteError(w, req, tt.err, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body.Error)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCorrelationID_MintsAndEchoes(t *testing.T) {
	var seen string
	handler := CorrelationID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.CorrelationID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(CorrelationHeader), "an id is minted when the client sends none")
	assert.Equal(t, w.Header().Get(CorrelationHeader), seen)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationHeader, "fixed-id")
	handler.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(CorrelationHeader))
	assert.Equal(t, "fixed-id", seen)
}
