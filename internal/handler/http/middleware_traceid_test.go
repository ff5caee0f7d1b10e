package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/craft-stash/internal/service"
)

func runWithTraceID(t *testing.T, requestTraceID string) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandler(&service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if requestTraceID != "" {
		req.Header.Set(traceIDHeader, requestTraceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	rr := runWithTraceID(t, "client-supplied-id")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "client-supplied-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	rr := runWithTraceID(t, "")

	require.Equal(t, http.StatusOK, rr.Code)
	generated := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, generated)

	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
