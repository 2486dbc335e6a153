package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "case-service", body["service"])

	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)
}

func TestReady(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodGet, "/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/tickets", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Route not found", body["error"])
}

func TestMalformedJSONBody(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	req, err := http.NewRequest(http.MethodPost, "/api/complaints", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := doRaw(r, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decode(t, w)["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "Request body must be valid JSON", details[0])
}
