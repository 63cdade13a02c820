package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

const testWorld = `{
  "title": "Shed",
  "start_location": "Yard",
  "end_locations": ["Shed"],
  "locations": [
    {
      "name": "Yard",
      "accessible": true,
      "connections": [{"label": "in", "target": "Shed"}],
      "objects": [{"name": "Key", "kind": "item"}]
    },
    {"name": "Shed", "description": "Dusty.", "required_inventory": ["Key"]}
  ]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestMux(t *testing.T) (http.Handler, *storage.MockStorage) {
	t.Helper()
	spec, err := worldfile.Parse([]byte(testWorld), worldfile.FormatJSON)
	require.NoError(t, err)

	store := storage.NewMockStorage()
	store.AddWorld("shed.json", spec)

	logger := testLogger()
	sessions := session.NewManager(store, logger)

	mux := http.NewServeMux()
	mux.Handle("/health", NewHealthHandler(store, logger))
	mux.Handle("/v1/worlds", NewWorldsHandler(store, logger))
	mux.Handle("/v1/session", NewSessionHandler(sessions, logger, "shed.json"))
	mux.Handle("/v1/commands", NewCommandHandler(sessions, logger))
	mux.Handle("/v1/results", NewResultsHandler(store, logger, 10))
	return mux, store
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedHealth string
	}{
		{"healthy", nil, http.StatusOK, "healthy"},
		{"storage down", errors.New("connection failed"), http.StatusServiceUnavailable, "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, store := newTestMux(t)
			store.SetPingError(tt.pingErr)

			rr := do(t, mux, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			resp := decode[HealthResponse](t, rr)
			assert.Equal(t, tt.expectedHealth, resp.Status)
			assert.Equal(t, "adventure-engine", resp.Service)
		})
	}
}

func TestWorldsHandler(t *testing.T) {
	mux, _ := newTestMux(t)

	rr := do(t, mux, http.MethodGet, "/v1/worlds", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	worlds := decode[[]storage.WorldInfo](t, rr)
	require.Len(t, worlds, 1)
	assert.Equal(t, "Shed", worlds[0].Title)

	rr = do(t, mux, http.MethodPost, "/v1/worlds", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestSessionHandler(t *testing.T) {
	mux, _ := newTestMux(t)

	rr := do(t, mux, http.MethodGet, "/v1/session", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, mux, http.MethodPost, "/v1/session", StartSessionRequest{World: "missing.json"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "World not found", decode[ErrorResponse](t, rr).Error)

	// Empty body falls back to the default world.
	rr = do(t, mux, http.MethodPost, "/v1/session", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	st := decode[session.Status](t, rr)
	assert.Equal(t, "shed.json", st.World)
	assert.Equal(t, "Yard", st.State.Location)

	rr = do(t, mux, http.MethodGet, "/v1/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, st.SessionID, decode[session.Status](t, rr).SessionID)

	rr = do(t, mux, http.MethodPut, "/v1/session", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = do(t, mux, http.MethodDelete, "/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, mux, http.MethodDelete, "/v1/session", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionHandler_BadBody(t *testing.T) {
	mux, _ := newTestMux(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/session", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommandHandler(t *testing.T) {
	mux, _ := newTestMux(t)

	rr := do(t, mux, http.MethodPost, "/v1/commands", CommandRequest{Verb: "go", Args: []string{"in"}})
	assert.Equal(t, http.StatusNotFound, rr.Code, "no session yet")

	rr = do(t, mux, http.MethodPost, "/v1/session", StartSessionRequest{World: "shed.json"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, mux, http.MethodPost, "/v1/commands", CommandRequest{Verb: "go", Args: []string{"in"}})
	require.Equal(t, http.StatusOK, rr.Code)
	reply := decode[session.Reply](t, rr)
	assert.Equal(t, "You need certain items before accessing in.", reply.Result.Message)
	assert.Equal(t, 1, reply.State.Turns)

	rr = do(t, mux, http.MethodPost, "/v1/commands", CommandRequest{Input: "pick up key"})
	require.Equal(t, http.StatusOK, rr.Code)
	reply = decode[session.Reply](t, rr)
	assert.Equal(t, "You pick up the Key.", reply.Result.Message)
	assert.Equal(t, []string{"Key"}, reply.State.Inventory)

	rr = do(t, mux, http.MethodPost, "/v1/commands", CommandRequest{Input: "go in"})
	require.Equal(t, http.StatusOK, rr.Code)
	reply = decode[session.Reply](t, rr)
	assert.True(t, reply.Result.GameOver)
	assert.True(t, reply.Result.Win)
	assert.True(t, reply.State.GameOver)

	rr = do(t, mux, http.MethodGet, "/v1/results?world=shed.json", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	results := decode[[]storage.Result](t, rr)
	require.Len(t, results, 1)
	assert.True(t, results[0].Win)
	assert.Equal(t, 3, results[0].Turns)

}

func TestCommandHandler_BadRequests(t *testing.T) {
	mux, _ := newTestMux(t)

	rr := do(t, mux, http.MethodGet, "/v1/commands", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/commands", bytes.NewBufferString("not json"))
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResultsHandler_Validation(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"missing world", "/v1/results", http.StatusBadRequest},
		{"bad limit", "/v1/results?world=shed.json&limit=abc", http.StatusBadRequest},
		{"zero limit", "/v1/results?world=shed.json&limit=0", http.StatusBadRequest},
		{"empty list", "/v1/results?world=shed.json&limit=5", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, mux, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
