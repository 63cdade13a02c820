package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

// StartSessionRequest defines the request body for starting a session
type StartSessionRequest struct {
	World string `json:"world,omitempty"` // world file; empty uses the server default
}

type SessionHandler struct {
	sessions     *session.Manager
	logger       *slog.Logger
	defaultWorld string
}

func NewSessionHandler(sessions *session.Manager, logger *slog.Logger, defaultWorld string) *SessionHandler {
	return &SessionHandler{
		sessions:     sessions,
		logger:       logger,
		defaultWorld: defaultWorld,
	}
}

// ServeHTTP handles HTTP requests for the play session
// Routes:
// POST /v1/session   - Start (or restart) the session
// GET /v1/session    - Read the session state
// DELETE /v1/session - Discard the session
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleStart(w, r)

	case http.MethodGet:
		st, err := h.sessions.Status()
		if err != nil {
			writeSessionError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, st)

	case http.MethodDelete:
		if err := h.sessions.End(); err != nil {
			writeSessionError(w, h.logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		h.logger.Warn("Method not allowed for session endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

func (h *SessionHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("Invalid session request body", "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.World == "" {
		req.World = h.defaultWorld
	}

	st, err := h.sessions.Start(r.Context(), req.World)
	if err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, st)
}

// writeSessionError maps session and storage errors to HTTP statuses.
func writeSessionError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		writeError(w, logger, http.StatusNotFound, "No active session")
	case errors.Is(err, storage.ErrWorldNotFound):
		writeError(w, logger, http.StatusNotFound, "World not found")
	default:
		logger.Error("Session operation failed", "error", err)
		writeError(w, logger, http.StatusUnprocessableEntity, err.Error())
	}
}
