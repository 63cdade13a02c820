package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/adventure-engine/internal/session"
)

// CommandRequest carries either a structured verb or a raw input line.
type CommandRequest struct {
	Verb  string   `json:"verb,omitempty"`
	Args  []string `json:"args,omitempty"`
	Input string   `json:"input,omitempty"` // raw player text, parsed server-side
}

type CommandHandler struct {
	sessions *session.Manager
	logger   *slog.Logger
}

func NewCommandHandler(sessions *session.Manager, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{sessions: sessions, logger: logger}
}

// ServeHTTP handles POST /v1/commands
func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid command request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		reply session.Reply
		err   error
	)
	if strings.TrimSpace(req.Input) != "" {
		reply, err = h.sessions.Input(r.Context(), req.Input)
	} else {
		reply, err = h.sessions.Command(r.Context(), req.Verb, req.Args...)
	}
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			writeSessionError(w, h.logger, err)
			return
		}
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, h.logger, http.StatusOK, reply)
}
