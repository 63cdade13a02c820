package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jwebster45206/adventure-engine/internal/storage"
)

// ResultsHandler serves the recent finished sessions of a world.
type ResultsHandler struct {
	storage      storage.Storage
	logger       *slog.Logger
	defaultLimit int
}

func NewResultsHandler(store storage.Storage, logger *slog.Logger, defaultLimit int) *ResultsHandler {
	return &ResultsHandler{storage: store, logger: logger, defaultLimit: defaultLimit}
}

// ServeHTTP handles GET /v1/results?world=<file>&limit=<n>
func (h *ResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	world := r.URL.Query().Get("world")
	if world == "" {
		writeError(w, h.logger, http.StatusBadRequest, "world query parameter is required")
		return
	}

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results, err := h.storage.ListResults(r.Context(), world, limit)
	if err != nil {
		h.logger.Error("Failed to list results", "world", world, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list results")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, results)
}
