package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/internal/storage"
)

// WorldsHandler lists the world files available to play.
type WorldsHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewWorldsHandler(store storage.Storage, logger *slog.Logger) *WorldsHandler {
	return &WorldsHandler{storage: store, logger: logger}
}

// ServeHTTP handles GET /v1/worlds
func (h *WorldsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	worlds, err := h.storage.ListWorlds(r.Context())
	if err != nil {
		h.logger.Error("Failed to list worlds", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list worlds")
		return
	}
	if worlds == nil {
		worlds = []storage.WorldInfo{}
	}
	writeJSON(w, h.logger, http.StatusOK, worlds)
}
