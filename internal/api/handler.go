package api

import (
	"encoding/json"
	"net/http"

	"gomokusimul/internal/game"
)

// Handler exposes the lobby over plain HTTP for clients that want to
// browse rooms before opening a websocket.
type Handler struct {
	directory *game.Directory
}

// NewHandler creates a new handler.
func NewHandler(directory *game.Directory) *Handler {
	return &Handler{directory: directory}
}

// RegisterRoutes sets up the routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rooms", h.handleListRooms)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, h.directory.ListWaitingRooms())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) respondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
