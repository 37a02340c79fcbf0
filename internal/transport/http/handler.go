package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cwrk-planet/rooms-api/internal/domain"
	httpmw "github.com/cwrk-planet/rooms-api/internal/transport/http/middleware"
)

type RoomLister interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type Handler struct {
	roomSvc RoomLister
}

func NewHandler(room RoomLister) *Handler {
	return &Handler{roomSvc: room}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", slog.Any("err", err))
	}
}

// GET /api/room
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomSvc.ListRooms(r.Context())
	if err != nil {
		httpmw.L(r.Context()).Error("handler.ListRooms:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, ToRoomItems(rooms))
}
