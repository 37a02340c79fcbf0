package http

import (
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

// RoomItem — внешнее представление комнаты.
type RoomItem struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	Host          string    `json:"host"`
	GuestCanPause bool      `json:"guest_can_pause"`
	VotesToSkip   int32     `json:"votes_to_skip"`
	CreatedAt     time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toRoomItem(rm domain.Room) RoomItem {
	return RoomItem{
		ID:            rm.ID,
		Code:          rm.Code,
		Host:          rm.Host,
		GuestCanPause: rm.GuestCanPause,
		VotesToSkip:   rm.VotesToSkip,
		CreatedAt:     rm.CreatedAt.UTC(),
	}
}

// ToRoomItems сериализует список; всегда возвращает не-nil срез, чтобы в JSON был [] а не null.
func ToRoomItems(rooms []domain.Room) []RoomItem {
	out := make([]RoomItem, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, toRoomItem(rm))
	}
	return out
}
