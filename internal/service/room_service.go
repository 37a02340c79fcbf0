package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

type RoomService struct {
	rooms domain.RoomLister
}

func NewRoomService(rooms domain.RoomLister) *RoomService {
	return &RoomService{rooms: rooms}
}

// ListRooms возвращает все комнаты по возрастанию ID. Пустое хранилище — пустой срез, не nil.
func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("rooms.ListAll: %w", err)
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}

	// хранилища уже сортируют, но порядок — часть контракта
	if !sort.SliceIsSorted(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID }) {
		sorted := make([]domain.Room, len(rooms))
		copy(sorted, rooms)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
		rooms = sorted
	}
	return rooms, nil
}
