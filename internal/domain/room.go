package domain

import (
	"context"
	"time"
)

type Room struct {
	ID            int64     `db:"id"`
	Code          string    `db:"code"`
	Host          string    `db:"host"`
	GuestCanPause bool      `db:"guest_can_pause"`
	VotesToSkip   int32     `db:"votes_to_skip"`
	CreatedAt     time.Time `db:"created_at"`
}

// RoomLister — чтение всей коллекции комнат, порядок по возрастанию ID.
type RoomLister interface {
	ListAll(ctx context.Context) ([]Room, error)
}
