package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

const listAllRoomsQuery = `SELECT id, code, host, guest_can_pause, votes_to_skip, created_at FROM rooms ORDER BY id ASC`

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) ListAll(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listAllRoomsQuery)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0, 16)
	for rows.Next() {
		var (
			rm        domain.Room
			createdAt int64
		)
		if err := rows.Scan(&rm.ID, &rm.Code, &rm.Host, &rm.GuestCanPause, &rm.VotesToSkip, &createdAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rm.CreatedAt = time.Unix(createdAt, 0).UTC()
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, nil
}
