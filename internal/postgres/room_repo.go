package postgres

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

// querier — общий интерфейс *pgxpool.Pool и pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listAllRoomsQuery = `
	SELECT id, code, host, guest_can_pause, votes_to_skip, created_at
	FROM rooms
	ORDER BY id ASC`

type RoomRepository struct {
	db querier
}

func NewRoomRepository(db querier) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) ListAll(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, listAllRoomsQuery)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0, 16)
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Code, &rm.Host, &rm.GuestCanPause, &rm.VotesToSkip, &rm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, nil
}
