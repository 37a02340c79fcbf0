package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgres(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("ROOMS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROOMS_TEST_POSTGRES_DSN not set, skipping postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := New(ctx, Config{DSN: dsn, MaxConns: 2, ApplicationName: "rooms-api-test"})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestRoomRepository_ListAll_OrderedByID(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	tx, err := db.Pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	// временная таблица перекрывает public.rooms в рамках сессии
	_, err = tx.Exec(ctx, `
		CREATE TEMP TABLE rooms (
			id              BIGINT PRIMARY KEY,
			code            VARCHAR(8) NOT NULL UNIQUE,
			host            VARCHAR(50) NOT NULL UNIQUE,
			guest_can_pause BOOLEAN NOT NULL DEFAULT FALSE,
			votes_to_skip   INTEGER NOT NULL DEFAULT 1,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		) ON COMMIT DROP`)
	require.NoError(t, err)

	_, err = tx.Exec(ctx, `
		INSERT INTO rooms (id, code, host, guest_can_pause, votes_to_skip)
		VALUES (3, 'CCCCCC', 'host-c', false, 1),
		       (1, 'AAAAAA', 'host-a', true, 2),
		       (2, 'BBBBBB', 'host-b', false, 3)`)
	require.NoError(t, err)

	repo := NewRoomRepository(tx)
	rooms, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	assert.Equal(t, int64(1), rooms[0].ID)
	assert.Equal(t, "AAAAAA", rooms[0].Code)
	assert.True(t, rooms[0].GuestCanPause)
	assert.Equal(t, int32(2), rooms[0].VotesToSkip)
	assert.Equal(t, int64(2), rooms[1].ID)
	assert.Equal(t, int64(3), rooms[2].ID)
}

func TestRoomRepository_ListAll_Empty(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	tx, err := db.Pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		CREATE TEMP TABLE rooms (
			id BIGINT PRIMARY KEY, code TEXT, host TEXT,
			guest_can_pause BOOLEAN, votes_to_skip INTEGER, created_at TIMESTAMPTZ
		) ON COMMIT DROP`)
	require.NoError(t, err)

	rooms, err := NewRoomRepository(tx).ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), Config{DSN: "postgres://%zz"})
	require.Error(t, err)
}
