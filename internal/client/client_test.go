package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, roomsPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"code":"AAAAAA","host":"h1","guest_can_pause":false,"votes_to_skip":1,"created_at":"2024-01-01T00:00:00Z"},
			{"id":2,"code":"BBBBBB","host":"h2","guest_can_pause":true,"votes_to_skip":2,"created_at":"2024-01-02T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	rooms, err := New(Options{BaseURL: srv.URL}).ListRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(2), rooms[1].ID)
	assert.True(t, rooms[1].GuestCanPause)
	assert.Equal(t, 2024, rooms[0].CreatedAt.Year())
}

func TestClient_ListRooms_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]\n"))
	}))
	defer srv.Close()

	rooms, err := New(Options{BaseURL: srv.URL}).ListRooms(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestClient_ListRooms_ServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL, RetryCount: 2}).ListRooms(context.Background())

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ListRooms_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL, RetryCount: 2}).ListRooms(context.Background())

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}
