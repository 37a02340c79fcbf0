package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	rooms []domain.Room
	err   error
}

func (s stubLister) ListAll(context.Context) ([]domain.Room, error) {
	return s.rooms, s.err
}

func TestRoomService_ListRooms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rooms   []domain.Room
		wantIDs []int64
	}{
		{"nil_store_result", nil, []int64{}},
		{"empty", []domain.Room{}, []int64{}},
		{"single", []domain.Room{{ID: 7}}, []int64{7}},
		{"already_sorted", []domain.Room{{ID: 1}, {ID: 2}, {ID: 3}}, []int64{1, 2, 3}},
		{"unsorted", []domain.Room{{ID: 3}, {ID: 1}, {ID: 2}}, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewRoomService(stubLister{rooms: tt.rooms})
			got, err := svc.ListRooms(context.Background())
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRoomService_ListRooms_DoesNotReorderCallerSlice(t *testing.T) {
	src := []domain.Room{{ID: 2}, {ID: 1}}
	svc := NewRoomService(stubLister{rooms: src})

	_, err := svc.ListRooms(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), src[0].ID)
}

func TestRoomService_ListRooms_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store down")
	svc := NewRoomService(stubLister{err: storeErr})

	rooms, err := svc.ListRooms(context.Background())

	require.ErrorIs(t, err, storeErr)
	assert.Nil(t, rooms)
}
