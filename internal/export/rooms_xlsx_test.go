package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteRooms(t *testing.T) {
	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	rooms := []client.Room{
		{ID: 1, Code: "AAAAAA", Host: "h1", VotesToSkip: 1, CreatedAt: created},
		{ID: 2, Code: "BBBBBB", Host: "h2", GuestCanPause: true, VotesToSkip: 3, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRooms(&buf, rooms))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, roomHeaders, rows[0])
	assert.Equal(t, []string{"2", "BBBBBB", "h2", "TRUE", "3", "2024-02-03T04:05:06Z"}, rows[2])
}

func TestWriteRooms_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRooms(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
