package export

import (
	"fmt"
	"io"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/client"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Rooms"

var roomHeaders = []string{"ID", "Code", "Host", "Guest Can Pause", "Votes To Skip", "Created At"}

// WriteRooms пишет книгу с одним листом: строка заголовков и по строке на комнату.
func WriteRooms(w io.Writer, rooms []client.Room) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, header := range roomHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(roomHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "F", 18); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	for i, rm := range rooms {
		row := i + 2
		values := []any{
			rm.ID,
			rm.Code,
			rm.Host,
			rm.GuestCanPause,
			rm.VotesToSkip,
			rm.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
