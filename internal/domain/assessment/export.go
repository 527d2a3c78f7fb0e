package assessment

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var sheetHeader = []string{"Date", "Ward", "Room", "Status", "A", "B", "C", "Severe"}

// ExportMonthlySheet renders the monthly review matrix as an .xlsx workbook,
// one row per calendar day.
func ExportMonthlySheet(yearMonth string, sheet []DaySummary) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths.

	sheetName := yearMonth
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	for i, h := range sheetHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, day := range sheet {
		row := rowIdx + 2
		values := []interface{}{
			day.Date.String(),
			day.Location.Ward,
			day.Location.Room,
			day.Location.Status,
		}
		if day.HasRecord {
			values = append(values, day.Scores.A, day.Scores.B, day.Scores.C, severeMark(day.Severe))
		} else {
			values = append(values, "", "", "", "")
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "D", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func severeMark(severe bool) string {
	if severe {
		return "該当"
	}
	return "非該当"
}
