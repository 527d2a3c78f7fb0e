package assessment

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kangocare/kango/internal/domain/admission"
	"github.com/kangocare/kango/internal/rubric"
)

func TestExportMonthlySheet(t *testing.T) {
	sheet := []DaySummary{
		{
			Date:     d("2025-04-01"),
			Location: admission.Location{Ward: "3F-east", Room: "301", Status: admission.StatusAdmitted, Resolved: true},
			Editable: true, HasRecord: true,
			Scores: rubric.Scores{A: 2, B: 3, C: 0}, Severe: true,
		},
		{
			Date:     d("2025-04-02"),
			Location: admission.Location{Ward: "3F-east", Room: "301", Status: admission.StatusInHospital, Resolved: true},
			Editable: true,
		},
	}

	data, err := ExportMonthlySheet("2025-04", sheet)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("2025-04")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) < 3 {
		t.Fatalf("workbook has %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][7] != "Severe" {
		t.Errorf("header row: %v", rows[0])
	}
	if rows[1][0] != "2025-04-01" || rows[1][4] != "2" || rows[1][7] != "該当" {
		t.Errorf("recorded row: %v", rows[1])
	}
	// Day without a record keeps its score cells blank.
	if len(rows[2]) > 4 {
		for _, cell := range rows[2][4:] {
			if cell != "" {
				t.Errorf("unrecorded row carries scores: %v", rows[2])
			}
		}
	}
}
