package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// saveAndOpen saves f under a temp dir and reopens it, like a real workbook.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "id13")
	f.SetCellValue(sheetName, "B1", "titre_norm")
	f.SetCellValue(sheetName, "C1", "price")
	f.SetCellValue(sheetName, "D1", "active_site")
	f.SetCellValue(sheetName, "A2", 9782877759908)
	f.SetCellValue(sheetName, "B2", "L'Été des Lumières")
	f.SetCellValue(sheetName, "C2", 29.9)
	f.SetCellValue(sheetName, "D2", true)
	// Row 3 left blank on purpose
	f.SetCellValue(sheetName, "A4", "0123")
	f.SetCellValue(sheetName, "B4", "Second")

	sheet, err := ExtractRows(saveAndOpen(t, f), sheetName, nil)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if sheet.HeaderRow != 1 {
		t.Errorf("Expected header row 1, got %d", sheet.HeaderRow)
	}
	if len(sheet.Header) != 4 {
		t.Fatalf("Expected 4 header labels, got %v", sheet.Header)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(sheet.Rows))
	}

	first := sheet.Rows[0]
	if first.Row != 2 {
		t.Errorf("Expected row 2, got %d", first.Row)
	}
	if first.Cells["id13"] != int64(9782877759908) {
		t.Errorf("Expected int64 id13, got %v (type: %T)", first.Cells["id13"], first.Cells["id13"])
	}
	if first.Cells["titre_norm"] != "L'Été des Lumières" {
		t.Errorf("Expected title, got %v", first.Cells["titre_norm"])
	}
	if first.Cells["price"] != 29.9 {
		t.Errorf("Expected 29.9, got %v", first.Cells["price"])
	}
	if first.Cells["active_site"] != true {
		t.Errorf("Expected true, got %v (type: %T)", first.Cells["active_site"], first.Cells["active_site"])
	}

	second := sheet.Rows[1]
	if second.Row != 4 {
		t.Errorf("Expected row 4, got %d", second.Row)
	}
	// Text cells keep leading zeros
	if second.Cells["id13"] != "0123" {
		t.Errorf("Expected \"0123\", got %v (type: %T)", second.Cells["id13"], second.Cells["id13"])
	}
	// Empty cells of existing columns are present with a nil value
	if v, ok := second.Get("price"); !ok || v != nil {
		t.Errorf("Expected present nil price, got %v, %v", v, ok)
	}
	if second.Has("unknown") {
		t.Errorf("Expected unknown column to be absent")
	}
}

func TestExtractRowsDuplicateHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "slug")
	f.SetCellValue("Sheet1", "B1", "slug")
	f.SetCellValue("Sheet1", "A2", "first")
	f.SetCellValue("Sheet1", "B2", "second")

	sheet, err := ExtractRows(saveAndOpen(t, f), "Sheet1", nil)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(sheet.DuplicateColumns) != 1 || sheet.DuplicateColumns[0] != "slug" {
		t.Errorf("Expected duplicate slug column, got %v", sheet.DuplicateColumns)
	}
	if sheet.Rows[0].Cells["slug"] != "first" {
		t.Errorf("Expected first column to win, got %v", sheet.Rows[0].Cells["slug"])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", ""},
		{"", "x", "y"},
		{"z"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 2 || maxRow != 3 || minCol != 0 || maxCol != 2 {
		t.Errorf("findDataBounds = %d,%d,%d,%d", minRow, maxRow, minCol, maxCol)
	}
	if got, _, _, _ := findDataBounds([][]string{{}, {""}}); got != -1 {
		t.Errorf("findDataBounds on blank rows = %d, expected -1", got)
	}
}
