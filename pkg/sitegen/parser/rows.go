// Package parser reads workbook sheets into raw rows keyed by column label.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRow is one data row of a sheet.
// Cells is keyed by the column label exactly as typed in the header row;
// a label present in Columns but holding no value maps to nil.
type RawRow struct {
	// Sheet is the sheet the row was read from.
	Sheet string
	// Row is the 1-based row number in the sheet.
	Row int
	// Cells maps column label to cell value: string, int64, float64, bool or nil.
	Cells map[string]any
}

// Has reports whether the sheet has a column with the given label.
func (r RawRow) Has(label string) bool {
	_, ok := r.Cells[label]
	return ok
}

// Get returns the value under label and whether the column exists.
func (r RawRow) Get(label string) (any, bool) {
	v, ok := r.Cells[label]
	return v, ok
}

// Sheet is the tabular content of one worksheet.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string
	// Header contains the column labels in sheet order, empty labels dropped.
	Header []string
	// HeaderRow is the 1-based row number of the header.
	HeaderRow int
	// Rows contains the non-blank data rows below the header.
	Rows []RawRow
	// DuplicateColumns lists labels that appear more than once; the first wins.
	DuplicateColumns []string
}

// ExtractRows reads a sheet, optionally restricted to region.
// The first non-empty row inside the region is the header.
func ExtractRows(f *excelize.File, sheetName string, region *Region) (*Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Name: sheetName}
	rowOffset, colOffset := 0, 0
	if region != nil {
		rows = region.clip(rows)
		rowOffset, colOffset = region.R1-1, region.C1-1
	}

	headerIdx, lastIdx, _, _ := findDataBounds(rows)
	if headerIdx < 0 {
		return sheet, nil
	}
	sheet.HeaderRow = headerIdx + 1 + rowOffset

	// Column index -> label
	labels := make(map[int]string)
	seen := make(map[string]bool)
	for colIdx, cell := range rows[headerIdx] {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if seen[cell] {
			sheet.DuplicateColumns = append(sheet.DuplicateColumns, cell)
			continue
		}
		seen[cell] = true
		labels[colIdx] = cell
		sheet.Header = append(sheet.Header, cell)
	}

	for rowIdx := headerIdx + 1; rowIdx <= lastIdx; rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 + rowOffset
		cells := make(map[string]any, len(labels))
		hasData := false

		for colIdx, label := range labels {
			cells[label] = nil
			if colIdx >= len(row) || row[colIdx] == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1+colOffset, rowNum)
			if err != nil {
				return nil, err
			}
			v := typedValue(f, sheetName, cellName, row[colIdx])
			if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
				// whitespace-only cells still count as an explicit value
				cells[label] = s
				continue
			}
			cells[label] = v
			hasData = true
		}

		if hasData {
			sheet.Rows = append(sheet.Rows, RawRow{Sheet: sheetName, Row: rowNum, Cells: cells})
		}
	}

	return sheet, nil
}

// typedValue converts a raw cell string according to the stored cell type.
// Text cells stay strings so that identifiers such as "0123" keep their zeros.
func typedValue(f *excelize.File, sheetName, cellName, raw string) any {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return parseValue(raw)
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, nil for "", or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
