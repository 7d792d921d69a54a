package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetRef is a resolved pointer to sheet data.
type SheetRef struct {
	// Sheet is the sheet name as stored in the workbook.
	Sheet string
	// Region restricts reading to a range; nil means the whole sheet.
	Region *Region
}

// ResolveRef resolves a sheet pointer written by an editor.
// Accepted forms: a sheet name, a range reference such as
// 'Master Site'!$A$3:$AZ$500, or a workbook defined name referring to one.
func ResolveRef(f *excelize.File, ref string) (SheetRef, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return SheetRef{}, false
	}

	if name, ok := findSheet(f.GetSheetList(), ref); ok {
		return SheetRef{Sheet: name}, true
	}

	if strings.Contains(ref, "!") {
		return resolveRange(f, ref)
	}

	// Look for a defined name
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, ref) {
			return resolveRange(f, dn.RefersTo)
		}
	}

	return SheetRef{}, false
}

func resolveRange(f *excelize.File, ref string) (SheetRef, bool) {
	sheet, region := parseRangeReference(ref)
	name, ok := findSheet(f.GetSheetList(), sheet)
	if !ok {
		return SheetRef{}, false
	}
	return SheetRef{Sheet: name, Region: region}, true
}

// parseRangeReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10. Only the first
// area of a multi-area reference is used.
func parseRangeReference(ref string) (string, *Region) {
	part := strings.TrimSpace(strings.Split(ref, ",")[0])
	part = strings.TrimPrefix(part, "=")

	idx := strings.LastIndex(part, "!")
	if idx < 0 {
		return "", nil
	}
	sheet := strings.Trim(part[:idx], "'")
	return sheet, parseRangeToRegion(part[idx+1:])
}

// parseRangeToRegion parses a range string like $A$1:$D$10 to Region.
func parseRangeToRegion(rangeStr string) *Region {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &Region{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}

// findSheet matches a sheet name exactly, then case-insensitively after trimming.
func findSheet(sheets []string, name string) (string, bool) {
	for _, s := range sheets {
		if s == name {
			return s, true
		}
	}
	want := strings.TrimSpace(name)
	for _, s := range sheets {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return s, true
		}
	}
	return "", false
}
