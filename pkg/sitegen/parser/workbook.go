package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates a requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Sheet names of the editorial workbook.
const (
	SheetConfig      = "CONFIG"
	SheetPages       = "PAGES"
	SheetCollections = "COLLECTIONS"
	SheetJournals    = "REVUES"
	SheetContacts    = "CONTACTS"
)

// catalogSheetNames are tried in order when CONFIG does not point at the catalog.
var catalogSheetNames = []string{"Master_Site", "Master", "CATALOGUE", "LIVRES", "TITRES"}

// Workbook is an open editorial workbook.
type Workbook struct {
	f    *excelize.File
	name string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f, name: filepath.Base(path)}, nil
}

// Name returns the workbook file name (no path).
func (w *Workbook) Name() string {
	return w.name
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Read reads a whole sheet by name. Names match case-insensitively when
// no exact match exists.
func (w *Workbook) Read(name string) (*Sheet, error) {
	actual, ok := findSheet(w.f.GetSheetList(), name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return ExtractRows(w.f, actual, nil)
}

// ReadOptional reads a sheet and returns nil without error when it is absent.
func (w *Workbook) ReadOptional(name string) (*Sheet, error) {
	sheet, err := w.Read(name)
	if errors.Is(err, ErrSheetNotFound) {
		return nil, nil
	}
	return sheet, err
}

// ReadCatalog reads the catalog sheet. pointer is the explicit CONFIG
// pointer (sheet name, range or defined name); when empty the sheet is
// located by naming convention.
func (w *Workbook) ReadCatalog(pointer string) (*Sheet, error) {
	ref, err := w.LocateCatalog(pointer)
	if err != nil {
		return nil, err
	}
	return ExtractRows(w.f, ref.Sheet, ref.Region)
}

// LocateCatalog resolves the catalog sheet reference.
func (w *Workbook) LocateCatalog(pointer string) (SheetRef, error) {
	if strings.TrimSpace(pointer) != "" {
		ref, ok := ResolveRef(w.f, pointer)
		if !ok {
			return SheetRef{}, fmt.Errorf("%w: catalog sheet %q named in CONFIG", ErrSheetNotFound, pointer)
		}
		return ref, nil
	}

	sheets := w.f.GetSheetList()
	for _, candidate := range catalogSheetNames {
		if name, ok := findSheet(sheets, candidate); ok {
			return SheetRef{Sheet: name}, nil
		}
	}
	// Fall back to any sheet following the Master_* convention
	for _, s := range sheets {
		if strings.HasPrefix(strings.ToLower(s), "master") {
			return SheetRef{Sheet: s}, nil
		}
	}
	return SheetRef{}, fmt.Errorf("%w: no catalog sheet (expected one of %s)", ErrSheetNotFound, strings.Join(catalogSheetNames, ", "))
}
