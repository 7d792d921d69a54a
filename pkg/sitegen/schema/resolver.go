package schema

import (
	"sort"

	"github.com/purh/sitegen/pkg/sitegen/parser"
)

// Cell is the raw value that satisfied a canonical field.
type Cell struct {
	// Column is the column label the value was read from.
	Column string
	// Value is the untyped cell value; nil when the cell is empty.
	Value any
}

// Resolved is a raw row expressed in canonical field names.
// A field missing from Fields had no alias column in the sheet, which is
// different from a present field whose Value is nil.
type Resolved struct {
	Sheet  string
	Row    int
	Fields map[string]Cell
	// Unknown lists column labels that match no alias, sorted.
	Unknown []string
}

// Lookup returns the cell of a canonical field.
func (r Resolved) Lookup(field string) (Cell, bool) {
	c, ok := r.Fields[field]
	return c, ok
}

// Present reports whether a column for field exists in the sheet.
func (r Resolved) Present(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// Resolve maps a raw row onto canonical fields. For each field the first
// alias whose column exists wins, even when that cell is empty.
func (t Table) Resolve(row parser.RawRow) Resolved {
	out := Resolved{
		Sheet:  row.Sheet,
		Row:    row.Row,
		Fields: make(map[string]Cell, len(t.Fields)),
	}
	known := make(map[string]bool)
	for _, f := range t.Fields {
		for _, alias := range f.Aliases {
			known[alias] = true
		}
		for _, alias := range f.Aliases {
			if v, ok := row.Get(alias); ok {
				out.Fields[f.Name] = Cell{Column: alias, Value: v}
				break
			}
		}
	}
	for label := range row.Cells {
		if !known[label] {
			out.Unknown = append(out.Unknown, label)
		}
	}
	sort.Strings(out.Unknown)
	return out
}
