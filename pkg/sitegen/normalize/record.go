package normalize

import (
	"fmt"

	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/schema"
)

// Record normalizes the fields of one resolved row. Values that cannot be
// normalized are reported and come back absent; nothing here fails.
type Record struct {
	table  schema.Table
	row    schema.Resolved
	report *diag.Report
	loc    diag.Loc
}

// NewRecord binds a resolved row to its alias table and the run report.
func NewRecord(table schema.Table, row schema.Resolved, report *diag.Report) *Record {
	return &Record{
		table:  table,
		row:    row,
		report: report,
		loc:    diag.Loc{Sheet: row.Sheet, Row: row.Row},
	}
}

// Identify sets the record identity used in later reports.
func (r *Record) Identify(id string) {
	r.loc.Record = id
}

// Loc returns the location of the record for reporting.
func (r *Record) Loc() diag.Loc {
	return r.loc
}

// Resolved returns the underlying resolved row.
func (r *Record) Resolved() schema.Resolved {
	return r.row
}

// Present reports whether the sheet has a column for field.
func (r *Record) Present(field string) bool {
	return r.row.Present(field)
}

// Raw returns the raw value of field, nil when absent or empty.
func (r *Record) Raw(field string) any {
	return r.row.Fields[field].Value
}

// Text returns the field as text, cleaned according to its kind.
func (r *Record) Text(field string) string {
	cell, ok := r.row.Lookup(field)
	if !ok {
		return ""
	}
	return CleanText(cell.Value, r.kind(field) == schema.KindText)
}

// Bool returns the field as a flag, nil when absent, empty or unreadable.
func (r *Record) Bool(field string) *bool {
	cell, ok := r.row.Lookup(field)
	if !ok || isBlank(cell.Value) {
		return nil
	}
	v, ok := ParseBool(cell.Value)
	if !ok {
		r.report.Warn(r.loc, field, display(cell.Value), "not a recognized yes/no value")
		return nil
	}
	return &v
}

// Number returns the field as a number, nil when absent, empty or not numeric.
func (r *Record) Number(field string) *float64 {
	cell, ok := r.row.Lookup(field)
	if !ok || isBlank(cell.Value) {
		return nil
	}
	v, ok := ParseNumber(cell.Value)
	if !ok {
		r.report.Warn(r.loc, field, display(cell.Value), "not a number")
		return nil
	}
	return &v
}

// Date returns the field as a date. Unparseable dates are kept as display
// text and reported.
func (r *Record) Date(field string) *models.Date {
	cell, ok := r.row.Lookup(field)
	if !ok || isBlank(cell.Value) {
		return nil
	}
	d, ok := ParseDate(cell.Value)
	if !ok {
		r.report.Info(r.loc, field, display(cell.Value), "date not understood, kept as text")
	}
	return &d
}

// ID13 returns the field as a 13-digit identifier. Other values are kept
// as typed and reported.
func (r *Record) ID13(field string) string {
	cell, ok := r.row.Lookup(field)
	if !ok || isBlank(cell.Value) {
		return ""
	}
	id, ok := ParseID13(cell.Value)
	if !ok {
		r.report.Info(r.loc, field, display(cell.Value), "not a 13-digit identifier")
	}
	return id
}

func (r *Record) kind(field string) schema.Kind {
	if spec, ok := r.table.Spec(field); ok {
		return spec.Kind
	}
	return schema.KindCode
}

func isBlank(v any) bool {
	return CleanText(v, true) == ""
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
