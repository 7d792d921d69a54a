package schema

// BoolParser normalizes a raw cell to a boolean; ok is false when the
// value is empty or not a recognized token.
type BoolParser func(v any) (value, ok bool)

// Activation is the publication decision for one title.
type Activation struct {
	Active bool
	// Field is the canonical field that decided, empty when none did.
	Field string
	// Reason explains an inactive outcome.
	Reason string
}

// ResolveActivation merges the canonical and legacy activation columns.
//
//  1. The canonical column exists: its value decides. A value that does not
//     normalize, including an empty cell, means inactive.
//  2. Only the legacy column exists: its value decides, inactive when it does
//     not normalize.
//  3. Neither exists: inactive.
//
// Ambiguity always resolves to inactive so that a title is never
// published by accident.
func ResolveActivation(r Resolved, parseBool BoolParser) Activation {
	if cell, ok := r.Lookup(FieldActive); ok {
		return decide(FieldActive, cell, parseBool)
	}
	if cell, ok := r.Lookup(FieldActiveLegacy); ok {
		return decide(FieldActiveLegacy, cell, parseBool)
	}
	return Activation{Reason: "no activation column"}
}

func decide(field string, cell Cell, parseBool BoolParser) Activation {
	v, ok := parseBool(cell.Value)
	if !ok {
		return Activation{Field: field, Reason: "activation column " + cell.Column + " is empty or unreadable"}
	}
	if !v {
		return Activation{Field: field, Reason: "deactivated in column " + cell.Column}
	}
	return Activation{Active: true, Field: field}
}
