// Package diag accumulates the soft anomalies of one run into a single report.
//
// Nothing in this package aborts a run: fatal conditions are returned as
// errors by the components that detect them.
package diag

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Severity classifies an anomaly.
type Severity string

const (
	// SeverityWarning marks a value that was dropped or replaced.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks a value kept as-is but worth a look.
	SeverityInfo Severity = "info"
	// SeverityExcluded marks a title left out of public artifacts.
	SeverityExcluded Severity = "excluded"
)

// Loc identifies the workbook record an anomaly belongs to.
type Loc struct {
	Sheet  string
	Row    int
	Record string
}

// Anomaly is one soft issue found during the run.
type Anomaly struct {
	Severity Severity
	Loc
	Field  string
	Value  string
	Reason string
}

// Report collects anomalies in the order they are found.
// It is safe for concurrent use by output stages.
type Report struct {
	// RunID identifies the run in logs and in validation.csv.
	RunID string

	mu        sync.Mutex
	anomalies []Anomaly
}

// NewReport creates an empty report with a fresh run id.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Add records an anomaly.
func (r *Report) Add(a Anomaly) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.anomalies = append(r.anomalies, a)
}

// Warn records a warning for field at loc.
func (r *Report) Warn(loc Loc, field, value, reason string) {
	r.Add(Anomaly{Severity: SeverityWarning, Loc: loc, Field: field, Value: value, Reason: reason})
}

// Info records an informational anomaly for field at loc.
func (r *Report) Info(loc Loc, field, value, reason string) {
	r.Add(Anomaly{Severity: SeverityInfo, Loc: loc, Field: field, Value: value, Reason: reason})
}

// Exclude records that the record at loc is left out of public artifacts.
func (r *Report) Exclude(loc Loc, reason string) {
	r.Add(Anomaly{Severity: SeverityExcluded, Loc: loc, Reason: reason})
}

// Anomalies returns a copy of the recorded anomalies.
func (r *Report) Anomalies() []Anomaly {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Anomaly, len(r.anomalies))
	copy(out, r.anomalies)
	return out
}

// Summary counts anomalies per severity.
type Summary struct {
	Warnings int
	Infos    int
	Excluded int
}

// Summary returns anomaly counts.
func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s Summary
	for _, a := range r.anomalies {
		switch a.Severity {
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		case SeverityExcluded:
			s.Excluded++
		}
	}
	return s
}

// FieldCount is the number of warnings raised for one field.
type FieldCount struct {
	Field string
	Count int
}

// CountByField returns warning counts per field, most frequent first.
func (r *Report) CountByField() []FieldCount {
	r.mu.Lock()
	counts := make(map[string]int)
	for _, a := range r.anomalies {
		if a.Severity == SeverityWarning && a.Field != "" {
			counts[a.Field]++
		}
	}
	r.mu.Unlock()

	out := make([]FieldCount, 0, len(counts))
	for f, n := range counts {
		out = append(out, FieldCount{Field: f, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Field < out[j].Field
	})
	return out
}
