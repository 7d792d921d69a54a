package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

var (
	// ErrDuplicateID13 indicates two catalog rows share an id13.
	ErrDuplicateID13 = errors.New("duplicate id13")
	// ErrDuplicateSlug indicates two active titles share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// Issue is one fatal inconsistency: a value shared by several rows.
type Issue struct {
	// Err is the sentinel describing the issue.
	Err   error
	Sheet string
	Value string
	// Rows lists every offending 1-based row, ascending.
	Rows []int
}

func (i Issue) Error() string {
	rows := make([]string, len(i.Rows))
	for k, r := range i.Rows {
		rows[k] = strconv.Itoa(r)
	}
	return fmt.Sprintf("%v %q in sheet %s, rows %s", i.Err, i.Value, i.Sheet, strings.Join(rows, ", "))
}

func (i Issue) Unwrap() error {
	return i.Err
}

// ValidationError aggregates every fatal issue found in the assembled catalog.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "catalog validation failed: " + e.Issues[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "catalog validation failed with %d issues:", len(e.Issues))
	for _, i := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(i.Error())
	}
	return b.String()
}

// Unwrap exposes every issue so errors.Is matches each sentinel.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.Issues))
	for k, i := range e.Issues {
		out[k] = i
	}
	return out
}

// Validate checks the invariants that make a catalog unpublishable:
// id13 unique across every row, active or not, and slug unique among
// active titles. all holds every identified title in row order.
func Validate(sheet string, all []models.Title) error {
	var issues []Issue
	issues = append(issues, duplicates(sheet, ErrDuplicateID13, all, func(t models.Title) (string, bool) {
		return t.ID13, t.ID13 != ""
	})...)
	issues = append(issues, duplicates(sheet, ErrDuplicateSlug, all, func(t models.Title) (string, bool) {
		return t.Slug, t.Active && t.Slug != ""
	})...)
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func duplicates(sheet string, sentinel error, titles []models.Title, key func(models.Title) (string, bool)) []Issue {
	rows := make(map[string][]int)
	var order []string
	for _, t := range titles {
		k, ok := key(t)
		if !ok {
			continue
		}
		if _, seen := rows[k]; !seen {
			order = append(order, k)
		}
		rows[k] = append(rows[k], t.Row)
	}

	var out []Issue
	for _, k := range order {
		if len(rows[k]) < 2 {
			continue
		}
		r := rows[k]
		sort.Ints(r)
		out = append(out, Issue{Err: sentinel, Sheet: sheet, Value: k, Rows: r})
	}
	return out
}
