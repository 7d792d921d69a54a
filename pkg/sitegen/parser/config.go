package parser

import (
	"fmt"
	"strings"
)

// ConfigEntry is one key/value line of the CONFIG sheet.
type ConfigEntry struct {
	Key   string
	Value any
	Row   int
}

var (
	configKeyLabels   = []string{"key", "cle", "clé"}
	configValueLabels = []string{"value", "valeur"}
)

// ConfigEntries returns the key/value lines of a CONFIG sheet in row order.
// The key and value columns are found by their header label; when either
// is missing the first two columns are used. Lines without a key are skipped.
func ConfigEntries(sheet *Sheet) []ConfigEntry {
	keyCol := pickColumn(sheet.Header, configKeyLabels)
	valCol := pickColumn(sheet.Header, configValueLabels)
	if keyCol == "" || valCol == "" {
		if len(sheet.Header) < 2 {
			return nil
		}
		keyCol, valCol = sheet.Header[0], sheet.Header[1]
	}

	var out []ConfigEntry
	for _, row := range sheet.Rows {
		key := strings.TrimSpace(toString(row.Cells[keyCol]))
		if key == "" {
			continue
		}
		out = append(out, ConfigEntry{Key: key, Value: row.Cells[valCol], Row: row.Row})
	}
	return out
}

func pickColumn(header []string, labels []string) string {
	for _, h := range header {
		norm := strings.ToLower(strings.TrimSpace(h))
		for _, l := range labels {
			if norm == l {
				return h
			}
		}
	}
	return ""
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
