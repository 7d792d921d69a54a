package diag

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"run_id", "severity", "sheet", "row", "record", "field", "value", "issue"}

// WriteCSV writes the report as validation.csv for the operator.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range r.Anomalies() {
		row := ""
		if a.Row > 0 {
			row = strconv.Itoa(a.Row)
		}
		rec := []string{r.RunID, string(a.Severity), a.Sheet, row, a.Record, a.Field, a.Value, a.Reason}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
