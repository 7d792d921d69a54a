package onix

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strconv"

	"github.com/purh/sitegen/pkg/sitegen/output"
)

// Output paths, relative to the site root.
const (
	FeedPath = "onix/onix.xml"
	QAPath   = "onix/onix_QA.csv"
)

// QACSV renders the QA issues as CSV.
func (d *Document) QACSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"row", "isbn13", "title", "issue"}); err != nil {
		return nil, err
	}
	for _, i := range d.Issues {
		if err := w.Write([]string{strconv.Itoa(i.Row), i.ISBN, i.Title, i.Issue}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// WriteFiles writes the feed and its QA report under outDir.
func (d *Document) WriteFiles(outDir string) error {
	feed, err := d.XML()
	if err != nil {
		return err
	}
	if err := output.WriteFile(filepath.Join(outDir, filepath.FromSlash(FeedPath)), feed); err != nil {
		return err
	}
	qa, err := d.QACSV()
	if err != nil {
		return err
	}
	return output.WriteFile(filepath.Join(outDir, filepath.FromSlash(QAPath)), qa)
}
