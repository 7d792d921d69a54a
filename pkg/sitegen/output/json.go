// Package output serializes the catalog model into the machine-readable
// artifacts of the site.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

// CataloguePath is the site-relative path of the JSON catalog.
const CataloguePath = "assets/catalogue.json"

// ToJSON serializes the catalog. Map keys are sorted and slices keep model
// order, so identical catalogs always give identical bytes.
func ToJSON(cat *models.Catalog, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(cat); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCatalogue writes the pretty-printed catalog to CataloguePath under outDir.
func WriteCatalogue(outDir string, cat *models.Catalog) error {
	data, err := ToJSON(cat, true)
	if err != nil {
		return err
	}
	return WriteFile(filepath.Join(outDir, filepath.FromSlash(CataloguePath)), data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
