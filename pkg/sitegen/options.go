// Package sitegen turns an editorial workbook into a static publishing site.
package sitegen

import "time"

// Mode represents the build mode.
type Mode string

const (
	// ModeSite writes the full site: pages, covers, catalogue.json and the ONIX feed.
	ModeSite Mode = "site"
	// ModeValidate writes only catalogue.json and validation.csv.
	ModeValidate Mode = "validate"
)

// ValidationFile is the soft-anomaly report written at the output root.
const ValidationFile = "validation.csv"

// Options configures build behavior.
type Options struct {
	// Mode specifies the build mode (site, validate).
	Mode Mode
	// OutputDir is the root of the generated tree.
	OutputDir string
	// CoversDir holds the cover images named in the catalog sheet.
	CoversDir string
	// ExportONIX specifies whether to write the ONIX feed.
	// If nil, defaults to true for site mode, false otherwise.
	ExportONIX *bool
	// CopyCovers specifies whether to copy cover images into the output.
	// If nil, defaults to true for site mode, false otherwise.
	CopyCovers *bool
	// Now is the clock used for the ONIX header. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the default options (site mode).
func DefaultOptions() Options {
	return Options{
		Mode:      ModeSite,
		OutputDir: "site",
		CoversDir: "covers",
	}
}

// ShouldExportONIX returns whether the ONIX feed is written.
func (o Options) ShouldExportONIX() bool {
	if o.ExportONIX != nil {
		return *o.ExportONIX && o.Mode != ModeValidate
	}
	return o.Mode != ModeValidate
}

// ShouldCopyCovers returns whether cover images are copied.
func (o Options) ShouldCopyCovers() bool {
	if o.CopyCovers != nil {
		return *o.CopyCovers && o.Mode != ModeValidate
	}
	return o.Mode != ModeValidate
}

// Valid reports whether the mode is known.
func (m Mode) Valid() bool {
	return m == ModeSite || m == ModeValidate
}

// BoolPtr returns a pointer to b, for the optional switches of Options.
func BoolPtr(b bool) *bool {
	return &b
}
