package sitegen

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/purh/sitegen/pkg/sitegen/catalog"
	"github.com/purh/sitegen/pkg/sitegen/covers"
	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/onix"
	"github.com/purh/sitegen/pkg/sitegen/output"
	"github.com/purh/sitegen/pkg/sitegen/parser"
	"github.com/purh/sitegen/pkg/sitegen/render"
	"github.com/purh/sitegen/pkg/sitegen/schema"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a successful build.
type Result struct {
	Catalog   *models.Catalog
	Report    *diag.Report
	OutputDir string
	// ONIXIssues lists the QA findings of the ONIX export, if it ran.
	ONIXIssues []onix.Issue
}

// Build reads the workbook at path and writes the outputs selected by opts.
//
// Fatal errors (missing mandatory sheet, duplicate id13, duplicate active
// slug) are returned before anything is written. Soft anomalies end up in
// the report and in validation.csv.
func Build(path string, opts Options) (*Result, error) {
	if opts.Mode == "" {
		opts.Mode = ModeSite
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	report := diag.NewReport()
	log := slog.With("run_id", report.RunID)

	cat, placeholder, err := load(path, opts.CoversDir, report)
	if err != nil {
		return nil, err
	}

	res := &Result{Catalog: cat, Report: report, OutputDir: opts.OutputDir}
	if err := writeOutputs(res, placeholder, opts); err != nil {
		return nil, NewBuildError("outputs", err)
	}

	var csv bytes.Buffer
	if err := report.WriteCSV(&csv); err != nil {
		return nil, NewBuildError("report", err)
	}
	if err := output.WriteFile(filepath.Join(opts.OutputDir, ValidationFile), csv.Bytes()); err != nil {
		return nil, NewBuildError("report", err)
	}

	s := report.Summary()
	log.Info("build finished",
		"mode", opts.Mode,
		"output", opts.OutputDir,
		"titles", len(cat.Titles),
		"warnings", s.Warnings,
		"excluded", s.Excluded)
	return res, nil
}

// load reads the workbook and builds the validated catalog without
// writing anything. It also returns the placeholder cover.
func load(path, coversDir string, report *diag.Report) (*models.Catalog, models.Cover, error) {
	wb, err := parser.Open(path)
	if err != nil {
		return nil, models.Cover{}, NewBuildError("workbook", err)
	}
	defer wb.Close()

	configSheet, err := wb.Read(parser.SheetConfig)
	if err != nil {
		return nil, models.Cover{}, NewBuildError("config", missing(err))
	}
	site := catalog.ParseSiteConfig(parser.ConfigEntries(configSheet), report)

	resolver, err := covers.NewResolver(coversDir, site.CoverPlaceholder)
	if err != nil {
		return nil, models.Cover{}, NewBuildError("covers", err)
	}

	var sheets catalog.Sheets
	if sheets.Titles, err = wb.ReadCatalog(site.BooksSheet); err != nil {
		return nil, models.Cover{}, NewBuildError("catalog", missing(err))
	}
	optional := []struct {
		name string
		dst  **parser.Sheet
	}{
		{parser.SheetCollections, &sheets.Collections},
		{parser.SheetJournals, &sheets.Journals},
		{parser.SheetPages, &sheets.Pages},
		{parser.SheetContacts, &sheets.Contacts},
	}
	for _, o := range optional {
		if *o.dst, err = wb.ReadOptional(o.name); err != nil {
			return nil, models.Cover{}, NewBuildError("workbook", fmt.Errorf("read %s: %w", o.name, err))
		}
	}

	cat, err := catalog.NewBuilder(schema.DefaultTables(), site, resolver, report).Build(sheets)
	if err != nil {
		return nil, models.Cover{}, NewBuildError("catalog", err)
	}
	return cat, resolver.Placeholder(), nil
}

// writeOutputs runs the output stages concurrently over the read-only catalog.
func writeOutputs(res *Result, placeholder models.Cover, opts Options) error {
	cat := res.Catalog
	var g errgroup.Group

	g.Go(func() error {
		if err := output.WriteCatalogue(opts.OutputDir, cat); err != nil {
			return fmt.Errorf("catalogue.json: %w", err)
		}
		return nil
	})

	if opts.Mode == ModeValidate {
		return g.Wait()
	}

	g.Go(func() error {
		r, err := render.New(render.MarkdownConverter{})
		if err != nil {
			return err
		}
		if err := r.Render(opts.OutputDir, cat); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	})

	if opts.ShouldCopyCovers() {
		g.Go(func() error {
			if err := covers.Copy(opts.OutputDir, placeholder, cat.Titles); err != nil {
				return fmt.Errorf("covers: %w", err)
			}
			return nil
		})
	}

	if opts.ShouldExportONIX() {
		doc := onix.Export(cat, onix.Options{Now: opts.Now})
		res.ONIXIssues = doc.Issues
		g.Go(func() error {
			if err := doc.WriteFiles(opts.OutputDir); err != nil {
				return fmt.Errorf("onix: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// missing maps an absent sheet to ErrMissingSheet, keeping the detail.
func missing(err error) error {
	if errors.Is(err, parser.ErrSheetNotFound) {
		return fmt.Errorf("%w: %v", ErrMissingSheet, err)
	}
	return err
}
