// Package catalog assembles the canonical catalog model from the sheets of
// one workbook and validates it.
//
// Construction runs in row order on a single goroutine. The returned
// catalog is never modified afterwards, so output stages may share it.
package catalog

import (
	"errors"
	"log/slog"
	"regexp"
	"sort"

	"github.com/purh/sitegen/pkg/sitegen/derive"
	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/normalize"
	"github.com/purh/sitegen/pkg/sitegen/parser"
	"github.com/purh/sitegen/pkg/sitegen/schema"
)

// ErrNoCatalogSheet indicates Build was called without a catalog sheet.
var ErrNoCatalogSheet = errors.New("catalog sheet is required")

// CoverResolver maps a declared cover filename to an image. On failure it
// returns the placeholder cover and the reason.
type CoverResolver interface {
	Resolve(file string) (models.Cover, error)
}

// Sheets holds the workbook sheets the catalog is built from.
// Optional sheets are nil when absent from the workbook.
type Sheets struct {
	Titles      *parser.Sheet
	Collections *parser.Sheet
	Journals    *parser.Sheet
	Pages       *parser.Sheet
	Contacts    *parser.Sheet
}

// Builder builds a catalog. A Builder is used for a single run.
type Builder struct {
	tables schema.Tables
	site   models.SiteConfig
	covers CoverResolver
	report *diag.Report
}

// NewBuilder creates a builder. Soft anomalies go to report.
func NewBuilder(tables schema.Tables, site models.SiteConfig, covers CoverResolver, report *diag.Report) *Builder {
	return &Builder{tables: tables, site: site, covers: covers, report: report}
}

// Build assembles and validates the catalog. The returned error is a
// *ValidationError when the catalog breaks a uniqueness invariant.
func (b *Builder) Build(s Sheets) (*models.Catalog, error) {
	if s.Titles == nil {
		return nil, ErrNoCatalogSheet
	}

	all := b.readTitles(s.Titles)
	if err := Validate(s.Titles.Name, all); err != nil {
		return nil, err
	}

	collections := b.readCollections(s.Collections)
	journals := b.readJournals(s.Journals, collections)

	titles := make([]models.Title, 0, len(all))
	for _, t := range all {
		if t.Active {
			titles = append(titles, t)
		}
	}
	b.attach(s.Titles.Name, titles, collections, journals)
	SortTitles(titles)

	for _, t := range titles {
		if c, ok := collections[t.CollectionID]; ok {
			c.Titles = append(c.Titles, t.ID13)
			collections[t.CollectionID] = c
		} else if j, ok := journals[t.CollectionID]; ok {
			j.Titles = append(j.Titles, t.ID13)
			journals[t.CollectionID] = j
		}
	}

	cat := &models.Catalog{
		Version:     models.SchemaVersion,
		Site:        b.site,
		Titles:      titles,
		Collections: collections,
		Journals:    journals,
		Pages:       b.readPages(s.Pages),
		Contacts:    b.readContacts(s.Contacts),
	}
	slog.Info("catalog built",
		"sheet", s.Titles.Name,
		"rows", len(s.Titles.Rows),
		"titles", len(cat.Titles),
		"collections", len(cat.Collections),
		"journals", len(cat.Journals),
		"pages", len(cat.Pages))
	return cat, nil
}

// SortTitles orders titles featured first, then by ascending sort_order
// with unset values last. The sort is stable, so ties keep row order.
func SortTitles(titles []models.Title) {
	sort.SliceStable(titles, func(i, j int) bool {
		a, c := titles[i], titles[j]
		if a.Featured != c.Featured {
			return a.Featured
		}
		switch {
		case a.SortOrder == nil:
			return false
		case c.SortOrder == nil:
			return true
		}
		return *a.SortOrder < *c.SortOrder
	})
}

// readTitles returns every identified row of the catalog sheet in row
// order. Inactive titles carry only their identity.
func (b *Builder) readTitles(sheet *parser.Sheet) []models.Title {
	table := b.tables.Titles
	b.reportColumns(sheet, table)

	resolved := make([]schema.Resolved, len(sheet.Rows))
	var explicit []string
	for i, row := range sheet.Rows {
		resolved[i] = table.Resolve(row)
		if cell, ok := resolved[i].Lookup(schema.FieldSlug); ok {
			if s := normalize.CleanText(cell.Value, false); s != "" {
				explicit = append(explicit, s)
			}
		}
	}
	slugs := derive.NewSlugAllocator(explicit)

	var out []models.Title
	for _, r := range resolved {
		rec := normalize.NewRecord(table, r, b.report)
		id := rec.ID13(schema.FieldID13)
		rec.Identify(id)
		if id == "" {
			b.report.Exclude(rec.Loc(), "no id13")
			continue
		}

		act := schema.ResolveActivation(r, normalize.ParseBool)
		t := models.Title{ID13: id, Row: r.Row, Active: act.Active}
		if !act.Active {
			b.report.Exclude(rec.Loc(), act.Reason)
			t.Slug = rec.Text(schema.FieldSlug)
			out = append(out, t)
			continue
		}
		b.fillTitle(&t, rec, slugs)
		out = append(out, t)
	}
	return out
}

func (b *Builder) fillTitle(t *models.Title, rec *normalize.Record, slugs *derive.SlugAllocator) {
	loc := rec.Loc()

	t.Title = rec.Text(schema.FieldTitle)
	if t.Title == "" {
		b.report.Warn(loc, schema.FieldTitle, "", "title is empty")
	}
	t.Subtitle = rec.Text(schema.FieldSubtitle)
	t.Credit = rec.Text(schema.FieldCredit)
	t.Contributors = rec.Text(schema.FieldContributors)
	t.DeclaredCollection = rec.Text(schema.FieldCollection)
	t.CollectionNumber = rec.Text(schema.FieldCollectionNumber)
	t.PublicationDate = rec.Date(schema.FieldPublicationDate)

	if explicit := rec.Text(schema.FieldSlug); explicit != "" {
		t.Slug = slugs.Claim(explicit)
	} else {
		t.Slug = slugs.Generate(t.Title, t.ID13)
	}

	t.Price = derive.EffectivePrice(derive.PriceInput{
		Price:           b.amount(rec, schema.FieldPrice),
		PriceTTC:        b.amount(rec, schema.FieldPriceTTC),
		Currency:        rec.Text(schema.FieldCurrency),
		DefaultCurrency: b.site.Currency,
	})

	file := rec.Text(schema.FieldCoverFile)
	cover, err := b.covers.Resolve(file)
	if err != nil {
		b.report.Warn(loc, schema.FieldCoverFile, file, err.Error()+", placeholder used")
	}
	t.Cover = cover
	t.CoverURL = rec.Text(schema.FieldCoverURL)

	status := rec.Text(schema.FieldAvailability)
	label, ok := derive.AvailabilityLabel(rec.Text(schema.FieldAvailabilityLabel), status)
	if !ok {
		b.report.Warn(loc, schema.FieldAvailability, status, "unrecognized availability status")
	}
	t.AvailabilityLabel = label
	t.Availability = status
	if s, ok := derive.ParseStatus(status); ok {
		t.Availability = string(s)
	}

	t.ShortDescription = rec.Text(schema.FieldShortDescription)
	t.LongDescription = rec.Text(schema.FieldLongDescription)
	t.TableOfContents = rec.Text(schema.FieldTableOfContents)
	t.Language = rec.Text(schema.FieldLanguage)

	if f := rec.Bool(schema.FieldFeatured); f != nil {
		t.Featured = *f
	}
	t.SortOrder = rec.Number(schema.FieldSortOrder)
	t.Format = b.format(rec)

	subjects := models.Subjects{
		Thema: rec.Text(schema.FieldThema),
		CLIL:  rec.Text(schema.FieldCLIL),
		BISAC: rec.Text(schema.FieldBISAC),
	}
	if subjects != (models.Subjects{}) {
		t.Subjects = &subjects
	}
}

// amount reads a price column; negative amounts are reported and dropped.
func (b *Builder) amount(rec *normalize.Record, field string) *float64 {
	v := rec.Number(field)
	if v != nil && *v < 0 {
		b.report.Warn(rec.Loc(), field, normalize.CleanText(rec.Raw(field), true), "negative price")
		return nil
	}
	return v
}

var codeSeparators = regexp.MustCompile(`[;,]\s*`)

func (b *Builder) format(rec *normalize.Record) *models.Format {
	f := models.Format{
		Code:        rec.Text(schema.FieldFormatCode),
		WidthCm:     b.measure(rec, schema.FieldWidth),
		HeightCm:    b.measure(rec, schema.FieldHeight),
		ThicknessCm: b.measure(rec, schema.FieldThickness),
		WeightG:     b.measure(rec, schema.FieldWeight),
	}
	for _, code := range codeSeparators.Split(rec.Text(schema.FieldFormatDetail), -1) {
		if code != "" {
			f.Details = append(f.Details, code)
		}
	}
	if n := b.measure(rec, schema.FieldPages); n != nil {
		pages := int(*n)
		f.Pages = &pages
	}
	if f.IsZero() {
		return nil
	}
	return &f
}

func (b *Builder) measure(rec *normalize.Record, field string) *float64 {
	v := rec.Number(field)
	if v != nil && *v <= 0 {
		b.report.Info(rec.Loc(), field, normalize.CleanText(rec.Raw(field), true), "not a positive value, ignored")
		return nil
	}
	return v
}

// attach resolves each title's declared collection against collections,
// then journals. Unresolved references leave the title uncategorized.
func (b *Builder) attach(sheet string, titles []models.Title, collections map[string]models.Collection, journals map[string]models.Journal) {
	for i := range titles {
		t := &titles[i]
		id := t.DeclaredCollection
		if id == "" {
			continue
		}
		_, isCollection := collections[id]
		_, isJournal := journals[id]
		if isCollection || isJournal {
			t.CollectionID = id
			continue
		}
		b.report.Warn(diag.Loc{Sheet: sheet, Row: t.Row, Record: t.ID13}, schema.FieldCollection, id,
			"unknown collection or journal, title left uncategorized")
	}
}

// reportColumns records duplicate and unrecognized header labels once per sheet.
func (b *Builder) reportColumns(sheet *parser.Sheet, table schema.Table) {
	loc := diag.Loc{Sheet: sheet.Name, Row: sheet.HeaderRow}
	for _, label := range sheet.DuplicateColumns {
		b.report.Warn(loc, "", label, "duplicate column, first one used")
	}
	if len(sheet.Rows) == 0 {
		return
	}
	for _, label := range table.Resolve(sheet.Rows[0]).Unknown {
		b.report.Info(loc, "", label, "column not recognized, ignored")
	}
}
