package catalog

import (
	"sort"

	"github.com/purh/sitegen/pkg/sitegen/derive"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/normalize"
	"github.com/purh/sitegen/pkg/sitegen/parser"
	"github.com/purh/sitegen/pkg/sitegen/schema"
)

func (b *Builder) records(sheet *parser.Sheet, table schema.Table) []*normalize.Record {
	if sheet == nil {
		return nil
	}
	b.reportColumns(sheet, table)
	out := make([]*normalize.Record, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		out = append(out, normalize.NewRecord(table, table.Resolve(row), b.report))
	}
	return out
}

func (b *Builder) readCollections(sheet *parser.Sheet) map[string]models.Collection {
	out := make(map[string]models.Collection)
	for _, rec := range b.records(sheet, b.tables.Collections) {
		id := rec.Text(schema.FieldID)
		rec.Identify(id)
		if id == "" {
			b.report.Warn(rec.Loc(), schema.FieldID, "", "collection without id, ignored")
			continue
		}
		if _, dup := out[id]; dup {
			b.report.Warn(rec.Loc(), schema.FieldID, id, "duplicate collection id, first row kept")
			continue
		}
		out[id] = models.Collection{
			ID:          id,
			Title:       rec.Text(schema.FieldName),
			Direction:   rec.Text(schema.FieldDirection),
			Description: rec.Text(schema.FieldDescription),
			ISSN:        rec.Text(schema.FieldISSN),
			Titles:      []string{},
			Row:         rec.Resolved().Row,
		}
	}
	return out
}

// readJournals reads the REVUES sheet. A journal id already used by a
// collection is reported and skipped, since collections resolve first.
func (b *Builder) readJournals(sheet *parser.Sheet, collections map[string]models.Collection) map[string]models.Journal {
	out := make(map[string]models.Journal)
	for _, rec := range b.records(sheet, b.tables.Journals) {
		id := rec.Text(schema.FieldID)
		rec.Identify(id)
		switch {
		case id == "":
			b.report.Warn(rec.Loc(), schema.FieldID, "", "journal without id, ignored")
			continue
		case collections[id].ID != "":
			b.report.Warn(rec.Loc(), schema.FieldID, id, "journal id already used by a collection, ignored")
			continue
		case out[id].ID != "":
			b.report.Warn(rec.Loc(), schema.FieldID, id, "duplicate journal id, first row kept")
			continue
		}
		out[id] = models.Journal{
			ID:          id,
			Title:       rec.Text(schema.FieldName),
			ISSN:        rec.Text(schema.FieldISSN),
			EISSN:       rec.Text(schema.FieldEISSN),
			Periodicity: rec.Text(schema.FieldPeriodicity),
			Direction:   rec.Text(schema.FieldDirection),
			Description: rec.Text(schema.FieldDescription),
			URL:         rec.Text(schema.FieldURL),
			Titles:      []string{},
			Row:         rec.Resolved().Row,
		}
	}
	return out
}

// readPages reads the PAGES sheet. Pages are ordered by their ordering
// key, pages without one last in row order. Without a menu column every
// page is listed in the menu.
func (b *Builder) readPages(sheet *parser.Sheet) []models.Page {
	recs := b.records(sheet, b.tables.Pages)

	var explicit []string
	for _, rec := range recs {
		if s := rec.Text(schema.FieldSlug); s != "" {
			explicit = append(explicit, s)
		}
	}
	slugs := derive.NewSlugAllocator(explicit)
	claimed := make(map[string]bool)

	pages := []models.Page{}
	for _, rec := range recs {
		p := models.Page{
			Title: rec.Text(schema.FieldName),
			Body:  rec.Text(schema.FieldBody),
			Order: rec.Number(schema.FieldOrder),
			Menu:  true,
		}
		if p.Title == "" && p.Body == "" {
			continue
		}
		switch s := rec.Text(schema.FieldSlug); {
		case s == "":
			p.Slug = slugs.Generate(p.Title, "page")
		case claimed[s]:
			p.Slug = slugs.Generate(s, "page")
			b.report.Warn(rec.Loc(), schema.FieldSlug, s, "duplicate page slug, renamed to "+p.Slug)
		default:
			p.Slug = slugs.Claim(s)
		}
		claimed[p.Slug] = true
		rec.Identify(p.Slug)

		if rec.Present(schema.FieldMenu) {
			menu := rec.Bool(schema.FieldMenu)
			p.Menu = menu != nil && *menu
		}
		pages = append(pages, p)
	}

	sort.SliceStable(pages, func(i, j int) bool {
		a, c := pages[i].Order, pages[j].Order
		switch {
		case a == nil:
			return false
		case c == nil:
			return true
		}
		return *a < *c
	})
	return pages
}

// readContacts reads the CONTACTS sheet in row order.
func (b *Builder) readContacts(sheet *parser.Sheet) []models.Contact {
	contacts := []models.Contact{}
	for _, rec := range b.records(sheet, b.tables.Contacts) {
		c := models.Contact{
			Name:    rec.Text(schema.FieldContactName),
			Role:    rec.Text(schema.FieldRole),
			Email:   rec.Text(schema.FieldEmail),
			Phone:   rec.Text(schema.FieldPhone),
			Address: rec.Text(schema.FieldAddress),
			URL:     rec.Text(schema.FieldURL),
		}
		if c.Name == "" && c.Email == "" {
			b.report.Info(rec.Loc(), schema.FieldContactName, "", "contact without name or email, ignored")
			continue
		}
		contacts = append(contacts, c)
	}
	return contacts
}
