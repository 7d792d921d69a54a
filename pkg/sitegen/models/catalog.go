// Package models defines the canonical catalog model shared by every output stage.
package models

// SchemaVersion is the version of the serialized catalog shape.
// Bump it whenever a field is renamed or removed from the JSON form.
const SchemaVersion = 1

// Catalog is the aggregate root produced from one workbook.
// It is read-only once built.
type Catalog struct {
	// Version is the schema version of this document.
	Version int `json:"version"`
	// Site holds the public part of the CONFIG sheet.
	Site SiteConfig `json:"site"`
	// Titles contains active titles in display order.
	Titles []Title `json:"titles"`
	// Collections maps collection id to collection.
	Collections map[string]Collection `json:"collections"`
	// Journals maps journal id to journal.
	Journals map[string]Journal `json:"journals"`
	// Pages contains fixed editorial pages ordered by their ordering key.
	Pages []Page `json:"pages"`
	// Contacts contains the CONTACTS sheet in row order.
	Contacts []Contact `json:"contacts"`
}

// TitleBySlug returns the active title with the given slug.
func (c *Catalog) TitleBySlug(slug string) (Title, bool) {
	for _, t := range c.Titles {
		if t.Slug == slug {
			return t, true
		}
	}
	return Title{}, false
}

// TitlesOf returns the titles referenced by ids, in catalog order.
func (c *Catalog) TitlesOf(ids []string) []Title {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Title
	for _, t := range c.Titles {
		if want[t.ID13] {
			out = append(out, t)
		}
	}
	return out
}

// MenuPages returns the pages flagged for the navigation menu.
func (c *Catalog) MenuPages() []Page {
	var out []Page
	for _, p := range c.Pages {
		if p.Menu {
			out = append(out, p)
		}
	}
	return out
}
