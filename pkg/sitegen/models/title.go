package models

// Price is a resolved selling price.
type Price struct {
	// Amount is the price including tax.
	Amount float64 `json:"amount"`
	// Currency is the ISO 4217 currency code.
	Currency string `json:"currency"`
	// Source is the canonical field the amount was read from.
	Source string `json:"source"`
}

// Cover is the result of resolving a declared cover file.
type Cover struct {
	// File is the cover filename declared in the workbook.
	File string `json:"file,omitempty"`
	// Path is the site-relative path of the image to display.
	Path string `json:"path"`
	// Missing is true when Path is the placeholder image.
	Missing bool `json:"missing"`
	// Source is the file on disk to copy into the site (not serialized).
	Source string `json:"-"`
}

// Date is a normalized calendar date.
type Date struct {
	// ISO is the date in ISO 8601 calendar form (YYYY-MM-DD, YYYY-MM or YYYY).
	// Empty when the cell could not be parsed.
	ISO string `json:"iso,omitempty"`
	// Display is the text to show to readers.
	Display string `json:"display"`
}

// Format holds the optional material description of a printed title.
type Format struct {
	// Code is the ONIX product form code (e.g. BC for paperback).
	Code string `json:"code,omitempty"`
	// Details lists ONIX product form detail codes.
	Details []string `json:"details,omitempty"`
	// WidthCm is the width in centimetres.
	WidthCm *float64 `json:"largeur_cm,omitempty"`
	// HeightCm is the height in centimetres.
	HeightCm *float64 `json:"hauteur_cm,omitempty"`
	// ThicknessCm is the spine thickness in centimetres.
	ThicknessCm *float64 `json:"epaisseur_cm,omitempty"`
	// WeightG is the weight in grams.
	WeightG *float64 `json:"poids_g,omitempty"`
	// Pages is the total printed page count.
	Pages *int `json:"pages,omitempty"`
}

// IsZero reports whether no format field is set.
func (f Format) IsZero() bool {
	return f.Code == "" && len(f.Details) == 0 && f.WidthCm == nil && f.HeightCm == nil &&
		f.ThicknessCm == nil && f.WeightG == nil && f.Pages == nil
}

// Subjects holds the main subject codes of a title.
type Subjects struct {
	Thema string `json:"thema,omitempty"`
	CLIL  string `json:"clil,omitempty"`
	BISAC string `json:"bisac,omitempty"`
}

// Title is one book of the catalog.
type Title struct {
	// ID13 is the stable 13-digit identifier (ISBN-13 for printed titles).
	ID13 string `json:"id13"`
	// Slug is the URL path segment of the title page.
	Slug string `json:"slug"`
	// Title is the normalized main title.
	Title string `json:"titre_norm"`
	// Subtitle is the normalized subtitle.
	Subtitle string `json:"sous_titre_norm,omitempty"`
	// Credit is the display credit line ("Textes réunis par ...").
	Credit string `json:"auteurs_norm,omitempty"`
	// Contributors is the structured contributor list used by ONIX.
	Contributors string `json:"contributeurs_onix,omitempty"`
	// CollectionID references a collection or journal; empty when uncategorized.
	CollectionID string `json:"collection_id"`
	// CollectionNumber is the number of the title inside its collection.
	CollectionNumber string `json:"numero_collection,omitempty"`
	// PublicationDate is the publication date.
	PublicationDate *Date `json:"date_parution,omitempty"`
	// Price is the effective price, nil when unknown.
	Price *Price `json:"price"`
	// Cover is the resolved cover image.
	Cover Cover `json:"cover"`
	// Availability is the machine availability status code.
	Availability string `json:"availability,omitempty"`
	// AvailabilityLabel is the text shown to readers.
	AvailabilityLabel string `json:"availability_label"`
	// ShortDescription is the blurb, in markup source form.
	ShortDescription string `json:"description_courte,omitempty"`
	// LongDescription is the full presentation, in markup source form.
	LongDescription string `json:"description_longue,omitempty"`
	// TableOfContents is the table of contents, in markup source form.
	TableOfContents string `json:"table_matieres,omitempty"`
	// Language is the ONIX language code of the text.
	Language string `json:"langue,omitempty"`
	// Format is the material description, nil when no field is set.
	Format *Format `json:"format,omitempty"`
	// Subjects are the main subject codes, nil when none is set.
	Subjects *Subjects `json:"sujets,omitempty"`
	// CoverURL is the public URL of the cover used by ONIX recipients.
	CoverURL string `json:"url_couverture,omitempty"`
	// Featured titles are listed first.
	Featured bool `json:"featured,omitempty"`
	// SortOrder is the editor-defined ordering key.
	SortOrder *float64 `json:"sort_order,omitempty"`

	// Active reports whether the title may appear in public artifacts.
	Active bool `json:"-"`
	// Row is the 1-based workbook row the title was read from.
	Row int `json:"-"`
	// DeclaredCollection is the collection id as typed, kept when unresolved.
	DeclaredCollection string `json:"-"`
}
