// Package schema maps the column names of every historical workbook
// generation onto canonical field names.
//
// Supporting a new generation means adding aliases to the tables in
// aliases.go; resolution code does not change.
package schema

// Kind tells the normalizer which semantic type a field holds.
type Kind int

const (
	// KindText is plain text: trimmed, runs of spaces and NBSP collapsed.
	KindText Kind = iota
	// KindMarkup is text handed to the markup converter: trimmed only.
	KindMarkup
	// KindCode is an identifier-like token: trimmed only.
	KindCode
	// KindID is a 13-digit identifier that may arrive as a number.
	KindID
	// KindBool is a flag.
	KindBool
	// KindNumber is a decimal number.
	KindNumber
	// KindDate is a calendar date.
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMarkup:
		return "markup"
	case KindCode:
		return "code"
	case KindID:
		return "id"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	}
	return "unknown"
}

// Canonical title fields.
const (
	FieldID13              = "id13"
	FieldSlug              = "slug"
	FieldTitle             = "titre_norm"
	FieldSubtitle          = "sous_titre_norm"
	FieldCredit            = "auteurs_norm"
	FieldContributors      = "contributeurs_onix"
	FieldCollection        = "collection_id"
	FieldCollectionNumber  = "numero_collection"
	FieldPublicationDate   = "date_parution_norm"
	FieldPrice             = "price"
	FieldPriceTTC          = "prix_ttc"
	FieldCurrency          = "devise"
	FieldCoverFile         = "cover_file"
	FieldCoverURL          = "url_couverture"
	FieldAvailability      = "availability"
	FieldAvailabilityLabel = "availability_label"
	FieldActive            = "active_site"
	FieldActiveLegacy      = "actif"
	FieldFeatured          = "featured"
	FieldSortOrder         = "sort_order"
	FieldShortDescription  = "description_courte"
	FieldLongDescription   = "description_longue"
	FieldTableOfContents   = "table_matieres"
	FieldLanguage          = "langue"
	FieldFormatCode        = "format_code"
	FieldFormatDetail      = "format_detail"
	FieldWidth             = "largeur"
	FieldHeight            = "hauteur"
	FieldThickness         = "epaisseur"
	FieldWeight            = "poids"
	FieldPages             = "nb_pages"
	FieldThema             = "sujet_thema"
	FieldCLIL              = "sujet_clil"
	FieldBISAC             = "sujet_bisac"
)

// Canonical fields of the COLLECTIONS, REVUES, PAGES and CONTACTS sheets.
const (
	FieldID          = "id"
	FieldName        = "titre"
	FieldDirection   = "direction"
	FieldDescription = "description"
	FieldISSN        = "issn"
	FieldEISSN       = "eissn"
	FieldPeriodicity = "periodicite"
	FieldURL         = "url"

	FieldBody  = "contenu"
	FieldOrder = "ordre"
	FieldMenu  = "menu"

	FieldContactName = "nom"
	FieldRole        = "fonction"
	FieldEmail       = "email"
	FieldPhone       = "telephone"
	FieldAddress     = "adresse"
)
