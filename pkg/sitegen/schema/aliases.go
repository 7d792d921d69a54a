package schema

import "fmt"

// FieldSpec declares one canonical field and the column names accepted for it.
// Aliases are in priority order: the first one present in a row wins.
type FieldSpec struct {
	Name    string
	Kind    Kind
	Aliases []string
}

// Table is the alias table of one sheet.
type Table struct {
	Fields []FieldSpec
}

// Spec returns the spec of a canonical field.
func (t Table) Spec(name string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Validate checks that no column name is claimed by two fields.
func (t Table) Validate() error {
	owner := make(map[string]string)
	for _, f := range t.Fields {
		if len(f.Aliases) == 0 {
			return fmt.Errorf("field %q has no alias", f.Name)
		}
		for _, a := range f.Aliases {
			if prev, ok := owner[a]; ok && prev != f.Name {
				return fmt.Errorf("column %q claimed by both %q and %q", a, prev, f.Name)
			}
			owner[a] = f.Name
		}
	}
	return nil
}

// Tables groups the alias tables of every sheet of the workbook.
type Tables struct {
	Titles      Table
	Collections Table
	Journals    Table
	Pages       Table
	Contacts    Table
}

// Validate validates every table.
func (ts Tables) Validate() error {
	for name, t := range map[string]Table{
		"titles": ts.Titles, "collections": ts.Collections, "journals": ts.Journals,
		"pages": ts.Pages, "contacts": ts.Contacts,
	} {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%s table: %w", name, err)
		}
	}
	return nil
}

func spec(name string, kind Kind, aliases ...string) FieldSpec {
	return FieldSpec{Name: name, Kind: kind, Aliases: aliases}
}

// DefaultTables returns the alias tables covering every workbook
// generation in use. Each call returns a fresh value.
func DefaultTables() Tables {
	return Tables{
		Titles: Table{Fields: []FieldSpec{
			spec(FieldID13, KindID, "id13", "ID13", "isbn13", "ISBN13", "ISBN", "EAN"),
			spec(FieldSlug, KindCode, "slug", "Slug"),
			spec(FieldTitle, KindText, "titre_norm", "Titre", "titre", "title"),
			spec(FieldSubtitle, KindText, "sous_titre_norm", "Sous-titre", "sous_titre", "subtitle"),
			spec(FieldCredit, KindText, "auteurs_norm", "Auteurs", "auteurs", "Mention de responsabilité", "credit"),
			spec(FieldContributors, KindCode, "contributeurs_onix"),
			spec(FieldCollection, KindCode, "collection_id", "id_collection", "Collection", "collection", "revue_id"),
			spec(FieldCollectionNumber, KindCode, "numero_collection", "N° collection", "numero"),
			spec(FieldPublicationDate, KindDate, "date_parution_norm", "Date de parution", "date_parution", "date"),
			spec(FieldPrice, KindNumber, "price", "Prix", "prix"),
			spec(FieldPriceTTC, KindNumber, "prix_ttc", "Prix TTC"),
			spec(FieldCurrency, KindCode, "devise", "Devise", "currency"),
			spec(FieldCoverFile, KindCode, "cover_file", "Couverture", "couverture", "image"),
			spec(FieldCoverURL, KindCode, "URL image de couverture", "url_couverture", "cover_url"),
			spec(FieldAvailability, KindCode, "availability", "disponibilite_code", "statut"),
			spec(FieldAvailabilityLabel, KindText, "availability_label", "Disponibilité", "disponibilite"),
			spec(FieldActive, KindBool, "active_site", "actif_site", "publier_site"),
			spec(FieldActiveLegacy, KindBool, "actif", "Actif", "active", "publie", "en_ligne"),
			spec(FieldFeatured, KindBool, "featured", "mise_en_avant", "a_la_une"),
			spec(FieldSortOrder, KindNumber, "sort_order", "Ordre", "ordre"),
			spec(FieldShortDescription, KindMarkup, "Description courte", "description_courte", "resume"),
			spec(FieldLongDescription, KindMarkup, "Description longue", "description_longue", "presentation"),
			spec(FieldTableOfContents, KindMarkup, "Table des matières", "table_matieres", "sommaire"),
			spec(FieldLanguage, KindCode, "langue", "Langue", "language"),
			spec(FieldFormatCode, KindCode, "Code support", "format_code", "support"),
			spec(FieldFormatDetail, KindCode, "Product form detail", "format_detail"),
			spec(FieldWidth, KindNumber, "Largeur", "largeur"),
			spec(FieldHeight, KindNumber, "Hauteur", "hauteur"),
			spec(FieldThickness, KindNumber, "Epaisseur", "Épaisseur", "epaisseur"),
			spec(FieldWeight, KindNumber, "Poids", "poids"),
			spec(FieldPages, KindNumber, "Nombre de pages (pages totales imprimées)", "nb_pages", "Pages", "pages"),
			spec(FieldThema, KindCode, "Sujet THEMA principal", "sujet_thema", "thema"),
			spec(FieldCLIL, KindCode, "Sujet CLIL principal", "sujet_clil", "clil"),
			spec(FieldBISAC, KindCode, "Sujet BISAC principal", "sujet_bisac", "bisac"),
		}},
		Collections: Table{Fields: []FieldSpec{
			spec(FieldID, KindCode, "collection_id", "id", "ID"),
			spec(FieldName, KindText, "titre", "Titre", "nom", "Nom"),
			spec(FieldDirection, KindText, "direction", "Direction", "directeurs"),
			spec(FieldDescription, KindMarkup, "description", "Description", "presentation"),
			spec(FieldISSN, KindCode, "issn", "ISSN"),
		}},
		Journals: Table{Fields: []FieldSpec{
			spec(FieldID, KindCode, "revue_id", "id", "ID", "collection_id"),
			spec(FieldName, KindText, "titre", "Titre", "nom", "Nom"),
			spec(FieldISSN, KindCode, "issn", "ISSN"),
			spec(FieldEISSN, KindCode, "eissn", "e-ISSN", "EISSN"),
			spec(FieldPeriodicity, KindText, "periodicite", "Périodicité"),
			spec(FieldDirection, KindText, "direction", "Direction"),
			spec(FieldDescription, KindMarkup, "description", "Description", "presentation"),
			spec(FieldURL, KindCode, "url", "URL", "site"),
		}},
		Pages: Table{Fields: []FieldSpec{
			spec(FieldSlug, KindCode, "slug", "Slug"),
			spec(FieldName, KindText, "titre", "Titre", "title"),
			spec(FieldBody, KindMarkup, "contenu", "Contenu", "texte", "body"),
			spec(FieldOrder, KindNumber, "ordre", "Ordre", "order"),
			spec(FieldMenu, KindBool, "menu", "Menu", "afficher_menu", "in_menu"),
		}},
		Contacts: Table{Fields: []FieldSpec{
			spec(FieldContactName, KindText, "nom", "Nom", "name"),
			spec(FieldRole, KindText, "fonction", "Fonction", "role", "Rôle"),
			spec(FieldEmail, KindCode, "email", "Email", "courriel", "mail"),
			spec(FieldPhone, KindCode, "telephone", "Téléphone", "tel"),
			spec(FieldAddress, KindMarkup, "adresse", "Adresse"),
			spec(FieldURL, KindCode, "url", "URL", "site"),
		}},
	}
}
