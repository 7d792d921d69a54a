// Package render writes the HTML pages of the static site from the
// catalog model.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/derive"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/output"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// Renderer renders catalog pages. It is safe for concurrent use once built.
type Renderer struct {
	markup    Markup
	templates *template.Template
}

// New parses the embedded templates. markup converts descriptions and
// page bodies.
func New(markup Markup) (*Renderer, error) {
	r := &Renderer{markup: markup}
	funcMap := template.FuncMap{
		"markup": func(raw string) template.HTML {
			return template.HTML(r.markup.Convert(raw))
		},
		"price":          FormatPrice,
		"titlePath":      TitlePath,
		"collectionPath": collectionPath,
		"journalPath":    journalPath,
		"pagePath":       PagePath,
		"measure":        formatMeasure,
		"cardData": func(root string, t models.Title) card {
			return card{Root: root, Book: &t}
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = templates
	return r, nil
}

// File is one rendered page.
type File struct {
	// Path is the site-relative output path.
	Path string
	Data []byte
}

// pageData is passed to every template.
type pageData struct {
	Site  models.SiteConfig
	Menu  []models.Page
	Root  string
	Title string

	Catalog    *models.Catalog
	Book       *models.Title
	Series     *series
	Collection *models.Collection
	Journal    *models.Journal
	Titles     []models.Title
	Page       *models.Page
}

// card is the data of the "card" template.
type card struct {
	Root string
	Book *models.Title
}

// series is the collection or journal a title belongs to.
type series struct {
	Name string
	Path string
}

// Pages renders every page of the site in a fixed order.
func (r *Renderer) Pages(cat *models.Catalog) ([]File, error) {
	var files []File
	add := func(p, name string, data pageData) error {
		data.Site = cat.Site
		data.Menu = cat.MenuPages()
		data.Catalog = cat
		data.Root = strings.Repeat("../", strings.Count(p, "/"))

		var buf bytes.Buffer
		if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
			return fmt.Errorf("render %s: %w", p, err)
		}
		files = append(files, File{Path: p, Data: buf.Bytes()})
		return nil
	}

	if err := add("index.html", "index.html", pageData{Titles: cat.Titles}); err != nil {
		return nil, err
	}
	for i := range cat.Titles {
		t := &cat.Titles[i]
		if err := add(TitlePath(t.Slug), "title.html", pageData{Title: t.Title, Book: t, Series: seriesOf(cat, t.CollectionID)}); err != nil {
			return nil, err
		}
	}
	for _, id := range sortedKeys(cat.Collections) {
		c := cat.Collections[id]
		if err := add(collectionPath(id), "collection.html", pageData{Title: c.Title, Collection: &c, Titles: cat.TitlesOf(c.Titles)}); err != nil {
			return nil, err
		}
	}
	for _, id := range sortedKeys(cat.Journals) {
		j := cat.Journals[id]
		if err := add(journalPath(id), "journal.html", pageData{Title: j.Title, Journal: &j, Titles: cat.TitlesOf(j.Titles)}); err != nil {
			return nil, err
		}
	}
	for i := range cat.Pages {
		p := &cat.Pages[i]
		if err := add(PagePath(p.Slug), "page.html", pageData{Title: p.Title, Page: p}); err != nil {
			return nil, err
		}
	}
	if err := add("contact.html", "contact.html", pageData{Title: "Contact"}); err != nil {
		return nil, err
	}
	return files, nil
}

// Render writes every page and the stylesheet under outDir.
func (r *Renderer) Render(outDir string, cat *models.Catalog) error {
	files, err := r.Pages(cat)
	if err != nil {
		return err
	}
	css, err := embeddedFiles.ReadFile("static/site.css")
	if err != nil {
		return err
	}
	files = append(files, File{Path: "assets/site.css", Data: css})

	for _, f := range files {
		if err := output.WriteFile(filepath.Join(outDir, filepath.FromSlash(f.Path)), f.Data); err != nil {
			return err
		}
	}
	return nil
}

// TitlePath returns the site-relative path of a title page.
func TitlePath(slug string) string {
	return path.Join("livres", slug+".html")
}

// PagePath returns the site-relative path of a fixed page.
func PagePath(slug string) string {
	return path.Join("pages", slug+".html")
}

// collectionPath returns the path of a collection page. Ids are codes typed
// by editors, so they are slugified for the file name.
func collectionPath(id string) string {
	return path.Join("collections", fileName(id)+".html")
}

func journalPath(id string) string {
	return path.Join("revues", fileName(id)+".html")
}

func fileName(id string) string {
	if s := derive.Slugify(id); s != "" {
		return s
	}
	return "sans-titre"
}

func seriesOf(cat *models.Catalog, id string) *series {
	if c, ok := cat.Collections[id]; ok {
		return &series{Name: c.Title, Path: collectionPath(id)}
	}
	if j, ok := cat.Journals[id]; ok {
		return &series{Name: j.Title, Path: journalPath(id)}
	}
	return nil
}

// FormatPrice renders a price the French way ("18,00 €"). A nil price
// renders as an empty string.
func FormatPrice(p *models.Price) string {
	if p == nil {
		return ""
	}
	amount := strings.Replace(strconv.FormatFloat(p.Amount, 'f', 2, 64), ".", ",", 1)
	switch p.Currency {
	case "EUR":
		return amount + " €"
	case "GBP":
		return "£" + amount
	case "USD":
		return "$" + amount
	}
	return amount + " " + p.Currency
}

func formatMeasure(v *float64, unit string) string {
	if v == nil {
		return ""
	}
	return strings.Replace(strconv.FormatFloat(*v, 'f', -1, 64), ".", ",", 1) + " " + unit
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
