package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bracketMarkup struct{}

func (bracketMarkup) Convert(raw string) string { return "<div class=\"md\">" + raw + "</div>" }

func testCatalog() *models.Catalog {
	pages := 212
	width, height := 15.5, 24.0
	return &models.Catalog{
		Version: models.SchemaVersion,
		Site: models.SiteConfig{
			Name: "Presses de test", Baseline: "Savoirs", Currency: "EUR",
			Links: []models.Link{{Label: "Université", URL: "https://univ.example.org"}},
		},
		Titles: []models.Title{
			{
				ID13: "9782000000011", Slug: "l-ete-des-lumieres", Title: "L'Été des Lumières",
				Credit: "Textes réunis par A. Martin", CollectionID: "hist", CollectionNumber: "12",
				PublicationDate:   &models.Date{ISO: "2024-03-01", Display: "1er mars 2024"},
				Price:             &models.Price{Amount: 22, Currency: "EUR", Source: "price"},
				Cover:             models.Cover{File: "a.jpg", Path: "covers/a.jpg"},
				AvailabilityLabel: "Disponible",
				ShortDescription:  "Un *livre*",
				Format:            &models.Format{Pages: &pages, WidthCm: &width, HeightCm: &height},
			},
			{
				ID13: "9782000000028", Slug: "script", Title: "<script>alert(1)</script>",
				Cover: models.Cover{Path: "covers/placeholder.svg", Missing: true},
			},
		},
		Collections: map[string]models.Collection{
			"hist": {ID: "hist", Title: "Histoire", Titles: []string{"9782000000011"}},
		},
		Journals: map[string]models.Journal{
			"Rev 1": {ID: "Rev 1", Title: "Revue", Titles: []string{}},
		},
		Pages: []models.Page{
			{Slug: "a-propos", Title: "À propos", Body: "Qui sommes-nous", Menu: true},
			{Slug: "mentions", Title: "Mentions légales", Body: "...", Menu: false},
		},
		Contacts: []models.Contact{{Name: "Claire Martin", Email: "claire@example.org"}},
	}
}

func TestPages(t *testing.T) {
	r, err := New(bracketMarkup{})
	require.NoError(t, err)

	files, err := r.Pages(testCatalog())
	require.NoError(t, err)

	byPath := map[string]string{}
	var paths []string
	for _, f := range files {
		byPath[f.Path] = string(f.Data)
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"index.html",
		"livres/l-ete-des-lumieres.html",
		"livres/script.html",
		"collections/hist.html",
		"revues/rev-1.html",
		"pages/a-propos.html",
		"pages/mentions.html",
		"contact.html",
	}, paths)

	index := byPath["index.html"]
	assert.Contains(t, index, `href="livres/l-ete-des-lumieres.html"`)
	assert.Contains(t, index, `src="covers/a.jpg"`)
	assert.Contains(t, index, "22,00 €")
	assert.Contains(t, index, `href="pages/a-propos.html"`)
	assert.NotContains(t, index, `href="pages/mentions.html"`)
	assert.Contains(t, index, `href="collections/hist.html"`)
	assert.Contains(t, index, `href="revues/rev-1.html"`)
	assert.Contains(t, index, "https://univ.example.org")

	book := byPath["livres/l-ete-des-lumieres.html"]
	assert.Contains(t, book, `src="../covers/a.jpg"`)
	assert.Contains(t, book, `href="../collections/hist.html"`)
	assert.Contains(t, book, "n° 12")
	assert.Contains(t, book, `<div class="md">Un *livre*</div>`)
	assert.Contains(t, book, `datetime="2024-03-01"`)
	assert.Contains(t, book, "15,5 cm × 24 cm")
	assert.Contains(t, book, "<dd>212</dd>")

	escaped := byPath["livres/script.html"]
	assert.NotContains(t, escaped, "<script>alert(1)</script>")
	assert.Contains(t, escaped, "&lt;script&gt;")
	assert.Contains(t, escaped, "Couverture non disponible")

	assert.Contains(t, byPath["collections/hist.html"], "L&#39;Été des Lumières")
	assert.Contains(t, byPath["contact.html"], "mailto:claire@example.org")
}

func TestRenderIsIdempotent(t *testing.T) {
	r, err := New(MarkdownConverter{})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, r.Render(dir, testCatalog()))
	first, err := os.ReadFile(filepath.Join(dir, "livres", "l-ete-des-lumieres.html"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "assets", "site.css"))

	require.NoError(t, r.Render(dir, testCatalog()))
	second, err := os.ReadFile(filepath.Join(dir, "livres", "l-ete-des-lumieres.html"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "<em>livre</em>")
}

func TestMarkdownConverter(t *testing.T) {
	var m MarkdownConverter
	assert.Equal(t, "", m.Convert(""))

	got := m.Convert("Un **grand** livre.\n\n- premier\n- second")
	assert.Contains(t, got, "<strong>grand</strong>")
	assert.Contains(t, got, "<li>premier</li>")

	link := m.Convert("[HAL](https://hal.example.org)")
	assert.True(t, strings.Contains(link, `target="_blank"`), link)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price *models.Price
		want  string
	}{
		{nil, ""},
		{&models.Price{Amount: 18, Currency: "EUR"}, "18,00 €"},
		{&models.Price{Amount: 0, Currency: "EUR"}, "0,00 €"},
		{&models.Price{Amount: 9.5, Currency: "CHF"}, "9,50 CHF"},
		{&models.Price{Amount: 12.99, Currency: "GBP"}, "£12,99"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, expected %q", tt.price, got, tt.want)
		}
	}
}
