package onix

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 11, 4, 9, 30, 0, 0, time.UTC)
}

func onixCatalog() *models.Catalog {
	width, height, weight := 15.5, 24.0, 420.0
	pages := 312
	tax := 5.5
	return &models.Catalog{
		Site: models.SiteConfig{
			Name:    "Presses de test",
			BaseURL: "https://presses.example.org",
			ONIX: models.ONIXConfig{
				Release: "3.0", SenderName: "PDT", PublisherName: "Presses de test", ImprintName: "PDT",
				Language: "fre", Currency: "EUR", PriceType: "04", TaxType: "01", TaxRateCode: "R",
				TaxRatePercent: &tax, MarketCountries: "FR", CountryOfPublisher: "FR", UnpricedItemType: "02",
			},
		},
		Titles: []models.Title{
			{
				ID13: "9782000000011", Title: "Atlas", Subtitle: "Cartes et territoires", Row: 2,
				Contributors:      "Martin, Claire, B01; Dupont, Jean, A01+A15",
				PublicationDate:   &models.Date{ISO: "2024-03-01", Display: "1er mars 2024"},
				Price:             &models.Price{Amount: 22.5, Currency: "EUR"},
				Availability:      "available",
				AvailabilityLabel: "Disponible",
				ShortDescription:  "Un atlas.",
				Cover:             models.Cover{Path: "covers/atlas.jpg"},
				Format: &models.Format{
					Code: "BB", Details: []string{"B404"}, WidthCm: &width, HeightCm: &height,
					WeightG: &weight, Pages: &pages,
				},
				Subjects: &models.Subjects{CLIL: "3377", BISAC: "HIS000000"},
			},
			{
				ID13: "9782000000028", Title: "Sans prix", Row: 3,
				PublicationDate: &models.Date{ISO: "2025-09", Display: "septembre 2025"},
				CoverURL:        "ftp://example.org/cover.jpg",
				Cover:           models.Cover{Path: "covers/placeholder.svg", Missing: true},
			},
			{ID13: "978200000003", Title: "ISBN court", Row: 4},
		},
	}
}

func TestExport(t *testing.T) {
	doc := Export(onixCatalog(), Options{Now: fixedClock})
	msg := doc.Message

	assert.Equal(t, "20251104T0930", msg.Header.SentDateTime)
	require.Len(t, msg.Products, 2)

	p := msg.Products[0]
	assert.Equal(t, "9782000000011", p.RecordReference)
	assert.Equal(t, "BB", p.DescriptiveDetail.ProductForm)
	assert.Equal(t, []Measure{
		{"02", "15.5", "cm"}, {"01", "24", "cm"}, {"08", "420", "gr"},
	}, p.DescriptiveDetail.Measures)
	require.Len(t, p.DescriptiveDetail.Contributors, 2)
	assert.Equal(t, Contributor{SequenceNumber: 2, ContributorRoles: []string{"A01", "A15"}, PersonNameInverted: "Dupont, Jean"}, p.DescriptiveDetail.Contributors[1])
	assert.Nil(t, p.DescriptiveDetail.NoContributor)
	assert.Equal(t, []Extent{{"00", "312", "03"}}, p.DescriptiveDetail.Extents)
	require.Len(t, p.DescriptiveDetail.Subjects, 2)
	assert.NotNil(t, p.DescriptiveDetail.Subjects[0].MainSubject)
	assert.Equal(t, "29", p.DescriptiveDetail.Subjects[0].SubjectSchemeIdentifier)
	assert.Nil(t, p.DescriptiveDetail.Subjects[1].MainSubject)

	require.NotNil(t, p.CollateralDetail)
	assert.Equal(t, "https://presses.example.org/covers/atlas.jpg", p.CollateralDetail.SupportingResources[0].ResourceVersion.ResourceLink)
	assert.Equal(t, Date{Value: "20240301"}, p.PublishingDetail.PublishingDate.Date)

	sd := p.ProductSupply.SupplyDetail
	assert.Equal(t, "20", sd.ProductAvailability)
	require.NotNil(t, sd.Price)
	assert.Equal(t, "22.5", sd.Price.PriceAmount)
	assert.Equal(t, "5.5", sd.Price.Tax.TaxRatePercent)
	assert.Empty(t, sd.UnpricedItemType)

	q := msg.Products[1]
	assert.NotNil(t, q.DescriptiveDetail.NoContributor)
	assert.Nil(t, q.CollateralDetail)
	assert.Equal(t, Date{Format: "01", Value: "202509"}, q.PublishingDetail.PublishingDate.Date)
	assert.Equal(t, "02", q.ProductSupply.SupplyDetail.UnpricedItemType)
	assert.Nil(t, q.ProductSupply.SupplyDetail.Price)

	var issues []string
	for _, i := range doc.Issues {
		issues = append(issues, i.ISBN+": "+i.Issue)
	}
	assert.Equal(t, []string{
		"9782000000028: invalid cover URL (skip): ftp://example.org/cover.jpg",
		"9782000000028: WARN: missing/invalid price -> UnpricedItemType=02",
		"978200000003: missing id13/title",
	}, issues)
}

func TestExportXML(t *testing.T) {
	data, err := Export(onixCatalog(), Options{Now: fixedClock}).XML()
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, `<ONIXMessage xmlns="http://ns.editeur.org/onix/3.0/reference" release="3.0">`)
	assert.Contains(t, text, `<Date dateformat="01">202509</Date>`)
	assert.Contains(t, text, "<NoContributor></NoContributor>")

	// Supplier before availability, Tax before CurrencyCode
	assert.Less(t, strings.Index(text, "<Supplier>"), strings.Index(text, "<ProductAvailability>"))
	assert.Less(t, strings.Index(text, "<Tax>"), strings.Index(text, "<CurrencyCode>"))
	assert.Less(t, strings.Index(text, "<Measure>"), strings.Index(text, "<TitleDetail>"))

	var back Message
	require.NoError(t, xml.Unmarshal(data, &back))
	assert.Len(t, back.Products, 2)

	again, err := Export(onixCatalog(), Options{Now: fixedClock}).XML()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestParseContributors(t *testing.T) {
	tests := []struct {
		raw  string
		want []ContributorEntry
	}{
		{"", nil},
		{"Atherton, Stan, B01; Leclaire, Jacques, B01", []ContributorEntry{
			{"Atherton, Stan", []string{"B01"}},
			{"Leclaire, Jacques", []string{"B01"}},
		}},
		{"Collectif", []ContributorEntry{{"Collectif", []string{"A01"}}}},
		{"Martin, Claire", []ContributorEntry{{"Martin, Claire", []string{"A01"}}}},
		{"Dupont, Jean, A01/B06 ;", []ContributorEntry{{"Dupont, Jean", []string{"A01", "B06"}}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseContributors(tt.raw), "ParseContributors(%q)", tt.raw)
	}
}

func TestAvailabilityCode(t *testing.T) {
	tests := []struct {
		status, label, want string
	}{
		{"", "", "20"},
		{"forthcoming", "", "10"},
		{"", "Disponible", "20"},
		{"", "En stock chez le distributeur", "21"},
		{"", "Plus fourni par l'éditeur", "43"},
		{"bientôt", "", "40"},
	}
	for _, tt := range tests {
		if got := AvailabilityCode(tt.status, tt.label); got != tt.want {
			t.Errorf("AvailabilityCode(%q, %q) = %q, expected %q", tt.status, tt.label, got, tt.want)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	doc := Export(onixCatalog(), Options{Now: fixedClock})
	require.NoError(t, doc.WriteFiles(dir))

	assert.FileExists(t, filepath.Join(dir, "onix", "onix.xml"))
	qa, err := os.ReadFile(filepath.Join(dir, "onix", "onix_QA.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(qa)), "\n")
	assert.Equal(t, "row,isbn13,title,issue", lines[0])
	assert.Len(t, lines, 4)
}
