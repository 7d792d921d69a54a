package catalog

import (
	"testing"

	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSiteConfig(t *testing.T) {
	entries := []parser.ConfigEntry{
		{Key: "site_name", Value: "Presses universitaires de Rouen", Row: 2},
		{Key: "Baseline", Value: "  Savoirs partagés ", Row: 3},
		{Key: "base_url", Value: "https://purh.example.org/", Row: 4},
		{Key: "lien_universite", Value: "https://univ.example.org", Row: 5},
		{Key: "lien_hal", Value: "Archive ouverte | https://hal.example.org", Row: 6},
		{Key: "books_sheet", Value: "Master_Site", Row: 7},
		{Key: "ftp_host", Value: "ftp.example.org", Row: 8},
		{Key: "ftp_port", Value: int64(2121), Row: 9},
		{Key: "ftp_security", Value: "PLAIN", Row: 10},
		{Key: "onix_sender_name", Value: "PURH", Row: 11},
		{Key: "onix_default_tax_rate_percent", Value: "5,5", Row: 12},
		{Key: "couleur_theme", Value: "#aa0000", Row: 13},
		{Key: "currency", Value: nil, Row: 14},
	}
	report := diag.NewReport()
	cfg := ParseSiteConfig(entries, report)

	assert.Equal(t, "Presses universitaires de Rouen", cfg.Name)
	assert.Equal(t, "Savoirs partagés", cfg.Baseline)
	assert.Equal(t, "https://purh.example.org", cfg.BaseURL)
	assert.Equal(t, []models.Link{
		{Label: "Universite", URL: "https://univ.example.org"},
		{Label: "Archive ouverte", URL: "https://hal.example.org"},
	}, cfg.Links)
	assert.Equal(t, "Master_Site", cfg.BooksSheet)
	assert.Equal(t, "EUR", cfg.Currency)

	assert.Equal(t, "ftp.example.org", cfg.FTP.Host)
	assert.Equal(t, 2121, cfg.FTP.Port)
	assert.Equal(t, "plain", cfg.FTP.Security)
	assert.False(t, cfg.FTP.Complete())

	assert.Equal(t, "PURH", cfg.ONIX.SenderName)
	assert.Equal(t, "PURH", cfg.ONIX.PublisherName)
	assert.Equal(t, "PURH", cfg.ONIX.ImprintName)
	assert.Equal(t, "3.0", cfg.ONIX.Release)
	assert.Equal(t, "fre", cfg.ONIX.Language)
	assert.Equal(t, "EUR", cfg.ONIX.Currency)
	require.NotNil(t, cfg.ONIX.TaxRatePercent)
	assert.Equal(t, 5.5, *cfg.ONIX.TaxRatePercent)

	anomalies := report.Anomalies()
	require.Len(t, anomalies, 1)
	assert.Equal(t, "couleur_theme", anomalies[0].Value)
	assert.Equal(t, 13, anomalies[0].Row)
}

func TestParseSiteConfigDefaults(t *testing.T) {
	cfg := ParseSiteConfig(nil, diag.NewReport())

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 21, cfg.FTP.Port)
	assert.Equal(t, "auto", cfg.FTP.Security)
	assert.Equal(t, "Publisher", cfg.ONIX.SenderName)
	assert.Equal(t, "04", cfg.ONIX.PriceType)
	assert.Equal(t, "02", cfg.ONIX.UnpricedItemType)
	assert.Equal(t, "FR", cfg.ONIX.MarketCountries)
	assert.Nil(t, cfg.ONIX.TaxRatePercent)
}

func TestParseSiteConfigBadPort(t *testing.T) {
	report := diag.NewReport()
	cfg := ParseSiteConfig([]parser.ConfigEntry{{Key: "ftp_port", Value: "vingt et un", Row: 4}}, report)

	assert.Equal(t, 21, cfg.FTP.Port)
	require.Len(t, report.Anomalies(), 1)
	assert.Equal(t, diag.SeverityWarning, report.Anomalies()[0].Severity)
}
