package catalog

import (
	"strconv"
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/derive"
	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/purh/sitegen/pkg/sitegen/normalize"
	"github.com/purh/sitegen/pkg/sitegen/parser"
)

// ONIX defaults applied when CONFIG leaves a key empty.
const (
	defaultONIXRelease   = "3.0"
	defaultONIXSender    = "Publisher"
	defaultONIXLanguage  = "fre"
	defaultONIXPriceType = "04"
	defaultONIXTaxType   = "01"
	defaultONIXTaxCode   = "R"
	defaultONIXCountry   = "FR"
	defaultONIXUnpriced  = "02"
	defaultFTPPort       = 21
)

// configKeys maps each accepted CONFIG key, lowercased, to its setter.
var configKeys = map[string]func(c *models.SiteConfig, v string){
	"site_name":         func(c *models.SiteConfig, v string) { c.Name = v },
	"nom_site":          func(c *models.SiteConfig, v string) { c.Name = v },
	"baseline":          func(c *models.SiteConfig, v string) { c.Baseline = v },
	"base_url":          func(c *models.SiteConfig, v string) { c.BaseURL = strings.TrimRight(v, "/") },
	"site_url":          func(c *models.SiteConfig, v string) { c.BaseURL = strings.TrimRight(v, "/") },
	"currency":          func(c *models.SiteConfig, v string) { c.Currency = strings.ToUpper(v) },
	"devise":            func(c *models.SiteConfig, v string) { c.Currency = strings.ToUpper(v) },
	"books_sheet":       func(c *models.SiteConfig, v string) { c.BooksSheet = v },
	"sheet_master":      func(c *models.SiteConfig, v string) { c.BooksSheet = v },
	"cover_placeholder": func(c *models.SiteConfig, v string) { c.CoverPlaceholder = v },

	"ftp_host":       func(c *models.SiteConfig, v string) { c.FTP.Host = v },
	"ftp_user":       func(c *models.SiteConfig, v string) { c.FTP.User = v },
	"ftp_password":   func(c *models.SiteConfig, v string) { c.FTP.Password = v },
	"ftp_remote_dir": func(c *models.SiteConfig, v string) { c.FTP.RemoteDir = v },
	"ftp_security":   func(c *models.SiteConfig, v string) { c.FTP.Security = strings.ToLower(v) },

	"onix_release":                           func(c *models.SiteConfig, v string) { c.ONIX.Release = v },
	"onix_sender_name":                       func(c *models.SiteConfig, v string) { c.ONIX.SenderName = v },
	"onix_publisher_name":                    func(c *models.SiteConfig, v string) { c.ONIX.PublisherName = v },
	"onix_imprint_name":                      func(c *models.SiteConfig, v string) { c.ONIX.ImprintName = v },
	"onix_default_language_of_text":          func(c *models.SiteConfig, v string) { c.ONIX.Language = v },
	"onix_default_currency":                  func(c *models.SiteConfig, v string) { c.ONIX.Currency = strings.ToUpper(v) },
	"onix_default_price_type":                func(c *models.SiteConfig, v string) { c.ONIX.PriceType = v },
	"onix_default_tax_type":                  func(c *models.SiteConfig, v string) { c.ONIX.TaxType = v },
	"onix_default_tax_rate_code":             func(c *models.SiteConfig, v string) { c.ONIX.TaxRateCode = v },
	"onix_default_market_countries_included": func(c *models.SiteConfig, v string) { c.ONIX.MarketCountries = v },
	"onix_country_of_publication":            func(c *models.SiteConfig, v string) { c.ONIX.CountryOfPublisher = v },
	"onix_default_unpriced_item_type":        func(c *models.SiteConfig, v string) { c.ONIX.UnpricedItemType = v },
}

// ParseSiteConfig builds the site configuration from CONFIG entries.
// Unknown keys and unreadable values are reported, never fatal.
func ParseSiteConfig(entries []parser.ConfigEntry, report *diag.Report) models.SiteConfig {
	var cfg models.SiteConfig
	links := map[string]*models.Link{}
	var linkOrder []string

	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Key))
		val := normalize.CleanText(e.Value, false)
		loc := diag.Loc{Sheet: parser.SheetConfig, Row: e.Row, Record: e.Key}

		if set, ok := configKeys[key]; ok {
			if val != "" {
				set(&cfg, val)
			}
			continue
		}

		switch key {
		case "ftp_port":
			if val == "" {
				continue
			}
			port, err := strconv.Atoi(strings.TrimSuffix(val, ".0"))
			if err != nil || port <= 0 || port > 65535 {
				report.Warn(loc, key, val, "not a port number")
				continue
			}
			cfg.FTP.Port = port
			continue
		case "onix_default_tax_rate_percent":
			if val == "" {
				continue
			}
			pct, ok := normalize.ParseNumber(e.Value)
			if !ok {
				report.Warn(loc, key, val, "not a number")
				continue
			}
			cfg.ONIX.TaxRatePercent = &pct
			continue
		}

		// lien_<name> / link_<name> carry "Label | URL" or a bare URL
		if name, ok := linkKey(key); ok {
			if val == "" {
				continue
			}
			if _, seen := links[name]; !seen {
				linkOrder = append(linkOrder, name)
			}
			links[name] = parseLink(name, val)
			continue
		}

		report.Info(loc, "key", e.Key, "unknown CONFIG key, ignored")
	}

	for _, name := range linkOrder {
		cfg.Links = append(cfg.Links, *links[name])
	}
	applyDefaults(&cfg)
	return cfg
}

func linkKey(key string) (string, bool) {
	for _, prefix := range []string{"lien_", "link_"} {
		if name, ok := strings.CutPrefix(key, prefix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func parseLink(name, val string) *models.Link {
	if label, url, ok := strings.Cut(val, "|"); ok {
		return &models.Link{Label: strings.TrimSpace(label), URL: strings.TrimSpace(url)}
	}
	return &models.Link{Label: labelFromKey(name), URL: val}
}

func labelFromKey(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func applyDefaults(cfg *models.SiteConfig) {
	if cfg.Currency == "" {
		cfg.Currency = derive.FallbackCurrency
	}
	if cfg.FTP.Port == 0 {
		cfg.FTP.Port = defaultFTPPort
	}
	if cfg.FTP.Security == "" {
		cfg.FTP.Security = "auto"
	}

	o := &cfg.ONIX
	def := func(p *string, v string) {
		if *p == "" {
			*p = v
		}
	}
	def(&o.Release, defaultONIXRelease)
	def(&o.SenderName, firstNonEmpty(cfg.Name, defaultONIXSender))
	def(&o.PublisherName, o.SenderName)
	def(&o.ImprintName, o.PublisherName)
	def(&o.Language, defaultONIXLanguage)
	def(&o.Currency, cfg.Currency)
	def(&o.PriceType, defaultONIXPriceType)
	def(&o.TaxType, defaultONIXTaxType)
	def(&o.TaxRateCode, defaultONIXTaxCode)
	def(&o.MarketCountries, defaultONIXCountry)
	def(&o.CountryOfPublisher, defaultONIXCountry)
	def(&o.UnpricedItemType, defaultONIXUnpriced)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
