package models

// Link is an institutional link shown in the site footer.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FTPConfig holds publishing credentials from the CONFIG sheet.
type FTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	RemoteDir string
	// Security is one of "auto", "plain" or "ftps".
	Security string
}

// Complete reports whether every field needed to connect is set.
func (c FTPConfig) Complete() bool {
	return c.Host != "" && c.User != "" && c.Password != "" && c.RemoteDir != ""
}

// ONIXConfig holds the defaults used by the ONIX export.
type ONIXConfig struct {
	Release            string
	SenderName         string
	PublisherName      string
	ImprintName        string
	Language           string
	Currency           string
	PriceType          string
	TaxType            string
	TaxRateCode        string
	TaxRatePercent     *float64
	MarketCountries    string
	CountryOfPublisher string
	UnpricedItemType   string
}

// SiteConfig is the structure-wide configuration read from the CONFIG sheet.
// Only the public part is serialized.
type SiteConfig struct {
	// Name is the name of the publishing house.
	Name string `json:"name"`
	// Baseline is the tagline shown under the site name.
	Baseline string `json:"baseline,omitempty"`
	// BaseURL is the public root URL of the site.
	BaseURL string `json:"base_url,omitempty"`
	// Links are institutional links in CONFIG row order.
	Links []Link `json:"links,omitempty"`
	// Currency is the default currency for prices without one.
	Currency string `json:"currency"`

	// BooksSheet points at the catalog sheet or a defined name.
	BooksSheet string `json:"-"`
	// CoverPlaceholder is the placeholder image filename in the covers directory.
	CoverPlaceholder string `json:"-"`
	FTP              FTPConfig  `json:"-"`
	ONIX             ONIXConfig `json:"-"`
}
