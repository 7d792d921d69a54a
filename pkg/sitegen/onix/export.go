// Package onix exports the catalog as an ONIX 3.0 reference-tag message.
//
// The feed is built from the canonical model only. Problems that do not
// prevent a valid message (missing price, unusable cover URL) are returned
// as QA issues next to the document.
package onix

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

// Options configures an export.
type Options struct {
	// Now returns the time written to the header. Defaults to time.Now.
	Now func() time.Time
}

// Issue is one QA finding about a title of the feed.
type Issue struct {
	Row   int
	ISBN  string
	Title string
	Issue string
}

// Document is the result of an export.
type Document struct {
	Message *Message
	Issues  []Issue
}

var isbn13 = regexp.MustCompile(`^\d{13}$`)

// Export builds the ONIX message for the titles of cat, in catalog order.
// Titles without a 13-digit ISBN or a title are skipped and reported.
func Export(cat *models.Catalog, opts Options) *Document {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	cfg := cat.Site.ONIX

	doc := &Document{Message: &Message{
		Xmlns:   Namespace,
		Release: cfg.Release,
		Header: Header{
			Sender:       Sender{SenderName: cfg.SenderName},
			SentDateTime: now().Format("20060102T1504"),
		},
	}}

	for _, t := range cat.Titles {
		if !isbn13.MatchString(t.ID13) || t.Title == "" {
			doc.issue(t, "missing id13/title")
			continue
		}
		doc.Message.Products = append(doc.Message.Products, doc.product(cat.Site, t))
	}
	return doc
}

func (d *Document) issue(t models.Title, msg string) {
	d.Issues = append(d.Issues, Issue{Row: t.Row, ISBN: t.ID13, Title: t.Title, Issue: msg})
}

// XML renders the message with an XML declaration and two-space indentation.
func (d *Document) XML() ([]byte, error) {
	body, err := xml.MarshalIndent(d.Message, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	return append(out, '\n'), nil
}

func (d *Document) product(site models.SiteConfig, t models.Title) Product {
	cfg := site.ONIX
	return Product{
		RecordReference:   t.ID13,
		NotificationType:  "03",
		ProductIdentifier: ProductIdentifier{ProductIDType: "15", IDValue: t.ID13},
		DescriptiveDetail: descriptiveDetail(cfg, t),
		CollateralDetail:  d.collateralDetail(site, t),
		PublishingDetail: PublishingDetail{
			Imprint:              Imprint{ImprintName: cfg.ImprintName},
			Publisher:            Publisher{PublishingRole: "01", PublisherName: cfg.PublisherName},
			CountryOfPublication: cfg.CountryOfPublisher,
			PublishingDate:       publishingDate(t.PublicationDate),
		},
		ProductSupply: ProductSupply{
			Market:       Market{Territory: Territory{CountriesIncluded: cfg.MarketCountries}},
			SupplyDetail: d.supplyDetail(cfg, t),
		},
	}
}

func descriptiveDetail(cfg models.ONIXConfig, t models.Title) DescriptiveDetail {
	dd := DescriptiveDetail{
		ProductComposition: "00",
		ProductForm:        "BC",
		TitleDetail: TitleDetail{
			TitleType: "01",
			TitleElement: TitleElement{
				TitleElementLevel: "01",
				TitleText:         t.Title,
				Subtitle:          t.Subtitle,
			},
		},
		Language: Language{LanguageRole: "01", LanguageCode: firstNonEmpty(t.Language, cfg.Language)},
	}

	if f := t.Format; f != nil {
		if f.Code != "" {
			dd.ProductForm = f.Code
		}
		dd.ProductFormDetail = f.Details
		dd.Measures = measures(f)
		if f.Pages != nil && *f.Pages > 0 {
			dd.Extents = []Extent{{ExtentType: "00", ExtentValue: strconv.Itoa(*f.Pages), ExtentUnit: "03"}}
		}
	}

	for i, c := range ParseContributors(t.Contributors) {
		dd.Contributors = append(dd.Contributors, Contributor{
			SequenceNumber:     i + 1,
			ContributorRoles:   c.Roles,
			PersonNameInverted: c.NameInverted,
		})
	}
	if len(dd.Contributors) == 0 {
		dd.NoContributor = &struct{}{}
	}

	if s := t.Subjects; s != nil {
		for _, sub := range []struct{ scheme, code string }{{"93", s.Thema}, {"29", s.CLIL}, {"10", s.BISAC}} {
			if sub.code == "" {
				continue
			}
			subject := Subject{SubjectSchemeIdentifier: sub.scheme, SubjectCode: sub.code}
			if len(dd.Subjects) == 0 {
				subject.MainSubject = &struct{}{}
			}
			dd.Subjects = append(dd.Subjects, subject)
		}
	}
	return dd
}

// measures lists width, height, thickness (cm) and weight (gr) when positive.
func measures(f *models.Format) []Measure {
	var out []Measure
	for _, m := range []struct {
		typ  string
		v    *float64
		unit string
	}{
		{"02", f.WidthCm, "cm"},
		{"01", f.HeightCm, "cm"},
		{"03", f.ThicknessCm, "cm"},
		{"08", f.WeightG, "gr"},
	} {
		if m.v == nil || *m.v <= 0 {
			continue
		}
		out = append(out, Measure{MeasureType: m.typ, Measurement: strconv.FormatFloat(*m.v, 'f', -1, 64), MeasureUnitCode: m.unit})
	}
	return out
}

func (d *Document) collateralDetail(site models.SiteConfig, t models.Title) *CollateralDetail {
	var cd CollateralDetail
	for _, tc := range []struct{ typ, text string }{
		{"02", t.ShortDescription},
		{"03", t.LongDescription},
		{"04", t.TableOfContents},
	} {
		if tc.text != "" {
			cd.TextContents = append(cd.TextContents, TextContent{TextType: tc.typ, ContentAudience: "00", Text: tc.text})
		}
	}

	if link := d.coverLink(site, t); link != "" {
		cd.SupportingResources = []SupportingResource{{
			ResourceContentType: "01",
			ContentAudience:     "00",
			ResourceMode:        "03",
			ResourceVersion:     ResourceVersion{ResourceForm: "02", ResourceLink: link},
		}}
	}

	if len(cd.TextContents) == 0 && len(cd.SupportingResources) == 0 {
		return nil
	}
	return &cd
}

// coverLink returns the explicit cover URL when usable, else the URL of
// the copied cover under the site base URL.
func (d *Document) coverLink(site models.SiteConfig, t models.Title) string {
	if u := t.CoverURL; u != "" {
		if (strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")) && !strings.Contains(u, " ") {
			return u
		}
		d.issue(t, "invalid cover URL (skip): "+u)
		return ""
	}
	if site.BaseURL != "" && !t.Cover.Missing && t.Cover.Path != "" {
		return strings.TrimRight(site.BaseURL, "/") + "/" + t.Cover.Path
	}
	return ""
}

func publishingDate(d *models.Date) *PublishingDate {
	if d == nil || d.ISO == "" {
		return nil
	}
	value := strings.ReplaceAll(d.ISO, "-", "")
	date := Date{Value: value}
	switch len(value) {
	case 6:
		date.Format = "01"
	case 4:
		date.Format = "05"
	}
	return &PublishingDate{PublishingDateRole: "01", Date: date}
}

func (d *Document) supplyDetail(cfg models.ONIXConfig, t models.Title) SupplyDetail {
	sd := SupplyDetail{
		Supplier:            Supplier{SupplierRole: "09", SupplierName: cfg.PublisherName},
		ProductAvailability: AvailabilityCode(t.Availability, t.AvailabilityLabel),
	}

	if t.Price == nil || t.Price.Amount <= 0 {
		sd.UnpricedItemType = cfg.UnpricedItemType
		d.issue(t, "WARN: missing/invalid price -> UnpricedItemType="+cfg.UnpricedItemType)
		return sd
	}

	amount := strconv.FormatFloat(t.Price.Amount, 'f', 2, 64)
	amount = strings.TrimRight(strings.TrimRight(amount, "0"), ".")
	p := &Price{
		PriceType:    cfg.PriceType,
		PriceAmount:  amount,
		CurrencyCode: firstNonEmpty(t.Price.Currency, cfg.Currency),
	}
	if cfg.TaxRatePercent != nil {
		p.Tax = &Tax{
			TaxType:        cfg.TaxType,
			TaxRateCode:    cfg.TaxRateCode,
			TaxRatePercent: strconv.FormatFloat(*cfg.TaxRatePercent, 'f', -1, 64),
		}
	}
	sd.Price = p
	return sd
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
