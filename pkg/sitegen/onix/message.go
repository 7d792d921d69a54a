package onix

import "encoding/xml"

// Namespace is the ONIX 3.0 reference-tag namespace.
const Namespace = "http://ns.editeur.org/onix/3.0/reference"

// Element order in the structs below follows the ONIX 3.0 XSD sequence.

// Message is the root ONIXMessage element.
type Message struct {
	XMLName  xml.Name  `xml:"ONIXMessage"`
	Xmlns    string    `xml:"xmlns,attr"`
	Release  string    `xml:"release,attr"`
	Header   Header    `xml:"Header"`
	Products []Product `xml:"Product"`
}

type Header struct {
	Sender       Sender `xml:"Sender"`
	SentDateTime string `xml:"SentDateTime"`
}

type Sender struct {
	SenderName string `xml:"SenderName"`
}

// Product is one title of the feed.
type Product struct {
	RecordReference   string            `xml:"RecordReference"`
	NotificationType  string            `xml:"NotificationType"`
	ProductIdentifier ProductIdentifier `xml:"ProductIdentifier"`
	DescriptiveDetail DescriptiveDetail `xml:"DescriptiveDetail"`
	CollateralDetail  *CollateralDetail `xml:"CollateralDetail,omitempty"`
	PublishingDetail  PublishingDetail  `xml:"PublishingDetail"`
	ProductSupply     ProductSupply     `xml:"ProductSupply"`
}

type ProductIdentifier struct {
	ProductIDType string `xml:"ProductIDType"`
	IDValue       string `xml:"IDValue"`
}

type DescriptiveDetail struct {
	ProductComposition string        `xml:"ProductComposition"`
	ProductForm        string        `xml:"ProductForm"`
	ProductFormDetail  []string      `xml:"ProductFormDetail"`
	Measures           []Measure     `xml:"Measure"`
	TitleDetail        TitleDetail   `xml:"TitleDetail"`
	Contributors       []Contributor `xml:"Contributor"`
	NoContributor      *struct{}     `xml:"NoContributor"`
	Language           Language      `xml:"Language"`
	Extents            []Extent      `xml:"Extent"`
	Subjects           []Subject     `xml:"Subject"`
}

type Measure struct {
	MeasureType     string `xml:"MeasureType"`
	Measurement     string `xml:"Measurement"`
	MeasureUnitCode string `xml:"MeasureUnitCode"`
}

type TitleDetail struct {
	TitleType    string       `xml:"TitleType"`
	TitleElement TitleElement `xml:"TitleElement"`
}

type TitleElement struct {
	TitleElementLevel string `xml:"TitleElementLevel"`
	TitleText         string `xml:"TitleText"`
	Subtitle          string `xml:"Subtitle,omitempty"`
}

type Contributor struct {
	SequenceNumber     int      `xml:"SequenceNumber"`
	ContributorRoles   []string `xml:"ContributorRole"`
	PersonNameInverted string   `xml:"PersonNameInverted"`
}

type Language struct {
	LanguageRole string `xml:"LanguageRole"`
	LanguageCode string `xml:"LanguageCode"`
}

type Extent struct {
	ExtentType  string `xml:"ExtentType"`
	ExtentValue string `xml:"ExtentValue"`
	ExtentUnit  string `xml:"ExtentUnit"`
}

type Subject struct {
	MainSubject             *struct{} `xml:"MainSubject"`
	SubjectSchemeIdentifier string    `xml:"SubjectSchemeIdentifier"`
	SubjectCode             string    `xml:"SubjectCode"`
}

type CollateralDetail struct {
	TextContents        []TextContent        `xml:"TextContent"`
	SupportingResources []SupportingResource `xml:"SupportingResource"`
}

type TextContent struct {
	TextType        string `xml:"TextType"`
	ContentAudience string `xml:"ContentAudience"`
	Text            string `xml:"Text"`
}

type SupportingResource struct {
	ResourceContentType string          `xml:"ResourceContentType"`
	ContentAudience     string          `xml:"ContentAudience"`
	ResourceMode        string          `xml:"ResourceMode"`
	ResourceVersion     ResourceVersion `xml:"ResourceVersion"`
}

type ResourceVersion struct {
	ResourceForm string `xml:"ResourceForm"`
	ResourceLink string `xml:"ResourceLink"`
}

type PublishingDetail struct {
	Imprint              Imprint         `xml:"Imprint"`
	Publisher            Publisher       `xml:"Publisher"`
	CountryOfPublication string          `xml:"CountryOfPublication"`
	PublishingDate       *PublishingDate `xml:"PublishingDate"`
}

type Imprint struct {
	ImprintName string `xml:"ImprintName"`
}

type Publisher struct {
	PublishingRole string `xml:"PublishingRole"`
	PublisherName  string `xml:"PublisherName"`
}

type PublishingDate struct {
	PublishingDateRole string `xml:"PublishingDateRole"`
	Date               Date   `xml:"Date"`
}

// Date is an ONIX date; Format is the List 55 code, omitted for YYYYMMDD.
type Date struct {
	Format string `xml:"dateformat,attr,omitempty"`
	Value  string `xml:",chardata"`
}

type ProductSupply struct {
	Market       Market       `xml:"Market"`
	SupplyDetail SupplyDetail `xml:"SupplyDetail"`
}

type Market struct {
	Territory Territory `xml:"Territory"`
}

type Territory struct {
	CountriesIncluded string `xml:"CountriesIncluded"`
}

type SupplyDetail struct {
	Supplier            Supplier `xml:"Supplier"`
	ProductAvailability string   `xml:"ProductAvailability"`
	UnpricedItemType    string   `xml:"UnpricedItemType,omitempty"`
	Price               *Price   `xml:"Price"`
}

type Supplier struct {
	SupplierRole string `xml:"SupplierRole"`
	SupplierName string `xml:"SupplierName"`
}

type Price struct {
	PriceType    string `xml:"PriceType"`
	PriceAmount  string `xml:"PriceAmount"`
	Tax          *Tax   `xml:"Tax"`
	CurrencyCode string `xml:"CurrencyCode"`
}

type Tax struct {
	TaxType        string `xml:"TaxType"`
	TaxRateCode    string `xml:"TaxRateCode"`
	TaxRatePercent string `xml:"TaxRatePercent"`
}
