package derive

import (
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

// FallbackCurrency is used when neither the row nor CONFIG names one.
const FallbackCurrency = "EUR"

// PriceInput gathers the normalized price columns of a row.
type PriceInput struct {
	Price           *float64
	PriceTTC        *float64
	Currency        string
	DefaultCurrency string
}

// EffectivePrice resolves the price to display: the canonical price when
// set, else prix_ttc, else nil. Nil means the price block is omitted.
func EffectivePrice(in PriceInput) *models.Price {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = strings.ToUpper(strings.TrimSpace(in.DefaultCurrency))
	}
	if currency == "" {
		currency = FallbackCurrency
	}

	switch {
	case in.Price != nil:
		return &models.Price{Amount: *in.Price, Currency: currency, Source: "price"}
	case in.PriceTTC != nil:
		return &models.Price{Amount: *in.PriceTTC, Currency: currency, Source: "prix_ttc"}
	}
	return nil
}
