package derive

import (
	"strings"
	"testing"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"L'Été des Lumières", "l-ete-des-lumieres"},
		{"  Œuvres complètes, t. II  ", "oeuvres-completes-t-ii"},
		{"Ça ira — 1789 !", "ca-ira-1789"},
		{"***", ""},
		{"Straße", "strasse"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("histoire ", 20)
	got := Slugify(long)
	assert.LessOrEqual(t, len(got), MaxSlugLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "histoire-histoire"))
}

func TestSlugAllocatorCollisions(t *testing.T) {
	a := NewSlugAllocator([]string{"l-ete-des-lumieres-2"})

	assert.Equal(t, "l-ete-des-lumieres", a.Generate("L'Été des Lumières", "9782877759908"))
	// -2 is reserved by an explicit slug declared later in the sheet
	assert.Equal(t, "l-ete-des-lumieres-3", a.Generate("L’été des lumières", "9782877759915"))
	assert.Equal(t, "l-ete-des-lumieres-2", a.Claim("l-ete-des-lumieres-2"))
	assert.Equal(t, "9782877759922", a.Generate("", "9782877759922"))
	assert.Equal(t, "titre", a.Generate("", ""))
	assert.Equal(t, "titre-2", a.Generate("?", ""))
}

func TestSlugAllocatorIsDeterministic(t *testing.T) {
	titles := []string{"Atlas", "atlas", "ATLAS", "Atlas!"}
	run := func() []string {
		a := NewSlugAllocator(nil)
		var out []string
		for _, title := range titles {
			out = append(out, a.Generate(title, ""))
		}
		return out
	}
	first := run()
	assert.Equal(t, []string{"atlas", "atlas-2", "atlas-3", "atlas-4"}, first)
	assert.Equal(t, first, run())
}

func TestAvailabilityLabel(t *testing.T) {
	tests := []struct {
		explicit, code string
		label          string
		recognized     bool
	}{
		{"Disponible en librairie", "epuise", "Disponible en librairie", true},
		{"", "épuisé", "Épuisé", true},
		{"", "A_PARAITRE", "À paraître", true},
		{"", "21", "Disponible", true},
		{"", "", "", true},
		{"", "bientôt", "", false},
	}
	for _, tt := range tests {
		label, ok := AvailabilityLabel(tt.explicit, tt.code)
		assert.Equal(t, tt.label, label, "AvailabilityLabel(%q, %q)", tt.explicit, tt.code)
		assert.Equal(t, tt.recognized, ok, "AvailabilityLabel(%q, %q) recognized", tt.explicit, tt.code)
	}
}

func TestEffectivePrice(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	got := EffectivePrice(PriceInput{PriceTTC: f(29.90), Currency: "eur"})
	require.NotNil(t, got)
	assert.Equal(t, models.Price{Amount: 29.90, Currency: "EUR", Source: "prix_ttc"}, *got)

	got = EffectivePrice(PriceInput{Price: f(18), PriceTTC: f(20), DefaultCurrency: "CHF"})
	require.NotNil(t, got)
	assert.Equal(t, models.Price{Amount: 18, Currency: "CHF", Source: "price"}, *got)

	// Zero is a real price (free), not a missing one
	got = EffectivePrice(PriceInput{Price: f(0)})
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got.Amount)
	assert.Equal(t, FallbackCurrency, got.Currency)

	assert.Nil(t, EffectivePrice(PriceInput{Currency: "EUR"}))
}
