package normalize

import (
	"testing"
	"time"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in    any
		value bool
		ok    bool
	}{
		{"VRAI", true, true},
		{"faux", false, true},
		{" Oui ", true, true},
		{"non", false, true},
		{"1", true, true},
		{"0", false, true},
		{int64(1), true, true},
		{float64(0), false, true},
		{true, true, true},
		{"x", true, true},
		{"peut-être", false, false},
		{int64(2), false, false},
		{"", false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		v, ok := ParseBool(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseBool(%#v) ok", tt.in)
		assert.Equal(t, tt.value, v, "ParseBool(%#v) value", tt.in)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{"29,90", 29.90, true},
		{"29.90", 29.90, true},
		{"1 234,50 €", 1234.50, true},
		{"1 234,50", 1234.50, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"EUR 18", 18, true},
		{"0", 0, true},
		{int64(25), 25, true},
		{12.5, 12.5, true},
		{"gratuit", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseNumber(%#v) ok", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "ParseNumber(%#v)", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   any
		want models.Date
		ok   bool
	}{
		{"2024-03-12", models.Date{ISO: "2024-03-12", Display: "12 mars 2024"}, true},
		{"12/03/2024", models.Date{ISO: "2024-03-12", Display: "12 mars 2024"}, true},
		{"1/3/2024", models.Date{ISO: "2024-03-01", Display: "1er mars 2024"}, true},
		{"2024-03", models.Date{ISO: "2024-03", Display: "mars 2024"}, true},
		{"Février 2023", models.Date{ISO: "2023-02", Display: "février 2023"}, true},
		{"15 août 2022", models.Date{ISO: "2022-08-15", Display: "15 août 2022"}, true},
		{"2021", models.Date{ISO: "2021", Display: "2021"}, true},
		{int64(2021), models.Date{ISO: "2021", Display: "2021"}, true},
		{float64(45363), models.Date{ISO: "2024-03-12", Display: "12 mars 2024"}, true},
		{time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), models.Date{ISO: "2020-01-05", Display: "5 janvier 2020"}, true},
		{"printemps 2025", models.Date{Display: "printemps 2025"}, false},
		{"31 février 2024", models.Date{Display: "31 février 2024"}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseDate(%#v) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseDate(%#v)", tt.in)
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "L'Été des Lumières", CleanText("  L'Été  des\tLumières ", true))
	assert.Equal(t, "**gras**\n\n- item", CleanText("  **gras**\r\n\r\n- item  ", false))
	assert.Equal(t, "12.5", CleanText(12.5, true))
	assert.Equal(t, "", CleanText(nil, true))
}

func TestParseID13(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{int64(9782877759908), "9782877759908", true},
		{9.782877759908e12, "9782877759908", true},
		{"978-2-87775-990-8", "9782877759908", true},
		{"9782877759908.0", "9782877759908", true},
		{"9.782877759908E+12", "9782877759908", true},
		{"REV-2024-01", "REV-2024-01", false},
		{"12345", "12345", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		got, ok := ParseID13(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseID13(%#v) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseID13(%#v)", tt.in)
	}
}
