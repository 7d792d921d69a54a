// Package derive computes the title fields that are not read directly
// from a cell: slug, availability label and effective price.
package derive

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength bounds generated slugs, disambiguation suffix included.
const MaxSlugLength = 80

var ligatures = strings.NewReplacer("œ", "oe", "Œ", "OE", "æ", "ae", "Æ", "AE", "ß", "ss")

// Slugify turns text into a lowercase ASCII slug: diacritics are stripped
// and every run of other characters becomes a single "-".
func Slugify(s string) string {
	// A transformer chain keeps state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return truncate(b.String(), MaxSlugLength)
}

func truncate(slug string, max int) string {
	if len(slug) <= max {
		return slug
	}
	return strings.TrimRight(slug[:max], "-")
}

// SlugAllocator hands out unique slugs in processing order.
// Slugs declared explicitly anywhere in the sheet are reserved up front so
// that a generated slug never takes one of them.
type SlugAllocator struct {
	reserved map[string]bool
	taken    map[string]bool
}

// NewSlugAllocator creates an allocator with the explicit slugs reserved.
func NewSlugAllocator(explicit []string) *SlugAllocator {
	a := &SlugAllocator{reserved: make(map[string]bool), taken: make(map[string]bool)}
	for _, s := range explicit {
		if s != "" {
			a.reserved[s] = true
		}
	}
	return a
}

// Claim records an explicit slug. It never alters it: duplicates among
// explicit slugs are a validation matter.
func (a *SlugAllocator) Claim(slug string) string {
	a.taken[slug] = true
	return slug
}

// Generate derives a slug from text, falling back to fallback when text
// yields nothing, and appends -2, -3... until the slug is free.
func (a *SlugAllocator) Generate(text, fallback string) string {
	base := Slugify(text)
	if base == "" {
		base = Slugify(fallback)
	}
	if base == "" {
		base = "titre"
	}

	candidate := base
	for n := 2; a.taken[candidate] || a.reserved[candidate]; n++ {
		suffix := "-" + strconv.Itoa(n)
		candidate = truncate(base, MaxSlugLength-len(suffix)) + suffix
	}
	a.taken[candidate] = true
	return candidate
}
