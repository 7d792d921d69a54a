// Package normalize converts untyped workbook cells into canonical types.
//
// The Parse* functions are pure. Record wraps them for one resolved row and
// reports every value it has to drop into the run's diagnostics report.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	trueTokens  = map[string]bool{"1": true, "vrai": true, "true": true, "oui": true, "yes": true, "y": true, "x": true}
	falseTokens = map[string]bool{"0": true, "faux": true, "false": true, "non": true, "no": true, "n": true}
)

// ParseBool normalizes a flag. ok is false for empty cells and for any
// token outside the accepted vocabulary (0/1, VRAI/FAUX, true/false,
// oui/non, yes/no, x), matched case-insensitively.
func ParseBool(v any) (value, ok bool) {
	switch x := v.(type) {
	case nil:
		return false, false
	case bool:
		return x, true
	case int64:
		return boolFromNumber(float64(x))
	case float64:
		return boolFromNumber(x)
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if trueTokens[s] {
			return true, true
		}
		if falseTokens[s] {
			return false, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return boolFromNumber(f)
		}
	}
	return false, false
}

func boolFromNumber(f float64) (bool, bool) {
	switch f {
	case 1:
		return true, true
	case 0:
		return false, true
	}
	return false, false
}

// ParseNumber normalizes a decimal number. Both comma and dot are accepted
// as decimal separator; when both appear the last one is the decimal
// separator. Spaces, NBSP and currency symbols are ignored. ok is false for
// empty cells and non-numeric text, never a zero.
func ParseNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		return parseNumberText(x)
	}
	return 0, false
}

var numberNoise = strings.NewReplacer(
	" ", "", "\u00a0", "", "\u202f", "", "'", "",
	"\u20ac", "", "$", "", "\u00a3", "",
)

func parseNumberText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	for _, code := range []string{"EUR", "USD", "GBP", "CHF"} {
		upper = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(upper, code), code))
	}
	s = numberNoise.Replace(upper)
	if s == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ",") == 1:
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CleanText renders a cell as text and trims it. With collapse set, every
// run of whitespace (NBSP included) becomes a single space.
func CleanText(v any, collapse bool) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(x)
	case time.Time:
		s = x.Format("2006-01-02")
	default:
		return ""
	}
	if collapse {
		return strings.Join(strings.Fields(s), " ")
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}

// ParseID13 normalizes a 13-digit identifier. Numbers, scientific notation,
// a trailing ".0", hyphens and spaces are accepted. When the result is not
// exactly 13 digits the trimmed text is returned with ok false.
func ParseID13(v any) (string, bool) {
	var s string
	switch x := v.(type) {
	case nil:
		return "", false
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		s = strconv.FormatFloat(x, 'f', 0, 64)
	default:
		s = CleanText(x, true)
	}

	if strings.Contains(strings.ToLower(s), "e+") {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			s = strconv.FormatFloat(f, 'f', 0, 64)
		}
	}
	s = strings.TrimSuffix(s, ".0")

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == '-' || r == ' ' {
			return -1
		}
		return 'x'
	}, s)
	if len(digits) == 13 && !strings.Contains(digits, "x") {
		return digits, true
	}
	return s, false
}
