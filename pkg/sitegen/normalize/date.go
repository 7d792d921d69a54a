package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/xuri/excelize/v2"
)

var dayLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	"20060102",
}

var monthLayouts = []string{"2006-01", "01/2006", "1/2006"}

var frenchMonths = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var monthByName = func() map[string]time.Month {
	m := make(map[string]time.Month)
	for i, name := range frenchMonths {
		m[name] = time.Month(i + 1)
	}
	m["fevrier"] = time.February
	m["aout"] = time.August
	m["decembre"] = time.December
	return m
}()

// "12 mars 2024", "1er mars 2024", "mars 2024"
var frenchDateRe = regexp.MustCompile(`^(?:(\d{1,2})(?:er)?\s+)?(\p{L}+)\s+(\d{4})$`)

// ParseDate normalizes a publication date. Excel serial numbers, ISO and
// day-first layouts, "YYYY-MM", a bare year and French month names are
// understood. When nothing matches, the text is kept as Display with ok false:
// callers must not assume dates are comparable.
func ParseDate(v any) (models.Date, bool) {
	switch x := v.(type) {
	case nil:
		return models.Date{}, false
	case time.Time:
		return dayDate(x), true
	case int64:
		return dateFromNumber(float64(x))
	case float64:
		return dateFromNumber(x)
	}

	s := CleanText(v, true)
	if s == "" {
		return models.Date{}, false
	}
	if len(s) == 4 {
		if y, err := strconv.Atoi(s); err == nil && y >= 1000 {
			return yearDate(y), true
		}
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dayDate(t), true
		}
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return monthDate(t.Year(), t.Month()), true
		}
	}
	if m := frenchDateRe.FindStringSubmatch(strings.ToLower(s)); m != nil {
		month, ok := monthByName[m[2]]
		year, _ := strconv.Atoi(m[3])
		if ok {
			if m[1] == "" {
				return monthDate(year, month), true
			}
			day, _ := strconv.Atoi(m[1])
			t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if t.Day() == day {
				return dayDate(t), true
			}
		}
	}
	return models.Date{Display: s}, false
}

func dateFromNumber(f float64) (models.Date, bool) {
	if f == float64(int64(f)) && f >= 1000 && f <= 9999 {
		return yearDate(int(f)), true
	}
	if f <= 0 {
		return models.Date{Display: strconv.FormatFloat(f, 'f', -1, 64)}, false
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return models.Date{Display: strconv.FormatFloat(f, 'f', -1, 64)}, false
	}
	return dayDate(t), true
}

func dayDate(t time.Time) models.Date {
	day := fmt.Sprint(t.Day())
	if t.Day() == 1 {
		day = "1er"
	}
	return models.Date{
		ISO:     t.Format("2006-01-02"),
		Display: fmt.Sprintf("%s %s %d", day, frenchMonths[t.Month()-1], t.Year()),
	}
}

func monthDate(year int, month time.Month) models.Date {
	return models.Date{
		ISO:     fmt.Sprintf("%04d-%02d", year, int(month)),
		Display: fmt.Sprintf("%s %d", frenchMonths[month-1], year),
	}
}

func yearDate(year int) models.Date {
	return models.Date{ISO: fmt.Sprintf("%04d", year), Display: strconv.Itoa(year)}
}
