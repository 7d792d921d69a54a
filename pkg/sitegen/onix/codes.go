package onix

import (
	"regexp"
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/derive"
)

// ContributorEntry is one parsed contributor.
type ContributorEntry struct {
	NameInverted string
	Roles        []string
}

var roleSeparators = regexp.MustCompile(`[+/ ]+`)

// ParseContributors parses "Nom, Prénom, B01; Nom2, Prénom2, A01+B06".
// An entry with fewer than three comma-separated parts has no role and
// defaults to A01 (author).
func ParseContributors(raw string) []ContributorEntry {
	var out []ContributorEntry
	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		bits := strings.Split(item, ",")
		for i := range bits {
			bits[i] = strings.TrimSpace(bits[i])
		}

		name, role := item, ""
		if len(bits) >= 3 {
			role = bits[len(bits)-1]
			name = strings.Join(bits[:len(bits)-1], ", ")
		}
		var roles []string
		for _, r := range roleSeparators.Split(role, -1) {
			if r != "" {
				roles = append(roles, r)
			}
		}
		if len(roles) == 0 {
			roles = []string{"A01"}
		}
		out = append(out, ContributorEntry{NameInverted: name, Roles: roles})
	}
	return out
}

var statusCodes = map[derive.Status]string{
	derive.StatusAvailable:   "20",
	derive.StatusForthcoming: "10",
	derive.StatusToOrder:     "22",
	derive.StatusPOD:         "23",
	derive.StatusOutOfPrint:  "43",
	derive.StatusWithdrawn:   "46",
	derive.StatusUnavailable: "40",
}

// AvailabilityCode maps a title's availability to ONIX List 65. A known
// status or label maps directly; otherwise keywords of the free text decide.
// Nothing at all means available.
func AvailabilityCode(status, label string) string {
	for _, v := range []string{status, label} {
		if s, ok := derive.ParseStatus(v); ok {
			return statusCodes[s]
		}
	}
	text := strings.ToLower(firstNonEmpty(status, label))
	switch {
	case text == "":
		return "20"
	case strings.Contains(text, "para"):
		return "10"
	case strings.Contains(text, "stock"):
		return "21"
	case strings.Contains(text, "commande"):
		return "22"
	case strings.Contains(text, "pod"), strings.Contains(text, "impression"):
		return "23"
	case strings.Contains(text, "épuis"), strings.Contains(text, "epuis"), strings.Contains(text, "plus fourni"):
		return "43"
	case strings.Contains(text, "retir"):
		return "46"
	}
	return "40"
}
