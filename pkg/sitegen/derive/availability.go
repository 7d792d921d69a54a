package derive

// Status is a canonical availability status.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusForthcoming Status = "forthcoming"
	StatusToOrder     Status = "to_order"
	StatusPOD         Status = "pod"
	StatusOutOfPrint  Status = "out_of_print"
	StatusWithdrawn   Status = "withdrawn"
	StatusUnavailable Status = "unavailable"
)

// statusTokens maps slugified status codes, French, English and ONIX
// List 65, to canonical statuses.
var statusTokens = map[string]Status{
	"available": StatusAvailable, "disponible": StatusAvailable, "en-stock": StatusAvailable,
	"20": StatusAvailable, "21": StatusAvailable,
	"forthcoming": StatusForthcoming, "a-paraitre": StatusForthcoming, "10": StatusForthcoming,
	"to-order": StatusToOrder, "sur-commande": StatusToOrder, "22": StatusToOrder,
	"pod": StatusPOD, "impression-a-la-demande": StatusPOD, "23": StatusPOD,
	"out-of-print": StatusOutOfPrint, "epuise": StatusOutOfPrint, "43": StatusOutOfPrint,
	"withdrawn": StatusWithdrawn, "retire": StatusWithdrawn, "46": StatusWithdrawn,
	"unavailable": StatusUnavailable, "indisponible": StatusUnavailable, "40": StatusUnavailable,
}

var statusLabels = map[Status]string{
	StatusAvailable:   "Disponible",
	StatusForthcoming: "À paraître",
	StatusToOrder:     "Sur commande",
	StatusPOD:         "Impression à la demande",
	StatusOutOfPrint:  "Épuisé",
	StatusWithdrawn:   "Retiré de la vente",
	StatusUnavailable: "Indisponible",
}

// ParseStatus maps a status code to its canonical status.
func ParseStatus(code string) (Status, bool) {
	s, ok := statusTokens[Slugify(code)]
	return s, ok
}

// Label returns the reader-facing label of a status.
func (s Status) Label() string {
	return statusLabels[s]
}

// AvailabilityLabel picks the label shown to readers. An explicit label
// wins; otherwise the status code is looked up. An unrecognized code
// yields an empty label and recognized false.
func AvailabilityLabel(explicit, code string) (label string, recognized bool) {
	if explicit != "" {
		return explicit, true
	}
	if code == "" {
		return "", true
	}
	s, ok := ParseStatus(code)
	if !ok {
		return "", false
	}
	return s.Label(), true
}
