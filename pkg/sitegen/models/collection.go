package models

// Collection is a book series of the publishing house.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"titre"`
	Direction   string `json:"direction,omitempty"`
	Description string `json:"description,omitempty"`
	ISSN        string `json:"issn,omitempty"`
	// Titles lists the id13 of active titles in the collection, in catalog order.
	Titles []string `json:"titles"`
	// Row is the 1-based row in the COLLECTIONS sheet.
	Row int `json:"-"`
}

// Journal is a periodical published by the house.
type Journal struct {
	ID          string `json:"id"`
	Title       string `json:"titre"`
	ISSN        string `json:"issn,omitempty"`
	EISSN       string `json:"eissn,omitempty"`
	Periodicity string `json:"periodicite,omitempty"`
	Direction   string `json:"direction,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	// Titles lists the id13 of active issues, in catalog order.
	Titles []string `json:"titles"`
	// Row is the 1-based row in the REVUES sheet.
	Row int `json:"-"`
}
