package models

// Page is a fixed editorial page (about, submissions, legal notice...).
type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"titre"`
	// Body is the page text in markup source form.
	Body string `json:"contenu"`
	// Order is the ordering key; pages without one keep row order after the others.
	Order *float64 `json:"ordre,omitempty"`
	// Menu reports whether the page is linked from the navigation menu.
	Menu bool `json:"menu"`
}

// Contact is one entry of the CONTACTS sheet.
type Contact struct {
	Name    string `json:"nom"`
	Role    string `json:"fonction,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telephone,omitempty"`
	Address string `json:"adresse,omitempty"`
	URL     string `json:"url,omitempty"`
}
