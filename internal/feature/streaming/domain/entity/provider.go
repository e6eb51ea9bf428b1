// Package entity defines the streaming availability models.
package entity

// Provider is a streaming service and whether a given movie can be
// watched there.
type Provider struct {
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Available bool   `json:"available"`
	URL       string `json:"url"`
	Price     string `json:"price"`
	Quality   string `json:"quality"`
}

// PlatformResult is a per-platform search hit with a deep link into
// that platform's own search.
type PlatformResult struct {
	Available bool   `json:"available"`
	URL       string `json:"url"`
}

// SearchResults groups cross-platform search hits by service.
type SearchResults struct {
	Netflix PlatformResult `json:"netflix"`
	Prime   PlatformResult `json:"prime"`
	Disney  PlatformResult `json:"disney"`
}
