// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

import "github.com/samber/mo"

// SearchResult represents a catalog candidate discovered through a scraper search.
// Every result carries a non-empty title and a non-empty absolute URL.
type SearchResult struct {
	Title string `json:"title"`
	// Direct URL to the item page or media file.
	URL string `json:"url"`
	// Release year, when the catalog exposes one.
	Year mo.Option[int] `json:"year"`
	// Extra provider-specific metadata.
	Extra map[string]string `json:"extra,omitempty"`
}

// String returns the display title of the result.
func (r *SearchResult) String() string {
	return r.Title
}
