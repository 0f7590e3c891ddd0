// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

// Metadata identifies the item a host wants resolved. It is the narrow shape
// this core reads from whatever richer type the host tracks: the URL of a
// previously returned SearchResult (preferred) and the raw query text.
type Metadata struct {
	// Query is the free-text search the user typed.
	Query string `json:"query"`
	// URL is the catalog URL of the chosen result; may be empty when the
	// host only has a query.
	URL string `json:"url"`
}
