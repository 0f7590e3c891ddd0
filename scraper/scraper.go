// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
//
// A host application talks to every catalog adapter through the narrow types
// in this package: it builds an Options bag per call, receives SearchResult
// values back, and hands one of them (as Metadata) to Scrape to obtain a
// playable stream descriptor.
package scraper

// Scraper defines the required capabilities for a catalog scraping engine.
type Scraper interface {
	// Name returns the human-readable identifier of the scraper.
	Name() string

	// ID returns the registry identifier of the scraper.
	ID() string

	// Search executes a query against the catalog and returns matching candidates.
	// A nil options bag selects the defaults.
	Search(query string, options *Options) ([]*SearchResult, error)

	// Scrape resolves previously discovered metadata into a playable media envelope.
	Scrape(media *Metadata, options *Options) (Media, error)

	// ScrapeEpisodes retrieves the episode listing for the given metadata.
	// Scrapers without episodic data return an empty listing and no error.
	ScrapeEpisodes(media *Metadata, options *Options) ([]*Episode, error)
}
