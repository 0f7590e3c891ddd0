// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

// Episode represents a discrete media segment within an episodic collection.
type Episode struct {
	// Display name (e.g. "Episode 1").
	Name string `json:"name"`
	// Direct URL to the episode page.
	URL string `json:"url"`
	// Episode number/index.
	Index uint16 `json:"index"`
}

// String returns the canonical string representation of the episode identifier.
func (e *Episode) String() string {
	return e.Name
}
