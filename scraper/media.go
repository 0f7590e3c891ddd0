// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

// MediaType discriminates the envelope kinds a scraper can produce.
type MediaType int

const (
	// TypeSingle denotes one directly streamable resource.
	TypeSingle MediaType = iota + 1
	// TypeMulti denotes a multi-episode collection. Present for contract
	// completeness; the builtin scraper never produces it.
	TypeMulti
)

// String returns the lowercase name of the media type.
func (t MediaType) String() string {
	switch t {
	case TypeSingle:
		return "single"
	case TypeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Source represents a resolved, directly playable stream.
type Source struct {
	// Direct URL to the stream/file.
	URL string `json:"url"`
	// HTTP headers the player must send when fetching the stream.
	Headers map[string]string `json:"headers"`
}

// String returns the stream URL for display.
func (s *Source) String() string {
	return s.URL
}

// Media is the envelope returned by Scrape.
type Media interface {
	// Type reports the envelope kind.
	Type() MediaType
	// Stream returns the playable source of the envelope.
	Stream() *Source
}

// Single wraps exactly one playable stream.
type Single struct {
	Source *Source `json:"source"`
}

// Type reports the envelope kind.
func (s *Single) Type() MediaType {
	return TypeSingle
}

// Stream returns the playable source of the envelope.
func (s *Single) Stream() *Source {
	return s.Source
}
