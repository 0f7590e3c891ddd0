// Package openmovies implements the builtin catalog scraper.
//
// It is a small, general-purpose resolver: point it at a JSON feed, a plain
// HTML link list, or an arbitrary page plus CSS selectors, and it turns the
// catalog into search results and playable streams. The default catalog is a
// public demo feed of Blender open movies and Google sample MP4s, so the
// scraper works out of the box with no configuration.
package openmovies

import (
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/util"
	"github.com/samber/lo"
)

// fallbackLimit caps the unfiltered items returned when no title matches the query.
const fallbackLimit = 10

// Scraper resolves catalog pages into search results and streams.
// It keeps no state between calls; the per-call option bag decides everything.
type Scraper struct{}

// New returns the builtin catalog scraper.
func New() *Scraper {
	return &Scraper{}
}

// Name returns the human-readable identifier of the scraper.
func (s *Scraper) Name() string {
	return "OpenMovies"
}

// ID returns the registry identifier of the scraper.
func (s *Scraper) ID() string {
	return "DEFAULT"
}

// Search extracts the configured catalog and returns the items whose titles
// match the query. When nothing matches but extraction produced items, the
// first few unfiltered items are returned instead so the caller always has
// something to pick from; an extraction failure propagates as an error.
func (s *Scraper) Search(query string, options *scraper.Options) ([]*scraper.SearchResult, error) {
	ext, err := newExtractor(options)
	if err != nil {
		return nil, err
	}

	items, err := ext.extract()
	if err != nil {
		return nil, err
	}

	matched := lo.Filter(items, func(item catalogItem, _ int) bool {
		return Matches(query, item.title)
	})

	if len(matched) == 0 {
		matched = items[:util.Min(len(items), fallbackLimit)]
	}

	return lo.Map(matched, func(item catalogItem, _ int) *scraper.SearchResult {
		return &scraper.SearchResult{Title: item.title, URL: item.url}
	}), nil
}

// Scrape resolves chosen metadata into a single playable stream. The URL of a
// previously returned search result is preferred; a bare query string is used
// verbatim when no URL was chosen. Only when both are blank does an inline
// search run, taking the first result or failing with ErrNoResults.
func (s *Scraper) Scrape(media *scraper.Metadata, options *scraper.Options) (scraper.Media, error) {
	if media == nil {
		media = &scraper.Metadata{}
	}

	url := strings.TrimSpace(media.URL)
	if url == "" {
		url = strings.TrimSpace(media.Query)
	}

	if url == "" {
		results, err := s.Search(media.Query, options)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, scraper.ErrNoResults
		}
		url = results[0].URL
	}

	source := &scraper.Source{URL: url, Headers: mergeHeaders(options)}
	return &scraper.Single{Source: source}, nil
}

// ScrapeEpisodes reports no episodic data: every catalog item this scraper
// produces is a single playable stream.
func (s *Scraper) ScrapeEpisodes(media *scraper.Metadata, options *scraper.Options) ([]*scraper.Episode, error) {
	return nil, nil
}
