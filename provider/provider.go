// Package provider manages the built-in catalog scrapers.
package provider

import (
	"sort"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/openmovies"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// DefaultID identifies the provider used when the caller names none.
const DefaultID = "DEFAULT"

// Provider describes one registered scraper.
type Provider struct {
	ID            string
	Name          string
	CreateScraper func() scraper.Scraper
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   DefaultID,
			Name: "OpenMovies",
			CreateScraper: func() scraper.Scraper {
				return openmovies.New()
			},
		},
	}
}

// Default returns the provider registered under DefaultID.
func Default() *Provider {
	return lo.Must(Get(DefaultID))
}

// Get finds a provider by ID or name, ignoring case.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return nil, false
}

// Suggest returns the registered provider whose name is closest to the given
// one, for "did you mean" hints on typos.
func Suggest(name string) (*Provider, bool) {
	names := lo.Map(Builtins(), func(p *Provider, _ int) string {
		return p.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return nil, false
	}

	sort.Sort(ranks)
	return Get(ranks[0].Target)
}
