// Package query persists past search queries and serves suggestions from them.
package query

import (
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/filesystem"
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/CalebBrendel/mov-cli-openmovies/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// record is one remembered query with its popularity rank.
type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// memo holds suggestion lookups for the process lifetime.
var memo = make(map[string][]*record)

// history loads the persisted queries, treating any failure as empty.
func history() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil
	}

	return cached
}

// Remember stores a query in the persistent history or bumps its rank.
func Remember(q string, weight int) error {
	q = sanitize(q)

	cached := history()
	if cached == nil {
		cached = make(map[string]*record)
	}

	if rec, ok := cached[q]; ok {
		rec.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	return cacher.Set(cached)
}

// Suggest returns the best historical suggestion for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}

	return mo.Some(suggestions[0])
}

// SuggestMany returns the historical queries matching a partial input,
// most popular first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	records, ok := memo[q]
	if !ok {
		for _, rec := range history() {
			if fuzzy.Match(q, rec.Query) {
				records = append(records, rec)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			return b.Rank - a.Rank // Descending rank
		})

		memo[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
