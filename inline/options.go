package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/util"
	"github.com/samber/mo"
)

// ResultPicker selects one search result out of many, nil meaning no choice.
type ResultPicker func([]*scraper.SearchResult) *scraper.SearchResult

type Options struct {
	Out            io.Writer
	Scraper        scraper.Scraper
	ScraperOptions *scraper.Options
	Query          string
	ResultPicker   mo.Option[ResultPicker]
	// Limit caps the number of printed results, 0 meaning unlimited.
	Limit   int
	Streams bool
	Json    bool
}

// ParseResultPicker builds a picker from its textual description.
//
// Accepted forms:
//
//	first - first result in the list
//	last - last result in the list
//	exact - result whose title equals the query
//	[number] - result by index (starting from 0, clamped to the list)
func ParseResultPicker(description, query string) (ResultPicker, error) {
	switch description {
	case "first":
		return func(results []*scraper.SearchResult) *scraper.SearchResult {
			if len(results) == 0 {
				return nil
			}
			return results[0]
		}, nil
	case "last":
		return func(results []*scraper.SearchResult) *scraper.SearchResult {
			if len(results) == 0 {
				return nil
			}
			return results[len(results)-1]
		}, nil
	case "exact":
		return func(results []*scraper.SearchResult) *scraper.SearchResult {
			for _, result := range results {
				if result.Title == query {
					return result
				}
			}
			return nil
		}, nil
	default:
		idx, err := strconv.ParseUint(description, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unknown picker type: %s", description)
		}

		return func(results []*scraper.SearchResult) *scraper.SearchResult {
			if len(results) == 0 {
				return nil
			}

			i := util.Min(idx, uint64(len(results)-1))
			return results[i]
		}, nil
	}
}
