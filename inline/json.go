package inline

import (
	"encoding/json"
	"io"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
)

// Entry is one search result in the structured output.
type Entry struct {
	// Provider is the name of the scraper that produced the result.
	Provider string `json:"provider" jsonschema:"description=Name of the scraper that produced the result."`
	// Result is the catalog entry as returned by the search.
	Result *scraper.SearchResult `json:"result" jsonschema:"description=Catalog entry as returned by the search."`
	// Stream is the resolved stream source (optional).
	Stream *scraper.Source `json:"stream,omitempty" jsonschema:"description=Resolved stream source. Only present when stream resolution was requested."`
}

type Output struct {
	Query   string   `json:"query" jsonschema:"description=The search query that produced the results."`
	Results []*Entry `json:"results" jsonschema:"description=Matched catalog entries."`
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	if entries == nil {
		entries = []*Entry{}
	}

	data, err := json.Marshal(&Output{
		Query:   options.Query,
		Results: entries,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
