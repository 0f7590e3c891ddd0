// Package inline implements the application's non-interactive, scriptable execution mode.
package inline

import (
	"fmt"
	"os"

	"github.com/CalebBrendel/mov-cli-openmovies/log"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	results, err := options.Scraper.Search(options.Query, options.ScraperOptions)
	if err != nil {
		return fmt.Errorf("search failed for %s: %w", options.Scraper.Name(), err)
	}

	// Narrow the results down when a picker is defined.
	var selected []*scraper.SearchResult
	if options.ResultPicker.IsPresent() {
		picker := options.ResultPicker.MustGet()
		if choice := picker(results); choice != nil {
			selected = []*scraper.SearchResult{choice}
		}
	} else {
		selected = results
	}

	if options.Limit > 0 && len(selected) > options.Limit {
		selected = selected[:options.Limit]
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, options)
		}

		return nil // Nothing found
	}

	entries := make([]*Entry, len(selected))
	for i, result := range selected {
		entries[i] = &Entry{Provider: options.Scraper.Name(), Result: result}
	}

	// Resolve the picked results into playable streams when asked to.
	if options.Streams {
		for _, entry := range entries {
			media, err := options.Scraper.Scrape(
				&scraper.Metadata{Query: options.Query, URL: entry.Result.URL},
				options.ScraperOptions,
			)
			if err != nil {
				return err
			}

			entry.Stream = media.Stream()
		}
	}

	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	for _, entry := range entries {
		log.Info("Found " + entry.Result.Title)

		if entry.Stream != nil {
			fmt.Fprintln(options.Out, entry.Stream.URL)
		} else {
			fmt.Fprintln(options.Out, entry.Result.URL)
		}
	}

	return nil
}
