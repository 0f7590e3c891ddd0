// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/CalebBrendel/mov-cli-openmovies/log"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/util"
	tea "github.com/charmbracelet/bubbletea"
)

// searchCatalog queries the scraper off the UI loop and reports through channels.
func (b *statefulBubble) searchCatalog(query string) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching for " + query)

		results, err := b.scraper.Search(query, b.options.ScraperOptions)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Infof("found %s from %s", util.Quantify(len(results), "result", "results"), b.scraper.Name())
		b.foundResultsChannel <- results
		return nil
	}
}

func (b *statefulBubble) waitForResults() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundResultsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// resolveStream scrapes the chosen result into a playable stream.
func (b *statefulBubble) resolveStream(result *scraper.SearchResult) tea.Cmd {
	return func() tea.Msg {
		log.Info("resolving stream for " + result.Title)

		media, err := b.scraper.Scrape(
			&scraper.Metadata{Query: b.currentQuery, URL: result.URL},
			b.options.ScraperOptions,
		)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		b.resolvedChannel <- media.Stream()
		return nil
	}
}

func (b *statefulBubble) waitForStream() tea.Cmd {
	return func() tea.Msg {
		select {
		case stream := <-b.resolvedChannel:
			return stream
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}
