// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CalebBrendel/mov-cli-openmovies/provider"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Provider       *provider.Provider
	ScraperOptions *scraper.Options
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	if options == nil {
		options = &Options{}
	}

	if options.Provider == nil {
		options.Provider = provider.Default()
	}

	bubble := newBubble(options)
	bubble.newState(searchState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
