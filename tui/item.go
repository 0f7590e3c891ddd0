// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
)

// listItem implements the list.Item interface, wrapping a search result for terminal display.
type listItem struct {
	internal *scraper.SearchResult
}

// Title returns the primary display text for the list item.
func (t *listItem) Title() string {
	return t.internal.Title
}

// Description returns the secondary metadata line for the list item.
func (t *listItem) Description() string {
	var parts []string

	if year, ok := t.internal.Year.Get(); ok {
		parts = append(parts, fmt.Sprintf("%d", year))
	}

	parts = append(parts, t.internal.URL)

	return style.Faint(strings.Join(parts, " • "))
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	return t.internal.Title
}
