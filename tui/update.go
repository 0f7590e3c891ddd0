// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/open"
	"github.com/CalebBrendel/mov-cli-openmovies/query"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			switch b.state {
			case searchState:
				b.inputC.SetValue("")
			case resultsState:
				if b.resultsC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.resultsC, cmd = b.resultsC.Update(msg)
					return b, cmd
				}

				b.resultsC.ResetSelected()
				b.resultsC.ResetFilter()
			}

			b.previousState()
			b.stopLoading()
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateResults(msg)
	case streamState:
		return b.updateStream(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case []*scraper.SearchResult:
		items := make([]list.Item, len(msg))
		for i, result := range msg {
			items[i] = &listItem{internal: result}
		}

		cmds = append(cmds, b.resultsC.SetItems(items))
		b.resultsC.ResetSelected()
		b.newState(resultsState)
		b.stopLoading()
	case *scraper.Source:
		b.stream = msg
		b.newState(streamState)
		b.stopLoading()
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.currentQuery = strings.TrimSpace(b.inputC.Value())

			if b.currentQuery == "" {
				b.progressStatus = "Browsing the catalog..."
			} else {
				b.progressStatus = fmt.Sprintf("Searching for %s...", b.currentQuery)
				go query.Remember(b.currentQuery, 1)
			}

			b.startLoading()
			b.newState(loadingState)
			return b, tea.Batch(b.searchCatalog(b.currentQuery), b.waitForResults(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == 0 {
				b.resultsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == n-1 {
				b.resultsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item, ok := b.resultsC.SelectedItem().(*listItem); ok {
				if err := open.Start(item.internal.URL); err != nil {
					b.raiseError(err)
				}
			}

			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.resultsC.SelectedItem().(*listItem)
			if !ok {
				break
			}

			b.selectedResult = item.internal
			b.progressStatus = fmt.Sprintf("Resolving %s...", item.internal.Title)
			go query.Remember(item.internal.Title, 2)

			b.startLoading()
			b.newState(loadingState)
			return b, tea.Batch(b.resolveStream(item.internal), b.waitForStream(), b.spinnerC.Tick)
		}
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateStream(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.openURL, b.keymap.confirm):
			if b.stream != nil {
				if err := open.Start(b.stream.URL); err != nil {
					b.raiseError(err)
				}
			}

			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
