// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/color"
	"github.com/CalebBrendel/mov-cli-openmovies/icon"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case searchState:
		return b.viewSearch()
	case resultsState:
		return b.viewResults()
	case streamState:
		return b.viewStream()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Movies"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(
			lines,
			"",
			style.Faint(fmt.Sprintf("Suggestion: %s (tab to accept)", suggestion)),
		)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewResults() string {
	return listExtraPaddingStyle.Render(b.resultsC.View())
}

func (b *statefulBubble) viewStream() string {
	lines := []string{
		style.Title("Stream Ready"),
		"",
		style.Truncate(b.width)(fmt.Sprintf(icon.Get(icon.Movie)+" %s", style.Fg(color.Purple)(b.selectedResult.Title))),
		"",
		style.Truncate(b.width)(fmt.Sprintf(icon.Get(icon.Link)+" %s", style.Underline(b.stream.URL))),
	}

	if len(b.stream.Headers) > 0 {
		lines = append(lines, "", style.Faint("Required headers:"))

		names := lo.Keys(b.stream.Headers)
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, style.Truncate(b.width)(style.Faint(fmt.Sprintf("  %s: %s", name, b.stream.Headers[name]))))
		}
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
