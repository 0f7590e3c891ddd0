// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the terminal user interface on the search prompt.
func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}
