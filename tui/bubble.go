// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
	"github.com/CalebBrendel/mov-cli-openmovies/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
)

// statefulBubble encapsulates the application state, component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	resultsC list.Model
	helpC    help.Model

	scraper scraper.Scraper

	foundResultsChannel chan []*scraper.SearchResult
	resolvedChannel     chan *scraper.Source
	errorChannel        chan error

	progressStatus string
	currentQuery   string

	selectedResult *scraper.SearchResult
	stream         *scraper.Source
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to a target state, recording the previous state in the
// navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Transient states are not recorded
	if b.state != loadingState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// resize propagates terminal dimension changes to the child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.resultsC.SetSize(width-xx, height-yy)
	b.resultsC.Help.Width = width - xx

	b.width = width - x
	b.height = height - y
	b.helpC.Width = width - xx
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return b.resultsC.StartSpinner()
}

func (b *statefulBubble) stopLoading() tea.Cmd {
	b.loading = false
	b.resultsC.StopSpinner()
	return nil
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		scraper: options.Provider.CreateScraper(),

		foundResultsChannel: make(chan []*scraper.SearchResult),
		resolvedChannel:     make(chan *scraper.Source),
		errorChannel:        make(chan error),

		options: options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.resultsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.resultsC.KeyMap = keymap.forList()
	bubble.resultsC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.resultsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.resultsC.Title = fmt.Sprintf("%s Results", bubble.scraper.Name())
	bubble.resultsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.resultsC.Styles.NoItems = paddingStyle
	bubble.resultsC.SetShowPagination(false)
	bubble.resultsC.SetShowStatusBar(false)
	bubble.resultsC.SetStatusBarItemName("result", "results")

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search %s (v%s)", bubble.scraper.Name(), constant.Version)
	bubble.inputC.CharLimit = 60

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
