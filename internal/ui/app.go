package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/five82/pokesearch/internal/pokedex"
	"github.com/five82/pokesearch/internal/prefs"
	"github.com/five82/pokesearch/internal/state"
)

// Pane identifies which part of the screen receives keys.
type Pane int

const (
	PaneTable Pane = iota
	PaneFilter
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Source       pokedex.RosterSource
	SourceLabel  string
	FetchOnStart bool
	ThemeName    string
	StatBars     bool
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	source       pokedex.RosterSource
	sourceLabel  string
	fetchOnStart bool
	prefsPath    string
	copyText     func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	focus    Pane
	cursor   int
	showHelp bool
	statBars bool
	filter   textinput.Model

	session state.Session
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	input := textinput.New()
	input.Prompt = "Filter: "
	input.Placeholder = "type a name"
	input.CharLimit = 64

	m := Model{
		ctx:          ctx,
		source:       opts.Source,
		sourceLabel:  opts.SourceLabel,
		fetchOnStart: opts.FetchOnStart,
		prefsPath:    prefsPath,
		copyText:     clipboard.WriteAll,
		theme:        theme,
		keys:         DefaultKeyMap(),
		statBars:     opts.StatBars,
		filter:       input,
	}
	m.applyInputTheme()
	return m
}

// Session returns the current search session.
func (m Model) Session() state.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.fetchOnStart {
		return m.fetchRoster()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.filter.Width = max(10, m.width-len(m.filter.Prompt)-4)
		return m, nil

	case rosterLoadedMsg:
		m.session = m.session.WithRoster(msg.roster)
		m.clampCursor()
		log.Printf("fetch %s: loaded %d creatures", msg.id, len(msg.roster))
		return m, nil

	case rosterFailedMsg:
		log.Printf("fetch %s: %v", msg.id, msg.err)
		return m, nil
	}

	if m.focus == PaneFilter {
		return m.updateFilter(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus == PaneFilter {
		switch {
		case key.Matches(msg, m.keys.Done), key.Matches(msg, m.keys.Tab):
			m.focusTable()
			return m, nil
		}
		return m.updateFilter(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Search), key.Matches(msg, m.keys.Tab):
		return m, m.focusFilter()
	case key.Matches(msg, m.keys.Fetch):
		return m, m.fetchRoster()
	case key.Matches(msg, m.keys.Select):
		m.selectCursor()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.session.Visible()) - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.CopyName):
		m.copySelectedName()
	case key.Matches(msg, m.keys.ToggleBars):
		m.statBars = !m.statBars
		m.savePrefs()
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyInputTheme()
		m.savePrefs()
	}
	return m, nil
}

// updateFilter forwards msg to the filter input and applies any text change
// to the session.
func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if value := m.filter.Value(); value != m.session.Filter {
		m.session = m.session.WithFilter(value)
		m.clampCursor()
	}
	return m, cmd
}

func (m *Model) focusFilter() tea.Cmd {
	m.focus = PaneFilter
	return m.filter.Focus()
}

func (m *Model) focusTable() {
	m.focus = PaneTable
	m.filter.Blur()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor on a visible row.
func (m *Model) clampCursor() {
	count := len(m.session.Visible())
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectCursor activates the row under the cursor.
func (m *Model) selectCursor() {
	visible := m.session.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return
	}
	m.session = m.session.WithSelection(visible[m.cursor])
}

func (m *Model) copySelectedName() {
	sel := m.session.Selected
	if sel == nil || m.copyText == nil {
		return
	}
	if err := m.copyText(sel.Name.English); err != nil {
		log.Printf("copy %q to clipboard: %v", sel.Name.English, err)
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, StatBars: m.statBars}); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m *Model) applyInputTheme() {
	m.filter.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Bold(true)
	m.filter.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.filter.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
}

// Messages

type rosterLoadedMsg struct {
	id     string
	roster []pokedex.Creature
}

type rosterFailedMsg struct {
	id  string
	err error
}

// Commands

// fetchRoster returns a command performing one roster load. A nil source
// yields a failure message so the error path stays uniform.
func (m Model) fetchRoster() tea.Cmd {
	return fetchRosterCmd(m.ctx, m.source, m.sourceLabel)
}

func fetchRosterCmd(ctx context.Context, source pokedex.RosterSource, label string) tea.Cmd {
	id := uuid.NewString()
	return func() tea.Msg {
		if source == nil {
			return rosterFailedMsg{id: id, err: fmt.Errorf("no roster source configured")}
		}
		log.Printf("fetch %s: loading roster from %s", id, strings.TrimSpace(label))
		roster, err := source.FetchRoster(ctx)
		if err != nil {
			return rosterFailedMsg{id: id, err: err}
		}
		return rosterLoadedMsg{id: id, roster: roster}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
