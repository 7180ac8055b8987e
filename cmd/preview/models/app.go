package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/terrain"
)

// ViewType represents the different views in the preview tool
type ViewType int

const (
	MenuView ViewType = iota
	PreviewView
	StatsView
	LibraryView
)

const viewCount = 4

// App is the main application model
type App struct {
	generator *terrain.Generator
	manager   *terrain.Manager
	presets   *config.Presets

	// Current state
	currentView ViewType
	width       int
	height      int

	// View models
	menu    MenuModel
	preview PreviewModel
	stats   StatsModel
	library LibraryModel

	// UI state
	showHelp bool
}

// NewApp creates a new application instance. manager may be nil, in which
// case the library view reports that no database is configured.
func NewApp(generator *terrain.Generator, manager *terrain.Manager, presets *config.Presets, preset, startView string) *App {
	app := &App{
		generator: generator,
		manager:   manager,
		presets:   presets,
	}

	app.menu = NewMenuModel()
	app.preview = NewPreviewModel(generator, presets, preset)
	app.stats = NewStatsModel()
	app.library = NewLibraryModel(manager)

	switch startView {
	case "preview":
		app.currentView = PreviewView
	case "stats":
		app.currentView = StatsView
	case "library":
		app.currentView = LibraryView
	default:
		app.currentView = MenuView
	}

	return app
}

// Init initializes the application
func (m *App) Init() tea.Cmd {
	logging.GetLogger().Debug("Initializing preview tool", "view", m.currentView)
	return m.initCurrentView()
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.menu.SetSize(msg.Width, msg.Height)
		m.preview.SetSize(msg.Width, msg.Height)
		m.stats.SetSize(msg.Width, msg.Height)
		m.library.SetSize(msg.Width, msg.Height)

		if m.currentView == PreviewView {
			return m, m.preview.Regenerate()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			m.currentView = MenuView
			return m, m.menu.Init()

		case "?":
			m.showHelp = !m.showHelp
			return m, nil

		case "s":
			if m.currentView == PreviewView && m.manager != nil {
				return m, m.saveCmd()
			}

		case "tab":
			return m, m.switchTo(ViewType((int(m.currentView) + 1) % viewCount))
		}

	case SwitchViewMsg:
		return m, m.switchTo(msg.View)

	case LoadSettingsMsg:
		m.preview.SetSettings(msg.Settings, msg.Label)
		m.currentView = PreviewView
		return m, m.preview.Regenerate()

	case terrainSavedMsg:
		if msg.err != nil {
			m.preview.SetNotice("save failed: " + msg.err.Error())
			return m, nil
		}
		m.preview.SetNotice("saved " + msg.record.Name)
		return m, m.library.loadCmd()

	case libraryLoadedMsg, terrainDeletedMsg:
		newModel, cmd := m.library.Update(msg)
		m.library = newModel.(LibraryModel)
		return m, cmd

	case generatedMsg:
		// Generation results land on the preview even while another view is showing.
		var cmd tea.Cmd
		m.preview, cmd = m.preview.applyResult(msg)
		return m, cmd
	}

	if m.showHelp {
		return m, nil
	}

	switch m.currentView {
	case MenuView:
		newModel, cmd := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		return m, cmd
	case PreviewView:
		newModel, cmd := m.preview.Update(msg)
		m.preview = newModel.(PreviewModel)
		return m, cmd
	case StatsView:
		newModel, cmd := m.stats.Update(msg)
		m.stats = newModel.(StatsModel)
		return m, cmd
	case LibraryView:
		newModel, cmd := m.library.Update(msg)
		m.library = newModel.(LibraryModel)
		return m, cmd
	}

	return m, nil
}

// View renders the application
func (m *App) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case MenuView:
		return m.menu.View()
	case PreviewView:
		return m.preview.View()
	case StatsView:
		return m.stats.View()
	case LibraryView:
		return m.library.View()
	}

	return "Unknown view"
}

func (m *App) switchTo(view ViewType) tea.Cmd {
	m.currentView = view
	if view == StatsView {
		m.stats.SetResult(m.preview.Result())
	}
	return m.initCurrentView()
}

func (m *App) initCurrentView() tea.Cmd {
	if m.currentView == PreviewView && m.preview.Stale() {
		return m.preview.Regenerate()
	}
	return m.getCurrentViewModel().Init()
}

// saveCmd stores the current preview settings through the manager.
func (m *App) saveCmd() tea.Cmd {
	manager := m.manager
	settings := m.preview.Settings()
	return func() tea.Msg {
		record, _, err := manager.Create(context.Background(), settings)
		return terrainSavedMsg{record: record, err: err}
	}
}

// getCurrentViewModel returns the current view's model
func (m *App) getCurrentViewModel() tea.Model {
	switch m.currentView {
	case MenuView:
		return &m.menu
	case PreviewView:
		return &m.preview
	case StatsView:
		return &m.stats
	case LibraryView:
		return &m.library
	}
	return &m.menu
}

// renderHelp renders the help screen
func (m *App) renderHelp() string {
	help := `
┌─ Terragen Preview - Help ────────────────────────────┐
│                                                      │
│ Global Keys:                                         │
│   q, Ctrl+C    Quit                                  │
│   Esc          Back to menu                          │
│   ?            Toggle this help                      │
│   Tab          Cycle through views                   │
│   1-3          Select view (from menu)               │
│                                                      │
│ Preview:                                             │
│   r            Reseed with a random seed             │
│   + / -        Add / remove an octave                │
│   [ / ]        Lower / raise persistence             │
│   n            Toggle normalization                  │
│   p            Cycle presets                         │
│   a            Toggle noise algorithm                │
│   s            Save to the library (with -db)        │
│                                                      │
│ Library:                                             │
│   ↑/↓ j/k      Select a stored terrain               │
│   Enter        Open it in the preview                │
│   r            Refresh                               │
│                                                      │
│ Press ? again to close this help                     │
└──────────────────────────────────────────────────────┘
`
	return help
}

// SwitchViewMsg is a message to switch views
type SwitchViewMsg struct {
	View ViewType
}

// NewSwitchViewMsg creates a new switch view message
func NewSwitchViewMsg(view ViewType) SwitchViewMsg {
	return SwitchViewMsg{View: view}
}

type terrainSavedMsg struct {
	record *terrain.Record
	err    error
}

// LoadSettingsMsg replaces the preview settings and switches to the preview.
type LoadSettingsMsg struct {
	Settings terrain.Settings
	Label    string
}
