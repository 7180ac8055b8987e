package models

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/VoidMesh/terragen/cmd/preview/components"
	"github.com/VoidMesh/terragen/internal/terrain"
)

type libraryLoadedMsg struct {
	records []terrain.Record
	total   int64
	err     error
}

type terrainDeletedMsg struct {
	id  string
	err error
}

// LibraryModel lists stored terrains.
type LibraryModel struct {
	manager *terrain.Manager
	records []terrain.Record
	total   int64
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

// NewLibraryModel creates a library over manager, which may be nil.
func NewLibraryModel(manager *terrain.Manager) LibraryModel {
	return LibraryModel{manager: manager}
}

// Init loads the first page of stored terrains.
func (m LibraryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LibraryModel) loadCmd() tea.Cmd {
	if m.manager == nil {
		return nil
	}
	manager := m.manager
	return func() tea.Msg {
		records, total, err := manager.List(context.Background(), terrain.DefaultListLimit, 0)
		return libraryLoadedMsg{records: records, total: total, err: err}
	}
}

func (m LibraryModel) deleteCmd(id string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		return terrainDeletedMsg{id: id, err: manager.Delete(context.Background(), id)}
	}
}

// Update handles library messages
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.records = msg.records
			m.total = msg.total
			if m.cursor >= len(m.records) {
				m.cursor = max(0, len(m.records)-1)
			}
		}
		return m, nil

	case terrainDeletedMsg:
		m.err = msg.err
		return m, m.loadCmd()

	case tea.KeyMsg:
		cmd := m.handleKey(msg.String())
		return m, cmd
	}

	return m, nil
}

func (m *LibraryModel) handleKey(key string) tea.Cmd {
	if m.manager == nil {
		return nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "r":
		m.loading = true
		return m.loadCmd()
	case "d":
		if rec, ok := m.selected(); ok {
			return m.deleteCmd(rec.ID)
		}
	case "enter":
		if rec, ok := m.selected(); ok {
			return func() tea.Msg {
				return LoadSettingsMsg{Settings: rec.Settings, Label: rec.Name}
			}
		}
	}
	return nil
}

func (m LibraryModel) selected() (terrain.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return terrain.Record{}, false
	}
	return m.records[m.cursor], true
}

// View renders the library
func (m LibraryModel) View() string {
	var s strings.Builder

	title := components.TitleStyle.Render("Terrain Library")
	s.WriteString(title + "\n\n")

	switch {
	case m.manager == nil:
		s.WriteString(components.BorderStyle.Render("No database configured.\n\nStart with -db to browse stored terrains."))
	case m.err != nil:
		s.WriteString(components.ErrorStyle.Render("Error: " + m.err.Error()))
	case len(m.records) == 0:
		s.WriteString(components.BorderStyle.Render("No stored terrains."))
	default:
		s.WriteString(m.renderTable())
	}

	s.WriteString("\n\n")
	status := fmt.Sprintf("%d stored • ↑/↓ select • Enter preview • d delete • r refresh • esc menu • q quit", m.total)
	if m.loading {
		status = "loading... • " + status
	}
	s.WriteString(components.StatusBarStyle.Width(m.width).Render(status))

	return s.String()
}

func (m LibraryModel) renderTable() string {
	header := components.TableHeaderStyle.Render(
		fmt.Sprintf("%-24s %-20s %-9s %-10s %s", "Name", "Seed", "Size", "Triangles", "Created"),
	)

	rows := []string{header}
	for i, rec := range m.records {
		line := fmt.Sprintf("%-24s %-20d %-9s %-10d %s",
			truncate(rec.Name, 24),
			rec.Seed,
			fmt.Sprintf("%dx%d", rec.Width, rec.Length),
			rec.TriangleCount,
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
		style := components.TableCellStyle
		if i == m.cursor {
			style = components.TableSelectedCellStyle
		}
		rows = append(rows, style.Render(line))
	}
	return components.FocusedBorderStyle.Render(strings.Join(rows, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// SetSize updates the library size
func (m *LibraryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
