package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terragen/cmd/preview/components"
)

// MenuModel handles the main menu view
type MenuModel struct {
	choices []MenuChoice
	cursor  int
	width   int
	height  int
}

// MenuChoice represents a menu option
type MenuChoice struct {
	Title       string
	Description string
	Icon        string
	View        ViewType
}

// NewMenuModel creates a new menu model
func NewMenuModel() MenuModel {
	choices := []MenuChoice{
		{
			Title:       "Terrain Preview",
			Description: "Render and tweak a colorized height field",
			Icon:        "🗺️",
			View:        PreviewView,
		},
		{
			Title:       "Terrain Stats",
			Description: "Mesh size, height range and band coverage",
			Icon:        "📊",
			View:        StatsView,
		},
		{
			Title:       "Library",
			Description: "Browse terrains stored in the database",
			Icon:        "🗄️",
			View:        LibraryView,
		},
	}

	return MenuModel{
		choices: choices,
		cursor:  0,
	}
}

// Init initializes the menu
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu messages
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.choices) - 1
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}

		case "enter", " ":
			return m, m.selectCmd()

		case "1", "2", "3":
			choice := int(msg.String()[0] - '1')
			if choice >= 0 && choice < len(m.choices) {
				m.cursor = choice
				return m, m.selectCmd()
			}
		}
	}

	return m, nil
}

func (m MenuModel) selectCmd() tea.Cmd {
	selected := m.choices[m.cursor]
	return func() tea.Msg {
		return NewSwitchViewMsg(selected.View)
	}
}

// View renders the menu
func (m MenuModel) View() string {
	var s strings.Builder

	title := components.TitleStyle.Render("Terragen Preview")
	s.WriteString(title + "\n\n")

	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.PrimaryColor).
		Padding(1, 2).
		Width(72)

	var menuItems []string
	for i, choice := range m.choices {
		number := fmt.Sprintf("%d.", i+1)
		title := fmt.Sprintf("%s %s", choice.Icon, choice.Title)

		itemStyle := components.MenuItemStyle
		if i == m.cursor {
			itemStyle = components.SelectedMenuItemStyle
		}

		item := fmt.Sprintf("%-3s %-20s %s", number, title, choice.Description)
		menuItems = append(menuItems, itemStyle.Render(item))
	}

	menu := menuStyle.Render(strings.Join(menuItems, "\n"))
	s.WriteString(menu + "\n\n")

	instructions := components.HelpStyle.Render(
		"Use ↑/↓ or j/k to navigate • Enter or number to select • ? for help • q to quit",
	)
	s.WriteString(instructions)

	content := s.String()
	if m.width > 0 {
		contentWidth := lipgloss.Width(content)
		if contentWidth < m.width {
			leftPadding := (m.width - contentWidth) / 2
			content = lipgloss.NewStyle().PaddingLeft(leftPadding).Render(content)
		}
	}

	return content
}

// SetSize updates the menu size
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
