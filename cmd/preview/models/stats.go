package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terragen/cmd/preview/components"
	"github.com/VoidMesh/terragen/internal/terrain"
)

const coverageBarWidth = 30

// StatsModel shows the numbers behind the most recent preview.
type StatsModel struct {
	result *terrain.Result
	width  int
	height int
}

// NewStatsModel creates a new stats model
func NewStatsModel() StatsModel {
	return StatsModel{}
}

// Init initializes the stats view
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles stats messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetResult replaces the result being described.
func (m *StatsModel) SetResult(result *terrain.Result) {
	m.result = result
}

// View renders the stats
func (m StatsModel) View() string {
	var s strings.Builder

	title := components.TitleStyle.Render("Terrain Stats")
	s.WriteString(title + "\n\n")

	if m.result == nil {
		s.WriteString(components.BorderStyle.Render("Nothing generated yet.\n\nOpen the preview first."))
	} else {
		stats := m.result.Stats()
		summary := components.InfoPanelStyle.Render(strings.Join([]string{
			components.SubtitleStyle.Render("Terrain"),
			components.KeyValue("Seed", fmt.Sprintf("%d", stats.Seed)),
			components.KeyValue("Grid", fmt.Sprintf("%dx%d", stats.Width, stats.Length)),
			components.KeyValue("Vertices", fmt.Sprintf("%d", stats.VertexCount)),
			components.KeyValue("Triangles", fmt.Sprintf("%d", stats.TriangleCount)),
			components.KeyValue("Min height", fmt.Sprintf("%.4f", stats.MinHeight)),
			components.KeyValue("Max height", fmt.Sprintf("%.4f", stats.MaxHeight)),
			components.KeyValue("Bounds min", formatVec(stats.BoundsMin)),
			components.KeyValue("Bounds max", formatVec(stats.BoundsMax)),
			"",
			components.SubtitleStyle.Render("Timings"),
			components.KeyValue("Heights", roundMillis(stats.Durations.Heights)),
			components.KeyValue("Mesh", roundMillis(stats.Durations.Mesh)),
			components.KeyValue("Texture", roundMillis(stats.Durations.Texture)),
			components.KeyValue("Total", roundMillis(stats.Durations.Total)),
		}, "\n"))

		coverage := components.BorderStyle.Render(
			components.SubtitleStyle.Render("Band coverage") + "\n\n" +
				renderCoverage(stats.Bands, stats.Width*stats.Length),
		)

		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, summary, "  ", coverage))
	}

	s.WriteString("\n\n")
	s.WriteString(components.StatusBarStyle.Width(m.width).Render("Tab next view • esc menu • q quit"))

	return s.String()
}

// renderCoverage draws one bar per band, scaled to the share of grid cells
// the band colors.
func renderCoverage(bands []terrain.BandCoverage, total int) string {
	if len(bands) == 0 || total <= 0 {
		return "No bands"
	}

	lines := make([]string, 0, len(bands))
	for _, band := range bands {
		share := float64(band.Cells) / float64(total)
		filled := int(share*coverageBarWidth + 0.5)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(band.Color)).Render(strings.Repeat("█", filled)) +
			strings.Repeat("·", coverageBarWidth-filled)
		lines = append(lines, fmt.Sprintf("%-8s %s %5.1f%%", band.Name, bar, share*100))
	}
	return strings.Join(lines, "\n")
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", v[0], v[1], v[2])
}

func roundMillis(d time.Duration) string {
	return d.Round(time.Microsecond * 100).String()
}

// SetSize updates the stats size
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
