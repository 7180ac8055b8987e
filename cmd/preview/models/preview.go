package models

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terragen/cmd/preview/components"
	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/terrain"
)

const (
	persistenceStep   = 0.05
	infoPanelWidth    = 36
	legendWidth       = 28
	minPreviewPixels  = 16
	maxPreviewPixels  = 256
	fallbackPixels    = 64
	previewChromeRows = 6
)

// generatedMsg carries the outcome of one background generation.
type generatedMsg struct {
	generation int
	result     *terrain.Result
	err        error
	notice     string
}

// PreviewModel renders the colorized texture of the current settings and
// lets the user tweak the noise parameters.
type PreviewModel struct {
	generator *terrain.Generator
	presets   *config.Presets

	names       []string
	presetIndex int
	label       string
	settings    terrain.Settings

	result     *terrain.Result
	err        error
	notice     string
	generating bool
	generation int

	width  int
	height int
}

// NewPreviewModel creates a preview starting from the named preset, falling
// back to the default preset when the name is unknown.
func NewPreviewModel(generator *terrain.Generator, presets *config.Presets, preset string) PreviewModel {
	m := PreviewModel{
		generator: generator,
		presets:   presets,
		names:     presets.Names(),
	}

	settings, ok := presets.Get(preset)
	if !ok {
		preset = config.DefaultPresetName
		settings = presets.Default()
	}
	for i, name := range m.names {
		if name == preset {
			m.presetIndex = i
		}
	}
	m.label = preset
	m.settings = settings
	return m
}

// Init initializes the preview. Generation is started by the app through
// Regenerate because it mutates the model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Stale reports whether the preview has neither a result nor a generation in
// flight.
func (m PreviewModel) Stale() bool {
	return m.result == nil && !m.generating
}

// Update handles preview messages
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg.String())
		return m, cmd
	case generatedMsg:
		return m.applyResult(msg)
	}
	return m, nil
}

// handleKey applies one preview key binding and returns the regeneration
// command when the settings changed.
func (m *PreviewModel) handleKey(key string) tea.Cmd {
	noiseCfg := &m.settings.Noise

	switch key {
	case "r":
		noiseCfg.UseRandomSeed = true
	case "+", "=":
		if noiseCfg.Octaves >= terrain.MaxOctaves {
			return nil
		}
		noiseCfg.Octaves++
	case "-", "_":
		if noiseCfg.Octaves <= 1 {
			return nil
		}
		noiseCfg.Octaves--
	case "[":
		noiseCfg.Persistence = stepPersistence(noiseCfg.Persistence, -persistenceStep)
	case "]":
		noiseCfg.Persistence = stepPersistence(noiseCfg.Persistence, persistenceStep)
	case "n":
		noiseCfg.Normalize = !noiseCfg.Normalize
	case "a":
		noiseCfg.Algorithm = nextAlgorithm(noiseCfg.Algorithm)
	case "p":
		if len(m.names) == 0 {
			return nil
		}
		m.presetIndex = (m.presetIndex + 1) % len(m.names)
		name := m.names[m.presetIndex]
		settings, ok := m.presets.Get(name)
		if !ok {
			return nil
		}
		m.settings = settings
		m.label = name
	default:
		return nil
	}

	return m.Regenerate()
}

func stepPersistence(p, delta float64) float64 {
	p = math.Round((p+delta)*100) / 100
	return math.Max(0, math.Min(1, p))
}

func nextAlgorithm(current noise.Algorithm) noise.Algorithm {
	if current == "" {
		current = noise.Perlin
	}
	for i, alg := range noise.Algorithms {
		if alg == current {
			return noise.Algorithms[(i+1)%len(noise.Algorithms)]
		}
	}
	return noise.Algorithms[0]
}

// Regenerate starts a background generation of the current settings at a
// texture resolution that fits the terminal. Results of older generations
// are dropped when they arrive.
func (m *PreviewModel) Regenerate() tea.Cmd {
	m.generation++
	m.generating = true

	generation := m.generation
	settings := m.settings.Clone()
	settings.TextureResolution = previewResolution(m.width, m.height)
	generator := m.generator

	return func() tea.Msg {
		result, err := generator.Generate(context.Background(), settings)
		return generatedMsg{generation: generation, result: result, err: err}
	}
}

func (m PreviewModel) applyResult(msg generatedMsg) (PreviewModel, tea.Cmd) {
	if msg.generation != m.generation {
		return m, nil
	}

	m.generating = false
	m.err = msg.err
	if msg.err != nil {
		logging.GetLogger().Warn("Preview generation failed", "error", msg.err)
		return m, nil
	}

	m.result = msg.result
	m.notice = ""
	// Pin a freshly drawn random seed so later tweaks keep the same terrain.
	m.settings.Noise.Seed = msg.result.Seed
	m.settings.Noise.UseRandomSeed = false
	return m, nil
}

// previewResolution picks a square texture size whose half-block rendering
// fits next to the info panel.
func previewResolution(width, height int) int {
	if width <= 0 || height <= 0 {
		return fallbackPixels
	}
	cols := width - infoPanelWidth - 4
	rows := (height - previewChromeRows) * 2
	n := min(cols, rows)
	return max(minPreviewPixels, min(maxPreviewPixels, n))
}

// SetSettings replaces the settings being previewed.
func (m *PreviewModel) SetSettings(settings terrain.Settings, label string) {
	m.settings = settings
	m.label = label
	m.result = nil
	m.err = nil
}

// SetNotice shows a one-line message in the status bar until the next
// generation completes.
func (m *PreviewModel) SetNotice(notice string) {
	m.notice = notice
}

// Settings returns the settings currently being previewed.
func (m PreviewModel) Settings() terrain.Settings {
	return m.settings
}

// Result returns the most recent generation, or nil.
func (m PreviewModel) Result() *terrain.Result {
	return m.result
}

// View renders the preview
func (m PreviewModel) View() string {
	var s strings.Builder

	title := components.TitleStyle.Render("Terrain Preview")
	s.WriteString(title + "\n")

	var picture string
	switch {
	case m.err != nil:
		picture = components.ErrorStyle.Render("Error: " + m.err.Error())
	case m.result == nil:
		picture = components.HelpStyle.Render("Generating...")
	default:
		picture = components.RenderImage(m.result.Texture)
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, picture, "  ", m.renderInfo()))
	s.WriteString("\n\n")

	status := "r reseed • +/- octaves • [/] persistence • n normalize • p preset • a algorithm • esc menu • q quit"
	if m.notice != "" {
		status = m.notice + " • " + status
	}
	if m.generating {
		status = "generating... • " + status
	}
	s.WriteString(components.StatusBarStyle.Width(m.width).Render(status))

	return s.String()
}

func (m PreviewModel) renderInfo() string {
	cfg := m.settings.Noise
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = noise.Perlin
	}

	seed := fmt.Sprintf("%d", cfg.Seed)
	if cfg.UseRandomSeed {
		seed = "random"
	}

	lines := []string{
		components.SubtitleStyle.Render(m.label),
		components.KeyValue("Seed", seed),
		components.KeyValue("Algorithm", string(algorithm)),
		components.KeyValue("Octaves", fmt.Sprintf("%d", cfg.Octaves)),
		components.KeyValue("Persistence", fmt.Sprintf("%.2f", cfg.Persistence)),
		components.KeyValue("Lacunarity", fmt.Sprintf("%.2f", cfg.Lacunarity)),
		components.KeyValue("Scale", fmt.Sprintf("%.2f", cfg.BaseScale)),
		components.KeyValue("Normalize", fmt.Sprintf("%t", cfg.Normalize)),
		components.KeyValue("Grid", fmt.Sprintf("%dx%d", m.settings.Width, m.settings.Length)),
	}

	if m.result != nil {
		stats := m.result.Stats()
		lines = append(lines,
			"",
			components.KeyValue("Heights", fmt.Sprintf("%.3f .. %.3f", stats.MinHeight, stats.MaxHeight)),
			components.KeyValue("Triangles", fmt.Sprintf("%d", stats.TriangleCount)),
			components.KeyValue("Took", stats.Durations.Total.Round(time.Millisecond).String()),
			"",
			components.Legend(m.settings.Bands, legendWidth),
		)
		for _, band := range stats.Bands {
			lines = append(lines, components.Swatch(band.Color)+" "+band.Name)
		}
	}

	return components.InfoPanelStyle.Render(strings.Join(lines, "\n"))
}

// SetSize updates the preview size
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
