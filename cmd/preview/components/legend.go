package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terragen/internal/texture"
)

const legendShade = 0.35

// Legend renders a height ramp from 0 to 1 width cells wide. Each cell takes
// its band color, shaded toward the next band as the height approaches the
// band's threshold.
func Legend(bands []texture.Band, width int) string {
	if len(bands) == 0 || width <= 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		h := 0.0
		if width > 1 {
			h = float64(i) / float64(width-1)
		}
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(legendColor(bands, h).Hex())).Render(" "))
	}
	return sb.String()
}

func legendColor(bands []texture.Band, h float64) texture.Color {
	idx := texture.BandIndex(bands, h)
	c := bands[idx].Color
	if idx+1 >= len(bands) {
		return c
	}

	lo := 0.0
	if idx > 0 {
		lo = bands[idx-1].Threshold
	}
	span := bands[idx].Threshold - lo
	if span <= 0 {
		return c
	}

	t := (h - lo) / span
	t = max(0, min(1, t))
	return texture.Blend(c, bands[idx+1].Color, t*legendShade)
}
