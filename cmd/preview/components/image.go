package components

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const upperHalfBlock = "▀"

// RenderImage draws img with one terminal cell per two vertical pixels: the
// upper half block takes the top pixel as foreground and the bottom pixel as
// background.
func RenderImage(img image.Image) string {
	if img == nil {
		return ""
	}

	b := img.Bounds()
	styles := make(map[[2]string]lipgloss.Style)

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			key := [2]string{hexOf(img.At(x, y)), ""}
			if y+1 < b.Max.Y {
				key[1] = hexOf(img.At(x, y+1))
			}

			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(key[0]))
				if key[1] != "" {
					style = style.Background(lipgloss.Color(key[1]))
				}
				styles[key] = style
			}
			sb.WriteString(style.Render(upperHalfBlock))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hexOf(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
