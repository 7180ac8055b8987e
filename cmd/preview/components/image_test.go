package components

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantRows      int
	}{
		{"even height", 4, 6, 3},
		{"odd height keeps last row", 3, 5, 3},
		{"single pixel", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 90, A: 255})
				}
			}

			out := RenderImage(img)
			rows := strings.Split(out, "\n")
			assert.Len(t, rows, tt.wantRows)
			for _, row := range rows {
				assert.Equal(t, tt.width, lipgloss.Width(row))
				assert.Equal(t, tt.width, strings.Count(row, upperHalfBlock))
			}
		})
	}
}

func TestRenderImageNil(t *testing.T) {
	assert.Empty(t, RenderImage(nil))
}

func TestHexOf(t *testing.T) {
	assert.Equal(t, "#1e90ff", hexOf(color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}))
}
