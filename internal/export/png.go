// Package export encodes generated terrain into files other tools can load.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes img as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return fmt.Errorf("write png: nil image")
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
