package export

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/VoidMesh/terragen/internal/heightfield"
)

// WriteHeightsRAW writes grid as zstd-compressed little-endian float32
// values in row-major order. Dimensions are not stored.
func WriteHeightsRAW(w io.Writer, grid *heightfield.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}

	buf := make([]byte, 4*len(grid.Values))
	for i, v := range grid.Values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}

	if _, err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("write heights: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush heights: %w", err)
	}
	return nil
}

// ReadHeightsRAW decodes a stream written by WriteHeightsRAW into a
// width x length grid.
func ReadHeightsRAW(r io.Reader, width, length int) (*heightfield.Grid, error) {
	grid, err := heightfield.NewGrid(width, length)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	buf := make([]byte, 4*len(grid.Values))
	if _, err := io.ReadFull(dec, buf); err != nil {
		return nil, fmt.Errorf("read heights: %w", err)
	}

	var extra [1]byte
	if n, _ := dec.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("read heights: stream holds more than %dx%d values", width, length)
	}

	for i := range grid.Values {
		grid.Values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
	}
	grid.Min, grid.Max = grid.Range()
	return grid, nil
}
