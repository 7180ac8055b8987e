package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VoidMesh/terragen/internal/terrain"
	"github.com/VoidMesh/terragen/internal/texture"
)

// File names written by WriteResult.
const (
	TextureFile   = "texture.png"
	HeightmapFile = "heightmap.png"
	MeshFile      = "mesh.obj"
	HeightsFile   = "heights.r32.zst"
)

// WriteResult writes the texture, grayscale heightmap, mesh and raw heights
// of result into dir, creating it if needed. It returns the written paths.
func WriteResult(dir string, result *terrain.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	heightmap, err := texture.Heightmap(result.Heights)
	if err != nil {
		return nil, err
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{TextureFile, func(w io.Writer) error { return WritePNG(w, result.Texture) }},
		{HeightmapFile, func(w io.Writer) error { return WritePNG(w, heightmap) }},
		{MeshFile, func(w io.Writer) error { return WriteOBJ(w, result.Mesh, result.Settings.Name) }},
		{HeightsFile, func(w io.Writer) error { return WriteHeightsRAW(w, result.Heights) }},
	}

	paths := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := filepath.Join(dir, wr.name)
		if err := writeFile(path, wr.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
