package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/VoidMesh/terragen/internal/mesh"
)

// WriteOBJ writes buffers as a Wavefront OBJ object named name. Faces use
// 1-based v/vt/vn triplets in the mesh's own winding order.
func WriteOBJ(w io.Writer, buffers *mesh.Buffers, name string) error {
	if buffers == nil {
		return fmt.Errorf("write obj: nil mesh")
	}

	bw := bufio.NewWriter(w)
	var line []byte

	fmt.Fprintf(bw, "# terragen %dx%d, %d vertices, %d triangles\n",
		buffers.Width, buffers.Length, buffers.VertexCount(), buffers.TriangleCount())
	size, center := buffers.Bounds.Size(), buffers.Bounds.Center()
	fmt.Fprintf(bw, "# size %g %g %g, center %g %g %g\n",
		size[0], size[1], size[2], center[0], center[1], center[2])
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, v := range buffers.Vertices {
		line = appendVector(append(line[:0], 'v'), v[:])
		bw.Write(line)
	}
	for _, uv := range buffers.UVs {
		line = appendVector(append(line[:0], "vt"...), uv[:])
		bw.Write(line)
	}
	for _, n := range buffers.Normals {
		line = appendVector(append(line[:0], "vn"...), n[:])
		bw.Write(line)
	}

	for i := 0; i < buffers.TriangleCount(); i++ {
		a, b, c := buffers.Triangle(i)
		line = append(line[:0], 'f')
		for _, idx := range [3]uint32{a, b, c} {
			ref := strconv.FormatUint(uint64(idx)+1, 10)
			line = append(line, ' ')
			line = append(line, ref...)
			line = append(line, '/')
			line = append(line, ref...)
			line = append(line, '/')
			line = append(line, ref...)
		}
		line = append(line, '\n')
		bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

func appendVector(dst []byte, components []float32) []byte {
	for _, c := range components {
		dst = append(dst, ' ')
		dst = strconv.AppendFloat(dst, float64(c), 'f', -1, 32)
	}
	return append(dst, '\n')
}
