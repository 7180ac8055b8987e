// Package mesh triangulates height grids into renderable surfaces.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/VoidMesh/terragen/internal/heightfield"
	"github.com/VoidMesh/terragen/internal/validation"
)

var up = mgl32.Vec3{0, 1, 0}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Buffers holds the vertex, index and UV data of a terrain surface.
// Normals and Bounds are derived from Vertices and Triangles.
type Buffers struct {
	Width  int
	Length int

	Vertices  []mgl32.Vec3
	Triangles []uint32
	UVs       []mgl32.Vec2
	Normals   []mgl32.Vec3
	Bounds    Bounds
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Triangles) / 3
}

// Triangle returns the vertex indices of triangle i.
func (b *Buffers) Triangle(i int) (uint32, uint32, uint32) {
	return b.Triangles[i*3], b.Triangles[i*3+1], b.Triangles[i*3+2]
}

// FaceNormal returns the unnormalized normal of triangle i. Its length is
// twice the triangle's area.
func (b *Buffers) FaceNormal(i int) mgl32.Vec3 {
	ia, ib, ic := b.Triangle(i)
	va, vb, vc := b.Vertices[ia], b.Vertices[ib], b.Vertices[ic]
	return vb.Sub(va).Cross(vc.Sub(va))
}

// Build converts a height grid into mesh buffers. Vertex i = z*width+x sits at
// (x*cellSize, curve(h)*heightMultiplier, z*cellSize). A nil curve is the
// identity.
func Build(grid *heightfield.Grid, heightMultiplier float64, curve Curve, cellSize float64) (*Buffers, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(heightMultiplier) || math.IsInf(heightMultiplier, 0) {
		return nil, validation.Errorf("height_multiplier", "must be finite, got %g", heightMultiplier)
	}
	if math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, validation.Errorf("cell_size", "must be finite, got %g", cellSize)
	}
	if curve == nil {
		curve = Identity
	}

	width, length := grid.Width, grid.Length
	vertices := make([]mgl32.Vec3, width*length)
	uvs := make([]mgl32.Vec2, width*length)
	triangles := make([]uint32, 0, (width-1)*(length-1)*6)

	vertIndex := 0
	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			height := curve(grid.Values[vertIndex]) * heightMultiplier

			vertices[vertIndex] = mgl32.Vec3{
				float32(float64(x) * cellSize),
				float32(height),
				float32(float64(z) * cellSize),
			}
			uvs[vertIndex] = mgl32.Vec2{
				float32(x) / float32(width-1),
				float32(z) / float32(length-1),
			}

			if x < width-1 && z < length-1 {
				a := uint32(vertIndex)
				b := a + uint32(width)
				c := b + 1
				d := a + 1

				triangles = append(triangles,
					a, b, c,
					a, c, d,
				)
			}

			vertIndex++
		}
	}

	buffers := &Buffers{
		Width:     width,
		Length:    length,
		Vertices:  vertices,
		Triangles: triangles,
		UVs:       uvs,
	}
	buffers.recalculateNormals()
	buffers.recalculateBounds()

	return buffers, nil
}

// recalculateNormals averages the area-weighted face normals around each vertex.
func (b *Buffers) recalculateNormals() {
	normals := make([]mgl32.Vec3, len(b.Vertices))
	for t := 0; t < b.TriangleCount(); t++ {
		n := b.FaceNormal(t)
		ia, ib, ic := b.Triangle(t)
		normals[ia] = normals[ia].Add(n)
		normals[ib] = normals[ib].Add(n)
		normals[ic] = normals[ic].Add(n)
	}

	for i, n := range normals {
		if n.Len() == 0 {
			normals[i] = up
			continue
		}
		normals[i] = n.Normalize()
	}
	b.Normals = normals
}

func (b *Buffers) recalculateBounds() {
	if len(b.Vertices) == 0 {
		b.Bounds = Bounds{}
		return
	}

	lo, hi := b.Vertices[0], b.Vertices[0]
	for _, v := range b.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	b.Bounds = Bounds{Min: lo, Max: hi}
}
