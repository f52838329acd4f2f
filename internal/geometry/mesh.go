// Package geometry builds the hand-authored meshes of the labs as plain
// CPU-side vertex and index arrays.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrAttributeLength = errors.New("geometry: attribute length mismatch")
	ErrIndexRange      = errors.New("geometry: index out of range")
)

// RGBA colour with float components in 0..1.
type RGBA [4]float32

func Opaque(r, g, b float32) RGBA {
	return RGBA{r, g, b, 1}
}

var (
	ColorBlack = Opaque(0, 0, 0)
	ColorRed   = Opaque(1, 0, 0)
	ColorGreen = Opaque(0, 1, 0)
	ColorBlue  = Opaque(0, 0, 1)
	ColorWood  = Opaque(0.6, 0.4, 0.2)
	ColorLight = Opaque(1, 0.9, 0.2)
)

// Mesh is an indexed triangle list. Positions and Normals hold 3 floats per
// vertex, Colors holds 4.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p, n mgl32.Vec3, c RGBA) uint32 {
	idx := uint32(m.VertexCount())
	m.Positions = append(m.Positions, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
	m.Colors = append(m.Colors, c[0], c[1], c[2], c[3])
	return idx
}

func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

func (m *Mesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

func (m *Mesh) Color(i int) RGBA {
	return RGBA{m.Colors[4*i], m.Colors[4*i+1], m.Colors[4*i+2], m.Colors[4*i+3]}
}

func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position floats", ErrAttributeLength, len(m.Positions))
	}
	n := m.VertexCount()
	if len(m.Normals) != 3*n {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrAttributeLength, len(m.Normals)/3, n)
	}
	if len(m.Colors) != 4*n {
		return fmt.Errorf("%w: %d colours for %d vertices", ErrAttributeLength, len(m.Colors)/4, n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form triangles", ErrAttributeLength, len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %d >= %d", ErrIndexRange, idx, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned box around all positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	min, max = m.Position(0), m.Position(0)
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return
}

// Expand returns a copy with one vertex per index and sequential indices.
func (m *Mesh) Expand() *Mesh {
	out := &Mesh{
		Positions: make([]float32, 0, 3*len(m.Indices)),
		Normals:   make([]float32, 0, 3*len(m.Indices)),
		Colors:    make([]float32, 0, 4*len(m.Indices)),
		Indices:   make([]uint32, 0, len(m.Indices)),
	}
	for _, idx := range m.Indices {
		i := int(idx)
		out.AddVertex(m.Position(i), m.Normal(i), m.Color(i))
		out.Indices = append(out.Indices, uint32(len(out.Indices)))
	}
	return out
}
