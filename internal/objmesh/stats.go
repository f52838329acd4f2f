package objmesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/geometry"
)

type Stats struct {
	Vertices  int
	Triangles int
	Min       mgl32.Vec3
	Max       mgl32.Vec3
}

func Measure(m *geometry.Mesh) Stats {
	min, max := m.Bounds()
	return Stats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Min:       min,
		Max:       max,
	}
}

func (s Stats) Size() mgl32.Vec3 {
	return s.Max.Sub(s.Min)
}

func (s Stats) Center() mgl32.Vec3 {
	return s.Min.Add(s.Max).Mul(0.5)
}

func (s Stats) String() string {
	size := s.Size()
	return fmt.Sprintf("%d vertices, %d triangles, size %.2f x %.2f x %.2f", s.Vertices, s.Triangles, size[0], size[1], size[2])
}
