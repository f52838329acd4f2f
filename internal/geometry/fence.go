package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FenceWidth  = float32(0.4)
	FenceCount  = 18
	BoardHeight = float32(1)
	BoardDepth  = float32(0.05)
)

// Board is one plank of the fenced ring.
func Board() *Mesh {
	return Box(FenceWidth, BoardHeight, BoardDepth, uniform(ColorWood))
}

// BentQuad is a flat plank whose corner normals lean 10 degrees outwards,
// so neighbouring quads in a ring shade as one smooth surface.
func BentQuad() *Mesh {
	s := math32.Sin(math32.Pi / 18)
	c := math32.Cos(math32.Pi / 18)
	hw := FenceWidth / 2

	m := &Mesh{}
	m.AddVertex(mgl32.Vec3{-hw, -0.5, 0}, mgl32.Vec3{-s, -s, c}, ColorWood)
	m.AddVertex(mgl32.Vec3{hw, -0.5, 0}, mgl32.Vec3{s, -s, c}, ColorWood)
	m.AddVertex(mgl32.Vec3{hw, 0.5, 0}, mgl32.Vec3{s, s, c}, ColorWood)
	m.AddVertex(mgl32.Vec3{-hw, 0.5, 0}, mgl32.Vec3{-s, s, c}, ColorWood)
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)
	return m
}

// RingRadius is the distance at which n boards of the given width close a ring.
func RingRadius(n int, width float32) float32 {
	return width / (2 * math32.Tan(math32.Pi/float32(n)))
}

// RingTransforms places n boards around the y axis: each is pushed out to
// the ring radius, then turned by i*2pi/n.
func RingTransforms(n int, width float32) []mgl32.Mat4 {
	if n <= 0 {
		return nil
	}
	r := RingRadius(n, width)
	step := 2 * math32.Pi / float32(n)
	out := make([]mgl32.Mat4, n)
	for i := range out {
		out[i] = mgl32.HomogRotate3DY(step * float32(i)).Mul4(mgl32.Translate3D(0, 0, r))
	}
	return out
}

// Offset moves every transform by (x, y, z) in world space.
func Offset(transforms []mgl32.Mat4, x, y, z float32) []mgl32.Mat4 {
	t := mgl32.Translate3D(x, y, z)
	out := make([]mgl32.Mat4, len(transforms))
	for i, m := range transforms {
		out[i] = t.Mul4(m)
	}
	return out
}
