package geometry

import "github.com/go-gl/mathgl/mgl32"

const stripHalfWidth = 0.01

var flatNormal = mgl32.Vec3{0, 0, 1}

// Plus builds the flat three-quad polygon with its black grid strips. It is
// drawn with identity view and projection, strips after the polygon, and
// without face culling: strip winding alternates.
func Plus() *Mesh {
	m := &Mesh{}

	tri := func(c RGBA, pts ...mgl32.Vec3) {
		a := m.AddVertex(pts[0], flatNormal, c)
		b := m.AddVertex(pts[1], flatNormal, c)
		d := m.AddVertex(pts[2], flatNormal, c)
		m.AddTriangle(a, b, d)
	}

	tri(ColorRed, mgl32.Vec3{-0.3, 0, 0}, mgl32.Vec3{0.3, 0, 0}, mgl32.Vec3{0.3, 0.6, 0})
	tri(ColorRed, mgl32.Vec3{-0.3, 0, 0}, mgl32.Vec3{0.3, 0.6, 0}, mgl32.Vec3{-0.3, 0.6, 0})

	tri(ColorGreen, mgl32.Vec3{0.3, 0, 0}, mgl32.Vec3{0.6, 0.3, 0}, mgl32.Vec3{0.6, 0.9, 0})
	tri(ColorGreen, mgl32.Vec3{0.3, 0, 0}, mgl32.Vec3{0.6, 0.9, 0}, mgl32.Vec3{0.3, 0.6, 0})

	tri(ColorBlue, mgl32.Vec3{-0.3, 0.6, 0}, mgl32.Vec3{0.0, 0.9, 0}, mgl32.Vec3{0.3, 0.6, 0})
	tri(ColorBlue, mgl32.Vec3{0.3, 0.6, 0}, mgl32.Vec3{0.6, 0.9, 0}, mgl32.Vec3{0.0, 0.9, 0})

	// front face
	horizontalStrip(m, -0.3, 0.2, 0.6, 0)
	horizontalStrip(m, -0.3, 0.4, 0.6, 0)
	verticalStrip(m, -0.1, 0, 0.6, 0)
	verticalStrip(m, 0.1, 0, 0.6, 0)

	// right face
	horizontalStrip(m, 0.3, 0.2, 0.3, 0.3)
	horizontalStrip(m, 0.3, 0.4, 0.3, 0.3)
	verticalStrip(m, 0.4, 0.1, 0.6, 0)
	verticalStrip(m, 0.5, 0.2, 0.6, 0)

	// top face
	horizontalStrip(m, -0.2, 0.7, 0.6, 0)
	horizontalStrip(m, -0.1, 0.8, 0.6, 0)
	verticalStrip(m, -0.1, 0.6, 0.3, 0.3)
	verticalStrip(m, 0.1, 0.6, 0.3, 0.3)

	return m
}

// horizontalStrip adds a thin quad from (x,y) running dist along x and rising
// offset along y.
func horizontalStrip(m *Mesh, x, y, dist, offset float32) {
	w := float32(stripHalfWidth)
	markQuad(m,
		mgl32.Vec3{x, y - w, 0},
		mgl32.Vec3{x, y + w, 0},
		mgl32.Vec3{x + dist, y + offset + w, 0},
		mgl32.Vec3{x + dist, y + offset - w, 0},
	)
}

// verticalStrip adds a thin quad from (x,y) running dist along y and drifting
// offset along x.
func verticalStrip(m *Mesh, x, y, dist, offset float32) {
	w := float32(stripHalfWidth)
	markQuad(m,
		mgl32.Vec3{x - w, y, 0},
		mgl32.Vec3{x + offset - w, y + dist, 0},
		mgl32.Vec3{x + offset + w, y + dist, 0},
		mgl32.Vec3{x + w, y, 0},
	)
}

func markQuad(m *Mesh, p0, p1, p2, p3 mgl32.Vec3) {
	v := m.AddVertex(p0, flatNormal, ColorBlack)
	m.AddVertex(p1, flatNormal, ColorBlack)
	m.AddVertex(p2, flatNormal, ColorBlack)
	m.AddVertex(p3, flatNormal, ColorBlack)
	m.AddTriangle(v, v+1, v+2)
	m.AddTriangle(v, v+3, v+2)
}
