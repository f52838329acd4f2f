package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], 1e-4, msgAndArgs...)
	}
}

func TestPlusLayout(t *testing.T) {
	m := Plus()
	require.NoError(t, m.Validate())

	// six coloured triangles plus twelve two-triangle strips
	assert.Equal(t, 6+12*2, m.TriangleCount())
	assert.Equal(t, 6*3+12*4, m.VertexCount())

	assert.Equal(t, ColorRed, m.Color(0))
	assert.Equal(t, ColorGreen, m.Color(6))
	assert.Equal(t, ColorBlue, m.Color(12))
	assert.Equal(t, ColorBlack, m.Color(18))

	assert.Equal(t, mgl32.Vec3{0.6, 0.9, 0}, m.Position(8))
}

func TestStripCorners(t *testing.T) {
	m := &Mesh{}
	horizontalStrip(m, 0.3, 0.2, 0.3, 0.3)
	require.Equal(t, 4, m.VertexCount())

	want := []mgl32.Vec3{{0.3, 0.19, 0}, {0.3, 0.21, 0}, {0.6, 0.51, 0}, {0.6, 0.49, 0}}
	for i, w := range want {
		assertVecNear(t, w, m.Position(i), "corner %d: %v", i, m.Position(i))
	}
	assert.Equal(t, []uint32{0, 1, 2, 0, 3, 2}, m.Indices)

	m = &Mesh{}
	verticalStrip(m, -0.1, 0.6, 0.3, 0.3)
	assertVecNear(t, mgl32.Vec3{0.19, 0.9, 0}, m.Position(1))
	assertVecNear(t, mgl32.Vec3{-0.09, 0.6, 0}, m.Position(3))
}

func TestBoxFacesPointOutwards(t *testing.T) {
	m := Cubie(uniform(ColorRed))
	require.NoError(t, m.Validate())
	require.Equal(t, 24, m.VertexCount())
	require.Equal(t, 12, m.TriangleCount())

	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Position(int(m.Indices[3*tri]))
		b := m.Position(int(m.Indices[3*tri+1]))
		c := m.Position(int(m.Indices[3*tri+2]))
		winding := b.Sub(a).Cross(c.Sub(a)).Normalize()
		n := m.Normal(int(m.Indices[3*tri]))

		assertVecNear(t, n, winding, "triangle %d winds %v, normal %v", tri, winding, n)
		assert.InDelta(t, 0.5, a.Dot(n), 1e-6, "triangle %d is not on its face", tri)
	}
}

func TestBoxFaceOrder(t *testing.T) {
	colors := [6]RGBA{ColorRed, ColorGreen, ColorBlue, Opaque(1, 1, 0), Opaque(1, 0.5, 0), Opaque(1, 1, 1)}
	m := Cubie(colors)
	normals := []mgl32.Vec3{{0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {1, 0, 0}}
	for f := range normals {
		assert.Equal(t, normals[f], m.Normal(4*f))
		assert.Equal(t, colors[f], m.Color(4*f))
	}
}

func TestBoardSize(t *testing.T) {
	min, max := Board().Bounds()
	size := max.Sub(min)
	assert.InDelta(t, FenceWidth, size.X(), 1e-6)
	assert.InDelta(t, BoardHeight, size.Y(), 1e-6)
	assert.InDelta(t, BoardDepth, size.Z(), 1e-6)
}

func TestBentQuadNormals(t *testing.T) {
	m := BentQuad()
	require.NoError(t, m.Validate())
	s := math32.Sin(math32.Pi / 18)
	c := math32.Cos(math32.Pi / 18)

	assertVecNear(t, mgl32.Vec3{-s, -s, c}, m.Normal(0))
	assertVecNear(t, mgl32.Vec3{s, s, c}, m.Normal(2))
	assert.Equal(t, mgl32.Vec3{-0.2, -0.5, 0}, m.Position(0))
}

func TestRingClosesEvenly(t *testing.T) {
	ts := RingTransforms(FenceCount, FenceWidth)
	require.Len(t, ts, FenceCount)

	r := RingRadius(FenceCount, FenceWidth)
	assert.InDelta(t, 0.4/(2*0.17632698), r, 1e-4)

	// every board centre sits on the ring, and neighbouring board edges meet
	for i, m := range ts {
		centre := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assert.InDelta(t, r, centre.Len(), 1e-4, "board %d", i)

		right := m.Mul4x1(mgl32.Vec4{FenceWidth / 2, 0, 0, 1}).Vec3()
		next := ts[(i+1)%len(ts)]
		left := next.Mul4x1(mgl32.Vec4{-FenceWidth / 2, 0, 0, 1}).Vec3()
		assertVecNear(t, left, right, "gap between board %d and %d", i, i+1)
	}

	assert.Nil(t, RingTransforms(0, FenceWidth))
}

func TestOffset(t *testing.T) {
	moved := Offset(RingTransforms(4, 1), 3, 0, 0)
	centre := moved[0].Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.InDelta(t, 3, centre.X(), 1e-5)
}

func TestValidate(t *testing.T) {
	m := Marker()
	require.NoError(t, m.Validate())

	m.Indices = append(m.Indices, 0, 1, 99)
	assert.ErrorIs(t, m.Validate(), ErrIndexRange)

	m = Marker()
	m.Colors = m.Colors[:8]
	assert.ErrorIs(t, m.Validate(), ErrAttributeLength)
}

func TestExpand(t *testing.T) {
	m := Marker()
	flat := m.Expand()
	require.NoError(t, flat.Validate())
	assert.Equal(t, len(m.Indices), flat.VertexCount())
	assert.Equal(t, m.TriangleCount(), flat.TriangleCount())
	for i, idx := range m.Indices {
		assert.Equal(t, m.Position(int(idx)), flat.Position(i))
	}
}
