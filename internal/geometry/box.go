package geometry

import "github.com/go-gl/mathgl/mgl32"

// Face order of every box: top, front, left, bottom, back, right.
var boxFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
}

// Box builds a centred w x h x d box, four vertices per face, coloured per face.
func Box(w, h, d float32, colors [6]RGBA) *Mesh {
	m := &Mesh{}
	half := mgl32.Vec3{w / 2, h / 2, d / 2}
	for f, face := range boxFaces {
		var v [4]uint32
		for k, c := range face.corners {
			p := mgl32.Vec3{c[0] * half[0], c[1] * half[1], c[2] * half[2]}
			v[k] = m.AddVertex(p, face.normal, colors[f])
		}
		m.AddTriangle(v[0], v[1], v[2])
		m.AddTriangle(v[0], v[2], v[3])
	}
	return m
}

func uniform(c RGBA) [6]RGBA {
	return [6]RGBA{c, c, c, c, c, c}
}

// Cubie builds a unit cube with the given face colours.
func Cubie(colors [6]RGBA) *Mesh {
	return Box(1, 1, 1, colors)
}

// Marker is the small cube drawn at the light position.
func Marker() *Mesh {
	return Box(0.1, 0.1, 0.1, uniform(ColorLight))
}
