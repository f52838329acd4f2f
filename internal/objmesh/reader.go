// Package objmesh reads the triangle subset of the Wavefront OBJ format into
// an indexed geometry.Mesh.
package objmesh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/assets"
	"github.com/san-kum/gfxlab/internal/geometry"
)

// maxLineSize bounds a single OBJ line. Exporters write long comment and
// group lines, well past bufio's default token size.
const maxLineSize = 16 << 20

var (
	ErrMalformed   = errors.New("objmesh: malformed line")
	ErrNotTriangle = errors.New("objmesh: face is not a triangle")
	ErrIndexRange  = errors.New("objmesh: index out of range")
)

// ParseError ties a read failure to its 1-based line.
type ParseError struct {
	Line    int
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

type corner struct {
	vertex int
	normal int // 0 when the face gave none
}

type face struct {
	line    int
	corners [3]corner
}

// Read parses v, vn and f records. Other keywords are skipped. Normals come
// from vn records only when every face references them; otherwise each face
// gets its own flat normal. Vertices sharing position and normal are merged.
func Read(r io.Reader, color geometry.RGBA) (*geometry.Mesh, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		faces     []face
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Wrapped: err}
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Wrapped: err}
			}
			normals = append(normals, n)
		case "f":
			f, err := parseFace(fields[1:], len(positions), len(normals))
			if err != nil {
				return nil, &ParseError{Line: line, Wrapped: err}
			}
			f.line = line
			faces = append(faces, f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	useNormals := len(normals) > 0
	for _, f := range faces {
		for _, c := range f.corners {
			if c.normal == 0 {
				useNormals = false
			}
		}
	}

	mesh := &geometry.Mesh{}
	seen := make(map[[6]float32]uint32)

	for _, f := range faces {
		var pts [3]mgl32.Vec3
		for k, c := range f.corners {
			if c.vertex < 1 || c.vertex > len(positions) {
				return nil, &ParseError{Line: f.line, Wrapped: fmt.Errorf("%w: vertex %d of %d", ErrIndexRange, c.vertex, len(positions))}
			}
			pts[k] = positions[c.vertex-1]
		}
		flat := FaceNormal(pts[0], pts[1], pts[2])

		for k, c := range f.corners {
			n := flat
			if useNormals && c.normal >= 1 && c.normal <= len(normals) {
				n = normals[c.normal-1]
			}
			p := pts[k]
			key := [6]float32{p[0], p[1], p[2], n[0], n[1], n[2]}
			idx, ok := seen[key]
			if !ok {
				idx = mesh.AddVertex(p, n, color)
				seen[key] = idx
			}
			mesh.Indices = append(mesh.Indices, idx)
		}
	}

	return mesh, nil
}

// ReadDefault parses the embedded car model.
func ReadDefault(color geometry.RGBA) (*geometry.Mesh, error) {
	return Read(bytes.NewReader(assets.CarOBJ), color)
}

// FaceNormal is the unit normal of triangle abc. Degenerate triangles get +y.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrMalformed, len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFace reads three a, a/b, a//c or a/b/c tokens. Negative indices count
// back from the records read so far.
func parseFace(tokens []string, nv, nn int) (face, error) {
	var f face
	if len(tokens) != 3 {
		return f, fmt.Errorf("%w: %d corners", ErrNotTriangle, len(tokens))
	}
	for i, tok := range tokens {
		parts := strings.Split(tok, "/")
		v, err := parseIndex(parts[0], nv)
		if err != nil {
			return f, err
		}
		f.corners[i].vertex = v
		if len(parts) >= 3 && parts[2] != "" {
			n, err := parseIndex(parts[2], nn)
			if err != nil {
				return f, err
			}
			f.corners[i].normal = n
		}
	}
	return f, nil
}

func parseIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrMalformed, s)
	}
	if i < 0 {
		i = count + 1 + i
		if i < 1 {
			return 0, fmt.Errorf("%w: relative index %s", ErrIndexRange, s)
		}
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: index 0", ErrIndexRange)
	}
	return i, nil
}
