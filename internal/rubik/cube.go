package rubik

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CubieCount     = 27
	DefaultSpacing = float32(1.1)
)

// Color is a sticker colour. Faces hidden inside the arrangement are Black.
type Color int

const (
	Black Color = iota
	Red
	Green
	Blue
	Yellow
	Orange
	White
)

func (c Color) String() string {
	return [...]string{"black", "red", "green", "blue", "yellow", "orange", "white"}[c]
}

func (c Color) RGB() [3]float32 {
	switch c {
	case Red:
		return [3]float32{1, 0, 0}
	case Green:
		return [3]float32{0, 1, 0}
	case Blue:
		return [3]float32{0, 0, 1}
	case Yellow:
		return [3]float32{1, 1, 0}
	case Orange:
		return [3]float32{1, 0.5, 0}
	case White:
		return [3]float32{1, 1, 1}
	}
	return [3]float32{0, 0, 0}
}

// Face order shared with the cubie mesh: top, front, left, bottom, back, right.
var FaceNormals = [6][3]int{
	{0, 1, 0},
	{0, 0, 1},
	{-1, 0, 0},
	{0, -1, 0},
	{0, 0, -1},
	{1, 0, 0},
}

var faceColors = [6]Color{Red, Green, Blue, Yellow, Orange, White}

// FaceColors returns the six face colours of the cubie whose home is h.
func FaceColors(h [3]int) [6]Color {
	var out [6]Color
	for f, n := range FaceNormals {
		axis, sign := normalAxis(n)
		if h[axis] == sign {
			out[f] = faceColors[f]
		}
	}
	return out
}

func normalAxis(n [3]int) (int, int) {
	for i, v := range n {
		if v != 0 {
			return i, v
		}
	}
	return 0, 0
}

type Cube struct {
	Transforms [CubieCount]mgl32.Mat4
	Positions  [CubieCount][3]int
	Home       [CubieCount][3]int
	Orient     [CubieCount]Mat3i
	Spacing    float32
}

// NewCube lays the cubies out in x, y, z loop order, spaced spacing apart.
func NewCube(spacing float32) *Cube {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	c := &Cube{Spacing: spacing}
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p := [3]int{x, y, z}
				c.Positions[i] = p
				c.Home[i] = p
				c.Orient[i] = Ident3i()
				c.Transforms[i] = c.transformFor(i)
				i++
			}
		}
	}
	return c
}

func (c *Cube) Reset() {
	*c = *NewCube(c.Spacing)
}

func (c *Cube) transformFor(i int) mgl32.Mat4 {
	p := c.Positions[i]
	s := c.Spacing
	return mgl32.Translate3D(float32(p[0])*s, float32(p[1])*s, float32(p[2])*s).Mul4(c.Orient[i].Mat4())
}

func axisRotation(axis Axis, angle float32) mgl32.Mat4 {
	switch axis {
	case AxisX:
		return mgl32.HomogRotate3DX(angle)
	case AxisY:
		return mgl32.HomogRotate3DY(angle)
	default:
		return mgl32.HomogRotate3DZ(angle)
	}
}

// Rotate turns the cubies of a slice by angle about the world origin. With
// commit set the turn is treated as finished: logical positions and
// orientations advance one quarter turn and transforms snap to them.
func (c *Cube) Rotate(s Slice, dir Direction, angle float32, commit bool) error {
	l, err := s.Layer()
	if err != nil {
		return err
	}
	rot := axisRotation(l.Axis, float32(dir.Sign())*angle)

	selected := make([]int, 0, 9)
	for i := range c.Positions {
		if c.Positions[i][l.Index] == l.Pos {
			selected = append(selected, i)
		}
	}

	for _, i := range selected {
		c.Transforms[i] = rot.Mul4(c.Transforms[i])
	}

	if !commit {
		return nil
	}

	q := QuarterTurn(l.Axis, dir.Sign())
	for _, i := range selected {
		c.Positions[i] = turnPosition(c.Positions[i], l.Axis, dir)
		c.Orient[i] = q.Mul(c.Orient[i])
		c.Transforms[i] = c.transformFor(i)
	}
	return nil
}

// Apply performs an instant quarter turn.
func (c *Cube) Apply(m Move) error {
	return c.Rotate(m.Slice, m.Direction, 0, true)
}

func (c *Cube) ApplyAll(moves []Move) error {
	for _, m := range moves {
		if err := c.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// Sticker is a coloured face of a cubie, located in the current arrangement.
type Sticker struct {
	Cubie  int
	Pos    [3]int
	Normal [3]int
	Color  Color
}

func (c *Cube) Stickers() []Sticker {
	out := make([]Sticker, 0, 54)
	for i := range c.Home {
		colors := FaceColors(c.Home[i])
		for f, col := range colors {
			if col == Black {
				continue
			}
			out = append(out, Sticker{
				Cubie:  i,
				Pos:    c.Positions[i],
				Normal: c.Orient[i].Apply(FaceNormals[f]),
				Color:  col,
			})
		}
	}
	return out
}

// IsSolved reports whether each outer face shows one colour. Whole-cube
// rotations still count as solved.
func (c *Cube) IsSolved() bool {
	seen := make(map[[3]int]Color, 6)
	for _, st := range c.Stickers() {
		if col, ok := seen[st.Normal]; ok && col != st.Color {
			return false
		}
		seen[st.Normal] = st.Color
	}
	return true
}

// AtHome reports whether every cubie sits at its starting position and orientation.
func (c *Cube) AtHome() bool {
	for i := range c.Positions {
		if c.Positions[i] != c.Home[i] || !c.Orient[i].IsIdentity() {
			return false
		}
	}
	return true
}
