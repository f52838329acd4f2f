package rubik

import (
	"fmt"
	"strings"

	"github.com/san-kum/gfxlab/internal/lab"
)

// Axis is a world axis a slice turns about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// Slice names one of the nine 3x1x3 layers of the cube.
type Slice string

const (
	RightVertical    Slice = "R-VERTICAL"
	MiddleVertical   Slice = "M-VERTICAL"
	LeftVertical     Slice = "L-VERTICAL"
	TopHorizontal    Slice = "T-HORIZONTAL"
	MiddleHorizontal Slice = "M-HORIZONTAL"
	BottomHorizontal Slice = "B-HORIZONTAL"
	Front            Slice = "FRONT"
	Middle           Slice = "MIDDLE"
	Back             Slice = "BACK"
)

// Slices lists every slice grouped by axis.
var Slices = []Slice{
	RightVertical, MiddleVertical, LeftVertical,
	TopHorizontal, MiddleHorizontal, BottomHorizontal,
	Front, Middle, Back,
}

// Layer selects the cubies whose logical position has Pos on component Index.
type Layer struct {
	Index int
	Pos   int
	Axis  Axis
}

var layers = map[Slice]Layer{
	RightVertical:    {Index: 0, Pos: 1, Axis: AxisX},
	MiddleVertical:   {Index: 0, Pos: 0, Axis: AxisX},
	LeftVertical:     {Index: 0, Pos: -1, Axis: AxisX},
	TopHorizontal:    {Index: 1, Pos: 1, Axis: AxisY},
	MiddleHorizontal: {Index: 1, Pos: 0, Axis: AxisY},
	BottomHorizontal: {Index: 1, Pos: -1, Axis: AxisY},
	Front:            {Index: 2, Pos: 1, Axis: AxisZ},
	Middle:           {Index: 2, Pos: 0, Axis: AxisZ},
	Back:             {Index: 2, Pos: -1, Axis: AxisZ},
}

func (s Slice) Layer() (Layer, error) {
	l, ok := layers[s]
	if !ok {
		return Layer{}, fmt.Errorf("%w: %q", lab.ErrUnknownSlice, string(s))
	}
	return l, nil
}

// Direction of a quarter turn. Forward turns by +90 degrees about the slice axis.
type Direction int

const (
	Backward Direction = 0
	Forward  Direction = 1
)

func (d Direction) Sign() int {
	if d == Forward {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

type Move struct {
	Slice     Slice
	Direction Direction
}

func (m Move) String() string {
	if m.Direction == Forward {
		return string(m.Slice) + "+"
	}
	return string(m.Slice) + "-"
}

func (m Move) Inverse() Move {
	if m.Direction == Forward {
		return Move{Slice: m.Slice, Direction: Backward}
	}
	return Move{Slice: m.Slice, Direction: Forward}
}

// ParseMove reads "<SLICE>+" or "<SLICE>-". A trailing apostrophe also means
// backward and a bare slice name means forward.
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	dir := Forward
	switch {
	case strings.HasSuffix(s, "+"):
		s = strings.TrimSuffix(s, "+")
	case strings.HasSuffix(s, "-"):
		s = strings.TrimSuffix(s, "-")
		dir = Backward
	case strings.HasSuffix(s, "'"):
		s = strings.TrimSuffix(s, "'")
		dir = Backward
	}
	m := Move{Slice: Slice(s), Direction: dir}
	if _, err := m.Slice.Layer(); err != nil {
		return Move{}, err
	}
	return m, nil
}

func ParseMoves(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		for _, field := range strings.Fields(tok) {
			m, err := ParseMove(field)
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// scramblePool has every slice twice; even indices turn forward.
var scramblePool = []Slice{
	RightVertical, RightVertical,
	MiddleVertical, MiddleVertical,
	LeftVertical, LeftVertical,
	TopHorizontal, TopHorizontal,
	MiddleHorizontal, MiddleHorizontal,
	BottomHorizontal, BottomHorizontal,
	Front, Front,
	Middle, Middle,
	Back, Back,
}

func moveFromPool(idx int) Move {
	dir := Backward
	if idx%2 == 0 {
		dir = Forward
	}
	return Move{Slice: scramblePool[idx], Direction: dir}
}
