// Package keymap holds the fixed keyboard layout of the interactive labs.
// Keys are named, not coded, so the table is shared by the raylib front end
// and the terminal viewer.
package keymap

import (
	"fmt"
	"strings"

	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/rubik"
)

type Kind int

const (
	KindCamera Kind = iota
	KindTurn
	KindScramble
)

type CameraOp int

const (
	CamForward CameraOp = iota
	CamBackward
	CamLeft
	CamRight
	CamUp
	CamDown
	CamRotate
)

// Action is what a key press does. Only the fields of its Kind are set.
type Action struct {
	Kind   Kind
	Camera CameraOp
	Yaw    float32
	Pitch  float32
	Move   rubik.Move
}

func (a Action) String() string {
	switch a.Kind {
	case KindTurn:
		return "turn " + a.Move.String()
	case KindScramble:
		return "scramble"
	}
	switch a.Camera {
	case CamForward:
		return "forward"
	case CamBackward:
		return "back"
	case CamLeft:
		return "left"
	case CamRight:
		return "right"
	case CamUp:
		return "up"
	case CamDown:
		return "down"
	}
	return fmt.Sprintf("look %+.0f,%+.0f", a.Yaw, a.Pitch)
}

// ApplyCamera runs a camera action against c. Non-camera actions are ignored.
func (a Action) ApplyCamera(c *camera.Free) {
	if a.Kind != KindCamera || c == nil {
		return
	}
	switch a.Camera {
	case CamForward:
		c.MoveForward()
	case CamBackward:
		c.MoveBackward()
	case CamLeft:
		c.MoveLeft()
	case CamRight:
		c.MoveRight()
	case CamUp:
		c.MoveUp()
	case CamDown:
		c.MoveDown()
	case CamRotate:
		c.Rotate(a.Yaw, a.Pitch)
	}
}

type Binding struct {
	Key    string
	Action Action
}

const rotateStep = 5

func cam(op CameraOp) Action { return Action{Kind: KindCamera, Camera: op} }

func look(yaw, pitch float32) Action {
	return Action{Kind: KindCamera, Camera: CamRotate, Yaw: yaw, Pitch: pitch}
}

func turn(s rubik.Slice, d rubik.Direction) Action {
	return Action{Kind: KindTurn, Move: rubik.Move{Slice: s, Direction: d}}
}

// Bindings in display order.
var Bindings = []Binding{
	{"W", cam(CamForward)},
	{"S", cam(CamBackward)},
	{"A", cam(CamLeft)},
	{"D", cam(CamRight)},
	{"SPACE", cam(CamUp)},
	{"LEFT_SHIFT", cam(CamDown)},
	{"LEFT", look(-rotateStep, 0)},
	{"RIGHT", look(rotateStep, 0)},
	{"UP", look(0, rotateStep)},
	{"DOWN", look(0, -rotateStep)},

	{"E", turn(rubik.RightVertical, rubik.Forward)},
	{"R", turn(rubik.RightVertical, rubik.Backward)},
	{"T", turn(rubik.MiddleVertical, rubik.Forward)},
	{"Y", turn(rubik.MiddleVertical, rubik.Backward)},
	{"U", turn(rubik.LeftVertical, rubik.Forward)},
	{"I", turn(rubik.LeftVertical, rubik.Backward)},
	{"F", turn(rubik.TopHorizontal, rubik.Forward)},
	{"G", turn(rubik.TopHorizontal, rubik.Backward)},
	{"H", turn(rubik.MiddleHorizontal, rubik.Forward)},
	{"J", turn(rubik.MiddleHorizontal, rubik.Backward)},
	{"K", turn(rubik.BottomHorizontal, rubik.Forward)},
	{"L", turn(rubik.BottomHorizontal, rubik.Backward)},
	{"Z", turn(rubik.Front, rubik.Forward)},
	{"X", turn(rubik.Front, rubik.Backward)},
	{"C", turn(rubik.Middle, rubik.Forward)},
	{"V", turn(rubik.Middle, rubik.Backward)},
	{"B", turn(rubik.Back, rubik.Forward)},
	{"N", turn(rubik.Back, rubik.Backward)},

	{"P", Action{Kind: KindScramble}},
}

var byKey = func() map[string]Action {
	m := make(map[string]Action, len(Bindings))
	for _, b := range Bindings {
		m[b.Key] = b.Action
	}
	return m
}()

// Lookup is case-insensitive on the key name.
func Lookup(key string) (Action, bool) {
	a, ok := byKey[strings.ToUpper(key)]
	return a, ok
}

// KeyFor is the reverse of Lookup.
func KeyFor(a Action) (string, bool) {
	for _, b := range Bindings {
		if b.Action == a {
			return b.Key, true
		}
	}
	return "", false
}

// TurnKey returns the key bound to a slice move.
func TurnKey(m rubik.Move) (string, bool) {
	return KeyFor(turn(m.Slice, m.Direction))
}

// Help renders one "KEY  action" line per binding of the given kinds.
func Help(kinds ...Kind) []string {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var lines []string
	for _, b := range Bindings {
		if len(kinds) > 0 && !want[b.Action.Kind] {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", b.Key, b.Action))
	}
	return lines
}
