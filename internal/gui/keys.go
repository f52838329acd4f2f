package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gfxlab/internal/keymap"
)

var keyCodes = map[string]int32{
	"W": rl.KeyW, "S": rl.KeyS, "A": rl.KeyA, "D": rl.KeyD,
	"SPACE": rl.KeySpace, "LEFT_SHIFT": rl.KeyLeftShift,
	"LEFT": rl.KeyLeft, "RIGHT": rl.KeyRight, "UP": rl.KeyUp, "DOWN": rl.KeyDown,
	"E": rl.KeyE, "R": rl.KeyR, "T": rl.KeyT, "Y": rl.KeyY, "U": rl.KeyU, "I": rl.KeyI,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "J": rl.KeyJ, "K": rl.KeyK, "L": rl.KeyL,
	"Z": rl.KeyZ, "X": rl.KeyX, "C": rl.KeyC, "V": rl.KeyV, "B": rl.KeyB, "N": rl.KeyN,
	"P": rl.KeyP,
}

func keyCode(name string) (int32, bool) {
	code, ok := keyCodes[name]
	return code, ok
}

// pressedActions returns the actions whose key went down this frame.
func pressedActions(kinds ...keymap.Kind) []keymap.Action {
	var out []keymap.Action
	for _, b := range keymap.Bindings {
		if !kindIn(b.Action.Kind, kinds) {
			continue
		}
		code, ok := keyCode(b.Key)
		if ok && rl.IsKeyPressed(code) {
			out = append(out, b.Action)
		}
	}
	return out
}

func kindIn(k keymap.Kind, kinds []keymap.Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
