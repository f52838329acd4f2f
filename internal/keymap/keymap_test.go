package keymap

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/rubik"
)

func TestSliceKeys(t *testing.T) {
	tests := []struct {
		key   string
		slice rubik.Slice
		dir   rubik.Direction
	}{
		{"E", rubik.RightVertical, rubik.Forward},
		{"R", rubik.RightVertical, rubik.Backward},
		{"T", rubik.MiddleVertical, rubik.Forward},
		{"I", rubik.LeftVertical, rubik.Backward},
		{"F", rubik.TopHorizontal, rubik.Forward},
		{"J", rubik.MiddleHorizontal, rubik.Backward},
		{"K", rubik.BottomHorizontal, rubik.Forward},
		{"X", rubik.Front, rubik.Backward},
		{"C", rubik.Middle, rubik.Forward},
		{"N", rubik.Back, rubik.Backward},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, ok := Lookup(tt.key)
			if !ok {
				t.Fatalf("expected binding for %s", tt.key)
			}
			if a.Kind != KindTurn {
				t.Fatalf("expected turn action, got %v", a.Kind)
			}
			if a.Move.Slice != tt.slice || a.Move.Direction != tt.dir {
				t.Errorf("expected %s/%s, got %s", tt.slice, tt.dir, a.Move)
			}
		})
	}
}

func TestEverySliceBothWays(t *testing.T) {
	for _, s := range rubik.Slices {
		for _, d := range []rubik.Direction{rubik.Forward, rubik.Backward} {
			m := rubik.Move{Slice: s, Direction: d}
			key, ok := TurnKey(m)
			if !ok {
				t.Errorf("no key for %s", m)
				continue
			}
			a, _ := Lookup(key)
			if a.Move != m {
				t.Errorf("round trip of %s through %s gave %s", m, key, a.Move)
			}
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	a, ok := Lookup("p")
	if !ok || a.Kind != KindScramble {
		t.Errorf("expected scramble on p, got %v %v", a, ok)
	}
	if _, ok := Lookup("F12"); ok {
		t.Error("expected no binding for F12")
	}
}

func TestUniqueKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Bindings {
		if seen[b.Key] {
			t.Errorf("duplicate key %s", b.Key)
		}
		seen[b.Key] = true
	}
}

func TestApplyCamera(t *testing.T) {
	c := camera.NewFree()
	start := c.Position

	w, _ := Lookup("W")
	w.ApplyCamera(c)
	want := start.Add(mgl32.Vec3{0, 0, -camera.DefaultMoveSpeed})
	if c.Position != want {
		t.Errorf("expected %v after W, got %v", want, c.Position)
	}

	s, _ := Lookup("S")
	s.ApplyCamera(c)
	if c.Position != start {
		t.Errorf("expected %v after W,S, got %v", start, c.Position)
	}

	yaw := c.Yaw
	right, _ := Lookup("RIGHT")
	right.ApplyCamera(c)
	if c.Yaw <= yaw {
		t.Errorf("expected yaw to grow, got %f -> %f", yaw, c.Yaw)
	}

	pos := c.Position
	e, _ := Lookup("E")
	e.ApplyCamera(c)
	if c.Position != pos {
		t.Error("turn action should not move the camera")
	}
}

func TestHelp(t *testing.T) {
	all := Help()
	if len(all) != len(Bindings) {
		t.Errorf("expected %d lines, got %d", len(Bindings), len(all))
	}

	turns := Help(KindTurn)
	if len(turns) != 18 {
		t.Errorf("expected 18 turn lines, got %d", len(turns))
	}
	if !strings.Contains(turns[0], "R-VERTICAL+") {
		t.Errorf("expected first turn line to name R-VERTICAL+, got %q", turns[0])
	}
}
