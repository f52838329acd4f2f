package rubik

import (
	"errors"
	"testing"

	"github.com/san-kum/gfxlab/internal/lab"
)

func TestSliceLayer(t *testing.T) {
	tests := []struct {
		slice Slice
		want  Layer
	}{
		{RightVertical, Layer{0, 1, AxisX}},
		{MiddleVertical, Layer{0, 0, AxisX}},
		{LeftVertical, Layer{0, -1, AxisX}},
		{TopHorizontal, Layer{1, 1, AxisY}},
		{MiddleHorizontal, Layer{1, 0, AxisY}},
		{BottomHorizontal, Layer{1, -1, AxisY}},
		{Front, Layer{2, 1, AxisZ}},
		{Middle, Layer{2, 0, AxisZ}},
		{Back, Layer{2, -1, AxisZ}},
	}

	for _, tt := range tests {
		t.Run(string(tt.slice), func(t *testing.T) {
			got, err := tt.slice.Layer()
			if err != nil {
				t.Fatalf("layer failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Layer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
		err  bool
	}{
		{"R-VERTICAL+", Move{RightVertical, Forward}, false},
		{"front-", Move{Front, Backward}, false},
		{"BACK'", Move{Back, Backward}, false},
		{" middle ", Move{Middle, Forward}, false},
		{"T-HORIZONTAL-", Move{TopHorizontal, Backward}, false},
		{"UP+", Move{}, true},
		{"", Move{}, true},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if tt.err {
			if !errors.Is(err, lab.ErrUnknownSlice) {
				t.Errorf("ParseMove(%q): expected ErrUnknownSlice, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseMove(got.String()); back != got {
			t.Errorf("String() of %v does not parse back", got)
		}
	}
}

func TestParseMovesSplitsFields(t *testing.T) {
	moves, err := ParseMoves([]string{"FRONT+ BACK-", "MIDDLE"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}
	if moves[1] != (Move{Back, Backward}) {
		t.Errorf("expected BACK-, got %v", moves[1])
	}
}

func TestTurnPositionMatchesQuarterTurn(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, dir := range []Direction{Forward, Backward} {
			q := QuarterTurn(axis, dir.Sign())
			for x := -1; x <= 1; x++ {
				for y := -1; y <= 1; y++ {
					for z := -1; z <= 1; z++ {
						p := [3]int{x, y, z}
						if got, want := turnPosition(p, axis, dir), q.Apply(p); got != want {
							t.Errorf("axis %s %s %v: turnPosition %v, matrix %v", axis, dir, p, got, want)
						}
					}
				}
			}
		}
	}
}

func TestScramblePoolDirections(t *testing.T) {
	if len(scramblePool) != 18 {
		t.Fatalf("expected 18 pool entries, got %d", len(scramblePool))
	}
	for i := range scramblePool {
		m := moveFromPool(i)
		if (i%2 == 0) != (m.Direction == Forward) {
			t.Errorf("index %d: unexpected direction %s", i, m.Direction)
		}
	}
}
