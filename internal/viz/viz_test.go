package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/gfxlab/internal/rubik"
)

func TestNetSolved(t *testing.T) {
	n := NetOf(rubik.NewCube(rubik.DefaultSpacing))
	if !n.Uniform() {
		t.Fatal("expected uniform faces on a new cube")
	}

	want := [6]rubik.Color{rubik.Red, rubik.Green, rubik.Blue, rubik.Yellow, rubik.Orange, rubik.White}
	if got := n.Centers(); got != want {
		t.Errorf("expected centers %v, got %v", want, got)
	}
}

func TestNetAfterTurn(t *testing.T) {
	c := rubik.NewCube(rubik.DefaultSpacing)
	if err := c.Apply(rubik.Move{Slice: rubik.TopHorizontal, Direction: rubik.Forward}); err != nil {
		t.Fatal(err)
	}
	n := NetOf(c)
	if n.Uniform() {
		t.Error("expected a mixed net after a top turn")
	}

	// The top face only spins in place.
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			if n[FaceTop][r][col] != rubik.Red {
				t.Errorf("top[%d][%d] = %v, expected red", r, col, n[FaceTop][r][col])
			}
		}
	}
	// The bottom two rows of each side are untouched.
	for _, f := range []Face{FaceFront, FaceLeft, FaceBack, FaceRight} {
		center := n[f][1][1]
		for r := 1; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if n[f][r][col] != center {
					t.Errorf("%s[%d][%d] = %v, expected %v", f, r, col, n[f][r][col], center)
				}
			}
		}
		top := n[f][0]
		if top[0] != top[1] || top[1] != top[2] {
			t.Errorf("%s top row should be one colour, got %v", f, top)
		}
		if top[1] == center {
			t.Errorf("%s top row should come from another face", f)
		}
	}
}

func TestNetNoBlackStickers(t *testing.T) {
	c := rubik.NewCube(rubik.DefaultSpacing)
	moves, _ := rubik.ParseMoves([]string{"FRONT+", "R-VERTICAL-", "M-HORIZONTAL+", "BACK+"})
	if err := c.ApplyAll(moves); err != nil {
		t.Fatal(err)
	}
	n := NetOf(c)
	for f := range n {
		for r := range n[f] {
			for col := range n[f][r] {
				if n[f][r][col] == rubik.Black {
					t.Errorf("%s[%d][%d] is empty", Face(f), r, col)
				}
			}
		}
	}
}

func TestLetters(t *testing.T) {
	out := NetOf(rubik.NewCube(rubik.DefaultSpacing)).Letters()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0] != "    RRR" {
		t.Errorf("expected top row RRR, got %q", lines[0])
	}
	if lines[3] != "BBB GGG WWW OOO" {
		t.Errorf("expected middle band, got %q", lines[3])
	}
	if lines[8] != "    YYY" {
		t.Errorf("expected bottom row YYY, got %q", lines[8])
	}
}

func TestRenderNonEmpty(t *testing.T) {
	out := NetOf(rubik.NewCube(rubik.DefaultSpacing)).Render(ThemeClassic)
	if strings.Count(out, "██") != 54 {
		t.Errorf("expected 54 sticker blocks, got %d", strings.Count(out, "██"))
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("pastel").Name != "pastel" {
		t.Error("expected pastel theme")
	}
	if GetTheme("nope").Name != "classic" {
		t.Error("expected fallback to classic")
	}
	if NextTheme("retro").Name != "classic" {
		t.Error("expected wrap around to classic")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{0, 1, 2, 3}, 4)
	if s != "▁▃▅█" {
		t.Errorf("expected ▁▃▅█, got %q", s)
	}
	if Sparkline(nil, 3) != "───" {
		t.Error("expected flat line for no data")
	}
}
