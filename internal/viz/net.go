package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gfxlab/internal/rubik"
)

type Face int

const (
	FaceTop Face = iota
	FaceFront
	FaceLeft
	FaceBottom
	FaceBack
	FaceRight
)

var faceNames = [...]string{"top", "front", "left", "bottom", "back", "right"}

func (f Face) String() string { return faceNames[f] }

// Net holds the nine stickers of every face, row-major as seen from outside.
type Net [6][3][3]rubik.Color

func faceOf(n [3]int) (Face, bool) {
	for f, fn := range rubik.FaceNormals {
		if fn == n {
			return Face(f), true
		}
	}
	return 0, false
}

// cell maps a sticker position on face f to its row and column.
func cell(f Face, p [3]int) (row, col int) {
	x, y, z := p[0], p[1], p[2]
	switch f {
	case FaceTop:
		return z + 1, x + 1
	case FaceBottom:
		return 1 - z, x + 1
	case FaceFront:
		return 1 - y, x + 1
	case FaceBack:
		return 1 - y, 1 - x
	case FaceLeft:
		return 1 - y, z + 1
	default:
		return 1 - y, 1 - z
	}
}

func NetOf(c *rubik.Cube) Net {
	var n Net
	for _, st := range c.Stickers() {
		f, ok := faceOf(st.Normal)
		if !ok {
			continue
		}
		r, col := cell(f, st.Pos)
		n[f][r][col] = st.Color
	}
	return n
}

// Uniform reports whether every face of the net shows a single colour.
func (n Net) Uniform() bool {
	for _, face := range n {
		c := face[1][1]
		for _, row := range face {
			for _, v := range row {
				if v != c {
					return false
				}
			}
		}
	}
	return true
}

// Centers returns the middle sticker of each face.
func (n Net) Centers() [6]rubik.Color {
	var out [6]rubik.Color
	for f := range n {
		out[f] = n[f][1][1]
	}
	return out
}

func (n Net) faceRow(f Face, r int, t Theme) string {
	var b strings.Builder
	for _, c := range n[f][r] {
		b.WriteString(t.Sticker(c).Render("██"))
	}
	return b.String()
}

// Render draws the net with the theme's sticker palette.
func (n Net) Render(t Theme) string {
	blank := strings.Repeat(" ", 7)
	gap := " "
	var lines []string

	for r := 0; r < 3; r++ {
		lines = append(lines, blank+n.faceRow(FaceTop, r, t))
	}
	lines = append(lines, "")
	for r := 0; r < 3; r++ {
		lines = append(lines, strings.Join([]string{
			n.faceRow(FaceLeft, r, t),
			n.faceRow(FaceFront, r, t),
			n.faceRow(FaceRight, r, t),
			n.faceRow(FaceBack, r, t),
		}, gap))
	}
	lines = append(lines, "")
	for r := 0; r < 3; r++ {
		lines = append(lines, blank+n.faceRow(FaceBottom, r, t))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var stickerLetters = [...]byte{'.', 'R', 'G', 'B', 'Y', 'O', 'W'}

// Letters is the net as plain text, one letter per sticker.
func (n Net) Letters() string {
	letter := func(f Face, r int) string {
		var b strings.Builder
		for _, c := range n[f][r] {
			b.WriteByte(stickerLetters[c])
		}
		return b.String()
	}

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString("    " + letter(FaceTop, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(letter(FaceLeft, r) + " " + letter(FaceFront, r) + " " +
			letter(FaceRight, r) + " " + letter(FaceBack, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString("    " + letter(FaceBottom, r) + "\n")
	}
	return b.String()
}
