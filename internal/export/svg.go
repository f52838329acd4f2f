package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/gfxlab/internal/rubik"
	"github.com/san-kum/gfxlab/internal/viz"
)

// netSlots is where each face's 3x3 block sits, in blocks, on the unfolded net.
var netSlots = map[viz.Face][2]int{
	viz.FaceTop:    {1, 0},
	viz.FaceLeft:   {0, 1},
	viz.FaceFront:  {1, 1},
	viz.FaceRight:  {2, 1},
	viz.FaceBack:   {3, 1},
	viz.FaceBottom: {1, 2},
}

func hexColor(c rubik.Color) string {
	rgb := c.RGB()
	b := func(v float32) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", b(rgb[0]), b(rgb[1]), b(rgb[2]))
}

// NetToSVG draws the unfolded cube with one square of size scale per sticker.
func NetToSVG(n viz.Net, scale float64) string {
	if scale <= 0 {
		scale = 20
	}
	width := 12 * scale
	height := 9 * scale
	gap := scale * 0.08

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g stroke="#000000" stroke-width="%.1f">
`, width, height, width, height, gap))

	for f := viz.FaceTop; f <= viz.FaceRight; f++ {
		slot := netSlots[f]
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				x := (float64(slot[0]*3+c))*scale + gap
				y := (float64(slot[1]*3+r))*scale + gap
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, scale-2*gap, scale-2*gap, hexColor(n[f][r][c])))
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func WriteNetSVG(path string, n viz.Net, scale float64) error {
	return os.WriteFile(path, []byte(NetToSVG(n, scale)), 0644)
}
