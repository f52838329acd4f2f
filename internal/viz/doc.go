// Package viz renders the cube for terminals: an unfolded cube net coloured
// with lipgloss, plus the shared styles and themes of the terminal views.
//
// The net is laid out with the top face above the front face:
//
//	      T
//	   L  F  R  B
//	      D
//
// Each face is drawn as seen from outside the cube.
package viz
