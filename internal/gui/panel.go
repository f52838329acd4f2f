package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelPad    = float32(8)
	rowHeight   = float32(22)
	rowGap      = float32(4)
	titleHeight = float32(22)
	labelWidth  = float32(130)
	panelText   = 14
)

var (
	colPanel      = rl.NewColor(30, 30, 30, 220)
	colPanelEdge  = rl.NewColor(80, 80, 80, 255)
	colWidget     = rl.NewColor(60, 60, 60, 255)
	colWidgetHot  = rl.NewColor(90, 90, 90, 255)
	colWidgetFill = rl.NewColor(120, 160, 220, 255)
)

// Input is the mouse state a panel reacts to in one frame.
type Input struct {
	Mouse   rl.Vector2
	Pressed bool
	Down    bool
}

func readInput() Input {
	return Input{
		Mouse:   rl.GetMousePosition(),
		Pressed: rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:    rl.IsMouseButtonDown(rl.MouseLeftButton),
	}
}

// sliderValue maps a mouse x inside r onto [lo, hi].
func sliderValue(x float32, r rl.Rectangle, lo, hi float32) float32 {
	if r.Width <= 0 {
		return lo
	}
	t := (x - r.X) / r.Width
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + t*(hi-lo)
}

// sliderFill is the filled width for v within [lo, hi].
func sliderFill(v float32, r rl.Rectangle, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * r.Width
}

// Panel is a small immediate-mode window. Widgets are declared every frame
// between Begin and End; the only state kept across frames is which slider
// is being dragged.
type Panel struct {
	Title string
	X, Y  float32
	Width float32

	text   func(text string, x, y, size int, color rl.Color)
	in     Input
	cursor float32
	active string
	ops    []func()
}

func NewPanel(title string, x, y, width float32, text func(string, int, int, int, rl.Color)) *Panel {
	return &Panel{Title: title, X: x, Y: y, Width: width, text: text}
}

func (p *Panel) Begin(in Input) {
	p.in = in
	p.cursor = p.Y + titleHeight + panelPad
	p.ops = p.ops[:0]
	if !in.Down {
		p.active = ""
	}
}

// Height is the panel's height after the widgets declared so far.
func (p *Panel) Height() float32 {
	return p.cursor - p.Y + panelPad - rowGap
}

// Bottom is where a panel stacked below this one may start.
func (p *Panel) Bottom() float32 {
	return p.Y + p.Height() + panelPad
}

func (p *Panel) row() rl.Rectangle {
	r := rl.NewRectangle(p.X+panelPad, p.cursor, p.Width-2*panelPad, rowHeight)
	p.cursor += rowHeight + rowGap
	return r
}

func (p *Panel) hot(r rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(p.in.Mouse, r)
}

func (p *Panel) label(r rl.Rectangle, s string) rl.Rectangle {
	p.ops = append(p.ops, func() {
		p.text(s, int(r.X), int(r.Y+4), panelText, ColText)
	})
	return rl.NewRectangle(r.X+labelWidth, r.Y, r.Width-labelWidth, r.Height)
}

func (p *Panel) slider(id string, r rl.Rectangle, v *float32, lo, hi float32) bool {
	if p.in.Pressed && p.hot(r) {
		p.active = id
	}
	changed := false
	if p.active == id && p.in.Down {
		nv := sliderValue(p.in.Mouse.X, r, lo, hi)
		changed = nv != *v
		*v = nv
	}

	val, fill, hot := *v, sliderFill(*v, r, lo, hi), p.hot(r) || p.active == id
	p.ops = append(p.ops, func() {
		bg := colWidget
		if hot {
			bg = colWidgetHot
		}
		rl.DrawRectangleRec(r, bg)
		rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, fill, r.Height), colWidgetFill)
		p.text(fmt.Sprintf("%.2f", val), int(r.X+4), int(r.Y+4), panelText, ColSelect)
	})
	return changed
}

// Slider drags *v within [lo, hi].
func (p *Panel) Slider(label string, v *float32, lo, hi float32) bool {
	r := p.label(p.row(), label)
	return p.slider(label, r, v, lo, hi)
}

// Slider3 is three sliders sharing one row.
func (p *Panel) Slider3(label string, v *[3]float32, lo, hi float32) bool {
	r := p.label(p.row(), label)
	w := (r.Width - 2*rowGap) / 3
	changed := false
	for i := 0; i < 3; i++ {
		cell := rl.NewRectangle(r.X+float32(i)*(w+rowGap), r.Y, w, r.Height)
		if p.slider(fmt.Sprintf("%s/%d", label, i), cell, &v[i], lo, hi) {
			changed = true
		}
	}
	return changed
}

func (p *Panel) button(r rl.Rectangle, caption string) bool {
	clicked := p.in.Pressed && p.hot(r)
	hot := p.hot(r)
	p.ops = append(p.ops, func() {
		bg := colWidget
		if hot {
			bg = colWidgetHot
		}
		rl.DrawRectangleRec(r, bg)
		rl.DrawRectangleLinesEx(r, 1, colPanelEdge)
		p.text(caption, int(r.X+6), int(r.Y+4), panelText, ColSelect)
	})
	return clicked
}

func (p *Panel) Button(caption string) bool {
	return p.button(p.row(), caption)
}

// Stepper shows *v with - and + buttons that move it by step.
func (p *Panel) Stepper(label string, v *float32, step float32) bool {
	r := p.label(p.row(), label)
	minus := rl.NewRectangle(r.X, r.Y, rowHeight, r.Height)
	plus := rl.NewRectangle(r.X+r.Width-rowHeight, r.Y, rowHeight, r.Height)

	changed := false
	if p.button(minus, "-") {
		*v -= step
		changed = true
	}
	if p.button(plus, "+") {
		*v += step
		changed = true
	}
	val := *v
	p.ops = append(p.ops, func() {
		p.text(fmt.Sprintf("%.2f", val), int(minus.X+rowHeight+8), int(r.Y+4), panelText, ColSelect)
	})
	return changed
}

func (p *Panel) Text(s string) {
	r := p.row()
	p.ops = append(p.ops, func() {
		p.text(s, int(r.X), int(r.Y+4), panelText, ColTextDim)
	})
}

// End draws the frame and every widget declared since Begin.
func (p *Panel) End() {
	h := p.Height()
	frame := rl.NewRectangle(p.X, p.Y, p.Width, h)
	rl.DrawRectangleRec(frame, colPanel)
	rl.DrawRectangleLinesEx(frame, 1, colPanelEdge)
	rl.DrawRectangleRec(rl.NewRectangle(p.X, p.Y, p.Width, titleHeight), colPanelEdge)
	p.text(p.Title, int(p.X+panelPad), int(p.Y+4), panelText, ColSelect)

	for _, op := range p.ops {
		op()
	}
}
