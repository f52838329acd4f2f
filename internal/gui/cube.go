package gui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/keymap"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/lighting"
	"github.com/san-kum/gfxlab/internal/rubik"
	"github.com/san-kum/gfxlab/internal/storage"
)

type cubeOptions struct {
	lit    bool
	free   bool
	turns  bool
	panels bool
}

// sliceButtons lists the rotate panels: one per axis, Forward and Backward
// for each of its three slices.
var sliceButtons = []struct {
	title  string
	slices []rubik.Slice
	names  []string
}{
	{"Rotate: X", []rubik.Slice{rubik.RightVertical, rubik.MiddleVertical, rubik.LeftVertical}, []string{"RIGHT", "MIDDLE", "LEFT"}},
	{"Rotate: Y", []rubik.Slice{rubik.TopHorizontal, rubik.MiddleHorizontal, rubik.BottomHorizontal}, []string{"TOP", "MIDDLE", "BOTTOM"}},
	{"Rotate: Z", []rubik.Slice{rubik.Front, rubik.Middle, rubik.Back}, []string{"FRONT", "MIDDLE", "BACK"}},
}

type cubeScene struct {
	name string
	env  *Env
	opts cubeOptions

	prog   *Program
	meshes []*GPUMesh
	lamp   *marker

	cube *rubik.Cube
	anim *rubik.Animator
	rec  *storage.Recorder

	view  camera.Viewer
	free  *camera.Free
	proj  camera.Projection
	light lighting.Params

	lightPanel  *Panel
	posPanel    *Panel
	turnPanels  []*Panel
	randomPanel *Panel
}

func newCubeScene(name string, env *Env, opts cubeOptions) *cubeScene {
	return &cubeScene{name: name, env: env, opts: opts}
}

// cubieMesh builds the mesh of the cubie whose home is h.
func cubieMesh(h [3]int) *geometry.Mesh {
	var colors [6]geometry.RGBA
	for f, c := range rubik.FaceColors(h) {
		rgb := c.RGB()
		colors[f] = geometry.Opaque(rgb[0], rgb[1], rgb[2])
	}
	return geometry.Cubie(colors)
}

func (s *cubeScene) Load() error {
	cfg := s.env.Config

	var err error
	if s.opts.lit {
		s.prog, err = LoadProgram("phong", lighting.MatrixUniforms, lighting.LitUniforms)
	} else {
		s.prog, err = LoadProgram("unlit", lighting.MatrixUniforms)
	}
	if err != nil {
		return err
	}

	s.cube = rubik.NewCube(cfg.Spacing())
	meshes := make([]*geometry.Mesh, rubik.CubieCount)
	for i, h := range s.cube.Home {
		meshes[i] = cubieMesh(h)
	}
	if s.meshes, err = UploadAll(meshes...); err != nil {
		s.prog.Unload()
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.anim = rubik.NewAnimator(rand.New(rand.NewSource(seed)))
	cfg.ConfigureAnimator(s.anim)
	s.rec = storage.NewRecorder(s.name, seed)
	s.anim.OnTurn = func(m rubik.Move) {
		s.rec.Turn(m.String(), s.anim.Randomizing())
		s.env.Log.Debug("turn", "lab", s.name, "move", m.String())
	}
	s.anim.OnSolved = func() {
		s.rec.SetSolved(true)
		s.env.Log.Info("solved", "lab", s.name)
	}

	s.proj = cfg.Projection()
	if s.opts.free {
		s.free = newFreeCamera(cfg, mgl32.Vec3{0, 0, 10})
		s.view = s.free
	} else {
		s.view = camera.NewStatic()
	}
	s.light = cfg.LightParams()

	if s.opts.lit {
		if s.lamp, err = loadMarker(); err != nil {
			unloadAll(s.meshes)
			s.prog.Unload()
			return err
		}
	}
	if s.opts.panels {
		s.buildPanels()
	}
	s.env.Log.Info("lab loaded", "lab", s.name, "seed", seed)
	return nil
}

func (s *cubeScene) buildPanels() {
	text := s.env.Text
	s.lightPanel = NewPanel("Lighting", 10, 40, 400, text)
	s.posPanel = NewPanel("Light position", 10, 200, 260, text)

	x := float32(s.env.Width) - 200
	y := float32(40)
	for _, sb := range sliceButtons {
		p := NewPanel(sb.title, x, y, 190, text)
		s.turnPanels = append(s.turnPanels, p)
		y += titleHeight + 2*panelPad + 6*(rowHeight+rowGap)
	}
	s.randomPanel = NewPanel("30 RANDOM MOVE!", x, y, 190, text)
}

func (s *cubeScene) start(m rubik.Move) {
	if err := s.anim.Start(m); err != nil {
		s.logRejected("turn", err)
	}
}

func (s *cubeScene) scramble() {
	if err := s.anim.Scramble(0); err != nil {
		s.logRejected("scramble", err)
		return
	}
	s.env.Log.Info("randomized", "lab", s.name, "moves", s.anim.ScrambleMoves)
}

func (s *cubeScene) logRejected(what string, err error) {
	if errors.Is(err, lab.ErrBusy) {
		s.env.Log.Debug(what+" ignored", "reason", err)
		return
	}
	s.env.Log.Warn(what+" failed", "err", err)
}

func (s *cubeScene) Update(dt float32) {
	if s.free != nil {
		applyCameraKeys(s.free)
	}
	if s.opts.turns {
		for _, a := range pressedActions(keymap.KindTurn, keymap.KindScramble) {
			if a.Kind == keymap.KindScramble {
				s.scramble()
				continue
			}
			s.start(a.Move)
		}
		if err := s.anim.Advance(s.cube, dt); err != nil {
			s.env.Log.Error("advance", "lab", s.name, "err", err)
		}
		if s.anim.Animating() {
			s.rec.Tick(float64(dt), float64(s.anim.Angle()))
		}
	}
	s.light.ViewPos = s.view.Eye()
}

func (s *cubeScene) Draw() {
	beginDepth(s.view.Eye())
	s.prog.SetCamera(s.view.View(), s.proj.Matrix())
	if s.opts.lit {
		s.prog.SetLighting(s.light)
	}
	for i, m := range s.meshes {
		s.prog.Draw(m, s.cube.Transforms[i])
	}
	if s.lamp != nil {
		s.lamp.Draw(s.view.View(), s.proj.Matrix(), s.light.LightPos)
	}
	endDepth()

	if s.opts.panels {
		s.drawPanels()
	}
}

func (s *cubeScene) drawPanels() {
	in := readInput()

	lp := s.lightPanel
	lp.Begin(in)
	lp.Slider("Shininess", &s.light.Shininess, lighting.MinShininess, lighting.MaxShininess)
	lp.Slider3("Ambient Strength", (*[3]float32)(&s.light.Ambient), lighting.MinStrength, lighting.MaxStrength)
	lp.Slider3("Diffuse Strength", (*[3]float32)(&s.light.Diffuse), lighting.MinStrength, lighting.MaxStrength)
	lp.Slider3("Specular Strength", (*[3]float32)(&s.light.Specular), lighting.MinStrength, lighting.MaxStrength)
	lp.End()
	s.light.Clamp()

	pp := s.posPanel
	pp.Y = lp.Bottom()
	pp.Begin(in)
	pp.Stepper("X", &s.light.LightPos[0], 0.1)
	pp.Stepper("Y", &s.light.LightPos[1], 0.1)
	pp.Stepper("Z", &s.light.LightPos[2], 0.1)
	pp.End()

	for i, sb := range sliceButtons {
		p := s.turnPanels[i]
		p.Begin(in)
		for j, sl := range sb.slices {
			if p.Button("Forward: " + sb.names[j]) {
				s.start(rubik.Move{Slice: sl, Direction: rubik.Forward})
			}
			if p.Button("Backward: " + sb.names[j]) {
				s.start(rubik.Move{Slice: sl, Direction: rubik.Backward})
			}
		}
		p.End()
	}

	rp := s.randomPanel
	rp.Begin(in)
	if rp.Button("RANDOM") {
		s.scramble()
	}
	rp.End()
}

func (s *cubeScene) Status() []string {
	lines := []string{fmt.Sprintf("solved: %v", s.cube.IsSolved())}
	if !s.opts.turns {
		return lines
	}
	lines = append(lines, fmt.Sprintf("moves: %d", len(s.rec.Session().Moves)))
	switch {
	case s.anim.Pulsing():
		lines = append(lines, "pulse")
	case s.anim.Randomizing():
		lines = append(lines, fmt.Sprintf("scramble %d/%d", s.anim.Scrambled(), s.anim.ScrambleMoves))
	case s.anim.Animating():
		lines = append(lines, "turning "+s.anim.Current().String())
	}
	return lines
}

func (s *cubeScene) Unload() {
	if s.opts.turns && s.env.Store != nil && !s.rec.Empty() {
		s.rec.SetSolved(s.cube.IsSolved())
		if id, err := s.env.Store.Save(s.rec.Session()); err != nil {
			s.env.Log.Error("save session", "lab", s.name, "err", err)
		} else {
			s.env.Log.Info("session saved", "lab", s.name, "id", id)
		}
	}
	s.lamp.Unload()
	unloadAll(s.meshes)
	s.prog.Unload()
}
