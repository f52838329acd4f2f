package gui

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/lighting"
	"github.com/san-kum/gfxlab/internal/objmesh"
)

// carScene renders a Wavefront model under the phong program.
type carScene struct {
	env *Env

	prog  *Program
	mesh  *GPUMesh
	lamp  *marker
	stats objmesh.Stats

	cam   *camera.Free
	proj  camera.Projection
	light lighting.Params

	lightPanel *Panel
	posPanel   *Panel
}

// loadModel reads path, or the embedded car when path is empty.
func loadModel(path string, color geometry.RGBA) (*geometry.Mesh, error) {
	if path == "" {
		return objmesh.ReadDefault(color)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return objmesh.Read(f, color)
}

func (s *carScene) Load() error {
	cfg := s.env.Config

	m, err := loadModel(cfg.Model.Path, cfg.ModelColor())
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	s.stats = objmesh.Measure(m)

	if s.prog, err = LoadProgram("phong", lighting.MatrixUniforms, lighting.LitUniforms); err != nil {
		return err
	}
	if s.mesh, err = Upload(m); err != nil {
		s.prog.Unload()
		return err
	}
	if s.lamp, err = loadMarker(); err != nil {
		s.mesh.Unload()
		s.prog.Unload()
		return err
	}

	s.cam = newFreeCamera(cfg, mgl32.Vec3{0, 1, 8})
	s.proj = cfg.Projection()
	s.light = cfg.LightParams()
	s.lightPanel = NewPanel("Lighting", 10, 40, 400, s.env.Text)
	s.posPanel = NewPanel("Light position", 10, 200, 260, s.env.Text)

	s.env.Log.Info("lab loaded", "lab", "car", "model", cfg.Model.Path, "stats", s.stats.String())
	return nil
}

func (s *carScene) Update(float32) {
	applyCameraKeys(s.cam)
	s.light.ViewPos = s.cam.Position
}

func (s *carScene) Draw() {
	view, proj := s.cam.View(), s.proj.Matrix()

	beginDepth(s.cam.Eye())
	s.prog.SetCamera(view, proj)
	s.prog.SetLighting(s.light)
	s.prog.Draw(s.mesh, mgl32.Ident4())
	s.lamp.Draw(view, proj, s.light.LightPos)
	endDepth()

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
}

func (s *carScene) Status() []string {
	return []string{s.stats.String()}
}

func (s *carScene) Unload() {
	s.lamp.Unload()
	s.mesh.Unload()
	s.prog.Unload()
}
