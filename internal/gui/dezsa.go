package gui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/lighting"
)

// ringOffset is how far the smooth ring sits from the boxed one.
const ringOffset = float32(3)

// dezsaScene shows two fenced rings lit from the camera: one of boxes with
// hard edges, one of bent quads that shades smoothly.
type dezsaScene struct {
	env *Env

	prog   *Program
	board  *GPUMesh
	quad   *GPUMesh
	boards []mgl32.Mat4
	quads  []mgl32.Mat4

	cam   *camera.Free
	proj  camera.Projection
	light lighting.Params
	panel *Panel
}

func (s *dezsaScene) Load() error {
	cfg := s.env.Config

	prog, err := LoadProgram("phong", lighting.MatrixUniforms, lighting.LitUniforms)
	if err != nil {
		return err
	}
	meshes, err := UploadAll(geometry.Board(), geometry.BentQuad())
	if err != nil {
		prog.Unload()
		return err
	}
	s.prog = prog
	s.board, s.quad = meshes[0], meshes[1]

	ring := geometry.RingTransforms(geometry.FenceCount, geometry.FenceWidth)
	s.boards = ring
	s.quads = geometry.Offset(ring, ringOffset, 0, 0)

	s.cam = newFreeCamera(cfg, mgl32.Vec3{0, 0, 10})
	s.proj = cfg.Projection()
	s.light = cfg.LightParams()
	s.panel = NewPanel("Lighting", 10, 40, 400, s.env.Text)

	s.env.Log.Info("lab loaded", "lab", "dezsa", "boards", len(ring), "radius", geometry.RingRadius(geometry.FenceCount, geometry.FenceWidth))
	return nil
}

func (s *dezsaScene) Update(float32) {
	applyCameraKeys(s.cam)
	s.light.LightPos = s.cam.Position
	s.light.ViewPos = s.cam.Position
}

func (s *dezsaScene) Draw() {
	beginDepth(s.cam.Eye())
	s.prog.SetCamera(s.cam.View(), s.proj.Matrix())
	s.prog.SetLighting(s.light)
	for _, m := range s.boards {
		s.prog.Draw(s.board, m)
	}
	for _, m := range s.quads {
		s.prog.Draw(s.quad, m)
	}
	endDepth()

	s.panel.Begin(readInput())
	s.panel.Slider("Shininess", &s.light.Shininess, lighting.MinShininess, lighting.MaxShininess)
	s.panel.Text("light follows the camera")
	s.panel.End()
	s.light.Clamp()
}

func (s *dezsaScene) Status() []string {
	p := s.cam.Position
	return []string{
		fmt.Sprintf("camera: %.1f %.1f %.1f", p[0], p[1], p[2]),
		fmt.Sprintf("shininess: %.0f", s.light.Shininess),
	}
}

func (s *dezsaScene) Unload() {
	s.board.Unload()
	s.quad.Unload()
	s.prog.Unload()
}
