package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/lighting"
)

// plusScene draws the flat polygon straight into clip space.
type plusScene struct {
	env  *Env
	prog *Program
	mesh *GPUMesh
}

func (s *plusScene) Load() error {
	prog, err := LoadProgram("unlit", lighting.MatrixUniforms)
	if err != nil {
		return err
	}
	mesh, err := Upload(geometry.Plus())
	if err != nil {
		prog.Unload()
		return err
	}
	s.prog, s.mesh = prog, mesh
	s.env.Log.Info("lab loaded", "lab", "plus", "triangles", mesh.Triangles)
	return nil
}

func (s *plusScene) Update(float32) {}

func (s *plusScene) Draw() {
	id := mgl32.Ident4()
	s.prog.SetCamera(id, id)

	// Strip winding alternates, so both sides must be drawn.
	rl.DisableBackfaceCulling()
	s.prog.Draw(s.mesh, id)
	rl.EnableBackfaceCulling()
}

func (s *plusScene) Unload() {
	s.mesh.Unload()
	s.prog.Unload()
}
