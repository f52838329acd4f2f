package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/keymap"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/lighting"
	"github.com/san-kum/gfxlab/internal/storage"
)

// Scene is one running lab. Load and Unload bracket its GPU resources.
type Scene interface {
	Load() error
	Update(dt float32)
	Draw()
	Unload()
}

// statusLines is implemented by scenes with extra HUD text.
type statusLines interface {
	Status() []string
}

// Env is what a scene may use from the application.
type Env struct {
	Config *config.Config
	Log    *slog.Logger
	Store  *storage.Store
	Text   func(text string, x, y, size int, color rl.Color)
	Width  int32
	Height int32
}

func NewScene(name string, env *Env) (Scene, error) {
	switch name {
	case "plus":
		return &plusScene{env: env}, nil
	case "rubik-static":
		return newCubeScene(name, env, cubeOptions{}), nil
	case "rubik":
		return newCubeScene(name, env, cubeOptions{free: true, turns: true}), nil
	case "rubik-lit":
		return newCubeScene(name, env, cubeOptions{lit: true, free: true, turns: true, panels: true}), nil
	case "dezsa":
		return &dezsaScene{env: env}, nil
	case "car":
		return &carScene{env: env}, nil
	}
	return nil, fmt.Errorf("%w: %s", lab.ErrUnknownLab, name)
}

// beginDepth enters raylib's 3D mode so the depth test is on while meshes
// draw. The shaders take their matrices from uniforms, so the camera here
// only has to be valid.
func beginDepth(eye mgl32.Vec3) {
	target := mgl32.Vec3{}
	if eye.Sub(target).Len() < 1e-4 {
		target = eye.Add(mgl32.Vec3{0, 0, -1})
	}
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(eye),
		Target:     toVector3(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       90,
		Projection: rl.CameraPerspective,
	})
}

// applyCameraKeys runs the movement bindings pressed this frame.
func applyCameraKeys(c *camera.Free) {
	for _, a := range pressedActions(keymap.KindCamera) {
		a.ApplyCamera(c)
	}
}

func newFreeCamera(cfg *config.Config, pos mgl32.Vec3) *camera.Free {
	c := camera.NewFree()
	cfg.ConfigureCamera(c)
	c.Position = pos
	return c
}

func endDepth() { rl.EndMode3D() }

// marker draws the light source as a small unlit cube.
type marker struct {
	prog *Program
	mesh *GPUMesh
}

func loadMarker() (*marker, error) {
	prog, err := LoadProgram("unlit", lighting.MatrixUniforms)
	if err != nil {
		return nil, err
	}
	mesh, err := Upload(geometry.Marker())
	if err != nil {
		prog.Unload()
		return nil, err
	}
	return &marker{prog: prog, mesh: mesh}, nil
}

func (m *marker) Draw(view, projection mgl32.Mat4, pos mgl32.Vec3) {
	m.prog.SetCamera(view, projection)
	m.prog.Draw(m.mesh, mgl32.Translate3D(pos[0], pos[1], pos[2]))
}

func (m *marker) Unload() {
	if m == nil {
		return
	}
	m.mesh.Unload()
	m.prog.Unload()
}
