package config

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/camera"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/lighting"
	"github.com/san-kum/gfxlab/internal/rubik"
)

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func splat(s float64) mgl32.Vec3 {
	f := float32(s)
	return mgl32.Vec3{f, f, f}
}

func (c *Config) LightParams() lighting.Params {
	p := lighting.Params{
		LightColor: vec3(c.Lighting.Color),
		LightPos:   vec3(c.Lighting.Position),
		Shininess:  float32(c.Lighting.Shininess),
		Ambient:    splat(c.Lighting.Ambient),
		Diffuse:    splat(c.Lighting.Diffuse),
		Specular:   splat(c.Lighting.Specular),
	}
	p.Clamp()
	return p
}

func (c *Config) Projection() camera.Projection {
	aspect := float32(1)
	if c.Window.Height > 0 {
		aspect = float32(c.Window.Width) / float32(c.Window.Height)
	}
	return camera.Projection{
		FOV:    mgl32.DegToRad(float32(c.Camera.FOV)),
		Aspect: aspect,
		Near:   float32(c.Camera.Near),
		Far:    float32(c.Camera.Far),
	}
}

func (c *Config) ConfigureCamera(cam *camera.Free) {
	cam.Sensitivity = float32(c.Camera.Sensitivity)
	cam.MoveSpeed = float32(c.Camera.MoveSpeed)
}

func (c *Config) ConfigureAnimator(a *rubik.Animator) {
	a.RotationSpeed = mgl32.DegToRad(float32(c.Rubik.RotationSpeed))
	a.RandomRotationSpeed = mgl32.DegToRad(float32(c.Rubik.ScrambleSpeed))
	a.ScrambleMoves = c.Rubik.ScrambleMoves
	a.PulseFrames = c.Rubik.PulseFrames
}

func (c *Config) Spacing() float32 {
	if c.Rubik.Spacing <= 0 {
		return rubik.DefaultSpacing
	}
	return float32(c.Rubik.Spacing)
}

func (c *Config) ModelColor() geometry.RGBA {
	col := vec3(c.Model.Color)
	return geometry.Opaque(col[0], col[1], col[2])
}
