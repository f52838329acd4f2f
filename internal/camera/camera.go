package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultSensitivity = float32(0.05)
	DefaultMoveSpeed   = float32(0.5)
	DefaultFOV         = math32.Pi / 2
	DefaultNear        = float32(0.1)
	DefaultFar         = float32(100)

	pitchLimit = math32.Pi/2 - 0.1
)

// Viewer is anything that yields a view matrix and an eye position.
type Viewer interface {
	View() mgl32.Mat4
	Eye() mgl32.Vec3
}

// Free is a yaw/pitch camera moved in steps along its own axes.
type Free struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Sensitivity float32
	MoveSpeed   float32
}

func NewFree() *Free {
	return &Free{
		Position:    mgl32.Vec3{0, 0, 10},
		Forward:     mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         -math32.Pi / 2,
		Pitch:       0,
		Sensitivity: DefaultSensitivity,
		MoveSpeed:   DefaultMoveSpeed,
	}
}

func (c *Free) Right() mgl32.Vec3 {
	return c.Forward.Cross(c.Up).Normalize()
}

func (c *Free) MoveForward()  { c.Position = c.Position.Add(c.Forward.Mul(c.MoveSpeed)) }
func (c *Free) MoveBackward() { c.Position = c.Position.Sub(c.Forward.Mul(c.MoveSpeed)) }
func (c *Free) MoveRight()    { c.Position = c.Position.Add(c.Right().Mul(c.MoveSpeed)) }
func (c *Free) MoveLeft()     { c.Position = c.Position.Sub(c.Right().Mul(c.MoveSpeed)) }
func (c *Free) MoveUp()       { c.Position = c.Position.Add(c.Up.Mul(c.MoveSpeed)) }
func (c *Free) MoveDown()     { c.Position = c.Position.Sub(c.Up.Mul(c.MoveSpeed)) }

// Rotate turns the camera by scaled yaw and pitch deltas. Pitch stays short
// of straight up or down.
func (c *Free) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw * c.Sensitivity
	c.Pitch += deltaPitch * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -pitchLimit, pitchLimit)

	cy, sy := math32.Cos(c.Yaw), math32.Sin(c.Yaw)
	cp, sp := math32.Cos(c.Pitch), math32.Sin(c.Pitch)
	c.Forward = mgl32.Vec3{cy * cp, sp, sy * cp}.Normalize()
}

func (c *Free) Target() mgl32.Vec3 {
	return c.Position.Add(c.Forward)
}

func (c *Free) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), c.Up)
}

func (c *Free) Eye() mgl32.Vec3 {
	return c.Position
}

// Static looks from a fixed eye at a fixed target.
type Static struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// NewStatic returns the arrangement camera at (3,3,3) looking at the origin.
func NewStatic() *Static {
	return &Static{
		Position: mgl32.Vec3{3, 3, 3},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

func (c *Static) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Static) Eye() mgl32.Vec3 {
	return c.Position
}

type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

func DefaultProjection() Projection {
	return Projection{FOV: DefaultFOV, Aspect: 1024.0 / 768.0, Near: DefaultNear, Far: DefaultFar}
}

func (p Projection) Matrix() mgl32.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(p.FOV, aspect, p.Near, p.Far)
}
