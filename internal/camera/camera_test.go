package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func near(a, b mgl32.Vec3) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(float64(a[k]-b[k])) > 1e-4 {
			return false
		}
	}
	return true
}

func TestNewFreeDefaults(t *testing.T) {
	c := NewFree()

	if c.Position != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("expected position (0,0,10), got %v", c.Position)
	}
	right := c.Right()
	if !near(right, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected right (1,0,0), got %v", right)
	}
}

func TestFreeMoves(t *testing.T) {
	tests := []struct {
		name string
		move func(*Free)
		want mgl32.Vec3
	}{
		{"forward", (*Free).MoveForward, mgl32.Vec3{0, 0, 9.5}},
		{"backward", (*Free).MoveBackward, mgl32.Vec3{0, 0, 10.5}},
		{"right", (*Free).MoveRight, mgl32.Vec3{0.5, 0, 10}},
		{"left", (*Free).MoveLeft, mgl32.Vec3{-0.5, 0, 10}},
		{"up", (*Free).MoveUp, mgl32.Vec3{0, 0.5, 10}},
		{"down", (*Free).MoveDown, mgl32.Vec3{0, -0.5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFree()
			tt.move(c)
			if !near(c.Position, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, c.Position)
			}
		})
	}
}

func TestRotateKeepsForwardUnit(t *testing.T) {
	c := NewFree()
	c.Rotate(0, 0)
	if !near(c.Forward, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("zero rotation should keep forward (0,0,-1), got %v", c.Forward)
	}

	c.Rotate(5, 5)
	if !approx(c.Forward.Len(), 1) {
		t.Errorf("forward should stay unit length, got %f", c.Forward.Len())
	}
	if !approx(c.Yaw, -math.Pi/2+0.25) {
		t.Errorf("expected yaw %f, got %f", -math.Pi/2+0.25, c.Yaw)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := NewFree()
	for i := 0; i < 100; i++ {
		c.Rotate(0, 5)
	}
	if !approx(c.Pitch, math.Pi/2-0.1) {
		t.Errorf("expected pitch clamped to %f, got %f", math.Pi/2-0.1, c.Pitch)
	}

	for i := 0; i < 200; i++ {
		c.Rotate(0, -5)
	}
	if !approx(c.Pitch, -(math.Pi/2 - 0.1)) {
		t.Errorf("expected pitch clamped to %f, got %f", -(math.Pi/2 - 0.1), c.Pitch)
	}
}

func TestViewMapsEyeToOrigin(t *testing.T) {
	c := NewFree()
	c.MoveLeft()
	c.Rotate(3, -2)

	eye := c.View().Mul4x1(c.Position.Vec4(1))
	if !near(eye.Vec3(), mgl32.Vec3{}) {
		t.Errorf("view should map the eye to the origin, got %v", eye)
	}

	ahead := c.View().Mul4x1(c.Target().Vec4(1)).Vec3()
	if !approx(ahead.Z(), -1) {
		t.Errorf("target should sit one unit down -z in view space, got %v", ahead)
	}
}

func TestStaticLooksAtOrigin(t *testing.T) {
	c := NewStatic()
	origin := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	dist := float32(math.Sqrt(27))
	if !near(origin, mgl32.Vec3{0, 0, -dist}) {
		t.Errorf("expected origin at (0,0,%f) in view space, got %v", -dist, origin)
	}
}

func TestProjectionFallsBackToSquareAspect(t *testing.T) {
	p := DefaultProjection()
	p.Aspect = 0
	if p.Matrix() != mgl32.Perspective(DefaultFOV, 1, DefaultNear, DefaultFar) {
		t.Error("expected aspect 1 fallback")
	}
}
