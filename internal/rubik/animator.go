package rubik

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/lab"
)

const (
	DefaultTargetAngle         = math32.Pi / 2
	DefaultRotationSpeed       = math32.Pi / 2
	DefaultRandomRotationSpeed = math32.Pi * 2
	DefaultScrambleMoves       = 30
	DefaultPulseFrames         = 370

	pulseRate      = 3.0
	pulseAmplitude = 0.009
)

// Animator drives quarter turns of a Cube over successive frames, runs
// random scrambles and plays the pulse once the cube is solved.
type Animator struct {
	TargetAngle         float32
	RotationSpeed       float32
	RandomRotationSpeed float32
	ScrambleMoves       int
	PulseFrames         int

	// OnTurn fires after every completed quarter turn.
	OnTurn func(Move)
	// OnSolved fires when a completed turn leaves the cube solved.
	OnSolved func()

	animating   bool
	randomizing bool
	pulsing     bool

	current     float32
	move        Move
	scrambled   int
	scrambleLen int

	pulseCount int
	pulseTime  float64
	pulseScale float32
	original   [CubieCount]mgl32.Mat4

	rng *rand.Rand
}

func NewAnimator(rng *rand.Rand) *Animator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Animator{
		TargetAngle:         DefaultTargetAngle,
		RotationSpeed:       DefaultRotationSpeed,
		RandomRotationSpeed: DefaultRandomRotationSpeed,
		ScrambleMoves:       DefaultScrambleMoves,
		PulseFrames:         DefaultPulseFrames,
		pulseScale:          1,
		rng:                 rng,
	}
}

func (a *Animator) Animating() bool   { return a.animating }
func (a *Animator) Randomizing() bool { return a.randomizing }
func (a *Animator) Pulsing() bool     { return a.pulsing }
func (a *Animator) Angle() float32    { return a.current }
func (a *Animator) Current() Move     { return a.move }
func (a *Animator) Scrambled() int    { return a.scrambled }
func (a *Animator) PulseScale() float32 {
	return a.pulseScale
}

func (a *Animator) Busy() bool {
	return a.animating || a.randomizing || a.pulsing
}

func (a *Animator) Start(m Move) error {
	if _, err := m.Slice.Layer(); err != nil {
		return err
	}
	if a.Busy() {
		return lab.ErrBusy
	}
	a.move = m
	a.current = 0
	a.animating = true
	return nil
}

// Scramble starts n random moves at the random rotation speed. n <= 0 uses
// ScrambleMoves.
func (a *Animator) Scramble(n int) error {
	if a.Busy() {
		return lab.ErrBusy
	}
	if n <= 0 {
		n = a.ScrambleMoves
	}
	a.randomizing = true
	a.scrambled = 0
	a.scrambleLen = n
	a.current = 0
	a.move = a.randomMove()
	a.animating = true
	return nil
}

func (a *Animator) randomMove() Move {
	return moveFromPool(a.rng.Intn(len(scramblePool)))
}

// Advance moves the running animation forward by dt seconds.
func (a *Animator) Advance(c *Cube, dt float32) error {
	if dt < 0 {
		dt = 0
	}

	if a.pulsing {
		a.advancePulse(c, dt)
		return nil
	}

	if !a.animating {
		return nil
	}

	speed := a.RotationSpeed
	if a.randomizing {
		speed = a.RandomRotationSpeed
	}
	step := speed * dt

	if a.current+step < a.TargetAngle {
		a.current += step
		return c.Rotate(a.move.Slice, a.move.Direction, step, false)
	}

	step = a.TargetAngle - a.current
	a.current = 0
	done := a.move
	if err := c.Rotate(done.Slice, done.Direction, step, true); err != nil {
		a.animating = false
		a.randomizing = false
		return err
	}
	a.animating = false
	if a.OnTurn != nil {
		a.OnTurn(done)
	}

	if a.randomizing {
		a.scrambled++
		if a.scrambled >= a.scrambleLen {
			a.randomizing = false
		} else {
			a.move = a.randomMove()
			a.animating = true
		}
	}

	if c.IsSolved() {
		a.original = c.Transforms
		a.pulsing = true
		a.pulseCount = 0
		a.pulseTime = 0
		if a.OnSolved != nil {
			a.OnSolved()
		}
	}
	return nil
}

func (a *Animator) advancePulse(c *Cube, dt float32) {
	if a.pulseCount < a.PulseFrames {
		a.pulseTime += float64(dt) * pulseRate
		a.pulseScale = 1 + math32.Sin(float32(a.pulseTime))*pulseAmplitude
		scale := mgl32.Scale3D(a.pulseScale, a.pulseScale, a.pulseScale)
		for i := range c.Transforms {
			c.Transforms[i] = scale.Mul4(c.Transforms[i])
		}
		a.pulseCount++
		return
	}

	c.Transforms = a.original
	a.pulsing = false
	a.pulseCount = 0
	a.pulseScale = 1
}

// SkipPulse ends a running pulse and restores the transforms it scaled. A
// scramble that was interrupted by the pulse carries on.
func (a *Animator) SkipPulse(c *Cube) {
	if !a.pulsing {
		return
	}
	c.Transforms = a.original
	a.pulsing = false
	a.pulseCount = 0
	a.pulseScale = 1
}

// Stop abandons any running turn, scramble or pulse. Partial turn angles are
// discarded by rebuilding transforms from the logical state.
func (a *Animator) Stop(c *Cube) {
	a.animating = false
	a.randomizing = false
	a.pulsing = false
	a.current = 0
	a.pulseCount = 0
	a.pulseScale = 1
	for i := range c.Transforms {
		c.Transforms[i] = c.transformFor(i)
	}
}
