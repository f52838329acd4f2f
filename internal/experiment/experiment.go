// Package experiment drives the cube animator without a window: a seeded
// scramble and a list of moves are played frame by frame and recorded the
// same way the interactive labs record them.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/rubik"
	"github.com/san-kum/gfxlab/internal/storage"
)

const (
	DefaultDt        = float32(1.0 / 60)
	DefaultMaxFrames = 1 << 20
)

var ErrNotFinished = errors.New("experiment: frame limit reached before the moves finished")

type Config struct {
	Lab      string
	Seed     int64
	Scramble int
	Moves    []rubik.Move
	// Dt is the simulated frame time. Zero uses DefaultDt.
	Dt        float32
	MaxFrames int
	// Pulse lets a solve play its pulse before the run ends.
	Pulse bool
}

type Result struct {
	Cube    *rubik.Cube
	Session *storage.Session
	Frames  int
}

type Experiment struct {
	cfg  Config
	cube *rubik.Cube
	anim *rubik.Animator
	rec  *storage.Recorder
}

// New builds the cube and animator from app settings.
func New(cfg Config, app *config.Config) *Experiment {
	if app == nil {
		app = config.DefaultConfig()
	}
	if cfg.Dt <= 0 {
		cfg.Dt = DefaultDt
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}
	if cfg.Lab == "" {
		cfg.Lab = "headless"
	}

	e := &Experiment{
		cfg:  cfg,
		cube: rubik.NewCube(app.Spacing()),
		anim: rubik.NewAnimator(rand.New(rand.NewSource(cfg.Seed))),
		rec:  storage.NewRecorder(cfg.Lab, cfg.Seed),
	}
	app.ConfigureAnimator(e.anim)
	e.anim.OnTurn = func(m rubik.Move) {
		e.rec.Turn(m.String(), e.anim.Randomizing())
	}
	return e
}

// Run plays the scramble, then each move in order.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	frames := 0
	if e.cfg.Scramble > 0 {
		if err := e.anim.Scramble(e.cfg.Scramble); err != nil {
			return nil, err
		}
		if err := e.drain(ctx, &frames); err != nil {
			return e.result(frames), err
		}
	}

	for i, m := range e.cfg.Moves {
		if err := e.anim.Start(m); err != nil {
			return e.result(frames), fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		if err := e.drain(ctx, &frames); err != nil {
			return e.result(frames), err
		}
	}

	e.rec.SetSolved(e.cube.IsSolved())
	return e.result(frames), nil
}

// drain steps frames until the animator is idle.
func (e *Experiment) drain(ctx context.Context, frames *int) error {
	for e.busy() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if *frames >= e.cfg.MaxFrames {
			return ErrNotFinished
		}

		if err := e.anim.Advance(e.cube, e.cfg.Dt); err != nil {
			return err
		}
		if e.anim.Animating() {
			e.rec.Tick(float64(e.cfg.Dt), float64(e.anim.Angle()))
		}
		*frames++
	}
	return nil
}

func (e *Experiment) busy() bool {
	if e.cfg.Pulse {
		return e.anim.Busy()
	}
	e.anim.SkipPulse(e.cube)
	return e.anim.Animating() || e.anim.Randomizing()
}

func (e *Experiment) result(frames int) *Result {
	return &Result{Cube: e.cube, Session: e.rec.Session(), Frames: frames}
}
