package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/rubik"
)

func moves(t *testing.T, tokens ...string) []rubik.Move {
	t.Helper()
	ms, err := rubik.ParseMoves(tokens)
	if err != nil {
		t.Fatalf("parse moves: %v", err)
	}
	return ms
}

func TestRunMoveAndInverse(t *testing.T) {
	e := New(Config{Moves: moves(t, "R-VERTICAL+", "R-VERTICAL-")}, nil)
	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Cube.IsSolved() {
		t.Error("expected solved cube")
	}
	if !res.Session.Solved {
		t.Error("expected session marked solved")
	}
	if len(res.Session.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(res.Session.Moves))
	}
	for _, m := range res.Session.Moves {
		if m.Scramble {
			t.Errorf("expected player move, got scramble %s", m.Move)
		}
	}
	if res.Frames < 2 {
		t.Errorf("expected several frames, got %d", res.Frames)
	}
	if len(res.Session.Trace) == 0 {
		t.Error("expected an angle trace")
	}
}

func TestRunSingleTurnLeavesCubeUnsolved(t *testing.T) {
	res, err := New(Config{Moves: moves(t, "FRONT+")}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cube.IsSolved() || res.Session.Solved {
		t.Error("expected unsolved cube after one turn")
	}
}

func TestScrambleIsSeeded(t *testing.T) {
	run := func(seed int64) []string {
		res, err := New(Config{Seed: seed, Scramble: 6}, nil).Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var out []string
		for _, m := range res.Session.Moves {
			if !m.Scramble {
				t.Errorf("expected scramble move, got %s", m.Move)
			}
			out = append(out, m.Move)
		}
		return out
	}

	a, b := run(42), run(42)
	if len(a) != 6 {
		t.Fatalf("expected 6 moves, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("move %d: expected %s, got %s", i, a[i], b[i])
		}
	}
}

func TestScrambleRecordsEveryMoveAcrossSeeds(t *testing.T) {
	const n = 30
	for seed := int64(1); seed <= 300; seed++ {
		res, err := New(Config{Seed: seed, Scramble: n}, nil).Run(context.Background())
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(res.Session.Moves) != n {
			t.Errorf("seed %d: expected %d moves, got %d", seed, n, len(res.Session.Moves))
		}
	}
}

func TestScrambleUsesScrambleSpeed(t *testing.T) {
	app := config.DefaultConfig()
	slow, err := New(Config{Moves: moves(t, "FRONT+")}, app).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fast, err := New(Config{Scramble: 1}, app).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fast.Frames >= slow.Frames {
		t.Errorf("expected scramble turn faster than %d frames, got %d", slow.Frames, fast.Frames)
	}
}

func TestRunErrors(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		cfg  Config
		want error
	}{
		{"canceled", canceled, Config{Moves: moves(t, "BACK+")}, context.Canceled},
		{"frame limit", context.Background(), Config{Moves: moves(t, "BACK+"), MaxFrames: 1}, ErrNotFinished},
		{"bad slice", context.Background(), Config{Moves: []rubik.Move{{Slice: "DIAGONAL"}}}, lab.ErrUnknownSlice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil).Run(tt.ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPulsePlaysWhenAsked(t *testing.T) {
	cfg := Config{Moves: moves(t, "T-HORIZONTAL+", "T-HORIZONTAL-")}
	plain, err := New(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Pulse = true
	pulsed, err := New(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pulsed.Frames <= plain.Frames {
		t.Errorf("expected pulse frames beyond %d, got %d", plain.Frames, pulsed.Frames)
	}
	if !pulsed.Cube.IsSolved() {
		t.Error("expected solved cube after pulse")
	}
}

func TestEnsembleMatchesSingleRuns(t *testing.T) {
	base := Config{Scramble: 4}
	ens := NewEnsemble(base, nil, 5, 100)
	ens.Workers = 2

	results, err := ens.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	for i, res := range results {
		want := base
		want.Seed = 100 + int64(i)
		single, err := New(want, nil).Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Session.Seed != want.Seed {
			t.Errorf("run %d: expected seed %d, got %d", i, want.Seed, res.Session.Seed)
		}
		for j := range single.Session.Moves {
			if res.Session.Moves[j].Move != single.Session.Moves[j].Move {
				t.Errorf("run %d move %d: expected %s, got %s", i, j, single.Session.Moves[j].Move, res.Session.Moves[j].Move)
			}
		}
	}
}

func TestEnsembleEmpty(t *testing.T) {
	results, err := NewEnsemble(Config{}, nil, 0, 1).Run(context.Background())
	if err != nil || results != nil {
		t.Errorf("expected nothing, got %v, %v", results, err)
	}
}
