package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestSolveCheckUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfxlab.yaml")
	if err := os.WriteFile(path, []byte("rubik:\n  spacing: 1.5\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	old := configFile
	configFile = path
	t.Cleanup(func() { configFile = old })

	cfg, err := loadConfig(&cobra.Command{}, "rubik")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cube, moves, err := applyMoves(cfg, []string{"FRONT+", "FRONT-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cube.Spacing != 1.5 {
		t.Errorf("expected spacing 1.5 from config, got %f", cube.Spacing)
	}
	if len(moves) != 2 {
		t.Errorf("expected 2 moves, got %d", len(moves))
	}
	if !cube.IsSolved() {
		t.Error("expected solved cube after a move and its inverse")
	}
}

func TestApplyMovesRejectsBadToken(t *testing.T) {
	cfg, err := loadConfig(&cobra.Command{}, "rubik")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := applyMoves(cfg, []string{"SIDEWAYS+"}); err == nil {
		t.Error("expected error for unknown slice")
	}
}
