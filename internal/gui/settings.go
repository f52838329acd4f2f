package gui

import (
	"fmt"

	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/lab"
)

// setting is one adjustable value on the configure screen.
type setting struct {
	Name string
	Step float64
	Min  float64
	Max  float64
	ptr  *float64
	n    *int
}

func (s setting) Value() float64 {
	if s.n != nil {
		return float64(*s.n)
	}
	return *s.ptr
}

// Nudge moves the value by times steps and keeps it in range.
func (s setting) Nudge(times float64) {
	v := s.Value() + s.Step*times
	if v < s.Min {
		v = s.Min
	}
	if s.Max > s.Min && v > s.Max {
		v = s.Max
	}
	if s.n != nil {
		*s.n = int(v + 0.5)
		return
	}
	*s.ptr = v
}

func (s setting) String() string {
	if s.n != nil {
		return fmt.Sprintf("%-16s %d", s.Name, *s.n)
	}
	return fmt.Sprintf("%-16s %.2f", s.Name, *s.ptr)
}

// settingsFor lists what the configure screen offers for a lab.
func settingsFor(info lab.Info, cfg *config.Config) []setting {
	var out []setting
	if info.Name != "plus" && info.Name != "rubik-static" {
		out = append(out,
			setting{Name: "fov", Step: 5, Min: 30, Max: 120, ptr: &cfg.Camera.FOV},
			setting{Name: "move_speed", Step: 0.1, Min: 0.1, Max: 5, ptr: &cfg.Camera.MoveSpeed},
			setting{Name: "sensitivity", Step: 0.01, Min: 0.01, Max: 1, ptr: &cfg.Camera.Sensitivity},
		)
	}
	if info.Cube {
		out = append(out, setting{Name: "spacing", Step: 0.05, Min: 1, Max: 3, ptr: &cfg.Rubik.Spacing})
	}
	if info.Cube && info.Name != "rubik-static" {
		out = append(out,
			setting{Name: "rotation_speed", Step: 10, Min: 10, Max: 1440, ptr: &cfg.Rubik.RotationSpeed},
			setting{Name: "scramble_speed", Step: 30, Min: 30, Max: 2880, ptr: &cfg.Rubik.ScrambleSpeed},
			setting{Name: "scramble_moves", Step: 1, Min: 1, Max: 200, n: &cfg.Rubik.ScrambleMoves},
		)
	}
	if info.Kind == lab.KindLit {
		out = append(out, setting{Name: "shininess", Step: 5, Min: 5, Max: 100, ptr: &cfg.Lighting.Shininess})
		if info.Name != "dezsa" {
			out = append(out,
				setting{Name: "ambient", Step: 0.05, Min: 0, Max: 1, ptr: &cfg.Lighting.Ambient},
				setting{Name: "diffuse", Step: 0.05, Min: 0, Max: 1, ptr: &cfg.Lighting.Diffuse},
				setting{Name: "specular", Step: 0.05, Min: 0, Max: 1, ptr: &cfg.Lighting.Specular},
			)
		}
	}
	return out
}

// applyPreset copies the scene sections of a preset over cfg. Paths, seed
// and window settings stay as the user gave them.
func applyPreset(cfg *config.Config, labName, name string) bool {
	p := config.GetPreset(labName, name)
	if p == nil {
		return false
	}
	cfg.Camera = p.Camera
	cfg.Rubik = p.Rubik
	cfg.Lighting = p.Lighting
	cfg.Model.Color = p.Model.Color
	return true
}
