package config

import "sort"

func preset(lab string, tweak func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Lab = lab
	tweak(cfg)
	return cfg
}

var Presets = map[string]map[string]*Config{
	"rubik": {
		"slow": preset("rubik", func(c *Config) {
			c.Rubik.RotationSpeed = 45
			c.Rubik.ScrambleSpeed = 180
		}),
		"fast": preset("rubik", func(c *Config) {
			c.Rubik.RotationSpeed = 360
			c.Rubik.ScrambleSpeed = 1440
		}),
		"tight": preset("rubik", func(c *Config) {
			c.Rubik.Spacing = 1.0
		}),
		"exploded": preset("rubik", func(c *Config) {
			c.Rubik.Spacing = 1.6
		}),
	},
	"rubik-lit": {
		"glossy": preset("rubik-lit", func(c *Config) {
			c.Lighting.Shininess = 100
			c.Lighting.Specular = 1
			c.Lighting.Diffuse = 0.4
		}),
		"matte": preset("rubik-lit", func(c *Config) {
			c.Lighting.Shininess = 5
			c.Lighting.Specular = 0.1
			c.Lighting.Diffuse = 0.7
		}),
		"dark": preset("rubik-lit", func(c *Config) {
			c.Lighting.Ambient = 0
			c.Lighting.Position = [3]float64{3, 3, 3}
		}),
		"quick-scramble": preset("rubik-lit", func(c *Config) {
			c.Rubik.ScrambleMoves = 10
			c.Rubik.PulseFrames = 120
		}),
	},
	"dezsa": {
		"glossy": preset("dezsa", func(c *Config) {
			c.Lighting.Shininess = 100
		}),
		"matte": preset("dezsa", func(c *Config) {
			c.Lighting.Shininess = 5
		}),
	},
	"car": {
		"red": preset("car", func(c *Config) {
			c.Model.Color = [3]float64{0.8, 0.1, 0.1}
		}),
		"studio": preset("car", func(c *Config) {
			c.Lighting.Position = [3]float64{0, 6, 4}
			c.Lighting.Diffuse = 0.6
		}),
	},
}

// GetPreset returns a copy so callers may override fields freely.
func GetPreset(lab, name string) *Config {
	if presets, ok := Presets[lab]; ok {
		if cfg, ok := presets[name]; ok {
			return cfg.Clone()
		}
	}
	return nil
}

func ListPresets(lab string) []string {
	presets, ok := Presets[lab]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
