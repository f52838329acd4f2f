package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultFPS    = 60
	DefaultTitle  = "gfxlab"

	DefaultFOV         = 90.0
	DefaultNear        = 0.1
	DefaultFar         = 100.0
	DefaultSensitivity = 0.05
	DefaultMoveSpeed   = 0.5

	DefaultSpacing       = 1.1
	DefaultRotationSpeed = 90.0
	DefaultScrambleSpeed = 360.0
	DefaultScrambleMoves = 30
	DefaultPulseFrames   = 370

	DefaultShininess = 50.0
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.3
	DefaultSpecular  = 0.6

	DefaultLab     = "rubik-lit"
	DefaultDataDir = ".gfxlab"
	DefaultLogFile = ".gfxlab/gfxlab.log"
)

type Config struct {
	Lab      string         `yaml:"lab"`
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Rubik    RubikConfig    `yaml:"rubik"`
	Lighting LightingConfig `yaml:"lighting"`
	Model    ModelConfig    `yaml:"model"`
	Seed     int64          `yaml:"seed"`
	DataDir  string         `yaml:"data_dir"`
	LogFile  string         `yaml:"log_file"`
	LogLevel string         `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// CameraConfig angles are in degrees.
type CameraConfig struct {
	FOV         float64 `yaml:"fov"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Sensitivity float64 `yaml:"sensitivity"`
	MoveSpeed   float64 `yaml:"move_speed"`
}

// RubikConfig speeds are in degrees per second.
type RubikConfig struct {
	Spacing       float64 `yaml:"spacing"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	ScrambleSpeed float64 `yaml:"scramble_speed"`
	ScrambleMoves int     `yaml:"scramble_moves"`
	PulseFrames   int     `yaml:"pulse_frames"`
}

type LightingConfig struct {
	Color     [3]float64 `yaml:"color"`
	Position  [3]float64 `yaml:"position"`
	Shininess float64    `yaml:"shininess"`
	Ambient   float64    `yaml:"ambient"`
	Diffuse   float64    `yaml:"diffuse"`
	Specular  float64    `yaml:"specular"`
}

// ModelConfig selects the OBJ file of the car lab. An empty path means the
// embedded model.
type ModelConfig struct {
	Path  string     `yaml:"path"`
	Color [3]float64 `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Lab: DefaultLab,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Title:  DefaultTitle,
		},
		Camera: CameraConfig{
			FOV:         DefaultFOV,
			Near:        DefaultNear,
			Far:         DefaultFar,
			Sensitivity: DefaultSensitivity,
			MoveSpeed:   DefaultMoveSpeed,
		},
		Rubik: RubikConfig{
			Spacing:       DefaultSpacing,
			RotationSpeed: DefaultRotationSpeed,
			ScrambleSpeed: DefaultScrambleSpeed,
			ScrambleMoves: DefaultScrambleMoves,
			PulseFrames:   DefaultPulseFrames,
		},
		Lighting: LightingConfig{
			Color:     [3]float64{1, 1, 1},
			Position:  [3]float64{0, 1.5, 0},
			Shininess: DefaultShininess,
			Ambient:   DefaultAmbient,
			Diffuse:   DefaultDiffuse,
			Specular:  DefaultSpecular,
		},
		Model: ModelConfig{
			Color: [3]float64{0.6, 0.4, 0.2},
		},
		DataDir:  DefaultDataDir,
		LogFile:  DefaultLogFile,
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy; every field is a value type.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
