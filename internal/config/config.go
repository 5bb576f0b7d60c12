// Package config handles landscape configuration loading and management.
package config

import "time"

// Config holds all landscape settings.
type Config struct {
	Level      LevelConfig      `yaml:"level"`
	Road       RoadConfig       `yaml:"road"`
	Hero       HeroConfig       `yaml:"hero"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LevelConfig selects the level to load.
type LevelConfig struct {
	Path string `yaml:"path"` // .json, .yaml or .toml
}

// RoadConfig holds road ribbon sampling settings.
type RoadConfig struct {
	SamplesPerSegment  int     `yaml:"samples_per_segment"`
	TexturesPerSegment float64 `yaml:"textures_per_segment"`
	SurfaceOffset      float64 `yaml:"surface_offset"`
}

// HeroConfig holds hero movement settings.
type HeroConfig struct {
	StepLength float64 `yaml:"step_length"`
	TurnAngle  float64 `yaml:"turn_angle"` // Degrees
	Size       float64 `yaml:"size"`
}

// CameraConfig holds follow camera settings.
type CameraConfig struct {
	Offset   [3]float64 `yaml:"offset"`
	Rotation [3]float64 `yaml:"rotation"` // Degrees
	FovY     float64    `yaml:"fov_y"`    // Degrees
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Aspect   float64    `yaml:"aspect"`
}

// SimulationConfig holds tick loop settings.
type SimulationConfig struct {
	TickRate int    `yaml:"tick_rate"` // Ticks per second
	Realtime bool   `yaml:"realtime"`  // Pace ticks with a timer instead of running flat out
	Script   string `yaml:"script"`    // Commands, one per tick
	Night    bool   `yaml:"night"`     // Start in night mode
	Watch    bool   `yaml:"watch"`     // Rebuild the world when the level file changes (realtime only)
}

// ExportConfig holds output paths. Empty paths skip the export.
type ExportConfig struct {
	OBJPath     string `yaml:"obj_path"`
	PreviewPath string `yaml:"preview_path"`
	PreviewSize int    `yaml:"preview_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// TickInterval returns the time between ticks.
func (s SimulationConfig) TickInterval() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Level: LevelConfig{
			Path: "level.json",
		},
		Road: RoadConfig{
			SamplesPerSegment:  64,
			TexturesPerSegment: 16,
			SurfaceOffset:      0.001,
		},
		Hero: HeroConfig{
			StepLength: 0.4,
			TurnAngle:  5,
			Size:       0.1,
		},
		Camera: CameraConfig{
			Offset:   [3]float64{0, 0.5, -2},
			Rotation: [3]float64{0, 180, 0},
			FovY:     60,
			Near:     0.5,
			Far:      20,
			Aspect:   800.0 / 600.0,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Realtime: false,
			Script:   "",
			Night:    false,
		},
		Export: ExportConfig{
			OBJPath:     "",
			PreviewPath: "",
			PreviewSize: 256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
