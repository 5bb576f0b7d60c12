// Package formats reads level descriptions and writes generated geometry.
package formats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Level format errors.
var (
	ErrInvalidLevelSize = errors.New("invalid level size")
	ErrAltitudeCount    = errors.New("altitude count does not match level size")
	ErrSunlightLength   = errors.New("sunlight must have 3 components")
)

// Level describes a terrain, its sun and the objects placed on it.
type Level struct {
	Width     int         `yaml:"width" json:"width" toml:"width"`
	Depth     int         `yaml:"depth" json:"depth" toml:"depth"`
	Sunlight  []float64   `yaml:"sunlight" json:"sunlight" toml:"sunlight"`
	Altitudes []float64   `yaml:"altitudes" json:"altitudes" toml:"altitudes"` // Row-major: z outer, x inner
	Trees     []TreeSpec  `yaml:"trees" json:"trees" toml:"trees"`
	Roads     []RoadSpec  `yaml:"roads" json:"roads" toml:"roads"`
	Enemies   []EnemySpec `yaml:"enemies" json:"enemies" toml:"enemies"`
}

// TreeSpec places a tree. Its height comes from the terrain.
type TreeSpec struct {
	X float64 `yaml:"x" json:"x" toml:"x"`
	Z float64 `yaml:"z" json:"z" toml:"z"`
}

// RoadSpec is a road width and a flat x, z control point sequence.
type RoadSpec struct {
	Width float64   `yaml:"width" json:"width" toml:"width"`
	Spine []float64 `yaml:"spine" json:"spine" toml:"spine"`
}

// EnemySpec places an enemy with a yaw in degrees and a size factor.
type EnemySpec struct {
	X        float64 `yaml:"x" json:"x" toml:"x"`
	Z        float64 `yaml:"z" json:"z" toml:"z"`
	Rotation float64 `yaml:"rotation" json:"rotation" toml:"rotation"`
	Scale    float64 `yaml:"scale" json:"scale" toml:"scale"`
}

// Validate checks the level dimensions against its altitude and sunlight data.
func (l *Level) Validate() error {
	if l.Width < 1 || l.Depth < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidLevelSize, l.Width, l.Depth)
	}
	if want := l.Width * l.Depth; len(l.Altitudes) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrAltitudeCount, len(l.Altitudes), want)
	}
	if len(l.Sunlight) != 3 {
		return fmt.Errorf("%w: got %d", ErrSunlightLength, len(l.Sunlight))
	}
	return nil
}

// AltitudeGrid returns the altitudes as an [x][z] grid.
func (l *Level) AltitudeGrid() [][]float64 {
	grid := make([][]float64, l.Width)
	for x := range grid {
		grid[x] = make([]float64, l.Depth)
		for z := range grid[x] {
			grid[x][z] = l.Altitudes[z*l.Width+x]
		}
	}
	return grid
}

// SunDirection returns the sunlight vector.
func (l *Level) SunDirection() [3]float64 {
	var dir [3]float64
	copy(dir[:], l.Sunlight)
	return dir
}

// ParseLevel parses a YAML level. JSON levels are valid YAML.
func ParseLevel(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}
	return validated(&l)
}

// ParseLevelJSON parses a JSON level.
func ParseLevelJSON(data []byte) (*Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}
	return validated(&l)
}

// ParseLevelTOML parses a TOML level.
func ParseLevelTOML(data []byte) (*Level, error) {
	var l Level
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}
	return validated(&l)
}

// ParseLevelFile parses a level file from disk. The decoder is chosen by
// extension: .json, .toml, anything else is read as YAML.
func ParseLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseLevelJSON(data)
	case ".toml":
		return ParseLevelTOML(data)
	default:
		return ParseLevel(data)
	}
}

func validated(l *Level) (*Level, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
