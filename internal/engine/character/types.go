// Package character moves the hero across the terrain.
package character

// TerrainQuery provides terrain information for hero movement.
type TerrainQuery interface {
	// Altitude returns the terrain height at the given world position.
	Altitude(x, z float64) float64
	// Size returns the number of grid samples along x and z.
	Size() (width, depth int)
}

// Settings tunes hero movement.
type Settings struct {
	StepLength float64 // World units per step
	TurnAngle  float64 // Degrees per turn
	Size       float64 // Height of the hero's origin above the ground
}

// Default hero settings.
const (
	DefaultStepLength = 0.4
	DefaultTurnAngle  = 5.0
	DefaultSize       = 0.1
)

// DefaultSettings returns the standard hero movement settings.
func DefaultSettings() Settings {
	return Settings{
		StepLength: DefaultStepLength,
		TurnAngle:  DefaultTurnAngle,
		Size:       DefaultSize,
	}
}
