package character

import (
	gomath "math"

	"github.com/Faultbox/landscape/pkg/math"
)

// Heading returns the unit direction of travel on the XZ plane for a yaw in
// degrees. X holds the x component and Y the z component.
func Heading(yaw float64) math.Vec2 {
	rad := yaw * gomath.Pi / 180
	return math.Vec2{X: gomath.Sin(rad), Y: gomath.Cos(rad)}
}

// NormalizeYaw wraps an angle in degrees into [0, 360).
func NormalizeYaw(yaw float64) float64 {
	yaw = gomath.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

// SectorSize is the angular size of each compass sector in degrees.
const SectorSize = 45.0

// CompassNames names the eight compass sectors starting at +z and turning
// towards +x.
var CompassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass returns the compass sector (0-7) nearest to a yaw. Sector 0 faces
// +z, sector 2 faces +x.
func Compass(yaw float64) int {
	sector := int((NormalizeYaw(yaw) + SectorSize/2) / SectorSize)
	if sector >= 8 {
		sector = 0
	}
	return sector
}
