package geodesy

import (
	"math"
)

// Latitude is the geodetic latitude in degrees. Values outside ±90° are
// allowed transiently; Valid normalizes them.
type Latitude float64

// Longitude is the geodetic longitude in degrees. Values outside ±180° are
// allowed transiently; Valid normalizes them.
type Longitude float64

// Altitude is the ellipsoidal height in metres.
type Altitude float64

// Valid wraps l into [-90, 90].
func (l Latitude) Valid() Latitude {
	return Latitude(wrapAngle(float64(l), 90))
}

// Positive shifts negative values by a full rotation (180°).
func (l Latitude) Positive() Latitude {
	return Latitude(positiveAngle(float64(l), 90))
}

// Degrees returns l as a unit-tagged value.
func (l Latitude) Degrees() Degrees { return Degrees(l) }

// Radians converts l to radians.
func (l Latitude) Radians() Radians { return Degrees(l).Radians() }

// Valid wraps l into [-180, 180].
func (l Longitude) Valid() Longitude {
	return Longitude(wrapAngle(float64(l), 180))
}

// Positive shifts negative values by a full rotation (360°), mapping
// [-180, 180] onto [0, 360].
func (l Longitude) Positive() Longitude {
	return Longitude(positiveAngle(float64(l), 180))
}

// Degrees returns l as a unit-tagged value.
func (l Longitude) Degrees() Degrees { return Degrees(l) }

// Radians converts l to radians.
func (l Longitude) Radians() Radians { return Degrees(l).Radians() }

// Valid returns a. Linear axes have no range restriction.
func (a Altitude) Valid() Altitude { return a }

// Meters returns a as a unit-tagged value.
func (a Altitude) Meters() Meters { return Meters(a) }

// Valid returns m. Linear axes have no range restriction.
func (m Meters) Valid() Meters { return m }

// wrapAngle reduces x modulo a full rotation (2·half) into [-half, half].
func wrapAngle(x, half float64) float64 {
	full := 2 * half
	r := math.Mod(x, full)
	if math.Abs(r) > half {
		if r > 0 {
			r -= full
		} else {
			r += full
		}
	}
	return r
}

func positiveAngle(x, half float64) float64 {
	if x < 0 {
		return x + 2*half
	}
	return x
}
