package geodesy

import (
	"github.com/golang/geo/s1"
)

// Degrees is an angle in decimal degrees.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

// Meters is a length in metres.
type Meters float64

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians((s1.Angle(d) * s1.Degree).Radians())
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(s1.Angle(r).Degrees())
}

// Angle returns r as an s1.Angle.
func (r Radians) Angle() s1.Angle {
	return s1.Angle(r)
}

// Unit identifies the unit of measure of a CRS axis.
type Unit int

const (
	// UnitDegree is the decimal degree.
	UnitDegree Unit = iota + 1

	// UnitRadian is the radian.
	UnitRadian

	// UnitMeter is the metre.
	UnitMeter
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitDegree:
		return "degree"
	case UnitRadian:
		return "radian"
	case UnitMeter:
		return "metre"
	default:
		return "unknown"
	}
}

// Symbol returns the unit symbol.
func (u Unit) Symbol() string {
	switch u {
	case UnitDegree:
		return "°"
	case UnitRadian:
		return "rad"
	case UnitMeter:
		return "m"
	default:
		return ""
	}
}
