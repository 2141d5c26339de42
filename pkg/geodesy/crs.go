package geodesy

import (
	"fmt"

	"github.com/beetlebugorg/geodesy/internal/ellipsoid"
)

// CRSID identifies a coordinate reference system by its registry code.
// It is documentation only: CRS selection happens at compile time through
// the coordinate type.
type CRSID string

const (
	// IDGeographic2D is WGS 84 geographic 2D (latitude, longitude).
	IDGeographic2D CRSID = "EPSG:4326"

	// IDGeographic3D is WGS 84 geographic 3D (latitude, longitude, height).
	IDGeographic3D CRSID = "EPSG:4979"

	// IDGeocentric is WGS 84 geocentric (X, Y, Z).
	IDGeocentric CRSID = "EPSG:4978"
)

// CRSKind classifies a coordinate reference system.
type CRSKind int

const (
	// KindGeographic2D has angular latitude and longitude axes.
	KindGeographic2D CRSKind = iota + 1

	// KindGeographic3D adds an ellipsoidal height axis.
	KindGeographic3D

	// KindGeocentric has three linear earth-centred axes.
	KindGeocentric
)

// String returns a human-readable name for the kind.
func (k CRSKind) String() string {
	switch k {
	case KindGeographic2D:
		return "Geographic 2D"
	case KindGeographic3D:
		return "Geographic 3D"
	case KindGeocentric:
		return "Geocentric"
	default:
		return "Unknown"
	}
}

// Axis describes one coordinate axis.
type Axis struct {
	Name         string
	Abbreviation string
	Direction    string
	Unit         Unit

	// HalfRotation is half the wraparound period for angular axes and zero
	// for linear ones.
	HalfRotation float64

	// Wraps marks the axis whose extent is measured across the antimeridian.
	Wraps bool
}

// Angular reports whether values on the axis wrap around.
func (a Axis) Angular() bool {
	return a.HalfRotation > 0
}

// FullRotation returns the wraparound period, or 0 for linear axes.
func (a Axis) FullRotation() float64 {
	return 2 * a.HalfRotation
}

// Normalize applies the axis validity projection to v.
func (a Axis) Normalize(v float64) float64 {
	if !a.Angular() {
		return v
	}
	return wrapAngle(v, a.HalfRotation)
}

// Positive shifts negative values by a full rotation on angular axes.
func (a Axis) Positive(v float64) float64 {
	if !a.Angular() {
		return v
	}
	return positiveAngle(v, a.HalfRotation)
}

var (
	// AxisLatitude is the geodetic latitude axis.
	AxisLatitude = Axis{Name: "Geodetic latitude", Abbreviation: "Lat", Direction: "north", Unit: UnitDegree, HalfRotation: 90}

	// AxisLongitude is the geodetic longitude axis.
	AxisLongitude = Axis{Name: "Geodetic longitude", Abbreviation: "Lon", Direction: "east", Unit: UnitDegree, HalfRotation: 180, Wraps: true}

	// AxisEllipsoidalHeight is the height above the ellipsoid.
	AxisEllipsoidalHeight = Axis{Name: "Ellipsoidal height", Abbreviation: "h", Direction: "up", Unit: UnitMeter}

	// AxisGeocentricX points from the earth centre to (0°, 0°).
	AxisGeocentricX = Axis{Name: "Geocentric X", Abbreviation: "X", Direction: "geocentricX", Unit: UnitMeter}

	// AxisGeocentricY points from the earth centre to (0°, 90°E).
	AxisGeocentricY = Axis{Name: "Geocentric Y", Abbreviation: "Y", Direction: "geocentricY", Unit: UnitMeter}

	// AxisGeocentricZ points from the earth centre to the north pole.
	AxisGeocentricZ = Axis{Name: "Geocentric Z", Abbreviation: "Z", Direction: "geocentricZ", Unit: UnitMeter}
)

// Ellipsoid is a reference ellipsoid.
type Ellipsoid struct {
	Name              string  `yaml:"name"`
	SemiMajorAxis     Meters  `yaml:"semi_major_axis"`
	InverseFlattening float64 `yaml:"inverse_flattening"`
}

var (
	// WGS84 is the World Geodetic System 1984 ellipsoid.
	WGS84 = Ellipsoid{Name: "WGS 84", SemiMajorAxis: 6378137, InverseFlattening: 298.257223563}

	// GRS80 is the Geodetic Reference System 1980 ellipsoid.
	GRS80 = Ellipsoid{Name: "GRS 1980", SemiMajorAxis: 6378137, InverseFlattening: 298.257222101}
)

// Flattening returns f = 1 / InverseFlattening.
func (e Ellipsoid) Flattening() float64 {
	return 1 / e.InverseFlattening
}

// SemiMinorAxis returns b = a(1 − f).
func (e Ellipsoid) SemiMinorAxis() Meters {
	return Meters(e.params().B())
}

// EccentricitySquared returns e² = f(2 − f).
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.params().E2()
}

// SecondEccentricitySquared returns e²/(1 − e²).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	return e.params().EPrime2()
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical
// at latitude lat.
func (e Ellipsoid) PrimeVerticalRadius(lat Radians) Meters {
	return Meters(e.params().PrimeVerticalRadius(float64(lat)))
}

func (e Ellipsoid) params() ellipsoid.Params {
	return ellipsoid.Params{A: float64(e.SemiMajorAxis), F: e.Flattening()}
}

// CRS is the static description of a coordinate reference system. Component
// order of the matching coordinate type follows Axes.
type CRS struct {
	ID        CRSID
	Name      string
	Kind      CRSKind
	Axes      []Axis
	Datum     string
	Ellipsoid Ellipsoid
}

// Dimension returns the number of axes.
func (c *CRS) Dimension() int {
	return len(c.Axes)
}

// String returns the identifier and name.
func (c *CRS) String() string {
	return fmt.Sprintf("%s (%s)", c.ID, c.Name)
}

var (
	// Geographic2D describes Coordinate2D.
	Geographic2D = &CRS{
		ID:        IDGeographic2D,
		Name:      "WGS 84",
		Kind:      KindGeographic2D,
		Axes:      []Axis{AxisLatitude, AxisLongitude},
		Datum:     "World Geodetic System 1984",
		Ellipsoid: WGS84,
	}

	// Geographic3D describes Coordinate3D.
	Geographic3D = &CRS{
		ID:        IDGeographic3D,
		Name:      "WGS 84",
		Kind:      KindGeographic3D,
		Axes:      []Axis{AxisLatitude, AxisLongitude, AxisEllipsoidalHeight},
		Datum:     "World Geodetic System 1984",
		Ellipsoid: WGS84,
	}

	// Geocentric describes GeocentricCoordinate.
	Geocentric = &CRS{
		ID:        IDGeocentric,
		Name:      "WGS 84",
		Kind:      KindGeocentric,
		Axes:      []Axis{AxisGeocentricX, AxisGeocentricY, AxisGeocentricZ},
		Datum:     "World Geodetic System 1984",
		Ellipsoid: WGS84,
	}
)
