package geodesy

import (
	"fmt"
)

// Coordinates is implemented by the coordinate tuple of each CRS. The type
// itself is the CRS tag, so values of different reference systems cannot be
// mixed in Point, Vector or BoundingBox arithmetic.
//
// Components and WithComponents expose the raw tuple in axis order; slots
// beyond the CRS dimension are zero.
type Coordinates[C any] interface {
	comparable

	// CRS returns the static reference system descriptor.
	CRS() *CRS

	// Components returns the raw values in axis order.
	Components() [3]float64

	// WithComponents builds a tuple from raw values in axis order.
	WithComponents(v [3]float64) C

	// Valid normalizes every angular component into its validity range.
	Valid() C
}

// Coordinate2D is a WGS 84 geographic 2D position (EPSG:4326).
type Coordinate2D struct {
	Latitude  Latitude
	Longitude Longitude
}

// CRS returns Geographic2D.
func (c Coordinate2D) CRS() *CRS { return Geographic2D }

// Components returns (lat, lon, 0).
func (c Coordinate2D) Components() [3]float64 {
	return [3]float64{float64(c.Latitude), float64(c.Longitude), 0}
}

// WithComponents builds a Coordinate2D from (lat, lon).
func (Coordinate2D) WithComponents(v [3]float64) Coordinate2D {
	return Coordinate2D{Latitude: Latitude(v[0]), Longitude: Longitude(v[1])}
}

// Valid normalizes latitude and longitude.
func (c Coordinate2D) Valid() Coordinate2D {
	return Coordinate2D{Latitude: c.Latitude.Valid(), Longitude: c.Longitude.Valid()}
}

// WithAltitude lifts c into three dimensions.
func (c Coordinate2D) WithAltitude(h Altitude) Coordinate3D {
	return Coordinate3D{Latitude: c.Latitude, Longitude: c.Longitude, Altitude: h}
}

// String formats c as "(lat, lon)".
func (c Coordinate2D) String() string {
	return fmt.Sprintf("(%g, %g)", float64(c.Latitude), float64(c.Longitude))
}

// Coordinate3D is a WGS 84 geographic 3D position (EPSG:4979).
type Coordinate3D struct {
	Latitude  Latitude
	Longitude Longitude
	Altitude  Altitude
}

// CRS returns Geographic3D.
func (c Coordinate3D) CRS() *CRS { return Geographic3D }

// Components returns (lat, lon, h).
func (c Coordinate3D) Components() [3]float64 {
	return [3]float64{float64(c.Latitude), float64(c.Longitude), float64(c.Altitude)}
}

// WithComponents builds a Coordinate3D from (lat, lon, h).
func (Coordinate3D) WithComponents(v [3]float64) Coordinate3D {
	return Coordinate3D{Latitude: Latitude(v[0]), Longitude: Longitude(v[1]), Altitude: Altitude(v[2])}
}

// Valid normalizes latitude and longitude; the height is unchanged.
func (c Coordinate3D) Valid() Coordinate3D {
	return Coordinate3D{Latitude: c.Latitude.Valid(), Longitude: c.Longitude.Valid(), Altitude: c.Altitude}
}

// Coordinate2D returns the horizontal projection of c.
func (c Coordinate3D) Coordinate2D() Coordinate2D {
	return Coordinate2D{Latitude: c.Latitude, Longitude: c.Longitude}
}

// String formats c as "(lat, lon, h)".
func (c Coordinate3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", float64(c.Latitude), float64(c.Longitude), float64(c.Altitude))
}

// GeocentricCoordinate is a WGS 84 earth-centred earth-fixed position
// (EPSG:4978).
type GeocentricCoordinate struct {
	X, Y, Z Meters
}

// CRS returns Geocentric.
func (g GeocentricCoordinate) CRS() *CRS { return Geocentric }

// Components returns (X, Y, Z).
func (g GeocentricCoordinate) Components() [3]float64 {
	return [3]float64{float64(g.X), float64(g.Y), float64(g.Z)}
}

// WithComponents builds a GeocentricCoordinate from (X, Y, Z).
func (GeocentricCoordinate) WithComponents(v [3]float64) GeocentricCoordinate {
	return GeocentricCoordinate{X: Meters(v[0]), Y: Meters(v[1]), Z: Meters(v[2])}
}

// Valid returns g; geocentric axes are linear.
func (g GeocentricCoordinate) Valid() GeocentricCoordinate { return g }

// String formats g as "(X, Y, Z)".
func (g GeocentricCoordinate) String() string {
	return fmt.Sprintf("(%g, %g, %g)", float64(g.X), float64(g.Y), float64(g.Z))
}

// crsOf returns the descriptor of coordinate type C.
func crsOf[C Coordinates[C]]() *CRS {
	var zero C
	return zero.CRS()
}

// fromComponents builds a C from raw values.
func fromComponents[C Coordinates[C]](v [3]float64) C {
	var zero C
	return zero.WithComponents(v)
}
