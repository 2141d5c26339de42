package geodesy

import (
	"github.com/beetlebugorg/geodesy/internal/numeric"
)

// Point is a position in the reference system of C. The zero value is the
// CRS origin.
type Point[C Coordinates[C]] struct {
	coords C
}

// NewPoint wraps c.
func NewPoint[C Coordinates[C]](c C) Point[C] {
	return Point[C]{coords: c}
}

// Point2D returns a geographic 2D point.
func Point2D(lat Latitude, lon Longitude) Point[Coordinate2D] {
	return NewPoint(Coordinate2D{Latitude: lat, Longitude: lon})
}

// Point3D returns a geographic 3D point.
func Point3D(lat Latitude, lon Longitude, h Altitude) Point[Coordinate3D] {
	return NewPoint(Coordinate3D{Latitude: lat, Longitude: lon, Altitude: h})
}

// GeocentricPoint returns a geocentric point.
func GeocentricPoint(x, y, z Meters) Point[GeocentricCoordinate] {
	return NewPoint(GeocentricCoordinate{X: x, Y: y, Z: z})
}

// Coordinates returns the coordinate tuple.
func (p Point[C]) Coordinates() C {
	return p.coords
}

// CRS returns the reference system descriptor.
func (p Point[C]) CRS() *CRS {
	return p.coords.CRS()
}

// Add translates p by v.
func (p Point[C]) Add(v Vector[C]) Point[C] {
	return Point[C]{coords: fromComponents[C](p.vec().Add(v.delta))}
}

// Sub returns the vector from q to p.
func (p Point[C]) Sub(q Point[C]) Vector[C] {
	return Vector[C]{delta: p.vec().Sub(q.vec())}
}

// Valid normalizes the angular components of p.
func (p Point[C]) Valid() Point[C] {
	return Point[C]{coords: p.coords.Valid()}
}

// Equal reports whether p and q have identical components.
func (p Point[C]) Equal(q Point[C]) bool {
	return p.coords == q.coords
}

// BoundingBox returns the zero-size box at p.
func (p Point[C]) BoundingBox() (BoundingBox[C], bool) {
	return BoundingBox[C]{origin: p}, true
}

// Points returns p as a one-element slice.
func (p Point[C]) Points() []Point[C] {
	return []Point[C]{p}
}

// Hash returns the identity hash of p.
func (p Point[C]) Hash() uint64 {
	return hashPoints(kindPoint, []Point[C]{p})
}

func (p Point[C]) vec() numeric.Vec {
	return numeric.Vec(p.coords.Components())
}

func pointFromVec[C Coordinates[C]](v numeric.Vec) Point[C] {
	return Point[C]{coords: fromComponents[C](v)}
}

func vecsOf[C Coordinates[C]](points []Point[C]) []numeric.Vec {
	out := make([]numeric.Vec, len(points))
	for i, p := range points {
		out[i] = p.vec()
	}
	return out
}

func pointsOf[C Coordinates[C]](vs []numeric.Vec) []Point[C] {
	out := make([]Point[C], len(vs))
	for i, v := range vs {
		out[i] = pointFromVec[C](v)
	}
	return out
}
