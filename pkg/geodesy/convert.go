package geodesy

import (
	"github.com/beetlebugorg/geodesy/internal/ellipsoid"
)

// Converter maps coordinates between two reference systems. Apply goes from
// From to To and Unapply back. Both are pure.
type Converter[From Coordinates[From], To Coordinates[To]] interface {
	Apply(c From) To
	Unapply(c To) From
}

// GeographicToGeocentric converts ellipsoidal latitude, longitude and height
// to earth-centred earth-fixed X, Y, Z on the ellipsoid of the geographic CRS.
//
// The inverse uses Bowring's single-step formula, accurate to well below a
// millimetre for terrestrial heights. Points within a nanometre of the polar
// axis resolve to latitude ±90° exactly.
type GeographicToGeocentric struct{}

// Apply converts c to geocentric coordinates.
func (GeographicToGeocentric) Apply(c Coordinate3D) GeocentricCoordinate {
	x, y, z := ellipsoid.ToGeocentric(
		Geographic3D.Ellipsoid.params(),
		float64(c.Latitude.Radians()),
		float64(c.Longitude.Radians()),
		float64(c.Altitude),
	)
	return GeocentricCoordinate{X: Meters(x), Y: Meters(y), Z: Meters(z)}
}

// Unapply converts g back to geographic coordinates.
func (GeographicToGeocentric) Unapply(g GeocentricCoordinate) Coordinate3D {
	lat, lon, h := ellipsoid.FromGeocentric(
		Geographic3D.Ellipsoid.params(),
		float64(g.X), float64(g.Y), float64(g.Z),
	)
	return Coordinate3D{
		Latitude:  Latitude(Radians(lat).Degrees()),
		Longitude: Longitude(Radians(lon).Degrees()),
		Altitude:  Altitude(h),
	}
}

// Geographic3DTo2D drops the ellipsoidal height. Unapply restores height 0.
type Geographic3DTo2D struct{}

// Apply projects c onto the ellipsoid surface.
func (Geographic3DTo2D) Apply(c Coordinate3D) Coordinate2D {
	return c.Coordinate2D()
}

// Unapply lifts c to height 0.
func (Geographic3DTo2D) Unapply(c Coordinate2D) Coordinate3D {
	return c.WithAltitude(0)
}

type composed[A Coordinates[A], B Coordinates[B], D Coordinates[D]] struct {
	first  Converter[A, B]
	second Converter[B, D]
}

func (c composed[A, B, D]) Apply(a A) D   { return c.second.Apply(c.first.Apply(a)) }
func (c composed[A, B, D]) Unapply(d D) A { return c.first.Unapply(c.second.Unapply(d)) }

// Compose chains first and second. Unapply runs the inverses in reverse
// order.
func Compose[A Coordinates[A], B Coordinates[B], D Coordinates[D]](first Converter[A, B], second Converter[B, D]) Converter[A, D] {
	return composed[A, B, D]{first: first, second: second}
}

type inverted[A Coordinates[A], B Coordinates[B]] struct {
	conv Converter[A, B]
}

func (i inverted[A, B]) Apply(b B) A   { return i.conv.Unapply(b) }
func (i inverted[A, B]) Unapply(a A) B { return i.conv.Apply(a) }

// Invert swaps the directions of conv.
func Invert[A Coordinates[A], B Coordinates[B]](conv Converter[A, B]) Converter[B, A] {
	return inverted[A, B]{conv: conv}
}

// Geographic2DToGeocentric converts surface positions to geocentric
// coordinates at height 0. Unapply discards the height.
func Geographic2DToGeocentric() Converter[Coordinate2D, GeocentricCoordinate] {
	return Compose[Coordinate2D, Coordinate3D, GeocentricCoordinate](
		Invert[Coordinate3D, Coordinate2D](Geographic3DTo2D{}),
		GeographicToGeocentric{},
	)
}

// ConvertPoint applies conv to p.
func ConvertPoint[From Coordinates[From], To Coordinates[To]](conv Converter[From, To], p Point[From]) Point[To] {
	return NewPoint(conv.Apply(p.Coordinates()))
}

// ConvertPoints applies conv to every point, preserving order.
func ConvertPoints[From Coordinates[From], To Coordinates[To]](conv Converter[From, To], points []Point[From]) []Point[To] {
	out := make([]Point[To], len(points))
	for i, p := range points {
		out[i] = ConvertPoint(conv, p)
	}
	return out
}

// ConvertLineString applies conv to every point of ls.
func ConvertLineString[From Coordinates[From], To Coordinates[To]](conv Converter[From, To], ls LineString[From]) LineString[To] {
	return LineString[To]{points: ConvertPoints(conv, ls.points)}
}
