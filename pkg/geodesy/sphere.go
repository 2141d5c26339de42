package geodesy

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MeanEarthRadius is the IUGG mean radius R1 of the WGS 84 ellipsoid.
const MeanEarthRadius Meters = 6371008.8

// LatLng returns c as an s2.LatLng.
func (c Coordinate2D) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(float64(c.Latitude), float64(c.Longitude))
}

// Coordinate2DFromLatLng converts an s2.LatLng.
func Coordinate2DFromLatLng(ll s2.LatLng) Coordinate2D {
	return Coordinate2D{Latitude: Latitude(ll.Lat.Degrees()), Longitude: Longitude(ll.Lng.Degrees())}
}

// AngleTo returns the central angle between c and o.
func (c Coordinate2D) AngleTo(o Coordinate2D) s1.Angle {
	return c.LatLng().Distance(o.LatLng())
}

// DistanceTo returns the great-circle distance to o on a sphere of radius
// MeanEarthRadius. The error against the ellipsoid stays below 0.5%.
func (c Coordinate2D) DistanceTo(o Coordinate2D) Meters {
	return Meters(c.AngleTo(o).Radians()) * MeanEarthRadius
}

// GreatCircleLength sums DistanceTo over the segments of ls.
func GreatCircleLength(ls LineString[Coordinate2D]) Meters {
	var total Meters
	for _, l := range ls.Lines() {
		total += l.Start().Coordinates().DistanceTo(l.End().Coordinates())
	}
	return total
}

// Vector returns g as an r3.Vector in metres.
func (g GeocentricCoordinate) Vector() r3.Vector {
	return r3.Vector{X: float64(g.X), Y: float64(g.Y), Z: float64(g.Z)}
}

// GeocentricFromVector converts an r3.Vector in metres.
func GeocentricFromVector(v r3.Vector) GeocentricCoordinate {
	return GeocentricCoordinate{X: Meters(v.X), Y: Meters(v.Y), Z: Meters(v.Z)}
}

// ChordDistance returns the straight-line distance through the earth
// between g and o.
func (g GeocentricCoordinate) ChordDistance(o GeocentricCoordinate) Meters {
	return Meters(g.Vector().Sub(o.Vector()).Norm())
}
