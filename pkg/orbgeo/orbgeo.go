// Package orbgeo converts between geodesy geographic 2D values and the
// planar types of github.com/paulmach/orb.
//
// orb stores points as [longitude, latitude]; geodesy orders axes as
// (latitude, longitude). The conversions swap the order and nothing else.
// orb.Bound has no notion of the antimeridian, so Bound refuses crossing
// boxes and Bounds splits them.
package orbgeo

import (
	"fmt"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
	"github.com/paulmach/orb"
)

// Point converts p to [lon, lat].
func Point(p geodesy.Point[geodesy.Coordinate2D]) orb.Point {
	c := p.Coordinates()
	return orb.Point{float64(c.Longitude), float64(c.Latitude)}
}

// FromPoint converts an orb point.
func FromPoint(p orb.Point) geodesy.Point[geodesy.Coordinate2D] {
	return geodesy.Point2D(geodesy.Latitude(p.Lat()), geodesy.Longitude(p.Lon()))
}

func points(pts []geodesy.Point[geodesy.Coordinate2D]) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		out[i] = Point(p)
	}
	return out
}

func fromPoints(pts []orb.Point) []geodesy.Point[geodesy.Coordinate2D] {
	out := make([]geodesy.Point[geodesy.Coordinate2D], len(pts))
	for i, p := range pts {
		out[i] = FromPoint(p)
	}
	return out
}

// MultiPoint converts m.
func MultiPoint(m geodesy.MultiPoint[geodesy.Coordinate2D]) orb.MultiPoint {
	return orb.MultiPoint(points(m.Points()))
}

// FromMultiPoint fails for an empty multi point.
func FromMultiPoint(m orb.MultiPoint) (geodesy.MultiPoint[geodesy.Coordinate2D], error) {
	return geodesy.NewMultiPoint(fromPoints(m)...)
}

// LineString converts ls.
func LineString(ls geodesy.LineString[geodesy.Coordinate2D]) orb.LineString {
	return orb.LineString(points(ls.Points()))
}

// FromLineString fails for fewer than two points.
func FromLineString(ls orb.LineString) (geodesy.LineString[geodesy.Coordinate2D], error) {
	return geodesy.NewLineString(fromPoints(ls)...)
}

// Ring converts r, closing point included.
func Ring(r geodesy.LinearRing[geodesy.Coordinate2D]) orb.Ring {
	return orb.Ring(points(r.Points()))
}

// FromRing fails when the ring is open or has fewer than four points.
func FromRing(r orb.Ring) (geodesy.LinearRing[geodesy.Coordinate2D], error) {
	return geodesy.NewLinearRing(fromPoints(r)...)
}

// Polygon converts p to an exterior ring followed by its holes.
func Polygon(p geodesy.Polygon[geodesy.Coordinate2D]) orb.Polygon {
	holes := p.Holes()
	out := make(orb.Polygon, 0, len(holes)+1)
	out = append(out, Ring(p.Exterior()))
	for _, h := range holes {
		out = append(out, Ring(h))
	}
	return out
}

// FromPolygon converts an orb polygon. The first ring is the exterior.
func FromPolygon(p orb.Polygon) (geodesy.Polygon[geodesy.Coordinate2D], error) {
	if len(p) == 0 {
		return geodesy.Polygon[geodesy.Coordinate2D]{}, fmt.Errorf("polygon without rings: %w", geodesy.ErrInvalidGeometry)
	}

	rings := make([]geodesy.LinearRing[geodesy.Coordinate2D], len(p))
	for i, r := range p {
		ring, err := FromRing(r)
		if err != nil {
			return geodesy.Polygon[geodesy.Coordinate2D]{}, fmt.Errorf("ring %d: %w", i, err)
		}
		rings[i] = ring
	}
	return geodesy.NewPolygon(rings[0], rings[1:]...), nil
}

// Bound converts b. It fails with geodesy.ErrCrossesAntimeridian when b
// wraps past ±180°; use Bounds for those.
func Bound(b geodesy.BoundingBox[geodesy.Coordinate2D]) (orb.Bound, error) {
	if b.CrossesAntimeridian() {
		return orb.Bound{}, fmt.Errorf("convert bound: %w", geodesy.ErrCrossesAntimeridian)
	}
	return orb.Bound{
		Min: orb.Point{float64(b.West()), float64(b.South())},
		Max: orb.Point{float64(b.East()), float64(b.North())},
	}, nil
}

// Bounds converts b into one orb.Bound, or two when it crosses the
// antimeridian.
func Bounds(b geodesy.BoundingBox[geodesy.Coordinate2D]) []orb.Bound {
	parts := b.Parts()
	out := make([]orb.Bound, 0, len(parts))
	for _, part := range parts {
		out = append(out, orb.Bound{
			Min: orb.Point{float64(part.West()), float64(part.South())},
			Max: orb.Point{float64(part.East()), float64(part.North())},
		})
	}
	return out
}

// FromBound converts an orb bound. orb bounds never wrap.
func FromBound(b orb.Bound) geodesy.BoundingBox[geodesy.Coordinate2D] {
	return geodesy.BoundingBoxFromCorners(FromPoint(b.Min), FromPoint(b.Max))
}
