package geodesy

import (
	"math"

	"github.com/beetlebugorg/geodesy/internal/numeric"
	"github.com/beetlebugorg/geodesy/internal/planar"
)

// signedArea returns the shoelace area over the first two axes with the sign
// flipped, so positive means clockwise with the first axis as abscissa.
func signedArea(vs []numeric.Vec) float64 {
	return -planar.ShoelaceArea(vs)
}

// distinctVecs drops the closing point of a closed sequence.
func distinctVecs[C Coordinates[C]](points []Point[C]) []numeric.Vec {
	vs := vecsOf(points)
	if planar.IsClosed(vs) {
		vs = vs[:len(vs)-1]
	}
	return vs
}

// SignedArea returns the planar area of the ring in squared axis units.
// It is positive for clockwise rings, with winding measured in the plane of
// the first two axes and the first axis horizontal. For geographic rings that
// plane is (latitude, longitude), the mirror image of a north-up map.
func (r LinearRing[C]) SignedArea() float64 {
	return signedArea(vecsOf(r.points))
}

// Area returns the absolute planar area.
func (r LinearRing[C]) Area() float64 {
	return math.Abs(r.SignedArea())
}

// IsClockwise reports whether the ring winds clockwise.
func (r LinearRing[C]) IsClockwise() bool {
	return numeric.Sign(r.SignedArea()) > 0
}

// Centroid returns the arithmetic mean of the distinct points. The closing
// point is not counted twice. The zero ring yields the zero point.
func (r LinearRing[C]) Centroid() Point[C] {
	return pointFromVec[C](planar.Centroid(distinctVecs(r.points)))
}

// CenterOfMass returns the area-weighted centroid, falling back to Centroid
// for rings of zero area.
func (r LinearRing[C]) CenterOfMass() Point[C] {
	if r.SignedArea() == 0 {
		return r.Centroid()
	}
	return pointFromVec[C](planar.CenterOfMass(vecsOf(r.points)))
}

// SignedArea treats ls as a ring, closing it implicitly.
func (ls LineString[C]) SignedArea() float64 {
	return signedArea(vecsOf(ls.points))
}

// Area returns the absolute value of SignedArea.
func (ls LineString[C]) Area() float64 {
	return math.Abs(ls.SignedArea())
}

// IsClockwise reports whether the implicitly closed line string winds
// clockwise.
func (ls LineString[C]) IsClockwise() bool {
	return numeric.Sign(ls.SignedArea()) > 0
}

// Centroid returns the arithmetic mean of the points. Like
// LinearRing.Centroid it skips the last point of a closed line string.
func (ls LineString[C]) Centroid() Point[C] {
	return pointFromVec[C](planar.Centroid(distinctVecs(ls.points)))
}

// CenterOfMass returns the area-weighted centroid of the implicitly closed
// line string, or Centroid when it encloses no area.
func (ls LineString[C]) CenterOfMass() Point[C] {
	if ls.SignedArea() == 0 {
		return ls.Centroid()
	}
	return pointFromVec[C](planar.CenterOfMass(vecsOf(ls.points)))
}

// SignedArea returns the exterior area minus the hole areas, carrying the
// sign of the exterior winding.
func (p Polygon[C]) SignedArea() float64 {
	holes := make([]float64, len(p.holes))
	for i, h := range p.holes {
		holes[i] = h.Area()
	}
	area := p.exterior.Area() - numeric.Sum(holes...)
	if numeric.Sign(p.exterior.SignedArea()) < 0 {
		return -area
	}
	return area
}

// Area returns the exterior area minus the hole areas.
func (p Polygon[C]) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClockwise reports the winding of the exterior ring.
func (p Polygon[C]) IsClockwise() bool {
	return p.exterior.IsClockwise()
}

// Centroid returns the mean of the exterior points.
func (p Polygon[C]) Centroid() Point[C] {
	return p.exterior.Centroid()
}

// CenterOfMass returns the center of mass of the exterior ring.
func (p Polygon[C]) CenterOfMass() Point[C] {
	return p.exterior.CenterOfMass()
}
