package geodesy

import (
	"math"

	"github.com/beetlebugorg/geodesy/internal/numeric"
)

// BoundingBox is an axis-aligned box given by an origin point and a size.
//
// The origin is the component-wise minimum of everything the box contains,
// except on a wrapping axis (longitude) when the box crosses the
// antimeridian: then the east edge, Upper, is numerically less than the west
// edge, Origin. That inversion is the crossing marker.
type BoundingBox[C Coordinates[C]] struct {
	origin Point[C]
	size   Size[C]
}

// Boundable is anything with a bounding box. The boolean is false when the
// shape has no points.
type Boundable[C Coordinates[C]] interface {
	BoundingBox() (BoundingBox[C], bool)
}

// NewBoundingBox returns the box with the given origin and size.
func NewBoundingBox[C Coordinates[C]](origin Point[C], size Size[C]) BoundingBox[C] {
	return BoundingBox[C]{origin: origin, size: size}
}

// BoundingBoxFromCorners returns the box spanning lower to upper. On a
// wrapping axis an upper value below the lower one describes a box crossing
// the antimeridian; on other axes the corners are reordered.
func BoundingBoxFromCorners[C Coordinates[C]](lower, upper Point[C]) BoundingBox[C] {
	crs := crsOf[C]()
	lo, hi := lower.vec(), upper.vec()

	var origin, extent numeric.Vec
	for i, axis := range crs.Axes {
		origin[i] = lo[i]
		extent[i] = hi[i] - lo[i]
		if extent[i] < 0 {
			if axis.Wraps {
				extent[i] += axis.FullRotation()
			} else {
				origin[i], extent[i] = hi[i], -extent[i]
			}
		}
	}
	return BoundingBox[C]{origin: pointFromVec[C](origin), size: Size[C]{extent: extent}}
}

// Origin returns the minimum corner (south-west for geographic boxes).
func (b BoundingBox[C]) Origin() Point[C] { return b.origin }

// Size returns the per-axis extents.
func (b BoundingBox[C]) Size() Size[C] { return b.size }

// CRS returns the reference system descriptor.
func (b BoundingBox[C]) CRS() *CRS { return crsOf[C]() }

// Min returns the origin.
func (b BoundingBox[C]) Min() Point[C] { return b.origin }

// Max returns origin + size without normalization. On a box crossing the
// antimeridian its longitude exceeds 180°.
func (b BoundingBox[C]) Max() Point[C] {
	return b.origin.Add(b.size.Vector())
}

// Upper returns Max normalized into the valid range (north-east for
// geographic boxes).
func (b BoundingBox[C]) Upper() Point[C] {
	return b.Max().Valid()
}

// Center returns the midpoint of the box, normalized.
func (b BoundingBox[C]) Center() Point[C] {
	return b.origin.Add(b.size.Vector().Divide(2)).Valid()
}

// CrossesAntimeridian reports whether the east edge wrapped past ±180°.
func (b BoundingBox[C]) CrossesAntimeridian() bool {
	lo, hi := b.origin.vec(), b.Max().vec()
	for i, axis := range crsOf[C]().Axes {
		if axis.Wraps && axis.Normalize(hi[i]) < axis.Normalize(lo[i]) {
			return true
		}
	}
	return false
}

// BoundingBox returns b itself.
func (b BoundingBox[C]) BoundingBox() (BoundingBox[C], bool) {
	return b, true
}

// Equal reports whether b and o have identical origin and size.
func (b BoundingBox[C]) Equal(o BoundingBox[C]) bool {
	return b == o
}

// Hash returns the identity hash of the box.
func (b BoundingBox[C]) Hash() uint64 {
	return hashPoints(kindBoundingBox, []Point[C]{b.origin, b.Max()})
}

// Union returns the smallest box containing b and o.
//
// Each axis takes the minimum origin and the maximum far edge. A wrapping
// axis is treated as a circle instead: the merged span either starts at b
// and runs east past o, or starts at o and runs east past b, and the
// narrower one wins. Ties go to the origin further west in [0, 360) so the
// result does not depend on argument order.
func (b BoundingBox[C]) Union(o BoundingBox[C]) BoundingBox[C] {
	aLo, aExt := b.origin.vec(), b.size.extent
	bLo, bExt := o.origin.vec(), o.size.extent

	var origin, extent numeric.Vec
	for i, axis := range crsOf[C]().Axes {
		if axis.Wraps {
			origin[i], extent[i] = circularUnion(axis, aLo[i], aExt[i], bLo[i], bExt[i])
			continue
		}

		lo := min(aLo[i], bLo[i])
		hi := max(aLo[i]+aExt[i], bLo[i]+bExt[i])
		origin[i], extent[i] = lo, hi-lo
	}
	return BoundingBox[C]{origin: pointFromVec[C](origin), size: Size[C]{extent: extent}}
}

// circularUnion merges the arcs [aLo, aLo+aExt] and [bLo, bLo+bExt] on a
// wrapping axis. The extent never exceeds a full rotation.
func circularUnion(axis Axis, aLo, aExt, bLo, bExt float64) (origin, extent float64) {
	full := axis.FullRotation()
	fromA := min(max(aExt, circularOffset(axis, aLo, bLo)+bExt), full)
	fromB := min(max(bExt, circularOffset(axis, bLo, aLo)+aExt), full)

	switch {
	case fromA < fromB:
		return aLo, fromA
	case fromB < fromA:
		return bLo, fromB
	case axis.Positive(axis.Normalize(bLo)) < axis.Positive(axis.Normalize(aLo)):
		return bLo, fromB
	default:
		return aLo, fromA
	}
}

// Contains reports whether p lies inside b, edges included. Wrapping axes are
// compared modulo a full rotation, so boxes crossing the antimeridian
// contain points on both sides of it.
func (b BoundingBox[C]) Contains(p Point[C]) bool {
	lo, ext, v := b.origin.vec(), b.size.extent, p.vec()
	for i, axis := range crsOf[C]().Axes {
		if axis.Wraps {
			if ext[i] >= axis.FullRotation() {
				continue
			}
			if circularOffset(axis, lo[i], v[i]) > ext[i] {
				return false
			}
			continue
		}
		if v[i] < lo[i] || v[i] > lo[i]+ext[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o share at least one point.
func (b BoundingBox[C]) Intersects(o BoundingBox[C]) bool {
	aLo, aExt := b.origin.vec(), b.size.extent
	bLo, bExt := o.origin.vec(), o.size.extent
	for i, axis := range crsOf[C]().Axes {
		if axis.Wraps {
			full := axis.FullRotation()
			if aExt[i] >= full || bExt[i] >= full {
				continue
			}
			if circularOffset(axis, aLo[i], bLo[i]) > aExt[i] &&
				circularOffset(axis, bLo[i], aLo[i]) > bExt[i] {
				return false
			}
			continue
		}
		if bLo[i]+bExt[i] < aLo[i] || bLo[i] > aLo[i]+aExt[i] {
			return false
		}
	}
	return true
}

// Expand grows the box by margin on every side of every axis. A negative
// margin shrinks it, collapsing to the centre on axes that would invert.
func (b BoundingBox[C]) Expand(margin float64) BoundingBox[C] {
	origin, extent := b.origin.vec(), b.size.extent
	for i := range crsOf[C]().Axes {
		grown := extent[i] + 2*margin
		if grown < 0 {
			origin[i] += extent[i] / 2
			extent[i] = 0
			continue
		}
		origin[i] -= margin
		extent[i] = grown
	}
	return BoundingBox[C]{origin: pointFromVec[C](origin), size: Size[C]{extent: extent}}
}

// Parts splits b along the antimeridian into boxes that do not wrap. A box
// that does not cross is returned as its only part.
func (b BoundingBox[C]) Parts() []BoundingBox[C] {
	parts := []BoundingBox[C]{b}
	for i, axis := range crsOf[C]().Axes {
		if !axis.Wraps {
			continue
		}

		var next []BoundingBox[C]
		for _, part := range parts {
			origin, extent := part.origin.vec(), part.size.extent
			lo := axis.Normalize(origin[i])
			hi := lo + extent[i]
			if extent[i] >= axis.FullRotation() || hi <= axis.HalfRotation {
				origin[i] = lo
				next = append(next, BoundingBox[C]{origin: pointFromVec[C](origin), size: Size[C]{extent: extent}})
				continue
			}

			west, east := origin, origin
			westExt, eastExt := extent, extent
			west[i], westExt[i] = lo, axis.HalfRotation-lo
			east[i], eastExt[i] = -axis.HalfRotation, hi-axis.FullRotation()+axis.HalfRotation
			next = append(next,
				BoundingBox[C]{origin: pointFromVec[C](west), size: Size[C]{extent: westExt}},
				BoundingBox[C]{origin: pointFromVec[C](east), size: Size[C]{extent: eastExt}},
			)
		}
		parts = next
	}
	return parts
}

// circularOffset returns how far v lies east of lo on a wrapping axis, in
// [0, full).
func circularOffset(axis Axis, lo, v float64) float64 {
	full := axis.FullRotation()
	off := math.Mod(axis.Normalize(v)-axis.Normalize(lo), full)
	if off < 0 {
		off += full
	}
	return off
}

// NaiveBoundingBox returns the component-wise min/max box of points. It
// ignores angular wraparound, so a cluster straddling the antimeridian
// yields a box spanning nearly the whole globe. Use GeographicBoundingBox
// unless that is what you want.
//
// The boolean is false for an empty slice.
func NaiveBoundingBox[C Coordinates[C]](points []Point[C]) (BoundingBox[C], bool) {
	if len(points) == 0 {
		return BoundingBox[C]{}, false
	}

	lo := points[0].vec()
	hi := lo
	for _, p := range points[1:] {
		v := p.vec()
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return BoundingBox[C]{origin: pointFromVec[C](lo), size: Size[C]{extent: hi.Sub(lo)}}, true
}

// GeographicBoundingBox returns the antimeridian-aware box of points.
//
// It starts from the naive box. On every wrapping axis whose extent exceeds
// half a rotation, the extent is recomputed on longitudes shifted into
// [0, 360) and the narrower of the two is kept. The shift is idempotent, so
// one pass is enough.
//
// The boolean is false for an empty slice.
func GeographicBoundingBox[C Coordinates[C]](points []Point[C]) (BoundingBox[C], bool) {
	box, ok := NaiveBoundingBox(points)
	if !ok {
		return box, false
	}

	origin, extent := box.origin.vec(), box.size.extent
	changed := false
	for i, axis := range crsOf[C]().Axes {
		if !axis.Wraps || extent[i] <= axis.HalfRotation {
			continue
		}

		lo := axis.Positive(points[0].vec()[i])
		hi := lo
		for _, p := range points[1:] {
			v := axis.Positive(p.vec()[i])
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if hi-lo < extent[i] {
			origin[i], extent[i] = axis.Normalize(lo), hi-lo
			changed = true
		}
	}
	if !changed {
		return box, true
	}
	return BoundingBox[C]{origin: pointFromVec[C](origin), size: Size[C]{extent: extent}}, true
}

// BoundingBoxOf is GeographicBoundingBox over a variadic list.
func BoundingBoxOf[C Coordinates[C]](points ...Point[C]) (BoundingBox[C], bool) {
	return GeographicBoundingBox(points)
}

// Union merges any number of boxes. The boolean is false when boxes is
// empty.
func Union[C Coordinates[C]](boxes ...BoundingBox[C]) (BoundingBox[C], bool) {
	if len(boxes) == 0 {
		return BoundingBox[C]{}, false
	}

	result := boxes[0]
	for _, b := range boxes[1:] {
		result = result.Union(b)
	}
	return result, true
}

// BoundingBoxOfShapes merges the boxes of every shape that has one. The
// boolean is false when no shape has points.
func BoundingBoxOfShapes[C Coordinates[C]](shapes ...Boundable[C]) (BoundingBox[C], bool) {
	boxes := make([]BoundingBox[C], 0, len(shapes))
	for _, s := range shapes {
		if b, ok := s.BoundingBox(); ok {
			boxes = append(boxes, b)
		}
	}
	return Union(boxes...)
}

// axisIndex returns the position of axis in the CRS of C, or -1.
func axisIndex[C Coordinates[C]](axis Axis) int {
	for i, a := range crsOf[C]().Axes {
		if a == axis {
			return i
		}
	}
	return -1
}

func (b BoundingBox[C]) edge(axis Axis, upper bool) float64 {
	i := axisIndex[C](axis)
	if i < 0 {
		return 0
	}
	if upper {
		return b.Upper().vec()[i]
	}
	return axis.Normalize(b.origin.vec()[i])
}

// West returns the western edge. It is zero for a CRS without a longitude
// axis.
func (b BoundingBox[C]) West() Longitude { return Longitude(b.edge(AxisLongitude, false)) }

// East returns the eastern edge, less than West when the box crosses the
// antimeridian.
func (b BoundingBox[C]) East() Longitude { return Longitude(b.edge(AxisLongitude, true)) }

// South returns the southern edge.
func (b BoundingBox[C]) South() Latitude { return Latitude(b.edge(AxisLatitude, false)) }

// North returns the northern edge.
func (b BoundingBox[C]) North() Latitude { return Latitude(b.edge(AxisLatitude, true)) }
