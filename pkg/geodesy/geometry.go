package geodesy

import (
	"fmt"
	"slices"

	"github.com/beetlebugorg/geodesy/internal/planar"
)

// Line is an ordered pair of points.
type Line[C Coordinates[C]] struct {
	start, end Point[C]
}

// NewLine returns the line from start to end.
func NewLine[C Coordinates[C]](start, end Point[C]) Line[C] {
	return Line[C]{start: start, end: end}
}

// Start returns the first point.
func (l Line[C]) Start() Point[C] { return l.start }

// End returns the second point.
func (l Line[C]) End() Point[C] { return l.end }

// Points returns both points in order.
func (l Line[C]) Points() []Point[C] {
	return []Point[C]{l.start, l.end}
}

// Vector returns End − Start.
func (l Line[C]) Vector() Vector[C] {
	return l.end.Sub(l.start)
}

// Reversed returns the line from End to Start.
func (l Line[C]) Reversed() Line[C] {
	return Line[C]{start: l.end, end: l.start}
}

// LineString returns l as a two-point line string.
func (l Line[C]) LineString() LineString[C] {
	return LineString[C]{points: l.Points()}
}

// BoundingBox returns the geographic bounding box of both points.
func (l Line[C]) BoundingBox() (BoundingBox[C], bool) {
	return GeographicBoundingBox(l.Points())
}

// Hash returns the identity hash of the line.
func (l Line[C]) Hash() uint64 {
	return hashPoints(kindLine, l.Points())
}

// LineString is an ordered sequence of at least two connected points.
type LineString[C Coordinates[C]] struct {
	points []Point[C]
}

// NewLineString returns a line string over points. It fails with
// ErrTooFewPoints for fewer than two points. The slice is copied.
func NewLineString[C Coordinates[C]](points ...Point[C]) (LineString[C], error) {
	if len(points) < 2 {
		return LineString[C]{}, &ErrTooFewPoints{Kind: kindLineString, Got: len(points), Min: 2}
	}
	return LineString[C]{points: slices.Clone(points)}, nil
}

// MustLineString is like NewLineString but panics on error. It is meant for
// literals known to be valid.
func MustLineString[C Coordinates[C]](points ...Point[C]) LineString[C] {
	ls, err := NewLineString(points...)
	if err != nil {
		panic(err)
	}
	return ls
}

// Points returns a copy of the points.
func (ls LineString[C]) Points() []Point[C] {
	return slices.Clone(ls.points)
}

// Len returns the number of points.
func (ls LineString[C]) Len() int { return len(ls.points) }

// At returns point i.
func (ls LineString[C]) At(i int) Point[C] { return ls.points[i] }

// First returns the first point.
func (ls LineString[C]) First() Point[C] { return ls.points[0] }

// Last returns the last point.
func (ls LineString[C]) Last() Point[C] { return ls.points[len(ls.points)-1] }

// Lines returns the segments in order.
func (ls LineString[C]) Lines() []Line[C] {
	if len(ls.points) < 2 {
		return nil
	}
	lines := make([]Line[C], len(ls.points)-1)
	for i := range lines {
		lines[i] = Line[C]{start: ls.points[i], end: ls.points[i+1]}
	}
	return lines
}

// IsClosed reports whether the first and last points are equal.
func (ls LineString[C]) IsClosed() bool {
	return planar.IsClosed(vecsOf(ls.points))
}

// Closed returns ls with the first point appended when it is not already
// closed.
func (ls LineString[C]) Closed() LineString[C] {
	if len(ls.points) == 0 || ls.IsClosed() {
		return ls
	}
	return LineString[C]{points: append(slices.Clone(ls.points), ls.points[0])}
}

// Ring closes ls and returns it as a linear ring.
func (ls LineString[C]) Ring() (LinearRing[C], error) {
	return NewLinearRing(ls.Closed().points...)
}

// Reversed returns the points in reverse order.
func (ls LineString[C]) Reversed() LineString[C] {
	pts := slices.Clone(ls.points)
	slices.Reverse(pts)
	return LineString[C]{points: pts}
}

// Length returns the summed segment lengths in axis units (raw, planar).
func (ls LineString[C]) Length() float64 {
	var total float64
	for _, l := range ls.Lines() {
		total += l.Vector().Length()
	}
	return total
}

// BoundingBox returns the geographic bounding box.
func (ls LineString[C]) BoundingBox() (BoundingBox[C], bool) {
	return GeographicBoundingBox(ls.points)
}

// NaiveBoundingBox returns the min/max box ignoring wraparound.
func (ls LineString[C]) NaiveBoundingBox() (BoundingBox[C], bool) {
	return NaiveBoundingBox(ls.points)
}

// Hash returns the identity hash of the line string.
func (ls LineString[C]) Hash() uint64 {
	return hashPoints(kindLineString, ls.points)
}

// LinearRing is a closed line string of at least four points.
type LinearRing[C Coordinates[C]] struct {
	points []Point[C]
}

// NewLinearRing returns a ring over points. It fails with ErrTooFewPoints
// for fewer than four points and ErrRingNotClosed when the first and last
// points differ. The slice is copied.
func NewLinearRing[C Coordinates[C]](points ...Point[C]) (LinearRing[C], error) {
	if len(points) < 4 {
		return LinearRing[C]{}, &ErrTooFewPoints{Kind: kindLinearRing, Got: len(points), Min: 4}
	}
	first, last := points[0], points[len(points)-1]
	if !first.Equal(last) {
		return LinearRing[C]{}, &ErrRingNotClosed{
			First: componentString(first),
			Last:  componentString(last),
		}
	}
	return LinearRing[C]{points: slices.Clone(points)}, nil
}

// MustLinearRing is like NewLinearRing but panics on error.
func MustLinearRing[C Coordinates[C]](points ...Point[C]) LinearRing[C] {
	r, err := NewLinearRing(points...)
	if err != nil {
		panic(err)
	}
	return r
}

// Points returns a copy of the points, closing point included.
func (r LinearRing[C]) Points() []Point[C] {
	return slices.Clone(r.points)
}

// Len returns the number of points, closing point included.
func (r LinearRing[C]) Len() int { return len(r.points) }

// LineString returns r as a (closed) line string.
func (r LinearRing[C]) LineString() LineString[C] {
	return LineString[C]{points: slices.Clone(r.points)}
}

// Reversed returns the ring with opposite winding.
func (r LinearRing[C]) Reversed() LinearRing[C] {
	pts := slices.Clone(r.points)
	slices.Reverse(pts)
	return LinearRing[C]{points: pts}
}

// Oriented returns r wound clockwise when clockwise is true and
// counter-clockwise otherwise.
func (r LinearRing[C]) Oriented(clockwise bool) LinearRing[C] {
	if r.IsClockwise() == clockwise {
		return r
	}
	return r.Reversed()
}

// BoundingBox returns the geographic bounding box.
func (r LinearRing[C]) BoundingBox() (BoundingBox[C], bool) {
	return GeographicBoundingBox(r.points)
}

// Hash returns the identity hash of the ring.
func (r LinearRing[C]) Hash() uint64 {
	return hashPoints(kindLinearRing, r.points)
}

// MultiPoint is a non-empty collection of points.
type MultiPoint[C Coordinates[C]] struct {
	points []Point[C]
}

// NewMultiPoint fails with ErrTooFewPoints for an empty list.
func NewMultiPoint[C Coordinates[C]](points ...Point[C]) (MultiPoint[C], error) {
	if len(points) == 0 {
		return MultiPoint[C]{}, &ErrTooFewPoints{Kind: kindMultiPoint, Got: 0, Min: 1}
	}
	return MultiPoint[C]{points: slices.Clone(points)}, nil
}

// Points returns a copy of the points.
func (m MultiPoint[C]) Points() []Point[C] {
	return slices.Clone(m.points)
}

// Len returns the number of points.
func (m MultiPoint[C]) Len() int { return len(m.points) }

// BoundingBox returns the geographic bounding box.
func (m MultiPoint[C]) BoundingBox() (BoundingBox[C], bool) {
	return GeographicBoundingBox(m.points)
}

// NaiveBoundingBox returns the min/max box ignoring wraparound.
func (m MultiPoint[C]) NaiveBoundingBox() (BoundingBox[C], bool) {
	return NaiveBoundingBox(m.points)
}

// Centroid returns the arithmetic mean of the points.
func (m MultiPoint[C]) Centroid() Point[C] {
	return pointFromVec[C](planar.Centroid(vecsOf(m.points)))
}

// Hash returns the identity hash of the collection.
func (m MultiPoint[C]) Hash() uint64 {
	return hashPoints(kindMultiPoint, m.points)
}

// MultiLine is a non-empty collection of line strings.
type MultiLine[C Coordinates[C]] struct {
	lines []LineString[C]
}

// NewMultiLine fails with ErrTooFewPoints for an empty list.
func NewMultiLine[C Coordinates[C]](lines ...LineString[C]) (MultiLine[C], error) {
	if len(lines) == 0 {
		return MultiLine[C]{}, &ErrTooFewPoints{Kind: kindMultiLine, Got: 0, Min: 1}
	}
	return MultiLine[C]{lines: slices.Clone(lines)}, nil
}

// Lines returns a copy of the line strings.
func (m MultiLine[C]) Lines() []LineString[C] {
	return slices.Clone(m.lines)
}

// Len returns the number of line strings.
func (m MultiLine[C]) Len() int { return len(m.lines) }

// Points returns every point of every line string, in order.
func (m MultiLine[C]) Points() []Point[C] {
	var pts []Point[C]
	for _, l := range m.lines {
		pts = append(pts, l.points...)
	}
	return pts
}

// BoundingBox returns the geographic bounding box of all points.
func (m MultiLine[C]) BoundingBox() (BoundingBox[C], bool) {
	return GeographicBoundingBox(m.Points())
}

// Hash returns the identity hash of the collection.
func (m MultiLine[C]) Hash() uint64 {
	parts := make([]uint64, len(m.lines))
	for i, l := range m.lines {
		parts[i] = l.Hash()
	}
	return hashParts(kindMultiLine, crsOf[C]().ID, parts)
}

// Polygon is an exterior ring with optional holes.
type Polygon[C Coordinates[C]] struct {
	exterior LinearRing[C]
	holes    []LinearRing[C]
}

// NewPolygon returns a polygon. The rings are used as given; no containment
// check is made.
func NewPolygon[C Coordinates[C]](exterior LinearRing[C], holes ...LinearRing[C]) Polygon[C] {
	return Polygon[C]{exterior: exterior, holes: slices.Clone(holes)}
}

// Exterior returns the outer ring.
func (p Polygon[C]) Exterior() LinearRing[C] { return p.exterior }

// Holes returns a copy of the inner rings.
func (p Polygon[C]) Holes() []LinearRing[C] { return slices.Clone(p.holes) }

// BoundingBox returns the bounding box of the exterior ring.
func (p Polygon[C]) BoundingBox() (BoundingBox[C], bool) {
	return p.exterior.BoundingBox()
}

// Hash returns the identity hash of the polygon.
func (p Polygon[C]) Hash() uint64 {
	parts := make([]uint64, 0, len(p.holes)+1)
	parts = append(parts, p.exterior.Hash())
	for _, h := range p.holes {
		parts = append(parts, h.Hash())
	}
	return hashParts(kindPolygon, crsOf[C]().ID, parts)
}

// GeometryCollection groups shapes of one CRS.
type GeometryCollection[C Coordinates[C]] struct {
	shapes []Boundable[C]
}

// NewGeometryCollection returns a collection over shapes. Nested collections
// are allowed.
func NewGeometryCollection[C Coordinates[C]](shapes ...Boundable[C]) GeometryCollection[C] {
	return GeometryCollection[C]{shapes: slices.Clone(shapes)}
}

// Shapes returns a copy of the members.
func (g GeometryCollection[C]) Shapes() []Boundable[C] {
	return slices.Clone(g.shapes)
}

// Len returns the number of members.
func (g GeometryCollection[C]) Len() int { return len(g.shapes) }

// BoundingBox returns the union of the member boxes. The boolean is false
// when no member has points.
func (g GeometryCollection[C]) BoundingBox() (BoundingBox[C], bool) {
	return BoundingBoxOfShapes(g.shapes...)
}

// Hash combines the member hashes. Members that are not Hashable contribute
// their bounding box.
func (g GeometryCollection[C]) Hash() uint64 {
	parts := make([]uint64, 0, len(g.shapes))
	for _, s := range g.shapes {
		if h, ok := s.(Hashable); ok {
			parts = append(parts, h.Hash())
			continue
		}
		if b, ok := s.BoundingBox(); ok {
			parts = append(parts, b.Hash())
		}
	}
	return hashParts(kindGeometryCollection, crsOf[C]().ID, parts)
}

func componentString[C Coordinates[C]](p Point[C]) string {
	return fmt.Sprint(p.coords)
}
