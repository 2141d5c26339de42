package geodesy

import (
	"fmt"
	"math"
	"slices"
)

// positionScale rounds encoded positions to 6 decimal places, about 0.1 m.
const positionScale = 1e6

// Position is the coordinate array shape used by GeoJSON-style encoders:
// [longitude, latitude] or [longitude, latitude, height].
type Position []float64

func roundPosition(v float64) float64 {
	return math.Round(v*positionScale) / positionScale
}

// Position encodes c as [lon, lat], rounded to 6 decimals. c keeps full
// precision.
func (c Coordinate2D) Position() Position {
	return Position{
		roundPosition(float64(c.Longitude)),
		roundPosition(float64(c.Latitude)),
	}
}

// Position encodes c as [lon, lat, h], rounded to 6 decimals.
func (c Coordinate3D) Position() Position {
	return Position{
		roundPosition(float64(c.Longitude)),
		roundPosition(float64(c.Latitude)),
		roundPosition(float64(c.Altitude)),
	}
}

// EncodePositions encodes every point in order.
func EncodePositions(points []Point[Coordinate2D]) []Position {
	out := make([]Position, len(points))
	for i, p := range points {
		out[i] = p.Coordinates().Position()
	}
	return out
}

// DecodePosition2D parses [lon, lat]. A trailing height is accepted and
// dropped.
func DecodePosition2D(p Position) (Coordinate2D, error) {
	if len(p) != 2 && len(p) != 3 {
		return Coordinate2D{}, &ErrInvalidPosition{Len: len(p), Reason: "want [lon, lat] or [lon, lat, h]"}
	}
	if err := ValidateCoordinate(p[1], p[0]); err != nil {
		return Coordinate2D{}, fmt.Errorf("decode position: %w", err)
	}
	return Coordinate2D{Latitude: Latitude(p[1]), Longitude: Longitude(p[0])}, nil
}

// DecodePosition3D parses [lon, lat, h].
func DecodePosition3D(p Position) (Coordinate3D, error) {
	if len(p) != 3 {
		return Coordinate3D{}, &ErrInvalidPosition{Len: len(p), Reason: "want [lon, lat, h]"}
	}
	c := Coordinate3D{Latitude: Latitude(p[1]), Longitude: Longitude(p[0]), Altitude: Altitude(p[2])}
	if err := c.Validate(); err != nil {
		return Coordinate3D{}, fmt.Errorf("decode position: %w", err)
	}
	return c, nil
}

// EncodeBoundingBox2D encodes b as [west, south, east, north], rounded to 6
// decimals. East is less than west when b crosses the antimeridian.
func EncodeBoundingBox2D(b BoundingBox[Coordinate2D]) []float64 {
	return []float64{
		roundPosition(float64(b.West())),
		roundPosition(float64(b.South())),
		roundPosition(float64(b.East())),
		roundPosition(float64(b.North())),
	}
}

// DecodeBoundingBox2D parses [west, south, east, north]. An east edge less
// than the west edge yields a box crossing the antimeridian.
func DecodeBoundingBox2D(a []float64) (BoundingBox[Coordinate2D], error) {
	if len(a) != 4 {
		return BoundingBox[Coordinate2D]{}, &ErrInvalidPosition{Len: len(a), Reason: "want [west, south, east, north]"}
	}
	for _, corner := range [][2]float64{{a[1], a[0]}, {a[3], a[2]}} {
		if err := ValidateCoordinate(corner[0], corner[1]); err != nil {
			return BoundingBox[Coordinate2D]{}, fmt.Errorf("decode bounding box: %w", err)
		}
	}
	if a[3] < a[1] {
		return BoundingBox[Coordinate2D]{}, &ErrInvalidPosition{Len: 4, Reason: "north below south"}
	}
	return BoundingBoxFromCorners(Point2D(Latitude(a[1]), Longitude(a[0])), Point2D(Latitude(a[3]), Longitude(a[2]))), nil
}

// Tagged is a coordinate tuple carrying its CRS at run time, for consumers
// that cannot be generic over the coordinate type. Components are in axis
// order, not position order.
type Tagged struct {
	CRS        CRSID     `yaml:"crs"`
	Components []float64 `yaml:"components"`
}

// Tag erases the coordinate type of p.
func Tag[C Coordinates[C]](p Point[C]) Tagged {
	crs := crsOf[C]()
	v := p.vec()
	return Tagged{CRS: crs.ID, Components: slices.Clone(v[:crs.Dimension()])}
}

// Untag recovers a typed point. It fails with ErrCRSMismatch when t belongs
// to another reference system.
func Untag[C Coordinates[C]](t Tagged) (Point[C], error) {
	crs := crsOf[C]()
	if t.CRS != crs.ID {
		return Point[C]{}, &ErrCRSMismatch{Want: crs.ID, Got: t.CRS}
	}
	if len(t.Components) != crs.Dimension() {
		return Point[C]{}, &ErrInvalidPosition{Len: len(t.Components), Reason: fmt.Sprintf("%s has %d axes", crs.ID, crs.Dimension())}
	}

	var v [3]float64
	copy(v[:], t.Components)
	return NewPoint(fromComponents[C](v)), nil
}

func (t Tagged) combine(o Tagged, sign float64) (Tagged, error) {
	if t.CRS != o.CRS {
		return Tagged{}, &ErrCRSMismatch{Want: t.CRS, Got: o.CRS}
	}
	if len(t.Components) != len(o.Components) {
		return Tagged{}, &ErrInvalidPosition{Len: len(o.Components), Reason: fmt.Sprintf("want %d components", len(t.Components))}
	}

	out := make([]float64, len(t.Components))
	for i := range out {
		out[i] = t.Components[i] + sign*o.Components[i]
	}
	return Tagged{CRS: t.CRS, Components: out}, nil
}

// Add returns t + o component-wise.
func (t Tagged) Add(o Tagged) (Tagged, error) {
	return t.combine(o, 1)
}

// Sub returns t − o component-wise.
func (t Tagged) Sub(o Tagged) (Tagged, error) {
	return t.combine(o, -1)
}

// String formats t as "CRS(c0, c1, ...)".
func (t Tagged) String() string {
	return fmt.Sprintf("%s%v", t.CRS, t.Components)
}
