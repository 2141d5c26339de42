package geodesy

import (
	"math"
	"testing"
)

func ring2D(coords ...[2]float64) LinearRing[Coordinate2D] {
	points := make([]Point[Coordinate2D], len(coords))
	for i, c := range coords {
		points[i] = Point2D(Latitude(c[0]), Longitude(c[1]))
	}
	return MustLinearRing(points...)
}

func TestWinding(t *testing.T) {
	tests := []struct {
		name      string
		ring      LinearRing[Coordinate2D]
		clockwise bool
		signed    float64
	}{
		{"clockwise triangle", ring2D([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{1, 0}, [2]float64{0, 0}), true, 0.5},
		{"counter-clockwise triangle", ring2D([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 0}), false, -0.5},
		{"clockwise square", ring2D([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1}, [2]float64{0, 0}).Reversed(), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.IsClockwise(); got != tt.clockwise {
				t.Errorf("IsClockwise() = %v, want %v", got, tt.clockwise)
			}
			if got := tt.ring.SignedArea(); got != tt.signed {
				t.Errorf("SignedArea() = %v, want %v", got, tt.signed)
			}
			if got := tt.ring.Area(); got != math.Abs(tt.signed) {
				t.Errorf("Area() = %v, want %v", got, math.Abs(tt.signed))
			}
		})
	}
}

func TestOriented(t *testing.T) {
	ccw := ring2D([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 0})

	if got := ccw.Oriented(true); !got.IsClockwise() {
		t.Error("Oriented(true) is not clockwise")
	}
	if got := ccw.Oriented(false); got.Hash() != ccw.Hash() {
		t.Error("Oriented(false) changed a counter-clockwise ring")
	}
}

func TestLineStringAreaClosesImplicitly(t *testing.T) {
	open := MustLineString(Point2D(0, 0), Point2D(1, 1), Point2D(1, 0))
	if got := open.SignedArea(); got != 0.5 {
		t.Errorf("SignedArea() = %v, want 0.5", got)
	}
	if !open.IsClockwise() {
		t.Error("IsClockwise() = false, want true")
	}
	if got := MustLineString(Point2D(0, 0), Point2D(1, 1)).Area(); got != 0 {
		t.Errorf("two-point Area() = %v, want 0", got)
	}
}

func TestCentroids(t *testing.T) {
	square := ring2D([2]float64{0, 0}, [2]float64{0, 2}, [2]float64{2, 2}, [2]float64{2, 0}, [2]float64{0, 0})

	if got := square.Centroid().Coordinates(); got != (Coordinate2D{Latitude: 1, Longitude: 1}) {
		t.Errorf("Centroid() = %v, want (1, 1)", got)
	}
	if got := square.CenterOfMass().Coordinates(); got != (Coordinate2D{Latitude: 1, Longitude: 1}) {
		t.Errorf("CenterOfMass() = %v, want (1, 1)", got)
	}

	// Points bunched on one side pull the mean but not the center of mass.
	triangle := ring2D([2]float64{0, 0}, [2]float64{0, 3}, [2]float64{3, 0}, [2]float64{0, 0})
	com := triangle.CenterOfMass().Coordinates()
	if math.Abs(float64(com.Latitude)-1) > 1e-12 || math.Abs(float64(com.Longitude)-1) > 1e-12 {
		t.Errorf("triangle CenterOfMass() = %v, want (1, 1)", com)
	}

	mp, _ := NewMultiPoint(Point2D(0, 0), Point2D(2, 4), Point2D(4, 2))
	if got := mp.Centroid().Coordinates(); got != (Coordinate2D{Latitude: 2, Longitude: 2}) {
		t.Errorf("MultiPoint Centroid() = %v, want (2, 2)", got)
	}
}

func TestCentroidClosingPoint(t *testing.T) {
	square := ring2D([2]float64{0, 0}, [2]float64{0, 2}, [2]float64{2, 2}, [2]float64{2, 0}, [2]float64{0, 0})

	if got, want := square.LineString().Centroid(), square.Centroid(); !got.Equal(want) {
		t.Errorf("LineString().Centroid() = %v, want %v", got.Coordinates(), want.Coordinates())
	}

	open := MustLineString(Point2D(0, 0), Point2D(0, 3), Point2D(3, 0))
	if got := open.Centroid().Coordinates(); got != (Coordinate2D{Latitude: 1, Longitude: 1}) {
		t.Errorf("open Centroid() = %v, want (1, 1)", got)
	}

	var zero LinearRing[Coordinate2D]
	if got := zero.Centroid(); !got.Equal(Point[Coordinate2D]{}) {
		t.Errorf("zero ring Centroid() = %v, want origin", got.Coordinates())
	}
	if got := zero.CenterOfMass(); !got.Equal(Point[Coordinate2D]{}) {
		t.Errorf("zero ring CenterOfMass() = %v, want origin", got.Coordinates())
	}
}

func TestCenterOfMassDegenerateFallback(t *testing.T) {
	collinear := ring2D([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}, [2]float64{0, 0})
	if collinear.SignedArea() != 0 {
		t.Fatalf("SignedArea() = %v, want 0", collinear.SignedArea())
	}
	if got, want := collinear.CenterOfMass(), collinear.Centroid(); !got.Equal(want) {
		t.Errorf("CenterOfMass() = %v, want Centroid() %v", got.Coordinates(), want.Coordinates())
	}
	if got := collinear.Centroid().Coordinates(); got != (Coordinate2D{Latitude: 1, Longitude: 1}) {
		t.Errorf("Centroid() = %v, want (1, 1)", got)
	}

	line := MustLineString(Point2D(0, 0), Point2D(2, 2), Point2D(4, 4))
	if got := line.CenterOfMass().Coordinates(); got != (Coordinate2D{Latitude: 2, Longitude: 2}) {
		t.Errorf("LineString CenterOfMass() = %v, want (2, 2)", got)
	}
}

func TestPolygonArea(t *testing.T) {
	outer := ring2D([2]float64{0, 0}, [2]float64{0, 4}, [2]float64{4, 4}, [2]float64{4, 0}, [2]float64{0, 0})
	hole := ring2D([2]float64{1, 1}, [2]float64{2, 1}, [2]float64{2, 2}, [2]float64{1, 2}, [2]float64{1, 1})
	poly := NewPolygon(outer, hole)

	if got := poly.Area(); got != 15 {
		t.Errorf("Area() = %v, want 15", got)
	}
	if !poly.IsClockwise() {
		t.Error("IsClockwise() = false for clockwise exterior")
	}
	if got := poly.SignedArea(); got != 15 {
		t.Errorf("SignedArea() = %v, want 15", got)
	}
	if got := NewPolygon(outer.Reversed(), hole).SignedArea(); got != -15 {
		t.Errorf("reversed SignedArea() = %v, want -15", got)
	}
	if got := poly.CenterOfMass().Coordinates(); got != (Coordinate2D{Latitude: 2, Longitude: 2}) {
		t.Errorf("CenterOfMass() = %v, want exterior center (2, 2)", got)
	}
}
