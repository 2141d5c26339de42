package geodesy

import (
	"testing"
)

func TestBezierIdentity(t *testing.T) {
	paths := map[string]LineString[Coordinate2D]{
		"open":    MustLineString(Point2D(0, 0), Point2D(1, 2), Point2D(3, 1), Point2D(4, 4)),
		"closed":  MustLineString(Point2D(0, 0), Point2D(0, 1), Point2D(1, 1), Point2D(0, 0)),
		"segment": MustLineString(Point2D(10, 10), Point2D(11, 12)),
	}

	for name, ls := range paths {
		t.Run(name, func(t *testing.T) {
			got := ls.Bezier(1, 1)
			if got.Len() != ls.Len() {
				t.Fatalf("Bezier(1, 1) has %d points, want %d", got.Len(), ls.Len())
			}
			for i := 0; i < ls.Len(); i++ {
				if !got.At(i).Equal(ls.At(i)) {
					t.Errorf("point %d = %v, want %v", i, got.At(i).Coordinates(), ls.At(i).Coordinates())
				}
			}
		})
	}
}

func TestBezierClosedRing(t *testing.T) {
	ls := MustLineString(Point2D(0, 0), Point2D(0, 2), Point2D(2, 2), Point2D(2, 0))

	curve := ls.Closed().Bezier(0.3, 8)
	if !curve.First().Equal(curve.Last()) {
		t.Errorf("closed curve endpoints differ: %v vs %v", curve.First().Coordinates(), curve.Last().Coordinates())
	}
	if want := 4*8 + 1; curve.Len() != want {
		t.Errorf("Len() = %d, want %d", curve.Len(), want)
	}

	ring := MustLinearRing(ls.Closed().Points()...)
	fromRing := ring.Bezier(0.3, 8)
	if fromRing.Hash() != curve.Hash() {
		t.Error("LinearRing.Bezier differs from LineString.Bezier over the same points")
	}
}

func TestBezierSampleCount(t *testing.T) {
	ls := MustLineString(Point2D(0, 0), Point2D(1, 1), Point2D(2, 0))

	for _, res := range []int{1, 2, 5, 16} {
		if got, want := ls.Bezier(0.5, res).Len(), 2*res+1; got != want {
			t.Errorf("Bezier(0.5, %d).Len() = %d, want %d", res, got, want)
		}
	}

	opts := DefaultBezierOptions()
	if got, want := ls.BezierWith(opts).Len(), 2*opts.Resolution+1; got != want {
		t.Errorf("BezierWith(defaults).Len() = %d, want %d", got, want)
	}
}

func TestBezierKeepsEndpoints(t *testing.T) {
	ls := MustLineString(Point2D(0, 0), Point2D(1, 3), Point2D(4, 1))
	curve := ls.Bezier(0, 10)

	if !curve.First().Equal(ls.First()) {
		t.Errorf("First() = %v, want %v", curve.First().Coordinates(), ls.First().Coordinates())
	}
	if !curve.Last().Equal(ls.Last()) {
		t.Errorf("Last() = %v, want %v", curve.Last().Coordinates(), ls.Last().Coordinates())
	}
	// Segment starts are sampled at t = 0.
	if !curve.At(10).Equal(ls.At(1)) {
		t.Errorf("At(10) = %v, want %v", curve.At(10).Coordinates(), ls.At(1).Coordinates())
	}
}

func TestLineBezierIsStraight(t *testing.T) {
	l := NewLine(Point2D(0, 0), Point2D(4, 8))
	curve := l.Bezier(0, 4)

	if curve.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", curve.Len())
	}
	for i, p := range curve.Points() {
		c := p.Coordinates()
		if float64(c.Longitude) != 2*float64(c.Latitude) {
			t.Errorf("point %d = %v is off the line", i, c)
		}
	}
}

func TestBezierPreconditionsPanic(t *testing.T) {
	ls := MustLineString(Point2D(0, 0), Point2D(1, 1))

	tests := []struct {
		name       string
		sharpness  float64
		resolution int
	}{
		{"sharpness above one", 1.5, 4},
		{"negative sharpness", -0.1, 4},
		{"zero resolution", 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Bezier(%v, %d) did not panic", tt.sharpness, tt.resolution)
				}
			}()
			ls.Bezier(tt.sharpness, tt.resolution)
		})
	}
}
