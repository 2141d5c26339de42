package planar

import (
	"math"
	"testing"

	"github.com/beetlebugorg/geodesy/internal/numeric"
)

func square(x, y, side float64) []numeric.Vec {
	return []numeric.Vec{
		{x, y},
		{x + side, y},
		{x + side, y + side},
		{x, y + side},
		{x, y},
	}
}

func TestClose(t *testing.T) {
	open := []numeric.Vec{{0, 0}, {1, 0}, {1, 1}}
	closed := Close(open)

	if len(closed) != 4 {
		t.Fatalf("Close() returned %d points, want 4", len(closed))
	}
	if closed[3] != open[0] {
		t.Errorf("closing point = %v, want %v", closed[3], open[0])
	}
	if len(open) != 3 {
		t.Errorf("Close() modified its input")
	}

	again := Close(closed)
	if len(again) != len(closed) {
		t.Errorf("Close() on closed ring appended a point")
	}

	if got := Close(nil); got != nil {
		t.Errorf("Close(nil) = %v, want nil", got)
	}
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name   string
		points []numeric.Vec
		want   bool
	}{
		{"empty", nil, false},
		{"single", []numeric.Vec{{1, 1}}, false},
		{"open", []numeric.Vec{{0, 0}, {1, 1}}, false},
		{"closed", square(0, 0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClosed(tt.points); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShoelaceArea(t *testing.T) {
	tests := []struct {
		name   string
		points []numeric.Vec
		want   float64
	}{
		{"unit square ccw", square(0, 0, 1), 1},
		{"unit square reversed", reverse(square(0, 0, 1)), -1},
		{"unclosed triangle", []numeric.Vec{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"collinear", []numeric.Vec{{0, 0}, {1, 1}, {2, 2}, {0, 0}}, 0},
		{"too few points", []numeric.Vec{{0, 0}, {1, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShoelaceArea(tt.points); got != tt.want {
				t.Errorf("ShoelaceArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterOfMass(t *testing.T) {
	got := CenterOfMass(square(10, 20, 2))
	if math.Abs(got[0]-11) > 1e-12 || math.Abs(got[1]-21) > 1e-12 {
		t.Errorf("CenterOfMass(square) = %v, want [11 21]", got)
	}

	// An L-shape, whose centroid differs from the vertex mean.
	l := []numeric.Vec{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}, {0, 0}}
	got = CenterOfMass(l)
	want := 2.5 / 3
	if math.Abs(got[0]-want) > 1e-12 || math.Abs(got[1]-want) > 1e-12 {
		t.Errorf("CenterOfMass(L) = %v, want [%v %v]", got, want, want)
	}
}

func TestCenterOfMassDegenerate(t *testing.T) {
	line := []numeric.Vec{{0, 0}, {1, 1}, {2, 2}, {0, 0}}
	got := CenterOfMass(line)
	want := Centroid(line)
	if got != want {
		t.Errorf("CenterOfMass(collinear) = %v, want centroid %v", got, want)
	}

	if got := CenterOfMass(nil); got != (numeric.Vec{}) {
		t.Errorf("CenterOfMass(nil) = %v, want zero", got)
	}
}

func reverse(points []numeric.Vec) []numeric.Vec {
	out := make([]numeric.Vec, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
