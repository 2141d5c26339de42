package geodesy

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate2D
		want float64
	}{
		{"one degree of longitude on the equator", Coordinate2D{}, Coordinate2D{Longitude: 1}, 111195.0802335329},
		{"same point", Coordinate2D{Latitude: 42, Longitude: -71}, Coordinate2D{Latitude: 42, Longitude: -71}, 0},
		{"across the antimeridian", Coordinate2D{Longitude: 179.5}, Coordinate2D{Longitude: -179.5}, 111195.0802335329},
		{"pole to pole", Coordinate2D{Latitude: 90}, Coordinate2D{Latitude: -90}, math.Pi * 6371008.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(tt.a.DistanceTo(tt.b))
			if math.Abs(got-tt.want) > 1e-6*math.Max(1, tt.want) {
				t.Errorf("DistanceTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGreatCircleLength(t *testing.T) {
	ls := MustLineString(Point2D(0, 0), Point2D(0, 1), Point2D(0, 2))
	got := float64(GreatCircleLength(ls))
	if want := 2 * 111195.0802335329; math.Abs(got-want) > 1e-3 {
		t.Errorf("GreatCircleLength() = %v, want %v", got, want)
	}
}

func TestLatLngInterop(t *testing.T) {
	c := Coordinate2D{Latitude: 37.5, Longitude: -122.25}
	back := Coordinate2DFromLatLng(c.LatLng())
	if math.Abs(float64(back.Latitude-c.Latitude)) > 1e-12 || math.Abs(float64(back.Longitude-c.Longitude)) > 1e-12 {
		t.Errorf("Coordinate2DFromLatLng(LatLng()) = %v, want %v", back, c)
	}

	if got := Coordinate2DFromLatLng(s2.LatLngFromDegrees(0, 90)); math.Abs(float64(got.Longitude)-90) > 1e-12 {
		t.Errorf("Coordinate2DFromLatLng(0, 90) = %v", got)
	}
}

func TestGeocentricVector(t *testing.T) {
	g := GeocentricCoordinate{X: 3, Y: 4, Z: 12}
	if v := g.Vector(); v != (r3.Vector{X: 3, Y: 4, Z: 12}) {
		t.Errorf("Vector() = %v", v)
	}
	if got := GeocentricFromVector(r3.Vector{X: 1, Y: 2, Z: 3}); got != (GeocentricCoordinate{X: 1, Y: 2, Z: 3}) {
		t.Errorf("GeocentricFromVector() = %v", got)
	}
	if got := g.ChordDistance(GeocentricCoordinate{}); got != 13 {
		t.Errorf("ChordDistance() = %v, want 13", got)
	}
}
