package geodesy

import (
	"strconv"
	"testing"
)

// createTrack builds a line string zig-zagging across the antimeridian.
func createTrack(n int) LineString[Coordinate2D] {
	points := make([]Point[Coordinate2D], n)
	for i := range points {
		lon := Longitude(170 + float64(i%40)/2)
		points[i] = Point2D(Latitude(-60+float64(i%120)), lon.Valid())
	}
	return MustLineString(points...)
}

// BenchmarkGeographicBoundingBox measures the antimeridian-aware box on a
// long track.
func BenchmarkGeographicBoundingBox(b *testing.B) {
	track := createTrack(10000)
	points := track.Points()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GeographicBoundingBox(points)
	}
}

// BenchmarkBoundsCache_Hit measures a cached lookup, which still hashes the
// shape.
func BenchmarkBoundsCache_Hit(b *testing.B) {
	track := createTrack(10000)
	cache := NewBoundsCache[Coordinate2D](DefaultCacheOptions())
	cache.Get(track)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(track)
	}
}

func BenchmarkBezier(b *testing.B) {
	track := createTrack(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = track.Bezier(0.5, 16)
	}
}

func BenchmarkGeocentricRoundTrip(b *testing.B) {
	conv := GeographicToGeocentric{}
	c := Coordinate3D{Latitude: 42.35, Longitude: -71.05, Altitude: 30}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = conv.Unapply(conv.Apply(c))
	}
}

func BenchmarkIndexSearch(b *testing.B) {
	idx := NewIndex[Coordinate2D](DefaultIndexOptions())
	for i := 0; i < 10000; i++ {
		lat := Latitude(-80 + float64(i%160))
		lon := Longitude(-180 + float64(i%360))
		_ = idx.Insert("pt-"+strconv.Itoa(i), Point2D(lat, lon))
	}
	viewport := box2D(-10, 170, 10, -170)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Search(viewport)
	}
}
