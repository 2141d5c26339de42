// Package planar holds the raw-coordinate kernels behind rings and line
// strings: shoelace area, centroids, ring closure and Bezier sampling.
//
// Every function works on the first two components of numeric.Vec and
// treats the slice as read-only.
package planar

import (
	"github.com/beetlebugorg/geodesy/internal/numeric"
)

// IsClosed reports whether the first and last points are identical.
func IsClosed(points []numeric.Vec) bool {
	if len(points) < 2 {
		return false
	}
	return points[0] == points[len(points)-1]
}

// Close returns points with the first point appended if the sequence is not
// already closed. The input slice is never modified.
func Close(points []numeric.Vec) []numeric.Vec {
	if len(points) == 0 || IsClosed(points) {
		return points
	}

	closed := make([]numeric.Vec, len(points)+1)
	copy(closed, points)
	closed[len(points)] = points[0]
	return closed
}

// ShoelaceArea returns the signed area of the ring with the conventional
// orientation: positive when the ring turns counter-clockwise with the first
// component as abscissa. An unclosed ring is closed implicitly.
func ShoelaceArea(points []numeric.Vec) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// Centroid returns the arithmetic mean of the points.
func Centroid(points []numeric.Vec) numeric.Vec {
	return numeric.Mean(points)
}

// CenterOfMass returns the area-weighted centroid of the ring. The points are
// translated so the first one sits at the origin before accumulating, which
// keeps the cross products small. Rings with zero signed area fall back to
// Centroid.
func CenterOfMass(points []numeric.Vec) numeric.Vec {
	if len(points) == 0 {
		return numeric.Vec{}
	}

	offset := points[0]
	shifted := make([]numeric.Vec, len(points))
	for i, p := range points {
		shifted[i] = p.Sub(offset)
	}

	area := ShoelaceArea(shifted)
	if area == 0 {
		return Centroid(points)
	}

	n := len(shifted)
	var cx, cy float64
	for i := 0; i < n; i++ {
		a := shifted[i]
		b := shifted[(i+1)%n]
		cross := a[0]*b[1] - b[0]*a[1]
		cx += (a[0] + b[0]) * cross
		cy += (a[1] + b[1]) * cross
	}

	center := Centroid(points)
	center[0] = cx/(6*area) + offset[0]
	center[1] = cy/(6*area) + offset[1]
	return center
}
