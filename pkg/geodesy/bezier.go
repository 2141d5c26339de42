package geodesy

import (
	"github.com/beetlebugorg/geodesy/internal/planar"
)

// Bezier fits a cubic Bezier spline through the points of ls and samples it
// into a new line string.
//
// sharpness in [0, 1] controls how far the control points sit from the
// segment ends: 1 reproduces the input, 0 gives the smoothest curve.
// resolution is the number of samples per segment. A closed line string
// produces a closed curve.
//
// Bezier panics if sharpness is outside [0, 1] or resolution is below 1.
// Components are interpolated raw; the result is not normalized, so a path
// across the antimeridian should be expressed in continuous longitudes.
func (ls LineString[C]) Bezier(sharpness float64, resolution int) LineString[C] {
	return LineString[C]{points: pointsOf[C](planar.Bezier(vecsOf(ls.points), sharpness, resolution))}
}

// BezierWith is Bezier with parameters from opts.
func (ls LineString[C]) BezierWith(opts BezierOptions) LineString[C] {
	return ls.Bezier(opts.Sharpness, opts.Resolution)
}

// Bezier fits a closed spline through the ring. See LineString.Bezier.
func (r LinearRing[C]) Bezier(sharpness float64, resolution int) LineString[C] {
	return r.LineString().Bezier(sharpness, resolution)
}

// Bezier samples the line. A single segment has no neighbours, so the curve
// is straight for every sharpness; only the sample count varies.
func (l Line[C]) Bezier(sharpness float64, resolution int) LineString[C] {
	return l.LineString().Bezier(sharpness, resolution)
}
