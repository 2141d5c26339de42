package planar

import (
	"fmt"

	"github.com/beetlebugorg/geodesy/internal/numeric"
)

// Bezier fits a piecewise cubic Bezier curve through points and samples it.
//
// Each segment P[i]→P[i+1] gets two control points built from the midpoints of
// the segment and its two neighbours, pulled towards the segment ends by
// sharpness: 1 yields straight segments, 0 the smoothest curve. Closed input
// (first == last) wraps neighbours around; open input uses zero-length
// neighbours at the ends so the end tangents continue the end segments.
//
// Every segment contributes resolution samples over [0, 1); the final point
// of the path is appended once at the end.
//
// Bezier panics if len(points) < 2, sharpness is outside [0, 1] or resolution
// is below 1.
func Bezier(points []numeric.Vec, sharpness float64, resolution int) []numeric.Vec {
	if len(points) < 2 {
		panic(fmt.Sprintf("planar: bezier needs at least 2 points, got %d", len(points)))
	}
	if !(sharpness >= 0 && sharpness <= 1) {
		panic(fmt.Sprintf("planar: bezier sharpness %v outside [0, 1]", sharpness))
	}
	if resolution < 1 {
		panic(fmt.Sprintf("planar: bezier resolution %d below 1", resolution))
	}

	n := len(points)
	closed := IsClosed(points)
	smooth := (1 - sharpness) / 2

	// neighbour returns the point at i, wrapping for closed paths and
	// clamping for open ones. The closing point duplicates point 0, so a
	// closed path wraps over n-1 distinct points.
	neighbour := func(i int) numeric.Vec {
		if closed {
			m := n - 1
			return points[((i%m)+m)%m]
		}
		return points[min(max(i, 0), n-1)]
	}

	out := make([]numeric.Vec, 0, (n-1)*resolution+1)
	for i := 0; i < n-1; i++ {
		p0 := points[i]
		p1 := points[i+1]

		prevMid := midpoint(neighbour(i-1), p0)
		mid := midpoint(p0, p1)
		nextMid := midpoint(p1, neighbour(i+2))

		c0 := p0.Add(mid.Sub(prevMid).Scale(smooth))
		c1 := p1.Sub(nextMid.Sub(mid).Scale(smooth))

		for step := 0; step < resolution; step++ {
			t := float64(step) / float64(resolution)
			out = append(out, cubic(p0, c0, c1, p1, t))
		}
	}

	return append(out, points[n-1])
}

func midpoint(a, b numeric.Vec) numeric.Vec {
	return a.Lerp(b, 0.5)
}

// cubic evaluates the curve by repeated linear interpolation (de Casteljau).
func cubic(p0, c0, c1, p1 numeric.Vec, t float64) numeric.Vec {
	a := p0.Lerp(c0, t)
	b := c0.Lerp(c1, t)
	c := c1.Lerp(p1, t)

	d := a.Lerp(b, t)
	e := b.Lerp(c, t)

	return d.Lerp(e, t)
}
