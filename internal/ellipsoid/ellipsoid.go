// Package ellipsoid implements the geographic/geocentric transforms on a
// reference ellipsoid. All angles are radians and all lengths metres.
package ellipsoid

import (
	"math"
)

// polarAxisTolerance is the distance from the polar axis, in metres, below
// which a geocentric position resolves to a pole.
const polarAxisTolerance = 1e-9

// Params describes a reference ellipsoid by semi-major axis and flattening.
type Params struct {
	A float64 // semi-major axis (metres)
	F float64 // flattening
}

// B returns the semi-minor axis.
func (p Params) B() float64 {
	return p.A * (1 - p.F)
}

// E2 returns the first eccentricity squared, f(2-f).
func (p Params) E2() float64 {
	return p.F * (2 - p.F)
}

// EPrime2 returns the second eccentricity squared, e²/(1-e²).
func (p Params) EPrime2() float64 {
	e2 := p.E2()
	return e2 / (1 - e2)
}

// PrimeVerticalRadius returns ν = a / √(1 − e²·sin²φ).
func (p Params) PrimeVerticalRadius(lat float64) float64 {
	s := math.Sin(lat)
	return p.A / math.Sqrt(1-p.E2()*s*s)
}

// ToGeocentric converts latitude, longitude (radians) and ellipsoidal height
// (metres) to earth-centred earth-fixed X, Y, Z.
func ToGeocentric(p Params, lat, lon, h float64) (x, y, z float64) {
	e2 := p.E2()
	nu := p.PrimeVerticalRadius(lat)
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	x = (nu + h) * cosLat * cosLon
	y = (nu + h) * cosLat * sinLon
	z = ((1-e2)*nu + h) * sinLat
	return x, y, z
}

// FromGeocentric converts earth-centred earth-fixed X, Y, Z to latitude,
// longitude (radians) and ellipsoidal height (metres) using Bowring's
// single-step auxiliary angle.
func FromGeocentric(p Params, x, y, z float64) (lat, lon, h float64) {
	a, b := p.A, p.B()
	e2 := p.E2()
	eps := p.EPrime2()

	lon = math.Atan2(y, x)
	pr := math.Hypot(x, y)

	if pr < polarAxisTolerance {
		lat = math.Pi / 2
		if z < 0 {
			lat = -lat
		}
		return lat, lon, math.Abs(z) - b
	}

	q := math.Atan2(z*a, pr*b)
	sinQ, cosQ := math.Sincos(q)
	lat = math.Atan2(z+eps*b*sinQ*sinQ*sinQ, pr-e2*a*cosQ*cosQ*cosQ)
	h = pr/math.Cos(lat) - p.PrimeVerticalRadius(lat)
	return lat, lon, h
}
