package main

import (
	"fmt"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
)

func main() {
	toECEF := geodesy.Geographic2DToGeocentric()

	boston := geodesy.Point2D(42.36, -71.06)
	ecef := geodesy.ConvertPoint[geodesy.Coordinate2D, geodesy.GeocentricCoordinate](toECEF, boston)

	c := ecef.Coordinates()
	fmt.Printf("ECEF: X=%.1f Y=%.1f Z=%.1f\n", c.X, c.Y, c.Z)

	// And back again
	back := toECEF.Unapply(c)
	fmt.Printf("Geographic: lat=%.6f lon=%.6f\n", back.Latitude, back.Longitude)

	// Height survives a 3D round trip
	conv := geodesy.GeographicToGeocentric{}
	summit := geodesy.Coordinate3D{Latitude: 44.27, Longitude: -71.30, Altitude: 1917}
	fmt.Printf("Height: %.3f m\n", conv.Unapply(conv.Apply(summit)).Altitude)

	// Positions are [lon, lat] with six decimals
	fmt.Printf("Position: %v\n", boston.Coordinates().Position())

	tagged := geodesy.Tag(boston)
	if _, err := geodesy.Untag[geodesy.GeocentricCoordinate](tagged); err != nil {
		fmt.Printf("Untag: %v\n", err)
	}
}
