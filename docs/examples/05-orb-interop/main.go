package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
	"github.com/beetlebugorg/geodesy/pkg/orbgeo"
	"github.com/paulmach/orb"
)

func main() {
	ring := orb.Ring{{-71.2, 42.2}, {-70.9, 42.2}, {-70.9, 42.5}, {-71.2, 42.5}, {-71.2, 42.2}}

	harbor, err := orbgeo.FromRing(ring)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Area: %.4f square degrees\n", harbor.Area())
	fmt.Printf("Centroid: %v\n", harbor.Centroid().Coordinates())

	// Crossing boxes split into two orb bounds
	box := geodesy.BoundingBoxFromCorners(geodesy.Point2D(-20, 170), geodesy.Point2D(-10, -170))
	if _, err := orbgeo.Bound(box); err != nil {
		fmt.Printf("Bound: %v\n", err)
	}
	for _, b := range orbgeo.Bounds(box) {
		fmt.Printf("Part: %v - %v\n", b.Min, b.Max)
	}
}
