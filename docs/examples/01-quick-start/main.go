package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
)

func main() {
	// A short track across the antimeridian near Fiji
	track, err := geodesy.NewLineString(
		geodesy.Point2D(-16.5, 179.2),
		geodesy.Point2D(-16.9, 179.9),
		geodesy.Point2D(-17.1, -179.6),
		geodesy.Point2D(-17.4, -178.8),
	)
	if err != nil {
		log.Fatal(err)
	}

	box, ok := track.BoundingBox()
	if !ok {
		log.Fatal("empty track")
	}

	fmt.Printf("West: %.1f East: %.1f\n", box.West(), box.East())
	fmt.Printf("South: %.1f North: %.1f\n", box.South(), box.North())
	fmt.Printf("Crosses antimeridian: %v\n", box.CrossesAntimeridian())

	// The naive box spans the whole globe instead
	naive, _ := track.NaiveBoundingBox()
	fmt.Printf("Naive width: %.1f degrees\n", naive.Size().Coordinates().Longitude)

	fmt.Printf("Great circle length: %.0f m\n", geodesy.GreatCircleLength(track))
}
