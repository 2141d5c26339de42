package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
)

func main() {
	idx := geodesy.NewIndex[geodesy.Coordinate2D](geodesy.DefaultIndexOptions())

	shapes := map[string]geodesy.Boundable[geodesy.Coordinate2D]{
		"boston":   geodesy.Point2D(42.36, -71.06),
		"portland": geodesy.Point2D(43.66, -70.26),
		"fiji":     geodesy.Point2D(-17.7, 178.0),
		"samoa":    geodesy.Point2D(-13.8, -172.1),
	}
	for id, shape := range shapes {
		if err := idx.Insert(id, shape); err != nil {
			log.Fatal(err)
		}
	}

	// Viewport over Boston Harbor
	harbor := geodesy.BoundingBoxFromCorners(
		geodesy.Point2D(42.0, -71.5),
		geodesy.Point2D(42.5, -70.5),
	)
	fmt.Printf("Harbor: %v\n", idx.Search(harbor))

	// Viewport wrapping from 170°E to 170°W
	pacific := geodesy.BoundingBoxFromCorners(
		geodesy.Point2D(-20, 170),
		geodesy.Point2D(-10, -170),
	)
	fmt.Printf("Pacific: %v\n", idx.Search(pacific))

	// Two closest to Boston
	fmt.Printf("Nearest: %v\n", idx.Nearest(geodesy.Point2D(42.36, -71.06), 2))
}
