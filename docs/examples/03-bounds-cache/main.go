package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/geodesy/pkg/geodesy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()

	cache := geodesy.NewBoundsCache[geodesy.Coordinate2D](geodesy.CacheOptions{
		MaxEntries: 2,
		Logger:     &logger,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(geodesy.NewCacheCollector(cache, "example", nil))

	tracks := []geodesy.LineString[geodesy.Coordinate2D]{
		geodesy.MustLineString(geodesy.Point2D(0, 0), geodesy.Point2D(1, 1)),
		geodesy.MustLineString(geodesy.Point2D(10, 10), geodesy.Point2D(11, 12)),
		geodesy.MustLineString(geodesy.Point2D(-5, 170), geodesy.Point2D(-6, -170)),
	}

	// Second pass hits for the two most recent tracks only
	for range 2 {
		for _, t := range tracks {
			if _, ok := cache.Get(t); !ok {
				log.Fatal("empty track")
			}
		}
	}

	stats := cache.Stats()
	fmt.Printf("Entries: %d/%d\n", stats.Entries, stats.MaxEntries)
	fmt.Printf("Hits: %d Misses: %d Evictions: %d\n", stats.Hits, stats.Misses, stats.Evictions)
	fmt.Printf("Hit ratio: %.2f\n", stats.HitRatio())

	families, err := reg.Gather()
	if err != nil {
		log.Fatal(err)
	}
	for _, mf := range families {
		fmt.Println(mf.GetName())
	}
}
