package geodesy

import (
	"fmt"
	"math"
)

// ValidateCoordinate checks that lat is within ±90° and lon within ±180°.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if math.IsNaN(lon) || lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// Validate checks that c lies in the valid geographic range without
// normalizing it.
func (c Coordinate2D) Validate() error {
	return ValidateCoordinate(float64(c.Latitude), float64(c.Longitude))
}

// Validate checks the horizontal components of c. Heights are unrestricted
// but must be finite.
func (c Coordinate3D) Validate() error {
	if err := c.Coordinate2D().Validate(); err != nil {
		return err
	}
	if h := float64(c.Altitude); math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("invalid coordinate: height %v is not finite", h)
	}
	return nil
}

// ValidatePoints validates every geographic 2D point, reporting the index of
// the first failure.
func ValidatePoints(points []Point[Coordinate2D]) error {
	for i, p := range points {
		if err := p.Coordinates().Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}
