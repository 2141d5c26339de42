package geodesy

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is matched by every construction error, so callers can
// test with errors.Is without caring which rule failed.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrTooFewPoints indicates a geometry built from fewer points (or parts)
// than its kind requires.
type ErrTooFewPoints struct {
	Kind string
	Got  int
	Min  int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("invalid geometry (%s): got %d, need at least %d", e.Kind, e.Got, e.Min)
}

// Is makes ErrTooFewPoints match ErrInvalidGeometry.
func (e *ErrTooFewPoints) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// ErrRingNotClosed indicates a linear ring whose first and last points differ.
type ErrRingNotClosed struct {
	First, Last string
}

func (e *ErrRingNotClosed) Error() string {
	return fmt.Sprintf("invalid geometry (LinearRing): first point %s differs from last point %s", e.First, e.Last)
}

// Is makes ErrRingNotClosed match ErrInvalidGeometry.
func (e *ErrRingNotClosed) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// ErrCRSMismatch indicates an operation between values tagged with different
// reference systems at run time.
type ErrCRSMismatch struct {
	Want, Got CRSID
}

func (e *ErrCRSMismatch) Error() string {
	return fmt.Sprintf("CRS mismatch: want %s, got %s", e.Want, e.Got)
}

// ErrInvalidCoordinate indicates a coordinate outside the valid geographic
// range.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrInvalidPosition indicates a position array of the wrong shape.
type ErrInvalidPosition struct {
	Len    int
	Reason string
}

func (e *ErrInvalidPosition) Error() string {
	return fmt.Sprintf("invalid position of length %d: %s", e.Len, e.Reason)
}

// ErrCrossesAntimeridian indicates a box that cannot be represented by a
// single min/max pair because it wraps past ±180°.
var ErrCrossesAntimeridian = errors.New("bounding box crosses the antimeridian")

// ErrEmptyShape indicates a shape without points where a bounding box is
// required.
var ErrEmptyShape = errors.New("shape has no points")
