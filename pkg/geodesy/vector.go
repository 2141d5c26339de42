package geodesy

import (
	"github.com/beetlebugorg/geodesy/internal/numeric"
)

// Vector is the difference between two points of the same CRS.
// Components are raw and never normalized.
type Vector[C Coordinates[C]] struct {
	delta numeric.Vec
}

// NewVector builds a vector from a raw coordinate tuple.
func NewVector[C Coordinates[C]](c C) Vector[C] {
	return Vector[C]{delta: numeric.Vec(c.Components())}
}

// Coordinates returns the vector components as a coordinate tuple.
func (v Vector[C]) Coordinates() C {
	return fromComponents[C](v.delta)
}

// Components returns the raw components in axis order.
func (v Vector[C]) Components() [3]float64 {
	return v.delta
}

// Add returns v + o.
func (v Vector[C]) Add(o Vector[C]) Vector[C] {
	return Vector[C]{delta: v.delta.Add(o.delta)}
}

// Sub returns v − o.
func (v Vector[C]) Sub(o Vector[C]) Vector[C] {
	return Vector[C]{delta: v.delta.Sub(o.delta)}
}

// Scale multiplies v by k.
func (v Vector[C]) Scale(k float64) Vector[C] {
	return Vector[C]{delta: v.delta.Scale(k)}
}

// Divide divides v by k.
func (v Vector[C]) Divide(k float64) Vector[C] {
	return Vector[C]{delta: v.delta.Div(k)}
}

// Negate returns −v.
func (v Vector[C]) Negate() Vector[C] {
	return v.Scale(-1)
}

// Length returns the Euclidean norm over the CRS axes, in axis units.
func (v Vector[C]) Length() float64 {
	return v.delta.Norm(crsOf[C]().Dimension())
}

// IsZero reports whether every component is zero.
func (v Vector[C]) IsZero() bool {
	return v.delta == numeric.Vec{}
}

// Size is a non-negative per-axis extent.
type Size[C Coordinates[C]] struct {
	extent numeric.Vec
}

// NewSize returns the absolute extents of v.
func NewSize[C Coordinates[C]](v Vector[C]) Size[C] {
	return Size[C]{extent: v.delta.Abs()}
}

// Components returns the extents in axis order.
func (s Size[C]) Components() [3]float64 {
	return s.extent
}

// Coordinates returns the extents as a coordinate tuple.
func (s Size[C]) Coordinates() C {
	return fromComponents[C](s.extent)
}

// Vector returns s as a vector.
func (s Size[C]) Vector() Vector[C] {
	return Vector[C]{delta: s.extent}
}

// IsZero reports whether every extent is zero.
func (s Size[C]) IsZero() bool {
	return s.extent == numeric.Vec{}
}
