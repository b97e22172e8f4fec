// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the constraint protocol widgets negotiate
their size through.

A widget is laid out with a set of Constraints and must answer with a
size within them. A Max extent of Inf marks an axis as unbounded: the
parent leaves the widget free to pick its own size along that axis.
*/
package layout

import (
	"image"
	"math"

	"github.com/rasterui/rasterui/f32"
)

// Inf is the maximum value a layout constraint extent can hold. A
// constraint whose Max is Inf along an axis is unbounded along it.
const Inf = math.MaxInt

// Constraints represent the minimum and maximum sizes acceptable
// for a widget.
type Constraints struct {
	Min, Max image.Point
}

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// BoundedWidth reports whether the horizontal extent of c is finite.
func (c Constraints) BoundedWidth() bool {
	return c.Max.X < Inf
}

// BoundedHeight reports whether the vertical extent of c is finite.
func (c Constraints) BoundedHeight() bool {
	return c.Max.Y < Inf
}

// FPt converts an point to a f32.Point.
func FPt(p image.Point) f32.Point {
	return f32.Point{
		X: float32(p.X), Y: float32(p.Y),
	}
}
