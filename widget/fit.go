// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/rasterui/rasterui/f32"
)

// Fit scales content to fit the space a widget is allotted.
type Fit uint8

const (
	// Fill stretches the content to the allotted space and does not
	// preserve aspect-ratio.
	Fill Fit = iota
	// Contain scales the content as large as possible without
	// cropping and preserves aspect-ratio.
	Contain
	// Cover scales the content to cover the allotted space and
	// preserves aspect-ratio.
	Cover
	// FitWidth scales the content to match the allotted width on
	// both axes, preserving aspect-ratio and cropping or
	// letterboxing vertically.
	FitWidth
	// FitHeight scales the content to match the allotted height on
	// both axes, preserving aspect-ratio and cropping or
	// letterboxing horizontally.
	FitHeight
	// ScaleDown scales the content smaller without cropping when it
	// exceeds the allotted space, and never scales up.
	// It preserves aspect-ratio.
	ScaleDown
	// Unscaled does not alter the scale of the content.
	Unscaled
)

// scale resolves the fit of an intrinsic content size into an
// available box. It returns the per-axis scale vector and the offset
// that centers the scaled content within the box on both axes.
//
// A zero intrinsic dimension yields a zero scale instead of an
// unbounded one; callers skip the draw for it.
func (fit Fit) scale(available, intrinsic f32.Point) (scale, offset f32.Point) {
	if fit == Unscaled {
		scale = f32.Point{X: 1, Y: 1}
		return scale, center(available, intrinsic, scale)
	}
	if intrinsic.X <= 0 || intrinsic.Y <= 0 {
		return f32.Point{}, f32.Point{}
	}

	scale = f32.Point{
		X: available.X / intrinsic.X,
		Y: available.Y / intrinsic.Y,
	}

	switch fit {
	case Contain:
		if scale.Y < scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
	case Cover:
		if scale.Y > scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
	case FitWidth:
		scale.Y = scale.X
	case FitHeight:
		scale.X = scale.Y
	case ScaleDown:
		if scale.Y < scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
		// The content would need to be scaled up; leave it as is.
		if scale.X > 1 {
			scale = f32.Point{X: 1, Y: 1}
		}
	case Fill:
	}

	return scale, center(available, intrinsic, scale)
}

// center splits the difference between the box and the scaled content
// evenly on each side. Content larger than the box gets a negative
// offset and is cropped symmetrically.
func center(available, intrinsic, scale f32.Point) f32.Point {
	return f32.Point{
		X: (available.X - intrinsic.X*scale.X) / 2,
		Y: (available.Y - intrinsic.Y*scale.Y) / 2,
	}
}
