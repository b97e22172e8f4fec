// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software paint.Canvas that draws into an
*image.RGBA, for hosts without a GPU surface and for tests.
*/
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/rasterui/rasterui/f32"
	"github.com/rasterui/rasterui/paint"
)

// Canvas is a paint.Canvas backed by a destination image. It is not
// safe for concurrent use.
type Canvas struct {
	dst   *image.RGBA
	state drawState
	stack []drawState
}

type drawState struct {
	t    f32.Affine2D
	clip image.Rectangle
}

type imageHandle struct {
	src *image.RGBA
}

func (h imageHandle) Size() image.Point {
	return h.src.Bounds().Size()
}

// NewCanvas returns a Canvas drawing into dst. The caller keeps
// ownership of dst and reads it back after the frame.
func NewCanvas(dst *image.RGBA) *Canvas {
	return &Canvas{
		dst:   dst,
		state: drawState{clip: dst.Bounds()},
	}
}

// Size implements paint.Canvas.
func (c *Canvas) Size() f32.Point {
	sz := c.dst.Bounds().Size()
	return f32.Point{X: float32(sz.X), Y: float32(sz.Y)}
}

// Save implements paint.Canvas.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements paint.Canvas. Restore without a matching Save
// leaves the state untouched.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		logger().Debug("raster: Restore without matching Save")
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Transform implements paint.Canvas.
func (c *Canvas) Transform(t f32.Affine2D) {
	c.state.t = c.state.t.Mul(t)
}

// Clip implements paint.Canvas. The rectangle is mapped through the
// current transform and its outer pixel bounds are intersected with
// the current clip.
func (c *Canvas) Clip(r f32.Rectangle) {
	c.state.clip = c.state.clip.Intersect(boundPixels(c.state.t, r))
}

// NewImage implements paint.Canvas. The handle keeps a converted copy
// of the pixels, so one handle can be drawn many times.
func (c *Canvas) NewImage(width, height int, pix []byte, format paint.Format) (paint.Image, error) {
	src, err := paint.NewRGBA(width, height, pix, format)
	if err != nil {
		return nil, err
	}
	return imageHandle{src: src}, nil
}

// Draw implements paint.Canvas.
func (c *Canvas) Draw(img paint.Image, dst f32.Rectangle, mode paint.Interp) {
	h, ok := img.(imageHandle)
	if !ok {
		logger().Debug("raster: Draw with a foreign image handle")
		return
	}
	clip := c.state.clip
	if clip.Empty() {
		logger().Debug("raster: Draw clipped away entirely")
		return
	}
	sz := h.src.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 || dst.Empty() {
		return
	}

	// Map source pixels onto dst, then through the canvas transform.
	t := c.state.t.Mul(rectTransform(dst, sz))
	sx, hx, ox, hy, sy, oy := t.Elems()
	m := f64.Aff3{
		float64(sx), float64(hx), float64(ox),
		float64(hy), float64(sy), float64(oy),
	}
	target := c.dst.SubImage(clip).(*image.RGBA)
	interpolator(mode).Transform(target, m, h.src, h.src.Bounds(), draw.Over, nil)
}

func interpolator(mode paint.Interp) draw.Interpolator {
	switch mode {
	case paint.Nearest:
		return draw.NearestNeighbor
	case paint.CatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// rectTransform maps the pixel rectangle (0,0)-(size) onto dst.
func rectTransform(dst f32.Rectangle, size image.Point) f32.Affine2D {
	scale := f32.Point{
		X: dst.Dx() / float32(size.X),
		Y: dst.Dy() / float32(size.Y),
	}
	return f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(dst.Min)
}

// boundPixels returns the outer pixel bounds of r mapped through t.
func boundPixels(t f32.Affine2D, r f32.Rectangle) image.Rectangle {
	corners := [4]f32.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		r.Max,
	}
	min, max := t.Transform(corners[0]), t.Transform(corners[0])
	for _, corner := range corners[1:] {
		p := t.Transform(corner)
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return image.Rect(
		int(math.Floor(float64(min.X))), int(math.Floor(float64(min.Y))),
		int(math.Ceil(float64(max.X))), int(math.Ceil(float64(max.Y))),
	)
}
