// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ggcanvas adapts a github.com/fogleman/gg drawing context to
the paint.Canvas protocol, so hosts that already render through gg can
host widgets without a second rasterizer.

gg draws images with bilinear interpolation; the interpolation mode
passed to Draw is ignored.
*/
package ggcanvas

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/rasterui/rasterui/f32"
	"github.com/rasterui/rasterui/paint"
)

// Canvas implements paint.Canvas on a *gg.Context. It is not safe for
// concurrent use.
type Canvas struct {
	dc    *gg.Context
	depth int
}

type imageHandle struct {
	src *image.RGBA
}

func (h imageHandle) Size() image.Point {
	return h.src.Bounds().Size()
}

// New returns a Canvas drawing through dc. The caller keeps ownership
// of dc and its transform state outside Save/Restore scopes.
func New(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Size implements paint.Canvas.
func (c *Canvas) Size() f32.Point {
	return f32.Point{
		X: float32(c.dc.Width()),
		Y: float32(c.dc.Height()),
	}
}

// Save implements paint.Canvas.
func (c *Canvas) Save() {
	c.dc.Push()
	c.depth++
}

// Restore implements paint.Canvas. Restore without a matching Save is
// ignored; gg would panic on an empty stack.
func (c *Canvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.depth--
}

// Transform implements paint.Canvas. The transform is decomposed into
// gg's translate, scale and shear calls; a shear component with a
// zero scale on the same axis cannot be expressed and is dropped.
func (c *Canvas) Transform(t f32.Affine2D) {
	sx, hx, ox, hy, sy, oy := t.Elems()
	c.dc.Translate(float64(ox), float64(oy))
	c.dc.Scale(float64(sx), float64(sy))
	if (hx != 0 && sx != 0) || (hy != 0 && sy != 0) {
		var shx, shy float64
		if sx != 0 {
			shx = float64(hx / sx)
		}
		if sy != 0 {
			shy = float64(hy / sy)
		}
		c.dc.Shear(shx, shy)
	}
}

// Clip implements paint.Canvas. gg transforms path points as they are
// added, so the rectangle is clipped in the current transformed space.
func (c *Canvas) Clip(r f32.Rectangle) {
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.dc.Clip()
}

// NewImage implements paint.Canvas.
func (c *Canvas) NewImage(width, height int, pix []byte, format paint.Format) (paint.Image, error) {
	src, err := paint.NewRGBA(width, height, pix, format)
	if err != nil {
		return nil, err
	}
	return imageHandle{src: src}, nil
}

// Draw implements paint.Canvas.
func (c *Canvas) Draw(img paint.Image, dst f32.Rectangle, _ paint.Interp) {
	h, ok := img.(imageHandle)
	if !ok {
		return
	}
	sz := h.src.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 || dst.Empty() {
		return
	}
	c.dc.Push()
	c.dc.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	c.dc.Scale(float64(dst.Dx())/float64(sz.X), float64(dst.Dy())/float64(sz.Y))
	c.dc.DrawImage(h.src, 0, 0)
	c.dc.Pop()
}
