// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"github.com/rasterui/rasterui/f32"
	"github.com/rasterui/rasterui/layout"
	"github.com/rasterui/rasterui/paint"
	"github.com/rasterui/rasterui/pixel"
)

// Image is a widget that displays a pixel buffer. It ignores events
// and data updates; its appearance depends only on the buffer and the
// fit policy.
type Image struct {
	src pixel.Buffer
	fit Fit
}

// RenderError reports a paint context failure while drawing an Image.
// The draw is skipped for the frame; the widget retries on the next
// paint pass.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "widget: image render: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewImage returns an Image widget displaying src. The content is
// stretched to the allotted space; use SetFit to change the policy.
func NewImage(src pixel.Buffer) *Image {
	return &Image{src: src}
}

// SetFit sets how the content scales to the allotted space.
func (im *Image) SetFit(fit Fit) {
	im.fit = fit
}

// Event implements Widget. Image ignores all notifications.
func (im *Image) Event(Event) {}

// Update implements Widget. Image does not read application data.
func (im *Image) Update(any) {}

// Layout implements Widget. With a bounded width the widget greedily
// takes the maximum allotted size and defers fitting to paint time;
// in flexible space it answers its constrained intrinsic size.
func (im *Image) Layout(cs layout.Constraints) image.Point {
	if cs.BoundedWidth() {
		return cs.Max
	}
	return cs.Constrain(im.src.Size())
}

// Paint implements Widget. It resolves the fit policy against the
// canvas size and issues a single scaled draw of the buffer, clipped
// to the allotted rectangle for every policy that can overflow it.
// An empty buffer paints nothing.
func (im *Image) Paint(ctx paint.Canvas) error {
	sz := im.src.Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil
	}
	avail := ctx.Size()
	scale, offset := im.fit.scale(avail, layout.FPt(sz))
	if !drawable(scale) || !finite(offset) {
		return nil
	}

	ctx.Save()
	defer ctx.Restore()

	// Contain cannot overflow the box; every other policy can.
	if im.fit != Contain {
		ctx.Clip(f32.Rectangle{Max: avail})
	}
	ctx.Transform(f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(offset))

	img, err := ctx.NewImage(sz.X, sz.Y, im.src.Pix(), paint.RGB)
	if err != nil {
		return &RenderError{Err: err}
	}
	ctx.Draw(img, f32.Rectangle{Max: layout.FPt(sz)}, paint.Bilinear)
	return nil
}

// drawable reports whether a resolved scale produces visible,
// well-defined output.
func drawable(scale f32.Point) bool {
	return scale.X > 0 && scale.Y > 0 && finite(scale)
}

func finite(p f32.Point) bool {
	return !math.IsInf(float64(p.X), 0) && !math.IsNaN(float64(p.X)) &&
		!math.IsInf(float64(p.Y), 0) && !math.IsNaN(float64(p.Y))
}
