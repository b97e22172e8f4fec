// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing protocol widgets paint through.

A Canvas records draw commands for one frame. Transform and clip state
is scoped with Save and Restore so a widget's drawing cannot leak into
its siblings. Pixel content enters a Canvas as an opaque Image handle
created from raw bytes; backends decide how the handle is stored.
*/
package paint

import (
	"fmt"
	"image"

	"github.com/rasterui/rasterui/f32"
)

// Format is the pixel format of raw image data.
type Format uint8

const (
	// RGB is 8-bit per channel RGB, 3 bytes per pixel, no alpha.
	RGB Format = iota
	// RGBA is 8-bit per channel alpha-premultiplied RGBA, 4 bytes
	// per pixel, matching image.RGBA.
	RGBA
)

// Interp is the interpolation mode for drawing a scaled image.
type Interp uint8

const (
	// Nearest samples the closest source pixel.
	Nearest Interp = iota
	// Bilinear interpolates linearly between the four closest
	// source pixels.
	Bilinear
	// CatmullRom interpolates with a Catmull-Rom kernel. Slowest,
	// sharpest results.
	CatmullRom
)

// Image is a backend handle to pixel content created with
// Canvas.NewImage.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() image.Point
}

// Canvas is the surface a widget paints into for one frame.
//
// Implementations are not safe for concurrent use; a Canvas belongs
// to the single goroutine driving the frame.
type Canvas interface {
	// Size returns the dimensions of the area being painted.
	Size() f32.Point

	// Save pushes the current transform and clip state.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()

	// Transform composes t onto the current transformation, so that
	// subsequent drawing applies t before the existing transform.
	Transform(t f32.Affine2D)
	// Clip intersects the clip area with r, mapped through the
	// current transform. Drawing outside the clip is discarded.
	Clip(r f32.Rectangle)

	// NewImage creates an image handle from raw pixel data in the
	// given format. The pixel slice must hold exactly
	// width*height*format.BytesPerPixel() bytes.
	NewImage(width, height int, pix []byte, format Format) (Image, error)
	// Draw draws img into the rectangle dst under the current
	// transform and clip.
	Draw(img Image, dst f32.Rectangle, mode Interp)
}

// BytesPerPixel returns the per-pixel byte width of the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGB:
		return 3
	default:
		return 4
	}
}

// NewRGBA converts raw pixel data into an *image.RGBA. It is the
// conversion shared by backends that store handles as Go images.
// It fails if the dimensions are negative or the pixel slice length
// does not match them.
func NewRGBA(width, height int, pix []byte, format Format) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("paint: negative image size %dx%d", width, height)
	}
	bpp := format.BytesPerPixel()
	if len(pix) != width*height*bpp {
		return nil, fmt.Errorf("paint: pixel data is %d bytes, want %d for %dx%d", len(pix), width*height*bpp, width, height)
	}
	img := image.NewRGBA(image.Rectangle{Max: image.Pt(width, height)})
	switch format {
	case RGB:
		for i, o := 0, 0; i < len(pix); i += 3 {
			img.Pix[o] = pix[i]
			img.Pix[o+1] = pix[i+1]
			img.Pix[o+2] = pix[i+2]
			img.Pix[o+3] = 0xff
			o += 4
		}
	default:
		copy(img.Pix, pix)
	}
	return img, nil
}
