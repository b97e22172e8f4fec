// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pixel holds decoded raster images as raw RGB pixel buffers.

A Buffer is decoded once, at construction, and is immutable afterwards.
Decoding supports the formats registered with the standard image
package; PNG, JPEG and GIF are registered here, and BMP, TIFF and WebP
are registered through golang.org/x/image.
*/
package pixel

import (
	"bytes"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Buffer is an immutable decoded image: its dimensions and tightly
// packed RGB pixels, 3 bytes per pixel, in row-major order.
//
// The zero value is the canonical empty buffer. Drawing an empty
// buffer is a no-op, not an error.
type Buffer struct {
	width, height int
	pix           []byte
}

// DecodeError reports a failure to decode an image into a Buffer.
type DecodeError struct {
	// Path is the file the image was read from, if any.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return "pixel: decode " + e.Path + ": " + e.Err.Error()
	}
	return "pixel: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Empty returns the empty zero-sized buffer.
func Empty() Buffer {
	return Buffer{}
}

// Decode decodes an encoded image into a Buffer. It fails with a
// *DecodeError if encoded is not a well-formed image in a registered
// format.
func Decode(encoded []byte) (Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		return Buffer{}, &DecodeError{Err: err}
	}
	return fromImage(img), nil
}

// Open reads and decodes the image file at path. It fails with a
// *DecodeError if the file is missing, unreadable or not a
// well-formed image.
func Open(path string) (Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Buffer{}, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Buffer{}, &DecodeError{Path: path, Err: err}
	}
	return fromImage(img), nil
}

// FromImage converts a decoded image.Image into a Buffer.
func FromImage(img image.Image) Buffer {
	if img == nil {
		return Buffer{}
	}
	return fromImage(img)
}

// Size returns the buffer dimensions in pixels.
func (b Buffer) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// Pix returns the raw RGB pixels. The returned slice is shared with
// the buffer and must not be modified.
func (b Buffer) Pix() []byte {
	return b.pix
}

func fromImage(img image.Image) Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return Buffer{}
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) || rgba.Stride != w*4 {
		rgba = image.NewRGBA(image.Rectangle{Max: image.Pt(w, h)})
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	pix := make([]byte, w*h*3)
	for i, o := 0, 0; o < len(pix); i += 4 {
		pix[o] = rgba.Pix[i]
		pix[o+1] = rgba.Pix[i+1]
		pix[o+2] = rgba.Pix[i+2]
		o += 3
	}
	return Buffer{width: w, height: h, pix: pix}
}
