// SPDX-License-Identifier: Unlicense OR MIT

// Command imageview renders an image file through the widget pipeline
// and writes the result as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/rasterui/rasterui/layout"
	"github.com/rasterui/rasterui/pixel"
	"github.com/rasterui/rasterui/raster"
	"github.com/rasterui/rasterui/widget"
)

var fits = map[string]widget.Fit{
	"fill":      widget.Fill,
	"contain":   widget.Contain,
	"cover":     widget.Cover,
	"fitwidth":  widget.FitWidth,
	"fitheight": widget.FitHeight,
	"scaledown": widget.ScaleDown,
	"unscaled":  widget.Unscaled,
}

func main() {
	var (
		in      = flag.String("in", "", "image file to display")
		out     = flag.String("out", "out.png", "output PNG file")
		width   = flag.Int("width", 640, "canvas width")
		height  = flag.Int("height", 480, "canvas height")
		fitName = flag.String("fit", "contain", "fit policy: fill, contain, cover, fitwidth, fitheight, scaledown or unscaled")
		verbose = flag.Bool("v", false, "log draw diagnostics")
	)
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	fit, ok := fits[strings.ToLower(*fitName)]
	if !ok {
		log.Fatalf("unknown fit policy %q", *fitName)
	}
	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	buf, err := pixel.Open(*in)
	if err != nil {
		log.Fatal(err)
	}
	im := widget.NewImage(buf)
	im.SetFit(fit)

	size := im.Layout(layout.Exact(image.Pt(*width, *height)))
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if err := im.Paint(raster.NewCanvas(dst)); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatal(err)
	}
}
