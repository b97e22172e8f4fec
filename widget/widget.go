// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements user interface controls driven by a
// retained widget tree. Widgets negotiate their size through the
// layout package and draw through a paint.Canvas.
package widget

import (
	"image"

	"github.com/rasterui/rasterui/layout"
	"github.com/rasterui/rasterui/paint"
)

// Event is an input or life-cycle notification delivered to a widget
// by its host.
type Event interface {
	ImplementsEvent()
}

// Widget is an element of the interface tree. The host invokes its
// methods on the single goroutine driving the frame: events and data
// updates first, then a layout pass, then a paint pass.
type Widget interface {
	// Event delivers an input or life-cycle notification.
	Event(e Event)

	// Update notifies the widget that the application data it was
	// built from changed. The data is opaque to widgets that do not
	// read it.
	Update(data any)

	// Layout answers the size the widget takes within cs.
	Layout(cs layout.Constraints) image.Point

	// Paint draws the widget into ctx. The reported error covers
	// this frame only; painting is retried naturally on the next
	// frame.
	Paint(ctx paint.Canvas) error
}
