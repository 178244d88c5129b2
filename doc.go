// Package timecurve provides an embeddable interactive editor engine for
// time-based animation curves.
//
// # Overview
//
// timecurve models a single value-over-time curve made of linear and cubic
// Bezier segments, together with playback, time markers, a pannable and
// zoomable viewport, and bounded undo history. The engine owns all state;
// thin host shells feed it pointer and wheel events in canvas pixel space
// and read back images or values.
//
// # Quick Start
//
//	import "github.com/robinz-labs/timecurve"
//
//	// Create an editor (ed = editor convention)
//	ed := timecurve.New(
//		timecurve.WithTotalDuration(600),
//		timecurve.WithCanvasSize(960, 400),
//	)
//
//	// Observe the playhead
//	ed.On(timecurve.EventPlayheadTimeChange, func(ev timecurve.Event) {
//		fmt.Printf("t=%.2fs value=%.1f\n", ev.Time, ev.Value)
//	})
//
//	// Drive it from host events
//	ed.PointerDown(320, 180)
//	ed.PointerMove(340, 150)
//	ed.PointerUp()
//	ed.Play()
//
//	// Render a frame
//	ed.Draw()
//	ed.SavePNG("frame.png")
//
// # Architecture
//
// The library is organized into:
//   - Engine: Editor, ControlPoint, Viewport, history, events
//   - Renderer: a thin leaf painting engine state into a gg context
//   - Host shells: cmd/curverender (PNG frames), cmd/curvetui (terminal)
//
// # Coordinate System
//
// Pixel input uses standard computer graphics coordinates with the origin
// at the top-left of the canvas. The plotting rectangle sits inside fixed
// margins; the engine maps pixels to time (x) and percent value (y) and
// never stores pixel coordinates in the model.
//
// # Error Policy
//
// The engine fails soft: invalid input is clamped or ignored, imports
// report success with a boolean, and only rendering I/O returns errors.
package timecurve

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
