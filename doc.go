// Package paint is a touch-driven raster painting engine.
//
// # Overview
//
// A user drags a pointer across an image and a circular brush stamps color
// into an in-memory pixel buffer. Every completed stroke is recorded as one
// undoable command. The engine performs no I/O: collaborators supply pointer
// events and an initial image, and read back the edited pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	s := paint.NewSession(paint.WithBlendStrength(1))
//	if err := s.LoadImage(photo); err != nil {
//	    return err
//	}
//
//	s.SetBrushColorHex("#000000")
//	s.SetBrushRadius(4)
//
//	_ = s.OnPointerDown(paint.Pt(10, 10))
//	s.OnPointerMove(paint.Pt(60, 40))
//	_ = s.OnPointerUp(paint.Pt(60, 40))
//
//	_, _ = s.Undo() // back to the photo
//
// # Architecture
//
// The package is organized into:
//   - Brush: radius and color with a circular footprint test
//   - Buffer: row-major 8-bit pixels with snapshots
//   - Rasterizer and Interpolate: dab placement and gap-free strokes
//   - Command and History: snapshot-based undo without redo
//   - Session: the Idle/Stroking pointer state machine tying it together
//
// # Coordinate System
//
// Points use pointer coordinates: origin at the top-left, y growing down.
// Buffer rows are stored bottom-up, matching texture memory, so the
// rasterizer flips every row it writes. Buffer.At, Buffer.Set and the
// rectangles returned by Session.Damage use storage coordinates.
//
// # Logging
//
// paint is silent by default. Call SetLogger with a *slog.Logger to observe
// stroke, undo and reset events.
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
