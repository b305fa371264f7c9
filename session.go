package paint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/paint/internal/damage"
)

// State is the pointer state of a Session.
type State uint8

const (
	// Idle waits for a pointer-down.
	Idle State = iota
	// Stroking paints on every pointer-move until pointer-up.
	Stroking
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Stroking:
		return "Stroking"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Session is one editing session over an explicitly owned buffer.
//
// Platform glue translates pointer events into buffer-space points and calls
// OnPointerDown, OnPointerMove and OnPointerUp. Moves paint directly into the
// live buffer; only the net effect of a whole stroke is recorded, as a single
// command, when the pointer is released. A Session is not safe for
// concurrent use.
type Session struct {
	buf      *Buffer
	original []color.NRGBA
	brush    *Brush
	raster   Rasterizer
	history  *History
	damage   *damage.Tracker
	tileSize int

	state  State
	before []color.NRGBA
	last   Point
}

// NewSession creates a session with no buffer loaded.
func NewSession(opts ...SessionOption) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.brush == nil {
		o.brush = NewBrush()
	}
	return &Session{
		brush:    o.brush,
		raster:   Rasterizer{Strength: o.strength, Linear: o.linear},
		history:  NewHistory(o.historyLimit),
		tileSize: o.tileSize,
	}
}

// LoadBuffer replaces the live buffer with a copy of colors, a flattened
// row-major width×height image. The loaded image becomes the target of Reset
// and the undo history is cleared.
func (s *Session) LoadBuffer(colors []color.NRGBA, width, height int) error {
	if s.state == Stroking {
		return fmt.Errorf("load buffer: %w", ErrStrokeInProgress)
	}
	buf, err := NewBufferFrom(colors, width, height)
	if err != nil {
		return fmt.Errorf("load buffer: %w", err)
	}
	s.buf = buf
	s.original = buf.Snapshot()
	s.history.Clear()
	s.damage = damage.New(width, height, s.tileSize)
	s.damage.MarkAll()
	Logger().Info("paint: buffer loaded", "width", width, "height", height)
	return nil
}

// LoadImage loads img as the session buffer. See LoadBuffer.
func (s *Session) LoadImage(img image.Image) error {
	buf, err := BufferFromImage(img)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	return s.LoadBuffer(buf.pix, buf.width, buf.height)
}

// Buffer returns the live buffer, or nil before LoadBuffer.
func (s *Session) Buffer() *Buffer { return s.buf }

// Brush returns the session brush.
func (s *Session) Brush() *Brush { return s.brush }

// History returns the session command history.
func (s *Session) History() *History { return s.history }

// State returns the pointer state.
func (s *Session) State() State { return s.state }

// ExportBuffer returns a copy of the live pixels as a flattened row-major
// array, or nil before LoadBuffer.
func (s *Session) ExportBuffer() []color.NRGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.Snapshot()
}

// Image returns a copy of the live buffer as an image, or nil before
// LoadBuffer.
func (s *Session) Image() *image.NRGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.Image()
}

// SetBrushColor replaces the brush color.
func (s *Session) SetBrushColor(c RGBA) { s.brush.SetColor(c) }

// SetBrushColorHex sets the brush color from a hex string, falling back to
// DefaultBrushColor on a parse failure. See Brush.SetColorHex.
func (s *Session) SetBrushColorHex(hex string) bool { return s.brush.SetColorHex(hex) }

// SetBrushRadius sets the brush radius, ignoring non-positive values.
func (s *Session) SetBrushRadius(r int) bool { return s.brush.SetRadius(r) }

// SetBlendStrength sets the blend factor for subsequent dabs.
func (s *Session) SetBlendStrength(t float64) { s.raster.Strength = clampUnit(t) }

// BlendStrength returns the blend factor.
func (s *Session) BlendStrength() float64 { return clampUnit(s.raster.Strength) }

// OnPointerDown begins a stroke at p: it captures the "before" snapshot and
// stamps one dab so that a tap leaves a mark. A pointer-down during a stroke
// first commits the stroke in progress. Ignored before LoadBuffer.
func (s *Session) OnPointerDown(p Point) error {
	if s.buf == nil {
		return nil
	}
	if s.state == Stroking {
		if err := s.commit(); err != nil {
			return err
		}
	}
	s.before = s.buf.Snapshot()
	s.state = Stroking
	s.last = p
	s.dab(p)
	Logger().Debug("paint: stroke begin", "x", p.X, "y", p.Y, "radius", s.brush.radius)
	return nil
}

// OnPointerMove paints from the previous pointer position to p without gaps.
// Ignored while Idle.
func (s *Session) OnPointerMove(p Point) {
	if s.state != Stroking {
		return
	}
	s.damage.Mark(s.raster.paintSegment(s.buf, s.last, p, s.brush))
	s.last = p
}

// OnPointerUp finishes the stroke at p and records it as one undoable
// command. Ignored while Idle.
func (s *Session) OnPointerUp(p Point) error {
	if s.state != Stroking {
		return nil
	}
	if p != s.last {
		s.OnPointerMove(p)
	}
	return s.commit()
}

// commit closes the current stroke with whatever was painted so far.
func (s *Session) commit() error {
	before := s.before
	s.before = nil
	s.state = Idle

	cmd := NewPaintStroke(s.buf, before, s.buf.Snapshot())
	if err := s.history.Execute(cmd); err != nil {
		return fmt.Errorf("commit stroke: %w", err)
	}
	return nil
}

func (s *Session) dab(p Point) {
	s.damage.Mark(s.raster.PaintAt(s.buf, p, s.brush))
}

// Undo reverts the most recent stroke or reset. It returns false without an
// error when there is nothing to undo.
func (s *Session) Undo() (bool, error) {
	if s.buf == nil {
		return false, fmt.Errorf("undo: %w", ErrNoBuffer)
	}
	if s.state == Stroking {
		return false, fmt.Errorf("undo: %w", ErrStrokeInProgress)
	}
	ok, err := s.history.Undo()
	if err != nil {
		return false, fmt.Errorf("undo: %w", err)
	}
	if ok {
		s.damage.MarkAll()
	}
	return ok, nil
}

// Reset restores the image passed to LoadBuffer as an undoable command.
func (s *Session) Reset() error {
	if s.buf == nil {
		return fmt.Errorf("reset: %w", ErrNoBuffer)
	}
	if s.state == Stroking {
		return fmt.Errorf("reset: %w", ErrStrokeInProgress)
	}
	cmd := NewReset(s.buf, s.original, s.buf.Snapshot())
	if err := s.history.Execute(cmd); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.damage.MarkAll()
	Logger().Debug("paint: buffer reset", "id", cmd.ID())
	return nil
}

// Damage returns the regions of the buffer, in storage coordinates, that
// changed since the previous call, and forgets them. Collaborators upload
// only these regions to their display texture.
func (s *Session) Damage() []image.Rectangle {
	if s.damage == nil {
		return nil
	}
	return s.damage.Flush()
}
