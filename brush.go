package paint

import "math/bits"

// Default brush settings.
const (
	DefaultRadius = 10
)

// DefaultBrushColor is the color a brush starts with and falls back to when
// a hex color cannot be parsed.
var DefaultBrushColor = Red

// Brush is a circular paint tool.
//
// A brush is mutated only between strokes, through its setters. Invalid
// settings are recovered locally: a non-positive radius is ignored and an
// unparsable hex color selects DefaultBrushColor.
type Brush struct {
	radius int
	color  RGBA
}

// NewBrush creates a brush with DefaultRadius and DefaultBrushColor.
func NewBrush() *Brush {
	return &Brush{radius: DefaultRadius, color: DefaultBrushColor}
}

// Radius returns the brush radius in pixels.
func (b *Brush) Radius() int { return b.radius }

// Color returns the brush color.
func (b *Brush) Color() RGBA { return b.color }

// SetColor replaces the brush color unconditionally.
func (b *Brush) SetColor(c RGBA) {
	b.color = c.Clamp()
}

// SetColorHex sets the brush color from a hex string such as "#FF5733" or
// "#FF573380". If the string cannot be parsed the color falls back to
// DefaultBrushColor and SetColorHex returns false.
func (b *Brush) SetColorHex(s string) bool {
	c, ok := ParseHex(s)
	if !ok {
		Logger().Warn("paint: invalid brush color, using default", "hex", s)
		b.color = DefaultBrushColor
		return false
	}
	b.color = c
	return true
}

// SetRadius sets the brush radius. Non-positive values are ignored and
// SetRadius returns false, keeping the previous radius.
func (b *Brush) SetRadius(r int) bool {
	if r <= 0 {
		Logger().Warn("paint: ignoring non-positive brush radius", "radius", r)
		return false
	}
	b.radius = r
	return true
}

// Contains reports whether pixel (px, py) lies inside the footprint of the
// brush centered at (cx, cy). The boundary at exactly the radius is inside.
// The test is exact for every int radius and coordinate.
func (b *Brush) Contains(px, py, cx, cy int) bool {
	return inDisc(absDiff(px, cx), absDiff(py, cy), b.radius)
}

// absDiff returns |a-b| without overflow.
func absDiff(a, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// inDisc reports dx²+dy² <= r² using 128-bit products.
func inDisc(dx, dy uint64, r int) bool {
	if r < 0 {
		return false
	}
	ur := uint64(r)
	if dx > ur || dy > ur {
		return false
	}
	// Both deltas are at most 2^63, so each square and their sum fit in
	// 128 bits.
	xh, xl := bits.Mul64(dx, dx)
	yh, yl := bits.Mul64(dy, dy)
	sl, carry := bits.Add64(xl, yl, 0)
	sh, _ := bits.Add64(xh, yh, carry)
	rh, rl := bits.Mul64(ur, ur)
	return sh < rh || (sh == rh && sl <= rl)
}
