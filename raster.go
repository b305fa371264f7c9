package paint

import (
	"image"

	"github.com/gogpu/paint/internal/blend"
)

// DefaultBlendStrength replaces covered pixels with the brush color.
const DefaultBlendStrength = 1.0

// Rasterizer stamps a brush footprint into a buffer.
//
// Pointer coordinates arrive with y growing downward while buffer rows are
// stored bottom-up (row 0 is visually at the bottom), so every row is flipped
// before the footprint test and the write.
type Rasterizer struct {
	// Strength is the blend factor in [0, 1] used to mix the brush color
	// into existing pixels. Values outside the range are clamped.
	// It is independent of the brush radius.
	Strength float64

	// Linear blends color channels in linear light instead of sRGB.
	Linear bool
}

// NewRasterizer creates a rasterizer with the given blend strength.
func NewRasterizer(strength float64) *Rasterizer {
	return &Rasterizer{Strength: strength}
}

// PaintAt blends the brush color into every pixel of buf inside the brush
// footprint centered at center. The center is truncated to a pixel.
//
// The bounding box [cx-r, cx+r) × [cy-r, cy+r) is clamped to the buffer, so
// PaintAt never addresses a pixel outside buf. It returns the rectangle of
// storage rows and columns it visited; the rectangle is empty when the box
// misses the buffer entirely. Any radius is handled, including radii far
// larger than the buffer.
func (r *Rasterizer) PaintAt(buf *Buffer, center Point, brush *Brush) image.Rectangle {
	w, h := buf.width, buf.height
	rad := brush.radius
	cx, cy := center.Pixel()

	x0, x1 := clampSpan(cx, rad, w)
	y0, y1 := clampSpan(cy, rad, h)
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}
	}

	mix := blend.Select(r.Linear)
	src := brush.color.NRGBA()

	for x := x0; x < x1; x++ {
		dx := absDiff(x, cx)
		for y := y0; y < y1; y++ {
			// Flipping both the pixel and the center keeps their
			// vertical distance at |y-cy|.
			if !inDisc(dx, absDiff(y, cy), rad) {
				continue
			}
			i := (h-y-1)*w + x
			buf.pix[i] = mix(buf.pix[i], src, r.Strength)
		}
	}

	return image.Rect(x0, h-y1, x1, h-y0)
}

// clampSpan returns [max(0, c-r), min(n, c+r)) for r > 0 without
// overflowing for large c or r.
func clampSpan(c, r, n int) (lo, hi int) {
	lo, hi = 0, n
	if c > r {
		lo = c - r
	}
	if c < n-r {
		hi = c + r
	}
	return lo, hi
}
