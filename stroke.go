package paint

import (
	"image"
	"iter"
	"math"
)

// Interpolate returns the points of the segment from start to end, both
// inclusive, spaced at most one pixel apart. Painting every point leaves a
// continuous stroke no matter how fast the pointer moved.
//
// The sequence is lazy and restartable: each range over it walks the segment
// again from start. When start and end coincide, or the distance is not
// finite, it yields end exactly once.
func Interpolate(start, end Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		d := start.Distance(end)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			yield(end)
			return
		}

		n := int(math.Ceil(d))
		for i := 0; i < n; i++ {
			if !yield(start.Lerp(end, float64(i)/float64(n))) {
				return
			}
		}
		yield(end)
	}
}

// paintSegment continues a stroke from start to end and returns the union of
// the touched rectangles. start was stamped by the previous dab or segment,
// so it is skipped; a partial blend strength then accumulates once per
// sample rather than twice at every joint.
func (r *Rasterizer) paintSegment(buf *Buffer, start, end Point, brush *Brush) (dirty image.Rectangle) {
	first := true
	for p := range Interpolate(start, end) {
		if first {
			first = false
			if p == start {
				continue
			}
		}
		dirty = dirty.Union(r.PaintAt(buf, p, brush))
	}
	return dirty
}
