package paint

import "math"

// Point is a position in buffer pixel space.
// Coordinates stay fractional during interpolation and are truncated when a
// pixel is addressed.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Pixel truncates the point toward zero to integer pixel coordinates.
func (p Point) Pixel() (x, y int) {
	return int(p.X), int(p.Y)
}
