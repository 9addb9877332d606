package pickr

// Point represents a position in host pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Clamp restricts p to the rectangle [0, W]×[0, H] of a track.
// Drag primitives use it before reporting a move.
func (p Point) Clamp(s Size) Point {
	return Point{X: clampTo(p.X, s.W), Y: clampTo(p.Y, s.H)}
}

func clampTo(x, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	switch {
	case x < 0:
		return 0
	case x > hi:
		return hi
	}
	return x
}

// Size is the extent of a track, popup or viewport.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Offset moves r by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}
