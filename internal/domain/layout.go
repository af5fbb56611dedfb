package domain

// Point is a position in abstract grid units or, after centering, pixels.
type Point struct {
	X float64
	Y float64
}

// Midpoint returns the arithmetic mean of p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// LayoutPoint places the working day with the given index.
type LayoutPoint struct {
	Index int
	Point
}
