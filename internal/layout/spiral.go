package layout

import "github.com/TheIllusionist93/DOCTOR/internal/domain"

// direction order of a clockwise turn in screen coordinates (y down).
var turns = [4]struct{ dx, dy float64 }{
	{1, 0},  // right
	{0, 1},  // down
	{-1, 0}, // left
	{0, -1}, // up
}

// FreeSpiral places n points on an outward square spiral starting at the
// origin and heading right. Runs have lengths 1, 1, 2, 2, 3, 3, ... so every
// point is visited once.
func FreeSpiral(n int, spacing float64) []domain.LayoutPoint {
	if n <= 0 {
		return nil
	}
	points := make([]domain.LayoutPoint, 0, n)

	var x, y float64
	dir := 0
	segmentLength := 1
	segmentPassed := 0

	for i := 0; i < n; i++ {
		points = append(points, domain.LayoutPoint{Index: i, Point: domain.Point{X: x, Y: y}})

		x += turns[dir].dx * spacing
		y += turns[dir].dy * spacing
		segmentPassed++

		if segmentPassed == segmentLength {
			segmentPassed = 0
			dir = (dir + 1) % 4
			// Every second turn lengthens the run.
			if dir%2 == 0 {
				segmentLength++
			}
		}
	}
	return points
}
