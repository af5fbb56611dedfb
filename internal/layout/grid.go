package layout

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// GridSpiral walks a cols×rows grid in concentric rings from the outside in
// (top row left→right, right column down, bottom row right→left, left column
// up) and stops after n points.
func GridSpiral(n, cols, rows int, spacing float64) ([]domain.LayoutPoint, error) {
	if cols <= 0 || rows <= 0 {
		return nil, &domain.ConfigError{
			Field:  "layout.grid",
			Value:  fmt.Sprintf("%dx%d", cols, rows),
			Reason: "columns and rows must be positive",
		}
	}
	if n > cols*rows {
		return nil, &domain.ConfigError{
			Field:  "layout.grid",
			Value:  fmt.Sprintf("%dx%d", cols, rows),
			Reason: fmt.Sprintf("holds %d points but %d working days are needed", cols*rows, n),
		}
	}
	if n <= 0 {
		return nil, nil
	}

	points := make([]domain.LayoutPoint, 0, n)
	emit := func(row, col int) bool {
		if len(points) == n {
			return false
		}
		points = append(points, domain.LayoutPoint{
			Index: len(points),
			Point: domain.Point{X: float64(col) * spacing, Y: float64(row) * spacing},
		})
		return len(points) < n
	}

	top, bottom, left, right := 0, rows-1, 0, cols-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			if !emit(top, c) {
				return points, nil
			}
		}
		top++

		for r := top; r <= bottom; r++ {
			if !emit(r, right) {
				return points, nil
			}
		}
		right--

		if top <= bottom {
			for c := right; c >= left; c-- {
				if !emit(bottom, c) {
					return points, nil
				}
			}
			bottom--
		}

		if left <= right {
			for r := bottom; r >= top; r-- {
				if !emit(r, left) {
					return points, nil
				}
			}
			left++
		}
	}
	return points, nil
}
