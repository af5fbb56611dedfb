package layout

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// Strategy selects the point traversal.
type Strategy string

const (
	StrategySpiral Strategy = "spiral"
	StrategyGrid   Strategy = "grid"
)

// DefaultSpacing is the distance between neighbouring dots in pixels.
const DefaultSpacing = 42

// Shape configures the layout engine.
type Shape struct {
	Strategy Strategy
	Spacing  float64
	Cols     int
	Rows     int
}

// DefaultShape returns the free spiral used by the reference wallpaper.
func DefaultShape() Shape {
	return Shape{Strategy: StrategySpiral, Spacing: DefaultSpacing}
}

// Build lays out n points according to shape.
func Build(n int, shape Shape) ([]domain.LayoutPoint, error) {
	if shape.Spacing <= 0 {
		return nil, &domain.ConfigError{
			Field:  "layout.spacing",
			Value:  fmt.Sprintf("%g", shape.Spacing),
			Reason: "must be positive",
		}
	}
	switch shape.Strategy {
	case StrategySpiral, "":
		return FreeSpiral(n, shape.Spacing), nil
	case StrategyGrid:
		return GridSpiral(n, shape.Cols, shape.Rows, shape.Spacing)
	default:
		return nil, &domain.ConfigError{
			Field:  "layout.strategy",
			Value:  string(shape.Strategy),
			Reason: "must be \"spiral\" or \"grid\"",
		}
	}
}
