package layout

import (
	"math"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// Bounds is the axis-aligned bounding box of a point set.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf computes the bounding box of points. An empty set yields a zero box.
func BoundsOf(points []domain.LayoutPoint) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Relative maps p into [0,1]×[0,1] within the box. A degenerate axis maps to
// 0.5.
func (b Bounds) Relative(p domain.Point) (relX, relY float64) {
	return relative(p.X, b.MinX, b.Width()), relative(p.Y, b.MinY, b.Height())
}

func relative(v, lo, span float64) float64 {
	if span == 0 {
		return 0.5
	}
	r := (v - lo) / span
	return math.Max(0, math.Min(1, r))
}

// Center translates points so their bounding box sits in the middle of a
// canvasW×canvasH canvas, then shifts everything by verticalBias on y.
func Center(points []domain.LayoutPoint, canvasW, canvasH, verticalBias float64) []domain.LayoutPoint {
	b := BoundsOf(points)
	offsetX := (canvasW-b.Width())/2 - b.MinX
	offsetY := (canvasH-b.Height())/2 - b.MinY + verticalBias

	out := make([]domain.LayoutPoint, len(points))
	for i, p := range points {
		out[i] = domain.LayoutPoint{Index: p.Index, Point: p.Point.Add(offsetX, offsetY)}
	}
	return out
}
