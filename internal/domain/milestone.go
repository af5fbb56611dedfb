package domain

import "fmt"

// Placement names the side of an anchor a milestone label is drawn on.
type Placement string

const (
	PlacementAuto        Placement = ""
	PlacementTop         Placement = "top"
	PlacementBottom      Placement = "bottom"
	PlacementLeft        Placement = "left"
	PlacementRight       Placement = "right"
	PlacementTopLeft     Placement = "top-left"
	PlacementTopRight    Placement = "top-right"
	PlacementBottomLeft  Placement = "bottom-left"
	PlacementBottomRight Placement = "bottom-right"
)

// ValidPlacements is the canonical set of concrete placements.
var ValidPlacements = map[Placement]bool{
	PlacementTop: true, PlacementBottom: true, PlacementLeft: true, PlacementRight: true,
	PlacementTopLeft: true, PlacementTopRight: true, PlacementBottomLeft: true, PlacementBottomRight: true,
}

// ParsePlacement accepts a concrete placement or "" / "auto".
func ParsePlacement(s string) (Placement, error) {
	if s == "" || s == "auto" {
		return PlacementAuto, nil
	}
	p := Placement(s)
	if !ValidPlacements[p] {
		return PlacementAuto, fmt.Errorf("invalid placement %q", s)
	}
	return p, nil
}

// Direction returns the unit vector pointing from the anchor toward the label
// (screen coordinates, y grows downward).
func (p Placement) Direction() (dx, dy float64) {
	const diag = 0.7071067811865476
	switch p {
	case PlacementTop:
		return 0, -1
	case PlacementBottom:
		return 0, 1
	case PlacementLeft:
		return -1, 0
	case PlacementTopLeft:
		return -diag, -diag
	case PlacementTopRight:
		return diag, -diag
	case PlacementBottomLeft:
		return -diag, diag
	case PlacementBottomRight:
		return diag, diag
	default:
		return 1, 0
	}
}

// Milestone is a named, dated event to annotate on the layout.
type Milestone struct {
	Date      Date
	Label     string
	Placement Placement
}

// Anchor is the layout position a milestone label attaches to: either a
// single working day or the midpoint between two adjacent working days.
type Anchor struct {
	Index        int
	NextIndex    int
	Interpolated bool
	Point        Point
}

// At recomputes the anchor position against points, which must be indexed
// like the sequence the anchor was resolved against.
func (a Anchor) At(points []LayoutPoint) Point {
	if a.Interpolated {
		return points[a.Index].Point.Midpoint(points[a.NextIndex].Point)
	}
	return points[a.Index].Point
}

// ResolvedMilestone is a milestone mapped onto the layout with a concrete
// placement.
type ResolvedMilestone struct {
	Milestone Milestone
	Anchor    Anchor
	Placement Placement
	IsToday   bool
	RelX      float64
	RelY      float64
}
