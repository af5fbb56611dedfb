package scheduler

import "github.com/TheIllusionist93/DOCTOR/internal/domain"

// Auto-placement thresholds. Comparisons are strict, so a value sitting
// exactly on a threshold falls through to the next branch.
const (
	edgeLow      = 0.25
	edgeHigh     = 0.75
	cornerLow    = 0.33
	cornerHigh   = 0.67
	centralSplit = 0.5
)

// AutoPlacement picks a label side from the anchor's relative position in the
// layout bounding box so labels point away from the dense interior.
func AutoPlacement(relX, relY float64) domain.Placement {
	switch {
	case relX < edgeLow:
		switch {
		case relY < cornerLow:
			return domain.PlacementTopRight
		case relY > cornerHigh:
			return domain.PlacementBottomRight
		default:
			return domain.PlacementRight
		}
	case relX > edgeHigh:
		switch {
		case relY < cornerLow:
			return domain.PlacementTopLeft
		case relY > cornerHigh:
			return domain.PlacementBottomLeft
		default:
			return domain.PlacementLeft
		}
	case relY < edgeLow:
		return domain.PlacementBottom
	case relY > edgeHigh:
		return domain.PlacementTop
	case relX < centralSplit:
		return domain.PlacementRight
	default:
		return domain.PlacementLeft
	}
}
