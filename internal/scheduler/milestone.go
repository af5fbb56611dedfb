package scheduler

import (
	"sort"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
)

// Resolve maps milestones onto the layout.
//
// Milestones dated before today are dropped. A milestone on a working day
// anchors to that day's point; one on a day off anchors to the midpoint of
// the surrounding working days, and is dropped with a warning when either
// neighbour is missing. points must be indexed like seq. Output keeps the
// input order.
func Resolve(
	milestones []domain.Milestone,
	seq domain.WorkingDaySequence,
	points []domain.LayoutPoint,
	today domain.Date,
) ([]domain.ResolvedMilestone, []domain.MilestoneWarning) {
	var resolved []domain.ResolvedMilestone
	var warnings []domain.MilestoneWarning
	bounds := layout.BoundsOf(points)

	for _, m := range milestones {
		if m.Date.Before(today) {
			continue
		}

		anchor, ok := anchorFor(m.Date, seq, points)
		if !ok {
			warnings = append(warnings, domain.MilestoneWarning{
				Milestone: m,
				Reason:    unresolvedReason(m.Date, seq),
			})
			continue
		}

		relX, relY := bounds.Relative(anchor.Point)
		placement := m.Placement
		if placement == domain.PlacementAuto {
			placement = AutoPlacement(relX, relY)
		}

		resolved = append(resolved, domain.ResolvedMilestone{
			Milestone: m,
			Anchor:    anchor,
			Placement: placement,
			IsToday:   m.Date == today,
			RelX:      relX,
			RelY:      relY,
		})
	}

	return resolved, warnings
}

func anchorFor(date domain.Date, seq domain.WorkingDaySequence, points []domain.LayoutPoint) (domain.Anchor, bool) {
	if i, ok := seq.IndexOf(date); ok {
		return domain.Anchor{Index: i, NextIndex: i, Point: points[i].Point}, true
	}

	// First working day strictly after date; the one before it is the
	// latest working day strictly before date.
	after := sort.Search(seq.Len(), func(i int) bool { return seq.At(i).After(date) })
	before := after - 1
	if before < 0 || after >= seq.Len() {
		return domain.Anchor{}, false
	}

	a := domain.Anchor{Index: before, NextIndex: after, Interpolated: true}
	a.Point = a.At(points)
	return a, true
}

func unresolvedReason(date domain.Date, seq domain.WorkingDaySequence) string {
	if seq.Len() == 0 {
		return "schedule is empty"
	}
	if date.Before(seq.First()) {
		return "falls before the first working day " + seq.First().String()
	}
	return "falls after the last working day " + seq.Last().String()
}
