package app

import (
	"time"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
)

// CanvasSize is the pixel size of the output image plus the vertical shift
// applied to the centered layout.
type CanvasSize struct {
	Width        int
	Height       int
	VerticalBias float64
}

// DefaultCanvas returns the phone-wallpaper canvas of the reference design.
func DefaultCanvas() CanvasSize {
	return CanvasSize{Width: 1170, Height: 2532, VerticalBias: -200}
}

type SnapshotRequest struct {
	ProjectName string
	Schedule    domain.ScheduleConfig
	Milestones  []domain.Milestone
	Shape       layout.Shape
	Canvas      CanvasSize
	Now         *time.Time
}

func NewSnapshotRequest(projectName string, schedule domain.ScheduleConfig) SnapshotRequest {
	return SnapshotRequest{
		ProjectName: projectName,
		Schedule:    schedule,
		Shape:       layout.DefaultShape(),
		Canvas:      DefaultCanvas(),
	}
}

// Snapshot is everything computed for one run, ready to be drawn or printed.
type Snapshot struct {
	RunID       string
	GeneratedAt time.Time
	ProjectName string
	Today       domain.Date

	Sequence domain.WorkingDaySequence
	// Layout holds the raw grid-unit positions; Points the same positions
	// translated into canvas pixels.
	Layout []domain.LayoutPoint
	Points []domain.LayoutPoint
	Canvas CanvasSize

	Progress   domain.ProgressState
	Percentage int
	Milestones []domain.ResolvedMilestone
	Warnings   []domain.MilestoneWarning
}

// Total returns the number of scheduled working days.
func (s *Snapshot) Total() int {
	return s.Sequence.Len()
}

// MilestonePoint returns the canvas position of a resolved milestone's anchor.
func (s *Snapshot) MilestonePoint(m domain.ResolvedMilestone) domain.Point {
	return m.Anchor.At(s.Points)
}
