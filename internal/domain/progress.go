package domain

import "math"

// ProgressPhase identifies where "today" falls relative to the schedule.
type ProgressPhase string

const (
	PhaseBeforeStart ProgressPhase = "before_start"
	PhaseWorkingDay  ProgressPhase = "working_day"
	PhaseBetween     ProgressPhase = "between"
	PhaseComplete    ProgressPhase = "complete"
)

// ProgressState is the snapshot of how far the schedule has advanced.
type ProgressState struct {
	CompletedCount    int
	TodayIsWorkingDay bool
	Phase             ProgressPhase
}

// Percentage returns CompletedCount/total as a whole percent, rounded half up.
func (p ProgressState) Percentage(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(p.CompletedCount) / float64(total) * 100))
}

// TodayIndex returns the sequence index of today's working day, or -1 when
// today is not a working day.
func (p ProgressState) TodayIndex() int {
	if !p.TodayIsWorkingDay || p.CompletedCount == 0 {
		return -1
	}
	return p.CompletedCount - 1
}
