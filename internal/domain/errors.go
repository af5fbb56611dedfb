package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a configuration value the engine cannot use.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScheduleUnsatisfiable indicates the calendar exceptions exclude too
	// many days to ever reach the target working-day count.
	ErrScheduleUnsatisfiable = errors.New("schedule unsatisfiable")

	// ErrUnresolvableMilestone indicates a milestone date has no bracketing
	// working days in the schedule.
	ErrUnresolvableMilestone = errors.New("unresolvable milestone")
)

// ConfigError names the offending configuration field.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// UnsatisfiableError reports a schedule scan that hit its sanity bound.
type UnsatisfiableError struct {
	Start   Date
	Target  int
	Found   int
	Scanned int
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf(
		"only %d of %d working days found in %d calendar days from %s; check weekday_off_days and weekend_work_days (every day may be excluded)",
		e.Found, e.Target, e.Scanned, e.Start)
}

func (e *UnsatisfiableError) Unwrap() error { return ErrScheduleUnsatisfiable }

// MilestoneWarning explains why a milestone was dropped during resolution.
type MilestoneWarning struct {
	Milestone Milestone
	Reason    string
}

func (w MilestoneWarning) Error() string {
	return fmt.Sprintf("milestone %q on %s: %s", w.Milestone.Label, w.Milestone.Date, w.Reason)
}

func (w MilestoneWarning) Unwrap() error { return ErrUnresolvableMilestone }
