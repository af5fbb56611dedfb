package domain

import "strconv"

// ScheduleConfig describes which calendar days count as working days and how
// many of them the project needs.
type ScheduleConfig struct {
	TotalWorkingDays int
	StartDate        Date
	// WeekendExceptions are Saturdays/Sundays that ARE working days.
	WeekendExceptions DateSet
	// WeekdayExceptions are Monday–Friday dates that are NOT working days.
	WeekdayExceptions DateSet
}

// MaxWorkingDays caps TotalWorkingDays, roughly a century of five-day weeks.
const MaxWorkingDays = 26100

// Validate checks the fields the schedule generator depends on.
func (c ScheduleConfig) Validate() error {
	if c.TotalWorkingDays <= 0 {
		return &ConfigError{
			Field:  "total_working_days",
			Value:  strconv.Itoa(c.TotalWorkingDays),
			Reason: "must be a positive integer",
		}
	}
	if c.TotalWorkingDays > MaxWorkingDays {
		return &ConfigError{
			Field:  "total_working_days",
			Value:  strconv.Itoa(c.TotalWorkingDays),
			Reason: "must be at most " + strconv.Itoa(MaxWorkingDays),
		}
	}
	if c.StartDate.IsZero() {
		return &ConfigError{
			Field:  "start_date",
			Reason: "is required",
		}
	}
	return nil
}

// WorkingDaySequence is the ordered, strictly increasing list of working days
// produced for one run. It cannot be modified after construction.
type WorkingDaySequence struct {
	dates []Date
}

// NewWorkingDaySequence copies dates into a new sequence. Callers are
// responsible for passing strictly increasing dates.
func NewWorkingDaySequence(dates []Date) WorkingDaySequence {
	cp := make([]Date, len(dates))
	copy(cp, dates)
	return WorkingDaySequence{dates: cp}
}

func (s WorkingDaySequence) Len() int { return len(s.dates) }

// At returns the i-th working day. It panics when i is out of range.
func (s WorkingDaySequence) At(i int) Date { return s.dates[i] }

// First returns the first working day, or the zero Date for an empty sequence.
func (s WorkingDaySequence) First() Date {
	if len(s.dates) == 0 {
		return Date{}
	}
	return s.dates[0]
}

// Last returns the final working day, or the zero Date for an empty sequence.
func (s WorkingDaySequence) Last() Date {
	if len(s.dates) == 0 {
		return Date{}
	}
	return s.dates[len(s.dates)-1]
}

// Dates returns a copy of the underlying dates.
func (s WorkingDaySequence) Dates() []Date {
	cp := make([]Date, len(s.dates))
	copy(cp, s.dates)
	return cp
}

// IndexOf returns the index of d, if d is a working day of the sequence.
func (s WorkingDaySequence) IndexOf(d Date) (int, bool) {
	lo, hi := 0, len(s.dates)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.dates[mid].Before(d) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.dates) && s.dates[lo] == d {
		return lo, true
	}
	return -1, false
}
