package testutil

import (
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// ReferenceStart is the start date of the reference DOCTOR shoot (a Monday).
const ReferenceStart = "2025-11-17"

// Schedule options
type ScheduleOption func(*domain.ScheduleConfig)

func WithTotalDays(n int) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		c.TotalWorkingDays = n
	}
}

func WithStart(date string) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		c.StartDate = domain.MustParseDate(date)
	}
}

func WithWeekendWorkDays(dates ...string) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		for _, d := range dates {
			c.WeekendExceptions[domain.MustParseDate(d)] = struct{}{}
		}
	}
}

func WithWeekdayOffDays(dates ...string) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		for _, d := range dates {
			c.WeekdayExceptions[domain.MustParseDate(d)] = struct{}{}
		}
	}
}

// NewTestSchedule returns a 75-day schedule from ReferenceStart with no
// exceptions unless options say otherwise.
func NewTestSchedule(opts ...ScheduleOption) domain.ScheduleConfig {
	c := domain.ScheduleConfig{
		TotalWorkingDays:  75,
		StartDate:         domain.MustParseDate(ReferenceStart),
		WeekendExceptions: domain.NewDateSet(),
		WeekdayExceptions: domain.NewDateSet(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ChristmasBreak lists the weekday off days of the reference shoot.
var ChristmasBreak = []string{"2025-12-22", "2025-12-23", "2025-12-24", "2025-12-25", "2025-12-26"}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithPlacement(p domain.Placement) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Placement = p
	}
}

func NewTestMilestone(date, label string, opts ...MilestoneOption) domain.Milestone {
	m := domain.Milestone{
		Date:  domain.MustParseDate(date),
		Label: label,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Dates parses a list of YYYY-MM-DD literals.
func Dates(values ...string) []domain.Date {
	out := make([]domain.Date, len(values))
	for i, v := range values {
		out[i] = domain.MustParseDate(v)
	}
	return out
}
