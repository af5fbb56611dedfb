package scheduler

import "github.com/TheIllusionist93/DOCTOR/internal/domain"

// IsWorkingDay reports whether date counts as a working day under cfg.
// Weekend days work only when listed in WeekendExceptions; weekdays work
// unless listed in WeekdayExceptions. Each set is consulted only for its own
// kind of day.
func IsWorkingDay(date domain.Date, cfg domain.ScheduleConfig) bool {
	if date.IsWeekend() {
		return cfg.WeekendExceptions.Contains(date)
	}
	return !cfg.WeekdayExceptions.Contains(date)
}
