package scheduler

import (
	"math"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// minScanDays keeps the sanity bound generous for short schedules that span
// a long break.
const minScanDays = 366

// ScanLimit returns how many calendar days Generate inspects before giving up.
// It saturates at math.MaxInt instead of overflowing.
func ScanLimit(totalWorkingDays int) int {
	if totalWorkingDays > math.MaxInt/10 {
		return math.MaxInt
	}
	limit := totalWorkingDays * 10
	if limit < minScanDays {
		limit = minScanDays
	}
	return limit
}

// Generate walks forward from cfg.StartDate and collects the first
// cfg.TotalWorkingDays working days.
func Generate(cfg domain.ScheduleConfig) (domain.WorkingDaySequence, error) {
	if err := cfg.Validate(); err != nil {
		return domain.WorkingDaySequence{}, err
	}

	limit := ScanLimit(cfg.TotalWorkingDays)
	days := make([]domain.Date, 0, min(cfg.TotalWorkingDays, domain.MaxWorkingDays))
	current := cfg.StartDate
	scanned := 0

	for len(days) < cfg.TotalWorkingDays {
		if scanned >= limit {
			return domain.WorkingDaySequence{}, &domain.UnsatisfiableError{
				Start:   cfg.StartDate,
				Target:  cfg.TotalWorkingDays,
				Found:   len(days),
				Scanned: scanned,
			}
		}
		if IsWorkingDay(current, cfg) {
			days = append(days, current)
		}
		current = current.AddDays(1)
		scanned++
	}

	return domain.NewWorkingDaySequence(days), nil
}
