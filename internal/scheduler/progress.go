package scheduler

import "github.com/TheIllusionist93/DOCTOR/internal/domain"

// Locate determines how many working days are complete as of today.
//
// A working day counts as complete on the day itself. When today is a day
// off, every earlier working day is complete and today is not counted.
func Locate(seq domain.WorkingDaySequence, today domain.Date) domain.ProgressState {
	for i := 0; i < seq.Len(); i++ {
		day := seq.At(i)
		if day == today {
			return domain.ProgressState{
				CompletedCount:    i + 1,
				TodayIsWorkingDay: true,
				Phase:             domain.PhaseWorkingDay,
			}
		}
		if day.After(today) {
			phase := domain.PhaseBetween
			if i == 0 {
				phase = domain.PhaseBeforeStart
			}
			return domain.ProgressState{
				CompletedCount:    i,
				TodayIsWorkingDay: false,
				Phase:             phase,
			}
		}
	}

	_, isWorking := seq.IndexOf(today)
	return domain.ProgressState{
		CompletedCount:    seq.Len(),
		TodayIsWorkingDay: isWorking,
		Phase:             domain.PhaseComplete,
	}
}
