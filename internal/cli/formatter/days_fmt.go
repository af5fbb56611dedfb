package formatter

import (
	"strconv"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// FormatDays lists the working days of a snapshot with their state. When
// remainingOnly is set, finished days are left out.
func FormatDays(snap *contract.Snapshot, schedule domain.ScheduleConfig, remainingOnly bool) string {
	labels := make(map[domain.Date][]string)
	for _, m := range snap.Milestones {
		labels[m.Milestone.Date] = append(labels[m.Milestone.Date], m.Milestone.Label)
	}

	todayIdx := snap.Progress.TodayIndex()
	columns := []Column{{Title: "#", Right: true}, {Title: "DATE"}, {Title: "DAY"}, {Title: "STATE"}, {Title: "NOTE"}}
	var rows [][]string

	for i, d := range snap.Sequence.Dates() {
		done := i < snap.Progress.CompletedCount && i != todayIdx
		if remainingOnly && done {
			continue
		}

		state := Dim("upcoming")
		switch {
		case i == todayIdx:
			state = StylePink.Render("today")
		case done:
			state = StyleFg.Render("done")
		}

		var notes []string
		if d.IsWeekend() && schedule.WeekendExceptions.Contains(d) {
			notes = append(notes, StyleYellow.Render("weekend shoot"))
		}
		notes = append(notes, labels[d]...)

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.String(),
			d.Weekday().String()[:3],
			state,
			strings.Join(notes, ", "),
		})
	}

	if len(rows) == 0 {
		return Dim("No shooting days left.") + "\n"
	}
	return RenderTable(columns, rows)
}
