package formatter

import (
	"fmt"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

const statusProgressBarWidth = 20

// FormatStatus renders the diagnostic summary of a snapshot: schedule span,
// today's position, progress, active milestones and warnings.
func FormatStatus(snap *contract.Snapshot) string {
	var b strings.Builder
	seq := snap.Sequence

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-10s", label)), value)
	}

	if seq.Len() > 0 {
		line("Start", HumanDate(seq.First()))
		line("End", HumanDate(seq.Last()))
	}
	line("Today", HumanDate(snap.Today)+"  "+PhaseIndicator(snap.Progress.Phase))
	line("Progress", RenderProgress(snap.Progress.CompletedCount, snap.Total(), statusProgressBarWidth))

	remaining := snap.Total() - snap.Progress.CompletedCount
	switch {
	case snap.Progress.Phase == domain.PhaseComplete:
		line("Remaining", StyleGreen.Render("all shooting days done"))
	case remaining == 1:
		line("Remaining", "1 working day")
	default:
		line("Remaining", fmt.Sprintf("%d working days", remaining))
	}

	if len(snap.Milestones) > 0 {
		b.WriteString("\n" + Header("Milestones") + "\n")
		for _, m := range snap.Milestones {
			b.WriteString(formatMilestone(m, snap.Today) + "\n")
		}
	}

	if len(snap.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range snap.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w.Error())) + "\n")
		}
	}

	b.WriteString("\n" + Dim("run "+snap.RunID))

	title := snap.ProjectName
	if title == "" {
		title = "Shooting schedule"
	}
	return RenderBox(title, b.String())
}

func formatMilestone(m domain.ResolvedMilestone, today domain.Date) string {
	bullet := StyleFg.Render("●")
	when := RelativeDay(m.Milestone.Date, today)
	if m.IsToday {
		bullet = StylePink.Render("●")
		when = StylePink.Render(when)
	}

	anchor := fmt.Sprintf("day %d", m.Anchor.Index+1)
	if m.Anchor.Interpolated {
		anchor = fmt.Sprintf("between day %d and %d", m.Anchor.Index+1, m.Anchor.NextIndex+1)
	}

	return fmt.Sprintf("  %s %s  %s  %s  %s",
		bullet,
		Bold(m.Milestone.Label),
		Dim(m.Milestone.Date.String()+" ("+when+")"),
		anchor,
		Dim(PlacementArrow(m.Placement)+" "+string(m.Placement)),
	)
}

// FormatRendered confirms a written wallpaper.
func FormatRendered(path string, snap *contract.Snapshot) string {
	return fmt.Sprintf("%s %s\n  %s\n",
		StyleGreen.Render("✔ Wallpaper written:"),
		Bold(path),
		RenderProgress(snap.Progress.CompletedCount, snap.Total(), statusProgressBarWidth),
	)
}
