package render

import (
	"fmt"
	"image/color"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
)

// Caption returns the text shown under the progress bar, e.g. "DOCTOR 12/75".
func Caption(snap *contract.Snapshot) string {
	if snap.ProjectName == "" {
		return fmt.Sprintf("%d/%d", snap.Progress.CompletedCount, snap.Total())
	}
	return fmt.Sprintf("%s %d/%d", snap.ProjectName, snap.Progress.CompletedCount, snap.Total())
}

// Paint draws snap onto c: background, one dot per working day, progress bar,
// caption and milestone annotations, in that order.
func Paint(c Canvas, snap *contract.Snapshot, style Style, caption string) {
	p := painter{canvas: c, snap: snap, style: style}
	p.background()
	p.dots()
	barY := p.progressBar()
	p.caption(barY, caption)
	for _, m := range snap.Milestones {
		p.milestone(m)
	}
}

type painter struct {
	canvas Canvas
	snap   *contract.Snapshot
	style  Style
}

func (p *painter) background() {
	p.canvas.Clear(p.style.Colors.Background)
}

func (p *painter) dotColor(i int) color.Color {
	progress := p.snap.Progress
	switch {
	case i == progress.TodayIndex():
		return p.style.Colors.Today
	case i < progress.CompletedCount:
		return p.style.Colors.PastDays
	default:
		return p.style.Colors.FutureDays
	}
}

func (p *painter) dots() {
	r := p.style.DotSize / 2
	for i, pt := range p.snap.Points {
		p.canvas.DrawCircle(pt.X, pt.Y, r, p.dotColor(i))
	}
}

// progressBar draws the bar below the layout and returns its y position.
func (p *painter) progressBar() float64 {
	bar := p.style.ProgressBar
	w, _ := p.canvas.Size()
	b := layout.BoundsOf(p.snap.Points)

	y := b.MaxY + bar.MarginTop
	x := (float64(w) - bar.Width) / 2
	p.canvas.FillRect(x, y, bar.Width, bar.Height, p.style.Colors.ProgressBarBg)

	filled := bar.Width * float64(p.snap.Percentage) / 100
	if filled > 0 {
		p.canvas.FillRect(x, y, filled, bar.Height, p.style.Colors.ProgressBar)
	}
	return y
}

func (p *painter) caption(barY float64, text string) {
	if text == "" {
		return
	}
	w, _ := p.canvas.Size()
	p.canvas.DrawText(float64(w)/2, barY+p.style.Caption.MarginTop, text, TextStyle{
		Size:  p.style.Caption.FontSize,
		Align: AlignCenter,
		Color: p.style.Colors.Text,
	})
}

func (p *painter) milestone(m domain.ResolvedMilestone) {
	ms := p.style.Milestones
	accent := color.Color(p.style.Colors.Milestone)
	if m.IsToday {
		accent = p.style.Colors.Today
	}

	anchor := p.snap.MilestonePoint(m)
	dx, dy := m.Placement.Direction()

	start := anchor
	if m.Anchor.Interpolated {
		p.canvas.DrawCircle(anchor.X, anchor.Y, p.style.DotSize/4, accent)
	} else {
		p.canvas.DrawCircle(anchor.X, anchor.Y, ms.MarkerRadius, accent)
		p.canvas.DrawCircle(anchor.X, anchor.Y, ms.MarkerRadius-ms.LineWidth, p.style.Colors.Background)
		p.canvas.DrawCircle(anchor.X, anchor.Y, p.style.DotSize/2, p.dotColor(m.Anchor.Index))
		start = anchor.Add(dx*ms.MarkerRadius, dy*ms.MarkerRadius)
	}

	end := anchor.Add(dx*ms.CurveLength, dy*ms.CurveLength)
	// Bend toward the clockwise normal so neighbouring labels fan out.
	mid := start.Midpoint(end)
	control := mid.Add(-dy*ms.CurveLength/4, dx*ms.CurveLength/4)
	p.canvas.DrawCurve(start, control, end, accent, ms.LineWidth)

	ts := labelStyle(dx, dy, ms.FontSize, accent)
	ts.Shadow = &Shadow{DX: 0, DY: 2, Color: p.style.Colors.Shadow}
	tx, ty := labelOrigin(end, dx, dy, ms.LabelPadding)
	width := p.canvas.DrawText(tx, ty, m.Milestone.Label, ts)

	ux, uy := underlineOrigin(tx, ty, width, ts)
	p.canvas.FillRect(ux, uy, width, ms.UnderlineHeight, accent)
}

func labelStyle(dx, dy, size float64, c color.Color) TextStyle {
	ts := TextStyle{Size: size, Bold: true, Color: c}
	switch {
	case dx > 0.1:
		ts.Align = AlignLeft
	case dx < -0.1:
		ts.Align = AlignRight
	default:
		ts.Align = AlignCenter
	}
	switch {
	case dy > 0.1:
		ts.Baseline = BaselineTop
	case dy < -0.1:
		ts.Baseline = BaselineAlphabetic
	default:
		ts.Baseline = BaselineMiddle
	}
	return ts
}

func labelOrigin(end domain.Point, dx, dy, padding float64) (x, y float64) {
	return end.X + dx*padding, end.Y + dy*padding
}

// underlineOrigin returns the top-left corner of the highlight bar under a
// label drawn at (x, y) with the given measured width.
func underlineOrigin(x, y, width float64, ts TextStyle) (float64, float64) {
	switch ts.Align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}
	gap := ts.Size * 0.2
	switch ts.Baseline {
	case BaselineTop:
		y += ts.Size + gap
	case BaselineMiddle:
		y += ts.Size/2 + gap
	default:
		y += gap
	}
	return x, y
}
