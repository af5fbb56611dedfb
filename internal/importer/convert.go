package importer

import (
	"fmt"
	"image/color"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
	"github.com/TheIllusionist93/DOCTOR/internal/render"
)

// Project is a converted project file, ready to be built and drawn.
type Project struct {
	Request contract.SnapshotRequest
	Style   render.Style
	Output  string
}

// Convert turns a validated ProjectFile into a snapshot request and style.
// Call ValidateProjectFile first; Convert only reports the first error it
// meets. Zero values fall back to the reference design.
func Convert(pf *ProjectFile) (*Project, error) {
	start, err := domain.ParseDate(pf.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	weekend, err := parseDateSet(pf.Project.WeekendWorkDays)
	if err != nil {
		return nil, fmt.Errorf("parsing weekend_work_days: %w", err)
	}
	off, err := parseDateSet(pf.Project.WeekdayOffDays)
	if err != nil {
		return nil, fmt.Errorf("parsing weekday_off_days: %w", err)
	}

	req := contract.NewSnapshotRequest(pf.Project.Name, domain.ScheduleConfig{
		TotalWorkingDays:  pf.Project.TotalDays,
		StartDate:         start,
		WeekendExceptions: weekend,
		WeekdayExceptions: off,
	})
	req.Shape = convertShape(pf.Layout)
	req.Canvas = convertCanvas(pf.Canvas)

	for i, m := range pf.Milestones {
		date, err := domain.ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing milestones[%d].date: %w", i, err)
		}
		placement, err := domain.ParsePlacement(m.Placement)
		if err != nil {
			return nil, fmt.Errorf("parsing milestones[%d].placement: %w", i, err)
		}
		req.Milestones = append(req.Milestones, domain.Milestone{Date: date, Label: m.Label, Placement: placement})
	}

	style, err := convertStyle(pf.Design)
	if err != nil {
		return nil, err
	}

	return &Project{Request: req, Style: style, Output: pf.Output}, nil
}

func parseDateSet(values []string) (domain.DateSet, error) {
	set := domain.NewDateSet()
	for _, v := range values {
		d, err := domain.ParseDate(v)
		if err != nil {
			return nil, err
		}
		set[d] = struct{}{}
	}
	return set, nil
}

func convertShape(l LayoutSection) layout.Shape {
	shape := layout.DefaultShape()
	if l.Strategy != "" {
		shape.Strategy = layout.Strategy(l.Strategy)
	}
	if l.Spacing > 0 {
		shape.Spacing = l.Spacing
	}
	shape.Cols = l.Cols
	shape.Rows = l.Rows
	return shape
}

func convertCanvas(c CanvasSection) contract.CanvasSize {
	canvas := contract.DefaultCanvas()
	if c.Width > 0 {
		canvas.Width = c.Width
	}
	if c.Height > 0 {
		canvas.Height = c.Height
	}
	if c.VerticalBias != nil {
		canvas.VerticalBias = *c.VerticalBias
	}
	return canvas
}

func convertStyle(d DesignSection) (render.Style, error) {
	style := render.DefaultStyle()

	targets := map[string]colorTarget{
		"background":      {d.Colors.Background, &style.Colors.Background},
		"past_days":       {d.Colors.PastDays, &style.Colors.PastDays},
		"today":           {d.Colors.Today, &style.Colors.Today},
		"future_days":     {d.Colors.FutureDays, &style.Colors.FutureDays},
		"progress_bar":    {d.Colors.ProgressBar, &style.Colors.ProgressBar},
		"progress_bar_bg": {d.Colors.ProgressBarBg, &style.Colors.ProgressBarBg},
		"text":            {d.Colors.Text, &style.Colors.Text},
		"text_secondary":  {d.Colors.TextSecondary, &style.Colors.TextSecondary},
		"milestone":       {d.Colors.Milestone, &style.Colors.Milestone},
	}
	for field, t := range targets {
		if t.value == "" {
			continue
		}
		c, err := render.ParseHexColor(t.value)
		if err != nil {
			return render.Style{}, fmt.Errorf("design.colors.%s: %w", field, err)
		}
		*t.dst = c
	}

	setPositive(&style.DotSize, d.Dots.Size)
	setPositive(&style.ProgressBar.Width, d.ProgressBar.Width)
	setPositive(&style.ProgressBar.Height, d.ProgressBar.Height)
	setPositive(&style.ProgressBar.MarginTop, d.ProgressBar.MarginTop)
	setPositive(&style.Caption.FontSize, d.Text.FontSize)
	setPositive(&style.Caption.MarginTop, d.Text.MarginTop)
	setPositive(&style.Milestones.FontSize, d.Milestones.FontSize)
	setPositive(&style.Milestones.CurveLength, d.Milestones.CurveLength)
	setPositive(&style.Milestones.LineWidth, d.Milestones.LineWidth)
	style.FontPath = d.Font

	return style, nil
}

type colorTarget struct {
	value string
	dst   *color.NRGBA
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
