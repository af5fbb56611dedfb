package importer

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
	"github.com/TheIllusionist93/DOCTOR/internal/render"
)

// ValidateProjectFile checks pf for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateProjectFile(pf *ProjectFile) []error {
	var errs []error

	errs = append(errs, validateProject(&pf.Project)...)
	errs = append(errs, validateLayout(&pf.Layout)...)
	errs = append(errs, validateCanvas(&pf.Canvas)...)
	errs = append(errs, validateDesign(&pf.Design)...)
	errs = append(errs, validateMilestones(pf.Milestones)...)

	return errs
}

func validateProject(p *ProjectSection) []error {
	var errs []error

	if p.TotalDays <= 0 {
		errs = append(errs, fmt.Errorf("project.total_days must be positive (got %d)", p.TotalDays))
	} else if p.TotalDays > domain.MaxWorkingDays {
		errs = append(errs, fmt.Errorf("project.total_days must be at most %d (got %d)", domain.MaxWorkingDays, p.TotalDays))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("project.start_date is required"))
	} else if _, err := domain.ParseDate(p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}
	errs = append(errs, validateDates("project.weekend_work_days", p.WeekendWorkDays)...)
	errs = append(errs, validateDates("project.weekday_off_days", p.WeekdayOffDays)...)

	return errs
}

func validateDates(field string, values []string) []error {
	var errs []error
	for i, v := range values {
		if _, err := domain.ParseDate(v); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: invalid date format %q (expected YYYY-MM-DD)", field, i, v))
		}
	}
	return errs
}

func validateLayout(l *LayoutSection) []error {
	var errs []error

	switch layout.Strategy(l.Strategy) {
	case "", layout.StrategySpiral:
	case layout.StrategyGrid:
		if l.Cols <= 0 || l.Rows <= 0 {
			errs = append(errs, fmt.Errorf("layout: grid strategy needs positive cols and rows (got %dx%d)", l.Cols, l.Rows))
		}
	default:
		errs = append(errs, fmt.Errorf("layout.strategy: invalid value %q (expected spiral or grid)", l.Strategy))
	}
	if l.Spacing < 0 {
		errs = append(errs, fmt.Errorf("layout.spacing must be positive"))
	}

	return errs
}

func validateCanvas(c *CanvasSection) []error {
	var errs []error
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("canvas.width must be positive"))
	}
	if c.Height < 0 {
		errs = append(errs, fmt.Errorf("canvas.height must be positive"))
	}
	return errs
}

func validateDesign(d *DesignSection) []error {
	var errs []error

	colors := []struct {
		field string
		value string
	}{
		{"background", d.Colors.Background},
		{"past_days", d.Colors.PastDays},
		{"today", d.Colors.Today},
		{"future_days", d.Colors.FutureDays},
		{"progress_bar", d.Colors.ProgressBar},
		{"progress_bar_bg", d.Colors.ProgressBarBg},
		{"text", d.Colors.Text},
		{"text_secondary", d.Colors.TextSecondary},
		{"milestone", d.Colors.Milestone},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if _, err := render.ParseHexColor(c.value); err != nil {
			errs = append(errs, fmt.Errorf("design.colors.%s: %w", c.field, err))
		}
	}

	sizes := []struct {
		field string
		value float64
	}{
		{"dots.size", d.Dots.Size},
		{"progress_bar.width", d.ProgressBar.Width},
		{"progress_bar.height", d.ProgressBar.Height},
		{"text.font_size", d.Text.FontSize},
		{"milestones.font_size", d.Milestones.FontSize},
		{"milestones.curve_length", d.Milestones.CurveLength},
		{"milestones.line_width", d.Milestones.LineWidth},
	}
	for _, s := range sizes {
		if s.value < 0 {
			errs = append(errs, fmt.Errorf("design.%s must not be negative", s.field))
		}
	}

	return errs
}

func validateMilestones(entries []MilestoneEntry) []error {
	var errs []error
	for i, m := range entries {
		prefix := fmt.Sprintf("milestones[%d]", i)
		if m.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
		if m.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := domain.ParseDate(m.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, m.Date))
		}
		if _, err := domain.ParsePlacement(m.Placement); err != nil {
			errs = append(errs, fmt.Errorf("%s.placement: %w", prefix, err))
		}
	}
	return errs
}

// LintProjectFile reports suspicious but legal entries: exceptions that have
// no effect on the schedule and duplicated dates. Call after validation;
// unparseable dates are skipped.
func LintProjectFile(pf *ProjectFile) []string {
	var warnings []string
	start, startErr := domain.ParseDate(pf.Project.StartDate)

	lint := func(field string, values []string, wantWeekend bool) {
		seen := make(map[domain.Date]bool, len(values))
		for _, v := range values {
			d, err := domain.ParseDate(v)
			if err != nil {
				continue
			}
			if seen[d] {
				warnings = append(warnings, fmt.Sprintf("%s: %s is listed more than once", field, d))
			}
			seen[d] = true
			if d.IsWeekend() != wantWeekend {
				kind := "a weekday"
				if d.IsWeekend() {
					kind = "a weekend day"
				}
				warnings = append(warnings, fmt.Sprintf("%s: %s is %s (%s) and has no effect", field, d, kind, d.Weekday()))
			}
			if startErr == nil && d.Before(start) {
				warnings = append(warnings, fmt.Sprintf("%s: %s is before the start date %s", field, d, start))
			}
		}
	}
	lint("project.weekend_work_days", pf.Project.WeekendWorkDays, true)
	lint("project.weekday_off_days", pf.Project.WeekdayOffDays, false)

	labels := make(map[string]bool, len(pf.Milestones))
	for _, m := range pf.Milestones {
		key := m.Date + "|" + m.Label
		if labels[key] {
			warnings = append(warnings, fmt.Sprintf("milestones: %q on %s is listed more than once", m.Label, m.Date))
		}
		labels[key] = true
	}

	return warnings
}
