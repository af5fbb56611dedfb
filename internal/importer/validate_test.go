package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalFile() *ProjectFile {
	return &ProjectFile{
		Project: ProjectSection{
			Name:      "Test Shoot",
			TotalDays: 10,
			StartDate: "2025-11-17",
		},
	}
}

func joinErrs(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func TestValidateProjectFile_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateProjectFile(validMinimalFile()))
}

func TestValidateProjectFile_DefaultIsValid(t *testing.T) {
	assert.Empty(t, ValidateProjectFile(DefaultProjectFile()))
}

func TestValidateProjectFile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectFile)
		want   string
	}{
		{"zero days", func(pf *ProjectFile) { pf.Project.TotalDays = 0 }, "project.total_days must be positive"},
		{"negative days", func(pf *ProjectFile) { pf.Project.TotalDays = -3 }, "project.total_days must be positive"},
		{"absurd days", func(pf *ProjectFile) { pf.Project.TotalDays = 1 << 40 }, "project.total_days must be at most"},
		{"missing start", func(pf *ProjectFile) { pf.Project.StartDate = "" }, "project.start_date is required"},
		{"bad start", func(pf *ProjectFile) { pf.Project.StartDate = "17.11.2025" }, "project.start_date: invalid date format"},
		{"bad weekend day", func(pf *ProjectFile) { pf.Project.WeekendWorkDays = []string{"2026-01-17", "soon"} }, "project.weekend_work_days[1]"},
		{"bad off day", func(pf *ProjectFile) { pf.Project.WeekdayOffDays = []string{"2025-02-30"} }, "project.weekday_off_days[0]"},
		{"unknown strategy", func(pf *ProjectFile) { pf.Layout.Strategy = "hexagon" }, "layout.strategy: invalid value"},
		{"grid without size", func(pf *ProjectFile) { pf.Layout.Strategy = "grid" }, "grid strategy needs positive cols and rows"},
		{"negative spacing", func(pf *ProjectFile) { pf.Layout.Spacing = -1 }, "layout.spacing must be positive"},
		{"negative canvas", func(pf *ProjectFile) { pf.Canvas.Width = -1 }, "canvas.width must be positive"},
		{"bad color", func(pf *ProjectFile) { pf.Design.Colors.Today = "hotpink" }, "design.colors.today"},
		{"negative dot size", func(pf *ProjectFile) { pf.Design.Dots.Size = -2 }, "design.dots.size must not be negative"},
		{"milestone without label", func(pf *ProjectFile) {
			pf.Milestones = []MilestoneEntry{{Date: "2025-12-01"}}
		}, "milestones[0].label is required"},
		{"milestone bad date", func(pf *ProjectFile) {
			pf.Milestones = []MilestoneEntry{{Date: "tomorrow", Label: "x"}}
		}, "milestones[0].date: invalid date format"},
		{"milestone bad placement", func(pf *ProjectFile) {
			pf.Milestones = []MilestoneEntry{{Date: "2025-12-01", Label: "x", Placement: "north"}}
		}, "milestones[0].placement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := validMinimalFile()
			tt.mutate(pf)
			errs := ValidateProjectFile(pf)
			require.NotEmpty(t, errs)
			assert.Contains(t, joinErrs(errs), tt.want)
		})
	}
}

func TestValidateProjectFile_CollectsAllErrors(t *testing.T) {
	pf := &ProjectFile{Milestones: []MilestoneEntry{{}}}
	errs := ValidateProjectFile(pf)
	// total_days, start_date, milestone label, milestone date
	assert.Len(t, errs, 4)
}

func TestLintProjectFile_Clean(t *testing.T) {
	assert.Empty(t, LintProjectFile(DefaultProjectFile()))
}

func TestLintProjectFile_Warnings(t *testing.T) {
	pf := validMinimalFile()
	pf.Project.WeekendWorkDays = []string{"2026-01-19"}                           // Monday
	pf.Project.WeekdayOffDays = []string{"2025-12-27", "2025-11-10", "2025-11-10"} // Saturday, before start x2
	pf.Milestones = []MilestoneEntry{
		{Date: "2025-12-01", Label: "Studio"},
		{Date: "2025-12-01", Label: "Studio"},
	}

	out := strings.Join(LintProjectFile(pf), "\n")
	assert.Contains(t, out, "project.weekend_work_days: 2026-01-19 is a weekday (Monday) and has no effect")
	assert.Contains(t, out, "project.weekday_off_days: 2025-12-27 is a weekend day (Saturday) and has no effect")
	assert.Contains(t, out, "project.weekday_off_days: 2025-11-10 is before the start date 2025-11-17")
	assert.Contains(t, out, "project.weekday_off_days: 2025-11-10 is listed more than once")
	assert.Contains(t, out, `milestones: "Studio" on 2025-12-01 is listed more than once`)
}
