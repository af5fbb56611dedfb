package render

import (
	"context"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/service"
	"github.com/TheIllusionist93/DOCTOR/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op    string
	x, y  float64
	w, h  float64
	r     float64
	text  string
	style TextStyle
	color color.Color
}

// recordingCanvas stores every call and measures text as 10px per byte.
type recordingCanvas struct {
	width, height int
	calls         []call
}

func (c *recordingCanvas) Size() (int, int) { return c.width, c.height }
func (c *recordingCanvas) Clear(col color.Color) {
	c.calls = append(c.calls, call{op: "clear", color: col})
}
func (c *recordingCanvas) FillRect(x, y, w, h float64, col color.Color) {
	c.calls = append(c.calls, call{op: "rect", x: x, y: y, w: w, h: h, color: col})
}
func (c *recordingCanvas) DrawCircle(x, y, r float64, col color.Color) {
	c.calls = append(c.calls, call{op: "circle", x: x, y: y, r: r, color: col})
}
func (c *recordingCanvas) DrawCurve(from, _, to domain.Point, col color.Color, width float64) {
	c.calls = append(c.calls, call{op: "curve", x: from.X, y: from.Y, w: to.X, h: to.Y, r: width, color: col})
}
func (c *recordingCanvas) DrawText(x, y float64, text string, style TextStyle) float64 {
	c.calls = append(c.calls, call{op: "text", x: x, y: y, text: text, style: style, color: style.Color})
	return c.MeasureText(text, style.Size, style.Bold)
}
func (c *recordingCanvas) MeasureText(text string, _ float64, _ bool) float64 {
	return float64(len(text)) * 10
}
func (c *recordingCanvas) Encode(io.Writer) error { return nil }

func (c *recordingCanvas) ops(op string) []call {
	var out []call
	for _, cl := range c.calls {
		if cl.op == op {
			out = append(out, cl)
		}
	}
	return out
}

func buildSnapshot(t *testing.T, today string, milestones ...domain.Milestone) *contract.Snapshot {
	t.Helper()
	req := contract.NewSnapshotRequest("DOCTOR", testutil.NewTestSchedule(
		testutil.WithWeekendWorkDays("2026-01-17"),
		testutil.WithWeekdayOffDays(testutil.ChristmasBreak...),
	))
	d := domain.MustParseDate(today)
	now := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	req.Now = &now
	req.Milestones = milestones
	snap, err := service.NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)
	return snap
}

func TestCaption(t *testing.T) {
	snap := buildSnapshot(t, "2025-11-19")
	assert.Equal(t, "DOCTOR 3/75", Caption(snap))

	snap.ProjectName = ""
	assert.Equal(t, "3/75", Caption(snap))
}

func TestPaint_DotColors(t *testing.T) {
	snap := buildSnapshot(t, "2025-11-20")
	style := DefaultStyle()
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, style, Caption(snap))

	require.Equal(t, "clear", c.calls[0].op)
	assert.Equal(t, style.Colors.Background, c.calls[0].color)

	dots := c.ops("circle")
	require.Len(t, dots, 75)
	for i := 0; i < 3; i++ {
		assert.Equal(t, style.Colors.PastDays, dots[i].color, "dot %d", i)
	}
	assert.Equal(t, style.Colors.Today, dots[3].color)
	for i := 4; i < 75; i++ {
		assert.Equal(t, style.Colors.FutureDays, dots[i].color, "dot %d", i)
	}
	assert.Equal(t, style.DotSize/2, dots[0].r)
	assert.Equal(t, snap.Points[10].X, dots[10].x)
	assert.Equal(t, snap.Points[10].Y, dots[10].y)
}

func TestPaint_NoTodayDotOnDayOff(t *testing.T) {
	snap := buildSnapshot(t, "2025-12-24")
	style := DefaultStyle()
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, style, "")

	for _, d := range c.ops("circle") {
		assert.NotEqual(t, style.Colors.Today, d.color)
	}
	assert.Empty(t, c.ops("text"))
}

func TestPaint_ProgressBarAndCaption(t *testing.T) {
	snap := buildSnapshot(t, "2025-11-21") // 5/75 = 7%
	style := DefaultStyle()
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, style, Caption(snap))

	rects := c.ops("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, style.Colors.ProgressBarBg, rects[0].color)
	assert.Equal(t, 600.0, rects[0].w)
	assert.Equal(t, (1170.0-600)/2, rects[0].x)
	assert.InDelta(t, 600*0.07, rects[1].w, 1e-9)
	assert.Equal(t, rects[0].y, rects[1].y)

	texts := c.ops("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "DOCTOR 5/75", texts[0].text)
	assert.Equal(t, AlignCenter, texts[0].style.Align)
	assert.Equal(t, 585.0, texts[0].x)
	assert.Equal(t, rects[0].y+style.Caption.MarginTop, texts[0].y)
}

func TestPaint_EmptyProgressSkipsFill(t *testing.T) {
	snap := buildSnapshot(t, "2025-11-01")
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, DefaultStyle(), "")

	assert.Len(t, c.ops("rect"), 1)
}

func TestPaint_MilestoneLabelAndUnderline(t *testing.T) {
	snap := buildSnapshot(t, "2025-11-17",
		testutil.NewTestMilestone("2025-12-01", "Studio", testutil.WithPlacement(domain.PlacementRight)),
	)
	style := DefaultStyle()
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, style, "")

	texts := c.ops("text")
	require.Len(t, texts, 1)
	label := texts[0]
	assert.Equal(t, "Studio", label.text)
	assert.Equal(t, AlignLeft, label.style.Align)
	assert.Equal(t, BaselineMiddle, label.style.Baseline)
	assert.Equal(t, style.Colors.Milestone, label.color)
	require.NotNil(t, label.style.Shadow)

	anchor := snap.MilestonePoint(snap.Milestones[0])
	assert.InDelta(t, anchor.X+style.Milestones.CurveLength+style.Milestones.LabelPadding, label.x, 1e-9)
	assert.InDelta(t, anchor.Y, label.y, 1e-9)

	rects := c.ops("rect")
	underline := rects[len(rects)-1]
	assert.Equal(t, 60.0, underline.w)
	assert.Equal(t, label.x, underline.x)
	assert.Equal(t, style.Milestones.UnderlineHeight, underline.h)

	curves := c.ops("curve")
	require.Len(t, curves, 1)
	assert.InDelta(t, anchor.X+style.Milestones.MarkerRadius, curves[0].x, 1e-9)
}

func TestPaint_TodayMilestoneUsesEmphasisColor(t *testing.T) {
	snap := buildSnapshot(t, "2025-12-24",
		testutil.NewTestMilestone("2025-12-24", "Christmas Eve", testutil.WithPlacement(domain.PlacementTopLeft)),
	)
	style := DefaultStyle()
	c := &recordingCanvas{width: 1170, height: 2532}

	Paint(c, snap, style, "")

	texts := c.ops("text")
	require.Len(t, texts, 1)
	assert.Equal(t, style.Colors.Today, texts[0].color)
	assert.Equal(t, AlignRight, texts[0].style.Align)
	assert.Equal(t, BaselineAlphabetic, texts[0].style.Baseline)

	rects := c.ops("rect")
	underline := rects[len(rects)-1]
	assert.InDelta(t, texts[0].x-underline.w, underline.x, 1e-9)

	// Interpolated anchors get a small dot instead of a ring.
	circles := c.ops("circle")
	marker := circles[len(circles)-1]
	assert.Equal(t, style.DotSize/4, marker.r)
	assert.Equal(t, style.Colors.Today, marker.color)
}

func TestLabelStyle(t *testing.T) {
	tests := []struct {
		placement domain.Placement
		align     Align
		baseline  Baseline
	}{
		{domain.PlacementTop, AlignCenter, BaselineAlphabetic},
		{domain.PlacementBottom, AlignCenter, BaselineTop},
		{domain.PlacementLeft, AlignRight, BaselineMiddle},
		{domain.PlacementRight, AlignLeft, BaselineMiddle},
		{domain.PlacementTopRight, AlignLeft, BaselineAlphabetic},
		{domain.PlacementBottomLeft, AlignRight, BaselineTop},
	}
	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			dx, dy := tt.placement.Direction()
			ts := labelStyle(dx, dy, 20, color.White)
			assert.Equal(t, tt.align, ts.Align)
			assert.Equal(t, tt.baseline, ts.Baseline)
		})
	}
}
