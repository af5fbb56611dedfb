package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
	"github.com/TheIllusionist93/DOCTOR/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func at(date string) *time.Time {
	d := domain.MustParseDate(date)
	t := time.Date(d.Year(), d.Month(), d.Day(), 9, 30, 0, 0, time.Local)
	return &t
}

func referenceRequest(opts ...testutil.ScheduleOption) contract.SnapshotRequest {
	return contract.NewSnapshotRequest("DOCTOR", testutil.NewTestSchedule(opts...))
}

func TestSnapshot_FirstShootingDay(t *testing.T) {
	req := referenceRequest()
	req.Now = at("2025-11-17")

	snap, err := NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 75, snap.Total())
	assert.Equal(t, 1, snap.Progress.CompletedCount)
	assert.True(t, snap.Progress.TodayIsWorkingDay)
	assert.Equal(t, 1, snap.Percentage)
	assert.Equal(t, "2025-11-17", snap.Today.String())
	assert.NotEmpty(t, snap.RunID)
	assert.Len(t, snap.Points, 75)
	assert.Len(t, snap.Layout, 75)
}

func TestSnapshot_PointsCenteredOnCanvas(t *testing.T) {
	req := referenceRequest()
	req.Now = at("2025-11-17")

	snap, err := NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)

	b := layout.BoundsOf(snap.Points)
	assert.InDelta(t, 1170.0/2, (b.MinX+b.MaxX)/2, 1e-9)
	assert.InDelta(t, 2532.0/2-200, (b.MinY+b.MaxY)/2, 1e-9)
}

func TestSnapshot_ChristmasBreakAndSaturdayShoot(t *testing.T) {
	req := referenceRequest(
		testutil.WithWeekendWorkDays("2026-01-17"),
		testutil.WithWeekdayOffDays(testutil.ChristmasBreak...),
	)
	req.Now = at("2025-12-24")
	req.Milestones = []domain.Milestone{
		testutil.NewTestMilestone("2025-12-24", "Christmas Eve"),
		testutil.NewTestMilestone("2026-01-17", "Saturday shoot", testutil.WithPlacement(domain.PlacementTop)),
		testutil.NewTestMilestone("2025-12-01", "Already past"),
	}

	snap, err := NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 25, snap.Progress.CompletedCount)
	assert.False(t, snap.Progress.TodayIsWorkingDay)

	_, ok := snap.Sequence.IndexOf(domain.MustParseDate("2026-01-17"))
	assert.True(t, ok)

	require.Len(t, snap.Milestones, 2)
	eve := snap.Milestones[0]
	assert.True(t, eve.IsToday)
	assert.True(t, eve.Anchor.Interpolated)
	assert.Equal(t, 24, eve.Anchor.Index)
	assert.Equal(t, 25, eve.Anchor.NextIndex)
	assert.Equal(t, snap.Points[24].Point.Midpoint(snap.Points[25].Point), snap.MilestonePoint(eve))

	sat := snap.Milestones[1]
	assert.Equal(t, 40, sat.Anchor.Index)
	assert.Equal(t, domain.PlacementTop, sat.Placement)
	assert.False(t, sat.IsToday)
}

func TestSnapshot_UnresolvableMilestoneIsWarningNotError(t *testing.T) {
	req := referenceRequest()
	req.Now = at("2025-11-17")
	req.Milestones = []domain.Milestone{testutil.NewTestMilestone("2026-06-01", "Premiere")}

	snap, err := NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, snap.Milestones)
	require.Len(t, snap.Warnings, 1)
	assert.True(t, errors.Is(snap.Warnings[0], domain.ErrUnresolvableMilestone))
}

func TestSnapshot_GridStrategy(t *testing.T) {
	req := referenceRequest()
	req.Now = at("2025-11-17")
	req.Shape = layout.Shape{Strategy: layout.StrategyGrid, Spacing: 60, Cols: 9, Rows: 9}

	snap, err := NewSnapshotService().Build(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, snap.Points, 75)

	req.Shape.Rows = 8 // 72 slots
	_, err = NewSnapshotService().Build(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestSnapshot_InvalidConfigErrors(t *testing.T) {
	svc := NewSnapshotService()

	req := referenceRequest(testutil.WithTotalDays(0))
	_, err := svc.Build(context.Background(), req)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	req = referenceRequest()
	req.Canvas.Width = 0
	_, err = svc.Build(context.Background(), req)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "canvas")
}

func TestSnapshot_ObserverReceivesEvent(t *testing.T) {
	obs := &recordingObserver{}
	req := referenceRequest()
	req.Now = at("2025-11-20")

	snap, err := NewSnapshotService(obs).Build(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "snapshot.build", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, snap.RunID, e.Fields["run_id"])
	assert.Equal(t, 4, e.Fields["completed_days"])
	assert.Equal(t, 75, e.Fields["total_days"])
}

func TestSnapshot_ObserverSeesFailure(t *testing.T) {
	obs := &recordingObserver{}
	_, err := NewSnapshotService(obs).Build(context.Background(), referenceRequest(testutil.WithTotalDays(-1)))
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, err, obs.events[0].Err)
}
