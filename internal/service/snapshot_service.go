package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/layout"
	"github.com/TheIllusionist93/DOCTOR/internal/scheduler"
	"github.com/google/uuid"
)

type snapshotService struct {
	observer UseCaseObserver
}

func NewSnapshotService(observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{observer: useCaseObserverOrNoop(observers)}
}

// Build runs the full pipeline: schedule, layout, progress, milestones and
// centering. Nothing is drawn here.
func (s *snapshotService) Build(ctx context.Context, req contract.SnapshotRequest) (*contract.Snapshot, error) {
	startedAt := time.Now()
	runID := uuid.New().String()

	snap, err := s.build(req, runID)

	fields := map[string]any{"run_id": runID}
	if snap != nil {
		fields["total_days"] = snap.Total()
		fields["completed_days"] = snap.Progress.CompletedCount
		fields["milestones"] = len(snap.Milestones)
		fields["milestone_warnings"] = len(snap.Warnings)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "snapshot.build",
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: startedAt,
	})
	return snap, err
}

func (s *snapshotService) build(req contract.SnapshotRequest, runID string) (*contract.Snapshot, error) {
	if err := validateCanvas(req.Canvas); err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := domain.DateOf(now)

	seq, err := scheduler.Generate(req.Schedule)
	if err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}

	raw, err := layout.Build(seq.Len(), req.Shape)
	if err != nil {
		return nil, fmt.Errorf("building layout: %w", err)
	}

	progress := scheduler.Locate(seq, today)
	milestones, warnings := scheduler.Resolve(req.Milestones, seq, raw, today)
	centered := layout.Center(raw, float64(req.Canvas.Width), float64(req.Canvas.Height), req.Canvas.VerticalBias)

	return &contract.Snapshot{
		RunID:       runID,
		GeneratedAt: now,
		ProjectName: req.ProjectName,
		Today:       today,
		Sequence:    seq,
		Layout:      raw,
		Points:      centered,
		Canvas:      req.Canvas,
		Progress:    progress,
		Percentage:  progress.Percentage(seq.Len()),
		Milestones:  milestones,
		Warnings:    warnings,
	}, nil
}

func validateCanvas(c contract.CanvasSize) error {
	if c.Width <= 0 || c.Height <= 0 {
		return &domain.ConfigError{
			Field:  "canvas",
			Value:  strconv.Itoa(c.Width) + "x" + strconv.Itoa(c.Height),
			Reason: "width and height must be positive",
		}
	}
	return nil
}
