package contract

import (
	"github.com/TheIllusionist93/DOCTOR/internal/app"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

type CanvasSize = app.CanvasSize

func DefaultCanvas() CanvasSize {
	return app.DefaultCanvas()
}

type SnapshotRequest = app.SnapshotRequest

func NewSnapshotRequest(projectName string, schedule domain.ScheduleConfig) SnapshotRequest {
	return app.NewSnapshotRequest(projectName, schedule)
}

type Snapshot = app.Snapshot
