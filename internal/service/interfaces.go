package service

import (
	"context"

	"github.com/TheIllusionist93/DOCTOR/internal/contract"
)

type SnapshotService interface {
	Build(ctx context.Context, req contract.SnapshotRequest) (*contract.Snapshot, error)
}
