package app

import "context"

type SnapshotUseCase interface {
	Build(ctx context.Context, req SnapshotRequest) (*Snapshot, error)
}
