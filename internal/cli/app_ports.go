package cli

import "github.com/TheIllusionist93/DOCTOR/internal/app"

func (a *App) snapshotUseCase() app.SnapshotUseCase {
	if a.BuildSnapshot != nil {
		return a.BuildSnapshot
	}
	return a.Snapshots
}
