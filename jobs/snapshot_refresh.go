package jobs

import (
	"github.com/sirupsen/logrus"

	"github.com/svan-b/economic-indicators-dashboard/services"
)

// SnapshotRefreshJob rebuilds the cached dataset snapshot on a schedule.
// Rebuilding is deterministic, so the job only keeps the cache warm; once a
// real data feed replaces the static builder it becomes the refresh path.
type SnapshotRefreshJob struct {
	SnapshotService *services.SnapshotService
}

func NewSnapshotRefreshJob(snapshotService *services.SnapshotService) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{SnapshotService: snapshotService}
}

func (j *SnapshotRefreshJob) Run() {
	logrus.Info("Starting Snapshot Refresh Job")

	dataset := j.SnapshotService.Refresh()

	logrus.WithFields(logrus.Fields{
		"build_count":      j.SnapshotService.BuildCount(),
		"metric_count":     dataset.Metrics.Len(),
		"time_series_rows": len(dataset.TimeSeries.Rows),
	}).Info("Snapshot Refresh Job completed")
}
