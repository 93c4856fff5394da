package jobs

import (
	"github.com/sirupsen/logrus"

	"github.com/svan-b/economic-indicators-dashboard/services"
)

type CacheCleanupJob struct {
	SnapshotService *services.SnapshotService
}

func NewCacheCleanupJob(snapshotService *services.SnapshotService) *CacheCleanupJob {
	return &CacheCleanupJob{SnapshotService: snapshotService}
}

func (j *CacheCleanupJob) Run() {
	logrus.Info("Starting Cache Cleanup Job")

	dropped := j.SnapshotService.ExpireIfStale()

	logrus.WithFields(logrus.Fields{
		"snapshot_dropped": dropped,
	}).Info("Cache Cleanup Job completed")
}
