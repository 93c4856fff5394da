package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// SnapshotService caches the built dataset behind a TTL so request paths
// share one snapshot instead of rebuilding per call. Rebuilding is
// deterministic, so caching is unobservable to clients; it only keeps
// per-request work flat.
type SnapshotService struct {
	mutex      sync.RWMutex
	snapshot   *Dataset
	builtAt    time.Time
	ttl        time.Duration
	buildCount int64
	metrics    *shared.ServiceMetrics
}

// NewSnapshotService creates a snapshot service with the given TTL. A zero or
// negative TTL disables expiry; the first snapshot then lives forever.
func NewSnapshotService(ttl time.Duration) *SnapshotService {
	return &SnapshotService{
		ttl:     ttl,
		metrics: shared.NewServiceMetrics("Snapshot_Service"),
	}
}

// Current returns the cached dataset, rebuilding first if the snapshot is
// missing or expired.
func (s *SnapshotService) Current() *Dataset {
	s.mutex.RLock()
	if s.snapshot != nil && !s.expiredLocked() {
		snapshot := s.snapshot
		s.mutex.RUnlock()
		return snapshot
	}
	s.mutex.RUnlock()

	return s.Refresh()
}

// Refresh rebuilds the snapshot unconditionally and returns it.
func (s *SnapshotService) Refresh() *Dataset {
	start := time.Now()
	dataset := BuildDataset()

	s.mutex.Lock()
	s.snapshot = dataset
	s.builtAt = time.Now()
	s.buildCount++
	count := s.buildCount
	s.mutex.Unlock()

	s.metrics.RecordRequest(true, time.Since(start))

	logrus.WithFields(logrus.Fields{
		"component":   "SnapshotService",
		"build_count": count,
		"build_time":  time.Since(start),
		"rows":        len(dataset.TimeSeries.Rows),
	}).Debug("Dataset snapshot rebuilt")

	return dataset
}

// ExpireIfStale drops an expired snapshot so the next read rebuilds. Returns
// whether anything was dropped.
func (s *SnapshotService) ExpireIfStale() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.snapshot == nil || !s.expiredLocked() {
		return false
	}
	s.snapshot = nil
	return true
}

// BuildCount returns how many times the snapshot has been rebuilt.
func (s *SnapshotService) BuildCount() int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.buildCount
}

// Metrics exposes the service's request metrics.
func (s *SnapshotService) Metrics() *shared.ServiceMetrics {
	return s.metrics
}

func (s *SnapshotService) expiredLocked() bool {
	if s.ttl <= 0 {
		return false
	}
	return time.Since(s.builtAt) > s.ttl
}
