package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotServiceCachesBetweenReads(t *testing.T) {
	service := NewSnapshotService(time.Hour)

	first := service.Current()
	second := service.Current()

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), service.BuildCount())
}

func TestSnapshotServiceRefreshRebuilds(t *testing.T) {
	service := NewSnapshotService(time.Hour)

	first := service.Current()
	refreshed := service.Refresh()

	assert.NotSame(t, first, refreshed)
	assert.Equal(t, int64(2), service.BuildCount())

	// Rebuilt snapshots are identical: the builder is deterministic.
	assert.Equal(t, first.TimeSeries, refreshed.TimeSeries)
}

func TestSnapshotServiceExpiry(t *testing.T) {
	service := NewSnapshotService(time.Nanosecond)

	service.Current()
	time.Sleep(time.Millisecond)

	assert.True(t, service.ExpireIfStale())
	assert.False(t, service.ExpireIfStale())

	service.Current()
	assert.Equal(t, int64(2), service.BuildCount())
}

func TestSnapshotServiceZeroTTLNeverExpires(t *testing.T) {
	service := NewSnapshotService(0)

	first := service.Current()
	time.Sleep(time.Millisecond)

	assert.False(t, service.ExpireIfStale())
	assert.Same(t, first, service.Current())
}
