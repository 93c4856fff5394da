package shared

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// UploadRateLimiter implements thread-safe minimum-interval limiting for the
// upload endpoint. Unlike a blocking limiter it never sleeps on the request
// path; callers that arrive too early are rejected outright.
type UploadRateLimiter struct {
	minimumInterval time.Duration // Minimum interval between accepted uploads
	lastAcceptTime  time.Time     // Timestamp of the last accepted upload
	mutex           sync.Mutex    // Ensures thread-safe access
	acceptedCount   int64         // Total number of accepted uploads
	rejectedCount   int64         // Total number of rejected uploads
}

// NewUploadRateLimiter creates a new limiter with the specified minimum interval
func NewUploadRateLimiter(minimumInterval time.Duration) *UploadRateLimiter {
	return &UploadRateLimiter{
		minimumInterval: minimumInterval,
	}
}

// Allow reports whether an upload may proceed now, recording the attempt.
// A zero interval disables limiting.
func (limiter *UploadRateLimiter) Allow() bool {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	if limiter.minimumInterval <= 0 {
		limiter.lastAcceptTime = time.Now()
		limiter.acceptedCount++
		return true
	}

	elapsed := time.Since(limiter.lastAcceptTime)
	if !limiter.lastAcceptTime.IsZero() && elapsed < limiter.minimumInterval {
		limiter.rejectedCount++

		logrus.WithFields(logrus.Fields{
			"component":        "UploadRateLimiter",
			"elapsed_time":     elapsed,
			"minimum_interval": limiter.minimumInterval,
			"rejected_count":   limiter.rejectedCount,
		}).Debug("Upload rejected by rate limiter")

		return false
	}

	limiter.lastAcceptTime = time.Now()
	limiter.acceptedCount++
	return true
}

// GetAcceptedCount returns the total number of accepted uploads
func (limiter *UploadRateLimiter) GetAcceptedCount() int64 {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()
	return limiter.acceptedCount
}

// GetRejectedCount returns the total number of rejected uploads
func (limiter *UploadRateLimiter) GetRejectedCount() int64 {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()
	return limiter.rejectedCount
}

// Reset resets the limiter state
func (limiter *UploadRateLimiter) Reset() {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	limiter.lastAcceptTime = time.Time{}
	limiter.acceptedCount = 0
	limiter.rejectedCount = 0

	logrus.WithField("component", "UploadRateLimiter").Debug("Reset upload rate limiter state")
}
