package lrustore

import (
	"math"
	"time"
)

// NowMs returns the current wall clock time as milliseconds since the
// Unix epoch.
func NowMs() int64 {
	return time.Now().UnixMilli()
}

// Deadline computes an absolute deadline for a TTL expressed in
// milliseconds from now, saturating on overflow rather than wrapping.
func Deadline(nowMs int64, ttlMs int64) int64 {
	if ttlMs <= 0 {
		return nowMs
	}
	const maxMs = int64(math.MaxInt64)
	if ttlMs > maxMs-nowMs {
		return maxMs
	}
	return nowMs + ttlMs
}
