package tempuscore

import "time"

/*
janitor.go runs the engine's periodic reaper: a background sweep for
expired keys that nobody has touched since they expired.

================================================================================
ROLE IN ENGINE LIFECYCLE
================================================================================

Lazy expiration (checked by Get, Set, TTL and the other per-key
operations, see ttl.go) only reclaims a
key the moment something happens to touch it again. A key that expires
and is never looked up again would otherwise sit in the LRU forever,
still counted against capacity and still visible to Keys(). The reaper
exists to bound that: started by New (engine.go) unless the configured
reaperInterval is zero, stopped by Close via reaperStop/reaperStopOnce.

================================================================================
EXECUTION MODEL
================================================================================

One ticker drives one goroutine that sweeps both namespaces (string and
binary) on every tick, rather than running two independent tickers per
namespace; the two LRUs are swept together because they already share
one lock and one Stats.

================================================================================
CONCURRENCY & SAFETY
================================================================================

reapExpired takes the same exclusive Engine.mu every other mutating
operation uses, rather than a lock private to the cleanup path, since
expiry must reconcile the numeric index and push keyspace notifications
in the same critical section as the LRU removal, exactly like a
capacity eviction does (see eviction.go).

================================================================================
PERFORMANCE CHARACTERISTICS
================================================================================

Each tick walks every live key in both namespaces (Keys(), an O(n)
snapshot) and checks its deadline, so the reaper's per-tick cost scales
with total key count, not with how many keys have actually expired.
This favors simplicity over throughput at very large namespace sizes.

================================================================================
DESIGN PHILOSOPHY
================================================================================

A shorter reaperInterval reclaims memory sooner at the cost of more
frequent full-namespace scans; a disabled reaper (reaperInterval <= 0)
relies entirely on lazy expiration and is appropriate when memory
pressure from unaccessed expired keys is not a concern.
*/

/*
startReaper launches the background goroutine that periodically calls
reapExpired.

BEHAVIOR:
A no-op if e.reaperInterval <= 0, which is how WithCleanupInterval
disables the reaper.

SHUTDOWN MECHANISM:
The goroutine selects between the ticker firing and e.reaperStop being
closed; Close (engine.go) closes reaperStop exactly once via
reaperStopOnce, and the goroutine stops its own ticker before returning
since a ticker not explicitly stopped leaks its underlying timer.
*/
func (e *Engine) startReaper() {
	if e.reaperInterval <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(e.reaperInterval) * time.Millisecond)

	go func() {
		for {
			select {
			case <-ticker.C:
				e.reapExpired()
			case <-e.reaperStop:
				ticker.Stop()
				return
			}
		}
	}()
}

/*
reapExpired scans both namespaces under the write lock and removes
every entry whose deadline has passed.

ALGORITHM:
Snapshot each namespace's live keys, then call the same
maybeRemoveIfExpiredString/maybeRemoveIfExpiredBinary helpers (ttl.go)
that every lazy-expiration check site already uses, so reaping and
on-access expiry share one code path for reconciling the numeric index
and emitting one expired notification per removed key.

TIME COMPLEXITY: O(n) in the combined size of both namespaces.
*/
func (e *Engine) reapExpired() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, key := range e.stringLRU.Keys() {
		e.maybeRemoveIfExpiredString(key)
	}
	for _, key := range e.binaryLRU.Keys() {
		e.maybeRemoveIfExpiredBinary(key)
	}
}
