package tempuscore

/*
Stats represents runtime performance metrics of the engine, combined
across both the string and binary namespaces.

================================================================================
PURPOSE
================================================================================

This structure tracks key operational indicators:

- Hits      -> Successful retrievals (valid key found)
- Misses    -> Failed lookups (missing or expired key)
- Evictions -> Entries removed due to LRU capacity constraints

These metrics provide visibility into engine effectiveness and
operational behavior across both namespaces combined.

================================================================================
OBSERVABILITY VALUE
================================================================================

Tracking engine statistics enables:

- Hit ratio analysis
- Capacity planning (is maxItems too small for the working set?)
- Debugging production behavior
- Evaluating TTL configuration effectiveness

For example:

    hit_ratio = Hits / (Hits + Misses)

================================================================================
CONCURRENCY MODEL
================================================================================

Stats fields are mutated under Engine.mu, the same sync.RWMutex
guarding every other piece of store state. Stats() takes the exclusive
Lock() rather than RLock(): Hits/Misses/Evictions are ordinary uint64
fields with no atomic access of their own, and every call site that
increments them (Get, GetB, GetLeaseB, the other typed read operations
such as HGet, SIsMember and RPop, and the eviction callbacks in
eviction.go) already holds the write lock when it does so. A snapshot
taken under RLock() while a writer held Lock() would be impossible by
definition, but taking Lock() here keeps the counters' synchronization
story uniform with the rest of the file instead of introducing the one
place that reasons about RWMutex read/write interleaving.

================================================================================
DESIGN SIMPLICITY
================================================================================

The struct is intentionally minimal:

- No internal locking
- No atomic counters
- Synchronization handled entirely at the Engine level

This keeps the data structure lightweight and avoids unnecessary
complexity.
*/
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

/*
Stats returns a snapshot of the engine's running counters.

RETURNS:
A copy of the current Hits/Misses/Evictions totals, combined across
both namespaces.

CONCURRENCY:
Acquires the exclusive Lock() (see CONCURRENCY MODEL above), so the
returned snapshot never observes a partially-updated set of counters.
*/
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
