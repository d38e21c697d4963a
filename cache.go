package tempuscore

/*
cache.go holds the string-namespace Bytes operations: Set, SetWithTTL,
Get, GetIntoBuffer, Remove, and Keys.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

The engine is not a single cache but two: a string-keyed LRU and a
binary-keyed LRU (see item.go for the latter's half of the API),
sharing one Stats, one AOF writer, and one set of numeric indexes. This
file is the string namespace's Bytes surface. The shape of every
operation here is the same three steps: lock, touch the LRU, unlock,
with the AOF append (when applicable) happening only after the lock is
released.

================================================================================
VALUE MODEL
================================================================================

Keys live in one instance of the dual-namespace generic lrustore.LRU;
values are the six-variant valuekind.Value tagged union (Bytes, Hash,
List, Set, SortedSet, Stream). This file only ever produces or
consumes the Bytes variant:

- A write to a key that currently holds a non-Bytes variant replaces it
  outright -> Set/SetWithTTL never inspect the previous Kind.
- A wrong-variant Get (key holds Hash/List/Set/SortedSet/Stream) returns
  `missing`, the same as a key that was never set.

================================================================================
EXPIRATION STRATEGY
================================================================================

Deadlines are carried on lrustore.Entry[valuekind.Value], not on a
separate expiry map. Every accessor in this file calls
maybeRemoveIfExpiredString(key) before touching the LRU, so expired
keys are lazily reclaimed on next access; janitor.go's background
reaper independently sweeps keys that are never accessed again.

================================================================================
CONCURRENCY MODEL
================================================================================

All six operations serialize on Engine.mu, the same lock the binary
namespace, the numeric indexes, and Stats share. New() and the
capacity/janitor wiring that drive both namespace LRUs live in
engine.go and janitor.go, not here.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
Set stores val as the Bytes value of key in the string namespace, with
no TTL.

BEHAVIOR:
An existing TTL on key, if any, is cleared -> a plain Set always
replaces the whole entry, deadline included, never merely the payload.

TIME COMPLEXITY: O(1) amortized for the LRU put, plus whatever the
registered numeric indexes (internal/numindex) cost to update.
*/
func (e *Engine) Set(key string, val []byte) {
	e.setStringBytes(key, val, nil)
}

/*
SetWithTTL is Set plus a deadline ttlMs milliseconds from now.

PARAMETERS:
- key   -> the string-namespace key to write
- val   -> the Bytes payload to store
- ttlMs -> milliseconds from the call until key expires

TTL IMPLEMENTATION:
The deadline is computed once, up front, from lrustore.NowMs() and
lrustore.Deadline(now, ttlMs), then carried on the entry itself; there
is no separate timer per key. Expiration is enforced lazily (see
EXPIRATION STRATEGY above) and, independently, by the background
reaper in janitor.go.
*/
func (e *Engine) SetWithTTL(key string, val []byte, ttlMs int64) {
	now := lrustore.NowMs()
	deadline := lrustore.Deadline(now, ttlMs)
	e.setStringBytes(key, val, &deadline)
	e.appendAOFExpire(key, uint64(ttlMs))
}

func (e *Engine) setStringBytes(key string, val []byte, deadline *int64) {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)

	if prev, hadPrev := e.stringLRU.Peek(key); hadPrev && prev.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, prev.Value.Bytes.Bytes())
	}
	newVal := valuekind.FromBytes(val)
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: newVal, Deadline: deadline})
	e.indexes.OnInsert(key, val)
	e.mu.Unlock()

	e.appendAOFSet(key, val)
}

/*
Get returns key's Bytes payload and true, or (nil, false) if key is
missing, expired, or holds a non-Bytes variant.

EXECUTION FLOW:
1. Lazily expire key if its deadline has passed.
2. Look the key up in the string LRU; a hit promotes it to most-recently-used.
3. Reject anything that isn't the Bytes variant as a miss.
4. Clone the stored bytes so the caller never aliases engine storage.

TIME COMPLEXITY: O(1) for the lookup plus O(n) to clone the payload.
*/
func (e *Engine) Get(key string) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindBytes {
		e.stats.Misses++
		return nil, false
	}
	e.stats.Hits++
	return entry.Value.Bytes.Clone().Bytes(), true
}

/*
GetIntoBuffer copies key's Bytes payload into dst and returns the
written length.

RETURNS:
Follows a copy-into-caller-buffer convention: a non-negative return is
bytes written (0 for an empty value), -1 means missing/expired/
non-Bytes, and any other negative return is -(required buffer size)
when dst is too small for the stored payload.

WHY THIS MATTERS:
Lets a caller that already owns a reusable buffer avoid the allocation
Get would otherwise force on every call.
*/
func (e *Engine) GetIntoBuffer(key string, dst []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindBytes {
		e.stats.Misses++
		return -1
	}
	e.stats.Hits++
	payload := entry.Value.Bytes.Bytes()
	if len(payload) > len(dst) {
		return -len(payload)
	}
	copy(dst, payload)
	return len(payload)
}

/*
Remove deletes key from the string namespace.

RETURNS:
true if key existed and was not already expired; false otherwise.

CONSISTENCY GUARANTEE:
When key held a Bytes value, its registered numeric index entries (see
internal/numindex) are dropped under the same lock as the LRU removal,
so the index never lags the store by an observable window. The AOF
remove record is appended only after that lock is released, and only
when the removal actually happened.
*/
func (e *Engine) Remove(key string) bool {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Pop(key)
	if ok && entry.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
	}
	e.mu.Unlock()

	if ok {
		e.appendAOFRemove(key)
	}
	return ok
}

/*
Keys returns every live key in the string namespace, in no particular
order.

BEHAVIOR:
Expired-but-not-yet-reaped keys are still included; callers that need
an exact live view should pair this with a Get per key, which performs
the lazy expiration check this function deliberately skips.

CONCURRENCY:
Takes RLock() rather than Lock(): listing keys neither mutates LRU
order nor touches Stats, so it is safe to run alongside other readers
(unlike Stats(), see stats.go, whose counters every writer mutates
in place).
*/
func (e *Engine) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stringLRU.Keys()
}
