package tempuscore

/*
item.go holds the binary-namespace Bytes operations: SetB, GetB,
GetIntoBufferB, the lease pair GetLeaseB/ReleaseLease, and RemoveB.

================================================================================
DESIGN PURPOSE
================================================================================

The engine keeps two independent LRU namespaces (string-keyed and
binary-keyed) rather than coercing every caller onto string keys. This
file is the binary namespace's half of the Bytes API surface; cache.go
is the string-keyed half. Splitting by namespace instead of by value
kind means a caller fetching a raw-byte key never pays for a
[]byte(key) conversion on the hot path, and it keeps the binary LRU's
eviction/janitor wiring (see eviction.go, janitor.go) entirely separate
from the string LRU's.

================================================================================
STRUCTURE
================================================================================

Every value is paired with an optional deadline, tracked generically by
lrustore.Entry[valuekind.Value] (internal/lrustore) rather than a
dedicated expiration field on this file's types. valuekind.Value is a
tagged union over Bytes/Hash/List/Set/SortedSet/Stream; the functions
here only ever produce or consume the Bytes variant, and treat any
other Kind found under a key as equivalent to a miss.

================================================================================
EXPIRATION STRATEGY
================================================================================

Expiration is lazy, not swept eagerly from this file: every accessor
calls maybeRemoveIfExpiredBinary(key) before touching the LRU, so a key
past its deadline is deleted on the next access that notices it,
whichever operation that happens to be. The background reaper in
janitor.go independently sweeps expired keys on a timer, so a key that
is never accessed again still gets reclaimed.

================================================================================
WHY A LEASE PATH?
================================================================================

GetB and GetIntoBufferB both copy the stored payload before handing it
back, which is the safe default: the caller can't observe a mutation
race with a concurrent SetB, and the LRU is free to evict or overwrite
the entry the instant the lock is released. For large binary payloads
that copy is wasted work if the caller only needs to read the bytes
once. GetLeaseB/ReleaseLease trade that safety margin for a zero-copy
borrow: the payload is reference-counted (valuekind.Bytes.Retain) so it
survives until every lease on it is released, even if the key itself
is removed or overwritten in the meantime.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
SetB stores val as the Bytes value of rawKey in the binary namespace.

BEHAVIOR:
Replaces whatever was previously stored under rawKey, including any
other valuekind.Value variant; SetB never inspects the prior Kind. No
TTL is attached, mirroring Set's no-TTL contract in cache.go.

TIME COMPLEXITY: O(1) amortized, same as the underlying LRU's Put.
*/
func (e *Engine) SetB(rawKey []byte, val []byte) {
	key := string(rawKey)
	e.mu.Lock()
	e.maybeRemoveIfExpiredBinary(key)
	e.binaryLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromBytes(val)})
	e.mu.Unlock()

	e.appendAOFSetBinary(rawKey, val)
}

/*
GetB returns rawKey's Bytes payload and true, or (nil, false) if
missing, expired, or a non-Bytes variant.

RETURNS:
A freshly cloned copy of the stored bytes, never a slice aliasing the
LRU's internal storage; the caller owns the returned slice outright and
may mutate it freely.

TIME COMPLEXITY: O(1) for the lookup plus O(n) to clone the payload,
where n is the payload length.
*/
func (e *Engine) GetB(rawKey []byte) ([]byte, bool) {
	key := string(rawKey)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredBinary(key)
	entry, ok := e.binaryLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindBytes {
		e.stats.Misses++
		return nil, false
	}
	e.stats.Hits++
	return entry.Value.Bytes.Clone().Bytes(), true
}

/*
GetIntoBufferB is GetIntoBuffer for the binary namespace.

RETURNS:
Follows the same copy-into-caller-buffer convention as cache.go's
GetIntoBuffer: a non-negative return is the number of bytes written, -1
means rawKey was missing/expired/non-Bytes, and any other negative
return is -(required buffer size) for a dst that was too small.

WHY THIS CONVENTION?
Avoids an allocation on the caller's behalf for the common case where
the caller already owns a reusable buffer sized to the expected
payload; GetB exists for callers that would rather take the allocation.
*/
func (e *Engine) GetIntoBufferB(rawKey []byte, dst []byte) int {
	key := string(rawKey)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredBinary(key)
	entry, ok := e.binaryLRU.Get(key)
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
Lease is a temporary shared borrow of a binary-namespace Bytes payload.

STRUCTURE FIELDS:
- Data -> the borrowed payload bytes; valid only until ReleaseLease(lease)
- refs -> the shared reference count backing this borrow (see
          valuekind.Bytes.Retain/Release); unexported, callers only ever
          pass the Lease value back to ReleaseLease

USAGE CONTRACT:
Every Lease returned by GetLeaseB must be matched with exactly one
ReleaseLease call. Forgetting to release a lease leaves the reference
count raised; calling ReleaseLease twice on the same lease decrements
it twice. The count only tracks outstanding leases: the payload's
memory is reclaimed by the garbage collector once no entry or Lease
refers to it, whatever the count says.
*/
type Lease struct {
	Data []byte
	refs *int32
}

/*
GetLeaseB takes one additional shared reference to rawKey's Bytes
payload and returns a borrow without copying, plus the handle needed to
release it.

BEHAVIOR:
ok is false for the same reasons GetB would fail (missing, expired, or
a non-Bytes variant under rawKey); no reference is taken in that case.

WHY REFCOUNTING?
GetB's copy-per-read approach is wasted work for large payloads read
once and discarded. GetLeaseB instead hands back the engine's own
storage directly, protected from concurrent eviction by a reference
count rather than a copy: the payload is only freed once every
outstanding Lease on it has called ReleaseLease, even if SetB or RemoveB
mutates or removes the key out from under the lease in the meantime.

TIME COMPLEXITY: O(1); no payload copy is performed.
*/
func (e *Engine) GetLeaseB(rawKey []byte) (lease Lease, ok bool) {
	key := string(rawKey)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredBinary(key)
	entry, found := e.binaryLRU.Get(key)
	if !found || entry.Value.Kind != valuekind.KindBytes {
		e.stats.Misses++
		return Lease{}, false
	}
	e.stats.Hits++
	data, refs := entry.Value.Bytes.Retain()
	return Lease{Data: data, refs: refs}, true
}

/*
ReleaseLease drops the shared reference acquired by GetLeaseB.

RESPONSIBILITY:
Pairs with exactly one prior GetLeaseB call (see Lease's USAGE
CONTRACT). Takes no Engine receiver because the reference count lives
on the Lease itself, not on any particular Engine: a Lease outlives
whatever Engine handed it out.
*/
func ReleaseLease(lease Lease) {
	valuekind.Release(lease.refs)
}

/*
RemoveB deletes rawKey from the binary namespace.

RETURNS:
true if rawKey existed and was not already expired at the time of
removal; false otherwise (including when the key had already lapsed
its TTL, in which case maybeRemoveIfExpiredBinary removes it first and
RemoveB reports no match).

CONSISTENCY GUARANTEE:
A true return is always followed by an AOF remove-binary record (see
aof.go), appended after the lock guarding the LRU is released. A
concurrent reader can therefore observe the removal before the AOF
records it, and a crash in that window loses the record; the AOF never
records a removal that did not happen in memory.
*/
func (e *Engine) RemoveB(rawKey []byte) bool {
	key := string(rawKey)
	e.mu.Lock()
	e.maybeRemoveIfExpiredBinary(key)
	_, ok := e.binaryLRU.Pop(key)
	e.mu.Unlock()

	if ok {
		e.appendAOFRemoveBinary(rawKey)
	}
	return ok
}
