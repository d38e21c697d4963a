package tempuscore

/*
list.go implements the List variant operations: LPush, RPop, LRange.

================================================================================
PURPOSE
================================================================================

List is the valuekind.Value variant backing ordered sequences under a
single string-namespace key, the same shape as a Redis list. Index 0 is
always the head; LPush inserts at the head and RPop removes from the
tail, so this file models a simple deque with push-left/pop-right
semantics rather than a generic two-ended list.

================================================================================
STRUCTURE
================================================================================

Underneath, valuekind.List is a plain [][]byte. LPush and RPop mutate it
by reslicing/reallocating rather than using a ring buffer or linked
list, trading O(n) worst-case LPush for simplicity; see TIME COMPLEXITY
notes on each function below.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
LPush prepends val to key's List, creating it (and the key) if
necessary.

BEHAVIOR:
When key previously held a Bytes value, its numeric index entries are
removed first, matching the same replace-on-variant-mismatch rule used
by hash.go and set.go.

TIME COMPLEXITY: O(n) in the current list length, since prepending
means allocating a new backing array and copying every existing
element one slot over.
*/
func (e *Engine) LPush(key string, val []byte) {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)

	entry, ok := e.stringLRU.Peek(key)
	var l valuekind.List
	if ok && entry.Value.Kind == valuekind.KindList {
		l = entry.Value.List
	} else {
		if ok && entry.Value.Kind == valuekind.KindBytes {
			e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
		}
		l = nil
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	l = append(valuekind.List{cp}, l...)
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromList(l)})
	e.mu.Unlock()

	e.appendAOFLPush(key, val)
}

/*
RPop removes and returns the tail element of key's List.

RETURNS:
ok is false if key is missing, expired, holds a non-List variant, or
the list is empty; val is the removed element's bytes in every success
case.

TIME COMPLEXITY: O(1) amortized; popping the tail only reslices.
*/
func (e *Engine) RPop(key string) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindList || len(entry.Value.List) == 0 {
		e.stats.Misses++
		return nil, false
	}
	last := len(entry.Value.List) - 1
	val := entry.Value.List[last]
	entry.Value.List = entry.Value.List[:last]
	e.stringLRU.Put(key, entry)
	e.stats.Hits++
	return val, true
}

/*
LRange returns the [start, stop] slice of key's List, framed as
[count:u32](itemlen:u32,itembytes)*.

BEHAVIOR:
Negative indices count from the tail, -1 being the last element,
matching the conventional Redis LRANGE semantics. Out-of-range bounds
are clamped rather than treated as an error, so a caller asking for
[0, 1000000] on a three-element list gets those three elements back
instead of an error.

TIME COMPLEXITY: O(k) where k is the number of elements in the
requested range, plus O(1) for the out-of-range cases.
*/
func (e *Engine) LRange(key string, start, stop int) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindList {
		return encodeItemsFrame(nil)
	}
	n := len(entry.Value.List)
	lo, hi := resolveRange(start, stop, n)
	if lo > hi {
		return encodeItemsFrame(nil)
	}
	out := make([][]byte, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, entry.Value.List[i])
	}
	return encodeItemsFrame(out)
}

/*
resolveRange converts a possibly-negative, possibly-out-of-bounds
[start, stop] pair into clamped inclusive [lo, hi] bounds over a
sequence of length n.

ALGORITHM:
Negative indices are first translated to their tail-relative positive
equivalent (start/stop += n), then clamped into [0, n-1]. Callers must
still check lo > hi themselves; an empty or fully out-of-range request
produces lo > hi rather than panicking.
*/
func resolveRange(start, stop, n int) (lo, hi int) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	return start, stop
}
