package tempuscore

/*
zset.go implements the SortedSet variant operations: ZAdd, ZRange.

================================================================================
PURPOSE
================================================================================

SortedSet is the valuekind.Value variant backing score-ordered member
sets under a single string-namespace key, the same shape as a Redis
sorted set. Unlike Set (set.go), membership here carries an associated
float64 score that determines iteration order.

================================================================================
STRUCTURE
================================================================================

valuekind.SortedSet is a plain map[string]float64 from member name to
score; there is no separately maintained sorted index. ZRange instead
sorts member names on demand: ascending by score, ties broken by member
name for determinism (tie order among equal scores is otherwise
arbitrary in a Redis sorted set, so callers should not depend on this
particular tie-break choice beyond "deterministic"). This trades
O(n log n) per ZRange call for a far simpler write path than maintaining
a skip list or balanced tree incrementally.
*/

import (
	"sort"

	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
ZAdd sets member's score inside key's SortedSet, creating it (and the
key) if necessary.

BEHAVIOR:
Re-adding an existing member updates its score in place rather than
inserting a duplicate entry. When key previously held a Bytes value,
its numeric index entries are removed first, matching the
replace-on-variant-mismatch rule shared with hash.go, list.go and
set.go.

TIME COMPLEXITY: O(1) expected for the map assignment; the O(n log n)
ordering cost is deferred entirely to ZRange.
*/
func (e *Engine) ZAdd(key string, score float64, member string) {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)

	entry, ok := e.stringLRU.Peek(key)
	var z valuekind.SortedSet
	if ok && entry.Value.Kind == valuekind.KindSortedSet {
		z = entry.Value.SortedSet
	} else {
		if ok && entry.Value.Kind == valuekind.KindBytes {
			e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
		}
		z = make(valuekind.SortedSet)
	}
	z[member] = score
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromSortedSet(z)})
	e.mu.Unlock()

	e.appendAOFZAdd(key, score, member)
}

/*
ZRange returns the [start, stop] slice of key's SortedSet, ordered
ascending by score, framed as [count:u32](itemlen:u32,itembytes)*
where each item is the member name.

BEHAVIOR:
Indices follow the same clamped, negative-counts-from-tail convention
as LRange (resolveRange, list.go).

ALGORITHM:
Collects every member name, sorts by (score, member) using sort.Slice,
then slices the clamped [lo, hi] window out of the sorted order.

TIME COMPLEXITY: O(n log n) in the SortedSet's size, dominated by the
sort; the underlying map holds no ordering of its own.
*/
func (e *Engine) ZRange(key string, start, stop int) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindSortedSet {
		return encodeItemsFrame(nil)
	}

	members := make([]string, 0, len(entry.Value.SortedSet))
	for m := range entry.Value.SortedSet {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		si, sj := entry.Value.SortedSet[members[i]], entry.Value.SortedSet[members[j]]
		if si != sj {
			return si < sj
		}
		return members[i] < members[j]
	})

	n := len(members)
	lo, hi := resolveRange(start, stop, n)
	if lo > hi {
		return encodeItemsFrame(nil)
	}
	out := make([][]byte, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, []byte(members[i]))
	}
	return encodeItemsFrame(out)
}
