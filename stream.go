package tempuscore

/*
stream.go implements the Stream variant operations: XAdd, XRange.

================================================================================
PURPOSE
================================================================================

Stream is the valuekind.Value variant backing append-only, ID-ordered
entry logs under a single string-namespace key, the same shape as a
Redis stream. Unlike the other structured variants, entries are never
mutated or removed individually; XAdd only ever appends.

================================================================================
STRUCTURE
================================================================================

valuekind.Stream is a slice of valuekind.StreamEntry{ID, Payload}, kept
in append order, which is also ID order since IDs only ever increase.

================================================================================
STREAM ID ASSIGNMENT
================================================================================

Stream IDs come from the process-wide monotonic counter
(internal/streamid), not a per-key counter; they are not persisted
across restart on their own, so AOF replay reserves the highest ID seen
in the log before allowing any fresh XAdd, ensuring a freshly assigned
ID after a load never collides with a replayed entry's ID.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
XAdd appends payload to key's Stream under a freshly allocated ID and
returns that ID, creating the stream (and the key) if necessary.

BEHAVIOR:
The ID is allocated from streamCounter after the store lock is taken,
so IDs within a key's Stream increase in append order even under
concurrent XAdd calls. When key
previously held a Bytes value, its numeric index entries are removed
first.

TIME COMPLEXITY: O(1) amortized.
*/
func (e *Engine) XAdd(key string, payload []byte) uint64 {
	e.mu.Lock()
	id := e.streamCounter.Next()
	e.maybeRemoveIfExpiredString(key)

	entry, ok := e.stringLRU.Peek(key)
	var s valuekind.Stream
	if ok && entry.Value.Kind == valuekind.KindStream {
		s = entry.Value.Stream
	} else {
		if ok && entry.Value.Kind == valuekind.KindBytes {
			e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
		}
		s = nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s = append(s, valuekind.StreamEntry{ID: id, Payload: cp})
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromStream(s)})
	e.mu.Unlock()

	e.appendAOFXAdd(key, id, payload)
	return id
}

/*
XRange returns every entry of key's Stream whose ID falls in
[start, end] inclusive, framed as
[count:u32](id:u64,plen:u32,payload)*.

BEHAVIOR:
Pass 0 and ^uint64(0) for an unbounded range. Unlike LRange/ZRange,
bounds here are ID values, not positional indices, and there is no
clamping: an ID range that matches nothing simply yields a zero-count
frame.

TIME COMPLEXITY: O(n) in the Stream's entry count; entries are stored
in ID order but XRange still scans linearly rather than binary
searching the bounds.
*/
func (e *Engine) XRange(key string, start, end uint64) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindStream {
		return encodeStreamFrame(nil)
	}

	var out []valuekind.StreamEntry
	for _, se := range entry.Value.Stream {
		if se.ID >= start && se.ID <= end {
			out = append(out, se)
		}
	}
	return encodeStreamFrame(out)
}
