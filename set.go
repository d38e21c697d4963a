package tempuscore

/*
set.go implements the Set variant operations: SAdd, SIsMember.

================================================================================
PURPOSE
================================================================================

Set is the valuekind.Value variant backing unordered unique-membership
collections under a single string-namespace key, the same shape as a
Redis set. It complements list.go's ordered List and hash.go's keyed
Hash as the third structured variant.

================================================================================
STRUCTURE
================================================================================

Members are keyed internally by their raw-byte identity (string(member))
the same way the binary namespace keys its LRU (see item.go), so two
equal byte slices are the same member regardless of how or where they
were allocated by the caller. valuekind.Set is a map from that identity
string to the member's own byte slice, which lets membership checks and
insertion both run in expected O(1).
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
SAdd adds member to key's Set, creating it (and the key) if necessary.

BEHAVIOR:
Adding a member already present is a no-op (the map assignment simply
overwrites an identical entry). When key previously held a Bytes
value, its numeric index entries are removed first, matching the
replace-on-variant-mismatch rule shared with hash.go and list.go.

TIME COMPLEXITY: O(1) expected.
*/
func (e *Engine) SAdd(key string, member []byte) {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)

	entry, ok := e.stringLRU.Peek(key)
	var s valuekind.Set
	if ok && entry.Value.Kind == valuekind.KindSet {
		s = entry.Value.Set
	} else {
		if ok && entry.Value.Kind == valuekind.KindBytes {
			e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
		}
		s = make(valuekind.Set)
	}
	cp := make([]byte, len(member))
	copy(cp, member)
	s[string(member)] = cp
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromSet(s)})
	e.mu.Unlock()

	e.appendAOFSAdd(key, member)
}

/*
SIsMember reports whether member belongs to key's Set.

RETURNS:
false for a missing key, an expired key, or a non-Set variant, the
same miss-shaped outcome used across every typed-value accessor in this
engine.

TIME COMPLEXITY: O(1) expected.
*/
func (e *Engine) SIsMember(key string, member []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindSet {
		e.stats.Misses++
		return false
	}
	_, found := entry.Value.Set[string(member)]
	if found {
		e.stats.Hits++
	} else {
		e.stats.Misses++
	}
	return found
}
