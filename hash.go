package tempuscore

/*
hash.go implements the Hash variant operations: HSet, HGet, HGetAll.

================================================================================
PURPOSE
================================================================================

valuekind.Value is a tagged union; Hash is the variant that stores a
field/value map under a single string-namespace key, the same shape as
a Redis hash. This file is the Hash half of the typed-value model's
operation surface, parallel to cache.go (Bytes), list.go (List), and
set.go (Set).

================================================================================
STRUCTURE
================================================================================

A key touched by HSet that currently holds a non-Hash variant (or
nothing at all) is replaced with a fresh valuekind.Hash, matching the
typed-value-model rule used everywhere in this engine: a write always
wins over whatever variant was there before, and the previous variant's
side effects (index entries, for a Bytes value) are torn down first.

================================================================================
WHY A SEPARATE FRAME FORMAT?
================================================================================

HGetAll returns a self-describing binary frame rather than a Go map,
since the Engine's public surface is consumed across a command
boundary (commandops.go) as well as directly from Go; encodeHashFrame
keeps the wire representation in one place rather than duplicating it
per call site.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
HSet sets field to val inside key's Hash, creating the hash (and the
key) if necessary.

BEHAVIOR:
When key previously held a Bytes value, its numeric index entries are
removed before the Hash replaces it, since the index only ever covers
Bytes values. When key already held a Hash, field is merged into the
existing map rather than replacing the whole Hash.

TIME COMPLEXITY: O(1) amortized.
*/
func (e *Engine) HSet(key, field string, val []byte) {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)

	entry, ok := e.stringLRU.Peek(key)
	var h valuekind.Hash
	if ok && entry.Value.Kind == valuekind.KindHash {
		h = entry.Value.Hash
	} else {
		if ok && entry.Value.Kind == valuekind.KindBytes {
			e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
		}
		h = make(valuekind.Hash)
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	h[field] = cp
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromHash(h)})
	e.mu.Unlock()

	e.appendAOFHSet(key, field, val)
}

/*
HGet returns field's value inside key's Hash, or (nil, false) if key is
missing, expired, holds a non-Hash variant, or lacks field.

RETURNS:
A copy of the stored value, never a slice aliasing the Hash's internal
storage.
*/
func (e *Engine) HGet(key, field string) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindHash {
		e.stats.Misses++
		return nil, false
	}
	val, found := entry.Value.Hash[field]
	if !found {
		e.stats.Misses++
		return nil, false
	}
	e.stats.Hits++
	out := make([]byte, len(val))
	copy(out, val)
	return out, true
}

/*
HGetAll returns key's entire Hash framed as
[count:u32](keylen:u32,keybytes,vallen:u32,valbytes)*.

BEHAVIOR:
A missing key, an expired key, or a non-Hash variant all return a
zero-count frame rather than nil or an error, so callers on the wire
side never need a separate not-found case.

TIME COMPLEXITY: O(n) in the number of fields in the Hash.
*/
func (e *Engine) HGetAll(key string) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Get(key)
	if !ok || entry.Value.Kind != valuekind.KindHash {
		e.stats.Misses++
		return encodeHashFrame(nil)
	}
	e.stats.Hits++
	return encodeHashFrame(entry.Value.Hash)
}
