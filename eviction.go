package tempuscore

/*
eviction.go wires LRU capacity pressure into the rest of the engine.

================================================================================
EVICTION POLICY
================================================================================

The eviction mechanics (list surgery on the shared map) live in
internal/lrustore.LRU.evictOldest, generic over key and value type and
shared by both namespaces. This file holds the *policy* half: what
happens when an eviction fires. Each namespace's lrustore.LRU is
constructed (in New, engine.go) with one of these two functions as its
onEvict hook, invoked synchronously from inside Put/Resize while the
caller already holds e.mu.

================================================================================
ALGORITHM
================================================================================

On every eviction:

1. If the evicted value was a Bytes variant, remove its entries from
   the numeric index (string namespace only; binary has no index).
2. Increment Stats.Evictions.
3. Push one eviction notification onto the notify queue.

All three steps run before the triggering Put/Resize returns, so a
caller observing a notification for an eviction can trust the store
already reflects it.
*/

import (
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/notify"
	"github.com/tempuscore/engine/internal/valuekind"
)

/*
onStringEvicted is the LRU eviction hook wired into e.stringLRU.

RESPONSIBILITY:
Reconciles the numeric index for the evicted key (only Bytes-variant
values are ever indexed), then records the eviction in Stats and the
notification queue.

CONSISTENCY GUARANTEE:
The caller (lrustore.LRU.evictOldest, itself invoked from Put/Resize
under e.mu) holds the write lock already, so this runs fully
synchronized with the rest of the store; there is no window where the
index, Stats, or notifyQ can observe the eviction before the LRU itself
does, or vice versa.

NOTE: runs under e.mu already held by the caller; must not attempt to
re-acquire it.
*/
func (e *Engine) onStringEvicted(key string, entry lrustore.Entry[valuekind.Value]) {
	if entry.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
	}
	e.stats.Evictions++
	e.notifyQ.Push(notify.KindEvicted, key, uint64(lrustore.NowMs()))
}

/*
onBinaryEvicted is the binary-namespace eviction hook.

RESPONSIBILITY:
Records the eviction in Stats and the notification queue. Numeric
indexes only ever cover the string namespace (internal/numindex
operates on string keys paired with JSON-shaped Bytes values), so there
is no index reconciliation step here, unlike onStringEvicted.

CONSISTENCY GUARANTEE: same as onStringEvicted; runs under e.mu already
held by the caller.
*/
func (e *Engine) onBinaryEvicted(key string, _ lrustore.Entry[valuekind.Value]) {
	e.stats.Evictions++
	e.notifyQ.Push(notify.KindEvicted, notify.BinaryNotifyKey([]byte(key)), uint64(lrustore.NowMs()))
}
