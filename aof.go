package tempuscore

// aof.go is the engine's append-only log boundary: EnableAOF/DisableAOF
// manage the writer, LoadAOF drives a full replay, and the appendAOF*
// helpers are the write-side calls scattered across cache.go, item.go,
// hash.go, list.go, set.go, zset.go, stream.go and ttl.go. Every write
// operation mutates memory first, releases the store lock, and only then
// appends, so a crash between those two steps loses the record but never
// fabricates one that didn't happen in memory.
//
// The Apply* methods implement aoflog.Applier. They run only from
// LoadAOF, which holds the store's write lock for the whole replay, so
// they touch the LRUs and indexes directly instead of going through the
// locking public operations (which would both deadlock on the already-held
// lock and re-append the record they were replaying).

import (
	"github.com/tempuscore/engine/internal/aoflog"
	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/numindex"
	"github.com/tempuscore/engine/internal/valuekind"
)

// EnableAOF opens (or creates) path and attaches it as the engine's
// append-only log. Subsequent writes append to it.
func (e *Engine) EnableAOF(path string) error {
	w, err := aoflog.OpenWriter(path)
	if err != nil {
		return err
	}
	e.aofMu.Lock()
	if e.aofWriter != nil {
		_ = e.aofWriter.Close()
	}
	e.aofWriter = w
	e.aofPath = path
	e.aofMu.Unlock()
	return nil
}

// DisableAOF closes and detaches the current AOF writer, if any. Further
// writes are no longer logged until EnableAOF is called again.
func (e *Engine) DisableAOF() {
	e.aofMu.Lock()
	defer e.aofMu.Unlock()
	if e.aofWriter != nil {
		_ = e.aofWriter.Close()
		e.aofWriter = nil
	}
	e.aofPath = ""
}

// LoadAOF replays path's records into the store in-place, holding the
// write lock for the entire replay. It does not itself enable path as
// the active AOF destination; callers that want both call EnableAOF
// separately.
func (e *Engine) LoadAOF(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return aoflog.Replay(path, e)
}

func (e *Engine) appendAOFSet(key string, val []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("SET", w.AppendSet(key, val))
}

func (e *Engine) appendAOFRemove(key string) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("REMOVE", w.AppendRemove(key))
}

func (e *Engine) appendAOFClear() {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("CLEAR", w.AppendClear())
}

func (e *Engine) appendAOFExpire(key string, ttlMs uint64) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("EXPIRE", w.AppendExpire(key, ttlMs))
}

func (e *Engine) appendAOFHSet(key, field string, val []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("HSET", w.AppendHSet(key, field, val))
}

func (e *Engine) appendAOFLPush(key string, val []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("LPUSH", w.AppendLPush(key, val))
}

func (e *Engine) appendAOFSAdd(key string, val []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("SADD", w.AppendSAdd(key, val))
}

func (e *Engine) appendAOFZAdd(key string, score float64, member string) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("ZADD", w.AppendZAdd(key, score, member))
}

func (e *Engine) appendAOFXAdd(key string, id uint64, payload []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("XADD", w.AppendXAdd(key, id, payload))
}

func (e *Engine) appendAOFSetBinary(key []byte, val []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("SET_B", w.AppendSetBinary(key, val))
}

func (e *Engine) appendAOFRemoveBinary(key []byte) {
	e.aofMu.Lock()
	w := e.aofWriter
	e.aofMu.Unlock()
	if w == nil {
		return
	}
	e.logAOFFailure("REMOVE_B", w.AppendRemoveBinary(key))
}

// --- aoflog.Applier ---

func (e *Engine) replaceString(key string, val valuekind.Value) {
	if prev, ok := e.stringLRU.Peek(key); ok && prev.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, prev.Value.Bytes.Bytes())
	}
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: val})
}

func (e *Engine) ApplySet(key string, val []byte) {
	e.replaceString(key, valuekind.FromBytes(val))
	e.indexes.OnInsert(key, val)
}

func (e *Engine) ApplyRemove(key string) {
	entry, ok := e.stringLRU.Pop(key)
	if ok && entry.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
	}
}

func (e *Engine) ApplyClear() {
	e.stringLRU.Clear()
	e.binaryLRU.Clear()
	e.indexes = numindex.NewSet()
}

func (e *Engine) ApplyExpire(key string, ttlMs uint64) {
	entry, ok := e.stringLRU.Peek(key)
	if !ok {
		return
	}
	deadline := lrustore.Deadline(lrustore.NowMs(), int64(ttlMs))
	entry.Deadline = &deadline
	e.stringLRU.Put(key, entry)
}

func (e *Engine) ApplyHSet(key, field string, val []byte) {
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
	h[field] = val
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromHash(h)})
}

func (e *Engine) ApplyLPush(key string, val []byte) {
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
	l = append(valuekind.List{val}, l...)
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromList(l)})
}

func (e *Engine) ApplySAdd(key string, val []byte) {
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
	s[string(val)] = val
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromSet(s)})
}

func (e *Engine) ApplyZAdd(key string, score float64, member string) {
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
}

func (e *Engine) ApplyXAdd(key string, id uint64, payload []byte) {
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
	s = append(s, valuekind.StreamEntry{ID: id, Payload: payload})
	e.stringLRU.Put(key, lrustore.Entry[valuekind.Value]{Value: valuekind.FromStream(s)})
	e.streamCounter.Reserve(id + 1)
}

func (e *Engine) ApplySetBinary(key []byte, val []byte) {
	e.binaryLRU.Put(string(key), lrustore.Entry[valuekind.Value]{Value: valuekind.FromBytes(val)})
}

func (e *Engine) ApplyRemoveBinary(key []byte) {
	e.binaryLRU.Pop(string(key))
}
