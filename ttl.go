package tempuscore

import (
	"go.uber.org/zap"

	"github.com/tempuscore/engine/internal/lrustore"
	"github.com/tempuscore/engine/internal/notify"
	"github.com/tempuscore/engine/internal/valuekind"
)

// TTL query sentinels.
const (
	TTLMissing    = -2
	TTLNoDeadline = -1
	TTLJustExpired = 0
)

// maybeRemoveIfExpiredString is the lazy-reaping entry point for the
// string namespace. Callers must already hold e.mu for writing. It pops
// and emits an *expired* notification when key is
// present but past its deadline, reconciling the numeric index against
// the value being removed.
func (e *Engine) maybeRemoveIfExpiredString(key string) {
	entry, ok := e.stringLRU.Peek(key)
	if !ok || !entry.Expired(lrustore.NowMs()) {
		return
	}
	e.stringLRU.Pop(key)
	if entry.Value.Kind == valuekind.KindBytes {
		e.indexes.OnRemove(key, entry.Value.Bytes.Bytes())
	}
	e.notifyQ.Push(notify.KindExpired, key, uint64(lrustore.NowMs()))
}

// maybeRemoveIfExpiredBinary is the binary-namespace counterpart. rawKey
// is the namespace's raw-byte key reinterpreted as a Go string (see
// package lrustore's doc comment on why this is not a hex encoding).
func (e *Engine) maybeRemoveIfExpiredBinary(rawKey string) {
	entry, ok := e.binaryLRU.Peek(rawKey)
	if !ok || !entry.Expired(lrustore.NowMs()) {
		return
	}
	e.binaryLRU.Pop(rawKey)
	e.notifyQ.Push(notify.KindExpired, notify.BinaryNotifyKey([]byte(rawKey)), uint64(lrustore.NowMs()))
}

// TTL returns the sentinel scheme for key in the string namespace: -2
// missing or expired (an entry whose deadline has been reached is reaped
// by this call), -1 present with no deadline, otherwise the remaining
// milliseconds, which are always positive. Because an expired entry is
// reaped here, TTL never returns TTLJustExpired.
func (e *Engine) TTL(key string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.stringLRU.Peek(key)
	if !ok {
		return TTLMissing
	}
	now := lrustore.NowMs()
	if entry.Expired(now) {
		e.maybeRemoveIfExpiredString(key)
		return TTLMissing
	}
	if entry.Deadline == nil {
		return TTLNoDeadline
	}
	remaining := *entry.Deadline - now
	if remaining <= 0 {
		return TTLJustExpired
	}
	return remaining
}

// Expire sets or replaces key's TTL (string namespace), in milliseconds
// from now. Returns true if key existed (and was not already expired).
func (e *Engine) Expire(key string, ttlMs int64) bool {
	e.mu.Lock()
	e.maybeRemoveIfExpiredString(key)
	entry, ok := e.stringLRU.Peek(key)
	if !ok {
		e.mu.Unlock()
		return false
	}
	now := lrustore.NowMs()
	deadline := lrustore.Deadline(now, ttlMs)
	entry.Deadline = &deadline
	e.stringLRU.Put(key, entry)
	e.mu.Unlock()

	e.appendAOFExpire(key, uint64(ttlMs))
	return true
}

func (e *Engine) logAOFFailure(op string, err error) {
	if err != nil {
		e.log.Warn("aof: append failed", zap.String("op", op), zap.Error(err))
	}
}
