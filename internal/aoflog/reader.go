package aoflog

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Applier receives decoded records during replay, one call per record, in
// file order. Replay never mutates the file and Applier implementations
// must not write further AOF records while applying: each record is
// applied to the store in place.
type Applier interface {
	ApplySet(key string, val []byte)
	ApplyRemove(key string)
	ApplyClear()
	ApplyExpire(key string, ttlMs uint64)
	ApplyHSet(key, field string, val []byte)
	ApplyLPush(key string, val []byte)
	ApplySAdd(key string, val []byte)
	ApplyZAdd(key string, score float64, member string)
	ApplyXAdd(key string, id uint64, payload []byte)
	ApplySetBinary(key []byte, val []byte)
	ApplyRemoveBinary(key []byte)
}

// Replay reads every record in path and feeds it to apply, in order. On
// any truncation or malformed trailing record, replay stops cleanly and
// returns nil; partial writes at the tail are silently discarded. A
// missing file is treated as an empty log, also returning nil.
func Replay(path string, apply Applier) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "aoflog: open %s", path)
	}
	defer f.Close()

	r := &reader{f: f}
	for {
		op, ok := r.readOpcode()
		if !ok {
			return nil
		}
		if !r.applyOne(op, apply) {
			return nil
		}
	}
}

type reader struct {
	f *os.File
}

func (r *reader) readOpcode() (Opcode, bool) {
	var b [1]byte
	n, err := io.ReadFull(r.f, b[:])
	if n == 0 || err != nil {
		return 0, false
	}
	return Opcode(b[0]), true
}

func (r *reader) readExact(n int) ([]byte, bool) {
	if n == 0 {
		return nil, true
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.f, buf); err != nil {
		return nil, false
	}
	return buf, true
}

func (r *reader) readU32() (uint32, bool) {
	b, ok := r.readExact(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (r *reader) readU64() (uint64, bool) {
	b, ok := r.readExact(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

func (r *reader) readLenPrefixed() ([]byte, bool) {
	l, ok := r.readU32()
	if !ok {
		return nil, false
	}
	return r.readExact(int(l))
}

// applyOne decodes the fields for one already-read opcode and invokes the
// matching Applier method. It returns false on any short read (truncated
// trailing record), signalling the caller to stop replay cleanly.
func (r *reader) applyOne(op Opcode, apply Applier) bool {
	switch op {
	case OpSet:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		val, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplySet(string(key), val)
	case OpRemove:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyRemove(string(key))
	case OpClear:
		apply.ApplyClear()
	case OpExpire:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		ttl, ok := r.readU64()
		if !ok {
			return false
		}
		apply.ApplyExpire(string(key), ttl)
	case OpHSet:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		field, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		val, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyHSet(string(key), string(field), val)
	case OpLPush:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		val, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyLPush(string(key), val)
	case OpSAdd:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		val, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplySAdd(string(key), val)
	case OpZAdd:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		scoreBits, ok := r.readU64()
		if !ok {
			return false
		}
		member, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyZAdd(string(key), math.Float64frombits(scoreBits), string(member))
	case OpXAdd:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		id, ok := r.readU64()
		if !ok {
			return false
		}
		payload, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyXAdd(string(key), id, payload)
	case OpSetBinary:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		val, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplySetBinary(key, val)
	case OpRemoveBinary:
		key, ok := r.readLenPrefixed()
		if !ok {
			return false
		}
		apply.ApplyRemoveBinary(key)
	default:
		// Unrecognized opcode: treat like a malformed trailing record.
		return false
	}
	return true
}
