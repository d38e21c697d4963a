package aoflog

import (
	"encoding/binary"
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Writer appends records to the on-disk journal. Every Append call
// reaches the kernel buffer via os.File.Write with no fsync, so a crash
// can lose the last few records. The file lock (w.mu) is the only lock
// Append takes; callers append after their in-memory mutation has already
// committed and with the store lock released.
type Writer struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenWriter opens (creating if necessary) path for appending.
func OpenWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "aoflog: open %s", path)
	}
	return &Writer{f: f, path: path}, nil
}

// Close closes the underlying file handle.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *Writer) write(buf []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return errors.New("aoflog: writer closed")
	}
	if _, err := w.f.Write(buf); err != nil {
		return errors.Wrap(err, "aoflog: write")
	}
	return nil
}

func appendKeyed(op Opcode, key string, extra ...[]byte) []byte {
	size := 1 + 4 + len(key)
	for _, e := range extra {
		size += len(e)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, byte(op))
	buf = appendU32LenPrefixed(buf, key)
	for _, e := range extra {
		buf = append(buf, e...)
	}
	return buf
}

func appendU32LenPrefixed(buf []byte, s string) []byte {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(s)))
	buf = append(buf, l[:]...)
	buf = append(buf, s...)
	return buf
}

func u32LenPrefixed(b []byte) []byte {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(b)))
	out := make([]byte, 0, 4+len(b))
	out = append(out, l[:]...)
	out = append(out, b...)
	return out
}

// AppendSet writes opcode 1 (string namespace) or 10 (binary namespace,
// via AppendSetBinary): a full key/value overwrite record.
func (w *Writer) AppendSet(key string, val []byte) error {
	return w.write(appendKeyed(OpSet, key, u32LenPrefixed(val)))
}

// AppendRemove writes opcode 2.
func (w *Writer) AppendRemove(key string) error {
	return w.write(appendKeyed(OpRemove, key))
}

// AppendClear writes opcode 3, which carries no fields.
func (w *Writer) AppendClear() error {
	return w.write([]byte{byte(OpClear)})
}

// AppendExpire writes opcode 4: a relative TTL in ms, replayed against
// the wall clock at load time. This intentionally drifts from the
// original absolute deadline by however long replay takes to reach it.
func (w *Writer) AppendExpire(key string, ttlMs uint64) error {
	var t [8]byte
	binary.LittleEndian.PutUint64(t[:], ttlMs)
	return w.write(appendKeyed(OpExpire, key, t[:]))
}

// AppendHSet writes opcode 5.
func (w *Writer) AppendHSet(key, field string, val []byte) error {
	buf := appendKeyed(OpHSet, key, appendU32LenPrefixed(nil, field), u32LenPrefixed(val))
	return w.write(buf)
}

// AppendLPush writes opcode 6.
func (w *Writer) AppendLPush(key string, val []byte) error {
	return w.write(appendKeyed(OpLPush, key, u32LenPrefixed(val)))
}

// AppendSAdd writes opcode 7.
func (w *Writer) AppendSAdd(key string, val []byte) error {
	return w.write(appendKeyed(OpSAdd, key, u32LenPrefixed(val)))
}

// AppendZAdd writes opcode 8.
func (w *Writer) AppendZAdd(key string, score float64, member string) error {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], math.Float64bits(score))
	buf := appendKeyed(OpZAdd, key, s[:], appendU32LenPrefixed(nil, member))
	return w.write(buf)
}

// AppendXAdd writes opcode 9.
func (w *Writer) AppendXAdd(key string, id uint64, payload []byte) error {
	var idBuf [8]byte
	binary.LittleEndian.PutUint64(idBuf[:], id)
	buf := appendKeyed(OpXAdd, key, idBuf[:], u32LenPrefixed(payload))
	return w.write(buf)
}

// AppendSetBinary writes opcode 10: same layout as AppendSet, but key is
// raw binary-namespace bytes rather than a UTF-8 string.
func (w *Writer) AppendSetBinary(key []byte, val []byte) error {
	buf := make([]byte, 0, 1+4+len(key)+4+len(val))
	buf = append(buf, byte(OpSetBinary))
	buf = append(buf, u32LenPrefixed(key)...)
	buf = append(buf, u32LenPrefixed(val)...)
	return w.write(buf)
}

// AppendRemoveBinary writes opcode 11.
func (w *Writer) AppendRemoveBinary(key []byte) error {
	buf := make([]byte, 0, 1+4+len(key))
	buf = append(buf, byte(OpRemoveBinary))
	buf = append(buf, u32LenPrefixed(key)...)
	return w.write(buf)
}
