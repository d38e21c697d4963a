// Package valuekind defines the tagged value variants stored behind every
// key in the engine: Bytes, Hash, List, Set, SortedSet and Stream.
//
// A key holds exactly one variant at a time. Overwriting a key with a
// different variant replaces it wholesale; there is no type-check error
// here, the caller's intent is assumed correct (see Kind doc below).
// Readers that ask a wrong-variant question about a key observe "missing"
// semantics rather than an error.
package valuekind

import "sync/atomic"

// Kind tags which variant a Value holds.
type Kind uint8

const (
	KindBytes Kind = iota
	KindHash
	KindList
	KindSet
	KindSortedSet
	KindStream
)

// Bytes is the opaque payload variant. It is reference-counted so that a
// lease read (see the engine's binary-namespace lease path) can hand out a
// borrowed pointer without copying the underlying buffer.
type Bytes struct {
	refs *int32
	buf  []byte
}

// NewBytes wraps buf in a fresh, single-owner refcounted Bytes.
func NewBytes(buf []byte) Bytes {
	r := int32(1)
	return Bytes{refs: &r, buf: buf}
}

// Bytes returns the underlying buffer. Callers that only need to read or
// copy it (the common path) can use this directly; callers that need a
// lease across the lock boundary should use Retain/Release instead.
func (b Bytes) Bytes() []byte { return b.buf }

// Clone returns a fresh, independently-owned copy of the payload.
func (b Bytes) Clone() Bytes {
	cp := make([]byte, len(b.buf))
	copy(cp, b.buf)
	return NewBytes(cp)
}

// Retain increments the shared refcount and returns a lease handle that
// must be matched with Release. The returned slice is only valid until
// Release is called.
func (b Bytes) Retain() ([]byte, *int32) {
	atomic.AddInt32(b.refs, 1)
	return b.buf, b.refs
}

// Release drops a lease acquired through Retain.
func Release(refs *int32) {
	if refs != nil {
		atomic.AddInt32(refs, -1)
	}
}

// Hash is the field -> payload variant. Unordered.
type Hash map[string][]byte

// List is the ordered sequence variant; index 0 is the head.
type List [][]byte

// Set is the unordered set-of-buffers variant.
type Set map[string][]byte

// SortedSet maps member name to score; range order is ascending by score
// with ties among equal scores broken arbitrarily by the caller's range
// implementation.
type SortedSet map[string]float64

// StreamEntry is one (id, payload) pair in a Stream.
type StreamEntry struct {
	ID      uint64
	Payload []byte
}

// Stream is the ordered append log variant.
type Stream []StreamEntry

// Value is the tagged union stored in every Entry. Exactly one of the
// typed fields is meaningful, selected by Kind. Match exhaustively on Kind
// when consuming a Value: the variants do not share behavior, so this is
// intentionally not modeled as an interface with polymorphic dispatch.
type Value struct {
	Kind      Kind
	Bytes     Bytes
	Hash      Hash
	List      List
	Set       Set
	SortedSet SortedSet
	Stream    Stream
}

// FromBytes builds a Bytes-kind Value. This is the default variant for new
// keys created through the generic set and JSON operations.
func FromBytes(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: NewBytes(b)}
}

func FromHash(h Hash) Value           { return Value{Kind: KindHash, Hash: h} }
func FromList(l List) Value           { return Value{Kind: KindList, List: l} }
func FromSet(s Set) Value             { return Value{Kind: KindSet, Set: s} }
func FromSortedSet(z SortedSet) Value { return Value{Kind: KindSortedSet, SortedSet: z} }
func FromStream(s Stream) Value       { return Value{Kind: KindStream, Stream: s} }
