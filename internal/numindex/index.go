// Package numindex implements a numeric secondary index: one ordered
// i64 -> set[string key] map per registered field, backed by a B-tree
// for ordered range queries, plus live maintenance hooks the store calls
// on every string-namespace insert/overwrite/remove/expire/evict.
//
// Callers are expected to hold the store's write lock for any mutating
// call (Insert/Remove/CreateIndex) and at least a read lock for Query,
// since the index set has no lock of its own, matching the rest of the
// store's single-RWMutex design.
package numindex

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/google/btree"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type entry struct {
	Num int64
	Key string
}

func less(a, b entry) bool {
	if a.Num != b.Num {
		return a.Num < b.Num
	}
	return a.Key < b.Key
}

// Index is the ordered map for a single field.
type Index struct {
	field string
	tree  *btree.BTreeG[entry]
}

func newIndex(field string) *Index {
	return &Index{field: field, tree: btree.NewG(32, less)}
}

// Insert records that key's JSON document has an integer value num at
// this index's field.
func (ix *Index) Insert(num int64, key string) {
	ix.tree.ReplaceOrInsert(entry{Num: num, Key: key})
}

// Remove drops the (num, key) pair previously inserted for key.
func (ix *Index) Remove(num int64, key string) {
	ix.tree.Delete(entry{Num: num, Key: key})
}

// Len reports the number of (num, key) pairs currently tracked.
func (ix *Index) Len() int { return ix.tree.Len() }

// Contents returns every (num, key) pair, ascending by num and then by
// key.
func (ix *Index) Contents() []struct {
	Num int64
	Key string
} {
	out := make([]struct {
		Num int64
		Key string
	}, 0, ix.tree.Len())
	ix.tree.Ascend(func(e entry) bool {
		out = append(out, struct {
			Num int64
			Key string
		}{e.Num, e.Key})
		return true
	})
	return out
}

// Op is one of the five supported comparison operators.
type Op string

const (
	OpGT Op = ">"
	OpGE Op = ">="
	OpLT Op = "<"
	OpLE Op = "<="
	OpEQ Op = "=="
)

// Query returns every key whose tracked value satisfies `value Op literal`.
func (ix *Index) Query(op Op, literal int64) []string {
	var keys []string
	collect := func(e entry) bool {
		keys = append(keys, e.Key)
		return true
	}
	switch op {
	case OpGT:
		ix.tree.AscendGreaterOrEqual(entry{Num: literal + 1, Key: ""}, collect)
	case OpGE:
		ix.tree.AscendGreaterOrEqual(entry{Num: literal, Key: ""}, collect)
	case OpLT:
		ix.tree.AscendLessThan(entry{Num: literal, Key: ""}, collect)
	case OpLE:
		ix.tree.AscendLessThan(entry{Num: literal + 1, Key: ""}, collect)
	case OpEQ:
		ix.tree.AscendRange(entry{Num: literal, Key: ""}, entry{Num: literal + 1, Key: ""}, collect)
	}
	return keys
}

// Set is the registry of all created indexes, keyed by field name.
type Set struct {
	byField map[string]*Index
}

// NewSet returns an empty index registry.
func NewSet() *Set {
	return &Set{byField: make(map[string]*Index)}
}

// Fields lists every registered field name.
func (s *Set) Fields() []string {
	out := make([]string, 0, len(s.byField))
	for f := range s.byField {
		out = append(out, f)
	}
	return out
}

// Get returns the index for field, if one has been created.
func (s *Set) Get(field string) (*Index, bool) {
	ix, ok := s.byField[field]
	return ix, ok
}

// CreateIndex registers field (idempotently) and backfills it by scanning
// scan, a caller-supplied iterator over every (key, bytes) pair currently
// in the string namespace.
func (s *Set) CreateIndex(field string, scan func(yield func(key string, raw []byte) bool)) *Index {
	if ix, ok := s.byField[field]; ok {
		return ix
	}
	ix := newIndex(field)
	s.byField[field] = ix
	scan(func(key string, raw []byte) bool {
		if num, ok := ExtractInt(raw, field); ok {
			ix.Insert(num, key)
		}
		return true
	})
	return ix
}

// OnInsert is the live-maintenance hook: call after a string-namespace key
// is written with raw bytes. It adds (num, key) to every registered index
// whose field is present as a top-level integer in raw. Best-effort: a
// non-JSON or non-integer value simply does not appear in any index.
func (s *Set) OnInsert(key string, raw []byte) {
	for field, ix := range s.byField {
		if num, ok := ExtractInt(raw, field); ok {
			ix.Insert(num, key)
		}
	}
}

// OnRemove is the symmetric live-maintenance hook, called with the
// *previous* value's raw bytes before a key is overwritten, evicted,
// expired, or explicitly removed.
func (s *Set) OnRemove(key string, prevRaw []byte) {
	for field, ix := range s.byField {
		if num, ok := ExtractInt(prevRaw, field); ok {
			ix.Remove(num, key)
		}
	}
}

// ExtractInt parses raw as a JSON object and returns the integer value of
// its top-level field, if raw is a JSON object and field holds a whole
// number.
func ExtractInt(raw []byte, field string) (int64, bool) {
	var obj map[string]interface{}
	if jsonAPI.Unmarshal(raw, &obj) != nil {
		return 0, false
	}
	v, ok := obj[field]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}
