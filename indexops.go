package tempuscore

// indexops.go exposes the numeric secondary index (internal/numindex) on
// Engine: creating an index over a JSON field and querying it with the
// tiny `<field> <op> <literal>` grammar.

import (
	"strconv"
	"strings"

	"github.com/tempuscore/engine/internal/numindex"
	"github.com/tempuscore/engine/internal/valuekind"
)

// CreateNumericIndex registers field for numeric indexing and backfills it
// by scanning every live entry in the string namespace. Calling it again
// for an already-indexed field is a no-op.
func (e *Engine) CreateNumericIndex(field string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.indexes.CreateIndex(field, func(yield func(key string, raw []byte) bool) {
		for _, key := range e.stringLRU.Keys() {
			entry, ok := e.stringLRU.Peek(key)
			if !ok || entry.Value.Kind != valuekind.KindBytes {
				continue
			}
			if !yield(key, entry.Value.Bytes.Bytes()) {
				return
			}
		}
	})
}

// Find evaluates a query of the form "<field> <op> <literal>", where op is
// one of >, >=, <, <=, == and literal is a base-10 integer, against
// field's registered index. If field has never been indexed, Find falls
// back to a full scan of the string namespace, matching exactly what
// CreateNumericIndex followed by a query would have returned, just
// without the B-tree. A malformed query returns nil. Results are in no
// particular order.
func (e *Engine) Find(query string) []string {
	field, op, literal, ok := parseFindQuery(query)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if ix, found := e.indexes.Get(field); found {
		return ix.Query(op, literal)
	}

	var out []string
	for _, key := range e.stringLRU.Keys() {
		entry, ok := e.stringLRU.Peek(key)
		if !ok || entry.Value.Kind != valuekind.KindBytes {
			continue
		}
		num, ok := numindex.ExtractInt(entry.Value.Bytes.Bytes(), field)
		if !ok || !matchOp(op, num, literal) {
			continue
		}
		out = append(out, key)
	}
	return out
}

// FindFrame is Find framed as [count:u32](keylen:u32,keybytes)*, the
// wire shape the public operation surface returns for find.
func (e *Engine) FindFrame(query string) []byte {
	return encodeFindFrame(e.Find(query))
}

func parseFindQuery(query string) (field string, op numindex.Op, literal int64, ok bool) {
	fields := strings.Fields(query)
	if len(fields) != 3 {
		return "", "", 0, false
	}
	op = numindex.Op(fields[1])
	switch op {
	case numindex.OpGT, numindex.OpGE, numindex.OpLT, numindex.OpLE, numindex.OpEQ:
	default:
		return "", "", 0, false
	}
	n, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return "", "", 0, false
	}
	return fields[0], op, n, true
}

func matchOp(op numindex.Op, num, literal int64) bool {
	switch op {
	case numindex.OpGT:
		return num > literal
	case numindex.OpGE:
		return num >= literal
	case numindex.OpLT:
		return num < literal
	case numindex.OpLE:
		return num <= literal
	case numindex.OpEQ:
		return num == literal
	}
	return false
}
