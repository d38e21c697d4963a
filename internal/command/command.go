// Package command implements a tiny text command language: a handful of
// whitespace-tokenized, case-insensitive verbs that delegate straight
// into the engine's Bytes and JSON operations. This is a thin
// dispatcher, not a parser framework; there is no quoting or piping.
package command

import "strings"

// Backend is the subset of engine operations the evaluator delegates to.
// The root engine package implements it; command stays decoupled from the
// engine's concrete type to avoid an import cycle (the engine also wants
// to expose this evaluator as part of its own public operation surface).
type Backend interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte)
	Del(key string) bool
	JSONGet(key, path string) ([]byte, bool)
	JSONSet(key, path string, doc []byte) bool
}

// Eval tokenizes line on whitespace and dispatches to Backend. Unknown
// verbs or missing required arguments return (nil, false), an empty
// result rather than an error.
func Eval(b Backend, line string) ([]byte, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	verb := strings.ToUpper(fields[0])

	switch verb {
	case "GET":
		if len(fields) < 2 {
			return nil, false
		}
		return b.Get(fields[1])

	case "SET":
		if len(fields) < 2 {
			return nil, false
		}
		key := fields[1]
		idx := indexOfNth(line, 2)
		value := ""
		if idx >= 0 {
			value = strings.TrimSpace(line[idx:])
		}
		b.Set(key, []byte(value))
		return []byte(value), true

	case "DEL":
		if len(fields) < 2 {
			return nil, false
		}
		if b.Del(fields[1]) {
			return []byte("1"), true
		}
		return []byte("0"), true

	case "JSON.GET":
		if len(fields) < 3 {
			return nil, false
		}
		return b.JSONGet(fields[1], fields[2])

	case "JSON.SET":
		if len(fields) < 4 {
			return nil, false
		}
		key, path := fields[1], fields[2]
		idx := indexOfNth(line, 3)
		if idx < 0 {
			return nil, false
		}
		doc := strings.TrimSpace(line[idx:])
		if !b.JSONSet(key, path, []byte(doc)) {
			return nil, false
		}
		return []byte(doc), true

	default:
		return nil, false
	}
}

// indexOfNth returns the byte offset in line where the (0-based) n-th
// whitespace-separated field begins, or -1 if there are fewer fields.
func indexOfNth(line string, n int) int {
	count := 0
	inField := false
	for i, r := range line {
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if !isSpace && !inField {
			if count == n {
				return i
			}
			count++
			inField = true
		} else if isSpace {
			inField = false
		}
	}
	return -1
}
