// Package jsonpath implements a tiny JSON path grammar: an optional
// leading "$", then one or more segments, each either a dotted field
// (".field" or a bare leading field name) or a bracketed non-negative
// array index ("[idx]"). This is deliberately not a general JSONPath
// implementation; any other character aborts parsing.
package jsonpath

import (
	"strconv"

	"github.com/pkg/errors"
)

// SegmentKind distinguishes the two segment shapes.
type SegmentKind uint8

const (
	SegField SegmentKind = iota
	SegIndex
)

// Segment is one step of a parsed path.
type Segment struct {
	Kind  SegmentKind
	Field string
	Index int
}

// Parse tokenizes path into segments. An empty path is invalid.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, errors.New("jsonpath: empty path")
	}
	i := 0
	n := len(path)
	if path[0] == '$' {
		i = 1
	}

	var segs []Segment
	first := true
	for i < n {
		switch {
		case path[i] == '.':
			i++
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				i++
			}
			if i == start {
				return nil, errors.Errorf("jsonpath: empty field segment at %d", start)
			}
			segs = append(segs, Segment{Kind: SegField, Field: path[start:i]})
			first = false
		case path[i] == '[':
			i++
			start := i
			for i < n && path[i] != ']' {
				if path[i] < '0' || path[i] > '9' {
					return nil, errors.Errorf("jsonpath: invalid index character at %d", i)
				}
				i++
			}
			if i == start || i >= n {
				return nil, errors.New("jsonpath: malformed index segment")
			}
			idx, err := strconv.Atoi(path[start:i])
			if err != nil {
				return nil, errors.Wrap(err, "jsonpath: invalid index")
			}
			i++ // skip ']'
			segs = append(segs, Segment{Kind: SegIndex, Index: idx})
			first = false
		case first:
			// bare field at the start, e.g. "age" or "$age"
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				i++
			}
			if i == start {
				return nil, errors.Errorf("jsonpath: invalid character at %d", i)
			}
			segs = append(segs, Segment{Kind: SegField, Field: path[start:i]})
			first = false
		default:
			return nil, errors.Errorf("jsonpath: unexpected character %q at %d", path[i], i)
		}
	}
	if len(segs) == 0 {
		return nil, errors.New("jsonpath: no segments parsed")
	}
	return segs, nil
}
