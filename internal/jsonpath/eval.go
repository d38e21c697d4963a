package jsonpath

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Get parses doc as JSON, descends along the parsed path and re-serializes
// the terminal node. A missing segment (absent field, out-of-range index,
// or a segment that lands on the wrong container shape) is reported as
// (nil, false): a missing read, never an error.
func Get(doc []byte, path string) ([]byte, bool) {
	segs, err := Parse(path)
	if err != nil {
		return nil, false
	}
	var root interface{}
	if jsonAPI.Unmarshal(doc, &root) != nil {
		return nil, false
	}

	node := root
	for _, seg := range segs {
		switch seg.Kind {
		case SegField:
			obj, ok := node.(map[string]interface{})
			if !ok {
				return nil, false
			}
			node, ok = obj[seg.Field]
			if !ok {
				return nil, false
			}
		case SegIndex:
			arr, ok := node.([]interface{})
			if !ok || seg.Index < 0 || seg.Index >= len(arr) {
				return nil, false
			}
			node = arr[seg.Index]
		}
	}

	out, err := jsonAPI.Marshal(node)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Set parses doc (or starts from an empty document if doc is empty/nil),
// autovivifies intermediate containers along path, writes value at the
// terminal segment, and re-serializes the whole document. An empty path
// replaces the whole document with value.
//
// Autovivification rules:
//   - An intermediate Field segment that lands on a non-object container
//     is replaced with an empty object.
//   - An intermediate Index segment that lands on a non-array container
//     is replaced with an empty array, extended with JSON nulls up to the
//     needed index.
//   - Only the terminal segment actually writes value; everything before
//     it is container scaffolding.
func Set(doc []byte, path string, value []byte) ([]byte, error) {
	var rawValue interface{}
	if err := jsonAPI.Unmarshal(value, &rawValue); err != nil {
		return nil, errors.Wrap(err, "jsonpath: invalid value JSON")
	}

	if path == "" || path == "$" {
		out, err := jsonAPI.Marshal(rawValue)
		if err != nil {
			return nil, errors.Wrap(err, "jsonpath: re-serialize root")
		}
		return out, nil
	}

	segs, err := Parse(path)
	if err != nil {
		return nil, errors.Wrap(err, "jsonpath: parse")
	}

	var root interface{}
	if len(doc) > 0 {
		if err := jsonAPI.Unmarshal(doc, &root); err != nil {
			root = map[string]interface{}{}
		}
	}
	if root == nil {
		root = containerFor(segs[0])
	}

	newRoot, err := setAt(root, segs, rawValue)
	if err != nil {
		return nil, err
	}

	out, err := jsonAPI.Marshal(newRoot)
	if err != nil {
		return nil, errors.Wrap(err, "jsonpath: re-serialize")
	}
	return out, nil
}

func containerFor(seg Segment) interface{} {
	if seg.Kind == SegIndex {
		return []interface{}{}
	}
	return map[string]interface{}{}
}

// setAt returns a new node equal to node with value written at the path
// described by segs, autovivifying as needed.
func setAt(node interface{}, segs []Segment, value interface{}) (interface{}, error) {
	seg := segs[0]
	rest := segs[1:]

	switch seg.Kind {
	case SegField:
		obj, ok := node.(map[string]interface{})
		if !ok {
			obj = map[string]interface{}{}
		}
		if len(rest) == 0 {
			obj[seg.Field] = value
			return obj, nil
		}
		child := obj[seg.Field]
		if child == nil {
			child = containerFor(rest[0])
		}
		newChild, err := setAt(child, rest, value)
		if err != nil {
			return nil, err
		}
		obj[seg.Field] = newChild
		return obj, nil

	case SegIndex:
		if seg.Index < 0 {
			return nil, errors.Errorf("jsonpath: negative index %d", seg.Index)
		}
		arr, ok := node.([]interface{})
		if !ok {
			arr = []interface{}{}
		}
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		if len(rest) == 0 {
			arr[seg.Index] = value
			return arr, nil
		}
		child := arr[seg.Index]
		if child == nil {
			child = containerFor(rest[0])
		}
		newChild, err := setAt(child, rest, value)
		if err != nil {
			return nil, err
		}
		arr[seg.Index] = newChild
		return arr, nil
	}
	return nil, errors.New("jsonpath: unknown segment kind")
}
