package tempuscore

// jsonops.go wires internal/jsonpath into the string namespace: JSON
// documents are stored as ordinary Bytes values, so JSONGet/JSONSet are
// thin path-evaluation layers over Get/setStringBytes rather than a
// separate value variant.

import "github.com/tempuscore/engine/internal/jsonpath"

// JSONGet reads key's Bytes payload as a JSON document and returns the
// serialized value at path, or (nil, false) if key is missing, not valid
// JSON, or path resolves to nothing.
func (e *Engine) JSONGet(key, path string) ([]byte, bool) {
	doc, ok := e.Get(key)
	if !ok {
		return nil, false
	}
	return jsonpath.Get(doc, path)
}

// JSONSet writes value at path inside key's JSON document, autovivifying
// intermediate objects/arrays as needed, and stores the re-serialized
// whole document back as key's Bytes payload. If key does not yet exist,
// path is evaluated against an empty document. Returns false if value is
// not valid JSON or path is malformed; the store is left unchanged in
// that case.
func (e *Engine) JSONSet(key, path string, value []byte) bool {
	existing, _ := e.Get(key)
	merged, err := jsonpath.Set(existing, path, value)
	if err != nil {
		return false
	}
	e.setStringBytes(key, merged, nil)
	return true
}
