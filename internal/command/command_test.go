package command

import "testing"

type fakeBackend struct {
	store map[string][]byte
	docs  map[string]map[string][]byte
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{store: map[string][]byte{}, docs: map[string]map[string][]byte{}}
}

func (b *fakeBackend) Get(key string) ([]byte, bool) {
	v, ok := b.store[key]
	return v, ok
}

func (b *fakeBackend) Set(key string, val []byte) { b.store[key] = val }

func (b *fakeBackend) Del(key string) bool {
	_, ok := b.store[key]
	delete(b.store, key)
	return ok
}

func (b *fakeBackend) JSONGet(key, path string) ([]byte, bool) {
	doc, ok := b.docs[key]
	if !ok {
		return nil, false
	}
	v, ok := doc[path]
	return v, ok
}

func (b *fakeBackend) JSONSet(key, path string, doc []byte) bool {
	if b.docs[key] == nil {
		b.docs[key] = map[string][]byte{}
	}
	b.docs[key][path] = doc
	return true
}

func TestEvalSetThenGet(t *testing.T) {
	b := newFakeBackend()
	if _, ok := Eval(b, "SET k hello world"); !ok {
		t.Fatal("expected SET to succeed")
	}
	out, ok := Eval(b, "get k")
	if !ok || string(out) != "hello world" {
		t.Fatalf("expected 'hello world', got (%s, %v)", out, ok)
	}
}

func TestEvalDel(t *testing.T) {
	b := newFakeBackend()
	Eval(b, "SET k v")
	out, ok := Eval(b, "DEL k")
	if !ok || string(out) != "1" {
		t.Fatalf("expected 1 for existing key, got (%s, %v)", out, ok)
	}
	out, ok = Eval(b, "DEL k")
	if !ok || string(out) != "0" {
		t.Fatalf("expected 0 for missing key, got (%s, %v)", out, ok)
	}
}

func TestEvalUnknownVerb(t *testing.T) {
	b := newFakeBackend()
	if _, ok := Eval(b, "NOPE x"); ok {
		t.Fatal("expected an unknown verb to return false")
	}
}

func TestEvalMissingArgs(t *testing.T) {
	b := newFakeBackend()
	if _, ok := Eval(b, "GET"); ok {
		t.Fatal("expected GET with no key to return false")
	}
	if _, ok := Eval(b, ""); ok {
		t.Fatal("expected an empty line to return false")
	}
}

func TestEvalJSONSetThenGet(t *testing.T) {
	b := newFakeBackend()
	if _, ok := Eval(b, `JSON.SET u age 30`); !ok {
		t.Fatal("expected JSON.SET to succeed")
	}
	out, ok := Eval(b, "JSON.GET u age")
	if !ok || string(out) != "30" {
		t.Fatalf("expected 30, got (%s, %v)", out, ok)
	}
}
