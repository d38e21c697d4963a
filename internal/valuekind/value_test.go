package valuekind

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	b := NewBytes([]byte("original"))
	clone := b.Clone()
	clone.Bytes()[0] = 'X'

	if b.Bytes()[0] == 'X' {
		t.Fatal("expected Clone to be independent of the source buffer")
	}
}

func TestRetainReleaseDoesNotPanic(t *testing.T) {
	b := NewBytes([]byte("leased"))
	data, refs := b.Retain()
	if string(data) != "leased" {
		t.Fatalf("expected 'leased', got %q", data)
	}
	Release(refs)
}
