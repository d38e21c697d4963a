package lrustore

import "testing"

func TestPutGetRoundTrip(t *testing.T) {
	l := New[string, int](2, nil)
	l.Put("a", Entry[int]{Value: 1})
	v, ok := l.Get("a")
	if !ok || v.Value != 1 {
		t.Fatalf("expected (1, true), got (%v, %v)", v.Value, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted string
	l := New[string, int](2, func(key string, _ Entry[int]) { evicted = key })

	l.Put("a", Entry[int]{Value: 1})
	l.Put("b", Entry[int]{Value: 2})
	l.Get("a") // a is now most-recently-used
	l.Put("c", Entry[int]{Value: 3})

	if evicted != "b" {
		t.Fatalf("expected b to be evicted, got %q", evicted)
	}
	if _, ok := l.Get("a"); !ok {
		t.Fatal("expected a to survive")
	}
	if _, ok := l.Get("c"); !ok {
		t.Fatal("expected c to survive")
	}
}

func TestResizeEvictsDownToCapacity(t *testing.T) {
	var evictedCount int
	l := New[string, int](4, func(string, Entry[int]) { evictedCount++ })
	for _, k := range []string{"a", "b", "c", "d"} {
		l.Put(k, Entry[int]{})
	}
	l.Resize(2)
	if l.Len() != 2 {
		t.Fatalf("expected 2 entries after resize, got %d", l.Len())
	}
	if evictedCount != 2 {
		t.Fatalf("expected 2 evictions, got %d", evictedCount)
	}
}

func TestPopReturnsPreviousEntry(t *testing.T) {
	l := New[string, int](2, nil)
	l.Put("a", Entry[int]{Value: 1})
	entry, ok := l.Pop("a")
	if !ok || entry.Value != 1 {
		t.Fatalf("expected (1, true), got (%v, %v)", entry.Value, ok)
	}
	if _, ok := l.Get("a"); ok {
		t.Fatal("expected a to be gone after Pop")
	}
}

func TestEntryExpired(t *testing.T) {
	deadline := int64(1000)
	e := Entry[int]{Value: 1, Deadline: &deadline}
	if e.Expired(999) {
		t.Fatal("should not be expired before deadline")
	}
	if !e.Expired(1000) {
		t.Fatal("should be expired at the deadline")
	}
}
