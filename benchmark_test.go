package tempuscore

import (
	"strconv"
	"testing"
)

// BenchmarkSet measures the core write-path cost: lazy-expire check, map
// write, LRU move-to-front, index reconciliation. Same key on every
// iteration, so map growth is not part of what's measured.
func BenchmarkSet(b *testing.B) {
	e := New()
	defer e.Close()

	val := []byte("value")
	for i := 0; i < b.N; i++ {
		e.Set("key", val)
	}
}

// BenchmarkSetUnique measures the write path under map growth, evicting
// once maxItems is reached.
func BenchmarkSetUnique(b *testing.B) {
	e := New(WithMaxItems(10_000))
	defer e.Close()

	val := []byte("value")
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Set(keys[i], val)
	}
}

// BenchmarkGet measures the read path, including the lazy-expire check on
// every call.
func BenchmarkGet(b *testing.B) {
	e := New()
	defer e.Close()

	e.Set("key", []byte("value"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Get("key")
	}
}
