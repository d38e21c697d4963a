package numindex

import (
	"sort"
	"strconv"
	"testing"
)

func TestCreateIndexBackfillsFromScan(t *testing.T) {
	docs := map[string][]byte{
		"u1": []byte(`{"age":30}`),
		"u2": []byte(`{"age":25}`),
		"u3": []byte(`{"name":"no age field"}`),
	}

	s := NewSet()
	ix := s.CreateIndex("age", func(yield func(key string, raw []byte) bool) {
		for k, v := range docs {
			if !yield(k, v) {
				return
			}
		}
	})

	if ix.Len() != 2 {
		t.Fatalf("expected 2 indexed entries, got %d", ix.Len())
	}
	keys := ix.Query(OpGE, 26)
	if len(keys) != 1 || keys[0] != "u1" {
		t.Fatalf("expected [u1], got %v", keys)
	}
}

func TestLiveMaintenanceInsertAndRemove(t *testing.T) {
	s := NewSet()
	s.CreateIndex("age", func(func(string, []byte) bool) {})

	s.OnInsert("u1", []byte(`{"age":30}`))
	ix, _ := s.Get("age")
	if ix.Len() != 1 {
		t.Fatalf("expected 1 entry after insert, got %d", ix.Len())
	}

	s.OnRemove("u1", []byte(`{"age":30}`))
	if ix.Len() != 0 {
		t.Fatalf("expected 0 entries after remove, got %d", ix.Len())
	}
}

func TestQueryOperators(t *testing.T) {
	ix := NewSet()
	ix.CreateIndex("n", func(func(string, []byte) bool) {})
	for _, kv := range []struct {
		key string
		n   int64
	}{{"a", 10}, {"b", 20}, {"c", 30}} {
		ix.OnInsert(kv.key, []byte(`{"n":`+strconv.FormatInt(kv.n, 10)+`}`))
	}
	field, _ := ix.Get("n")

	cases := []struct {
		op   Op
		lit  int64
		want []string
	}{
		{OpGT, 20, []string{"c"}},
		{OpGE, 20, []string{"b", "c"}},
		{OpLT, 20, []string{"a"}},
		{OpLE, 20, []string{"a", "b"}},
		{OpEQ, 20, []string{"b"}},
	}
	for _, c := range cases {
		got := field.Query(c.op, c.lit)
		sort.Strings(got)
		if len(got) != len(c.want) {
			t.Fatalf("op %s: expected %v, got %v", c.op, c.want, got)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("op %s: expected %v, got %v", c.op, c.want, got)
			}
		}
	}
}

