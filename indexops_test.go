package tempuscore

import (
	"sort"
	"testing"
)

// TestIndexMatchesScenarioS5 checks that an index created after two JSON
// documents already exist picks them up, and a later JSON.SET that
// changes the indexed field is reflected live.
func TestIndexMatchesScenarioS5(t *testing.T) {
	e := New()
	defer e.Close()

	e.Set("u1", []byte(`{"age":30}`))
	e.Set("u2", []byte(`{"age":25}`))
	e.CreateNumericIndex("age")

	got := e.Find("age >= 26")
	if len(got) != 1 || got[0] != "u1" {
		t.Fatalf("expected [u1], got %v", got)
	}

	e.JSONSet("u1", "age", []byte("40"))

	got = e.Find("age >= 26")
	if len(got) != 1 || got[0] != "u1" {
		t.Fatalf("expected [u1] after update, got %v", got)
	}

	got = e.Find("age == 25")
	if len(got) != 1 || got[0] != "u2" {
		t.Fatalf("expected [u2], got %v", got)
	}
}

func TestFindFallsBackToScanWithoutAnIndex(t *testing.T) {
	e := New()
	defer e.Close()

	e.Set("u1", []byte(`{"score":10}`))
	e.Set("u2", []byte(`{"score":20}`))

	got := e.Find("score > 5")
	sort.Strings(got)
	if len(got) != 2 || got[0] != "u1" || got[1] != "u2" {
		t.Fatalf("expected [u1 u2], got %v", got)
	}
}

func TestFindMalformedQueryReturnsNil(t *testing.T) {
	e := New()
	defer e.Close()

	if got := e.Find("not a query"); got != nil {
		t.Fatalf("expected nil for a malformed query, got %v", got)
	}
}
