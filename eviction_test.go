package tempuscore

import "testing"

// TestLRUEvictionSurvivorsAndNotification checks that with capacity 2,
// touching "a" before inserting a third key keeps "a" alive and evicts
// "b" instead.
func TestLRUEvictionSurvivorsAndNotification(t *testing.T) {
	e := New(WithMaxItems(2))
	defer e.Close()

	e.Set("a", []byte("1"))
	e.Set("b", []byte("2"))
	e.Get("a")
	e.Set("c", []byte("3"))

	if _, ok := e.Get("a"); !ok {
		t.Fatal("expected a to survive")
	}
	if _, ok := e.Get("c"); !ok {
		t.Fatal("expected c to survive")
	}
	if _, ok := e.stringLRU.Peek("b"); ok {
		t.Fatal("expected b to have been evicted")
	}

	n, ok := e.PollNotification()
	if !ok || n.Expired || n.Key != "b" {
		t.Fatalf("expected an evicted notification for b, got %+v ok=%v", n, ok)
	}
}

func TestSetMaxItemsShrinksAndEvicts(t *testing.T) {
	e := New(WithMaxItems(4))
	defer e.Close()

	e.Set("a", []byte("1"))
	e.Set("b", []byte("2"))
	e.Set("c", []byte("3"))
	e.Set("d", []byte("4"))

	e.SetMaxItems(2)
	if e.Length() != 2 {
		t.Fatalf("expected 2 entries after shrinking capacity, got %d", e.Length())
	}
}
