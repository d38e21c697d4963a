package tempuscore

import "testing"

func TestJSONSetThenGet(t *testing.T) {
	e := New()
	defer e.Close()

	if ok := e.JSONSet("u1", "age", []byte("30")); !ok {
		t.Fatal("expected JSONSet to succeed")
	}
	out, ok := e.JSONGet("u1", "age")
	if !ok || string(out) != "30" {
		t.Fatalf("expected 30, got (%s, %v)", out, ok)
	}
}

func TestJSONSetOnMissingKeyAutovivifies(t *testing.T) {
	e := New()
	defer e.Close()

	if ok := e.JSONSet("u2", "profile.name", []byte(`"ada"`)); !ok {
		t.Fatal("expected JSONSet to succeed against a missing key")
	}
	out, ok := e.JSONGet("u2", "profile.name")
	if !ok || string(out) != `"ada"` {
		t.Fatalf("expected ada, got (%s, %v)", out, ok)
	}
}

func TestJSONGetMissingKeyIsEmpty(t *testing.T) {
	e := New()
	defer e.Close()

	if _, ok := e.JSONGet("nope", "age"); ok {
		t.Fatal("expected a missing key to report false")
	}
}
