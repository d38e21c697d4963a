package tempuscore

import "testing"

func TestEvalSetGetDel(t *testing.T) {
	e := New()
	defer e.Close()

	if _, ok := e.Eval("SET greeting hello there"); !ok {
		t.Fatal("expected SET to succeed")
	}
	out, ok := e.Eval("GET greeting")
	if !ok || string(out) != "hello there" {
		t.Fatalf("expected 'hello there', got (%s, %v)", out, ok)
	}
	out, ok = e.Eval("DEL greeting")
	if !ok || string(out) != "1" {
		t.Fatalf("expected 1, got (%s, %v)", out, ok)
	}
}

func TestEvalJSONRoundTrip(t *testing.T) {
	e := New()
	defer e.Close()

	if _, ok := e.Eval("JSON.SET u age 30"); !ok {
		t.Fatal("expected JSON.SET to succeed")
	}
	out, ok := e.Eval("JSON.GET u age")
	if !ok || string(out) != "30" {
		t.Fatalf("expected 30, got (%s, %v)", out, ok)
	}
}
