package jsonpath

import "testing"

func TestGetTopLevelField(t *testing.T) {
	out, ok := Get([]byte(`{"age":30}`), "age")
	if !ok || string(out) != "30" {
		t.Fatalf("expected (30, true), got (%s, %v)", out, ok)
	}
}

func TestGetMissingFieldIsEmpty(t *testing.T) {
	if _, ok := Get([]byte(`{"age":30}`), "name"); ok {
		t.Fatal("expected missing field to report false")
	}
}

func TestSetAutovivifiesNestedObject(t *testing.T) {
	out, err := Set(nil, "user.name", []byte(`"ada"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := Get(out, "user.name")
	if !ok || string(got) != `"ada"` {
		t.Fatalf("expected ada, got (%s, %v)", got, ok)
	}
}

func TestSetAutovivifiesArray(t *testing.T) {
	out, err := Set(nil, "items[2]", []byte(`"x"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := Get(out, "items[2]")
	if !ok || string(got) != `"x"` {
		t.Fatalf("expected x at index 2, got (%s, %v)", got, ok)
	}
	if _, ok := Get(out, "items[0]"); !ok {
		t.Fatal("expected padded index 0 to exist (as null)")
	}
}

func TestSetEmptyPathReplacesWholeDocument(t *testing.T) {
	out, err := Set([]byte(`{"a":1}`), "", []byte(`{"b":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := Get(out, "a"); ok {
		t.Fatal("expected the old document to be fully replaced")
	}
	got, ok := Get(out, "b")
	if !ok || string(got) != "2" {
		t.Fatalf("expected b=2, got (%s, %v)", got, ok)
	}
}
