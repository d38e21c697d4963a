package jsonpath

import "testing"

func TestParseBareField(t *testing.T) {
	segs, err := Parse("age")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Kind != SegField || segs[0].Field != "age" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestParseDottedAndIndexed(t *testing.T) {
	segs, err := Parse("$.users[2].name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Segment{
		{Kind: SegField, Field: "users"},
		{Kind: SegIndex, Index: 2},
		{Kind: SegField, Field: "name"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d (%+v)", len(want), len(segs), segs)
	}
	for i, s := range segs {
		if s != want[i] {
			t.Fatalf("segment %d: expected %+v, got %+v", i, want[i], s)
		}
	}
}

func TestParseEmptyPathInvalid(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("expected an error for empty path")
	}
}

func TestParseEmptyFieldSegmentAborts(t *testing.T) {
	if _, err := Parse("a..b"); err == nil {
		t.Fatal("expected an error for an empty field segment")
	}
}
