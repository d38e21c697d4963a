package tempuscore

import (
	"path/filepath"
	"testing"
)

// TestAOFReplayRoundTrip writes a session with a mix of operation kinds
// under AOF, then loads the same file into a fresh engine and checks its
// observable state matches.
func TestAOFReplayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.aof")

	source := New()
	if err := source.EnableAOF(path); err != nil {
		t.Fatalf("EnableAOF: %v", err)
	}
	source.Set("x", []byte("1"))
	source.HSet("h", "f", []byte("2"))
	source.LPush("L", []byte("a"))
	source.LPush("L", []byte("b"))
	source.DisableAOF()
	source.Close()

	fresh := New()
	defer fresh.Close()
	if err := fresh.LoadAOF(path); err != nil {
		t.Fatalf("LoadAOF: %v", err)
	}

	if v, ok := fresh.Get("x"); !ok || string(v) != "1" {
		t.Fatalf("expected x=1, got (%s, %v)", v, ok)
	}
	if v, ok := fresh.HGet("h", "f"); !ok || string(v) != "2" {
		t.Fatalf("expected h.f=2, got (%s, %v)", v, ok)
	}

	frame := fresh.LRange("L", 0, -1)
	want := encodeItemsFrame([][]byte{[]byte("b"), []byte("a")})
	if string(frame) != string(want) {
		t.Fatalf("expected LRANGE [b,a], got frame %v want %v", frame, want)
	}
}

func TestLoadAOFMissingFileIsNoop(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.LoadAOF(filepath.Join(t.TempDir(), "nope.aof")); err != nil {
		t.Fatalf("expected nil error for a missing AOF file, got %v", err)
	}
}

func TestAOFReplayReservesStreamCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.aof")

	source := New()
	if err := source.EnableAOF(path); err != nil {
		t.Fatalf("EnableAOF: %v", err)
	}
	firstID := source.XAdd("s", []byte("one"))
	secondID := source.XAdd("s", []byte("two"))
	source.DisableAOF()
	source.Close()

	fresh := New()
	defer fresh.Close()
	if err := fresh.LoadAOF(path); err != nil {
		t.Fatalf("LoadAOF: %v", err)
	}

	nextID := fresh.XAdd("s", []byte("three"))
	if nextID <= secondID {
		t.Fatalf("expected a fresh XADD id greater than the replayed max (%d), got %d", secondID, nextID)
	}
	_ = firstID
}
