package tempuscore

import "testing"

func TestBinaryNamespaceRoundTrip(t *testing.T) {
	e := New()
	defer e.Close()

	key := []byte{0x00, 0xff, 0x10}
	e.SetB(key, []byte("payload"))

	v, ok := e.GetB(key)
	if !ok || string(v) != "payload" {
		t.Fatalf("expected 'payload', got (%s, %v)", v, ok)
	}

	if !e.RemoveB(key) {
		t.Fatal("expected RemoveB to report the key existed")
	}
	if _, ok := e.GetB(key); ok {
		t.Fatal("expected key to be gone after RemoveB")
	}
}

func TestGetIntoBufferBSizing(t *testing.T) {
	e := New()
	defer e.Close()

	key := []byte("rawkey")
	e.SetB(key, []byte("hello"))

	buf := make([]byte, 5)
	if n := e.GetIntoBufferB(key, buf); n != 5 || string(buf) != "hello" {
		t.Fatalf("expected 5/'hello', got %d/%q", n, buf)
	}

	small := make([]byte, 1)
	if n := e.GetIntoBufferB(key, small); n != -5 {
		t.Fatalf("expected -5, got %d", n)
	}
}

func TestLeaseReleaseDoesNotCorruptStore(t *testing.T) {
	e := New()
	defer e.Close()

	key := []byte("leased")
	e.SetB(key, []byte("borrowed"))

	lease, ok := e.GetLeaseB(key)
	if !ok || string(lease.Data) != "borrowed" {
		t.Fatalf("expected a lease over 'borrowed', got (%s, %v)", lease.Data, ok)
	}
	ReleaseLease(lease)

	v, ok := e.GetB(key)
	if !ok || string(v) != "borrowed" {
		t.Fatalf("expected the store to still read 'borrowed' after release, got (%s, %v)", v, ok)
	}
}
