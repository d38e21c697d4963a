package tempuscore

import "testing"

func TestHashSetGetAll(t *testing.T) {
	e := New()
	defer e.Close()

	e.HSet("h", "a", []byte("1"))
	e.HSet("h", "b", []byte("2"))

	v, ok := e.HGet("h", "a")
	if !ok || string(v) != "1" {
		t.Fatalf("expected a=1, got (%s, %v)", v, ok)
	}

	frame := e.HGetAll("h")
	got := decodeHashFrame(t, frame)
	if len(got) != 2 || string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Fatalf("unexpected hash dump: %v", got)
	}
}

func TestListPushPopRange(t *testing.T) {
	e := New()
	defer e.Close()

	e.LPush("L", []byte("a"))
	e.LPush("L", []byte("b"))
	// head is most recently pushed: [b, a]

	frame := e.LRange("L", 0, -1)
	items := decodeItemsFrame(t, frame)
	if len(items) != 2 || string(items[0]) != "b" || string(items[1]) != "a" {
		t.Fatalf("expected [b a], got %v", items)
	}

	v, ok := e.RPop("L")
	if !ok || string(v) != "a" {
		t.Fatalf("expected to pop a, got (%s, %v)", v, ok)
	}
}

func TestSetAddAndMembership(t *testing.T) {
	e := New()
	defer e.Close()

	e.SAdd("s", []byte("x"))
	if !e.SIsMember("s", []byte("x")) {
		t.Fatal("expected x to be a member")
	}
	if e.SIsMember("s", []byte("y")) {
		t.Fatal("expected y not to be a member")
	}
}

func TestSortedSetRange(t *testing.T) {
	e := New()
	defer e.Close()

	e.ZAdd("z", 3, "c")
	e.ZAdd("z", 1, "a")
	e.ZAdd("z", 2, "b")

	frame := e.ZRange("z", 0, -1)
	items := decodeItemsFrame(t, frame)
	if len(items) != 3 || string(items[0]) != "a" || string(items[1]) != "b" || string(items[2]) != "c" {
		t.Fatalf("expected ascending [a b c], got %v", items)
	}
}

func TestStreamAddAndRange(t *testing.T) {
	e := New()
	defer e.Close()

	id1 := e.XAdd("s", []byte("one"))
	id2 := e.XAdd("s", []byte("two"))
	if id2 <= id1 {
		t.Fatalf("expected strictly increasing ids, got %d then %d", id1, id2)
	}

	frame := e.XRange("s", 0, ^uint64(0))
	count, ids, payloads := decodeStreamFrame(t, frame)
	if count != 2 || string(payloads[0]) != "one" || string(payloads[1]) != "two" {
		t.Fatalf("unexpected stream range: count=%d payloads=%v", count, payloads)
	}
	if ids[0] != id1 || ids[1] != id2 {
		t.Fatalf("expected ids [%d %d], got %v", id1, id2, ids)
	}
}

// --- frame decoding helpers for assertions ---

func decodeHashFrame(t *testing.T, frame []byte) map[string][]byte {
	t.Helper()
	out := map[string][]byte{}
	count := getU32(frame)
	off := 4
	for i := uint32(0); i < count; i++ {
		klen := getU32(frame[off:])
		off += 4
		key := string(frame[off : off+int(klen)])
		off += int(klen)
		vlen := getU32(frame[off:])
		off += 4
		val := frame[off : off+int(vlen)]
		off += int(vlen)
		out[key] = val
	}
	return out
}

func decodeItemsFrame(t *testing.T, frame []byte) [][]byte {
	t.Helper()
	var out [][]byte
	count := getU32(frame)
	off := 4
	for i := uint32(0); i < count; i++ {
		l := getU32(frame[off:])
		off += 4
		out = append(out, frame[off:off+int(l)])
		off += int(l)
	}
	return out
}

func decodeStreamFrame(t *testing.T, frame []byte) (count uint32, ids []uint64, payloads [][]byte) {
	t.Helper()
	count = getU32(frame)
	off := 4
	for i := uint32(0); i < count; i++ {
		id := getU64(frame[off:])
		off += 8
		plen := getU32(frame[off:])
		off += 4
		payload := frame[off : off+int(plen)]
		off += int(plen)
		ids = append(ids, id)
		payloads = append(payloads, payload)
	}
	return count, ids, payloads
}

func getU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func getU64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
