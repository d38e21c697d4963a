package tempuscore

// framing.go implements the little-endian output frames every multi-item
// read operation serializes into: a hash dump, an item list (shared by
// LRange and ZRange), a find result, and a stream range. Pub/sub and
// notification frames live next to their own subsystems
// (pubsubops.go/notifyops.go) since those wire formats are owned by the
// internal packages that define the event shapes.

import "github.com/tempuscore/engine/internal/valuekind"

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// encodeHashFrame serializes a Hash as
// [count:u32](keylen:u32,keybytes,vallen:u32,valbytes)*.
func encodeHashFrame(h valuekind.Hash) []byte {
	size := 4
	for k, v := range h {
		size += 4 + len(k) + 4 + len(v)
	}
	out := make([]byte, size)
	putU32(out[0:4], uint32(len(h)))
	off := 4
	for k, v := range h {
		putU32(out[off:off+4], uint32(len(k)))
		off += 4
		off += copy(out[off:], k)
		putU32(out[off:off+4], uint32(len(v)))
		off += 4
		off += copy(out[off:], v)
	}
	return out
}

// encodeItemsFrame serializes a slice of opaque items (List/SortedSet
// range output) as [count:u32](itemlen:u32,itembytes)*.
func encodeItemsFrame(items [][]byte) []byte {
	size := 4
	for _, it := range items {
		size += 4 + len(it)
	}
	out := make([]byte, size)
	putU32(out[0:4], uint32(len(items)))
	off := 4
	for _, it := range items {
		putU32(out[off:off+4], uint32(len(it)))
		off += 4
		off += copy(out[off:], it)
	}
	return out
}

// encodeFindFrame serializes a Find result as
// [count:u32](keylen:u32,keybytes)*.
func encodeFindFrame(keys []string) []byte {
	size := 4
	for _, k := range keys {
		size += 4 + len(k)
	}
	out := make([]byte, size)
	putU32(out[0:4], uint32(len(keys)))
	off := 4
	for _, k := range keys {
		putU32(out[off:off+4], uint32(len(k)))
		off += 4
		off += copy(out[off:], k)
	}
	return out
}

// encodeStreamFrame serializes a Stream range as
// [count:u32](id:u64,plen:u32,payload)*.
func encodeStreamFrame(entries []valuekind.StreamEntry) []byte {
	size := 4
	for _, se := range entries {
		size += 8 + 4 + len(se.Payload)
	}
	out := make([]byte, size)
	putU32(out[0:4], uint32(len(entries)))
	off := 4
	for _, se := range entries {
		putU64(out[off:off+8], se.ID)
		off += 8
		putU32(out[off:off+4], uint32(len(se.Payload)))
		off += 4
		off += copy(out[off:], se.Payload)
	}
	return out
}
