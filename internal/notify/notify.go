// Package notify implements the keyspace notification queue: a single
// process-wide FIFO of expiration and eviction events, guarded by
// its own lock so publishing a notification never blocks store operations
// on anything but this one small queue.
package notify

import "sync"

// Kind distinguishes why a key left the store.
type Kind uint8

const (
	// KindExpired fires when TTL expiry (lazy or periodic) removes a key.
	KindExpired Kind = 1
	// KindEvicted fires when LRU capacity pressure removes a key.
	KindEvicted Kind = 2
)

// Event is one queued notification.
type Event struct {
	Kind Kind
	Key  string
	AtMs uint64
}

// Queue is the process-wide notification FIFO.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue returns an empty notification queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push enqueues an event. Called by the reaper, the lazy-expiry path, and
// the LRU eviction path, always before the provoking operation returns,
// so a consumer draining the queue after a quiescent period observes
// every event that occurred.
func (q *Queue) Push(kind Kind, key string, atMs uint64) {
	q.mu.Lock()
	q.events = append(q.events, Event{Kind: kind, Key: key, AtMs: atMs})
	q.mu.Unlock()
}

// Poll pops the oldest pending event. ok is false if the queue is empty.
func (q *Queue) Poll() (ev Event, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev = q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return ev, true
}

// Clear drops all pending events.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.events = nil
	q.mu.Unlock()
}

// Len reports the number of pending events (used by tests and stats).
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// BinaryNotifyKey formats a binary-namespace key for the notification
// queue: the literal prefix "b:" followed by lowercase hex of the raw
// bytes, so consumers sharing one notification stream across both
// namespaces can disambiguate by the prefix.
func BinaryNotifyKey(raw []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 2+len(raw)*2)
	out[0], out[1] = 'b', ':'
	for i, b := range raw {
		out[2+i*2] = hexdigits[b>>4]
		out[2+i*2+1] = hexdigits[b&0xf]
	}
	return string(out)
}

// Encode serializes an event as the wire frame
// [kind:u8][keylen:u32][key][at_ms:u64], little-endian.
func Encode(ev Event) []byte {
	out := make([]byte, 1+4+len(ev.Key)+8)
	out[0] = byte(ev.Kind)
	putU32(out[1:5], uint32(len(ev.Key)))
	copy(out[5:5+len(ev.Key)], ev.Key)
	putU64(out[5+len(ev.Key):], ev.AtMs)
	return out
}

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
