// Package pubsub implements the engine's user pub/sub subsystem: channel
// subscriptions, one message FIFO per subscriber, and publish-to-channel
// fan-out. All state lives behind a single lock distinct from the store
// lock, so that publish never blocks a store read or write.
package pubsub

import "sync"

// Message is one delivered payload, tagged with the channel it arrived on
// so Poll can build the wire frame without a second lookup.
type Message struct {
	Channel string
	Payload []byte
}

// State holds every subscription and queued message.
type State struct {
	mu        sync.Mutex
	nextID    uint64
	idChannel map[uint64]string
	channels  map[string][]uint64
	queues    map[uint64][]Message
}

// NewState returns an empty pub/sub state with the subscriber id counter
// starting at 1 (id 0 is reserved to mean "invalid subscription").
func NewState() *State {
	return &State{
		nextID:    1,
		idChannel: make(map[uint64]string),
		channels:  make(map[string][]uint64),
		queues:    make(map[uint64][]Message),
	}
}

// Subscribe registers a new subscriber to channel and returns its id.
// Subscribing to the empty channel is invalid input and returns 0.
func (s *State) Subscribe(channel string) uint64 {
	if channel == "" {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.idChannel[id] = channel
	s.channels[channel] = append(s.channels[channel], id)
	s.queues[id] = nil
	return id
}

// Unsubscribe removes id from every map. If the channel's subscriber list
// becomes empty, the channel entry itself is dropped.
func (s *State) Unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	channel, ok := s.idChannel[id]
	if !ok {
		return
	}
	delete(s.idChannel, id)
	delete(s.queues, id)

	subs := s.channels[channel]
	for i, sub := range subs {
		if sub == id {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(s.channels, channel)
	} else {
		s.channels[channel] = subs
	}
}

// Publish enqueues a copy of payload for every current subscriber of
// channel and returns the number of deliveries. The whole operation runs
// under one lock acquisition, so messages from a single publish land in
// every subscriber's queue in the same relative order across publishes
// from the same caller.
func (s *State) Publish(channel string, payload []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.channels[channel]
	if len(subs) == 0 {
		return 0
	}
	for _, id := range subs {
		cp := make([]byte, len(payload))
		copy(cp, payload)
		s.queues[id] = append(s.queues[id], Message{Channel: channel, Payload: cp})
	}
	return len(subs)
}

// Poll pops the front message of id's queue. ok is false if id is unknown
// or its queue is empty.
func (s *State) Poll(id uint64) (msg Message, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, exists := s.queues[id]
	if !exists || len(q) == 0 {
		return Message{}, false
	}
	msg = q[0]
	s.queues[id] = q[1:]
	return msg, true
}

// Encode serializes msg as the wire frame
// [chanlen:u32][channel][plen:u32][payload], little-endian.
func Encode(msg Message) []byte {
	out := make([]byte, 4+len(msg.Channel)+4+len(msg.Payload))
	putU32(out[0:4], uint32(len(msg.Channel)))
	copy(out[4:4+len(msg.Channel)], msg.Channel)
	tail := out[4+len(msg.Channel):]
	putU32(tail[0:4], uint32(len(msg.Payload)))
	copy(tail[4:], msg.Payload)
	return out
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
