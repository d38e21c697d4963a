package tempuscore

// pubsubops.go exposes internal/pubsub on Engine. Pub/sub state lives
// behind its own lock (pubsub.State), independent of the store's mu, so
// a publish never blocks a concurrent Get/Set and vice versa.

import "github.com/tempuscore/engine/internal/pubsub"

// Subscribe registers a new subscriber to channel and returns its id.
// Subscribing to the empty string is invalid and returns 0.
func (e *Engine) Subscribe(channel string) uint64 {
	return e.pubsubState.Subscribe(channel)
}

// Unsubscribe removes id's subscription, if any.
func (e *Engine) Unsubscribe(id uint64) {
	e.pubsubState.Unsubscribe(id)
}

// Publish delivers a copy of payload to every current subscriber of
// channel and returns the number of deliveries.
func (e *Engine) Publish(channel string, payload []byte) int {
	return e.pubsubState.Publish(channel, payload)
}

// PollMessage pops the oldest queued message for subscriber id. ok is
// false if id is unknown or has nothing queued.
func (e *Engine) PollMessage(id uint64) (channel string, payload []byte, ok bool) {
	msg, found := e.pubsubState.Poll(id)
	if !found {
		return "", nil, false
	}
	return msg.Channel, msg.Payload, true
}

// EncodeMessage returns the wire-framed form of a (channel, payload) pair
// for callers that consume pub/sub delivery across a serialized boundary.
func EncodeMessage(channel string, payload []byte) []byte {
	return pubsub.Encode(pubsub.Message{Channel: channel, Payload: payload})
}
