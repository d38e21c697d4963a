package tempuscore

import "testing"

// TestPubSubScenarioS6 checks that two subscribers on the same channel
// each get their own queued copy of a published message.
func TestPubSubScenarioS6(t *testing.T) {
	e := New()
	defer e.Close()

	id1 := e.Subscribe("c")
	id2 := e.Subscribe("c")

	if n := e.Publish("c", []byte("m")); n != 2 {
		t.Fatalf("expected 2 deliveries, got %d", n)
	}

	for _, id := range []uint64{id1, id2} {
		channel, payload, ok := e.PollMessage(id)
		if !ok || channel != "c" || string(payload) != "m" {
			t.Fatalf("unexpected message for %d: channel=%q payload=%q ok=%v", id, channel, payload, ok)
		}
	}

	if _, _, ok := e.PollMessage(id1); ok {
		t.Fatal("expected id1's queue to be drained")
	}
}

func TestSubscribeEmptyChannelReturnsZero(t *testing.T) {
	e := New()
	defer e.Close()

	if id := e.Subscribe(""); id != 0 {
		t.Fatalf("expected 0 for an empty channel, got %d", id)
	}
}
