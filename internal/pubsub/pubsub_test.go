package pubsub

import "testing"

func TestSubscribeEmptyChannelInvalid(t *testing.T) {
	s := NewState()
	if id := s.Subscribe(""); id != 0 {
		t.Fatalf("expected 0 for empty channel, got %d", id)
	}
}

func TestPublishFanOutAndFIFO(t *testing.T) {
	s := NewState()
	id1 := s.Subscribe("c")
	id2 := s.Subscribe("c")

	n := s.Publish("c", []byte("m"))
	if n != 2 {
		t.Fatalf("expected 2 deliveries, got %d", n)
	}

	for _, id := range []uint64{id1, id2} {
		msg, ok := s.Poll(id)
		if !ok || msg.Channel != "c" || string(msg.Payload) != "m" {
			t.Fatalf("unexpected message for id %d: %+v ok=%v", id, msg, ok)
		}
		if _, ok := s.Poll(id); ok {
			t.Fatalf("expected id %d's queue to be drained", id)
		}
	}
}

func TestUnsubscribeRemovesChannelWhenEmpty(t *testing.T) {
	s := NewState()
	id := s.Subscribe("c")
	s.Unsubscribe(id)

	if n := s.Publish("c", []byte("m")); n != 0 {
		t.Fatalf("expected 0 deliveries after unsubscribe, got %d", n)
	}
}
