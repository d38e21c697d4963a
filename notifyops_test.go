package tempuscore

import "testing"

func TestClearNotificationsDropsPending(t *testing.T) {
	e := New(WithMaxItems(1))
	defer e.Close()

	e.Set("a", []byte("1"))
	e.Set("b", []byte("2")) // evicts a

	if e.PendingNotifications() == 0 {
		t.Fatal("expected at least one pending notification after an eviction")
	}
	e.ClearNotifications()
	if e.PendingNotifications() != 0 {
		t.Fatalf("expected 0 pending notifications after Clear, got %d", e.PendingNotifications())
	}
}
