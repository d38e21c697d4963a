package tempuscore

// notifyops.go exposes the keyspace notification queue (internal/notify)
// on Engine. Expiration and eviction both push into this queue from
// inside the store's write lock (ttl.go, eviction.go, janitor.go); these
// methods are the read side, consumed independently of that lock.

import "github.com/tempuscore/engine/internal/notify"

// Notification is one expiration/eviction event.
type Notification struct {
	Expired bool
	Key     string
	AtMs    uint64
}

// PollNotification pops the oldest pending notification. ok is false if
// none are pending.
func (e *Engine) PollNotification() (n Notification, ok bool) {
	ev, found := e.notifyQ.Poll()
	if !found {
		return Notification{}, false
	}
	return Notification{Expired: ev.Kind == notify.KindExpired, Key: ev.Key, AtMs: ev.AtMs}, true
}

// ClearNotifications drops every pending notification.
func (e *Engine) ClearNotifications() {
	e.notifyQ.Clear()
}

// PendingNotifications reports how many notifications are queued.
func (e *Engine) PendingNotifications() int {
	return e.notifyQ.Len()
}
